package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/conectacare/conectacare-api/databases"
	"github.com/conectacare/conectacare-api/identifier"
	"github.com/conectacare/conectacare-api/models"
	"github.com/conectacare/conectacare-api/projections"
)

// recordKind describes one of the record arrays embedded in a patient. In is
// the request body, R the stored element and V its external view.
type recordKind[In, R, V any] struct {
	field   models.ArrayField
	idName  string
	create  func(In, primitive.ObjectID) (R, error)
	replace func(In, primitive.ObjectID) (R, error)
	stored  func(*models.Patient) []R
	project func(R) V
	list    func([]R) []V
}

var (
	medicationLogs = recordKind[models.MedicationLogInput, models.MedicationLog, projections.MedicationLogView]{
		field:   models.MedicationLogsField,
		idName:  "log_id",
		create:  models.MedicationLogInput.Record,
		replace: models.MedicationLogInput.Record,
		stored:  func(p *models.Patient) []models.MedicationLog { return p.MedicationLogs },
		project: projections.MedicationLog,
		list:    projections.MedicationLogs,
	}
	meals = recordKind[models.MealInput, models.Meal, projections.MealView]{
		field:   models.MealsField,
		idName:  "meal_id",
		create:  models.MealInput.Record,
		replace: models.MealInput.Record,
		stored:  func(p *models.Patient) []models.Meal { return p.Meals },
		project: projections.Meal,
		list:    projections.Meals,
	}
	hygieneLogs = recordKind[models.HygieneLogInput, models.HygieneLog, projections.HygieneLogView]{
		field:   models.HygieneLogsField,
		idName:  "hygiene_id",
		create:  models.HygieneLogInput.Record,
		replace: models.HygieneLogInput.Record,
		stored:  func(p *models.Patient) []models.HygieneLog { return p.HygieneLogs },
		project: projections.HygieneLog,
		list:    projections.HygieneLogs,
	}
	vitalSigns = recordKind[models.VitalSignsInput, models.VitalSigns, projections.VitalSignsView]{
		field:   models.VitalSignsField,
		idName:  "vital_id",
		create:  models.VitalSignsInput.Record,
		replace: models.VitalSignsInput.Replacement,
		stored:  func(p *models.Patient) []models.VitalSigns { return p.VitalSigns },
		project: projections.VitalSigns,
		list:    projections.VitalSignsList,
	}
	symptoms = recordKind[models.SymptomInput, models.Symptom, projections.SymptomView]{
		field:   models.SymptomsField,
		idName:  "symptom_id",
		create:  models.SymptomInput.Record,
		replace: models.SymptomInput.Record,
		stored:  func(p *models.Patient) []models.Symptom { return p.Symptoms },
		project: projections.Symptom,
		list:    projections.Symptoms,
	}
	medicalHistory = recordKind[models.MedicalHistoryEntryInput, models.MedicalHistoryEntry, projections.MedicalHistoryEntryView]{
		field:   models.MedicalHistoryField,
		idName:  "entry_id",
		create:  models.MedicalHistoryEntryInput.Record,
		replace: models.MedicalHistoryEntryInput.Record,
		stored:  func(p *models.Patient) []models.MedicalHistoryEntry { return p.MedicalHistory },
		project: projections.MedicalHistoryEntry,
		list:    projections.MedicalHistory,
	}
)

// add appends a new record to the patient. The record identifier is assigned
// here, before the push, so the view returned carries the stored id.
func (k recordKind[In, R, V]) add(ctx context.Context, db databases.PatientDatabase, patientID string, in In) (V, error) {
	var zero V
	pid, err := identifier.ParseNamed("patient_id", patientID)
	if err != nil {
		return zero, err
	}
	record, err := k.create(in, identifier.Generate())
	if err != nil {
		return zero, err
	}
	if _, err := db.FindByID(ctx, pid); err != nil {
		return zero, err
	}
	if err := db.AppendToArray(ctx, pid, k.field, record); err != nil {
		return zero, err
	}
	return k.project(record), nil
}

// all returns the projected array, empty when nothing was recorded yet
func (k recordKind[In, R, V]) all(ctx context.Context, db databases.PatientDatabase, patientID string) ([]V, error) {
	pid, err := identifier.ParseNamed("patient_id", patientID)
	if err != nil {
		return nil, err
	}
	patient, err := db.FindByID(ctx, pid)
	if err != nil {
		return nil, err
	}
	return k.list(k.stored(patient)), nil
}

// update replaces the record with recordID in place. The record keeps its
// identifier, whatever the body says.
func (k recordKind[In, R, V]) update(ctx context.Context, db databases.PatientDatabase, patientID, recordID string, in In) (V, error) {
	var zero V
	pid, err := identifier.ParseNamed("patient_id", patientID)
	if err != nil {
		return zero, err
	}
	rid, err := identifier.ParseNamed(k.idName, recordID)
	if err != nil {
		return zero, err
	}
	record, err := k.replace(in, rid)
	if err != nil {
		return zero, err
	}
	if err := db.ReplaceInArray(ctx, pid, k.field, rid, record); err != nil {
		return zero, err
	}
	return k.project(record), nil
}
