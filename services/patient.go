// Package services holds the operations behind the HTTP handlers. Every error
// returned is an *apperrors.Error so callers can classify it with
// apperrors.KindOf.
package services

import (
	"context"
	"fmt"

	"github.com/conectacare/conectacare-api/apperrors"
	"github.com/conectacare/conectacare-api/databases"
	"github.com/conectacare/conectacare-api/identifier"
	"github.com/conectacare/conectacare-api/models"
	"github.com/conectacare/conectacare-api/projections"
)

// PatientService manages patients and the records embedded in them
type PatientService struct {
	DB databases.PatientDatabase
}

// NewPatientService returns a PatientService backed by db
func NewPatientService(db databases.PatientDatabase) *PatientService {
	return &PatientService{DB: db}
}

// CreatePatient stores a new patient. A patient with the same document number
// is a Conflict, both when found up front and when the unique index rejects
// the insert.
func (s *PatientService) CreatePatient(ctx context.Context, in models.PatientInput) (projections.PatientView, error) {
	patient, err := in.ToPatient()
	if err != nil {
		return projections.PatientView{}, err
	}

	_, err = s.DB.FindOneByField(ctx, models.DocumentField, patient.Document)
	switch {
	case err == nil:
		return projections.PatientView{}, apperrors.New(apperrors.Conflict, fmt.Sprintf("patient with document %d already exists", patient.Document))
	case !apperrors.Is(err, apperrors.NotFound):
		return projections.PatientView{}, err
	}

	id, err := s.DB.InsertOne(ctx, patient)
	if err != nil {
		if apperrors.Is(err, apperrors.Conflict) {
			return projections.PatientView{}, apperrors.Wrap(apperrors.Conflict, fmt.Sprintf("patient with document %d already exists", patient.Document), err)
		}
		return projections.PatientView{}, err
	}

	stored, err := s.DB.FindByID(ctx, id)
	if err != nil {
		return projections.PatientView{}, err
	}
	return projections.Patient(stored), nil
}

// GetPatient returns the patient with the given id
func (s *PatientService) GetPatient(ctx context.Context, patientID string) (projections.PatientView, error) {
	pid, err := identifier.ParseNamed("patient_id", patientID)
	if err != nil {
		return projections.PatientView{}, err
	}
	patient, err := s.DB.FindByID(ctx, pid)
	if err != nil {
		return projections.PatientView{}, err
	}
	return projections.Patient(patient), nil
}

// ListPatients returns every patient in full
func (s *PatientService) ListPatients(ctx context.Context) ([]projections.PatientView, error) {
	patients, err := s.DB.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return projections.Patients(patients), nil
}

// AddMedicationLog adds a new medication log to a patient
func (s *PatientService) AddMedicationLog(ctx context.Context, patientID string, in models.MedicationLogInput) (projections.MedicationLogView, error) {
	return medicationLogs.add(ctx, s.DB, patientID, in)
}

// GetMedicationLogs returns the medication logs of a patient
func (s *PatientService) GetMedicationLogs(ctx context.Context, patientID string) ([]projections.MedicationLogView, error) {
	return medicationLogs.all(ctx, s.DB, patientID)
}

// UpdateMedicationLog replaces one medication log of a patient
func (s *PatientService) UpdateMedicationLog(ctx context.Context, patientID, logID string, in models.MedicationLogInput) (projections.MedicationLogView, error) {
	return medicationLogs.update(ctx, s.DB, patientID, logID, in)
}

// AddMeal adds a new meal to a patient
func (s *PatientService) AddMeal(ctx context.Context, patientID string, in models.MealInput) (projections.MealView, error) {
	return meals.add(ctx, s.DB, patientID, in)
}

// GetMeals returns the meals of a patient
func (s *PatientService) GetMeals(ctx context.Context, patientID string) ([]projections.MealView, error) {
	return meals.all(ctx, s.DB, patientID)
}

// UpdateMeal replaces one meal of a patient
func (s *PatientService) UpdateMeal(ctx context.Context, patientID, mealID string, in models.MealInput) (projections.MealView, error) {
	return meals.update(ctx, s.DB, patientID, mealID, in)
}

// AddHygieneLog adds a new hygiene log to a patient
func (s *PatientService) AddHygieneLog(ctx context.Context, patientID string, in models.HygieneLogInput) (projections.HygieneLogView, error) {
	return hygieneLogs.add(ctx, s.DB, patientID, in)
}

// GetHygieneLogs returns the hygiene logs of a patient
func (s *PatientService) GetHygieneLogs(ctx context.Context, patientID string) ([]projections.HygieneLogView, error) {
	return hygieneLogs.all(ctx, s.DB, patientID)
}

// UpdateHygieneLog replaces one hygiene log of a patient
func (s *PatientService) UpdateHygieneLog(ctx context.Context, patientID, hygieneID string, in models.HygieneLogInput) (projections.HygieneLogView, error) {
	return hygieneLogs.update(ctx, s.DB, patientID, hygieneID, in)
}

// AddVitalSigns appends a vital signs record. Each monthly weight entry gets
// its own identifier as well.
func (s *PatientService) AddVitalSigns(ctx context.Context, patientID string, in models.VitalSignsInput) (projections.VitalSignsView, error) {
	return vitalSigns.add(ctx, s.DB, patientID, in)
}

// GetVitalSigns returns the vital signs records of a patient
func (s *PatientService) GetVitalSigns(ctx context.Context, patientID string) ([]projections.VitalSignsView, error) {
	return vitalSigns.all(ctx, s.DB, patientID)
}

// UpdateVitalSigns replaces a vital signs record, keeping the ids of weight
// entries that are sent back with one.
func (s *PatientService) UpdateVitalSigns(ctx context.Context, patientID, vitalID string, in models.VitalSignsInput) (projections.VitalSignsView, error) {
	return vitalSigns.update(ctx, s.DB, patientID, vitalID, in)
}

// AddSymptom adds a new symptom to a patient
func (s *PatientService) AddSymptom(ctx context.Context, patientID string, in models.SymptomInput) (projections.SymptomView, error) {
	return symptoms.add(ctx, s.DB, patientID, in)
}

// GetSymptoms returns the symptoms of a patient
func (s *PatientService) GetSymptoms(ctx context.Context, patientID string) ([]projections.SymptomView, error) {
	return symptoms.all(ctx, s.DB, patientID)
}

// UpdateSymptom replaces one symptom of a patient
func (s *PatientService) UpdateSymptom(ctx context.Context, patientID, symptomID string, in models.SymptomInput) (projections.SymptomView, error) {
	return symptoms.update(ctx, s.DB, patientID, symptomID, in)
}

// AddMedicalHistoryEntry adds a new medical history entry to a patient
func (s *PatientService) AddMedicalHistoryEntry(ctx context.Context, patientID string, in models.MedicalHistoryEntryInput) (projections.MedicalHistoryEntryView, error) {
	return medicalHistory.add(ctx, s.DB, patientID, in)
}

// GetMedicalHistory returns the medical history of a patient
func (s *PatientService) GetMedicalHistory(ctx context.Context, patientID string) ([]projections.MedicalHistoryEntryView, error) {
	return medicalHistory.all(ctx, s.DB, patientID)
}

// UpdateMedicalHistoryEntry replaces one medical history entry of a patient
func (s *PatientService) UpdateMedicalHistoryEntry(ctx context.Context, patientID, entryID string, in models.MedicalHistoryEntryInput) (projections.MedicalHistoryEntryView, error) {
	return medicalHistory.update(ctx, s.DB, patientID, entryID, in)
}
