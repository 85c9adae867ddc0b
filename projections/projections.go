// Package projections turns stored documents into the representation returned
// to clients. Identifiers are rendered as strings and optional fields that are
// absent in storage are rendered with their defaults, never as null.
package projections

import (
	"time"

	"github.com/conectacare/conectacare-api/identifier"
	"github.com/conectacare/conectacare-api/models"
)

// PatientView is the external shape of a patient
type PatientView struct {
	ID             string                    `json:"id"`
	Name           string                    `json:"name"`
	LastName       string                    `json:"last_name"`
	BirthDate      string                    `json:"birth_date"`
	Age            int                       `json:"age"`
	Document       int64                     `json:"document"`
	Cholesterol    float64                   `json:"cholesterol"`
	Glucose        float64                   `json:"glucose"`
	Conditions     []string                  `json:"conditions"`
	Medications    []string                  `json:"medications"`
	ActivityLevel  string                    `json:"activity_level"`
	CaretakerIDs   []string                  `json:"caretakers_ids"`
	MedicalHistory []MedicalHistoryEntryView `json:"medical_history"`
	Meals          []MealView                `json:"meals"`
	MedicationLogs []MedicationLogView       `json:"medication_logs"`
	HygieneLogs    []HygieneLogView          `json:"hygiene_logs"`
	VitalSigns     []VitalSignsView          `json:"vital_signs"`
	Symptoms       []SymptomView             `json:"symptoms"`
}

// MedicationLogView is the external shape of a medication log
type MedicationLogView struct {
	ID             string    `json:"id"`
	Datetime       time.Time `json:"datetime"`
	MedicationName string    `json:"medication_name"`
	Dose           string    `json:"dose"`
	Route          string    `json:"route"`
	Status         string    `json:"status"`
	Observations   string    `json:"observations"`
}

// MealView is the external shape of a meal
type MealView struct {
	ID           string    `json:"id"`
	Datetime     time.Time `json:"datetime"`
	MealType     string    `json:"meal_type"`
	Description  string    `json:"description"`
	Hydration    string    `json:"hydration"`
	Observations string    `json:"observations"`
}

// HygieneLogView is the external shape of a hygiene log
type HygieneLogView struct {
	ID              string    `json:"id"`
	Datetime        time.Time `json:"datetime"`
	Type            string    `json:"type"`
	Condition       string    `json:"condition"`
	Status          string    `json:"status"`
	AssistanceLevel string    `json:"assistance_level"`
	Observations    string    `json:"observations"`
}

// BloodPressureView is the external shape of a blood pressure pair
type BloodPressureView struct {
	Systolic  int `json:"systolic"`
	Diastolic int `json:"diastolic"`
}

// WeightEntryView is the external shape of a monthly weight point
type WeightEntryView struct {
	ID    string `json:"id"`
	Month string `json:"month"`
	Value int    `json:"value"`
}

// VitalSignsView is the external shape of a vital signs record
type VitalSignsView struct {
	ID            string            `json:"id"`
	Datetime      time.Time         `json:"datetime"`
	BloodPressure BloodPressureView `json:"blood_pressure"`
	HeartRate     int               `json:"heart_rate"`
	Observations  string            `json:"observations"`
	Weight        float64           `json:"weight"`
	WeightByMonth []WeightEntryView `json:"weight_by_month"`
}

// SymptomView is the external shape of a symptom
type SymptomView struct {
	ID           string    `json:"id"`
	Datetime     time.Time `json:"datetime"`
	Description  string    `json:"description"`
	Observations string    `json:"observations"`
}

// MedicalHistoryEntryView is the external shape of a medical history entry
type MedicalHistoryEntryView struct {
	ID          string    `json:"id"`
	Date        time.Time `json:"date"`
	Description string    `json:"description"`
	Notes       string    `json:"notes"`
}

// CaretakerView is the external shape of a caretaker
type CaretakerView struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	PasswordHash string `json:"passwordHash"`
	Role         string `json:"role"`
}

func each[T, V any](in []T, project func(T) V) []V {
	out := make([]V, 0, len(in))
	for _, item := range in {
		out = append(out, project(item))
	}
	return out
}

func str(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func num(f *float64) float64 {
	if f == nil {
		return 0
	}
	return *f
}

func strs(in []string) []string {
	if in == nil {
		return []string{}
	}
	return in
}

// Patient projects a stored patient, including every embedded record
func Patient(doc *models.Patient) PatientView {
	return PatientView{
		ID:             identifier.String(doc.ID),
		Name:           doc.Name,
		LastName:       doc.LastName,
		BirthDate:      models.FormatDay(doc.BirthDate),
		Age:            doc.Age,
		Document:       doc.Document,
		Cholesterol:    num(doc.Cholesterol),
		Glucose:        num(doc.Glucose),
		Conditions:     strs(doc.Conditions),
		Medications:    strs(doc.Medications),
		ActivityLevel:  str(doc.ActivityLevel),
		CaretakerIDs:   identifier.Strings(doc.CaretakerIDs),
		MedicalHistory: MedicalHistory(doc.MedicalHistory),
		Meals:          Meals(doc.Meals),
		MedicationLogs: MedicationLogs(doc.MedicationLogs),
		HygieneLogs:    HygieneLogs(doc.HygieneLogs),
		VitalSigns:     VitalSignsList(doc.VitalSigns),
		Symptoms:       Symptoms(doc.Symptoms),
	}
}

// Patients projects every patient, returning an empty slice for none
func Patients(docs []models.Patient) []PatientView {
	out := make([]PatientView, 0, len(docs))
	for i := range docs {
		out = append(out, Patient(&docs[i]))
	}
	return out
}

// MedicationLog projects one medication log
func MedicationLog(l models.MedicationLog) MedicationLogView {
	return MedicationLogView{
		ID:             identifier.String(l.ID),
		Datetime:       l.Datetime,
		MedicationName: l.MedicationName,
		Dose:           l.Dose,
		Route:          l.Route,
		Status:         l.Status,
		Observations:   str(l.Observations),
	}
}

// MedicationLogs projects a medication log array
func MedicationLogs(in []models.MedicationLog) []MedicationLogView {
	return each(in, MedicationLog)
}

// Meal projects one meal
func Meal(m models.Meal) MealView {
	return MealView{
		ID:           identifier.String(m.ID),
		Datetime:     m.Datetime,
		MealType:     m.MealType,
		Description:  m.Description,
		Hydration:    m.Hydration,
		Observations: str(m.Observations),
	}
}

// Meals projects a meal array
func Meals(in []models.Meal) []MealView {
	return each(in, Meal)
}

// HygieneLog projects one hygiene log
func HygieneLog(h models.HygieneLog) HygieneLogView {
	return HygieneLogView{
		ID:              identifier.String(h.ID),
		Datetime:        h.Datetime,
		Type:            h.Type,
		Condition:       h.Condition,
		Status:          h.Status,
		AssistanceLevel: h.AssistanceLevel,
		Observations:    str(h.Observations),
	}
}

// HygieneLogs projects a hygiene log array
func HygieneLogs(in []models.HygieneLog) []HygieneLogView {
	return each(in, HygieneLog)
}

// WeightEntry projects one monthly weight point
func WeightEntry(w models.WeightEntry) WeightEntryView {
	return WeightEntryView{ID: identifier.String(w.ID), Month: w.Month, Value: w.Value}
}

// VitalSigns projects one vital signs record
func VitalSigns(v models.VitalSigns) VitalSignsView {
	return VitalSignsView{
		ID:       identifier.String(v.ID),
		Datetime: v.Datetime,
		BloodPressure: BloodPressureView{
			Systolic:  v.BloodPressure.Systolic,
			Diastolic: v.BloodPressure.Diastolic,
		},
		HeartRate:     v.HeartRate,
		Observations:  v.Observations,
		Weight:        num(v.Weight),
		WeightByMonth: each(v.WeightByMonth, WeightEntry),
	}
}

// VitalSignsList projects a vital signs array
func VitalSignsList(in []models.VitalSigns) []VitalSignsView {
	return each(in, VitalSigns)
}

// Symptom projects one symptom
func Symptom(s models.Symptom) SymptomView {
	return SymptomView{
		ID:           identifier.String(s.ID),
		Datetime:     s.Datetime,
		Description:  s.Description,
		Observations: str(s.Observations),
	}
}

// Symptoms projects a symptom array
func Symptoms(in []models.Symptom) []SymptomView {
	return each(in, Symptom)
}

// MedicalHistoryEntry projects one medical history entry
func MedicalHistoryEntry(e models.MedicalHistoryEntry) MedicalHistoryEntryView {
	return MedicalHistoryEntryView{
		ID:          identifier.String(e.ID),
		Date:        e.Date,
		Description: e.Description,
		Notes:       str(e.Notes),
	}
}

// MedicalHistory projects a medical history array
func MedicalHistory(in []models.MedicalHistoryEntry) []MedicalHistoryEntryView {
	return each(in, MedicalHistoryEntry)
}

// Caretaker projects a stored caretaker
func Caretaker(doc *models.Caretaker) CaretakerView {
	return CaretakerView{
		ID:           identifier.String(doc.ID),
		Name:         doc.Name,
		Email:        doc.Email,
		PasswordHash: doc.PasswordHash,
		Role:         doc.Role,
	}
}

// Caretakers projects every caretaker, returning an empty slice for none
func Caretakers(docs []models.Caretaker) []CaretakerView {
	out := make([]CaretakerView, 0, len(docs))
	for i := range docs {
		out = append(out, Caretaker(&docs[i]))
	}
	return out
}
