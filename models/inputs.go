package models

import (
	"net/mail"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/conectacare/conectacare-api/apperrors"
	"github.com/conectacare/conectacare-api/identifier"
)

type requirement struct {
	field   string
	present bool
}

func present(field string, ok bool) requirement {
	return requirement{field: field, present: ok}
}

func text(field, value string) requirement {
	return requirement{field: field, present: strings.TrimSpace(value) != ""}
}

func requireAll(reqs ...requirement) error {
	for _, r := range reqs {
		if !r.present {
			return apperrors.Newf(apperrors.Validation, "%s is required", r.field)
		}
	}
	return nil
}

func nonNegative(field string, v *float64) error {
	if v != nil && *v < 0 {
		return apperrors.Newf(apperrors.Validation, "%s must not be negative", field)
	}
	return nil
}

func strs(in []string) []string {
	if in == nil {
		return []string{}
	}
	return in
}

// PatientInput is the body accepted when creating a patient
type PatientInput struct {
	Name          string   `json:"name"`
	LastName      string   `json:"last_name"`
	BirthDate     *Date    `json:"birth_date"`
	Age           *int     `json:"age"`
	Document      *int64   `json:"document"`
	Cholesterol   *float64 `json:"cholesterol"`
	Glucose       *float64 `json:"glucose"`
	Conditions    []string `json:"conditions"`
	Medications   []string `json:"medications"`
	ActivityLevel *string  `json:"activity_level"`
	CaretakerIDs  []string `json:"caretakers_ids"`
}

// Validate checks required fields and value ranges
func (in PatientInput) Validate() error {
	err := requireAll(
		text("name", in.Name),
		text("last_name", in.LastName),
		present("birth_date", in.BirthDate != nil && !in.BirthDate.IsZero()),
		present("age", in.Age != nil),
		present("document", in.Document != nil),
	)
	if err != nil {
		return err
	}
	if *in.Age < 0 {
		return apperrors.New(apperrors.Validation, "age must not be negative")
	}
	if *in.Document <= 0 {
		return apperrors.New(apperrors.Validation, "document must be a positive number")
	}
	if err := nonNegative("cholesterol", in.Cholesterol); err != nil {
		return err
	}
	return nonNegative("glucose", in.Glucose)
}

// ToPatient validates the input and builds the document to insert. The
// identifier is left for the store to assign and every record array starts
// out empty so later pushes never meet a null field.
func (in PatientInput) ToPatient() (*Patient, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	caretakers, err := identifier.ParseAll("caretakers_ids", in.CaretakerIDs)
	if err != nil {
		return nil, err
	}
	return &Patient{
		Name:           strings.TrimSpace(in.Name),
		LastName:       strings.TrimSpace(in.LastName),
		BirthDate:      in.BirthDate.Midnight(),
		Age:            *in.Age,
		Document:       *in.Document,
		Cholesterol:    in.Cholesterol,
		Glucose:        in.Glucose,
		Conditions:     strs(in.Conditions),
		Medications:    strs(in.Medications),
		ActivityLevel:  in.ActivityLevel,
		CaretakerIDs:   caretakers,
		MedicalHistory: []MedicalHistoryEntry{},
		Meals:          []Meal{},
		MedicationLogs: []MedicationLog{},
		HygieneLogs:    []HygieneLog{},
		VitalSigns:     []VitalSigns{},
		Symptoms:       []Symptom{},
	}, nil
}

// MedicationLogInput is the body of a medication log create or replace
type MedicationLogInput struct {
	Datetime       *Timestamp `json:"datetime"`
	MedicationName string     `json:"medication_name"`
	Dose           string     `json:"dose"`
	Route          string     `json:"route"`
	Status         string     `json:"status"`
	Observations   *string    `json:"observations"`
}

// Record validates the input and builds the stored record with the given id
func (in MedicationLogInput) Record(id primitive.ObjectID) (MedicationLog, error) {
	err := requireAll(
		present("datetime", in.Datetime != nil),
		text("medication_name", in.MedicationName),
		text("dose", in.Dose),
		text("route", in.Route),
		text("status", in.Status),
	)
	if err != nil {
		return MedicationLog{}, err
	}
	return MedicationLog{
		ID:             id,
		Datetime:       Instant(in.Datetime.Time),
		MedicationName: in.MedicationName,
		Dose:           in.Dose,
		Route:          in.Route,
		Status:         in.Status,
		Observations:   in.Observations,
	}, nil
}

// MealInput is the body of a meal create or replace
type MealInput struct {
	Datetime     *Timestamp `json:"datetime"`
	MealType     string     `json:"meal_type"`
	Description  string     `json:"description"`
	Hydration    string     `json:"hydration"`
	Observations *string    `json:"observations"`
}

// Record validates the input and builds the stored record with the given id
func (in MealInput) Record(id primitive.ObjectID) (Meal, error) {
	err := requireAll(
		present("datetime", in.Datetime != nil),
		text("meal_type", in.MealType),
		text("description", in.Description),
		text("hydration", in.Hydration),
	)
	if err != nil {
		return Meal{}, err
	}
	return Meal{
		ID:           id,
		Datetime:     Instant(in.Datetime.Time),
		MealType:     in.MealType,
		Description:  in.Description,
		Hydration:    in.Hydration,
		Observations: in.Observations,
	}, nil
}

// HygieneLogInput is the body of a hygiene log create or replace
type HygieneLogInput struct {
	Datetime        *Timestamp `json:"datetime"`
	Type            string     `json:"type"`
	Condition       string     `json:"condition"`
	Status          string     `json:"status"`
	AssistanceLevel string     `json:"assistance_level"`
	Observations    *string    `json:"observations"`
}

// Record validates the input and builds the stored record with the given id
func (in HygieneLogInput) Record(id primitive.ObjectID) (HygieneLog, error) {
	err := requireAll(
		present("datetime", in.Datetime != nil),
		text("type", in.Type),
		text("condition", in.Condition),
		text("status", in.Status),
		text("assistance_level", in.AssistanceLevel),
	)
	if err != nil {
		return HygieneLog{}, err
	}
	return HygieneLog{
		ID:              id,
		Datetime:        Instant(in.Datetime.Time),
		Type:            in.Type,
		Condition:       in.Condition,
		Status:          in.Status,
		AssistanceLevel: in.AssistanceLevel,
		Observations:    in.Observations,
	}, nil
}

// BloodPressureInput is the blood pressure pair of a vital signs body
type BloodPressureInput struct {
	Systolic  *int `json:"systolic"`
	Diastolic *int `json:"diastolic"`
}

// WeightEntryInput is one point of the monthly weight series. ID is only
// honoured when replacing a vital signs record.
type WeightEntryInput struct {
	ID    string `json:"id,omitempty"`
	Month string `json:"month"`
	Value *int   `json:"value"`
}

// VitalSignsInput is the body of a vital signs create or replace
type VitalSignsInput struct {
	Datetime      *Timestamp          `json:"datetime"`
	BloodPressure *BloodPressureInput `json:"blood_pressure"`
	HeartRate     *int                `json:"heart_rate"`
	Observations  *string             `json:"observations"`
	Weight        *float64            `json:"weight"`
	WeightByMonth []WeightEntryInput  `json:"weight_by_month"`
}

func (in VitalSignsInput) validate() error {
	err := requireAll(
		present("datetime", in.Datetime != nil),
		present("blood_pressure", in.BloodPressure != nil),
		present("heart_rate", in.HeartRate != nil),
		present("observations", in.Observations != nil),
	)
	if err != nil {
		return err
	}
	err = requireAll(
		present("blood_pressure.systolic", in.BloodPressure.Systolic != nil),
		present("blood_pressure.diastolic", in.BloodPressure.Diastolic != nil),
	)
	if err != nil {
		return err
	}
	if *in.BloodPressure.Systolic <= 0 || *in.BloodPressure.Diastolic <= 0 {
		return apperrors.New(apperrors.Validation, "blood_pressure values must be positive")
	}
	if *in.HeartRate <= 0 {
		return apperrors.New(apperrors.Validation, "heart_rate must be positive")
	}
	return nonNegative("weight", in.Weight)
}

func (in VitalSignsInput) build(id primitive.ObjectID, keepEntryIDs bool) (VitalSigns, error) {
	if err := in.validate(); err != nil {
		return VitalSigns{}, err
	}
	weights := make([]WeightEntry, 0, len(in.WeightByMonth))
	for _, w := range in.WeightByMonth {
		entry, err := w.entry(keepEntryIDs)
		if err != nil {
			return VitalSigns{}, err
		}
		weights = append(weights, entry)
	}
	return VitalSigns{
		ID:       id,
		Datetime: Instant(in.Datetime.Time),
		BloodPressure: BloodPressure{
			Systolic:  *in.BloodPressure.Systolic,
			Diastolic: *in.BloodPressure.Diastolic,
		},
		HeartRate:     *in.HeartRate,
		Observations:  *in.Observations,
		Weight:        in.Weight,
		WeightByMonth: weights,
	}, nil
}

// Record validates the input and builds a new stored record. Every weight
// entry receives a fresh identifier.
func (in VitalSignsInput) Record(id primitive.ObjectID) (VitalSigns, error) {
	return in.build(id, false)
}

// Replacement builds the record that replaces an existing one. Weight entries
// that carry a well-formed id keep it.
func (in VitalSignsInput) Replacement(id primitive.ObjectID) (VitalSigns, error) {
	return in.build(id, true)
}

func (w WeightEntryInput) entry(keepID bool) (WeightEntry, error) {
	err := requireAll(
		text("weight_by_month.month", w.Month),
		present("weight_by_month.value", w.Value != nil),
	)
	if err != nil {
		return WeightEntry{}, err
	}
	if _, err := time.Parse("2006-01", w.Month); err != nil {
		return WeightEntry{}, apperrors.Wrap(apperrors.Validation, "weight_by_month.month must be YYYY-MM", err)
	}
	if *w.Value < 0 {
		return WeightEntry{}, apperrors.New(apperrors.Validation, "weight_by_month.value must not be negative")
	}
	id := identifier.Generate()
	if keepID && w.ID != "" {
		parsed, err := identifier.ParseNamed("weight_by_month.id", w.ID)
		if err != nil {
			return WeightEntry{}, err
		}
		id = parsed
	}
	return WeightEntry{ID: id, Month: w.Month, Value: *w.Value}, nil
}

// SymptomInput is the body of a symptom create or replace
type SymptomInput struct {
	Datetime     *Timestamp `json:"datetime"`
	Description  string     `json:"description"`
	Observations *string    `json:"observations"`
}

// Record validates the input and builds the stored record with the given id
func (in SymptomInput) Record(id primitive.ObjectID) (Symptom, error) {
	err := requireAll(
		present("datetime", in.Datetime != nil),
		text("description", in.Description),
	)
	if err != nil {
		return Symptom{}, err
	}
	return Symptom{
		ID:           id,
		Datetime:     Instant(in.Datetime.Time),
		Description:  in.Description,
		Observations: in.Observations,
	}, nil
}

// MedicalHistoryEntryInput is the body of a medical history create or replace
type MedicalHistoryEntryInput struct {
	Date        *Date   `json:"date"`
	Description string  `json:"description"`
	Notes       *string `json:"notes"`
}

// Record validates the input and builds the stored record with the given id
func (in MedicalHistoryEntryInput) Record(id primitive.ObjectID) (MedicalHistoryEntry, error) {
	err := requireAll(
		present("date", in.Date != nil && !in.Date.IsZero()),
		text("description", in.Description),
	)
	if err != nil {
		return MedicalHistoryEntry{}, err
	}
	return MedicalHistoryEntry{
		ID:          id,
		Date:        Instant(in.Date.Time),
		Description: in.Description,
		Notes:       in.Notes,
	}, nil
}

// CaretakerInput is the body accepted when creating a caretaker. Either the
// plain Password or a precomputed PasswordHash must be given.
type CaretakerInput struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Password     string `json:"password,omitempty"`
	PasswordHash string `json:"passwordHash,omitempty"`
	Role         string `json:"role"`
}

// NormalizedEmail is the trimmed, lower-cased email used as uniqueness key
func (in CaretakerInput) NormalizedEmail() string {
	return strings.ToLower(strings.TrimSpace(in.Email))
}

// Validate checks required fields and the email address syntax
func (in CaretakerInput) Validate() error {
	err := requireAll(
		text("name", in.Name),
		text("email", in.Email),
		present("password", in.Password != "" || in.PasswordHash != ""),
		text("role", in.Role),
	)
	if err != nil {
		return err
	}
	if _, err := mail.ParseAddress(in.NormalizedEmail()); err != nil {
		return apperrors.Wrap(apperrors.Validation, "email is not a valid address", err)
	}
	return nil
}
