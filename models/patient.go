package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Patient holds the structure for the patient collection in mongo. The six
// record arrays are owned by the patient document and are only ever changed
// through single-document array updates.
type Patient struct {
	ID             primitive.ObjectID    `bson:"_id,omitempty"`
	Name           string                `bson:"name"`
	LastName       string                `bson:"last_name"`
	BirthDate      time.Time             `bson:"birth_date"`
	Age            int                   `bson:"age"`
	Document       int64                 `bson:"document"`
	Cholesterol    *float64              `bson:"cholesterol,omitempty"`
	Glucose        *float64              `bson:"glucose,omitempty"`
	Conditions     []string              `bson:"conditions"`
	Medications    []string              `bson:"medications"`
	ActivityLevel  *string               `bson:"activity_level,omitempty"`
	CaretakerIDs   []primitive.ObjectID  `bson:"caretakers_ids"`
	MedicalHistory []MedicalHistoryEntry `bson:"medical_history"`
	Meals          []Meal                `bson:"meals"`
	MedicationLogs []MedicationLog       `bson:"medication_logs"`
	HygieneLogs    []HygieneLog          `bson:"hygiene_logs"`
	VitalSigns     []VitalSigns          `bson:"vital_signs"`
	Symptoms       []Symptom             `bson:"symptoms"`
}

// DocumentField is the patient uniqueness key
const DocumentField = "document"

// ArrayField names one of the record arrays embedded in a patient
type ArrayField string

// Record arrays of a patient document
const (
	MedicationLogsField ArrayField = "medication_logs"
	MealsField          ArrayField = "meals"
	HygieneLogsField    ArrayField = "hygiene_logs"
	VitalSignsField     ArrayField = "vital_signs"
	SymptomsField       ArrayField = "symptoms"
	MedicalHistoryField ArrayField = "medical_history"
)

// ArrayFields lists every record array, in route order
var ArrayFields = []ArrayField{
	MedicationLogsField,
	MealsField,
	HygieneLogsField,
	VitalSignsField,
	SymptomsField,
	MedicalHistoryField,
}

// IDPath is the dotted path of the element identifier, e.g. "meals.id"
func (f ArrayField) IDPath() string {
	return string(f) + ".id"
}

// Positional is the path of the element matched by the query, e.g. "meals.$"
func (f ArrayField) Positional() string {
	return string(f) + ".$"
}

// Valid reports whether f names a known record array
func (f ArrayField) Valid() bool {
	for _, known := range ArrayFields {
		if f == known {
			return true
		}
	}
	return false
}
