package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MedicationLog records one medication administration
type MedicationLog struct {
	ID             primitive.ObjectID `bson:"id"`
	Datetime       time.Time          `bson:"datetime"`
	MedicationName string             `bson:"medication_name"`
	Dose           string             `bson:"dose"`
	Route          string             `bson:"route"`
	Status         string             `bson:"status"`
	Observations   *string            `bson:"observations,omitempty"`
}

// Meal records one meal and the hydration that went with it
type Meal struct {
	ID           primitive.ObjectID `bson:"id"`
	Datetime     time.Time          `bson:"datetime"`
	MealType     string             `bson:"meal_type"`
	Description  string             `bson:"description"`
	Hydration    string             `bson:"hydration"`
	Observations *string            `bson:"observations,omitempty"`
}

// HygieneLog records one hygiene event
type HygieneLog struct {
	ID              primitive.ObjectID `bson:"id"`
	Datetime        time.Time          `bson:"datetime"`
	Type            string             `bson:"type"`
	Condition       string             `bson:"condition"`
	Status          string             `bson:"status"`
	AssistanceLevel string             `bson:"assistance_level"`
	Observations    *string            `bson:"observations,omitempty"`
}

// BloodPressure is a systolic/diastolic pair in mmHg
type BloodPressure struct {
	Systolic  int `bson:"systolic"`
	Diastolic int `bson:"diastolic"`
}

// WeightEntry is one point of the monthly weight series, value in kg
type WeightEntry struct {
	ID    primitive.ObjectID `bson:"id"`
	Month string             `bson:"month"`
	Value int                `bson:"value"`
}

// VitalSigns records one set of vital sign measurements
type VitalSigns struct {
	ID            primitive.ObjectID `bson:"id"`
	Datetime      time.Time          `bson:"datetime"`
	BloodPressure BloodPressure      `bson:"blood_pressure"`
	HeartRate     int                `bson:"heart_rate"`
	Observations  string             `bson:"observations"`
	Weight        *float64           `bson:"weight,omitempty"`
	WeightByMonth []WeightEntry      `bson:"weight_by_month"`
}

// Symptom records one observed symptom
type Symptom struct {
	ID           primitive.ObjectID `bson:"id"`
	Datetime     time.Time          `bson:"datetime"`
	Description  string             `bson:"description"`
	Observations *string            `bson:"observations,omitempty"`
}

// MedicalHistoryEntry records one entry of the patient's medical history
type MedicalHistoryEntry struct {
	ID          primitive.ObjectID `bson:"id"`
	Date        time.Time          `bson:"date"`
	Description string             `bson:"description"`
	Notes       *string            `bson:"notes,omitempty"`
}
