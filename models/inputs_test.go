package models_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/conectacare/conectacare-api/apperrors"
	"github.com/conectacare/conectacare-api/models"
)

func decode(t *testing.T, body string, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal([]byte(body), v))
}

func TestPatientInputToPatient(t *testing.T) {
	caretaker := primitive.NewObjectID()
	var in models.PatientInput
	decode(t, `{
		"name": " Ana ",
		"last_name": "Pérez",
		"birth_date": "1950-03-14",
		"age": 74,
		"document": 123456,
		"conditions": ["diabetes"],
		"caretakers_ids": ["`+caretaker.Hex()+`"]
	}`, &in)

	p, err := in.ToPatient()
	require.NoError(t, err)
	assert.True(t, p.ID.IsZero())
	assert.Equal(t, "Ana", p.Name)
	assert.Equal(t, time.Date(1950, 3, 14, 0, 0, 0, 0, time.UTC), p.BirthDate)
	assert.Equal(t, int64(123456), p.Document)
	assert.Equal(t, []string{"diabetes"}, p.Conditions)
	assert.Equal(t, []string{}, p.Medications)
	assert.Equal(t, []primitive.ObjectID{caretaker}, p.CaretakerIDs)
	assert.NotNil(t, p.Meals)
	assert.NotNil(t, p.MedicationLogs)
	assert.NotNil(t, p.HygieneLogs)
	assert.NotNil(t, p.VitalSigns)
	assert.NotNil(t, p.Symptoms)
	assert.NotNil(t, p.MedicalHistory)
	assert.Nil(t, p.Cholesterol)
}

func TestPatientInputBirthDateTimestampIsTruncatedToMidnight(t *testing.T) {
	var in models.PatientInput
	decode(t, `{"name":"a","last_name":"b","birth_date":"1950-03-14T17:45:00Z","age":1,"document":1}`, &in)

	p, err := in.ToPatient()
	require.NoError(t, err)
	assert.Equal(t, time.Date(1950, 3, 14, 0, 0, 0, 0, time.UTC), p.BirthDate)
}

func TestPatientInputValidation(t *testing.T) {
	tests := []struct {
		name string
		body string
		kind apperrors.Kind
	}{
		{"missing name", `{"last_name":"b","birth_date":"1950-03-14","age":1,"document":1}`, apperrors.Validation},
		{"missing document", `{"name":"a","last_name":"b","birth_date":"1950-03-14","age":1}`, apperrors.Validation},
		{"missing age", `{"name":"a","last_name":"b","birth_date":"1950-03-14","document":1}`, apperrors.Validation},
		{"negative document", `{"name":"a","last_name":"b","birth_date":"1950-03-14","age":1,"document":-4}`, apperrors.Validation},
		{"negative glucose", `{"name":"a","last_name":"b","birth_date":"1950-03-14","age":1,"document":4,"glucose":-1}`, apperrors.Validation},
		{"bad caretaker id", `{"name":"a","last_name":"b","birth_date":"1950-03-14","age":1,"document":4,"caretakers_ids":["x"]}`, apperrors.InvalidIDFormat},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var in models.PatientInput
			decode(t, tt.body, &in)
			_, err := in.ToPatient()
			assert.Equal(t, tt.kind, apperrors.KindOf(err))
		})
	}
}

func TestDateRejectsGarbage(t *testing.T) {
	var d models.Date
	assert.Error(t, json.Unmarshal([]byte(`"14/03/1950"`), &d))
	assert.Error(t, json.Unmarshal([]byte(`12`), &d))
	assert.NoError(t, json.Unmarshal([]byte(`null`), &d))
	assert.True(t, d.IsZero())
}

func TestMealInputRecord(t *testing.T) {
	var in models.MealInput
	decode(t, `{"datetime":"2024-01-01T08:00:00.123456Z","meal_type":"breakfast","description":"oatmeal","hydration":"200ml water"}`, &in)

	id := primitive.NewObjectID()
	meal, err := in.Record(id)
	require.NoError(t, err)
	assert.Equal(t, id, meal.ID)
	assert.Equal(t, time.Date(2024, 1, 1, 8, 0, 0, 123000000, time.UTC), meal.Datetime)
	assert.Nil(t, meal.Observations)

	in.Hydration = " "
	_, err = in.Record(id)
	assert.True(t, apperrors.Is(err, apperrors.Validation))
}

func TestMedicationLogInputRequiresDatetime(t *testing.T) {
	in := models.MedicationLogInput{MedicationName: "metformin", Dose: "500mg", Route: "oral", Status: "given"}
	_, err := in.Record(primitive.NewObjectID())
	assert.True(t, apperrors.Is(err, apperrors.Validation))
	assert.Equal(t, "datetime is required", apperrors.Message(err))
}

func TestHygieneAndSymptomInputs(t *testing.T) {
	at := time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)

	h, err := models.HygieneLogInput{Datetime: &models.Timestamp{Time: at}, Type: "bath", Condition: "ok", Status: "done", AssistanceLevel: "full"}.Record(primitive.NewObjectID())
	require.NoError(t, err)
	assert.Equal(t, "full", h.AssistanceLevel)

	_, err = models.HygieneLogInput{Datetime: &models.Timestamp{Time: at}, Type: "bath"}.Record(primitive.NewObjectID())
	assert.True(t, apperrors.Is(err, apperrors.Validation))

	s, err := models.SymptomInput{Datetime: &models.Timestamp{Time: at}, Description: "cough"}.Record(primitive.NewObjectID())
	require.NoError(t, err)
	assert.Equal(t, "cough", s.Description)
}

func TestMedicalHistoryEntryInputAcceptsCalendarDate(t *testing.T) {
	var in models.MedicalHistoryEntryInput
	decode(t, `{"date":"2019-06-01","description":"hip surgery"}`, &in)

	entry, err := in.Record(primitive.NewObjectID())
	require.NoError(t, err)
	assert.Equal(t, time.Date(2019, 6, 1, 0, 0, 0, 0, time.UTC), entry.Date)
	assert.Nil(t, entry.Notes)
}

func TestVitalSignsInput(t *testing.T) {
	body := `{
		"datetime": "2024-01-01T08:00:00Z",
		"blood_pressure": {"systolic": 130, "diastolic": 85},
		"heart_rate": 72,
		"observations": "",
		"weight_by_month": [{"month": "2024-01", "value": 70}]
	}`
	var in models.VitalSignsInput
	decode(t, body, &in)

	v, err := in.Record(primitive.NewObjectID())
	require.NoError(t, err)
	assert.Equal(t, models.BloodPressure{Systolic: 130, Diastolic: 85}, v.BloodPressure)
	require.Len(t, v.WeightByMonth, 1)
	assert.False(t, v.WeightByMonth[0].ID.IsZero())
	assert.Nil(t, v.Weight)
}

func TestVitalSignsInputRequiresObservations(t *testing.T) {
	var in models.VitalSignsInput
	decode(t, `{"datetime":"2024-01-01T08:00:00Z","blood_pressure":{"systolic":130,"diastolic":85},"heart_rate":72}`, &in)
	_, err := in.Record(primitive.NewObjectID())
	assert.True(t, apperrors.Is(err, apperrors.Validation))
	assert.Equal(t, "observations is required", apperrors.Message(err))
}

func TestVitalSignsInputRejectsBadValues(t *testing.T) {
	bodies := []string{
		`{"datetime":"2024-01-01T08:00:00Z","blood_pressure":{"systolic":130},"heart_rate":72,"observations":""}`,
		`{"datetime":"2024-01-01T08:00:00Z","blood_pressure":{"systolic":0,"diastolic":85},"heart_rate":72,"observations":""}`,
		`{"datetime":"2024-01-01T08:00:00Z","blood_pressure":{"systolic":130,"diastolic":85},"heart_rate":0,"observations":""}`,
		`{"datetime":"2024-01-01T08:00:00Z","blood_pressure":{"systolic":130,"diastolic":85},"heart_rate":72,"observations":"","weight":-2}`,
		`{"datetime":"2024-01-01T08:00:00Z","blood_pressure":{"systolic":130,"diastolic":85},"heart_rate":72,"observations":"","weight_by_month":[{"month":"January","value":70}]}`,
	}
	for _, body := range bodies {
		var in models.VitalSignsInput
		decode(t, body, &in)
		_, err := in.Record(primitive.NewObjectID())
		assert.True(t, apperrors.Is(err, apperrors.Validation), body)
	}
}

func TestVitalSignsReplacementKeepsWeightEntryIDs(t *testing.T) {
	kept := primitive.NewObjectID()
	var in models.VitalSignsInput
	decode(t, `{
		"datetime": "2024-01-01T08:00:00Z",
		"blood_pressure": {"systolic": 120, "diastolic": 80},
		"heart_rate": 70,
		"observations": "calm",
		"weight_by_month": [{"id": "`+kept.Hex()+`", "month": "2024-01", "value": 70}, {"month": "2024-02", "value": 69}]
	}`, &in)

	replaced, err := in.Replacement(primitive.NewObjectID())
	require.NoError(t, err)
	require.Len(t, replaced.WeightByMonth, 2)
	assert.Equal(t, kept, replaced.WeightByMonth[0].ID)
	assert.False(t, replaced.WeightByMonth[1].ID.IsZero())

	added, err := in.Record(primitive.NewObjectID())
	require.NoError(t, err)
	assert.NotEqual(t, kept, added.WeightByMonth[0].ID)

	in.WeightByMonth[0].ID = "bogus"
	_, err = in.Replacement(primitive.NewObjectID())
	assert.True(t, apperrors.Is(err, apperrors.InvalidIDFormat))
}

func TestCaretakerInput(t *testing.T) {
	in := models.CaretakerInput{Name: "Luz", Email: " Luz@Example.COM ", Password: "secret", Role: "nurse"}
	assert.NoError(t, in.Validate())
	assert.Equal(t, "luz@example.com", in.NormalizedEmail())

	in.Password = ""
	assert.True(t, apperrors.Is(in.Validate(), apperrors.Validation))

	in.PasswordHash = "$2a$10$abcdefghijklmnopqrstuv"
	assert.NoError(t, in.Validate())

	in.Email = "not an email"
	assert.True(t, apperrors.Is(in.Validate(), apperrors.Validation))
}

func TestArrayFieldPaths(t *testing.T) {
	assert.Equal(t, "meals.id", models.MealsField.IDPath())
	assert.Equal(t, "vital_signs.$", models.VitalSignsField.Positional())
	assert.True(t, models.MedicalHistoryField.Valid())
	assert.False(t, models.ArrayField("caretakers_ids").Valid())
	assert.Len(t, models.ArrayFields, 6)
}

func TestZonelessTimestampsAreReadAsUTC(t *testing.T) {
	seconds := time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)
	minutes := time.Date(2024, 1, 1, 8, 30, 0, 0, time.UTC)
	id := primitive.NewObjectID()

	tests := []struct {
		name string
		body string
		want time.Time
		at   func(t *testing.T, body string) time.Time
	}{
		{
			name: "meal with seconds",
			body: `{"datetime":"2024-01-01T08:00:00","meal_type":"lunch","description":"soup","hydration":"water"}`,
			want: seconds,
			at: func(t *testing.T, body string) time.Time {
				var in models.MealInput
				decode(t, body, &in)
				r, err := in.Record(id)
				require.NoError(t, err)
				return r.Datetime
			},
		},
		{
			name: "medication log from a datetime-local input",
			body: `{"datetime":"2024-01-01T08:30","medication_name":"m","dose":"1","route":"oral","status":"given"}`,
			want: minutes,
			at: func(t *testing.T, body string) time.Time {
				var in models.MedicationLogInput
				decode(t, body, &in)
				r, err := in.Record(id)
				require.NoError(t, err)
				return r.Datetime
			},
		},
		{
			name: "hygiene log",
			body: `{"datetime":"2024-01-01T08:00:00","type":"bath","condition":"ok","status":"done","assistance_level":"full"}`,
			want: seconds,
			at: func(t *testing.T, body string) time.Time {
				var in models.HygieneLogInput
				decode(t, body, &in)
				r, err := in.Record(id)
				require.NoError(t, err)
				return r.Datetime
			},
		},
		{
			name: "vital signs",
			body: `{"datetime":"2024-01-01T08:30","blood_pressure":{"systolic":120,"diastolic":80},"heart_rate":70,"observations":""}`,
			want: minutes,
			at: func(t *testing.T, body string) time.Time {
				var in models.VitalSignsInput
				decode(t, body, &in)
				r, err := in.Record(id)
				require.NoError(t, err)
				return r.Datetime
			},
		},
		{
			name: "symptom",
			body: `{"datetime":"2024-01-01T08:00:00.250","description":"cough"}`,
			want: seconds.Add(250 * time.Millisecond),
			at: func(t *testing.T, body string) time.Time {
				var in models.SymptomInput
				decode(t, body, &in)
				r, err := in.Record(id)
				require.NoError(t, err)
				return r.Datetime
			},
		},
		{
			name: "medical history date",
			body: `{"date":"2024-01-01T08:00:00","description":"fracture"}`,
			want: seconds,
			at: func(t *testing.T, body string) time.Time {
				var in models.MedicalHistoryEntryInput
				decode(t, body, &in)
				r, err := in.Record(id)
				require.NoError(t, err)
				return r.Date
			},
		},
		{
			name: "birth date",
			body: `{"name":"a","last_name":"b","birth_date":"1950-03-14T00:00:00","age":1,"document":1}`,
			want: time.Date(1950, 3, 14, 0, 0, 0, 0, time.UTC),
			at: func(t *testing.T, body string) time.Time {
				var in models.PatientInput
				decode(t, body, &in)
				p, err := in.ToPatient()
				require.NoError(t, err)
				return p.BirthDate
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.at(t, tt.body))
		})
	}
}

func TestTimestampRejectsGarbage(t *testing.T) {
	var ts models.Timestamp
	assert.Error(t, json.Unmarshal([]byte(`"2024-01-01"`), &ts))
	assert.Error(t, json.Unmarshal([]byte(`"01/01/2024 08:00"`), &ts))
	assert.Error(t, json.Unmarshal([]byte(`1704096000`), &ts))

	var in models.MealInput
	assert.Error(t, json.Unmarshal([]byte(`{"datetime":"yesterday"}`), &in))
}
