package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/conectacare/conectacare-api/apperrors"
	"github.com/conectacare/conectacare-api/databases/mocks"
	"github.com/conectacare/conectacare-api/models"
	"github.com/conectacare/conectacare-api/services"
)

func intp(v int) *int       { return &v }
func int64p(v int64) *int64 { return &v }
func strp(v string) *string { return &v }

func ts(t time.Time) *models.Timestamp { return &models.Timestamp{Time: t} }

func patientInput(document int64) models.PatientInput {
	return models.PatientInput{
		Name:      "Ana",
		LastName:  "Pérez",
		BirthDate: &models.Date{Time: time.Date(1950, 3, 14, 9, 30, 0, 0, time.UTC)},
		Age:       intp(74),
		Document:  int64p(document),
	}
}

func TestCreatePatient(t *testing.T) {
	db := &mocks.PatientDatabase{}
	id := primitive.NewObjectID()
	ctx := context.Background()

	db.On("FindOneByField", ctx, "document", int64(123456)).
		Return(nil, apperrors.New(apperrors.NotFound, "no patient"))
	db.On("InsertOne", ctx, mock.MatchedBy(func(p *models.Patient) bool {
		return p.ID.IsZero() && p.BirthDate.Equal(time.Date(1950, 3, 14, 0, 0, 0, 0, time.UTC))
	})).Return(id, nil)
	db.On("FindByID", ctx, id).Return(&models.Patient{ID: id, Name: "Ana", Document: 123456}, nil)

	view, err := services.NewPatientService(db).CreatePatient(ctx, patientInput(123456))
	require.NoError(t, err)
	assert.Equal(t, id.Hex(), view.ID)
	assert.Equal(t, int64(123456), view.Document)
	assert.Equal(t, []string{}, view.Conditions)
	assert.NotNil(t, view.Meals)
	db.AssertExpectations(t)
}

func TestCreatePatientDuplicateDocument(t *testing.T) {
	db := &mocks.PatientDatabase{}
	ctx := context.Background()
	db.On("FindOneByField", ctx, "document", int64(123456)).Return(&models.Patient{Document: 123456}, nil)

	_, err := services.NewPatientService(db).CreatePatient(ctx, patientInput(123456))
	assert.True(t, apperrors.Is(err, apperrors.Conflict))
	db.AssertNotCalled(t, "InsertOne", mock.Anything, mock.Anything)
}

func TestCreatePatientDuplicateRejectedByIndex(t *testing.T) {
	db := &mocks.PatientDatabase{}
	ctx := context.Background()
	db.On("FindOneByField", ctx, "document", int64(7)).Return(nil, apperrors.New(apperrors.NotFound, "no patient"))
	db.On("InsertOne", ctx, mock.Anything).Return(primitive.NilObjectID, apperrors.New(apperrors.Conflict, "E11000"))

	_, err := services.NewPatientService(db).CreatePatient(ctx, patientInput(7))
	assert.True(t, apperrors.Is(err, apperrors.Conflict))
	assert.Equal(t, "patient with document 7 already exists", apperrors.Message(err))
}

func TestCreatePatientStoreDown(t *testing.T) {
	db := &mocks.PatientDatabase{}
	ctx := context.Background()
	db.On("FindOneByField", ctx, "document", int64(7)).
		Return(nil, apperrors.Wrap(apperrors.StoreUnavailable, "down", errors.New("dial tcp")))

	_, err := services.NewPatientService(db).CreatePatient(ctx, patientInput(7))
	assert.True(t, apperrors.Is(err, apperrors.StoreUnavailable))
}

func TestCreatePatientInvalidInput(t *testing.T) {
	db := &mocks.PatientDatabase{}
	in := patientInput(7)
	in.Name = ""

	_, err := services.NewPatientService(db).CreatePatient(context.Background(), in)
	assert.True(t, apperrors.Is(err, apperrors.Validation))
	db.AssertNotCalled(t, "FindOneByField", mock.Anything, mock.Anything, mock.Anything)
}

func TestGetPatient(t *testing.T) {
	db := &mocks.PatientDatabase{}
	ctx := context.Background()
	id := primitive.NewObjectID()
	absent := primitive.NewObjectID()
	db.On("FindByID", ctx, id).Return(&models.Patient{ID: id, Name: "Ana"}, nil)
	db.On("FindByID", ctx, absent).Return(nil, apperrors.New(apperrors.NotFound, "patient not found"))
	svc := services.NewPatientService(db)

	first, err := svc.GetPatient(ctx, id.Hex())
	require.NoError(t, err)
	second, err := svc.GetPatient(ctx, id.Hex())
	require.NoError(t, err)
	assert.Equal(t, first, second)

	_, err = svc.GetPatient(ctx, "not-a-valid-id")
	assert.True(t, apperrors.Is(err, apperrors.InvalidIDFormat))

	_, err = svc.GetPatient(ctx, absent.Hex())
	assert.True(t, apperrors.Is(err, apperrors.NotFound))
}

func TestListPatientsEmpty(t *testing.T) {
	db := &mocks.PatientDatabase{}
	db.On("FindAll", context.Background()).Return([]models.Patient{}, nil)

	views, err := services.NewPatientService(db).ListPatients(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, views)
	assert.Empty(t, views)
}

func TestAddMedicationLog(t *testing.T) {
	db := &mocks.PatientDatabase{}
	ctx := context.Background()
	pid := primitive.NewObjectID()
	at := time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)
	in := models.MedicationLogInput{Datetime: ts(at), MedicationName: "metformin", Dose: "500mg", Route: "oral", Status: "given"}

	var pushed models.MedicationLog
	db.On("FindByID", ctx, pid).Return(&models.Patient{ID: pid}, nil)
	db.On("AppendToArray", ctx, pid, models.MedicationLogsField, mock.AnythingOfType("models.MedicationLog")).
		Return(nil).Run(func(args mock.Arguments) {
		pushed = args.Get(3).(models.MedicationLog)
	})

	view, err := services.NewPatientService(db).AddMedicationLog(ctx, pid.Hex(), in)
	require.NoError(t, err)
	assert.NotEmpty(t, view.ID)
	assert.Equal(t, pushed.ID.Hex(), view.ID)
	assert.Equal(t, "metformin", view.MedicationName)
	assert.Equal(t, "", view.Observations)
	assert.Equal(t, at, view.Datetime)
}

func TestAddRecordToMissingPatient(t *testing.T) {
	db := &mocks.PatientDatabase{}
	ctx := context.Background()
	pid := primitive.NewObjectID()
	at := time.Now()
	db.On("FindByID", ctx, pid).Return(nil, apperrors.New(apperrors.NotFound, "patient not found"))

	_, err := services.NewPatientService(db).AddSymptom(ctx, pid.Hex(), models.SymptomInput{Datetime: ts(at), Description: "cough"})
	assert.True(t, apperrors.Is(err, apperrors.NotFound))
	db.AssertNotCalled(t, "AppendToArray", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestAddRecordAppendFailed(t *testing.T) {
	db := &mocks.PatientDatabase{}
	ctx := context.Background()
	pid := primitive.NewObjectID()
	at := time.Now()
	db.On("FindByID", ctx, pid).Return(&models.Patient{ID: pid}, nil)
	db.On("AppendToArray", ctx, pid, models.HygieneLogsField, mock.Anything).
		Return(apperrors.New(apperrors.AppendFailed, "could not append"))

	_, err := services.NewPatientService(db).AddHygieneLog(ctx, pid.Hex(), models.HygieneLogInput{
		Datetime: ts(at), Type: "bath", Condition: "good", Status: "done", AssistanceLevel: "partial",
	})
	assert.True(t, apperrors.Is(err, apperrors.AppendFailed))
}

func TestAddRecordInvalidPatientID(t *testing.T) {
	db := &mocks.PatientDatabase{}
	_, err := services.NewPatientService(db).AddMeal(context.Background(), "xyz", models.MealInput{})
	assert.True(t, apperrors.Is(err, apperrors.InvalidIDFormat))
	assert.Equal(t, "invalid patient_id format", apperrors.Message(err))
}

func TestGetMealsEmpty(t *testing.T) {
	db := &mocks.PatientDatabase{}
	ctx := context.Background()
	pid := primitive.NewObjectID()
	db.On("FindByID", ctx, pid).Return(&models.Patient{ID: pid}, nil)

	meals, err := services.NewPatientService(db).GetMeals(ctx, pid.Hex())
	require.NoError(t, err)
	assert.NotNil(t, meals)
	assert.Empty(t, meals)
}

func TestGetMedicalHistory(t *testing.T) {
	db := &mocks.PatientDatabase{}
	ctx := context.Background()
	pid := primitive.NewObjectID()
	eid := primitive.NewObjectID()
	db.On("FindByID", ctx, pid).Return(&models.Patient{ID: pid, MedicalHistory: []models.MedicalHistoryEntry{
		{ID: eid, Description: "hip surgery", Notes: strp("left side")},
	}}, nil)

	entries, err := services.NewPatientService(db).GetMedicalHistory(ctx, pid.Hex())
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, eid.Hex(), entries[0].ID)
	assert.Equal(t, "left side", entries[0].Notes)
}

func TestUpdateMeal(t *testing.T) {
	db := &mocks.PatientDatabase{}
	ctx := context.Background()
	pid := primitive.NewObjectID()
	mid := primitive.NewObjectID()
	at := time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)
	in := models.MealInput{Datetime: ts(at), MealType: "breakfast", Description: "oatmeal", Hydration: "250ml water"}

	db.On("ReplaceInArray", ctx, pid, models.MealsField, mid, mock.MatchedBy(func(m models.Meal) bool {
		return m.ID == mid && m.Hydration == "250ml water"
	})).Return(nil)

	view, err := services.NewPatientService(db).UpdateMeal(ctx, pid.Hex(), mid.Hex(), in)
	require.NoError(t, err)
	assert.Equal(t, mid.Hex(), view.ID)
	assert.Equal(t, "250ml water", view.Hydration)
}

func TestUpdateRecordNotFound(t *testing.T) {
	db := &mocks.PatientDatabase{}
	ctx := context.Background()
	pid := primitive.NewObjectID()
	sid := primitive.NewObjectID()
	at := time.Now()
	db.On("ReplaceInArray", ctx, pid, models.SymptomsField, sid, mock.Anything).
		Return(apperrors.New(apperrors.NotFound, "no symptoms record with that id for this patient"))

	_, err := services.NewPatientService(db).UpdateSymptom(ctx, pid.Hex(), sid.Hex(), models.SymptomInput{Datetime: ts(at), Description: "fever"})
	assert.True(t, apperrors.Is(err, apperrors.NotFound))
}

func TestUpdateRecordInvalidRecordID(t *testing.T) {
	db := &mocks.PatientDatabase{}
	_, err := services.NewPatientService(db).UpdateMedicationLog(context.Background(), primitive.NewObjectID().Hex(), "42", models.MedicationLogInput{})
	assert.True(t, apperrors.Is(err, apperrors.InvalidIDFormat))
	assert.Equal(t, "invalid log_id format", apperrors.Message(err))
	db.AssertNotCalled(t, "ReplaceInArray", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestVitalSignsWeightEntries(t *testing.T) {
	db := &mocks.PatientDatabase{}
	ctx := context.Background()
	pid := primitive.NewObjectID()
	vid := primitive.NewObjectID()
	kept := primitive.NewObjectID()
	at := time.Date(2024, 2, 1, 8, 0, 0, 0, time.UTC)
	in := models.VitalSignsInput{
		Datetime:      ts(at),
		BloodPressure: &models.BloodPressureInput{Systolic: intp(120), Diastolic: intp(80)},
		HeartRate:     intp(70),
		Observations:  strp("calm"),
		WeightByMonth: []models.WeightEntryInput{{ID: kept.Hex(), Month: "2024-01", Value: intp(70)}},
	}

	db.On("FindByID", ctx, pid).Return(&models.Patient{ID: pid}, nil)
	db.On("AppendToArray", ctx, pid, models.VitalSignsField, mock.Anything).Return(nil)
	db.On("ReplaceInArray", ctx, pid, models.VitalSignsField, vid, mock.Anything).Return(nil)
	svc := services.NewPatientService(db)

	added, err := svc.AddVitalSigns(ctx, pid.Hex(), in)
	require.NoError(t, err)
	require.Len(t, added.WeightByMonth, 1)
	assert.NotEqual(t, kept.Hex(), added.WeightByMonth[0].ID)
	assert.Equal(t, float64(0), added.Weight)

	updated, err := svc.UpdateVitalSigns(ctx, pid.Hex(), vid.Hex(), in)
	require.NoError(t, err)
	assert.Equal(t, vid.Hex(), updated.ID)
	assert.Equal(t, kept.Hex(), updated.WeightByMonth[0].ID)
}

func TestEveryRecordKindTargetsItsArray(t *testing.T) {
	at := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	tests := []struct {
		name   string
		field  models.ArrayField
		add    func(*services.PatientService, string) (string, error)
		update func(*services.PatientService, string, string) (string, error)
	}{
		{
			name:  "medication logs",
			field: models.MedicationLogsField,
			add: func(s *services.PatientService, pid string) (string, error) {
				v, err := s.AddMedicationLog(context.Background(), pid, models.MedicationLogInput{Datetime: ts(at), MedicationName: "m", Dose: "1", Route: "oral", Status: "given"})
				return v.ID, err
			},
			update: func(s *services.PatientService, pid, rid string) (string, error) {
				v, err := s.UpdateMedicationLog(context.Background(), pid, rid, models.MedicationLogInput{Datetime: ts(at), MedicationName: "m", Dose: "2", Route: "oral", Status: "given"})
				return v.ID, err
			},
		},
		{
			name:  "meals",
			field: models.MealsField,
			add: func(s *services.PatientService, pid string) (string, error) {
				v, err := s.AddMeal(context.Background(), pid, models.MealInput{Datetime: ts(at), MealType: "lunch", Description: "soup", Hydration: "water"})
				return v.ID, err
			},
			update: func(s *services.PatientService, pid, rid string) (string, error) {
				v, err := s.UpdateMeal(context.Background(), pid, rid, models.MealInput{Datetime: ts(at), MealType: "lunch", Description: "rice", Hydration: "water"})
				return v.ID, err
			},
		},
		{
			name:  "hygiene logs",
			field: models.HygieneLogsField,
			add: func(s *services.PatientService, pid string) (string, error) {
				v, err := s.AddHygieneLog(context.Background(), pid, models.HygieneLogInput{Datetime: ts(at), Type: "bath", Condition: "good", Status: "done", AssistanceLevel: "full"})
				return v.ID, err
			},
			update: func(s *services.PatientService, pid, rid string) (string, error) {
				v, err := s.UpdateHygieneLog(context.Background(), pid, rid, models.HygieneLogInput{Datetime: ts(at), Type: "bath", Condition: "good", Status: "done", AssistanceLevel: "partial"})
				return v.ID, err
			},
		},
		{
			name:  "vital signs",
			field: models.VitalSignsField,
			add: func(s *services.PatientService, pid string) (string, error) {
				v, err := s.AddVitalSigns(context.Background(), pid, models.VitalSignsInput{
					Datetime: ts(at), BloodPressure: &models.BloodPressureInput{Systolic: intp(120), Diastolic: intp(80)}, HeartRate: intp(70), Observations: strp(""),
				})
				return v.ID, err
			},
			update: func(s *services.PatientService, pid, rid string) (string, error) {
				v, err := s.UpdateVitalSigns(context.Background(), pid, rid, models.VitalSignsInput{
					Datetime: ts(at), BloodPressure: &models.BloodPressureInput{Systolic: intp(130), Diastolic: intp(85)}, HeartRate: intp(72), Observations: strp("rested"),
				})
				return v.ID, err
			},
		},
		{
			name:  "symptoms",
			field: models.SymptomsField,
			add: func(s *services.PatientService, pid string) (string, error) {
				v, err := s.AddSymptom(context.Background(), pid, models.SymptomInput{Datetime: ts(at), Description: "cough"})
				return v.ID, err
			},
			update: func(s *services.PatientService, pid, rid string) (string, error) {
				v, err := s.UpdateSymptom(context.Background(), pid, rid, models.SymptomInput{Datetime: ts(at), Description: "dry cough"})
				return v.ID, err
			},
		},
		{
			name:  "medical history",
			field: models.MedicalHistoryField,
			add: func(s *services.PatientService, pid string) (string, error) {
				v, err := s.AddMedicalHistoryEntry(context.Background(), pid, models.MedicalHistoryEntryInput{Date: &models.Date{Time: at}, Description: "fracture"})
				return v.ID, err
			},
			update: func(s *services.PatientService, pid, rid string) (string, error) {
				v, err := s.UpdateMedicalHistoryEntry(context.Background(), pid, rid, models.MedicalHistoryEntryInput{Date: &models.Date{Time: at}, Description: "healed fracture"})
				return v.ID, err
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := &mocks.PatientDatabase{}
			pid := primitive.NewObjectID()
			rid := primitive.NewObjectID()
			db.On("FindByID", mock.Anything, pid).Return(&models.Patient{ID: pid}, nil)
			db.On("AppendToArray", mock.Anything, pid, tt.field, mock.Anything).Return(nil)
			db.On("ReplaceInArray", mock.Anything, pid, tt.field, rid, mock.Anything).Return(nil)
			svc := services.NewPatientService(db)

			added, err := tt.add(svc, pid.Hex())
			require.NoError(t, err)
			assert.NotEmpty(t, added)

			updated, err := tt.update(svc, pid.Hex(), rid.Hex())
			require.NoError(t, err)
			assert.Equal(t, rid.Hex(), updated)
			db.AssertExpectations(t)
		})
	}
}
