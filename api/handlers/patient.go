package handlers

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/conectacare/conectacare-api/api"
	"github.com/conectacare/conectacare-api/models"
	"github.com/conectacare/conectacare-api/services"
)

// Patient exists for handlers on the patient collection and its records
type Patient struct {
	Service      *services.PatientService
	QueryTimeout time.Duration
}

// CreatePatientHandler creates a patient, refusing a document number already in use
func (p Patient) CreatePatientHandler(w http.ResponseWriter, r *http.Request) {
	var in models.PatientInput
	if err := decode(r, &in); err != nil {
		writeError(w, err)
		return
	}
	ctx, cancel := api.WithQueryTimeout(r.Context(), p.QueryTimeout)
	defer cancel()

	view, err := p.Service.CreatePatient(ctx, in)
	if err != nil {
		writeError(w, err)
		return
	}
	zap.S().Infow("patient created", "patientId", view.ID, "requestId", api.RequestID(r.Context()))
	writeJSON(w, http.StatusCreated, view)
}

// PatientByIDHandler returns a patient by ID
func (p Patient) PatientByIDHandler(w http.ResponseWriter, r *http.Request) {
	patientID := mux.Vars(r)["patient_id"]

	zap.S().Debugf("patient_id: %v", patientID)

	ctx, cancel := api.WithQueryTimeout(r.Context(), p.QueryTimeout)
	defer cancel()

	view, err := p.Service.GetPatient(ctx, patientID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

// PatientsHandler returns every patient
func (p Patient) PatientsHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := api.WithQueryTimeout(r.Context(), p.QueryTimeout)
	defer cancel()

	views, err := p.Service.ListPatients(ctx)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, views)
}

// CreateMedicationLogHandler adds a new medication log to a patient
func (p Patient) CreateMedicationLogHandler(w http.ResponseWriter, r *http.Request) {
	createRecord(w, r, p.QueryTimeout, p.Service.AddMedicationLog)
}

// MedicationLogsHandler returns all medication logs of a patient
func (p Patient) MedicationLogsHandler(w http.ResponseWriter, r *http.Request) {
	listRecords(w, r, p.QueryTimeout, p.Service.GetMedicationLogs)
}

// UpdateMedicationLogHandler updates a medication log of a patient
func (p Patient) UpdateMedicationLogHandler(w http.ResponseWriter, r *http.Request) {
	replaceRecord(w, r, p.QueryTimeout, "log_id", p.Service.UpdateMedicationLog)
}

// CreateMealHandler adds a new meal to a patient
func (p Patient) CreateMealHandler(w http.ResponseWriter, r *http.Request) {
	createRecord(w, r, p.QueryTimeout, p.Service.AddMeal)
}

// MealsHandler returns all meals of a patient
func (p Patient) MealsHandler(w http.ResponseWriter, r *http.Request) {
	listRecords(w, r, p.QueryTimeout, p.Service.GetMeals)
}

// UpdateMealHandler updates a meal of a patient
func (p Patient) UpdateMealHandler(w http.ResponseWriter, r *http.Request) {
	replaceRecord(w, r, p.QueryTimeout, "meal_id", p.Service.UpdateMeal)
}

// CreateHygieneLogHandler adds a new hygiene log to a patient
func (p Patient) CreateHygieneLogHandler(w http.ResponseWriter, r *http.Request) {
	createRecord(w, r, p.QueryTimeout, p.Service.AddHygieneLog)
}

// HygieneLogsHandler returns all hygiene logs of a patient
func (p Patient) HygieneLogsHandler(w http.ResponseWriter, r *http.Request) {
	listRecords(w, r, p.QueryTimeout, p.Service.GetHygieneLogs)
}

// UpdateHygieneLogHandler updates a hygiene log of a patient
func (p Patient) UpdateHygieneLogHandler(w http.ResponseWriter, r *http.Request) {
	replaceRecord(w, r, p.QueryTimeout, "hygiene_id", p.Service.UpdateHygieneLog)
}

// CreateVitalSignsHandler adds a new vital signs record to a patient
func (p Patient) CreateVitalSignsHandler(w http.ResponseWriter, r *http.Request) {
	createRecord(w, r, p.QueryTimeout, p.Service.AddVitalSigns)
}

// VitalSignsHandler returns all vital signs records of a patient
func (p Patient) VitalSignsHandler(w http.ResponseWriter, r *http.Request) {
	listRecords(w, r, p.QueryTimeout, p.Service.GetVitalSigns)
}

// UpdateVitalSignsHandler updates a vital signs record of a patient
func (p Patient) UpdateVitalSignsHandler(w http.ResponseWriter, r *http.Request) {
	replaceRecord(w, r, p.QueryTimeout, "vital_id", p.Service.UpdateVitalSigns)
}

// CreateSymptomHandler adds a new symptom to a patient
func (p Patient) CreateSymptomHandler(w http.ResponseWriter, r *http.Request) {
	createRecord(w, r, p.QueryTimeout, p.Service.AddSymptom)
}

// SymptomsHandler returns all symptoms of a patient
func (p Patient) SymptomsHandler(w http.ResponseWriter, r *http.Request) {
	listRecords(w, r, p.QueryTimeout, p.Service.GetSymptoms)
}

// UpdateSymptomHandler updates a symptom of a patient
func (p Patient) UpdateSymptomHandler(w http.ResponseWriter, r *http.Request) {
	replaceRecord(w, r, p.QueryTimeout, "symptom_id", p.Service.UpdateSymptom)
}

// CreateMedicalHistoryEntryHandler adds a new medical history entry to a patient
func (p Patient) CreateMedicalHistoryEntryHandler(w http.ResponseWriter, r *http.Request) {
	createRecord(w, r, p.QueryTimeout, p.Service.AddMedicalHistoryEntry)
}

// MedicalHistoryHandler returns the medical history of a patient
func (p Patient) MedicalHistoryHandler(w http.ResponseWriter, r *http.Request) {
	listRecords(w, r, p.QueryTimeout, p.Service.GetMedicalHistory)
}

// UpdateMedicalHistoryEntryHandler updates a medical history entry of a patient
func (p Patient) UpdateMedicalHistoryEntryHandler(w http.ResponseWriter, r *http.Request) {
	replaceRecord(w, r, p.QueryTimeout, "entry_id", p.Service.UpdateMedicalHistoryEntry)
}
