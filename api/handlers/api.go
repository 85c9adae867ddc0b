package handlers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/conectacare/conectacare-api/api"
	"github.com/conectacare/conectacare-api/config"
	"github.com/conectacare/conectacare-api/databases"
	"github.com/conectacare/conectacare-api/models"
	"github.com/conectacare/conectacare-api/services"
)

// App stores the router and db connection, so it can be reused
type App struct {
	Router     *mux.Router
	Config     config.Config
	Patients   databases.PatientDatabase
	Caretakers databases.CaretakerDatabase
	client     databases.ClientHelper
	dbHelper   databases.DatabaseHelper
}

// New creates a new mux router and all the routes
func (a *App) New() *mux.Router {
	p := Patient{Service: services.NewPatientService(a.Patients), QueryTimeout: a.Config.QueryTimeout}
	c := Caretaker{Service: services.NewCaretakerService(a.Caretakers), QueryTimeout: a.Config.QueryTimeout}
	return NewRouter(p, c)
}

// NewRouter registers every route on a fresh router. Collection routes answer
// with and without the trailing slash.
func NewRouter(p Patient, c Caretaker) *mux.Router {
	r := mux.NewRouter()
	r.Use(api.RequestIDMiddleware, api.LoggingMiddleware, api.RecoveryMiddleware)
	r.NotFoundHandler = http.HandlerFunc(notFoundHandler)
	r.MethodNotAllowedHandler = http.HandlerFunc(methodNotAllowedHandler)

	// healthchex
	r.HandleFunc("/health", healthCheckHandler).Methods("GET")

	for _, path := range []string{"/caretakers", "/caretakers/"} {
		r.HandleFunc(path, c.CreateCaretakerHandler).Methods("POST")
		r.HandleFunc(path, c.CaretakersHandler).Methods("GET")
	}
	r.HandleFunc("/caretakers/{caretaker_id}", c.CaretakerByIDHandler).Methods("GET")

	for _, path := range []string{"/patients", "/patients/"} {
		r.HandleFunc(path, p.CreatePatientHandler).Methods("POST")
		r.HandleFunc(path, p.PatientsHandler).Methods("GET")
	}
	ps := r.PathPrefix("/patients/{patient_id}").Subrouter()
	ps.HandleFunc("", p.PatientByIDHandler).Methods("GET")

	ps.HandleFunc("/medication_logs", p.CreateMedicationLogHandler).Methods("POST")
	ps.HandleFunc("/medication_logs", p.MedicationLogsHandler).Methods("GET")
	ps.HandleFunc("/medication_logs/{log_id}", p.UpdateMedicationLogHandler).Methods("PUT")

	ps.HandleFunc("/meals", p.CreateMealHandler).Methods("POST")
	ps.HandleFunc("/meals", p.MealsHandler).Methods("GET")
	ps.HandleFunc("/meals/{meal_id}", p.UpdateMealHandler).Methods("PUT")

	ps.HandleFunc("/hygiene_logs", p.CreateHygieneLogHandler).Methods("POST")
	ps.HandleFunc("/hygiene_logs", p.HygieneLogsHandler).Methods("GET")
	ps.HandleFunc("/hygiene_logs/{hygiene_id}", p.UpdateHygieneLogHandler).Methods("PUT")

	ps.HandleFunc("/vital_signs", p.CreateVitalSignsHandler).Methods("POST")
	ps.HandleFunc("/vital_signs", p.VitalSignsHandler).Methods("GET")
	ps.HandleFunc("/vital_signs/{vital_id}", p.UpdateVitalSignsHandler).Methods("PUT")

	ps.HandleFunc("/symptoms", p.CreateSymptomHandler).Methods("POST")
	ps.HandleFunc("/symptoms", p.SymptomsHandler).Methods("GET")
	ps.HandleFunc("/symptoms/{symptom_id}", p.UpdateSymptomHandler).Methods("PUT")

	ps.HandleFunc("/medical_history", p.CreateMedicalHistoryEntryHandler).Methods("POST")
	ps.HandleFunc("/medical_history", p.MedicalHistoryHandler).Methods("GET")
	ps.HandleFunc("/medical_history/{entry_id}", p.UpdateMedicalHistoryEntryHandler).Methods("PUT")

	return r
}

// Initialize is invoked by main to connect with the database, make sure the
// unique indexes exist and create a router
func (a *App) Initialize(ctx context.Context) error {
	client, err := databases.NewClient(ctx, &a.Config)
	if err != nil {
		// if we fail to create a new database client, then kill the pod
		zap.S().Errorw("failed to create new client", "error", err)
		return err
	}
	return a.Connect(ctx, client)
}

// Connect checks client reaches the database, builds the repositories and the
// router, and creates the indexes. On failure the client is disconnected.
func (a *App) Connect(ctx context.Context, client databases.ClientHelper) error {
	a.client = client

	pingCtx, cancel := api.WithQueryTimeout(ctx, a.Config.QueryTimeout)
	defer cancel()
	if err := client.Ping(pingCtx); err != nil {
		// if we fail to connect to the database, then kill the pod
		zap.S().Errorw("failed to connect to database", "error", err)
		return a.abort(err)
	}
	zap.S().Infow("conectacare-api has connected to the database", "database", a.Config.DatabaseName)

	a.dbHelper = databases.NewDatabase(&a.Config, client)
	a.Patients = databases.NewPatientDatabase(a.dbHelper, a.Config.PatientsCollection)
	a.Caretakers = databases.NewCaretakerDatabase(a.dbHelper, a.Config.CaretakersCollection)

	if err := a.EnsureIndexes(ctx); err != nil {
		zap.S().Errorw("failed to create indexes", "error", err)
		return a.abort(err)
	}

	// initialize api router
	a.initializeRoutes()
	return nil
}

// abort disconnects after a failed Connect and returns err
func (a *App) abort(err error) error {
	ctx, cancel := api.WithQueryTimeout(context.Background(), a.Config.QueryTimeout)
	defer cancel()
	if derr := a.Close(ctx); derr != nil {
		zap.S().Errorw("failed to disconnect from database", "error", derr)
	}
	return err
}

// EnsureIndexes creates the unique indexes of both collections
func (a *App) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := api.WithQueryTimeout(ctx, a.Config.QueryTimeout)
	defer cancel()
	if err := a.Patients.EnsureIndexes(ctx); err != nil {
		return err
	}
	return a.Caretakers.EnsureIndexes(ctx)
}

// Handler returns the router wrapped in the CORS layer
func (a *App) Handler() http.Handler {
	return api.CORSMiddleware(a.Config.CORSOrigins)(a.Router)
}

// Close disconnects from the database
func (a *App) Close(ctx context.Context) error {
	if a.client == nil {
		return nil
	}
	client := a.client
	a.client = nil
	return client.Disconnect(ctx)
}

func (a *App) initializeRoutes() {
	a.Router = a.New()
}

func healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	b, _ := json.Marshal(models.HealthCheckResponse{
		Alive: true,
	})
	_, _ = io.WriteString(w, string(b))
}

func notFoundHandler(w http.ResponseWriter, r *http.Request) {
	config.ErrorStatus("route not found", http.StatusNotFound, w, nil)
}

func methodNotAllowedHandler(w http.ResponseWriter, r *http.Request) {
	config.ErrorStatus("method not allowed", http.StatusMethodNotAllowed, w, nil)
}
