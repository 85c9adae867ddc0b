package config

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/conectacare/conectacare-api/models"
)

// Config holds the project config values
type Config struct {
	URL                  string
	DatabaseName         string
	BaseURL              string
	Port                 string
	Env                  string
	CORSOrigins          []string
	QueryTimeout         time.Duration
	StatsSchedule        string
	PatientsCollection   string
	CaretakersCollection string
}

// New reads the config from the environment, falling back to an optional .env
// file in the working directory, and installs the global logger for Env.
func New() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")

	v.SetDefault("DB_NAME", "conectacare")
	v.SetDefault("PORT", "8000")
	v.SetDefault("ENV", "development")
	v.SetDefault("CORS_ORIGINS", "http://localhost:3000,http://localhost:5173")
	v.SetDefault("QUERY_TIMEOUT", "10s")
	v.SetDefault("STATS_SCHEDULE", "@every 15m")
	v.SetDefault("PATIENTS_COLLECTION", "patient")
	v.SetDefault("CARETAKERS_COLLECTION", "caretaker")

	// the store URI is accepted under either name
	_ = v.BindEnv("DB_URI", "DB_URI", "MONGO_URI")
	for _, key := range []string{"DB_NAME", "PORT", "BASE_URL", "ENV", "CORS_ORIGINS", "QUERY_TIMEOUT", "STATS_SCHEDULE", "PATIENTS_COLLECTION", "CARETAKERS_COLLECTION"} {
		_ = v.BindEnv(key)
	}

	// a missing .env file is fine
	_ = v.ReadInConfig()

	conf := &Config{
		URL:                  v.GetString("DB_URI"),
		DatabaseName:         v.GetString("DB_NAME"),
		BaseURL:              v.GetString("BASE_URL"),
		Port:                 v.GetString("PORT"),
		Env:                  v.GetString("ENV"),
		CORSOrigins:          splitList(v.GetString("CORS_ORIGINS")),
		QueryTimeout:         v.GetDuration("QUERY_TIMEOUT"),
		StatsSchedule:        strings.TrimSpace(v.GetString("STATS_SCHEDULE")),
		PatientsCollection:   v.GetString("PATIENTS_COLLECTION"),
		CaretakersCollection: v.GetString("CARETAKERS_COLLECTION"),
	}
	if conf.URL == "" {
		return nil, errors.New("DB_URI or MONGO_URI is required")
	}
	if conf.QueryTimeout <= 0 {
		conf.QueryTimeout = 10 * time.Second
	}

	if _, err := setLogger(conf.Env); err != nil {
		return nil, err
	}
	return conf, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// ErrorStatus is a useful function that will log, write http headers and body for a
// give message, status code and err
func ErrorStatus(message string, httpStatusCode int, w http.ResponseWriter, err error) {
	cause := ""
	if err != nil {
		cause = err.Error()
	}
	if httpStatusCode >= http.StatusInternalServerError {
		zap.S().Errorw(message, "status", httpStatusCode, "error", cause)
	} else {
		zap.S().Debugw(message, "status", httpStatusCode, "error", cause)
	}

	body, _ := json.Marshal(models.ErrorMessageResponse{
		Response: models.MessageError{Message: message, Error: cause},
	})
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(httpStatusCode)
	_, _ = w.Write(body)
}
