package config

import (
	"go.uber.org/zap"

	"github.com/conectacare/conectacare-api/logging"
)

// setLogger builds the logger for env and replaces zap's globals with it
func setLogger(env string) (*zap.Logger, error) {
	l, err := logging.New(env)
	if err != nil {
		return nil, err
	}
	zap.ReplaceGlobals(l)
	return l, nil
}
