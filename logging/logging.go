package logging

import "go.uber.org/zap"

// New creates the zap logger for env. Production logs JSON at info level,
// development logs console output at debug level and anything else gets the
// example logger.
func New(env string) (*zap.Logger, error) {
	switch env {
	case "production":
		return zap.NewProduction()
	case "development":
		return zap.NewDevelopment()
	default:
		return zap.NewExample(), nil
	}
}
