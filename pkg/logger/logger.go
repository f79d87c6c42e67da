package logger

import "go.uber.org/zap"

// New returns a sugared logger: human-readable in development, JSON in prod.
func New(env string) *zap.SugaredLogger {
	if env == "prod" {
		return zap.Must(zap.NewProduction()).Sugar()
	}
	return zap.Must(zap.NewDevelopment()).Sugar()
}
