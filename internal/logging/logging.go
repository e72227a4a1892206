// Package logging owns the process-wide structured logger.
package logging

import (
	"os"

	"go.uber.org/zap"
)

var logger = zap.NewNop()

func Init() {
	var err error
	if os.Getenv("DEBUG") != "" {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		panic(err)
	}
}

// L returns the global logger.
func L() *zap.Logger {
	return logger
}

func Sync() {
	_ = logger.Sync()
}
