package config

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"
)

// SetupEngineLog configures the logrus logger used by the game engine. In
// development it logs at debug level. When LOG_FILE is set, entries are also
// written to that file, rotated by size.
func SetupEngineLog(log *logrus.Logger) error {
	log.SetOutput(os.Stderr)
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	level := logrus.InfoLevel
	if Development() {
		level = logrus.DebugLevel
	}
	log.SetLevel(level)

	filename, ok := os.LookupEnv("LOG_FILE")
	if !ok || filename == "" {
		return nil
	}
	hook, err := rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
		Filename:   filename,
		MaxSize:    10,
		MaxBackups: 3,
		MaxAge:     28,
		Level:      level,
		Formatter:  &logrus.JSONFormatter{},
	})
	if err != nil {
		return err
	}
	log.AddHook(hook)
	return nil
}
