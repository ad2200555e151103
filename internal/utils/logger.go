package utils

import (
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

var Logger = logrus.New()

// appNameHook tags every entry with the service name: as a message prefix
// for text output, as a field for JSON output.
type appNameHook struct {
	appName string
	asField bool
}

// Levels implements logrus.Hook interface.
func (h *appNameHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

// Fire implements logrus.Hook interface.
func (h *appNameHook) Fire(entry *logrus.Entry) error {
	if h.asField {
		entry.Data["app"] = h.appName
		return nil
	}
	entry.Message = "[" + h.appName + "] " + entry.Message
	return nil
}

// InitLogger configures Logger from LOG_LEVEL (default info) and
// LOG_FORMAT ("text" or "json", default text).
func InitLogger(appName string) {
	Logger.SetOutput(os.Stdout)

	logLevelStr := strings.ToLower(os.Getenv("LOG_LEVEL"))
	if logLevelStr == "" {
		logLevelStr = "info"
	}
	level, err := logrus.ParseLevel(logLevelStr)
	if err != nil {
		Logger.Warnf("Invalid LOG_LEVEL '%s', defaulting to INFO", logLevelStr)
		level = logrus.InfoLevel
	}
	Logger.SetLevel(level)

	jsonOut := strings.EqualFold(os.Getenv("LOG_FORMAT"), "json")
	if jsonOut {
		Logger.SetFormatter(&logrus.JSONFormatter{TimestampFormat: "2006-01-02T15:04:05.000Z07:00"})
	} else {
		Logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	Logger.AddHook(&appNameHook{appName: appName, asField: jsonOut})
}

// QuoteLogger returns an entry tagged with a quote's routing fields.
func QuoteLogger(location, vehicleType string, hasLogo bool) *logrus.Entry {
	return Logger.WithFields(logrus.Fields{
		"location":    location,
		"vehicleType": vehicleType,
		"hasLogo":     hasLogo,
	})
}
