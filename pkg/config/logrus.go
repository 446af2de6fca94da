package config

import (
	"os"

	"github.com/sirupsen/logrus"
)

var (
	logg *logrus.Logger
)

func GetLogger() *logrus.Logger {
	return logg
}

func init() {
	logg = logrus.New()
	logg.SetFormatter(&logrus.JSONFormatter{})
	logg.SetLevel(logrus.InfoLevel)
	logg.SetOutput(os.Stdout)
}

// ApplyLogLevel re-levels the shared logger once the app config is
// loaded. Unknown names keep the current level.
func ApplyLogLevel(name string) {
	if name == "" {
		return
	}
	lvl, err := logrus.ParseLevel(name)
	if err != nil {
		logg.WithField("level", name).Warn("unknown log level, keeping current")
		return
	}
	logg.SetLevel(lvl)
}
