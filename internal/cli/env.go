package cli

import (
	"errors"
	"io/fs"
	"os"

	"github.com/adrg/xdg"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// configFile is looked up in the XDG config directories
const configFile = "ladder/ladder.env"

// LoadEnv reads .env from the working directory and the user's ladder.env.
// Variables already set in the environment win.
func LoadEnv() {
	files := []string{".env"}
	if path, err := xdg.SearchConfigFile(configFile); err == nil {
		files = append(files, path)
	}

	for _, file := range files {
		if err := godotenv.Load(file); err != nil {
			if !errors.Is(err, fs.ErrNotExist) {
				logrus.WithError(err).WithField("file", file).Warn("failed to load env file")
			}
			continue
		}
		logrus.WithField("file", file).Debug("loaded env file")
	}
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
