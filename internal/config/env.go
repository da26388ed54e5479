package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// dotEnvPaths are searched in order when LoadDotEnv gets no paths
var dotEnvPaths = []string{".env", "configs/.env", "../.env"}

// LoadDotEnv loads the first existing .env file among paths and returns its
// path, or "" when none exists. Variables already set in the process win.
func LoadDotEnv(paths ...string) (string, error) {
	if len(paths) == 0 {
		paths = dotEnvPaths
	}

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil || info.IsDir() {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			return path, fmt.Errorf("error loading %s: %w", path, err)
		}
		return path, nil
	}
	return "", nil
}
