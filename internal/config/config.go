// Package config reads the configuration of the ledger from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config is the configuration of the ledger.
type Config struct {
	Port             string
	DBPath           string
	APIURL           *url.URL
	LogFormat        string
	GinMode          string
	CORSAllowOrigins []string
	EnablePprof      bool

	problems []string
}

const (
	defaultPort   = "8080"
	defaultDBPath = "data/ledger.db"
)

// Load reads the configuration from the environment.
//
// If files are given, they are loaded as .env files first. Without any
// files, a .env file in the working directory is loaded if it exists.
// Variables already set in the environment always take precedence.
func Load(files ...string) (Config, error) {
	err := godotenv.Load(files...)
	if err != nil && (len(files) > 0 || !errors.Is(err, fs.ErrNotExist)) {
		return Config{}, fmt.Errorf("could not load environment file: %w", err)
	}

	c := Config{
		Port:             getenv("PORT", defaultPort),
		DBPath:           getenv("DB_PATH", defaultDBPath),
		LogFormat:        os.Getenv("LOG_FORMAT"),
		GinMode:          getenv("GIN_MODE", "release"),
		CORSAllowOrigins: strings.Fields(os.Getenv("CORS_ALLOW_ORIGINS")),
	}

	apiURL, ok := os.LookupEnv("API_URL")
	if !ok {
		c.problems = append(c.problems, "environment variable API_URL must be set")
	} else if c.APIURL, err = url.Parse(apiURL); err != nil || c.APIURL.Scheme == "" || c.APIURL.Host == "" {
		c.problems = append(c.problems, fmt.Sprintf("environment variable API_URL must be an absolute URL, is '%s'", apiURL))
	}

	if enablePprof, ok := os.LookupEnv("ENABLE_PPROF"); ok {
		c.EnablePprof, err = strconv.ParseBool(enablePprof)
		if err != nil {
			c.problems = append(c.problems, fmt.Sprintf("environment variable ENABLE_PPROF must be true or false, is '%s'", enablePprof))
		}
	}

	return c, nil
}

// Validate returns an error describing every problem with the configuration.
func (c Config) Validate() error {
	problems := c.problems

	if _, err := strconv.ParseUint(c.Port, 10, 16); err != nil {
		problems = append(problems, fmt.Sprintf("PORT must be a valid port number, is '%s'", c.Port))
	}

	if c.DBPath == "" {
		problems = append(problems, "DB_PATH must not be empty")
	}

	switch c.LogFormat {
	case "", "human", "json":
	default:
		problems = append(problems, fmt.Sprintf("LOG_FORMAT must be 'human' or 'json', is '%s'", c.LogFormat))
	}

	switch c.GinMode {
	case "debug", "release", "test":
	default:
		problems = append(problems, fmt.Sprintf("GIN_MODE must be one of 'debug', 'release' or 'test', is '%s'", c.GinMode))
	}

	if len(problems) == 0 {
		return nil
	}

	return fmt.Errorf("invalid configuration: %s", strings.Join(problems, "; "))
}

// Address is the address the server listens on.
func (c Config) Address() string {
	return fmt.Sprintf(":%s", c.Port)
}

func getenv(key, fallback string) string {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return fallback
	}

	return value
}
