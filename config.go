package twitteroauth

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/masa-finance/masa-twitter-oauth/httpwrap"
	"github.com/sirupsen/logrus"
)

const (
	EnvLogLevel = "TWITTER_OAUTH_LOG_LEVEL"
	EnvProxy    = "TWITTER_OAUTH_PROXY"
	EnvTimeout  = "TWITTER_OAUTH_TIMEOUT"
)

// Config holds the runtime settings of the programs. Credentials, the
// redirect URI and the scopes never come from the environment.
type Config struct {
	LogLevel logrus.Level
	Proxy    string
	Timeout  time.Duration
}

// LoadConfig reads the settings from the environment, after loading a .env
// file from the working directory when one exists.
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		logrus.WithError(err).Debug("No .env file loaded")
	}

	level, err := logrus.ParseLevel(getEnv(EnvLogLevel, "info"))
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %w", EnvLogLevel, err)
	}

	timeout, err := time.ParseDuration(getEnv(EnvTimeout, httpwrap.DefaultClientTimeout.String()))
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %w", EnvTimeout, err)
	}
	if timeout <= 0 {
		return nil, fmt.Errorf("invalid %s: must be positive", EnvTimeout)
	}

	return &Config{
		LogLevel: level,
		Proxy:    getEnv(EnvProxy, ""),
		Timeout:  timeout,
	}, nil
}

// NewHTTPClient builds the HTTP client both flows use.
func (c *Config) NewHTTPClient() (*httpwrap.Client, error) {
	client := httpwrap.NewClient().WithTimeout(c.Timeout)
	if c.Proxy != "" {
		if err := client.SetProxy(c.Proxy); err != nil {
			return nil, fmt.Errorf("invalid %s: %w", EnvProxy, err)
		}
	}
	return client, nil
}

// ConfigureLogging sets up the package-level logrus logger. Logs go to stderr
// so they never mix with the prompts on stdout.
func ConfigureLogging(c *Config) {
	logrus.SetOutput(os.Stderr)
	logrus.SetLevel(c.LogLevel)
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
