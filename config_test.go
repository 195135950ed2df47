package twitteroauth

import (
	"os"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	unsetEnv(t, EnvLogLevel, EnvProxy, EnvTimeout)

	cfg, err := LoadConfig()
	require.NoError(t, err)

	want := &Config{LogLevel: logrus.InfoLevel, Timeout: 10 * time.Second}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadConfigFromEnvironment(t *testing.T) {
	t.Setenv(EnvLogLevel, "debug")
	t.Setenv(EnvProxy, "socks5://127.0.0.1:1080")
	t.Setenv(EnvTimeout, "30s")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	want := &Config{LogLevel: logrus.DebugLevel, Proxy: "socks5://127.0.0.1:1080", Timeout: 30 * time.Second}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}

	client, err := cfg.NewHTTPClient()
	require.NoError(t, err)
	assert.Equal(t, 30*time.Second, client.HTTPClient().Timeout)
	assert.Equal(t, "socks5://127.0.0.1:1080", client.Proxy())
}

func TestLoadConfigInvalid(t *testing.T) {
	tests := []struct {
		name, key, value string
	}{
		{name: "log level", key: EnvLogLevel, value: "chatty"},
		{name: "timeout", key: EnvTimeout, value: "soon"},
		{name: "negative timeout", key: EnvTimeout, value: "-1s"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := LoadConfig()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.key)
		})
	}
}

func TestNewHTTPClientInvalidProxy(t *testing.T) {
	cfg := &Config{LogLevel: logrus.InfoLevel, Proxy: "ftp://127.0.0.1:21", Timeout: time.Second}

	_, err := cfg.NewHTTPClient()
	require.Error(t, err)
	assert.Contains(t, err.Error(), EnvProxy)
}

func TestConfigureLogging(t *testing.T) {
	previous := logrus.GetLevel()
	t.Cleanup(func() { logrus.SetLevel(previous) })

	ConfigureLogging(&Config{LogLevel: logrus.WarnLevel})
	assert.Equal(t, logrus.WarnLevel, logrus.GetLevel())
}

// unsetEnv removes keys for the duration of the test.
func unsetEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, key := range keys {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}
