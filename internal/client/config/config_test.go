package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.LoadDefaults()

	require.Equal(t, "http://localhost:8080/api", cfg.BaseURL)
	require.Equal(t, 10*time.Second, cfg.RequestTimeout)
}

func TestParseEnv_Overlays(t *testing.T) {
	t.Setenv("REDSOCIAL_API_URL", "https://social.example.com/api")
	t.Setenv("REDSOCIAL_REQUEST_TIMEOUT", "3s")

	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)

	require.Equal(t, "https://social.example.com/api", cfg.BaseURL)
	require.Equal(t, 3*time.Second, cfg.RequestTimeout)
}

func TestParseEnv_InvalidTimeoutKeepsPrevious(t *testing.T) {
	t.Setenv("REDSOCIAL_REQUEST_TIMEOUT", "soon")

	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)

	require.Equal(t, 10*time.Second, cfg.RequestTimeout)
}

func TestParseJson_Overlays(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"base_url":"http://json:9000/api","request_timeout":"7s"}`), 0o600))

	oldArgs := os.Args
	os.Args = []string{"client", "-c", path}
	t.Cleanup(func() { os.Args = oldArgs })

	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)

	require.Equal(t, "http://json:9000/api", cfg.BaseURL)
	require.Equal(t, 7*time.Second, cfg.RequestTimeout)
}

func TestParseJson_NoFileFlagIsNoop(t *testing.T) {
	oldArgs := os.Args
	os.Args = []string{"client"}
	t.Cleanup(func() { os.Args = oldArgs })

	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)

	require.Equal(t, "http://localhost:8080/api", cfg.BaseURL)
}

func TestParseFlags_Overlays(t *testing.T) {
	oldArgs := os.Args
	os.Args = []string{"client", "-a", "http://flags:8080/api", "-t", "5"}
	t.Cleanup(func() { os.Args = oldArgs })

	cfg := &Config{}
	cfg.LoadDefaults()
	parseFlags(cfg)

	require.Equal(t, "http://flags:8080/api", cfg.BaseURL)
	require.Equal(t, 5*time.Second, cfg.RequestTimeout)
}

func TestJsonConfig_AcceptsNanosecondNumbers(t *testing.T) {
	var jc JsonConfig
	require.NoError(t, json.Unmarshal([]byte(`{"request_timeout":1000000000}`), &jc))
	require.Equal(t, time.Second, jc.RequestTimeout.Duration)
}
