package config

import (
	"os"
	"reflect"
	"testing"
	"time"
)

func TestRequireEnv(t *testing.T) {
	t.Setenv("BACKOFFICE_TEST_VAR", "test_value")
	if got := requireEnv("BACKOFFICE_TEST_VAR"); got != "test_value" {
		t.Errorf("requireEnv() = %v, want test_value", got)
	}

	defer func() {
		if r := recover(); r == nil {
			t.Errorf("requireEnv() should have panicked")
		}
	}()
	requireEnv("BACKOFFICE_TEST_VAR_MISSING")
}

func TestMustDuration(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		def      time.Duration
		expected time.Duration
	}{
		{name: "valid duration", value: "5s", def: time.Second, expected: 5 * time.Second},
		{name: "invalid duration uses default", value: "invalid", def: 10 * time.Second, expected: 10 * time.Second},
		{name: "missing variable uses default", value: "", def: 15 * time.Second, expected: 15 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("BACKOFFICE_TEST_DURATION", tt.value)
			if got := mustDuration("BACKOFFICE_TEST_DURATION", tt.def); got != tt.expected {
				t.Errorf("mustDuration() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestMustBool(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		def      bool
		expected bool
	}{
		{name: "true value", value: "true", def: false, expected: true},
		{name: "false value", value: "false", def: true, expected: false},
		{name: "invalid value uses default", value: "invalid", def: true, expected: true},
		{name: "missing variable uses default", value: "", def: false, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("BACKOFFICE_TEST_BOOL", tt.value)
			if got := mustBool("BACKOFFICE_TEST_BOOL", tt.def); got != tt.expected {
				t.Errorf("mustBool() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestSplitAndTrim(t *testing.T) {
	tests := []struct {
		input    string
		expected []string
	}{
		{"", nil},
		{"*", []string{"*"}},
		{` http://a.test , "http://b.test",, `, []string{"http://a.test", "http://b.test"}},
	}
	for _, tt := range tests {
		if got := splitAndTrim(tt.input); !reflect.DeepEqual(got, tt.expected) {
			t.Errorf("splitAndTrim(%q) = %#v, want %#v", tt.input, got, tt.expected)
		}
	}
}

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("BACKOFFICE_JWT_SECRET", "s3cret")

	cfg := Load()
	if cfg.ListenPort != ":5000" || cfg.StoreBackend != "sqlite" || cfg.RequestTimeout != 10*time.Second {
		t.Errorf("Load() = %+v", cfg)
	}
	if !reflect.DeepEqual(cfg.CORSOrigins, []string{"*"}) {
		t.Errorf("CORSOrigins = %v", cfg.CORSOrigins)
	}
	if cfg.AuthBurst != 10 || cfg.AuthPerMinute != 30 {
		t.Errorf("auth limits = %d/%d", cfg.AuthBurst, cfg.AuthPerMinute)
	}
}

func TestLoadRejectsUnknownBackend(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("BACKOFFICE_JWT_SECRET", "s3cret")
	t.Setenv("BACKOFFICE_STORE", "mongo")

	defer func() {
		if r := recover(); r == nil {
			t.Error("Load() should panic on an unknown store")
		}
	}()
	Load()
}

func TestRedacted(t *testing.T) {
	cfg := Config{JWTSecret: "s3cret", RedisPassword: "pw", RedisUser: "u", SQLiteDSN: "libsql://db.turso.io?authToken=abc"}
	r := cfg.Redacted()
	if r.JWTSecret == "s3cret" || r.RedisPassword == "pw" || r.SQLiteDSN == cfg.SQLiteDSN {
		t.Errorf("Redacted() leaked secrets: %+v", r)
	}
	if cfg.JWTSecret != "s3cret" {
		t.Error("Redacted() modified the original")
	}
}

func TestLoadClient(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	isolateHome(t, dir)
	t.Setenv("BACKOFFICE_API_URL", "http://api.test/api/")
	t.Setenv("BACKOFFICE_BACKEND", "LOCAL")
	t.Setenv("BACKOFFICE_SESSION_DSN", ":memory:")

	cfg := LoadClient()
	if cfg.APIBaseURL != "http://api.test/api" {
		t.Errorf("APIBaseURL = %q", cfg.APIBaseURL)
	}
	if cfg.Backend != BackendLocal || cfg.APITimeout != 10*time.Second || cfg.SessionDSN != ":memory:" {
		t.Errorf("LoadClient() = %+v", cfg)
	}
}

func TestLoadClientReadsDotEnv(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	isolateHome(t, dir)
	writeFile(t, dir+"/.env", "BACKOFFICE_CACHE_SIZE=7\n")
	t.Setenv("BACKOFFICE_CACHE_SIZE", "unset")
	_ = os.Unsetenv("BACKOFFICE_CACHE_SIZE")

	if got := LoadClient().CacheSize; got != 7 {
		t.Errorf("CacheSize = %d, want 7 from .env", got)
	}
}
