package settings_test

import (
	"testing"
	"time"

	"github.com/jvdberg/go-api-base/settings"
)

func TestNewDefaults(t *testing.T) {
	s := settings.New()

	if s.Environment != settings.Production {
		t.Errorf("got environment %s, want production", s.Environment)
	}
	if s.Port != 8080 {
		t.Errorf("got port %d, want 8080", s.Port)
	}
	if s.SessionLifetime != 24*time.Hour {
		t.Errorf("got session lifetime %s, want 24h", s.SessionLifetime)
	}
}

func TestNewReadsEnvironment(t *testing.T) {
	t.Setenv("ENVIRONMENT", "development")
	t.Setenv("HOST", "https://api.example.com")
	t.Setenv("PORT", "9090")
	t.Setenv("SESSION_LIFETIME", "1h")

	s := settings.New()

	if s.Environment != settings.Development {
		t.Errorf("got environment %s, want development", s.Environment)
	}
	if s.Host != "https://api.example.com" {
		t.Errorf("got host %q, want https://api.example.com", s.Host)
	}
	if s.Port != 9090 {
		t.Errorf("got port %d, want 9090", s.Port)
	}
	if s.SessionLifetime != time.Hour {
		t.Errorf("got session lifetime %s, want 1h", s.SessionLifetime)
	}
}

func TestEnvironmentString(t *testing.T) {
	t.Parallel()

	cases := map[settings.Environment]string{
		settings.Production:  "production",
		settings.Testing:     "testing",
		settings.Development: "development",
	}
	for environment, want := range cases {
		if got := environment.String(); got != want {
			t.Errorf("got %q, want %q", got, want)
		}
	}
}
