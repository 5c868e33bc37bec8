package utils

import (
	"testing"
	"time"
)

func TestGetEnvAsString(t *testing.T) {
	t.Setenv("REGISTRO_TEST_STR", "set")

	if got := GetEnvAsString("REGISTRO_TEST_STR", "fallback"); got != "set" {
		t.Errorf("got %q, want %q", got, "set")
	}
	if got := GetEnvAsString("REGISTRO_TEST_STR_MISSING", "fallback"); got != "fallback" {
		t.Errorf("got %q, want %q", got, "fallback")
	}
}

func TestGetEnvAsInt(t *testing.T) {
	t.Setenv("REGISTRO_TEST_INT", "45")
	t.Setenv("REGISTRO_TEST_INT_BAD", "not-a-number")

	if got := GetEnvAsInt("REGISTRO_TEST_INT", 30); got != 45 {
		t.Errorf("got %d, want 45", got)
	}
	if got := GetEnvAsInt("REGISTRO_TEST_INT_BAD", 30); got != 30 {
		t.Errorf("unparseable value: got %d, want default 30", got)
	}
	if got := GetEnvAsInt("REGISTRO_TEST_INT_MISSING", 30); got != 30 {
		t.Errorf("missing value: got %d, want default 30", got)
	}
}

func TestGetEnvAsDuration(t *testing.T) {
	t.Setenv("REGISTRO_TEST_DUR", "15s")
	t.Setenv("REGISTRO_TEST_DUR_BAD", "soon")

	if got := GetEnvAsDuration("REGISTRO_TEST_DUR", time.Minute); got != 15*time.Second {
		t.Errorf("got %v, want 15s", got)
	}
	if got := GetEnvAsDuration("REGISTRO_TEST_DUR_BAD", time.Minute); got != time.Minute {
		t.Errorf("unparseable value: got %v, want default 1m", got)
	}
}
