package config

import (
	"strings"
	"testing"
)

func setFullEnv(t *testing.T) {
	t.Helper()
	t.Setenv("ENV_SCHEMA_VERSION", ExpectedEnvSchemaVersion)
	t.Setenv("DB_USER", "app")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_HOST", "localhost")
	t.Setenv("DB_PORT", "5432")
	t.Setenv("DB_NAME", "apexpredict")
	t.Setenv("API_KEY", "test-api-key")
}

func TestValidateEnv(t *testing.T) {
	setFullEnv(t)

	if err := ValidateEnv(); err != nil {
		t.Errorf("ValidateEnv() returned error: %v", err)
	}
}

func TestValidateEnvMissingSchemaVersion(t *testing.T) {
	setFullEnv(t)
	t.Setenv("ENV_SCHEMA_VERSION", "")

	if err := ValidateEnv(); err == nil {
		t.Error("Expected error when ENV_SCHEMA_VERSION is unset")
	}
}

func TestValidateEnvSchemaVersionMismatch(t *testing.T) {
	setFullEnv(t)
	t.Setenv("ENV_SCHEMA_VERSION", "0.9")

	err := ValidateEnv()
	if err == nil {
		t.Fatal("Expected error for schema version mismatch")
	}
	if !strings.Contains(err.Error(), "mismatch") {
		t.Errorf("Expected mismatch error, got: %v", err)
	}
}

func TestValidateEnvMissingVariables(t *testing.T) {
	setFullEnv(t)
	t.Setenv("DB_PASSWORD", "")
	t.Setenv("API_KEY", "")

	err := ValidateEnv()
	if err == nil {
		t.Fatal("Expected error for missing variables")
	}
	if !strings.Contains(err.Error(), "DB_PASSWORD") || !strings.Contains(err.Error(), "API_KEY") {
		t.Errorf("Expected both missing variables named, got: %v", err)
	}
}

func TestValidateEnvWithWarnings(t *testing.T) {
	setFullEnv(t)
	t.Setenv("DB_PASSWORD", "change_this_secure_password")

	warnings, err := ValidateEnvWithWarnings()
	if err != nil {
		t.Fatalf("ValidateEnvWithWarnings() returned error: %v", err)
	}
	if len(warnings) != 1 {
		t.Errorf("Expected 1 warning, got %d", len(warnings))
	}
}
