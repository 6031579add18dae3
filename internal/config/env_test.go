package config

import "testing"

func TestSubstituteEnvVars(t *testing.T) {
	t.Setenv("DRIVESCOPE_TEST_PASSWORD", "hunter2")

	in := []byte("password: ${DRIVESCOPE_TEST_PASSWORD}")
	out := substituteEnvVars(in)

	if string(out) != "password: hunter2" {
		t.Errorf("expected substituted value, got %s", string(out))
	}
}

func TestSubstituteEnvVars_UnsetKept(t *testing.T) {
	in := []byte("password: ${DRIVESCOPE_DEFINITELY_UNSET_VAR}")
	out := substituteEnvVars(in)

	if string(out) != string(in) {
		t.Errorf("unset variable should be left as-is, got %s", string(out))
	}
}
