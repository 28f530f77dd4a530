package debug

import "testing"

func TestBoolEnv(t *testing.T) {
	t.Setenv("YAMLNAV_TEST_ON", "true")
	t.Setenv("YAMLNAV_TEST_JUNK", "sure")
	if !boolEnv("YAMLNAV_TEST_ON") {
		t.Error("expected true")
	}
	if boolEnv("YAMLNAV_TEST_JUNK") {
		t.Error("unparseable value should be false")
	}
	if boolEnv("YAMLNAV_TEST_UNSET") {
		t.Error("unset value should be false")
	}
}
