package tutil

import (
	"os"
	"strings"
	"testing"
)

// IsIntegrationTest reports whether REALM_TEST=integration is set. Integration
// tests need external services (MySQL, MinIO) to be running.
func IsIntegrationTest() bool {
	testType := os.Getenv("REALM_TEST")
	return strings.ToLower(testType) == "integration"
}

func SkipUnlessIntegration(t *testing.T) {
	t.Helper()
	if !IsIntegrationTest() {
		t.Skip("set REALM_TEST=integration to run")
	}
}
