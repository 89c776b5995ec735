package terminal

import (
	"os"
	"testing"
)

// setupCleanEnv controls every variable the package reads so tests are not
// affected by the environment they run in.
func setupCleanEnv(t *testing.T, envVars map[string]string) {
	t.Helper()

	// NO_COLOR is checked for presence, so it must be truly unset unless specified.
	if value, specified := envVars["NO_COLOR"]; specified {
		t.Setenv("NO_COLOR", value)
	} else if original, exists := os.LookupEnv("NO_COLOR"); exists {
		t.Setenv("NO_COLOR", original) // registers restore on cleanup
		_ = os.Unsetenv("NO_COLOR")
	}

	valueCheckedVars := append([]string{"CLICOLOR", "CLICOLOR_FORCE", "TERM"}, ciEnvVars...)
	for _, v := range valueCheckedVars {
		if value, specified := envVars[v]; specified {
			t.Setenv(v, value)
		} else {
			t.Setenv(v, "")
		}
	}
}
