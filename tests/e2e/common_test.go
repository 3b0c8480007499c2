package e2e

import (
	"os/exec"
	"path/filepath"
	"testing"
)

// buildJotBinary builds the jot binary in the specified directory and returns its path.
// It handles the build command execution and error checking.
func buildJotBinary(t *testing.T, dir string) string {
	t.Helper()
	jotBin := filepath.Join(dir, "jot.exe")
	buildCmd := exec.Command("go", "build", "-o", jotBin, "../../cmd/jot")
	if out, err := buildCmd.CombinedOutput(); err != nil {
		t.Fatalf("Failed to build jot: %v\n%s", err, string(out))
	}
	return jotBin
}

// runCmd executes the binary with the given args and fails the test on error.
func runCmd(t *testing.T, dir string, args ...string) string {
	t.Helper()
	cmd := exec.Command(args[0], args[1:]...)
	cmd.Dir = dir
	out, err := cmd.CombinedOutput()
	if err != nil {
		t.Fatalf("command %v failed: %v\n%s", args, err, out)
	}
	return string(out)
}
