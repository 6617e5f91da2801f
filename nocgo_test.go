package ztflite

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

// TestBuildWithCGODisabled ensures the ztflite binary builds with CGO
// disabled, so the converter can ship as a static binary.
func TestBuildWithCGODisabled(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping build in short mode")
	}
	modRoot, err := os.Getwd()
	if err != nil {
		t.Fatalf("failed to get working directory: %v", err)
	}

	cmd := exec.Command("go", "build", "-o", filepath.Join(t.TempDir(), "ztflite"), "./cmd/ztflite")
	cmd.Dir = modRoot
	cmd.Env = append(os.Environ(), "CGO_ENABLED=0")
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		t.Fatalf("build failed with CGO disabled in %s: %v", filepath.Base(modRoot), err)
	}
}
