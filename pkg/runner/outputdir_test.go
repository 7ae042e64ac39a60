package runner

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/zan8in/scanflow/pkg/config"
)

func TestResolveOutputDirCreates(t *testing.T) {
	t.Chdir(t.TempDir())

	runner, out := testRunner(t, nil, "results\n")
	got, err := runner.resolveOutputDir()
	if err != nil {
		t.Fatalf("resolveOutputDir err: %v", err)
	}
	if got != "results" {
		t.Fatalf("dir: got=%s want=results", got)
	}
	if fi, err := os.Stat("results"); err != nil || !fi.IsDir() {
		t.Fatalf("directory was not created: %v", err)
	}
	if !strings.Contains(out.String(), "does not exist. Creating it...") {
		t.Fatalf("missing creation notice: %s", out.String())
	}
}

func TestResolveOutputDirSanitizeConfirm(t *testing.T) {
	t.Chdir(t.TempDir())

	runner, out := testRunner(t, nil, "scan!results\ny\n")
	got, err := runner.resolveOutputDir()
	if err != nil {
		t.Fatalf("resolveOutputDir err: %v", err)
	}
	if got != "scan_results" {
		t.Fatalf("dir: got=%s want=scan_results", got)
	}
	if !strings.Contains(out.String(), "Warning: The directory name contained invalid characters. Sanitized to: scan_results") {
		t.Fatalf("missing sanitize warning: %s", out.String())
	}
	if fi, err := os.Stat("scan_results"); err != nil || !fi.IsDir() {
		t.Fatalf("sanitized directory was not created: %v", err)
	}
}

func TestResolveOutputDirSanitizeDeclineRetries(t *testing.T) {
	t.Chdir(t.TempDir())

	runner, _ := testRunner(t, nil, "scan!results\nn\nclean\n")
	got, err := runner.resolveOutputDir()
	if err != nil {
		t.Fatalf("resolveOutputDir err: %v", err)
	}
	if got != "clean" {
		t.Fatalf("dir: got=%s want=clean", got)
	}
	if _, err := os.Stat("scan_results"); !os.IsNotExist(err) {
		t.Fatalf("declined directory should not be created")
	}
}

func TestResolveOutputDirDot(t *testing.T) {
	cwd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd err: %v", err)
	}

	runner, _ := testRunner(t, nil, ".\n")
	got, err := runner.resolveOutputDir()
	if err != nil {
		t.Fatalf("resolveOutputDir err: %v", err)
	}
	if got != cwd {
		t.Fatalf("dir: got=%s want=%s", got, cwd)
	}
}

func TestPrepareOutputDirFlag(t *testing.T) {
	base := t.TempDir()
	want := filepath.Join(base, "flagged")

	runner, out := testRunner(t, &config.Options{OutputDir: want}, "")
	got, err := runner.resolveOutputDir()
	if err != nil {
		t.Fatalf("resolveOutputDir err: %v", err)
	}
	if got != want {
		t.Fatalf("dir: got=%s want=%s", got, want)
	}
	if fi, err := os.Stat(want); err != nil || !fi.IsDir() {
		t.Fatalf("directory was not created: %v", err)
	}
	if out.Len() != 0 {
		t.Fatalf("flag directory should not prompt, got output: %s", out.String())
	}
}
