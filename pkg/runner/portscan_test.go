package runner

import (
	"reflect"
	"strings"
	"testing"

	"github.com/zan8in/goflags"
	"github.com/zan8in/scanflow/pkg/config"
)

func TestConfigureScanOptionsDefault(t *testing.T) {
	runner, out := testRunner(t, nil, "done\n")
	flags, err := runner.configureScanOptions()
	if err != nil {
		t.Fatalf("configureScanOptions err: %v", err)
	}
	if !reflect.DeepEqual(flags, []string{""}) {
		t.Fatalf("flags: got=%q want=[\"\"]", flags)
	}
	if !strings.Contains(out.String(), "No options selected. Adding default top 1000 port scan.") {
		t.Fatalf("missing default notice: %s", out.String())
	}
}

func TestConfigureScanOptionsOrderAndDedupe(t *testing.T) {
	runner, out := testRunner(t, nil, "4\n1\n4\nbogus\ndone\n")
	flags, err := runner.configureScanOptions()
	if err != nil {
		t.Fatalf("configureScanOptions err: %v", err)
	}
	if !reflect.DeepEqual(flags, []string{"-sV", "-sS"}) {
		t.Fatalf("flags: got=%q want=[-sV -sS]", flags)
	}
	if !strings.Contains(out.String(), "Option 4 already added.") {
		t.Fatalf("missing dedupe notice: %s", out.String())
	}
	if !strings.Contains(out.String(), "Invalid choice. Please select a valid option.") {
		t.Fatalf("missing invalid notice: %s", out.String())
	}
}

func TestFlagScanOptions(t *testing.T) {
	runner, out := testRunner(t, &config.Options{ScanOptions: goflags.StringSlice{"1", "4", "1"}}, "")
	flags, err := runner.configureScanOptions()
	if err != nil {
		t.Fatalf("configureScanOptions err: %v", err)
	}
	if !reflect.DeepEqual(flags, []string{"-sS", "-sV"}) {
		t.Fatalf("flags: got=%q want=[-sS -sV]", flags)
	}
	if out.Len() != 0 {
		t.Fatalf("flag options should not prompt, got output: %s", out.String())
	}
}

func TestFlagScanOptionsUnknownKey(t *testing.T) {
	runner, _ := testRunner(t, &config.Options{ScanOptions: goflags.StringSlice{"99"}}, "")
	if _, err := runner.configureScanOptions(); err == nil {
		t.Fatalf("unknown scan option should error")
	}
}
