package report

import (
	"os"
	"strings"
	"testing"
)

func TestReportAppend(t *testing.T) {
	report, err := NewReport(t.TempDir())
	if err != nil {
		t.Fatalf("NewReport err: %v", err)
	}
	report.SetTarget("scanme.nmap.org")

	if err := report.AppendPorts("web ports", []int{80, 443}); err != nil {
		t.Fatalf("AppendPorts err: %v", err)
	}
	if err := report.AppendLines("probe", []string{"80 alive, status 200"}); err != nil {
		t.Fatalf("AppendLines err: %v", err)
	}

	data, err := os.ReadFile(report.ReportFile)
	if err != nil {
		t.Fatalf("read report err: %v", err)
	}
	for _, want := range []string{"scanflow session report", "target:    scanme.nmap.org", "web ports: 80, 443", "80 alive, status 200"} {
		if !strings.Contains(string(data), want) {
			t.Fatalf("report missing %q:\n%s", want, data)
		}
	}
}

func TestReportEmptySession(t *testing.T) {
	report, err := NewReport(t.TempDir())
	if err != nil {
		t.Fatalf("NewReport err: %v", err)
	}
	if _, err := os.Stat(report.ReportFile); !os.IsNotExist(err) {
		t.Fatalf("report file should not exist before the first append")
	}
}
