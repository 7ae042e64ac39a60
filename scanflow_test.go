package scanflow

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/zan8in/scanflow/pkg/tool"
)

func stubBinary(t *testing.T, dir, name, script string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(script), 0755); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}

func TestScannerPipeline(t *testing.T) {
	home := t.TempDir()
	bin := filepath.Join(home, "bin")
	if err := os.MkdirAll(bin, 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	t.Setenv("HOME", home)
	t.Setenv("PATH", bin)

	stubBinary(t, bin, "nmap", "#!/bin/sh\necho \"80/tcp   open  http    Apache httpd\"\necho \"443/tcp  open  ssl/https\"\necho \"22/tcp   open  ssh     OpenSSH\"\n")
	stubBinary(t, bin, "gobuster", "#!/bin/sh\necho \"$@\"\n")

	words := filepath.Join(home, "words.txt")
	if err := os.WriteFile(words, []byte("admin\n"), 0644); err != nil {
		t.Fatalf("write wordlist: %v", err)
	}

	outputDir := filepath.Join(home, "results")

	var records []*tool.Result
	session, err := NewScanner("target.example", Scanner{
		Mode:      "1",
		OutputDir: outputDir,
		Wordlist:  words,
		Silent:    true,
		NoLive:    true,
		OnRecord:  func(r *tool.Result) { records = append(records, r) },
	})
	if err != nil {
		t.Fatalf("NewScanner: %v", err)
	}

	if got := session.WebPorts; len(got) != 2 || got[0] != 80 || got[1] != 443 {
		t.Fatalf("web ports: got=%v want=[80 443]", got)
	}
	if got := session.Scanned; len(got) != 2 || got[0] != "80" || got[1] != "443" {
		t.Fatalf("scanned ports: got=%v want=[80 443]", got)
	}
	if len(records) != 3 {
		t.Fatalf("recorded runs: got=%d want=3", len(records))
	}

	nmapFiles, _ := filepath.Glob(filepath.Join(outputDir, "nmap_scan_target.example_*.txt"))
	if len(nmapFiles) != 1 {
		t.Fatalf("nmap output files: got=%v", nmapFiles)
	}

	httpsFiles, _ := filepath.Glob(filepath.Join(outputDir, "443_gobuster_scan_*.txt"))
	if len(httpsFiles) != 1 {
		t.Fatalf("gobuster output files for 443: got=%v", httpsFiles)
	}
	data, err := os.ReadFile(httpsFiles[0])
	if err != nil {
		t.Fatalf("read gobuster output: %v", err)
	}
	if !strings.Contains(string(data), "https://target.example:443") {
		t.Fatalf("443 scan url: got=%q want https scheme", string(data))
	}
}

func TestScannerVerifyOptions(t *testing.T) {
	if _, err := NewScanner("", Scanner{Silent: true}); err == nil {
		t.Fatalf("expected error for empty target")
	}
	if _, err := NewScanner("target.example", Scanner{Mode: "2", Silent: true}); err == nil {
		t.Fatalf("expected error for gobuster mode without ports")
	}
}
