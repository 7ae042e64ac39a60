package runner

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/zan8in/scanflow/pkg/config"
)

func TestSelectPortsRemovesSelected(t *testing.T) {
	runner, out := testRunner(t, nil, "443\n443\ndone\n")
	selected, err := runner.selectPorts([]int{80, 443})
	if err != nil {
		t.Fatalf("selectPorts err: %v", err)
	}
	if !reflect.DeepEqual(selected, []int{443}) {
		t.Fatalf("selected: got=%v want=[443]", selected)
	}
	if got := strings.Count(out.String(), "Added port 443 for Gobuster scan."); got != 1 {
		t.Fatalf("added notice count: got=%d want=1", got)
	}
	// 第二次选择 443 时它已被移出可选列表
	if !strings.Contains(out.String(), "Invalid input. Please enter a valid port from the list: 80.") {
		t.Fatalf("missing invalid notice: %s", out.String())
	}
	if !strings.Contains(out.String(), "Ports already added for Gobuster scan: 443") {
		t.Fatalf("missing added list: %s", out.String())
	}
}

func TestSelectPortsNone(t *testing.T) {
	runner, out := testRunner(t, nil, "done\n")
	selected, err := runner.selectPorts([]int{80})
	if err != nil {
		t.Fatalf("selectPorts err: %v", err)
	}
	if len(selected) != 0 {
		t.Fatalf("selected: got=%v want empty", selected)
	}
	if !strings.Contains(out.String(), "No ports added yet.") {
		t.Fatalf("missing empty list notice: %s", out.String())
	}
}

func TestPortStrategySkip(t *testing.T) {
	runner, out := testRunner(t, nil, "3\n")
	if err := runner.portStrategy([]int{80, 443}); err != nil {
		t.Fatalf("portStrategy err: %v", err)
	}
	if !strings.Contains(out.String(), "No further scans selected. Skipping Gobuster.") {
		t.Fatalf("missing skip notice: %s", out.String())
	}
	if len(runner.Session.Scanned) != 0 {
		t.Fatalf("skip should not scan anything, got %v", runner.Session.Scanned)
	}
}

func TestPortStrategyInvalidThenSkip(t *testing.T) {
	runner, out := testRunner(t, nil, "9\n3\n")
	if err := runner.portStrategy([]int{80}); err != nil {
		t.Fatalf("portStrategy err: %v", err)
	}
	if !strings.Contains(out.String(), "Invalid input. Please type '1', '2', or '3'.") {
		t.Fatalf("missing invalid notice: %s", out.String())
	}
}

func TestPortStrategyMenuListsPorts(t *testing.T) {
	runner, out := testRunner(t, nil, "3\n")
	if err := runner.portStrategy([]int{80, 443, 8080}); err != nil {
		t.Fatalf("portStrategy err: %v", err)
	}
	if !strings.Contains(out.String(), "1. Scan all detected ports (80, 443, 8080) with Gobuster") {
		t.Fatalf("missing port list in menu: %s", out.String())
	}
}

func TestWordlistForValidatesTypedPath(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	words := filepath.Join(t.TempDir(), "words.txt")
	if err := os.WriteFile(words, []byte("admin\n"), 0644); err != nil {
		t.Fatalf("write wordlist err: %v", err)
	}

	runner, out := testRunner(t, nil, "/no/such/list.txt\n"+words+"\n")
	if got := runner.wordlistFor("80"); got != words {
		t.Fatalf("wordlist: got=%q want=%q", got, words)
	}
	if !strings.Contains(out.String(), "Wordlist file '/no/such/list.txt' not found.") {
		t.Fatalf("missing not-found notice: %s", out.String())
	}
}

func TestWordlistForFlagSkipsPrompt(t *testing.T) {
	runner, out := testRunner(t, &config.Options{Wordlist: "/tmp/words.txt"}, "")
	if got := runner.wordlistFor("80"); got != "/tmp/words.txt" {
		t.Fatalf("wordlist: got=%q", got)
	}
	if out.Len() != 0 {
		t.Fatalf("flag wordlist should not prompt, got output: %s", out.String())
	}
}
