package runner

import (
	"bufio"
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/zan8in/scanflow/pkg/config"
)

func testRunner(t *testing.T, opt *config.Options, input string) (*Runner, *bytes.Buffer) {
	t.Helper()
	if opt == nil {
		opt = &config.Options{}
	}
	out := &bytes.Buffer{}
	return &Runner{
		options: opt,
		reader:  bufio.NewReader(strings.NewReader(input)),
		out:     out,
		Session: &Session{},
	}, out
}

func TestChooseToolInvalid(t *testing.T) {
	runner, out := testRunner(t, nil, "9\n")
	_, err := runner.chooseTool()
	if !errors.Is(err, ErrInvalidChoice) {
		t.Fatalf("chooseTool err: got=%v want=%v", err, ErrInvalidChoice)
	}
	if !strings.Contains(out.String(), "Invalid choice. Exiting.") {
		t.Fatalf("missing exit message: %s", out.String())
	}
}

func TestChooseToolPrompt(t *testing.T) {
	runner, out := testRunner(t, nil, "3\n")
	choice, err := runner.chooseTool()
	if err != nil {
		t.Fatalf("chooseTool err: %v", err)
	}
	if choice != ChoiceBoth {
		t.Fatalf("choice: got=%s want=%s", choice, ChoiceBoth)
	}
	if !strings.Contains(out.String(), "3. Both Nmap and Gobuster") {
		t.Fatalf("menu not shown: %s", out.String())
	}
}

func TestChooseToolFlagSkipsPrompt(t *testing.T) {
	runner, out := testRunner(t, &config.Options{Mode: "gobuster"}, "")
	choice, err := runner.chooseTool()
	if err != nil {
		t.Fatalf("chooseTool err: %v", err)
	}
	if choice != ChoiceGobuster {
		t.Fatalf("choice: got=%s want=%s", choice, ChoiceGobuster)
	}
	if out.Len() != 0 {
		t.Fatalf("flag mode should not prompt, got output: %s", out.String())
	}
}

func TestNormalizeMode(t *testing.T) {
	tests := []struct {
		mode string
		want string
	}{
		{"", ""},
		{"1", "1"},
		{"nmap", "1"},
		{"Gobuster", "2"},
		{"BOTH", "3"},
		{"7", "7"},
	}
	for _, tt := range tests {
		if got := normalizeMode(tt.mode); got != tt.want {
			t.Fatalf("normalizeMode(%q): got=%s want=%s", tt.mode, got, tt.want)
		}
	}
}

func TestReadTargetFlag(t *testing.T) {
	runner, out := testRunner(t, &config.Options{Target: " scanme.nmap.org "}, "")
	target, err := runner.readTarget()
	if err != nil {
		t.Fatalf("readTarget err: %v", err)
	}
	if target != "scanme.nmap.org" {
		t.Fatalf("target: got=%q", target)
	}
	if out.Len() != 0 {
		t.Fatalf("flag target should not prompt, got output: %s", out.String())
	}
}
