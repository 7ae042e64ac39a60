package portscan

import (
	"reflect"
	"testing"
)

func TestScanOptionsOrder(t *testing.T) {
	wantKeys := []string{"1", "2", "3", "4", "5", "6", "7", "8", "9", "10"}
	gotKeys := make([]string, 0, len(ScanOptions))
	for _, option := range ScanOptions {
		gotKeys = append(gotKeys, option.Key)
	}
	if !reflect.DeepEqual(gotKeys, wantKeys) {
		t.Fatalf("menu order: got=%v want=%v", gotKeys, wantKeys)
	}
}

func TestLookupOption(t *testing.T) {
	tests := []struct {
		key  string
		flag string
		ok   bool
	}{
		{"1", "-sS", true},
		{"5", "", true},
		{"10", "-n", true},
		{"11", "", false},
		{"done", "", false},
	}
	for _, tt := range tests {
		option, ok := LookupOption(tt.key)
		if ok != tt.ok || option.Flag != tt.flag {
			t.Fatalf("LookupOption(%q): got=(%q,%v) want=(%q,%v)", tt.key, option.Flag, ok, tt.flag, tt.ok)
		}
	}
}

func TestBuildArgs(t *testing.T) {
	got := BuildArgs([]string{"-sS", "", "-v"}, "scanme.nmap.org")
	want := []string{"-sS", "-v", "scanme.nmap.org"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("BuildArgs: got=%v want=%v", got, want)
	}

	got = BuildArgs([]string{""}, "10.0.0.1")
	want = []string{"10.0.0.1"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("BuildArgs default scan: got=%v want=%v", got, want)
	}
}
