package utils

import (
	"strings"
	"testing"
)

func TestSanitizeName(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"example.com", "example.com"},
		{"host name!", "host_name_"},
		{"//a//b//", "a/b"},
		{"a///b", "a/b"},
		{"../../etc", "../../etc"},
		{"", ""},
		{"!!!", "___"},
		{"reports/2024", "reports/2024"},
	}
	for _, c := range cases {
		got := SanitizeName(c.in)
		if got != c.want {
			t.Fatalf("SanitizeName(%q) mismatch: got=%q want=%q", c.in, got, c.want)
		}
	}
}

func TestSanitizeNameIdempotent(t *testing.T) {
	inputs := []string{
		"example.com",
		"a///b",
		"//x//y//z//",
		"host name!",
		"../../etc",
		"",
		"scan results (new)",
	}
	for _, in := range inputs {
		once := SanitizeName(in)
		twice := SanitizeName(once)
		if once != twice {
			t.Fatalf("not idempotent for %q: once=%q twice=%q", in, once, twice)
		}
	}
}

func TestSanitizeNameAllowlist(t *testing.T) {
	allowed := func(r rune) bool {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return true
		case r == '-' || r == '_' || r == '.' || r == '/':
			return true
		}
		return false
	}
	inputs := []string{
		"normal",
		"sp ace",
		"uniécode",
		"semi;colon|pipe&amp",
		strings.Repeat("$", 20),
	}
	for _, in := range inputs {
		for _, r := range SanitizeName(in) {
			if !allowed(r) {
				t.Fatalf("disallowed rune %q in SanitizeName(%q)", r, in)
			}
		}
	}
}

func TestCleanURL(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"https://example.com/a?x=1#frag", "example.com/a"},
		{"http://example.com", "example.com"},
		{"example.com:8080", "example.com_8080"},
		{"https://example.com/path/", "example.com/path"},
		{"10.0.0.1", "10.0.0.1"},
		{"", ""},
	}
	for _, c := range cases {
		got := CleanURL(c.in)
		if got != c.want {
			t.Fatalf("CleanURL(%q) mismatch: got=%q want=%q", c.in, got, c.want)
		}
	}
}
