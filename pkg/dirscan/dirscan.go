// Package dirscan drives gobuster content discovery against the web
// ports that survived review. Runs are strictly sequential: gobuster is
// noisy enough on its own, and interleaved output files are useless.
package dirscan

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/zan8in/gologger"
	"github.com/zan8in/scanflow/pkg/tool"
	"github.com/zan8in/scanflow/pkg/utils"
)

// WordlistFunc supplies the wordlist path for a port. The interactive
// session prompts the user here; the SDK hands back a fixed path.
type WordlistFunc func(port string) string

// Options configuration for a content discovery pass
type Options struct {
	Binary    string // gobuster binary, resolved from flags or scanflow-config.yaml
	Target    string // IP or domain, spliced into the URL verbatim
	OutputDir string
	Wordlist  WordlistFunc
}

// RunPorts runs gobuster once per parser-derived port. Ports arrive as
// integers from the nmap output parser; the protocol is https for port
// 443 and http for everything else.
func RunPorts(opt *Options, ports []int) []*tool.Result {
	labels := make([]string, 0, len(ports))
	for _, port := range ports {
		labels = append(labels, fmt.Sprintf("%d", port))
	}
	return runAll(opt, labels)
}

// RunRawPorts runs gobuster once per manually entered port token. The
// comma-separated entry path never went through the parser, so tokens
// stay opaque strings: they are trimmed, empties are dropped, and the
// protocol is https only for the exact token "443". Service names and
// other non-numeric tokens are passed through to the URL untouched.
func RunRawPorts(opt *Options, tokens []string) []*tool.Result {
	labels := make([]string, 0, len(tokens))
	for _, token := range tokens {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		labels = append(labels, token)
	}
	return runAll(opt, labels)
}

func runAll(opt *Options, ports []string) []*tool.Result {
	binary := opt.Binary
	if binary == "" {
		binary = "gobuster"
	}

	results := make([]*tool.Result, 0, len(ports))
	for _, port := range ports {
		protocol := "http"
		if port == "443" {
			protocol = "https"
		}
		url := fmt.Sprintf("%s://%s:%s", protocol, opt.Target, port)

		wordlist := ""
		if opt.Wordlist != nil {
			wordlist = opt.Wordlist(port)
		}

		outputFile := filepath.Join(opt.OutputDir, OutputFileName(port))
		args := []string{"dir", "-u", url, "-w", wordlist}

		gologger.Print().Msgf("\nRunning Gobuster scan on port %s: %s %s", port, binary, strings.Join(args, " "))

		result, err := tool.Run(outputFile, binary, args...)
		if err != nil {
			gologger.Error().Msgf("Gobuster scan for port %s failed: %s", port, err)
		} else {
			gologger.Print().Msgf("Gobuster scan for port %s completed. Results saved to: %s", port, outputFile)
		}
		results = append(results, result)
	}
	return results
}

// OutputFileName builds the per-port result file name. Manually entered
// tokens are sanitized before they reach the filesystem; numeric ports
// come through unchanged.
func OutputFileName(port string) string {
	return fmt.Sprintf("%s_gobuster_scan_%s.txt", utils.SanitizeName(port), utils.GetNowDateTimeFileName())
}
