package portscan

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/zan8in/gologger"
	"github.com/zan8in/scanflow/pkg/tool"
	"github.com/zan8in/scanflow/pkg/utils"
)

// Options configuration for a single nmap run
type Options struct {
	Binary    string   // nmap binary, resolved from flags or scanflow-config.yaml
	Flags     []string // selected option flags, insertion order
	Target    string   // IP or domain, passed to nmap verbatim
	OutputDir string
}

// OutputFileName builds the result file name for a target. The target
// is cleaned for filesystem use; the raw value still goes on the
// command line.
func OutputFileName(target string) string {
	return fmt.Sprintf("nmap_scan_%s_%s.txt", utils.CleanURL(target), utils.GetNowDateTimeFileName())
}

// Run executes nmap and streams its stdout into a timestamped file
// inside OutputDir. The returned result carries the output file path
// even when nmap failed, so the parse and review passes can still look
// at whatever was written.
func Run(opt *Options) (*tool.Result, error) {
	binary := opt.Binary
	if binary == "" {
		binary = "nmap"
	}

	outputFile := filepath.Join(opt.OutputDir, OutputFileName(opt.Target))
	args := BuildArgs(opt.Flags, opt.Target)

	gologger.Print().Msgf("\nRunning the Nmap scan: %s %s", binary, strings.Join(args, " "))

	result, err := tool.Run(outputFile, binary, args...)
	if err != nil {
		gologger.Error().Msgf("Nmap scan failed: %s", err)
		return result, err
	}

	gologger.Print().Msgf("\nNmap scan completed. Results saved to: %s", outputFile)
	return result, nil
}
