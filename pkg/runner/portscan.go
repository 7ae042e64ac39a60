package runner

import (
	"fmt"
	"strings"

	"github.com/zan8in/scanflow/pkg/log"
	"github.com/zan8in/scanflow/pkg/portscan"
)

// configureScanOptions collects nmap flags, from -so when given,
// interactively otherwise. Selection order is preserved and a flag can
// only be added once.
func (runner *Runner) configureScanOptions() ([]string, error) {
	if len(runner.options.ScanOptions) > 0 {
		return runner.flagScanOptions()
	}

	fmt.Fprintln(runner.out, "\nConfiguring Nmap scan...")
	fmt.Fprintln(runner.out, "\nChoose the type of scan options (you can select multiple):")
	for _, option := range portscan.ScanOptions {
		fmt.Fprintf(runner.out, "%s. %s\n", option.Key, option.Label)
	}
	fmt.Fprintln(runner.out, "\nType the numbers corresponding to your choices. Type 'done' when finished.")

	selected := []string{}
	for {
		choice, err := runner.readLine("Enter your choice (1-10 or 'done'): ")
		if err != nil {
			return nil, err
		}
		if choice == "done" {
			if len(selected) == 0 {
				fmt.Fprintln(runner.out, "No options selected. Adding default top 1000 port scan.")
				selected = append(selected, "")
			}
			break
		}
		option, ok := portscan.LookupOption(choice)
		if !ok {
			fmt.Fprintln(runner.out, "Invalid choice. Please select a valid option.")
			continue
		}
		if containsFlag(selected, option.Flag) {
			fmt.Fprintf(runner.out, "Option %s already added.\n", choice)
			continue
		}
		selected = append(selected, option.Flag)
		fmt.Fprintf(runner.out, "Added option %s\n", choice)
	}
	return selected, nil
}

// flagScanOptions maps the -so keys without prompting. An unknown key
// is an error: there is nobody to re-ask.
func (runner *Runner) flagScanOptions() ([]string, error) {
	selected := []string{}
	for _, key := range runner.options.ScanOptions {
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}
		option, ok := portscan.LookupOption(key)
		if !ok {
			return nil, fmt.Errorf("unknown scan option: %s", key)
		}
		if containsFlag(selected, option.Flag) {
			continue
		}
		selected = append(selected, option.Flag)
	}
	if len(selected) == 0 {
		selected = append(selected, "")
	}
	return selected, nil
}

func containsFlag(flags []string, flag string) bool {
	for _, f := range flags {
		if f == flag {
			return true
		}
	}
	return false
}

// portScanFlow is the nmap side of the session: configure, scan, parse,
// review, then hand qualifying ports to content discovery.
func (runner *Runner) portScanFlow() error {
	flags, err := runner.configureScanOptions()
	if err != nil {
		return err
	}

	result, runErr := portscan.Run(&portscan.Options{
		Binary:    runner.nmapBinary(),
		Flags:     flags,
		Target:    runner.Session.Target,
		OutputDir: runner.Session.OutputDir,
	})
	runner.record(result)
	_ = runErr // a failed scan leaves a missing or partial file; the parser copes

	webPorts := portscan.ParseWebPorts(result.OutputFile)
	if len(webPorts) == 0 {
		fmt.Fprintln(runner.out, "No potential web application ports detected. Skipping Gobuster.")
		return nil
	}
	runner.Session.WebPorts = append([]int(nil), webPorts...)

	runner.reviewFindings(result.OutputFile, webPorts)

	return runner.portStrategy(webPorts)
}

// reviewFindings rereads the nmap output and shows every line that
// mentions a detected port, so the user can judge the findings before
// anything else runs against them.
func (runner *Runner) reviewFindings(outputFile string, webPorts []int) {
	fmt.Fprintln(runner.out, "\nPotential Web Application Ports Detected:")
	fmt.Fprintln(runner.out, "Review the following lines to ensure these are valid web applications before proceeding.")

	lines, err := portscan.ReviewLines(outputFile, webPorts)
	if err != nil {
		fmt.Fprintf(runner.out, "Error: Could not open Nmap output file %s for review.\n", outputFile)
	}
	for _, line := range lines {
		fmt.Fprintln(runner.out, line)
	}
	if runner.Report != nil {
		runner.Report.AppendLines("review", lines)
	}

	runner.annotateLiveness(webPorts)
}

// annotateLiveness asks each detected port for a quick http response
// and prints the verdicts. Purely informational: ports are never
// dropped here, the user decides what to scan.
func (runner *Runner) annotateLiveness(webPorts []int) {
	if runner.prober == nil {
		return
	}

	results := runner.prober.Probe(runner.Session.Target, webPorts)
	if len(results) == 0 {
		return
	}

	fmt.Fprintln(runner.out, "\nLiveness probe:")
	probeLines := make([]string, 0, len(webPorts))
	for _, port := range webPorts {
		result, ok := results[port]
		if !ok {
			continue
		}
		verdict := result.Verdict()
		if result.Alive {
			fmt.Fprintf(runner.out, "Port %d: %s\n", port, log.LogColor.Green(verdict))
		} else {
			fmt.Fprintf(runner.out, "Port %d: %s\n", port, log.LogColor.Warning(verdict))
		}
		probeLines = append(probeLines, fmt.Sprintf("%d %s", port, verdict))
	}
	if runner.Report != nil {
		runner.Report.AppendLines("probe", probeLines)
	}
}
