package runner

import (
	"bufio"
	"io"
	"os"

	"github.com/zan8in/gologger"
	"github.com/zan8in/scanflow/pkg/config"
	"github.com/zan8in/scanflow/pkg/dirscan"
	"github.com/zan8in/scanflow/pkg/probe"
	"github.com/zan8in/scanflow/pkg/report"
	"github.com/zan8in/scanflow/pkg/tool"
)

// OnRecord receives every finished tool invocation, successful or not.
// The CLI wires this to the history database.
type OnRecord func(*tool.Result)

// Session is what one run produced, for the report and the webhooks.
type Session struct {
	Target    string
	OutputDir string
	WebPorts  []int    // parsed from the nmap output, ascending
	Scanned   []string // port labels content discovery ran against
}

type Runner struct {
	options  *config.Options
	reader   *bufio.Reader
	out      io.Writer
	prober   *probe.Prober
	Report   *report.Report
	OnRecord OnRecord
	Session  *Session
}

func NewRunner(options *config.Options) (*Runner, error) {
	runner := &Runner{
		options: options,
		reader:  bufio.NewReader(os.Stdin),
		out:     os.Stdout,
		Session: &Session{},
	}

	if !options.NoLive {
		prober, err := probe.New(&probe.Options{
			Proxy:       config.ProxyURL,
			ProxySocks:  config.ProxySocksURL,
			Timeout:     options.Timeout,
			Retries:     options.Retries,
			Concurrency: options.Concurrency,
		})
		if err != nil {
			return nil, err
		}
		runner.prober = prober
	}

	return runner, nil
}

// Run walks one session: tool choice, target, output directory, then
// the chosen workflow.
func (runner *Runner) Run() error {
	choice, err := runner.chooseTool()
	if err != nil {
		return err
	}

	target, err := runner.readTarget()
	if err != nil {
		return err
	}
	runner.Session.Target = target

	outputDir, err := runner.resolveOutputDir()
	if err != nil {
		return err
	}
	runner.Session.OutputDir = outputDir

	if sessionReport, err := report.NewReport(outputDir); err == nil {
		sessionReport.SetTarget(target)
		runner.Report = sessionReport
	} else {
		gologger.Warning().Msgf("Could not prepare the session report: %v", err)
	}

	switch choice {
	case ChoiceNmap, ChoiceBoth:
		return runner.portScanFlow()
	case ChoiceGobuster:
		return runner.contentDiscoveryOnly()
	}
	return nil
}

func (runner *Runner) record(result *tool.Result) {
	if result == nil {
		return
	}
	if runner.Report != nil {
		runner.Report.AppendResult(result)
	}
	if runner.OnRecord != nil {
		runner.OnRecord(result)
	}
}

func (runner *Runner) nmapBinary() string {
	if runner.options.Config != nil && runner.options.Config.Tools.Nmap != "" {
		return runner.options.Config.Tools.Nmap
	}
	return "nmap"
}

func (runner *Runner) gobusterBinary() string {
	if runner.options.Config != nil && runner.options.Config.Tools.Gobuster != "" {
		return runner.options.Config.Tools.Gobuster
	}
	return "gobuster"
}

func (runner *Runner) dirscanOptions() *dirscan.Options {
	return &dirscan.Options{
		Binary:    runner.gobusterBinary(),
		Target:    runner.Session.Target,
		OutputDir: runner.Session.OutputDir,
		Wordlist:  runner.wordlistFor,
	}
}
