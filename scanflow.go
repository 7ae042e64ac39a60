package scanflow

import (
	"fmt"
	"strings"

	"github.com/zan8in/goflags"
	"github.com/zan8in/gologger"
	"github.com/zan8in/gologger/levels"
	"github.com/zan8in/scanflow/pkg/config"
	"github.com/zan8in/scanflow/pkg/runner"
)

// Scanner is the embedding surface of scanflow. Every prompt of the
// interactive session is answered from these fields, so a run never
// stops to ask: detected web ports all go to content discovery, and an
// empty Wordlist falls back to the configured default.
type Scanner struct {
	Target      string
	OutputDir   string
	Mode        string
	ScanOptions []string
	Ports       []string
	Wordlist    string
	Silent      bool
	NoLive      bool
	Proxy       string
	Timeout     int
	Retries     int
	Concurrency int
	OnRecord    runner.OnRecord
}

func NewScanner(target string, opt Scanner) (*runner.Session, error) {

	s := &Scanner{}

	s.Target = target
	s.OutputDir = opt.WithOutputDir()
	s.Mode = opt.WithMode()
	s.ScanOptions = opt.WithScanOptions()
	s.Ports = opt.WithPorts()
	s.Wordlist = opt.WithWordlist()
	s.Silent = opt.WithSilent()
	s.NoLive = opt.WithNoLive()
	s.Proxy = opt.WithProxy()
	s.Timeout = opt.WithTimeout()
	s.Retries = opt.WithRetries()
	s.Concurrency = opt.WithConcurrency()

	if err := s.verifyOptions(); err != nil {
		return nil, err
	}

	options := &config.Options{
		Target:      s.Target,
		OutputDir:   s.OutputDir,
		Mode:        s.Mode,
		ScanOptions: goflags.StringSlice(s.ScanOptions),
		Ports:       goflags.StringSlice(s.Ports),
		Wordlist:    s.Wordlist,
		Silent:      s.Silent,
		NoLive:      s.NoLive,
		Proxy:       s.Proxy,
		Timeout:     s.Timeout,
		Retries:     s.Retries,
		Concurrency: s.Concurrency,
		Yes:         true,
	}

	cfg, err := config.New()
	if err != nil {
		return nil, err
	}
	options.Config = cfg

	if err := config.LoadProxyServers(options); err != nil {
		return nil, err
	}

	r, err := runner.NewRunner(options)
	if err != nil {
		return nil, err
	}
	r.OnRecord = opt.OnRecord

	if err := r.Run(); err != nil {
		return nil, err
	}

	return r.Session, nil
}

func (opt *Scanner) verifyOptions() error {

	if len(opt.Target) == 0 {
		return fmt.Errorf("`target` must be set")
	}

	mode := strings.ToLower(opt.Mode)
	if (mode == runner.ChoiceGobuster || mode == "gobuster") && len(opt.Ports) == 0 {
		return fmt.Errorf("`ports` must be set when mode is %s", runner.ChoiceGobuster)
	}

	if opt.Silent {
		gologger.DefaultLogger.SetMaxLevel(levels.LevelError)
	} else {
		config.ShowBanner(config.Version)
	}

	return nil
}

func (s *Scanner) WithOutputDir() string {
	if len(s.OutputDir) > 0 {
		return s.OutputDir
	}
	return "."
}

func (s *Scanner) WithMode() string {
	if len(s.Mode) > 0 {
		return s.Mode
	}
	return runner.ChoiceBoth
}

func (s *Scanner) WithScanOptions() []string {
	if len(s.ScanOptions) > 0 {
		return s.ScanOptions
	}
	return []string{"5"}
}

func (s *Scanner) WithPorts() []string {
	if len(s.Ports) > 0 {
		return s.Ports
	}
	return nil
}

func (s *Scanner) WithWordlist() string {
	if len(s.Wordlist) > 0 {
		return s.Wordlist
	}
	return ""
}

func (s *Scanner) WithSilent() bool {
	return s.Silent
}
func (s *Scanner) WithNoLive() bool {
	return s.NoLive
}

func (s *Scanner) WithProxy() string {
	if len(s.Proxy) > 0 {
		return s.Proxy
	}
	return ""
}

func (s *Scanner) WithTimeout() int {
	if s.Timeout > 0 {
		return s.Timeout
	}
	return 10
}
func (s *Scanner) WithRetries() int {
	if s.Retries > 0 {
		return s.Retries
	}
	return 1
}
func (s *Scanner) WithConcurrency() int {
	if s.Concurrency > 0 {
		return s.Concurrency
	}
	return 25
}
