package config

import (
	"github.com/zan8in/goflags"
)

type Options struct {
	// scanflow-config.yaml configuration file
	Config *Config

	// Target host/IP/domain to scan
	Target string

	// Directory scan results are written to
	OutputDir string

	// Workflow to run. Possible values: 1(nmap), 2(gobuster), 3(both), or the tool names
	Mode string

	// Port scan options preselected on the command line, eg: -so 1,4,8
	ScanOptions goflags.StringSlice

	// Ports for content discovery when no port scan ran, eg: -p 80,443,8080
	Ports goflags.StringSlice

	// Wordlist file for content discovery
	Wordlist string

	// answer the port strategy prompt with "scan all detected ports"
	Yes bool

	// no progress, only results
	Silent bool

	// disable the http liveness probe before content discovery
	NoLive bool

	// disable recording scan sessions to the history database
	NoHistory bool

	// list recent scan sessions and exit
	History bool

	// download wordlists from the configured sources and exit
	FetchWordlists bool

	// http/socks5 proxy for the liveness probe, eg: -proxy socks5://127.0.0.1:1080
	Proxy string

	// probe timeout in seconds
	Timeout int

	// probe retries
	Retries int

	// probe concurrency
	Concurrency int

	// update scanflow engine to the latest released version
	Update bool

	// disable the release version check on startup
	DisableUpdateCheck bool

	// show scanflow version and exit
	Version bool
}
