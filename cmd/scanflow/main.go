package main

import (
	"github.com/zan8in/gologger"
	"github.com/zan8in/gologger/levels"
	"github.com/zan8in/goflags"
	"github.com/zan8in/scanflow/internal/runner"
	"github.com/zan8in/scanflow/pkg/config"
)

var options = &config.Options{}

func main() {
	readConfig()

	if options.Silent {
		gologger.DefaultLogger.SetMaxLevel(levels.LevelError)
	}

	if err := runner.New(options); err != nil {
		gologger.Fatal().Msgf("scanflow failed: %s", err)
	}
}

func readConfig() {
	flagSet := goflags.NewFlagSet()
	flagSet.SetDescription(`scanflow`)

	flagSet.CreateGroup("input", "Target",
		flagSet.StringVarP(&options.Target, "target", "t", "", "target IP address or domain to scan"),
		flagSet.StringVarP(&options.Mode, "mode", "m", "", "workflow to run. Possible values: 1(nmap), 2(gobuster), 3(both), or the tool names"),
		flagSet.StringVarP(&options.OutputDir, "dir", "d", "", "output directory for scan results"),
	)

	flagSet.CreateGroup("portscan", "Port scan",
		flagSet.StringSliceVarP(&options.ScanOptions, "scan-options", "so", nil, "preselected nmap options, eg: -so 1,4,8", goflags.NormalizedStringSliceOptions),
	)

	flagSet.CreateGroup("discovery", "Content discovery",
		flagSet.StringSliceVarP(&options.Ports, "ports", "p", nil, "ports for content discovery when no port scan ran, eg: -p 80,443,8080", goflags.NormalizedStringSliceOptions),
		flagSet.StringVarP(&options.Wordlist, "wordlist", "w", "", "wordlist file for content discovery"),
		flagSet.BoolVarP(&options.FetchWordlists, "fetch-wordlists", "fw", false, "download wordlists from the configured sources and exit"),
	)

	flagSet.CreateGroup("probe", "Probe",
		flagSet.BoolVarP(&options.NoLive, "nolive", "nl", false, "disable the http liveness probe before content discovery"),
		flagSet.StringVar(&options.Proxy, "proxy", "", "probe proxy, eg: -proxy socks5://127.0.0.1:1080"),
		flagSet.IntVar(&options.Timeout, "timeout", config.DefaultTimeout, "probe timeout in seconds"),
		flagSet.IntVar(&options.Retries, "retries", config.DefaultRetries, "probe retries"),
		flagSet.IntVarP(&options.Concurrency, "concurrency", "c", config.DefaultConcurrency, "probe concurrency"),
	)

	flagSet.CreateGroup("history", "History",
		flagSet.BoolVarP(&options.History, "history", "his", false, "list recorded scan sessions and exit"),
		flagSet.BoolVarP(&options.NoHistory, "nohistory", "nh", false, "disable recording scan sessions to the history database"),
	)

	flagSet.CreateGroup("optimization", "Optimizations",
		flagSet.BoolVarP(&options.Silent, "silent", "s", false, "no progress, only results"),
		flagSet.BoolVarP(&options.Yes, "yes", "y", false, "scan all detected ports without asking"),
	)

	flagSet.CreateGroup("update", "Update",
		flagSet.BoolVarP(&options.Update, "update", "un", false, "update scanflow engine to the latest released version"),
		flagSet.BoolVarP(&options.DisableUpdateCheck, "disable-update-check", "duc", false, "disable the release version check on startup"),
		flagSet.BoolVar(&options.Version, "version", false, "show scanflow version"),
	)

	_ = flagSet.Parse()
}
