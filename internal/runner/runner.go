package runner

import (
	"github.com/zan8in/gologger"
	"github.com/zan8in/scanflow/pkg/config"
	"github.com/zan8in/scanflow/pkg/db"
	"github.com/zan8in/scanflow/pkg/db/sqlite"
	"github.com/zan8in/scanflow/pkg/runner"
	"github.com/zan8in/scanflow/pkg/tool"
	"github.com/zan8in/scanflow/pkg/utils"
	"github.com/zan8in/scanflow/pkg/webhook/dingtalk"
	"github.com/zan8in/scanflow/pkg/webhook/wecom"
	"github.com/zan8in/scanflow/pkg/wordlist"
)

type Runner struct {
	options *config.Options
	session *runner.Runner
	ding    *dingtalk.Dingtalk
	wecom   *wecom.Wecom
	history bool
}

// New wires everything around one interactive session: config, proxy,
// history database and webhooks, then hands control to the session.
func New(options *config.Options) error {
	// scanflow engine update
	if options.Update {
		return UpdateVersionToLatest()
	}

	if options.Version {
		config.ShowVersion()
		return nil
	}

	// init config file
	cfg, err := config.New()
	if err != nil {
		return err
	}
	options.Config = cfg

	// print scan history
	if options.History {
		return ListHistory("")
	}

	// download wordlists
	if options.FetchWordlists {
		return wordlist.FetchAll(cfg.Wordlist.Sources)
	}

	// show banner
	if options.DisableUpdateCheck {
		config.ShowBanner(config.Version)
	} else if latest, err := LatestVersion(); err == nil {
		config.ShowBanner(latest)
	} else {
		config.ShowBanner(config.Version)
	}

	// init proxyURL
	if err := config.LoadProxyServers(options); err != nil {
		return err
	}

	r := &Runner{options: options}

	// 外部工具缺失不阻断会话，运行到了才报错
	if !tool.Exists(cfg.Tools.Nmap) {
		gologger.Warning().Msgf("%s not found in PATH, the port scan workflow will fail", cfg.Tools.Nmap)
	}
	if !tool.Exists(cfg.Tools.Gobuster) {
		gologger.Warning().Msgf("%s not found in PATH, content discovery will fail", cfg.Tools.Gobuster)
	}

	// init history database
	if r.historyEnabled() {
		if err := sqlite.NewSqliteDB(); err != nil {
			gologger.Warning().Msgf("History database disabled: %v", err)
		} else if err := sqlite.InitX(); err != nil {
			gologger.Warning().Msgf("History database disabled: %v", err)
		} else {
			r.history = true
			defer sqlite.CloseX()
		}
	}

	// webhook notifiers
	if !wecom.IsTokensEmpty(cfg.Webhook.Wecom.Tokens) {
		if w, err := wecom.New(cfg.Webhook.Wecom.Tokens, cfg.Webhook.Wecom.AtMobiles, cfg.Webhook.Wecom.AtAll, false); err == nil {
			r.wecom = w
		}
	}
	if !dingtalk.IsTokensEmpty(cfg.Webhook.Dingtalk.Tokens) {
		if d, err := dingtalk.New(cfg.Webhook.Dingtalk.Tokens, cfg.Webhook.Dingtalk.AtMobiles, cfg.Webhook.Dingtalk.AtAll); err == nil {
			r.ding = d
		}
	}

	session, err := runner.NewRunner(options)
	if err != nil {
		return err
	}
	r.session = session
	if r.history {
		session.OnRecord = r.recordHistory
	}

	if err := session.Run(); err != nil {
		return err
	}

	r.notify()

	if session.Report != nil && utils.Exists(session.Report.ReportFile) {
		gologger.Info().Msgf("Session report saved to: %s", session.Report.ReportFile)
	}

	return nil
}

func (r *Runner) historyEnabled() bool {
	if r.options.NoHistory {
		return false
	}
	if r.options.Config != nil && !r.options.Config.History.Enabled {
		return false
	}
	return true
}

func (r *Runner) recordHistory(result *tool.Result) {
	sqlite.SetRecordX(&db.Record{
		Tool:       result.Tool,
		Target:     r.session.Session.Target,
		Command:    result.CommandLine(),
		OutputFile: result.OutputFile,
		ExitCode:   result.ExitCode,
		Stderr:     result.Stderr,
		Duration:   result.Duration.Milliseconds(),
	})
}

func (r *Runner) notify() {
	session := r.session.Session
	if r.wecom != nil {
		if err := r.wecom.SendSummary(session.Target, session.OutputDir, session.WebPorts, session.Scanned); err != nil {
			gologger.Error().Msgf("Wecom notify failed: %v", err)
		}
	}
	if r.ding != nil {
		content := r.ding.SummaryMarkdown(session.Target, session.OutputDir, session.WebPorts, session.Scanned)
		if err := r.ding.SendMarkDownMessageBySlice("scanflow "+session.Target, content); err != nil {
			gologger.Error().Msgf("Dingtalk notify failed: %v", err)
		}
	}
}
