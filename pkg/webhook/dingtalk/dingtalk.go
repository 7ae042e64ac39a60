package dingtalk

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	ding "github.com/blinkbean/dingtalk"
	timeutil "github.com/zan8in/pins/time"
)

type Dingtalk struct {
	Ding      *ding.DingTalk
	Tokens    []string // Tokens 单个机器人有单位时间内消息条数的限制，如果有需要可以初始化多个token，发消息时随机发给其中一个机器人。
	AtMobiles []string // 可选参数 @指定群成员
	AtAll     bool     // 可选参数 @所有人
}

func New(tokens, atMobiles []string, atAll bool) (*Dingtalk, error) {
	if len(tokens) == 0 {
		return nil, errors.New("tokens can not be empty")
	}
	return &Dingtalk{
		Ding:      ding.InitDingTalk(tokens, "."),
		Tokens:    tokens,
		AtMobiles: atMobiles,
		AtAll:     atAll,
	}, nil
}

func (d *Dingtalk) SendMarkDownMessageBySlice(title string, mkcontent []string) error {
	if mkcontent == nil {
		return nil
	}
	if d.AtAll {
		return d.Ding.SendMarkDownMessageBySlice(title, mkcontent, ding.WithAtAll())
	}
	if !d.IsAtMobilesEmpty() {
		return d.Ding.SendMarkDownMessageBySlice(title, mkcontent, ding.WithAtMobiles(d.AtMobiles))
	}
	return d.Ding.SendMarkDownMessageBySlice(title, mkcontent)
}

// SummaryMarkdown renders the end of session summary for one target.
func (d *Dingtalk) SummaryMarkdown(target, outputDir string, webPorts []int, scanned []string) []string {
	if target == "" {
		return nil
	}
	return []string{
		fmt.Sprintf("##### scanflow <font color='blue'><b>%s</b></font>", target),
		"---",
		fmt.Sprintf("web ports: %s<br/>", joinPorts(webPorts)),
		fmt.Sprintf("content discovery: %s<br/>", joinLabels(scanned)),
		fmt.Sprintf("output: %s<br/>", outputDir),
		fmt.Sprintf("<font color=GRAY>%s\tfr.scanflow</font>", timeutil.Format(timeutil.FormatShortDateTime)),
	}
}

func joinPorts(ports []int) string {
	if len(ports) == 0 {
		return "none"
	}
	strs := make([]string, 0, len(ports))
	for _, port := range ports {
		strs = append(strs, strconv.Itoa(port))
	}
	return strings.Join(strs, ", ")
}

func joinLabels(labels []string) string {
	if len(labels) == 0 {
		return "skipped"
	}
	return strings.Join(labels, ", ")
}

func IsTokensEmpty(tokens []string) bool {
	if len(tokens) == 0 {
		return true
	}
	for _, token := range tokens {
		if len(token) > 0 {
			return false
		}
	}
	return true
}

func (d *Dingtalk) IsAtMobilesEmpty() bool {
	if len(d.AtMobiles) == 0 {
		return true
	}
	for _, mobile := range d.AtMobiles {
		if len(mobile) > 0 {
			return false
		}
	}
	return true
}
