package wecom

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strconv"
	"strings"

	wxworkbot "github.com/vimsucks/wxwork-bot-go"
	timeutil "github.com/zan8in/pins/time"
)

type Wecom struct {
	Tokens    []string
	AtMobiles []string
	AtAll     bool
	Markdown  bool
}

func New(tokens, atMobiles []string, atAll bool, markdown bool) (*Wecom, error) {
	tokens = normalizeStringSlice(tokens)
	atMobiles = normalizeStringSlice(atMobiles)
	if len(tokens) == 0 {
		return nil, errors.New("tokens can not be empty")
	}
	return &Wecom{
		Tokens:    tokens,
		AtMobiles: atMobiles,
		AtAll:     atAll,
		Markdown:  markdown,
	}, nil
}

func normalizeStringSlice(in []string) []string {
	if len(in) == 0 {
		return nil
	}
	out := make([]string, 0, len(in))
	for _, v := range in {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		out = append(out, v)
	}
	return out
}

// SendSummary pushes the end of session summary for one target.
func (w *Wecom) SendSummary(target, outputDir string, webPorts []int, scanned []string) error {
	if target == "" {
		return nil
	}
	content := []string{}
	mentionedMobiles := normalizeStringSlice(w.AtMobiles)
	if w.AtAll && !w.Markdown {
		mentionedMobiles = append(mentionedMobiles, "@all")
	}
	if !w.Markdown {
		content = w.makeText(target, outputDir, webPorts, scanned)
	} else {
		content = w.markdownText(target, outputDir, webPorts, scanned)
	}
	if content == nil {
		return nil
	}
	if w.Markdown && w.AtAll {
		content = append(content, "<@all>")
	}
	return w.sendMessage(content, w.Markdown, mentionedMobiles)
}

func (w *Wecom) sendMessage(content []string, markdown bool, mentionedMobiles []string) error {
	idx := 0
	if len(w.Tokens) > 1 {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(w.Tokens))))
		if err == nil {
			idx = int(n.Int64())
		}
	}
	bot := wxworkbot.New(w.Tokens[idx])
	if !markdown {
		text := wxworkbot.Text{
			Content:             strings.Join(content, "\n"),
			MentionedMobileList: mentionedMobiles,
		}
		err := bot.Send(text)
		if err != nil {
			return err
		}
	} else {
		markdownText := wxworkbot.Markdown{Content: strings.Join(content, "\n")}
		err := bot.Send(markdownText)
		if err != nil {
			return err
		}
	}
	return nil
}

func (w *Wecom) markdownText(target, outputDir string, webPorts []int, scanned []string) []string {
	return []string{
		fmt.Sprintf("##### scanflow %s", target),
		"---",
		fmt.Sprintf("web ports: %s", joinPorts(webPorts)),
		fmt.Sprintf("content discovery: %s", joinLabels(scanned)),
		fmt.Sprintf("output: %s", outputDir),
		fmt.Sprintf("<font color=GRAY>%s\tfr.scanflow</font>", timeutil.Format(timeutil.FormatShortDateTime)),
	}
}

func (w *Wecom) makeText(target, outputDir string, webPorts []int, scanned []string) []string {
	return []string{
		fmt.Sprintf("Time: %s", timeutil.Format(timeutil.FormatShortDateTime)),
		fmt.Sprintf("Target: %s", target),
		fmt.Sprintf("Web Ports: %s\nContent Discovery: %s", joinPorts(webPorts), joinLabels(scanned)),
		fmt.Sprintf("Output: %s", outputDir),
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
