package report

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	fileutil "github.com/zan8in/pins/file"
	timeutil "github.com/zan8in/pins/time"
	"github.com/zan8in/scanflow/pkg/tool"
	"github.com/zan8in/scanflow/pkg/utils"
)

// Report collects one session into a plain text file next to the tool
// output, scanflow_report_<timestamp>.txt. The header is written on the
// first append, so a session that never produced anything leaves no file.
type Report struct {
	sync.RWMutex
	Target     string
	of         *os.File
	ReportFile string
}

func NewReport(outputDir string) (*Report, error) {
	r := &Report{}

	if err := r.check(outputDir); err != nil {
		return nil, err
	}

	return r, nil
}

func (report *Report) check(outputDir string) error {
	if len(outputDir) == 0 {
		outputDir = "."
	}
	if !fileutil.FolderExists(outputDir) {
		fileutil.CreateFolder(outputDir)
	}

	fileName := filepath.Join(outputDir, "scanflow_report_"+utils.GetNowDateTimeFileName()+".txt")

	_, err := os.Stat(fileName)
	if os.IsNotExist(err) {
		file, err := os.Create(fileName)
		if err != nil {
			return fmt.Errorf("unable to create report file: %v", err)
		}
		file.Close()
		time.Sleep(100 * time.Millisecond)

		report.ReportFile = fileName

		return os.Remove(fileName)
	}

	report.ReportFile = fileName

	return nil
}

func (report *Report) SetTarget(target string) {
	report.Lock()
	defer report.Unlock()

	report.Target = target
}

// AppendResult records one external tool invocation.
func (report *Report) AppendResult(res *tool.Result) error {
	if res == nil {
		return nil
	}

	var b strings.Builder
	b.WriteString("\n[" + res.Tool + "] " + res.CommandLine() + "\n")
	b.WriteString("  output:   " + res.OutputFile + "\n")
	b.WriteString("  exit:     " + strconv.Itoa(res.ExitCode) + "\n")
	b.WriteString("  duration: " + res.Duration.Round(time.Millisecond).String() + "\n")
	if stderr := strings.TrimSpace(res.Stderr); stderr != "" {
		b.WriteString("  stderr:   " + stderr + "\n")
	}

	return report.Write(b.String())
}

// AppendPorts records a port list under a short label.
func (report *Report) AppendPorts(label string, ports []int) error {
	if len(ports) == 0 {
		return report.Write("\n" + label + ": none\n")
	}

	strs := make([]string, 0, len(ports))
	for _, port := range ports {
		strs = append(strs, strconv.Itoa(port))
	}

	return report.Write("\n" + label + ": " + strings.Join(strs, ", ") + "\n")
}

// AppendLines records free form lines, such as probe verdicts or the
// review of matched scanner output.
func (report *Report) AppendLines(title string, lines []string) error {
	if len(lines) == 0 {
		return nil
	}

	var b strings.Builder
	b.WriteString("\n" + title + "\n")
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		b.WriteString("  " + line + "\n")
	}

	return report.Write(b.String())
}

func (report *Report) Write(data string) error {
	if len(data) == 0 {
		return nil
	}

	report.Lock()
	defer report.Unlock()

	flag := os.O_WRONLY | os.O_CREATE
	if report.of == nil {
		flag |= os.O_TRUNC
	} else {
		flag |= os.O_APPEND
	}

	f, err := os.OpenFile(report.ReportFile, flag, 0666)
	if err != nil {
		return err
	}
	defer f.Close()

	if report.of == nil {
		report.of = f
		header := report.header()
		if len(header) > 0 {
			wbuf := bufio.NewWriterSize(f, len(header))
			wbuf.WriteString(header)
			wbuf.Flush()
		}
	}

	wbuf := bufio.NewWriterSize(f, len(data))
	wbuf.WriteString(data)
	wbuf.Flush()

	return nil
}

func (report *Report) header() string {
	var b strings.Builder
	b.WriteString("scanflow session report\n")
	b.WriteString("generated: " + timeutil.Format(timeutil.Format_1) + "\n")
	if report.Target != "" {
		b.WriteString("target:    " + report.Target + "\n")
	}
	b.WriteString(strings.Repeat("-", 56) + "\n")
	return b.String()
}
