package log

import (
	"os"
	"runtime"
	"strconv"

	"github.com/gookit/color"
)

var (
	EnableColor = true
)

type Color struct {
	Warning func(a ...any) string
	Low     func(a ...any) string
	Time    func(a ...any) string
	Title   func(a ...any) string
	Bold    func(a ...any) string
	Red     func(a ...any) string
	Green   func(a ...any) string
}

var LogColor *Color

func init() {
	detectTerminal()

	if LogColor == nil {
		LogColor = NewColor()
	}
}

// 检测终端颜色支持
func detectTerminal() {
	// Windows 特殊处理
	if runtime.GOOS == "windows" {
		// 检查是否是 Windows Terminal 或 ANSICON
		_, wt := os.LookupEnv("WT_SESSION")
		_, ansi := os.LookupEnv("ANSICON")
		EnableColor = wt || ansi
	} else {
		// Unix 系统检查是否是 TTY
		fi, _ := os.Stdout.Stat()
		EnableColor = (fi.Mode() & os.ModeCharDevice) != 0
	}
}

func colorize(code int, s string) string {
	if !EnableColor {
		return s
	}
	return "\033[" + strconv.Itoa(code) + "m" + s + "\033[0m"
}

func Red(s string) string    { return colorize(31, s) }
func Green(s string) string  { return colorize(32, s) }
func Yellow(s string) string { return colorize(33, s) }
func Cyan(s string) string   { return colorize(36, s) }

func Bold(s string) string { return colorize(1, s) }
func Dim(s string) string  { return colorize(2, s) }

func NewColor() *Color {
	return &Color{
		Warning: color.FgYellow.Render,
		Low:     color.FgCyan.Render,
		Time:    color.Gray.Render,
		Title:   color.FgLightBlue.Render,
		Bold:    color.Bold.Render,
		Red:     color.FgLightRed.Render,
		Green:   color.FgLightGreen.Render,
	}
}
