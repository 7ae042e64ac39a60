package runner

import (
	"fmt"
	"os"
	"strings"

	"github.com/zan8in/scanflow/pkg/utils"
)

// resolveOutputDir settles where result files go. The -d flag takes the
// non interactive path; without it the resolver keeps asking until a
// usable directory exists.
func (runner *Runner) resolveOutputDir() (string, error) {
	if dir := strings.TrimSpace(runner.options.OutputDir); dir != "" {
		return runner.prepareOutputDir(dir)
	}

	for {
		outputDir, err := runner.readLine("Enter the output directory (use '.' for the current working directory): ")
		if err != nil {
			return "", err
		}

		sanitized := utils.SanitizeName(outputDir)
		if sanitized != outputDir {
			fmt.Fprintf(runner.out, "Warning: The directory name contained invalid characters. Sanitized to: %s\n", sanitized)
			confirm, err := runner.readLine("Do you want to use the sanitized directory name? (y/n): ")
			if err != nil {
				return "", err
			}
			if strings.ToLower(confirm) != "y" {
				continue
			}
		}

		if sanitized == "." {
			cwd, err := os.Getwd()
			if err != nil {
				return "", err
			}
			sanitized = cwd
		}

		if !utils.Exists(sanitized) {
			fmt.Fprintf(runner.out, "Directory '%s' does not exist. Creating it...\n", sanitized)
			if err := os.MkdirAll(sanitized, 0755); err != nil {
				fmt.Fprintf(runner.out, "Error creating directory: %v\n", err)
				continue
			}
		}

		return sanitized, nil
	}
}

// prepareOutputDir is the flag driven variant. A -d value is taken as a
// real filesystem path, absolute or relative, and never rewritten; only
// prompted input goes through the name sanitizer.
func (runner *Runner) prepareOutputDir(dir string) (string, error) {
	if dir == "." {
		cwd, err := os.Getwd()
		if err != nil {
			return "", err
		}
		dir = cwd
	}

	if !utils.Exists(dir) {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return "", err
		}
	}

	return dir, nil
}
