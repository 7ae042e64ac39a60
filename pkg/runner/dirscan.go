package runner

import (
	"fmt"
	"strconv"
	"strings"

	fileutil "github.com/zan8in/pins/file"
	"github.com/zan8in/scanflow/pkg/dirscan"
	"github.com/zan8in/scanflow/pkg/wordlist"
)

// portStrategy is the post review menu: scan everything, a subset, or
// nothing. -y answers it with "scan all" so embedded runs never block.
func (runner *Runner) portStrategy(webPorts []int) error {
	if runner.options.Yes {
		fmt.Fprintf(runner.out, "\nRunning Gobuster on all detected ports: %s\n", joinInts(webPorts))
		runner.runContentDiscovery(webPorts)
		return nil
	}

	for {
		fmt.Fprintln(runner.out, "\nDo you want to:")
		fmt.Fprintf(runner.out, "1. Scan all detected ports (%s) with Gobuster\n", joinInts(webPorts))
		fmt.Fprintln(runner.out, "2. Select specific ports")
		fmt.Fprintln(runner.out, "3. Skip Gobuster and exit")
		prompt, err := runner.readLine("Enter your choice (1/2/3): ")
		if err != nil {
			return err
		}

		switch prompt {
		case "1":
			fmt.Fprintf(runner.out, "\nRunning Gobuster on all detected ports: %s\n", joinInts(webPorts))
			runner.runContentDiscovery(webPorts)
			return nil
		case "2":
			selected, err := runner.selectPorts(webPorts)
			if err != nil {
				return err
			}
			if len(selected) > 0 {
				fmt.Fprintf(runner.out, "\nFinal list of ports selected for Gobuster scan: %s\n", joinInts(selected))
				runner.runContentDiscovery(selected)
			} else {
				fmt.Fprintln(runner.out, "No ports selected. Skipping Gobuster.")
			}
			return nil
		case "3":
			fmt.Fprintln(runner.out, "No further scans selected. Skipping Gobuster.")
			return nil
		default:
			fmt.Fprintln(runner.out, "Invalid input. Please type '1', '2', or '3'.")
		}
	}
}

// selectPorts moves ports one at a time from the detected list to the
// scan list. A selected port leaves the available list, so it cannot be
// added twice.
func (runner *Runner) selectPorts(webPorts []int) ([]int, error) {
	available := append([]int(nil), webPorts...)
	selected := []int{}

	for {
		if len(available) > 0 {
			fmt.Fprintf(runner.out, "\nPorts available for selection: %s\n", joinInts(available))
		} else {
			fmt.Fprintln(runner.out, "No ports left to select.")
		}
		if len(selected) > 0 {
			fmt.Fprintf(runner.out, "Ports already added for Gobuster scan: %s\n", joinInts(selected))
		} else {
			fmt.Fprintln(runner.out, "No ports added yet.")
		}

		portChoice, err := runner.readLine("Enter a port to scan (or 'done' to finish selection): ")
		if err != nil {
			return nil, err
		}
		if portChoice == "done" {
			return selected, nil
		}

		if port, convErr := strconv.Atoi(portChoice); convErr == nil {
			if rest, ok := removePort(available, port); ok {
				available = rest
				selected = append(selected, port)
				fmt.Fprintf(runner.out, "Added port %d for Gobuster scan.\n", port)
				continue
			}
		}
		fmt.Fprintf(runner.out, "Invalid input. Please enter a valid port from the list: %s.\n", joinInts(available))
	}
}

func removePort(ports []int, port int) ([]int, bool) {
	for i, p := range ports {
		if p == port {
			return append(ports[:i], ports[i+1:]...), true
		}
	}
	return ports, false
}

func (runner *Runner) runContentDiscovery(ports []int) {
	results := dirscan.RunPorts(runner.dirscanOptions(), ports)
	for _, result := range results {
		runner.record(result)
	}
	for _, port := range ports {
		runner.Session.Scanned = append(runner.Session.Scanned, strconv.Itoa(port))
	}
	if runner.Report != nil {
		runner.Report.AppendPorts("content discovery ports", ports)
	}
}

// contentDiscoveryOnly is the gobuster only workflow. Ports come from
// the -p flag or a comma separated prompt and stay raw strings: nothing
// parsed them, so nothing pretends they are numbers.
func (runner *Runner) contentDiscoveryOnly() error {
	var tokens []string
	if len(runner.options.Ports) > 0 {
		tokens = append(tokens, runner.options.Ports...)
	} else {
		fmt.Fprintln(runner.out, "\nConfiguring Gobuster scan...")
		line, err := runner.readLine("Enter the ports to scan (comma-separated, e.g., 80,443): ")
		if err != nil {
			return err
		}
		tokens = strings.Split(line, ",")
	}

	results := dirscan.RunRawPorts(runner.dirscanOptions(), tokens)
	for _, result := range results {
		runner.record(result)
	}
	for _, token := range tokens {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		runner.Session.Scanned = append(runner.Session.Scanned, token)
	}
	if runner.Report != nil && len(runner.Session.Scanned) > 0 {
		runner.Report.AppendLines("content discovery ports", []string{strings.Join(runner.Session.Scanned, ", ")})
	}
	return nil
}

// wordlistFor answers the per port wordlist prompt. The -w flag skips
// the prompt; otherwise the resolved default is offered so a bare enter
// keeps the session moving, and a typed path must exist before it is
// accepted.
func (runner *Runner) wordlistFor(port string) string {
	if w := strings.TrimSpace(runner.options.Wordlist); w != "" {
		return w
	}

	def := wordlist.Resolve("", runner.options.Config)
	if runner.options.Yes {
		return def
	}

	prompt := fmt.Sprintf("Enter the path to your wordlist for port %s: ", port)
	if def != "" {
		prompt = fmt.Sprintf("Enter the path to your wordlist for port %s [%s]: ", port, def)
	}
	for {
		answer, err := runner.readLine(prompt)
		if err != nil || answer == "" {
			return def
		}
		if fileutil.FileExists(answer) {
			return answer
		}
		fmt.Fprintf(runner.out, "Wordlist file '%s' not found.\n", answer)
	}
}

func joinInts(ports []int) string {
	strs := make([]string, 0, len(ports))
	for _, port := range ports {
		strs = append(strs, strconv.Itoa(port))
	}
	return strings.Join(strs, ", ")
}
