package portscan

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/zan8in/gologger"
	"github.com/zan8in/scanflow/pkg/utils"
)

// ParseWebPorts reads an nmap output file and collects the ports whose
// line reports an open http or https service. The leading token before
// the first "/" is the port number; lines with a malformed token are
// skipped. Ports come back deduplicated and sorted ascending. A missing
// output file yields an empty result rather than an error: a failed
// scan leaves nothing to parse.
func ParseWebPorts(path string) []int {
	webPorts := []int{}

	lines, err := utils.ReadFileLineByLine(path)
	if err != nil {
		gologger.Error().Msgf("Nmap output file %s not found.", path)
		return webPorts
	}

	seen := make(map[int]bool)
	for _, line := range lines {
		if !strings.Contains(line, "open") {
			continue
		}
		if !strings.Contains(line, "http") && !strings.Contains(line, "https") {
			continue
		}
		token := strings.TrimSpace(strings.Split(line, "/")[0])
		port, err := strconv.Atoi(token)
		if err != nil {
			continue
		}
		if !seen[port] {
			seen[port] = true
			webPorts = append(webPorts, port)
		}
	}

	sort.Ints(webPorts)
	return webPorts
}

// ReviewLines makes a second full pass over the nmap output and returns
// every line that mentions one of the discovered ports, formatted for
// manual review. The file is reread on purpose: the review shows what
// is on disk, not what the parser remembered.
func ReviewLines(path string, ports []int) ([]string, error) {
	lines, err := utils.ReadFileLineByLine(path)
	if err != nil {
		return nil, err
	}

	review := []string{}
	for _, line := range lines {
		for _, port := range ports {
			if strings.Contains(line, strconv.Itoa(port)+"/") {
				review = append(review, fmt.Sprintf("Port %d: %s", port, strings.TrimSpace(line)))
			}
		}
	}
	return review, nil
}
