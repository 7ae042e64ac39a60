package portscan

// ScanOption is one entry of the scan type menu. Flag holds the nmap
// token the entry maps to; the top-1000 default maps to an empty token
// that is dropped when the command line is built.
type ScanOption struct {
	Key   string
	Label string
	Flag  string
}

// ScanOptions lists the menu entries in display order.
var ScanOptions = []ScanOption{
	{Key: "1", Label: "Stealth scan (SYN scan)", Flag: "-sS"},
	{Key: "2", Label: "Verbose output", Flag: "-v"},
	{Key: "3", Label: "Full port scan (all 65535 ports)", Flag: "-p-"},
	{Key: "4", Label: "Version scan", Flag: "-sV"},
	{Key: "5", Label: "Top 1000 port scan (default)", Flag: ""},
	{Key: "6", Label: "Ping scan (determine live hosts)", Flag: "-sn"},
	{Key: "7", Label: "OS detection", Flag: "-O"},
	{Key: "8", Label: "Script scan (default Nmap scripts)", Flag: "-sC"},
	{Key: "9", Label: "Aggressive scan (OS + version + script + traceroute)", Flag: "-A"},
	{Key: "10", Label: "Disable DNS resolution (faster scans)", Flag: "-n"},
}

// LookupOption resolves a menu key to its entry.
func LookupOption(key string) (ScanOption, bool) {
	for _, option := range ScanOptions {
		if option.Key == key {
			return option, true
		}
	}
	return ScanOption{}, false
}

// BuildArgs assembles the nmap argument vector from the selected option
// flags. Empty tokens (the top-1000 default) are dropped, selection
// order is preserved and the target goes last, verbatim.
func BuildArgs(flags []string, target string) []string {
	args := make([]string, 0, len(flags)+1)
	for _, flag := range flags {
		if flag == "" {
			continue
		}
		args = append(args, flag)
	}
	return append(args, target)
}
