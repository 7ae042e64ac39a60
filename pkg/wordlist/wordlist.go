// Package wordlist resolves and maintains the wordlists content
// discovery feeds to gobuster.
package wordlist

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/cavaliergopher/grab/v3"
	"github.com/remeh/sizedwaitgroup"
	"github.com/zan8in/fileutil"
	"github.com/zan8in/gologger"
	"github.com/zan8in/scanflow/pkg/config"
)

const fetchConcurrency = 3

// Dir returns the directory fetched wordlists are stored in, creating
// it if missing.
func Dir() (string, error) {
	configDir, err := config.Dir()
	if err != nil {
		return "", err
	}

	dir := filepath.Join(configDir, "wordlists")
	_ = os.MkdirAll(dir, 0755)

	return dir, nil
}

// FetchAll downloads every configured wordlist source into the local
// wordlist directory. A failed download keeps whatever was there
// before.
func FetchAll(sources []string) error {
	dir, err := Dir()
	if err != nil {
		return err
	}

	wg := sizedwaitgroup.New(fetchConcurrency)
	for _, source := range sources {
		source = strings.TrimSpace(source)
		if source == "" {
			continue
		}
		wg.Add()
		go func(url string) {
			defer wg.Done()

			resp, err := grab.Get(dir, url)
			if err != nil {
				gologger.Error().Msgf("Failed to fetch wordlist %s: %v", url, err)
				return
			}
			gologger.Info().Msgf("Fetched wordlist: %s", resp.Filename)
		}(source)
	}
	wg.Wait()

	return nil
}

// Resolve picks the wordlist offered as the default answer to the
// per-port prompt: the -w flag wins, then the configured default, then
// the first fetched wordlist on disk. An empty result means there is
// nothing to offer and the prompt requires manual entry.
func Resolve(flagValue string, cfg *config.Config) string {
	if flagValue != "" {
		return flagValue
	}

	if cfg != nil && fileutil.FileExists(cfg.Wordlist.Default) {
		return cfg.Wordlist.Default
	}

	dir, err := Dir()
	if err != nil {
		return ""
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return ""
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		return filepath.Join(dir, entry.Name())
	}

	return ""
}
