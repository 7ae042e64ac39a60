package runner

import (
	"fmt"
	"runtime"

	"github.com/pkg/errors"
	"github.com/tj/go-update"
	"github.com/tj/go-update/progress"
	githubUpdateStore "github.com/tj/go-update/stores/github"
	"github.com/zan8in/scanflow/pkg/config"
)

func updateManager() *update.Manager {
	var command string
	switch runtime.GOOS {
	case "windows":
		command = "scanflow.exe"
	default:
		command = "scanflow"
	}
	return &update.Manager{
		Command: command,
		Store: &githubUpdateStore.Store{
			Owner:   "zan8in",
			Repo:    "scanflow",
			Version: config.Version,
		},
	}
}

// LatestVersion asks the release store for the newest published tag,
// for the outdated marker in the banner.
func LatestVersion() (string, error) {
	releases, err := updateManager().LatestReleases()
	if err != nil {
		return "", err
	}
	if len(releases) == 0 {
		return config.Version, nil
	}
	return releases[0].Version, nil
}

func UpdateVersionToLatest() error {
	m := updateManager()
	releases, err := m.LatestReleases()
	if err != nil {
		return errors.Wrap(err, "could not fetch latest release")
	}
	if len(releases) == 0 {
		fmt.Println("No new updates found for scanflow engine!")
		config.ShowUpgradeBanner(config.Version)
		return nil
	}

	latest := releases[0]
	var currentOS string
	switch runtime.GOOS {
	case "darwin":
		currentOS = "macOS"
	default:
		currentOS = runtime.GOOS
	}
	final := latest.FindZip(currentOS, runtime.GOARCH)
	if final == nil {
		return fmt.Errorf("no compatible binary found for %s/%s", currentOS, runtime.GOARCH)
	}
	tarball, err := final.DownloadProxy(progress.Reader)
	if err != nil {
		return errors.Wrap(err, "could not download latest release")
	}
	if err := m.Install(tarball); err != nil {
		return errors.Wrap(err, "could not install latest release")
	}
	fmt.Printf("Successfully updated to scanflow %s\n", latest.Version)

	return nil
}
