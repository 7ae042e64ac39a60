package config

import (
	"fmt"

	"github.com/zan8in/gologger"
	"github.com/zan8in/scanflow/pkg/log"
	"github.com/zan8in/scanflow/pkg/utils"
)

const Version = "1.0.2"

func InitBanner() {
	fmt.Printf("\r\n|\tS C A N F L O W\t|")
}

func ShowBanner(latestVersion string) {
	InitBanner()
	fmt.Printf("\r\t\t\t\t%s\t|\t%s\n\n", EngineV(latestVersion), "port scan, then content discovery")
}

func ShowVersion() {
	InitBanner()
	fmt.Printf("\r\t\t\t\t%s\n\n", Version)
}

func EngineV(latestVersion string) string {
	if utils.Compare(latestVersion, ">", Version) {
		return Version + " (" + log.LogColor.Red("outdated") + ")" + " > " + log.LogColor.Red(latestVersion)
	}
	return Version
}

func ShowUpgradeBanner(latestVersion string) {
	messageStr := ""
	if utils.Compare(latestVersion, ">", Version) {
		messageStr = " (" + log.LogColor.Red(latestVersion) + ")"
	} else {
		messageStr = " (" + log.LogColor.Green("latest") + ")"
	}
	gologger.Print().Msgf("Using scanflow Engine %s%s", Version, messageStr)
}
