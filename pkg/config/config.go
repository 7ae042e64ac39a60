package config

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/zan8in/scanflow/pkg/utils"
	"gopkg.in/yaml.v2"
)

// Config is a .scanflow-config.yaml configuration implementation
type Config struct {
	Tools    Tools    `yaml:"tools"`
	Wordlist Wordlist `yaml:"wordlist"`
	Probe    Probe    `yaml:"probe"`
	Webhook  Webhook  `yaml:"webhook"`
	History  History  `yaml:"history"`
}

type Tools struct {
	Nmap     string `yaml:"nmap"`
	Gobuster string `yaml:"gobuster"`
}

type Wordlist struct {
	Default string   `yaml:"default"`
	Sources []string `yaml:"sources"`
}

type Probe struct {
	Proxy       string `yaml:"proxy"`
	Timeout     int    `yaml:"timeout"`
	Retries     int    `yaml:"retries"`
	Concurrency int    `yaml:"concurrency"`
}

type Webhook struct {
	Wecom    Wecom    `yaml:"wecom"`
	Dingtalk Dingtalk `yaml:"dingtalk"`
}

type Wecom struct {
	Tokens    []string `yaml:"tokens"`
	AtMobiles []string `yaml:"at_mobiles"`
	AtAll     bool     `yaml:"at_all"`
}

type Dingtalk struct {
	Tokens    []string `yaml:"tokens"`
	AtMobiles []string `yaml:"at_mobiles"`
	AtAll     bool     `yaml:"at_all"`
}

type History struct {
	Enabled bool `yaml:"enabled"`
}

const scanflowConfigFilename = ".scanflow-config.yaml"

// Create and initialize .scanflow-config.yaml configuration info
func New() (*Config, error) {
	if isExistConfigFile() != nil {
		c := Config{}

		tools := c.Tools
		tools.Nmap = "nmap"
		tools.Gobuster = "gobuster"
		c.Tools = tools

		wordlist := c.Wordlist
		wordlist.Default = ""
		wordlist.Sources = []string{
			"https://raw.githubusercontent.com/danielmiessler/SecLists/master/Discovery/Web-Content/common.txt",
			"https://raw.githubusercontent.com/danielmiessler/SecLists/master/Discovery/Web-Content/quickhits.txt",
		}
		c.Wordlist = wordlist

		probe := c.Probe
		probe.Proxy = ""
		probe.Timeout = DefaultTimeout
		probe.Retries = DefaultRetries
		probe.Concurrency = DefaultConcurrency
		c.Probe = probe

		webhook := c.Webhook
		webhook.Wecom.Tokens = []string{""}
		webhook.Wecom.AtMobiles = []string{""}
		webhook.Wecom.AtAll = false
		webhook.Dingtalk.Tokens = []string{""}
		webhook.Dingtalk.AtMobiles = []string{""}
		webhook.Dingtalk.AtAll = false
		c.Webhook = webhook

		history := c.History
		history.Enabled = true
		c.History = history

		WriteConfiguration(&c)
	}
	return ReadConfiguration()
}

func isExistConfigFile() error {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return errors.Wrap(err, "could not get home directory")
	}

	configFile := filepath.Join(homeDir, ".config", "scanflow", scanflowConfigFilename)
	if utils.Exists(configFile) {
		return nil
	}

	return errors.New("could not get config file")
}

func (c *Config) GetConfigPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	return filepath.Join(homeDir, ".config", "scanflow", scanflowConfigFilename)
}

// Dir returns the scanflow home directory, creating it if missing.
// The configuration file, the scan history database and fetched
// wordlists all live here.
func Dir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(err, "could not get home directory")
	}

	configDir := filepath.Join(homeDir, ".config", "scanflow")
	_ = os.MkdirAll(configDir, 0755)

	return configDir, nil
}

func getConfigFile() (string, error) {
	configDir, err := Dir()
	if err != nil {
		return "", err
	}

	return filepath.Join(configDir, scanflowConfigFilename), nil
}

// ReadConfiguration reads the scanflow configuration file from disk.
func ReadConfiguration() (*Config, error) {
	scanflowConfigFile, err := getConfigFile()
	if err != nil {
		return nil, err
	}

	file, err := os.Open(scanflowConfigFile)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	config := &Config{}
	if err := yaml.NewDecoder(file).Decode(config); err != nil {
		return nil, err
	}
	return config, nil
}

// WriteConfiguration writes the updated scanflow configuration to disk
func WriteConfiguration(config *Config) error {
	scanflowConfigYAML, err := yaml.Marshal(&config)
	if err != nil {
		return err
	}

	scanflowConfigFile, err := getConfigFile()
	if err != nil {
		return err
	}

	file, err := os.OpenFile(scanflowConfigFile, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return err
	}
	defer file.Close()

	if _, err := file.Write(scanflowConfigYAML); err != nil {
		return err
	}
	return nil
}
