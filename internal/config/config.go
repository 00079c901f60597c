package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	App struct {
		Port    int    `yaml:"port" json:"port"`
		DataDir string `yaml:"data_dir" json:"data_dir"`
	} `yaml:"app" json:"app"`

	Jobs struct {
		// File is a JSON job list exported by whatever supplies postings.
		File string `yaml:"file" json:"file"`
		// HTMLFile is an optional locally saved job-alert page to import.
		HTMLFile string `yaml:"html_file" json:"html_file"`
	} `yaml:"jobs" json:"jobs"`
}

func Load(path string) (Config, error) {
	var cfg Config
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	err = yaml.Unmarshal(b, &cfg)
	return cfg, err
}
