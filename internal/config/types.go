package config

import (
	"fmt"
	"time"
)

// EnvBackupKeyword names the variable that overrides BackupKeyword.
const EnvBackupKeyword = "history_archive_keyword"

type Config struct {
	BackupKeyword string `mapstructure:"backup_keyword" yaml:"backup_keyword" json:"backup_keyword,omitempty"`
	MissingIcon   string `mapstructure:"missing_icon" yaml:"missing_icon" json:"missing_icon,omitempty"`
	Timezone      string `mapstructure:"timezone" yaml:"timezone" json:"timezone,omitempty"`
	LogFile       string `mapstructure:"log_file" yaml:"log_file" json:"log_file,omitempty"`
}

// Location resolves Timezone; an empty value means local time.
func (c Config) Location() (*time.Location, error) {
	if c.Timezone == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}
