package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

var current Config

// Get returns the config produced by the last LoadDefaultsAndFiles or
// ApplyEnv call.
func Get() Config { return current }

// LoadDefaultsAndFiles parses defaultsYAML and overlays every YAML file in
// lexical order. Non-empty values in later files win.
func LoadDefaultsAndFiles(defaultsYAML []byte, files []string) (Config, error) {
	var base Config
	if len(defaultsYAML) > 0 {
		if err := decodeStrict(defaultsYAML, &base); err != nil {
			return Config{}, fmt.Errorf("defaults: %w", err)
		}
	}
	merged := base
	for _, f := range sortedYAML(files) {
		b, err := os.ReadFile(f)
		if err != nil {
			return Config{}, err
		}
		var part Config
		if err := decodeStrict(b, &part); err != nil {
			return Config{}, fmt.Errorf("%s: %w", f, err)
		}
		merged = mergeConfig(merged, part)
	}
	current = merged
	return merged, nil
}

// ApplyEnv overlays environment overrides. A variable that is set wins even
// when empty.
func ApplyEnv(cfg Config, lookup func(string) (string, bool)) Config {
	if v, ok := lookup(EnvBackupKeyword); ok {
		cfg.BackupKeyword = v
	}
	current = cfg
	return cfg
}

func decodeStrict(b []byte, out *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(out); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

func sortedYAML(files []string) []string {
	out := make([]string, 0, len(files))
	for _, f := range files {
		lf := strings.ToLower(f)
		if strings.HasSuffix(lf, ".yaml") || strings.HasSuffix(lf, ".yml") {
			out = append(out, f)
		}
	}
	sort.Strings(out)
	return out
}

func mergeConfig(base, overlay Config) Config {
	out := base
	if overlay.BackupKeyword != "" {
		out.BackupKeyword = overlay.BackupKeyword
	}
	if overlay.MissingIcon != "" {
		out.MissingIcon = overlay.MissingIcon
	}
	if overlay.Timezone != "" {
		out.Timezone = overlay.Timezone
	}
	if overlay.LogFile != "" {
		out.LogFile = overlay.LogFile
	}
	return out
}
