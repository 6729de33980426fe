package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// fileConfig mirrors the solver flags that make sense to pin per project.
// Zero values mean "not set": a field only overrides the flag default when
// it is non-zero and the flag was not given on the command line, so the
// precedence is flags over file over built-in defaults.
type fileConfig struct {
	Ants        int     `yaml:"ants"`
	Alpha       float64 `yaml:"alpha"`
	Beta        float64 `yaml:"beta"`
	Evaporation float64 `yaml:"evaporation"`
	Iterations  int     `yaml:"iterations"`
	Cutoff      float64 `yaml:"cutoff"`
	Optimal     float64 `yaml:"optimal"`
	Seed        int64   `yaml:"seed"`
	Workers     int     `yaml:"workers"`
}

// loadConfig reads a YAML solver config. Decoding is strict so a typoed
// key fails loudly instead of being silently dropped; an empty file is a
// valid empty config.
func loadConfig(path string) (*fileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg fileConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err = dec.Decode(&cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return &cfg, nil
		}
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &cfg, nil
}
