package main

import (
	"fmt"
	"slices"
	"strings"

	"github.com/caarlos0/env/v11"
	"golang.org/x/text/language"
)

// Config controls the walkthrough. Every field comes from the environment.
type Config struct {
	// Lang is the BCP 47 tag used to format numbers in the output.
	Lang string `env:"LIST_DEMO_LANG" envDefault:"en"`

	// Verbose logs every backing-array reallocation to stderr.
	Verbose bool `env:"LIST_DEMO_VERBOSE" envDefault:"false"`

	// Sections restricts the run to the named sections. Empty runs all.
	Sections []string `env:"LIST_DEMO_SECTIONS" envSeparator:","`
}

// loadConfig reads Config from the environment and validates it.
func loadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	cfg = cfg.withDefaults()
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) withDefaults() Config {
	out := c
	if strings.TrimSpace(out.Lang) == "" {
		out.Lang = "en"
	}
	var names []string
	for _, s := range out.Sections {
		if s = strings.ToLower(strings.TrimSpace(s)); s != "" {
			names = append(names, s)
		}
	}
	out.Sections = names
	return out
}

func (c Config) validate() error {
	if _, err := language.Parse(c.Lang); err != nil {
		return fmt.Errorf("LIST_DEMO_LANG %q: %w", c.Lang, err)
	}
	for _, name := range c.Sections {
		if !slices.ContainsFunc(sections, func(s section) bool { return s.name == name }) {
			return fmt.Errorf("LIST_DEMO_SECTIONS: unknown section %q", name)
		}
	}
	return nil
}

// tag returns the parsed language, falling back to English.
func (c Config) tag() language.Tag {
	t, err := language.Parse(c.Lang)
	if err != nil {
		return language.English
	}
	return t
}

func (c Config) enabled(name string) bool {
	return len(c.Sections) == 0 || slices.Contains(c.Sections, name)
}
