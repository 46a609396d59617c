// Package config handles YAML and TOML configuration parsing.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"sitecrew/internal/crew"
	"sitecrew/internal/workflow"
)

var ErrUnsupportedFormat = errors.New("unsupported config format")

// Config is the root configuration structure.
type Config struct {
	Crew      []Member     `yaml:"crew" toml:"crew"`
	Schedule  []Invocation `yaml:"schedule" toml:"schedule"`
	Execution Execution    `yaml:"execution,omitempty" toml:"execution"`
}

// Member describes one actor on the crew.
type Member struct {
	Name     string    `yaml:"name" toml:"name"`
	Kind     crew.Kind `yaml:"kind" toml:"kind"`
	Role     string    `yaml:"role,omitempty" toml:"role"` // generic developers only
	TeamSize int       `yaml:"teamSize,omitempty" toml:"teamSize"`
}

// Invocation runs one workflow bound to one crew member.
type Invocation struct {
	Workflow workflow.Kind `yaml:"workflow" toml:"workflow"`
	Member   string        `yaml:"member" toml:"member"`
}

// Execution controls how the schedule is driven.
type Execution struct {
	Repeat int `yaml:"repeat" toml:"repeat"` // passes per invocation, 0 = once
	Rate   int `yaml:"rate" toml:"rate"`     // invocations per second, 0 = unpaced
}

// Default returns the reference crew and schedule.
func Default() *Config {
	return &Config{
		Crew: []Member{
			{Name: "Bob", Kind: crew.KindManager, TeamSize: 10},
			{Name: "Carl", Kind: crew.KindDeveloper, Role: crew.RoleDeveloper},
			{Name: "John", Kind: crew.KindFrontend},
			{Name: "Jane", Kind: crew.KindBackend},
		},
		Schedule: []Invocation{
			{Workflow: workflow.KindPlan, Member: "Bob"},
			{Workflow: workflow.KindBuild, Member: "Carl"},
			{Workflow: workflow.KindImproveFrontend, Member: "John"},
			{Workflow: workflow.KindImproveBackend, Member: "Jane"},
		},
		Execution: Execution{Repeat: 1},
	}
}

// LoadConfig reads and parses a configuration file. The format follows the
// file extension: .yaml/.yml or .toml.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	case ".toml":
		if _, err := toml.Decode(string(data), &cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w %q", ErrUnsupportedFormat, ext)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}

// Member looks up a crew member by name.
func (c *Config) Member(name string) (Member, bool) {
	for _, m := range c.Crew {
		if m.Name == name {
			return m, true
		}
	}
	return Member{}, false
}

// Validate reports every problem found, joined.
func (c *Config) Validate() error {
	var errs []error

	if len(c.Crew) == 0 {
		errs = append(errs, errors.New("crew is empty"))
	}
	seen := make(map[string]bool, len(c.Crew))
	for i, m := range c.Crew {
		switch {
		case m.Name == "":
			errs = append(errs, fmt.Errorf("crew[%d]: name is required", i))
		case seen[m.Name]:
			errs = append(errs, fmt.Errorf("crew[%d]: duplicate name %q", i, m.Name))
		}
		seen[m.Name] = true
		if !m.Kind.Valid() {
			errs = append(errs, fmt.Errorf("crew[%d]: %w %q", i, crew.ErrUnknownKind, m.Kind))
		}
		if m.TeamSize < 0 {
			errs = append(errs, fmt.Errorf("crew[%d]: teamSize must be >= 0", i))
		}
	}

	for i, inv := range c.Schedule {
		m, ok := c.Member(inv.Member)
		if !ok {
			errs = append(errs, fmt.Errorf("schedule[%d]: unknown member %q", i, inv.Member))
			continue
		}
		if !workflow.Accepts(inv.Workflow, m.Kind) {
			errs = append(errs, fmt.Errorf("schedule[%d]: %q cannot run %q", i, m.Name, inv.Workflow))
		}
	}

	if c.Execution.Repeat < 0 {
		errs = append(errs, errors.New("execution.repeat must be >= 0"))
	}
	if c.Execution.Rate < 0 {
		errs = append(errs, errors.New("execution.rate must be >= 0"))
	}

	return errors.Join(errs...)
}
