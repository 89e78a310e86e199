package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/ericogr/novel-tactics/internal/constants"
	"github.com/ericogr/novel-tactics/internal/game"
	"github.com/ericogr/novel-tactics/internal/keys"
)

// Environment overrides. Values set here win over the YAML file.
type Environment struct {
	ConfigPath      string `env:"NOVEL_TACTICS_CONFIG" envDefault:"./novel_tactics.yaml"`
	DatabaseDSN     string `env:"NOVEL_TACTICS_DB"`
	ListenAddr      string `env:"NOVEL_TACTICS_ADDR"`
	NarrativeSecret string `env:"NOVEL_TACTICS_NARRATIVE_SECRET"`
	WorkerID        string `env:"NOVEL_TACTICS_WORKER_ID"`
	LogLevel        string `env:"NOVEL_TACTICS_LOG_LEVEL"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

type presetEntry struct {
	Name             string `yaml:"name"`
	game.InitRequest `yaml:",inline"`
}

type rawConfig struct {
	Server *struct {
		Address string `yaml:"address"`
	} `yaml:"server"`
	Database string `yaml:"database"`
	Pacing   *struct {
		EnemyTurnDelay *time.Duration `yaml:"enemy_turn_delay"`
		ScanInterval   time.Duration  `yaml:"scan_interval"`
		ClaimLease     time.Duration  `yaml:"claim_lease"`
		BatchSize      int            `yaml:"batch_size"`
	} `yaml:"pacing"`
	Rules        *game.Rules   `yaml:"rules"`
	SummaryLines *int          `yaml:"summary_lines"`
	LogLevel     string        `yaml:"log_level"`
	Presets      []presetEntry `yaml:"presets"`
}

// Pacing controls how enemy turns are scheduled.
type Pacing struct {
	// EnemyTurnDelay is the pause before an enemy token acts.
	EnemyTurnDelay time.Duration
	// ScanInterval is how often the pacer looks for due enemy turns.
	ScanInterval time.Duration
	// ClaimLease bounds how long a worker owns a claimed encounter.
	ClaimLease time.Duration
	BatchSize  int
}

// Preset is a named initialization request seeded into storage.
type Preset struct {
	Key     string
	Name    string
	Request game.InitRequest
}

// LoadedConfig is the effective configuration after the file and the
// environment have been merged.
type LoadedConfig struct {
	ServerAddress   string
	DatabaseDSN     string
	NarrativeSecret string
	WorkerID        string
	LogLevel        string
	Pacing          Pacing
	Rules           game.Rules
	SummaryLines    int
	Presets         []Preset
}

func defaults() *LoadedConfig {
	return &LoadedConfig{
		ServerAddress: constants.DefaultListenAddr,
		DatabaseDSN:   constants.DefaultDatabaseDSN,
		LogLevel:      "info",
		Pacing: Pacing{
			EnemyTurnDelay: 800 * time.Millisecond,
			ScanInterval:   250 * time.Millisecond,
			ClaimLease:     5 * time.Second,
			BatchSize:      16,
		},
		Rules:        game.DefaultRules(),
		SummaryLines: constants.DefaultSummaryLines,
	}
}

// Load reads the environment, then the YAML file it points to, and applies
// the environment overrides on top. A missing file at the default path is
// not an error; a missing file named explicitly is.
func Load() (*LoadedConfig, error) {
	var e Environment
	if err := ParseEnv(&e); err != nil {
		return nil, err
	}
	cfg, err := LoadConfig(e.ConfigPath)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) || e.ConfigPath != constants.DefaultConfigPath {
			return nil, err
		}
		cfg = defaults()
	}
	cfg.applyEnv(e)
	return cfg, nil
}

func (c *LoadedConfig) applyEnv(e Environment) {
	if e.DatabaseDSN != "" {
		c.DatabaseDSN = e.DatabaseDSN
	}
	if e.ListenAddr != "" {
		c.ServerAddress = e.ListenAddr
	}
	if e.LogLevel != "" {
		c.LogLevel = e.LogLevel
	}
	c.NarrativeSecret = e.NarrativeSecret
	c.WorkerID = e.WorkerID
}

// LoadConfig reads the YAML configuration file at path. Every key is
// optional; omitted keys keep their defaults.
func LoadConfig(path string) (*LoadedConfig, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	var rc rawConfig
	if err := yaml.Unmarshal(b, &rc); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	cfg := defaults()
	if rc.Server != nil && rc.Server.Address != "" {
		cfg.ServerAddress = rc.Server.Address
	}
	if rc.Database != "" {
		cfg.DatabaseDSN = rc.Database
	}
	if rc.LogLevel != "" {
		cfg.LogLevel = strings.ToLower(strings.TrimSpace(rc.LogLevel))
	}
	if rc.Pacing != nil {
		if rc.Pacing.EnemyTurnDelay != nil {
			cfg.Pacing.EnemyTurnDelay = *rc.Pacing.EnemyTurnDelay
		}
		if rc.Pacing.ScanInterval != 0 {
			cfg.Pacing.ScanInterval = rc.Pacing.ScanInterval
		}
		if rc.Pacing.ClaimLease != 0 {
			cfg.Pacing.ClaimLease = rc.Pacing.ClaimLease
		}
		if rc.Pacing.BatchSize != 0 {
			cfg.Pacing.BatchSize = rc.Pacing.BatchSize
		}
	}
	if rc.Rules != nil {
		cfg.Rules = *rc.Rules
	}
	if rc.SummaryLines != nil {
		cfg.SummaryLines = *rc.SummaryLines
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config file %s: %w", path, err)
	}

	// Cross-entry validation: preset names must be present, map to unique
	// keys and describe an encounter that can actually be built.
	seen := make(map[string]string, len(rc.Presets))
	for i, p := range rc.Presets {
		name := strings.TrimSpace(p.Name)
		if name == "" {
			return nil, fmt.Errorf("config file %s: preset #%d missing 'name'", path, i)
		}
		key := keys.PresetKeyFromName(name)
		if key == "" {
			return nil, fmt.Errorf("config file %s: preset '%s' has no usable characters for a key", path, name)
		}
		if prev, exists := seen[key]; exists {
			return nil, fmt.Errorf("config file %s: presets '%s' and '%s' share key '%s'", path, prev, name, key)
		}
		seen[key] = name
		if _, err := game.NewEncounter(p.InitRequest, cfg.Rules); err != nil {
			return nil, fmt.Errorf("config file %s: preset '%s': %w", path, name, err)
		}
		cfg.Presets = append(cfg.Presets, Preset{Key: key, Name: name, Request: p.InitRequest})
	}
	return cfg, nil
}

func (c *LoadedConfig) validate() error {
	switch {
	case c.Pacing.EnemyTurnDelay < 0:
		return errors.New("pacing.enemy_turn_delay must not be negative")
	case c.Pacing.ScanInterval <= 0:
		return errors.New("pacing.scan_interval must be positive")
	case c.Pacing.ClaimLease <= 0:
		return errors.New("pacing.claim_lease must be positive")
	case c.Pacing.BatchSize <= 0:
		return errors.New("pacing.batch_size must be positive")
	case c.Rules.PlayerMoveRange < 0 || c.Rules.PlayerAttackRange < 0:
		return errors.New("rules ranges must not be negative")
	case c.SummaryLines < 0:
		return errors.New("summary_lines must not be negative")
	}
	return nil
}
