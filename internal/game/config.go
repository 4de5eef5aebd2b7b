package game

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/samdwyer/cavebattle/internal/entity"
	"github.com/samdwyer/cavebattle/internal/gamedata"
)

// Environment variables that override the config file.
const (
	EnvSeed     = "CAVEBATTLE_SEED"
	EnvLogLevel = "CAVEBATTLE_LOG_LEVEL"
)

// Config holds encounter and runtime options.
type Config struct {
	// Seed for random number generation. Used for reproducible encounters.
	// A seed of 0 means a random seed will be generated.
	Seed       int64          `yaml:"seed"`
	Tier       int            `yaml:"tier"`
	GroupSize  int            `yaml:"group_size"`
	MaxTurns   int            `yaml:"max_turns"`
	LogLevel   string         `yaml:"log_level"`
	LogPath    string         `yaml:"log_path"`    // Empty logs to stderr
	ReportPath string         `yaml:"report_path"` // Empty skips the PDF report
	TUI        bool           `yaml:"tui"`
	Party      []MemberConfig `yaml:"party"`

	// TraceSampleRatio is the fraction of battles traced when an OTLP
	// endpoint is configured. Zero traces every battle.
	TraceSampleRatio float64 `yaml:"trace_sample_ratio"`
}

// MemberConfig describes one party member to create.
type MemberConfig struct {
	Name   string         `yaml:"name"`
	Class  string         `yaml:"class"`
	Level  int            `yaml:"level"`
	Weapon string         `yaml:"weapon"`
	Armor  string         `yaml:"armor"`
	Items  map[string]int `yaml:"items"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() Config {
	return Config{
		Tier:      1,
		GroupSize: 3,
		MaxTurns:  50,
		LogLevel:  "info",
		Party: []MemberConfig{
			{Name: "Aria", Class: "warrior", Level: 3, Weapon: "short_sword", Armor: "leather_armor", Items: map[string]int{"potion": 2}},
			{Name: "Tess", Class: "thief", Level: 3, Weapon: "short_sword", Items: map[string]int{"potion": 1}},
			{Name: "Mira", Class: "mage", Level: 4, Weapon: "oak_staff"},
			{Name: "Cleo", Class: "cleric", Level: 4, Armor: "leather_armor", Items: map[string]int{"mega_potion": 1}},
		},
	}
}

// LoadConfig reads a YAML config file on top of DefaultConfig. An empty path
// returns the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	b, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return Config{}, fmt.Errorf("reading %s: %w", path, err)
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing %s: %w", path, err)
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// applyDefaults fills fields a config file set to their zero value.
func (c *Config) applyDefaults() {
	def := DefaultConfig()
	if c.Tier == 0 {
		c.Tier = def.Tier
	}
	if c.GroupSize == 0 {
		c.GroupSize = def.GroupSize
	}
	if c.MaxTurns == 0 {
		c.MaxTurns = def.MaxTurns
	}
	if c.LogLevel == "" {
		c.LogLevel = def.LogLevel
	}
	if len(c.Party) == 0 {
		c.Party = def.Party
	}
	for i := range c.Party {
		c.Party[i].Level = max(c.Party[i].Level, 1)
	}
}

// ApplyEnv overrides the seed and log level from the environment.
func (c *Config) ApplyEnv() error {
	if v := os.Getenv(EnvSeed); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvSeed, err)
		}
		c.Seed = seed
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.LogLevel = v
	}
	return nil
}

// Validate reports every out-of-range field.
func (c Config) Validate() error {
	var errs []error
	if c.Tier < 1 {
		errs = append(errs, fmt.Errorf("tier %d: must be at least 1", c.Tier))
	}
	if c.GroupSize < 1 || c.GroupSize > 6 {
		errs = append(errs, fmt.Errorf("group_size %d: must be between 1 and 6", c.GroupSize))
	}
	if c.MaxTurns < 1 {
		errs = append(errs, fmt.Errorf("max_turns %d: must be at least 1", c.MaxTurns))
	}
	if c.TraceSampleRatio < 0 || c.TraceSampleRatio > 1 {
		errs = append(errs, fmt.Errorf("trace_sample_ratio %g: must be between 0 and 1", c.TraceSampleRatio))
	}
	if len(c.Party) > 4 {
		errs = append(errs, fmt.Errorf("party has %d members: at most 4", len(c.Party)))
	}
	for i, m := range c.Party {
		if m.Name == "" {
			errs = append(errs, fmt.Errorf("party[%d]: missing name", i))
		}
	}
	return errors.Join(errs...)
}

// BuildParty creates the configured party from catalog definitions.
func (c Config) BuildParty(catalog *gamedata.Catalog) (*entity.Party, error) {
	members := make([]*entity.Member, 0, len(c.Party))
	for _, mc := range c.Party {
		class := catalog.Classes.GetByID(mc.Class)
		if class == nil {
			return nil, fmt.Errorf("member %s: unknown class %q", mc.Name, mc.Class)
		}
		m := entity.NewMember(mc.Name, class, mc.Level)

		var err error
		if m.Equipment.Weapon, err = equipment(catalog, mc.Weapon); err != nil {
			return nil, fmt.Errorf("member %s: %w", mc.Name, err)
		}
		if m.Equipment.Armor, err = equipment(catalog, mc.Armor); err != nil {
			return nil, fmt.Errorf("member %s: %w", mc.Name, err)
		}
		for id, n := range mc.Items {
			if catalog.Items.GetByID(id) == nil {
				return nil, fmt.Errorf("member %s: unknown item %q", mc.Name, id)
			}
			m.Inventory.Add(id, n)
		}
		members = append(members, m)
	}
	return entity.NewParty(members...), nil
}

func equipment(catalog *gamedata.Catalog, id string) (*gamedata.ItemDef, error) {
	if id == "" {
		return nil, nil
	}
	item := catalog.Items.GetByID(id)
	if item == nil {
		return nil, fmt.Errorf("unknown item %q", id)
	}
	if item.Kind != gamedata.ItemEquipment {
		return nil, fmt.Errorf("item %q is not equipment", id)
	}
	return item, nil
}
