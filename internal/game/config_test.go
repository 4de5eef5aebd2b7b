package game

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/samdwyer/cavebattle/internal/gamedata"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "battle.yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig(\"\") error = %v", err)
	}
	if cfg.Tier != 1 || cfg.GroupSize != 3 || cfg.MaxTurns != 50 {
		t.Errorf("defaults = tier %d, group %d, turns %d", cfg.Tier, cfg.GroupSize, cfg.MaxTurns)
	}
	if len(cfg.Party) != 4 {
		t.Errorf("default party size = %d, want 4", len(cfg.Party))
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestLoadConfigFile(t *testing.T) {
	path := writeConfig(t, `seed: 42
tier: 2
group_size: 4
log_level: debug
party:
  - name: Bram
    class: warrior
    level: 5
    weapon: iron_sword
    items:
      potion: 3
  - name: Ivy
    class: mage
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.Seed != 42 || cfg.Tier != 2 || cfg.GroupSize != 4 {
		t.Errorf("cfg = seed %d tier %d group %d, want 42 2 4", cfg.Seed, cfg.Tier, cfg.GroupSize)
	}
	if cfg.MaxTurns != 50 {
		t.Errorf("MaxTurns = %d, want default 50", cfg.MaxTurns)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want debug", cfg.LogLevel)
	}
	if len(cfg.Party) != 2 {
		t.Fatalf("party size = %d, want 2", len(cfg.Party))
	}
	if cfg.Party[0].Items["potion"] != 3 {
		t.Errorf("Bram potions = %d, want 3", cfg.Party[0].Items["potion"])
	}
	if cfg.Party[1].Level != 1 {
		t.Errorf("Ivy level = %d, want 1", cfg.Party[1].Level)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"malformed", "tier: [1, 2", "parsing"},
		{"bad group", "group_size: 9", "group_size 9"},
		{"negative tier", "tier: -1", "tier -1"},
		{"nameless member", "party:\n  - class: mage", "missing name"},
		{"sample ratio", "trace_sample_ratio: 1.5", "trace_sample_ratio 1.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, tt.body))
			if err == nil {
				t.Fatal("LoadConfig() error = nil, want error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error = %q, want it to mention %q", err, tt.want)
			}
		})
	}

	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("LoadConfig(missing) error = nil, want error")
	}
}

func TestApplyEnv(t *testing.T) {
	t.Setenv(EnvSeed, "1234")
	t.Setenv(EnvLogLevel, "warn")

	cfg := DefaultConfig()
	if err := cfg.ApplyEnv(); err != nil {
		t.Fatalf("ApplyEnv() error = %v", err)
	}
	if cfg.Seed != 1234 {
		t.Errorf("Seed = %d, want 1234", cfg.Seed)
	}
	if cfg.LogLevel != "warn" {
		t.Errorf("LogLevel = %q, want warn", cfg.LogLevel)
	}

	t.Setenv(EnvSeed, "soon")
	if err := cfg.ApplyEnv(); err == nil {
		t.Error("ApplyEnv() with a bad seed error = nil, want error")
	}
}

func TestBuildParty(t *testing.T) {
	catalog := gamedata.MustLoadCatalog()

	party, err := DefaultConfig().BuildParty(catalog)
	if err != nil {
		t.Fatalf("BuildParty() error = %v", err)
	}
	if len(party.Members) != 4 {
		t.Fatalf("party size = %d, want 4", len(party.Members))
	}
	aria := party.Members[0]
	if aria.Level != 3 || aria.Class.ID != "warrior" {
		t.Errorf("Aria = level %d %s, want level 3 warrior", aria.Level, aria.Class.ID)
	}
	if aria.Equipment.AttackBonus() != 3 || aria.Equipment.DefenseBonus() != 2 {
		t.Errorf("Aria bonuses = %d/%d, want 3/2", aria.Equipment.AttackBonus(), aria.Equipment.DefenseBonus())
	}
	if aria.Inventory.Count("potion") != 2 {
		t.Errorf("Aria potions = %d, want 2", aria.Inventory.Count("potion"))
	}
}

func TestBuildPartyErrors(t *testing.T) {
	catalog := gamedata.MustLoadCatalog()

	tests := []struct {
		name   string
		member MemberConfig
		want   string
	}{
		{"unknown class", MemberConfig{Name: "X", Class: "bard", Level: 1}, "unknown class"},
		{"unknown weapon", MemberConfig{Name: "X", Class: "warrior", Level: 1, Weapon: "laser"}, "unknown item"},
		{"potion as armor", MemberConfig{Name: "X", Class: "warrior", Level: 1, Armor: "potion"}, "not equipment"},
		{"unknown item", MemberConfig{Name: "X", Class: "warrior", Level: 1, Items: map[string]int{"elixir": 1}}, "unknown item"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Config{Party: []MemberConfig{tt.member}}
			_, err := cfg.BuildParty(catalog)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("BuildParty() error = %v, want it to mention %q", err, tt.want)
			}
		})
	}
}
