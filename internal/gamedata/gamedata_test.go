package gamedata

import (
	"math/rand"
	"strings"
	"testing"
	"testing/fstest"
)

func TestLoadCatalog(t *testing.T) {
	catalog, err := LoadCatalog()
	if err != nil {
		t.Fatalf("Failed to load catalog: %v", err)
	}

	if catalog.Enemies.Count() != 6 {
		t.Errorf("Expected 6 enemies, got %d", catalog.Enemies.Count())
	}
	if catalog.Spells.Count() == 0 {
		t.Error("Expected spells to be loaded")
	}
	if catalog.Items.Count() == 0 {
		t.Error("Expected items to be loaded")
	}

	for _, id := range []string{"warrior", "thief", "mage", "cleric"} {
		if catalog.Classes.GetByID(id) == nil {
			t.Errorf("Expected class %q not found", id)
		}
	}
}

func TestSpellDefinitions(t *testing.T) {
	catalog := MustLoadCatalog()

	tests := []struct {
		id      string
		effect  Effect
		target  TargetShape
		ailment Ailment
	}{
		{"fire", EffectDamage, TargetSingleEnemy, AilmentNone},
		{"thunder", EffectDamage, TargetAllEnemies, AilmentNone},
		{"heal", EffectHeal, TargetSingleAlly, AilmentNone},
		{"heal_all", EffectHeal, TargetAllAllies, AilmentNone},
		{"power_up", EffectAttackBuff, TargetSingleAlly, AilmentNone},
		{"protect", EffectDefenseBuff, TargetSingleAlly, AilmentNone},
		{"drain", EffectMPDrain, TargetSingleEnemy, AilmentNone},
		{"sleep", EffectAilment, TargetSingleEnemy, AilmentSleep},
		{"poison", EffectAilment, TargetSingleEnemy, AilmentPoison},
	}

	for _, tt := range tests {
		spell := catalog.Spells.GetByID(tt.id)
		if spell == nil {
			t.Errorf("spell %q not found", tt.id)
			continue
		}
		if spell.Effect != tt.effect {
			t.Errorf("%s.Effect = %q, want %q", tt.id, spell.Effect, tt.effect)
		}
		if spell.Target != tt.target {
			t.Errorf("%s.Target = %q, want %q", tt.id, spell.Target, tt.target)
		}
		if spell.Ailment != tt.ailment {
			t.Errorf("%s.Ailment = %q, want %q", tt.id, spell.Ailment, tt.ailment)
		}
	}
}

func TestTargetShape(t *testing.T) {
	tests := []struct {
		shape     TargetShape
		offensive bool
		area      bool
	}{
		{TargetSingleEnemy, true, false},
		{TargetAllEnemies, true, true},
		{TargetSingleAlly, false, false},
		{TargetAllAllies, false, true},
	}

	for _, tt := range tests {
		if got := tt.shape.IsOffensive(); got != tt.offensive {
			t.Errorf("%s.IsOffensive() = %v, want %v", tt.shape, got, tt.offensive)
		}
		if got := tt.shape.IsArea(); got != tt.area {
			t.Errorf("%s.IsArea() = %v, want %v", tt.shape, got, tt.area)
		}
	}
	if TargetShape("self").Valid() {
		t.Error("unknown shape should not be valid")
	}
}

func TestClassSpellsMonotonic(t *testing.T) {
	catalog := MustLoadCatalog()

	for _, class := range catalog.Classes.All() {
		prev := map[string]bool{}
		for level := 1; level <= 20; level++ {
			known := map[string]bool{}
			for _, id := range class.SpellsAt(level) {
				known[id] = true
			}
			for id := range prev {
				if !known[id] {
					t.Errorf("%s forgot %s at level %d", class.ID, id, level)
				}
			}
			prev = known
		}
	}
}

func TestClassStatsAt(t *testing.T) {
	catalog := MustLoadCatalog()
	mage := catalog.Classes.GetByID("mage")

	lv1 := mage.StatsAt(1)
	if lv1.HP != mage.HP || lv1.MP != mage.MP {
		t.Errorf("StatsAt(1) = %+v, want base stats", lv1)
	}

	lv3 := mage.StatsAt(3)
	if lv3.MP != mage.MP+2*mage.Growth.MP {
		t.Errorf("StatsAt(3).MP = %d, want %d", lv3.MP, mage.MP+2*mage.Growth.MP)
	}

	if got := mage.StatsAt(0); got != lv1 {
		t.Errorf("StatsAt(0) = %+v, want level 1 stats", got)
	}

	spells := mage.SpellsAt(1)
	if len(spells) != 1 || spells[0] != "fire" {
		t.Errorf("SpellsAt(1) = %v, want [fire]", spells)
	}
}

func TestEnemyRegistry(t *testing.T) {
	registry := MustLoadCatalog().Enemies

	goblin := registry.GetByID("goblin")
	if goblin == nil {
		t.Fatal("Goblin not found by ID")
	}
	if goblin.Name != "Goblin" {
		t.Errorf("Expected name 'Goblin', got %q", goblin.Name)
	}

	// Weighted spawning is deterministic with the same seed
	rng1 := rand.New(rand.NewSource(12345))
	rng2 := rand.New(rand.NewSource(12345))

	for i := 0; i < 10; i++ {
		a := registry.SpawnRandom(rng1, 3).ID
		b := registry.SpawnRandom(rng2, 3).ID
		if a != b {
			t.Errorf("Spawn %d mismatch: %s != %s", i, a, b)
		}
	}
}

func TestEnemyRegistrySpawnRespectsTier(t *testing.T) {
	registry := MustLoadCatalog().Enemies
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 200; i++ {
		def := registry.SpawnRandom(rng, 1)
		if def == nil {
			t.Fatal("SpawnRandom returned nil for tier 1")
		}
		if def.MinTier > 1 {
			t.Fatalf("SpawnRandom(tier 1) returned %s with minTier %d", def.ID, def.MinTier)
		}
	}

	if def := registry.SpawnRandom(rng, 0); def != nil {
		t.Errorf("SpawnRandom(tier 0) = %s, want nil", def.ID)
	}
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		input string
		valid bool
	}{
		{"#FF0000", true},
		{"FF0000", true},
		{"#00FF00", true},
		{"#F00", true},
		{"#FFFFFF", true},
		{"#000000", true},
		{"invalid", false},
		{"#FFFF", false},
		{"#GG0000", false},
	}

	for _, tt := range tests {
		_, err := ParseHexColor(tt.input)
		if tt.valid && err != nil {
			t.Errorf("ParseHexColor(%q) should be valid, got error: %v", tt.input, err)
		}
		if !tt.valid && err == nil {
			t.Errorf("ParseHexColor(%q) should be invalid, got no error", tt.input)
		}
	}

	short, _ := ParseHexColor("#F00")
	long, _ := ParseHexColor("#FF0000")
	if short != long {
		t.Errorf("shorthand color = %v, want %v", short, long)
	}
}

func TestEnemyDefMethods(t *testing.T) {
	def := EnemyDef{
		ID:    "test",
		Name:  "Test Enemy",
		Glyph: "T",
		Color: "#FF0000",
	}

	if def.GlyphRune() != 'T' {
		t.Errorf("Expected glyph 'T', got %c", def.GlyphRune())
	}
	if def.TCellColor() == 0 {
		t.Error("TCellColor returned zero color")
	}
	if def.HasSpells() {
		t.Error("HasSpells() = true for empty spell table")
	}
}

func TestValidateReportsDanglingReferences(t *testing.T) {
	fsys := fstest.MapFS{
		"spells.json": {Data: []byte(`{"spells": [
			{"id": "fire", "name": "Fire", "mpCost": 3, "power": 12, "target": "single_enemy", "effect": "damage"},
			{"id": "hex", "name": "Hex", "mpCost": 3, "power": 50, "target": "single_enemy", "effect": "ailment"}
		]}`)},
		"items.json":   {Data: []byte(`{"items": []}`)},
		"classes.json": {Data: []byte(`{"classes": [{"id": "mage", "name": "Mage", "learnset": [{"level": 1, "spell": "meteor"}]}]}`)},
		"enemies.json": {Data: []byte(`{"enemies": [{"id": "imp", "name": "Imp", "spells": ["fire", "curse"], "spawnWeight": 1, "minTier": 1}]}`)},
	}

	_, err := LoadCatalogFrom(fsys)
	if err == nil {
		t.Fatal("expected validation error")
	}
	for _, want := range []string{"hex", "meteor", "curse"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q does not mention %s", err, want)
		}
	}
}

func TestLoadCatalogMissingFile(t *testing.T) {
	_, err := LoadCatalogFrom(fstest.MapFS{})
	if err == nil {
		t.Fatal("expected error for missing tables")
	}
	if !strings.Contains(err.Error(), "spells.json") {
		t.Errorf("error %q should name the missing file", err)
	}
}
