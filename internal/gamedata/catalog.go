package gamedata

import (
	"errors"
	"fmt"
	"io/fs"
)

// Catalog bundles every static table the combat resolver reads.
type Catalog struct {
	Spells  *SpellRegistry
	Items   *ItemRegistry
	Classes *ClassRegistry
	Enemies *EnemyRegistry
}

// LoadCatalog loads and validates the embedded catalog tables.
func LoadCatalog() (*Catalog, error) {
	return LoadCatalogFrom(dataFS)
}

// LoadCatalogFrom loads spells.json, items.json, classes.json and
// enemies.json from fsys and validates their cross references.
func LoadCatalogFrom(fsys fs.FS) (*Catalog, error) {
	spells, err := LoadFrom[SpellsFile](fsys, "spells.json")
	if err != nil {
		return nil, err
	}
	items, err := LoadFrom[ItemsFile](fsys, "items.json")
	if err != nil {
		return nil, err
	}
	classes, err := LoadFrom[ClassesFile](fsys, "classes.json")
	if err != nil {
		return nil, err
	}
	enemies, err := LoadFrom[EnemiesFile](fsys, "enemies.json")
	if err != nil {
		return nil, err
	}
	if len(enemies.Enemies) == 0 {
		return nil, errors.New("no enemies loaded from enemies.json")
	}

	catalog := &Catalog{
		Spells:  NewSpellRegistry(spells.Spells),
		Items:   NewItemRegistry(items.Items),
		Classes: NewClassRegistry(classes.Classes),
		Enemies: NewEnemyRegistry(enemies.Enemies),
	}
	if err := catalog.Validate(); err != nil {
		return nil, err
	}
	return catalog, nil
}

// MustLoadCatalog loads the embedded catalog, panicking on error.
func MustLoadCatalog() *Catalog {
	catalog, err := LoadCatalog()
	if err != nil {
		panic(err)
	}
	return catalog
}

// Validate checks that spells are well formed and that every spell referenced
// by a class learnset or an enemy spell table exists. All problems are
// reported together.
func (c *Catalog) Validate() error {
	var errs []error

	for _, spell := range c.Spells.All() {
		if !spell.Target.Valid() {
			errs = append(errs, fmt.Errorf("spell %s: unknown target %q", spell.ID, spell.Target))
		}
		if spell.MPCost < 0 {
			errs = append(errs, fmt.Errorf("spell %s: negative mp cost", spell.ID))
		}
		switch spell.Effect {
		case EffectAilment:
			if spell.Ailment != AilmentSleep && spell.Ailment != AilmentPoison {
				errs = append(errs, fmt.Errorf("spell %s: ailment spell without a known ailment", spell.ID))
			}
		case EffectDamage, EffectHeal, EffectAttackBuff, EffectDefenseBuff, EffectMPDrain:
		default:
			errs = append(errs, fmt.Errorf("spell %s: unknown effect %q", spell.ID, spell.Effect))
		}
	}

	for _, item := range c.Items.all {
		if item.Kind == ItemHeal && (!item.Target.Valid() || item.Target.IsOffensive()) {
			errs = append(errs, fmt.Errorf("item %s: heal items must target allies", item.ID))
		}
	}

	for _, class := range c.Classes.All() {
		for _, entry := range class.Learnset {
			if c.Spells.GetByID(entry.Spell) == nil {
				errs = append(errs, fmt.Errorf("class %s: learnset references unknown spell %s", class.ID, entry.Spell))
			}
		}
	}

	for _, enemy := range c.Enemies.All() {
		for _, id := range enemy.Spells {
			if c.Spells.GetByID(id) == nil {
				errs = append(errs, fmt.Errorf("enemy %s: unknown spell %s", enemy.ID, id))
			}
		}
	}

	return errors.Join(errs...)
}
