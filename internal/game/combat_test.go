package game

import (
	"context"
	"errors"
	"math/rand"
	"testing"

	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/samdwyer/cavebattle/internal/combat"
	"github.com/samdwyer/cavebattle/internal/entity"
	"github.com/samdwyer/cavebattle/internal/gamedata"
)

type harness struct {
	runner *Runner
	party  *entity.Party
	spans  *tracetest.InMemoryExporter
	logs   *observer.ObservedLogs
}

func newHarness(t *testing.T, party *entity.Party, enemies []*entity.Enemy, commander Commander, maxTurns int) *harness {
	t.Helper()
	catalog := gamedata.MustLoadCatalog()

	spans := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(spans))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })

	core, logs := observer.New(zap.DebugLevel)

	b := combat.NewBattle(party.Members, enemies, catalog)
	runner := NewRunner(b, party, commander, rand.New(rand.NewSource(1)),
		WithLogger(zap.New(core)),
		WithTracer(tp.Tracer("test")),
		WithMaxTurns(maxTurns),
	)
	return &harness{runner: runner, party: party, spans: spans, logs: logs}
}

func (h *harness) spanNames() []string {
	var names []string
	for _, s := range h.spans.GetSpans() {
		names = append(names, s.Name)
	}
	return names
}

func fighter(name string, hp, atk, def, spd int) *entity.Member {
	return &entity.Member{
		Name:      name,
		Level:     1,
		Stats:     entity.Stats{HP: hp, MaxHP: hp, Attack: atk, Defense: def, Speed: spd},
		Inventory: entity.Inventory{},
	}
}

func TestRunnerVictory(t *testing.T) {
	catalog := gamedata.MustLoadCatalog()
	party := entity.NewParty(fighter("Aria", 50, 100, 0, 10))
	h := newHarness(t, party, slimes(catalog, 1), AutoCommander{}, 10)

	summary, err := h.runner.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if summary.Outcome != OutcomeVictory {
		t.Errorf("Outcome = %v, want victory", summary.Outcome)
	}
	if summary.Turns != 1 {
		t.Errorf("Turns = %d, want 1", summary.Turns)
	}
	if summary.Rewards != (combat.Rewards{Exp: 3, Gold: 2}) {
		t.Errorf("Rewards = %+v, want {Exp:3 Gold:2}", summary.Rewards)
	}
	if party.Gold != 2 {
		t.Errorf("party gold = %d, want 2", party.Gold)
	}
	if party.Members[0].Exp != 3 {
		t.Errorf("Aria exp = %d, want 3", party.Members[0].Exp)
	}
	if len(summary.Log) != 2 || summary.Log[1] != "Slime is defeated!" {
		t.Errorf("Log = %q", summary.Log)
	}
	if summary.BattleID != h.runner.Battle().ID {
		t.Error("summary battle ID does not match the battle")
	}

	names := h.spanNames()
	want := []string{"battle.start", "battle.turn", "battle.end"}
	if len(names) != len(want) {
		t.Fatalf("spans = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("spans[%d] = %q, want %q", i, names[i], want[i])
		}
	}

	if got := h.logs.FilterMessage("battle.end").Len(); got != 1 {
		t.Errorf("battle.end logged %d times, want 1", got)
	}
	if got := h.logs.FilterField(zap.String("kind", "defeated")).Len(); got != 1 {
		t.Errorf("defeated events logged %d times, want 1", got)
	}
}

func TestRunnerDefeatCommitsStats(t *testing.T) {
	catalog := gamedata.MustLoadCatalog()
	party := entity.NewParty(fighter("Aria", 1, 1, 0, 1))
	troll := entity.NewEnemy(catalog.Enemies.GetByID("cave_troll"), 3)
	h := newHarness(t, party, []*entity.Enemy{troll}, AutoCommander{}, 10)

	summary, err := h.runner.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if summary.Outcome != OutcomeDefeat {
		t.Errorf("Outcome = %v, want defeat", summary.Outcome)
	}
	if party.Members[0].Stats.HP != 0 {
		t.Errorf("Aria HP = %d, want 0 committed", party.Members[0].Stats.HP)
	}
	if summary.Rewards != (combat.Rewards{}) || party.Gold != 0 {
		t.Errorf("defeat paid rewards %+v, gold %d", summary.Rewards, party.Gold)
	}
	if summary.Tier != 3 {
		t.Errorf("Tier = %d, want 3", summary.Tier)
	}
}

func TestRunnerTurnLimit(t *testing.T) {
	catalog := gamedata.MustLoadCatalog()
	party := entity.NewParty(fighter("Aria", 500, 1, 100, 5))
	golem := entity.NewEnemy(catalog.Enemies.GetByID("cave_troll"), 1)
	golem.Stats.HP, golem.Stats.MaxHP = 1000, 1000
	h := newHarness(t, party, []*entity.Enemy{golem}, AutoCommander{}, 3)

	summary, err := h.runner.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if summary.Outcome != OutcomeUnresolved {
		t.Errorf("Outcome = %v, want unresolved", summary.Outcome)
	}
	if summary.Turns != 3 {
		t.Errorf("Turns = %d, want 3", summary.Turns)
	}
	if _, err := h.runner.Step(context.Background()); !errors.Is(err, combat.ErrBattleOver) {
		t.Errorf("Step() after limit error = %v, want ErrBattleOver", err)
	}
}

func TestRunnerFlee(t *testing.T) {
	catalog := gamedata.MustLoadCatalog()
	party := entity.NewParty(fighter("Aria", 500, 1, 100, 5), fighter("Bram", 500, 1, 100, 5))
	flee := CommanderFunc(func(b *combat.Battle) []combat.Action {
		return []combat.Action{nil, combat.Flee{}}
	})
	h := newHarness(t, party, slimes(catalog, 2), flee, 50)

	summary, err := h.runner.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if summary.Outcome != OutcomeFled {
		t.Errorf("Outcome = %v, want fled", summary.Outcome)
	}
	if got := summary.Log[len(summary.Log)-1]; got != "Bram leads the party to safety!" {
		t.Errorf("last log line = %q", got)
	}
	if summary.Rewards != (combat.Rewards{}) {
		t.Errorf("fleeing paid rewards %+v", summary.Rewards)
	}
}

func TestRunnerFinishIsIdempotent(t *testing.T) {
	catalog := gamedata.MustLoadCatalog()
	party := entity.NewParty(fighter("Aria", 50, 100, 0, 10))
	h := newHarness(t, party, slimes(catalog, 1), AutoCommander{}, 10)
	ctx := context.Background()

	first, err := h.runner.Run(ctx)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	second, err := h.runner.Finish(ctx)
	if err != nil {
		t.Fatalf("Finish() error = %v", err)
	}
	if first.BattleID != second.BattleID || first.Outcome != second.Outcome {
		t.Error("second Finish() returned a different summary")
	}
	if party.Gold != 2 {
		t.Errorf("party gold = %d after two Finish calls, want 2", party.Gold)
	}
}

func TestNewEncounter(t *testing.T) {
	catalog := gamedata.MustLoadCatalog()
	cfg := DefaultConfig()
	cfg.Tier = 3
	cfg.GroupSize = 5

	party, b, err := NewEncounter(cfg, catalog, rand.New(rand.NewSource(9)))
	if err != nil {
		t.Fatalf("NewEncounter() error = %v", err)
	}
	if len(party.Members) != 4 || len(b.Party()) != 4 {
		t.Errorf("party sizes = %d/%d, want 4", len(party.Members), len(b.Party()))
	}
	if len(b.Enemies()) != 5 {
		t.Errorf("enemy count = %d, want 5", len(b.Enemies()))
	}
	for _, e := range b.Enemies() {
		if e.Tier != 3 {
			t.Errorf("%s tier = %d, want 3", e.Name, e.Tier)
		}
	}
}

func TestOutcomeString(t *testing.T) {
	tests := []struct {
		outcome  Outcome
		expected string
	}{
		{OutcomeUnresolved, "unresolved"},
		{OutcomeVictory, "victory"},
		{OutcomeDefeat, "defeat"},
		{OutcomeFled, "fled"},
		{Outcome(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.outcome.String(); got != tt.expected {
			t.Errorf("Outcome(%d).String() = %q, want %q", tt.outcome, got, tt.expected)
		}
	}
}
