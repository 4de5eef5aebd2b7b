package game

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/samdwyer/cavebattle/internal/battlelog"
	"github.com/samdwyer/cavebattle/internal/combat"
	"github.com/samdwyer/cavebattle/internal/entity"
	"github.com/samdwyer/cavebattle/internal/gamedata"
	"github.com/samdwyer/cavebattle/internal/telemetry"
)

// NewEncounter builds the configured party and a generated enemy group and
// starts a battle between them.
func NewEncounter(cfg Config, catalog *gamedata.Catalog, rng *rand.Rand) (*entity.Party, *combat.Battle, error) {
	party, err := cfg.BuildParty(catalog)
	if err != nil {
		return nil, nil, err
	}
	enemies, err := entity.GenerateGroup(rng, catalog.Enemies, cfg.GroupSize, cfg.Tier)
	if err != nil {
		return nil, nil, err
	}
	return party, combat.NewBattle(party.Members, enemies, catalog), nil
}

// Runner drives a battle turn by turn: it asks the Commander for the party's
// actions, rolls the turn's random factors and feeds both to the resolver.
type Runner struct {
	battle    *combat.Battle
	party     *entity.Party
	commander Commander
	rng       *rand.Rand
	logger    *zap.Logger
	tracer    trace.Tracer
	maxTurns  int

	started  bool
	summary  *Summary
	levelUps map[string]int
}

// Option configures a Runner.
type Option func(*Runner)

// WithLogger sets the logger; the default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(r *Runner) { r.logger = l }
}

// WithTracer sets the tracer; the default is telemetry.Tracer("battle").
func WithTracer(t trace.Tracer) Option {
	return func(r *Runner) { r.tracer = t }
}

// WithMaxTurns caps the number of turns Run executes.
func WithMaxTurns(n int) Option {
	return func(r *Runner) { r.maxTurns = n }
}

// NewRunner creates a runner for battle. party is the persistent roster the
// results are committed to when the battle finishes.
func NewRunner(battle *combat.Battle, party *entity.Party, commander Commander, rng *rand.Rand, opts ...Option) *Runner {
	r := &Runner{
		battle:    battle,
		party:     party,
		commander: commander,
		rng:       rng,
		logger:    zap.NewNop(),
		tracer:    telemetry.Tracer("battle"),
		maxTurns:  DefaultConfig().MaxTurns,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Battle returns the battle being driven.
func (r *Runner) Battle() *combat.Battle { return r.battle }

// Done returns true once the battle is over or the turn limit is reached.
func (r *Runner) Done() bool {
	return r.battle.IsOver() || r.battle.Turn() >= r.maxTurns
}

// start records the encounter once, before the first turn.
func (r *Runner) start(ctx context.Context) {
	if r.started {
		return
	}
	r.started = true

	_, span := r.tracer.Start(ctx, "battle.start")
	span.SetAttributes(
		attribute.String("battle.id", r.battle.ID.String()),
		attribute.Int("party_size", len(r.battle.Party())),
		attribute.Int("enemy_count", len(r.battle.Enemies())),
	)
	span.End()

	names := make([]string, len(r.battle.Enemies()))
	for i, e := range r.battle.Enemies() {
		names[i] = e.Name
	}
	r.logger.Info("battle.start",
		zap.Stringer("battle", r.battle.ID),
		zap.Int("party_size", len(r.battle.Party())),
		zap.Strings("enemies", names),
	)
}

// Step executes one turn and returns its events.
func (r *Runner) Step(ctx context.Context) ([]combat.TurnResult, error) {
	if r.Done() {
		return nil, combat.ErrBattleOver
	}
	r.start(ctx)

	turn := r.battle.Turn() + 1
	_, span := r.tracer.Start(ctx, "battle.turn")
	defer span.End()

	commands := r.commander.Commands(r.battle)
	rf := combat.RollRandomFactors(r.rng, r.battle.SlotsNeeded(commands), len(r.battle.Enemies()))
	r.logger.Debug("turn.start", zap.Int("turn", turn), zap.Int("slots", len(rf.DamageRandoms)))

	events, err := r.battle.ExecuteTurn(commands, rf)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, fmt.Errorf("turn %d: %w", turn, err)
	}

	span.SetAttributes(
		attribute.String("battle.id", r.battle.ID.String()),
		attribute.Int("turn", turn),
		attribute.Int("events", len(events)),
		attribute.Int("party_alive", len(aliveMembers(r.battle.Party()))),
	)
	for _, ev := range events {
		r.logger.Info(battlelog.Describe(ev, r.battle, r.battle.Catalog()), eventFields(turn, ev)...)
	}
	return events, nil
}

// Run steps until the battle is over or the turn limit is hit, then
// finishes it.
func (r *Runner) Run(ctx context.Context) (Summary, error) {
	for !r.Done() {
		if _, err := r.Step(ctx); err != nil {
			return Summary{}, err
		}
	}
	return r.Finish(ctx)
}

// Finish commits the battle's results to the party, pays out rewards on
// victory and returns the summary. Later calls return the same summary.
func (r *Runner) Finish(ctx context.Context) (Summary, error) {
	if r.summary != nil {
		return *r.summary, nil
	}
	r.start(ctx)

	outcome := outcomeOf(r.battle)
	if err := r.battle.CommitTo(r.party); err != nil {
		return Summary{}, err
	}
	rewards := r.battle.Rewards()
	r.levelUps = make(map[string]int)
	for i, n := range r.party.AwardRewards(rewards.Exp, rewards.Gold) {
		r.levelUps[r.party.Members[i].Name] = n
	}

	_, span := r.tracer.Start(ctx, "battle.end")
	span.SetAttributes(
		attribute.String("battle.id", r.battle.ID.String()),
		attribute.String("outcome", outcome.String()),
		attribute.Int("turns_taken", r.battle.Turn()),
		attribute.Int("party_hp_remaining", r.party.TotalHP()),
		attribute.Int("exp", rewards.Exp),
		attribute.Int("gold", rewards.Gold),
	)
	span.End()

	r.logger.Info("battle.end",
		zap.Stringer("battle", r.battle.ID),
		zap.Stringer("outcome", outcome),
		zap.Int("turns", r.battle.Turn()),
		zap.Int("exp", rewards.Exp),
		zap.Int("gold", rewards.Gold),
	)

	s := r.buildSummary(outcome, rewards)
	r.summary = &s
	return s, nil
}

// Summary is the record of a finished encounter.
type Summary struct {
	BattleID uuid.UUID
	Outcome  Outcome
	Turns    int
	Tier     int
	Rewards  combat.Rewards
	LevelUps map[string]int // Levels gained, by member name
	Party    []CombatantSummary
	Enemies  []CombatantSummary
	Log      []string
}

// CombatantSummary is one actor's final state.
type CombatantSummary struct {
	Name      string
	Level     int
	HP, MaxHP int
	MP, MaxMP int
}

func (r *Runner) buildSummary(outcome Outcome, rewards combat.Rewards) Summary {
	s := Summary{
		BattleID: r.battle.ID,
		Outcome:  outcome,
		Turns:    r.battle.Turn(),
		Rewards:  rewards,
		LevelUps: r.levelUps,
		Log:      battlelog.Lines(r.battle.TurnLog(), r.battle, r.battle.Catalog()),
	}
	for _, m := range r.party.Members {
		s.Party = append(s.Party, CombatantSummary{
			Name: m.Name, Level: m.Level,
			HP: m.Stats.HP, MaxHP: m.Stats.MaxHP,
			MP: m.Stats.MP, MaxMP: m.Stats.MaxMP,
		})
	}
	for _, e := range r.battle.Enemies() {
		s.Tier = max(s.Tier, e.Tier)
		s.Enemies = append(s.Enemies, CombatantSummary{
			Name: e.Name, Level: e.Tier,
			HP: e.Stats.HP, MaxHP: e.Stats.MaxHP,
			MP: e.Stats.MP, MaxMP: e.Stats.MaxMP,
		})
	}
	return s
}

func aliveMembers(members []*entity.Member) []*entity.Member {
	var alive []*entity.Member
	for _, m := range members {
		if m.IsAlive() {
			alive = append(alive, m)
		}
	}
	return alive
}

// eventFields returns the structured fields logged for ev.
func eventFields(turn int, ev combat.TurnResult) []zap.Field {
	fields := []zap.Field{zap.Int("turn", turn), zap.String("kind", ev.Kind())}
	switch e := ev.(type) {
	case combat.AttackResult:
		fields = append(fields, zap.Stringer("actor", e.Actor), zap.Stringer("target", e.Target), zap.Int("amount", e.Damage))
	case combat.SpellDamage:
		fields = append(fields, zap.Stringer("actor", e.Actor), zap.Stringer("target", e.Target), zap.String("spell", e.Spell), zap.Int("amount", e.Damage))
	case combat.Healed:
		fields = append(fields, zap.Stringer("actor", e.Actor), zap.Stringer("target", e.Target), zap.String("spell", e.Spell), zap.Int("amount", e.Amount))
	case combat.Buffed:
		fields = append(fields, zap.Stringer("actor", e.Actor), zap.Stringer("target", e.Target), zap.Stringer("stat", e.Stat), zap.Int("amount", e.Amount))
	case combat.BuffExpired:
		fields = append(fields, zap.Stringer("target", e.Target), zap.Stringer("stat", e.Stat))
	case combat.ItemUsed:
		fields = append(fields, zap.Stringer("actor", e.Actor), zap.Stringer("target", e.Target), zap.String("item", e.Item), zap.Int("amount", e.Amount))
	case combat.MPDrained:
		fields = append(fields, zap.Stringer("actor", e.Actor), zap.Stringer("target", e.Target), zap.Int("amount", e.Amount))
	case combat.Defeated:
		fields = append(fields, zap.Stringer("target", e.Target))
	case combat.AilmentInflicted:
		fields = append(fields, zap.Stringer("actor", e.Actor), zap.Stringer("target", e.Target), zap.String("ailment", string(e.Ailment)))
	case combat.AilmentResisted:
		fields = append(fields, zap.Stringer("actor", e.Actor), zap.Stringer("target", e.Target), zap.String("ailment", string(e.Ailment)))
	case combat.Sleeping:
		fields = append(fields, zap.Stringer("actor", e.Actor))
	case combat.PoisonDamage:
		fields = append(fields, zap.Stringer("target", e.Target), zap.Int("amount", e.Amount))
	case combat.AilmentCured:
		fields = append(fields, zap.Stringer("target", e.Target), zap.String("ailment", string(e.Ailment)))
	case combat.Fled:
		fields = append(fields, zap.Stringer("actor", e.Actor))
	case combat.FleeFailed:
		fields = append(fields, zap.Stringer("actor", e.Actor))
	}
	return fields
}
