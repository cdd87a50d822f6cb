package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-tactics/internal/clients/external"
	"github.com/KirkDiggler/rpg-tactics/internal/engine/rpgtoolkit"
	"github.com/KirkDiggler/rpg-tactics/internal/entities"
	"github.com/KirkDiggler/rpg-tactics/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-tactics/internal/orchestrators/battle"
	"github.com/KirkDiggler/rpg-tactics/internal/orchestrators/session"
	"github.com/KirkDiggler/rpg-tactics/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-tactics/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-tactics/internal/pkg/logger"
	"github.com/KirkDiggler/rpg-tactics/internal/pkg/random"
	"github.com/KirkDiggler/rpg-tactics/internal/redis"
	"github.com/KirkDiggler/rpg-tactics/internal/repositories/chronicle"
	sessionrepo "github.com/KirkDiggler/rpg-tactics/internal/repositories/session"
	"github.com/KirkDiggler/rpg-tactics/internal/services/spellbook"
	"github.com/KirkDiggler/rpg-tactics/internal/worldgen"
)

var (
	redisAddr   string
	chronicleDB string
	srdURL      string
	steps       int
	heroName    string
	heroRace    string
	heroClass   string
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Play a seeded session headless and print its log",
	RunE:  runSimulate,
}

func init() {
	addWorldFlags(simulateCmd)
	simulateCmd.Flags().StringVar(&redisAddr, "redis-addr", redis.MemoryAddr, "redis endpoint for saves, or memory")
	simulateCmd.Flags().StringVar(&chronicleDB, "chronicle-db", chronicle.MemoryPath, "sqlite file for the battle chronicle")
	simulateCmd.Flags().StringVar(&srdURL, "srd-url", "", "SRD API base url for spell schools; empty stays offline")
	simulateCmd.Flags().IntVar(&steps, "steps", 200, "decisions to play before stopping")
	simulateCmd.Flags().StringVar(&heroName, "name", "Brom", "party leader name")
	simulateCmd.Flags().StringVar(&heroRace, "race", dnd5e.RaceHuman, "party leader race")
	simulateCmd.Flags().StringVar(&heroClass, "class", dnd5e.ClassFighter, "party leader class")
}

func runSimulate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	s := resolveSeed()
	src := random.NewSeeded(s)
	log := logger.Component("simulate")

	client, closeRedis, err := redis.Open(redisAddr, nil)
	if err != nil {
		return fmt.Errorf("failed to open redis: %w", err)
	}
	defer closeRedis()

	repo, err := sessionrepo.NewRedis(&sessionrepo.RedisConfig{Client: client})
	if err != nil {
		return fmt.Errorf("failed to create session repository: %w", err)
	}
	history, err := chronicle.NewSQLite(&chronicle.SQLiteConfig{Path: chronicleDB, Clock: clock.New()})
	if err != nil {
		return fmt.Errorf("failed to open chronicle: %w", err)
	}
	defer func() { _ = history.Close() }()

	var srd external.Client
	if srdURL != "" {
		srd, err = external.New(&external.Config{BaseURL: srdURL})
		if err != nil {
			return fmt.Errorf("failed to create SRD client: %w", err)
		}
	}
	book, err := spellbook.New(&spellbook.Config{ExternalClient: srd})
	if err != nil {
		return fmt.Errorf("failed to create spellbook: %w", err)
	}

	bus := events.NewBus()
	eng, err := rpgtoolkit.NewAdapter(&rpgtoolkit.AdapterConfig{EventBus: bus, DiceRoller: random.NewRoller(src)})
	if err != nil {
		return fmt.Errorf("failed to create engine: %w", err)
	}
	ids := idgen.NewSequential("sim")

	battles, err := battle.NewOrchestrator(&battle.Config{
		Engine:      eng,
		Spellbook:   book,
		Random:      src,
		IDGenerator: ids,
		EventBus:    bus,
	})
	if err != nil {
		return fmt.Errorf("failed to create battle orchestrator: %w", err)
	}
	gen, err := worldgen.NewGenerator(&worldgen.Config{
		Noise:  worldgen.NewNoise(worldgen.NoiseKind(noiseKind), s),
		Random: src,
	})
	if err != nil {
		return fmt.Errorf("failed to create generator: %w", err)
	}
	svc, err := session.NewOrchestrator(&session.Config{
		Generator:   gen,
		Battle:      battles,
		Engine:      eng,
		Random:      src,
		IDGenerator: idgen.NewUUID("sess"),
		Repository:  repo,
		Chronicle:   history,
	})
	if err != nil {
		return fmt.Errorf("failed to create session orchestrator: %w", err)
	}

	p := &player{ctx: ctx, svc: svc, battles: battles, rng: src}
	if err := p.begin(width, height); err != nil {
		return err
	}
	fmt.Printf("seed %d, session %s\n", s, p.id)

	for i := 0; i < steps && !p.done; i++ {
		if err := p.decide(); err != nil {
			return err
		}
	}

	if _, err := svc.Save(ctx, &session.SessionInput{SessionID: p.id}); err != nil {
		return fmt.Errorf("failed to save: %w", err)
	}
	out, err := svc.History(ctx, &session.SessionInput{SessionID: p.id})
	if err != nil {
		return fmt.Errorf("failed to read history: %w", err)
	}

	fmt.Println("\nbattles:")
	for _, e := range out.Entries {
		fmt.Printf("  %-8s %-7s %-10s lv%d rounds %d xp %d gold %d\n",
			e.Outcome, e.Dimension, e.Terrain, e.EnemyLevel, e.Rounds, e.XP, e.Gold)
	}
	fmt.Println("\nparty:")
	for _, m := range p.sess.Party {
		fmt.Printf("  %-9s %-8s lv%d hp %d/%d xp %d\n",
			m.Name, m.Stats.Class, m.Stats.Level, m.Stats.HP, m.Stats.MaxHP, m.Stats.XP)
	}
	log.WithField("session_id", p.id).Info("simulation finished")
	return nil
}

// player drives a session with a fixed policy: wander, fight the nearest
// enemy, drink when badly hurt
type player struct {
	ctx     context.Context
	svc     session.Service
	battles battle.Service
	rng     random.Source

	id   string
	sess *entities.Session
	enc  *battle.Encounter
	done bool
}

func (p *player) apply(out *session.ActionOutput, err error) error {
	if err != nil {
		return err
	}
	p.sess = out.Session
	p.enc = out.Encounter
	for _, l := range out.Events.Log {
		fmt.Printf("[%5d] %-9s %s\n", l.Tick, l.Category, l.Message)
	}
	return nil
}

func (p *player) begin(w, h int) error {
	out, err := p.svc.NewSession(p.ctx, &session.NewSessionInput{
		Width:      w,
		Height:     h,
		Difficulty: entities.Difficulty(strings.ToUpper(difficulty)),
	})
	if err := p.apply(out, err); err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}
	p.id = p.sess.ID

	out, err = p.svc.CreateCharacter(p.ctx, &session.CreateCharacterInput{
		SessionID: p.id,
		Name:      heroName,
		Race:      heroRace,
		Class:     heroClass,
		Scores:    entities.Attributes{STR: 15, DEX: 14, CON: 13, INT: 12, WIS: 10, CHA: 8},
		PlusTwo:   primaryAbility(heroClass),
		PlusOne:   entities.AbilityCON,
	})
	if err := p.apply(out, err); err != nil {
		return fmt.Errorf("failed to create party: %w", err)
	}
	return nil
}

func primaryAbility(class string) entities.Ability {
	if ab, ok := dnd5e.SpellcastingAbility(class); ok && ab != entities.AbilityCON {
		return ab
	}
	if class == dnd5e.ClassRogue {
		return entities.AbilityDEX
	}
	return entities.AbilitySTR
}

func (p *player) decide() error {
	switch p.sess.Phase {
	case entities.PhaseOverworld:
		return p.explore()
	case entities.PhaseTown:
		return p.apply(p.svc.ExitSettlement(p.ctx, &session.SessionInput{SessionID: p.id}))
	case entities.PhaseBattle:
		return p.fight()
	case entities.PhaseVictory:
		return p.apply(p.svc.ContinueAfterVictory(p.ctx, &session.SessionInput{SessionID: p.id}))
	case entities.PhaseDefeat:
		fmt.Println("the party has fallen")
		p.done = true
	default:
		p.done = true
	}
	return nil
}

func (p *player) explore() error {
	in := &session.SessionInput{SessionID: p.id}
	switch {
	case p.sess.StandingOnPortal && random.Chance(p.rng, 0.6):
		return p.apply(p.svc.UsePortal(p.ctx, in))
	case p.sess.StandingOnSettlement && random.Chance(p.rng, 0.7):
		return p.apply(p.svc.EnterSettlement(p.ctx, in))
	}

	if leader := p.sess.Party[0]; leader.Stats.HP*3 < leader.Stats.MaxHP {
		if p.sess.Inventory.Find(dnd5e.ItemPotionHealing) >= 0 {
			return p.apply(p.svc.ConsumeItem(p.ctx, &session.ConsumeItemInput{SessionID: p.id, ItemID: dnd5e.ItemPotionHealing}))
		}
	}

	m := p.sess.ActiveMap()
	target := entities.Hex{
		Q: p.sess.Position.Q + p.rng.Intn(11) - 5,
		R: p.sess.Position.R + p.rng.Intn(11) - 5,
	}
	if cell, ok := m.Cell(target); !ok || !cell.Terrain.Passable() {
		return nil
	}
	out, err := p.svc.MoveOverworld(p.ctx, &session.MoveInput{SessionID: p.id, Target: target})
	if err := p.apply(out, err); err != nil || !out.Accepted {
		return err
	}

	// let the walk play out
	for i := 0; i < 20 && p.sess.Phase.Exploring() && p.sess.Position != target; i++ {
		if err := p.apply(p.svc.Advance(p.ctx, &session.AdvanceInput{SessionID: p.id, Ticks: session.DefaultStepDelay})); err != nil {
			return err
		}
	}
	return nil
}

func (p *player) fight() error {
	enc := p.enc
	if enc == nil {
		return nil
	}
	actor := enc.CurrentActor()
	if !enc.Active() || actor == nil || actor.Type != entities.EntityPlayer {
		return p.apply(p.svc.Advance(p.ctx, &session.AdvanceInput{SessionID: p.id, Ticks: battle.DefaultTiming.AIDelay}))
	}

	target := nearestEnemy(enc, actor.Position)
	if target == nil {
		return p.apply(p.svc.EndTurn(p.ctx, &session.SessionInput{SessionID: p.id}))
	}

	if actor.Stats.HP*3 < actor.Stats.MaxHP && p.sess.Inventory.Find(dnd5e.ItemPotionHealing) >= 0 {
		if err := p.apply(p.svc.ConsumeItem(p.ctx, &session.ConsumeItemInput{SessionID: p.id, ItemID: dnd5e.ItemPotionHealing})); err != nil {
			return err
		}
		return p.apply(p.svc.EndTurn(p.ctx, &session.SessionInput{SessionID: p.id}))
	}

	if actor.Position.Chebyshev(target.Position) > 1 && !enc.HasMoved {
		if dest, ok := approach(enc, actor, target.Position); ok {
			if err := p.click(dest); err != nil {
				return err
			}
		}
	}

	if p.sess.Phase != entities.PhaseBattle || p.enc == nil {
		return nil
	}
	actor = p.enc.CurrentActor()
	if actor != nil && actor.Position.Chebyshev(target.Position) <= 1 && !p.enc.HasActed {
		if odds, err := p.battles.PredictAttack(p.ctx, &battle.PredictAttackInput{EncounterID: p.enc.ID, TargetID: target.ID}); err == nil {
			fmt.Printf("        %s vs %s: %.0f%% to hit, %d-%d damage\n",
				actor.Name, target.Name, odds.HitChance*100, odds.MinDamage, odds.MaxDamage)
		}
		if err := p.apply(p.svc.SelectAction(p.ctx, &session.SelectActionInput{SessionID: p.id, Action: entities.ActionAttack})); err != nil {
			return err
		}
		if err := p.click(target.Position); err != nil {
			return err
		}
	}

	if p.sess.Phase == entities.PhaseBattle && p.enc != nil && p.enc.Active() {
		return p.apply(p.svc.EndTurn(p.ctx, &session.SessionInput{SessionID: p.id}))
	}
	return nil
}

// click selects a tile and confirms it
func (p *player) click(pos entities.GridPos) error {
	for i := 0; i < 2; i++ {
		if err := p.apply(p.svc.InteractTile(p.ctx, &session.InteractTileInput{SessionID: p.id, Position: pos})); err != nil {
			return err
		}
	}
	return nil
}

func nearestEnemy(enc *battle.Encounter, from entities.GridPos) *entities.Combatant {
	var best *entities.Combatant
	for _, e := range enc.Living(entities.EntityEnemy) {
		if best == nil || from.Chebyshev(e.Position) < from.Chebyshev(best.Position) {
			best = e
		}
	}
	return best
}

// approach picks the reachable open tile closest to goal
func approach(enc *battle.Encounter, actor *entities.Combatant, goal entities.GridPos) (entities.GridPos, bool) {
	reach := actor.Stats.Speed / 5
	best, found := actor.Position, false
	for _, cell := range enc.Grid.Cells {
		pos := entities.GridPos{X: cell.X, Z: cell.Z}
		if cell.IsObstacle || enc.EntityAt(pos) != nil || actor.Position.Chebyshev(pos) > reach {
			continue
		}
		if pos.Chebyshev(goal) < best.Chebyshev(goal) {
			best, found = pos, true
		}
	}
	return best, found
}
