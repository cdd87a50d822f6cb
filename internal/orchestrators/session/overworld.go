package session

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/KirkDiggler/rpg-tactics/internal/entities"
	"github.com/KirkDiggler/rpg-tactics/internal/errors"
	"github.com/KirkDiggler/rpg-tactics/internal/pathfinding"
	"github.com/KirkDiggler/rpg-tactics/internal/worldgen"
)

// MoveOverworld walks the party toward target. The first step is taken
// immediately and the rest are paced by Advance. An unreachable target
// changes nothing.
func (o *orchestrator) MoveOverworld(ctx context.Context, input *MoveInput) (*ActionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	return o.withSession(ctx, input.SessionID, func(l *live, out *ActionOutput) error {
		sess := l.sess
		if !sess.Phase.Exploring() || l.moving() || sess.Position == input.Target {
			return nil
		}
		path, ok := pathfinding.FindHexPath(sess.ActiveMap(), sess.Position, input.Target)
		if !ok || len(path) == 0 {
			return nil
		}

		l.path = path
		out.Accepted = true
		return o.step(ctx, l, &out.Events)
	})
}

// step takes the next queued step and decides whether the walk goes on
func (o *orchestrator) step(ctx context.Context, l *live, ev *entities.Events) error {
	sess := l.sess
	if !sess.Phase.Exploring() || !l.moving() {
		l.cancelTravel()
		return nil
	}

	next := l.path[0]
	l.path = l.path[1:]

	active := sess.ActiveMap()
	cell, ok := active.Cell(next)
	if !ok {
		l.cancelTravel()
		return nil
	}

	if sess.Phase == entities.PhaseTown && cell.POI == entities.POIExit {
		l.cancelTravel()
		o.exitSettlement(sess, ev)
		return nil
	}

	radius := viewRadius
	if sess.Dimension == entities.DimensionShadow {
		radius = shadowViewRadius
	}
	sess.Position = next
	active.Reveal(next, radius)
	sess.StandingOnPortal = cell.HasPortal && sess.Phase == entities.PhaseOverworld
	sess.StandingOnSettlement = cell.Terrain.IsSettlement() && sess.Phase == entities.PhaseOverworld

	if sess.StandingOnPortal {
		l.cancelTravel()
		return nil
	}

	if sess.Phase == entities.PhaseOverworld && cell.HasEncounter && !cell.Terrain.IsUrban() {
		cell.HasEncounter = false
		l.cancelTravel()
		return o.startBattle(ctx, l, cell.Terrain, cell.Weather, ev)
	}

	if l.moving() {
		l.queue.Schedule(o.stepDelay, travelStep{})
	}
	return nil
}

// UsePortal hops to the other world at the same (q, r)
func (o *orchestrator) UsePortal(ctx context.Context, input *SessionInput) (*ActionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	return o.withSession(ctx, input.SessionID, func(l *live, out *ActionOutput) error {
		sess := l.sess
		if sess.Phase != entities.PhaseOverworld {
			return nil
		}
		here, ok := sess.ActiveMap().Cell(sess.Position)
		if !ok || !here.HasPortal {
			return nil
		}

		l.cancelTravel()
		sess.Dimension = sess.Dimension.Other()
		target := sess.ActiveMap()
		target.Reveal(sess.Position, viewRadius)
		there, _ := target.Cell(sess.Position)
		sess.StandingOnPortal = there != nil && there.HasPortal
		sess.StandingOnSettlement = there != nil && there.Terrain.IsSettlement()

		out.Accepted = true
		out.Events.AddLog(0, entities.LogNarrative, "Dimension Hop!")
		o.log.WithFields(logrus.Fields{
			"session_id": sess.ID,
			"dimension":  sess.Dimension,
		}).Debug("portal used")
		return nil
	})
}

// EnterSettlement swaps the overworld for a freshly laid out town
func (o *orchestrator) EnterSettlement(ctx context.Context, input *SessionInput) (*ActionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	return o.withSession(ctx, input.SessionID, func(l *live, out *ActionOutput) error {
		sess := l.sess
		if sess.Phase != entities.PhaseOverworld {
			return nil
		}
		here, ok := sess.ActiveMap().Cell(sess.Position)
		if !ok || !here.Terrain.IsSettlement() {
			return nil
		}

		l.cancelTravel()
		pos := sess.Position
		sess.LastOverworldPos = &pos
		sess.Town = worldgen.GenerateTown(o.rng)
		sess.Position = worldgen.TownEntrance
		sess.Phase = entities.PhaseTown
		sess.StandingOnSettlement = false
		sess.StandingOnPortal = false

		out.Accepted = true
		out.Events.AddLog(0, entities.LogNarrative, "Entered settlement.")
		return nil
	})
}

// ExitSettlement returns to where the party entered town
func (o *orchestrator) ExitSettlement(ctx context.Context, input *SessionInput) (*ActionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	return o.withSession(ctx, input.SessionID, func(l *live, out *ActionOutput) error {
		if l.sess.Phase != entities.PhaseTown {
			return nil
		}
		l.cancelTravel()
		out.Accepted = o.exitSettlement(l.sess, &out.Events)
		return nil
	})
}

func (o *orchestrator) exitSettlement(sess *entities.Session, ev *entities.Events) bool {
	if sess.LastOverworldPos == nil {
		return false
	}
	sess.Phase = entities.PhaseOverworld
	sess.Position = *sess.LastOverworldPos
	sess.LastOverworldPos = nil
	sess.Town = nil
	if here, ok := sess.ActiveMap().Cell(sess.Position); ok {
		sess.StandingOnSettlement = here.Terrain.IsSettlement()
		sess.StandingOnPortal = here.HasPortal
	}
	ev.AddLog(0, entities.LogNarrative, "Returned to the wild.")
	return true
}
