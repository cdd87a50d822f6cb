package session

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/KirkDiggler/rpg-tactics/internal/entities"
	"github.com/KirkDiggler/rpg-tactics/internal/errors"
	"github.com/KirkDiggler/rpg-tactics/internal/pkg/schedule"
	"github.com/KirkDiggler/rpg-tactics/internal/repositories/chronicle"
	sessionrepo "github.com/KirkDiggler/rpg-tactics/internal/repositories/session"
)

// Save writes a snapshot of the session. Travel in flight and the open
// battle are not part of it.
func (o *orchestrator) Save(ctx context.Context, input *SessionInput) (*ActionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if o.repo == nil {
		return nil, errors.FailedPrecondition("no session repository configured")
	}
	return o.withSession(ctx, input.SessionID, func(l *live, out *ActionOutput) error {
		if _, err := o.repo.Save(ctx, &sessionrepo.SaveInput{Session: l.sess}); err != nil {
			return errors.Wrap(err, "failed to save session")
		}
		out.Accepted = true
		o.log.WithField("session_id", l.sess.ID).Debug("session saved")
		return nil
	})
}

// Load replaces the live session with its snapshot. A snapshot taken in
// battle or in town resumes on the overworld hex the party left from.
func (o *orchestrator) Load(ctx context.Context, input *SessionInput) (*ActionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if o.repo == nil {
		return nil, errors.FailedPrecondition("no session repository configured")
	}
	if input.SessionID == "" {
		return nil, errors.InvalidArgument("session id is required")
	}

	got, err := o.repo.Get(ctx, &sessionrepo.GetInput{ID: input.SessionID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to load session")
	}
	sess := got.Session
	if sess.Normal == nil || sess.Shadow == nil {
		return nil, errors.DataLoss("session snapshot has no worlds")
	}
	resume(sess)

	o.mu.Lock()
	if prev, ok := o.sessions[sess.ID]; ok {
		if err := o.closeBattle(ctx, prev); err != nil {
			o.mu.Unlock()
			return nil, err
		}
		prev.cancelTravel()
	}
	o.sessions[sess.ID] = &live{sess: sess, queue: schedule.New[travelStep]()}
	o.mu.Unlock()

	o.log.WithFields(logrus.Fields{
		"session_id": sess.ID,
		"phase":      sess.Phase,
	}).Info("session loaded")

	return o.withSession(ctx, sess.ID, func(_ *live, out *ActionOutput) error {
		out.Accepted = true
		return nil
	})
}

// resume brings a snapshot back to a phase that needs no live battle
func resume(sess *entities.Session) {
	sess.EncounterID = ""
	sess.Rewards = nil
	if len(sess.Party) == 0 {
		sess.Phase = entities.PhaseCharacterCreation
		sess.Town = nil
		return
	}
	if sess.Phase == entities.PhaseOverworld || sess.Phase == entities.PhaseCharacterCreation {
		return
	}
	if sess.Phase == entities.PhaseTown && sess.LastOverworldPos != nil {
		sess.Position = *sess.LastOverworldPos
	}
	sess.Town = nil
	sess.LastOverworldPos = nil
	sess.Phase = entities.PhaseOverworld
}

// History lists the battles the session has fought
func (o *orchestrator) History(ctx context.Context, input *SessionInput) (*HistoryOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if o.chronicle == nil {
		return nil, errors.FailedPrecondition("no chronicle configured")
	}
	if input.SessionID == "" {
		return nil, errors.InvalidArgument("session id is required")
	}
	res, err := o.chronicle.List(ctx, &chronicle.ListInput{SessionID: input.SessionID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list battles")
	}
	return &HistoryOutput{Entries: res.Entries}, nil
}
