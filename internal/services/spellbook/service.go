// Package spellbook serves the spell catalog to the battle engine, enriched
// with SRD metadata when an external client is configured.
package spellbook

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/KirkDiggler/rpg-tactics/internal/clients/external"
	"github.com/KirkDiggler/rpg-tactics/internal/entities"
	"github.com/KirkDiggler/rpg-tactics/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-tactics/internal/errors"
	"github.com/KirkDiggler/rpg-tactics/internal/pkg/logger"
)

// Service defines spell lookups
type Service interface {
	// ListKnown returns the spells a class can cast, in class order
	ListKnown(ctx context.Context, input *ListKnownInput) (*ListKnownOutput, error)
	// Lookup returns one spell and whether the class knows it
	Lookup(ctx context.Context, input *LookupInput) (*LookupOutput, error)
}

// ListKnownInput defines the request for ListKnown
type ListKnownInput struct {
	Class string
}

// ListKnownOutput defines the response for ListKnown
type ListKnownOutput struct {
	Spells []*entities.Spell
}

// LookupInput defines the request for Lookup
type LookupInput struct {
	Class   string
	SpellID string
}

// LookupOutput defines the response for Lookup
type LookupOutput struct {
	Spell *entities.Spell
	Known bool
}

// Config holds the dependencies for the spellbook
type Config struct {
	// ExternalClient is optional. Without it spells carry no school.
	ExternalClient external.Client
}

// Validate ensures the config is usable
func (c *Config) Validate() error {
	return nil
}

type service struct {
	client external.Client
	log    *logrus.Entry

	mu      sync.Mutex
	schools map[string]string
}

// New creates a spellbook service
func New(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	return &service{
		client:  cfg.ExternalClient,
		log:     logger.Component("spellbook"),
		schools: make(map[string]string),
	}, nil
}

func (s *service) ListKnown(ctx context.Context, input *ListKnownInput) (*ListKnownOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if !dnd5e.ValidClass(input.Class) {
		return nil, errors.InvalidArgumentf("unknown class %q", input.Class)
	}

	ids := dnd5e.ClassSpells(input.Class)
	out := &ListKnownOutput{Spells: make([]*entities.Spell, 0, len(ids))}
	for _, id := range ids {
		spell, ok := dnd5e.Spell(id)
		if !ok {
			return nil, errors.Internalf("class %s lists unknown spell %s", input.Class, id)
		}
		s.enrich(ctx, spell)
		out.Spells = append(out.Spells, spell)
	}
	return out, nil
}

func (s *service) Lookup(ctx context.Context, input *LookupInput) (*LookupOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.SpellID == "" {
		return nil, errors.InvalidArgument("spell id is required")
	}

	spell, ok := dnd5e.Spell(input.SpellID)
	if !ok {
		return nil, errors.NotFoundf("spell %s not found", input.SpellID)
	}
	s.enrich(ctx, spell)

	return &LookupOutput{
		Spell: spell,
		Known: dnd5e.KnowsSpell(input.Class, input.SpellID),
	}, nil
}

// enrich fills in the school from the SRD. Failures are logged and the
// catalog spell is used as is.
func (s *service) enrich(ctx context.Context, spell *entities.Spell) {
	if s.client == nil {
		return
	}

	s.mu.Lock()
	school, cached := s.schools[spell.ID]
	s.mu.Unlock()
	if cached {
		spell.School = school
		return
	}

	data, err := s.client.GetSpellData(ctx, dnd5e.SRDKey(spell.ID))
	if err != nil {
		s.log.WithError(err).WithField("spell", spell.ID).Warn("srd lookup failed")
		return
	}

	s.mu.Lock()
	s.schools[spell.ID] = data.School
	s.mu.Unlock()
	spell.School = data.School
}
