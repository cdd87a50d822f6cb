package spellbook_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/rpg-tactics/internal/clients/external"
	externalmock "github.com/KirkDiggler/rpg-tactics/internal/clients/external/mock"
	"github.com/KirkDiggler/rpg-tactics/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-tactics/internal/errors"
	"github.com/KirkDiggler/rpg-tactics/internal/services/spellbook"
)

type SpellbookTestSuite struct {
	suite.Suite
	ctrl       *gomock.Controller
	mockClient *externalmock.MockClient
	service    spellbook.Service
	ctx        context.Context
}

func TestSpellbookSuite(t *testing.T) {
	suite.Run(t, new(SpellbookTestSuite))
}

func (s *SpellbookTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockClient = externalmock.NewMockClient(s.ctrl)
	s.ctx = context.Background()

	var err error
	s.service, err = spellbook.New(&spellbook.Config{ExternalClient: s.mockClient})
	s.Require().NoError(err)
}

func (s *SpellbookTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *SpellbookTestSuite) TestLookupEnrichesOnce() {
	s.mockClient.EXPECT().
		GetSpellData(gomock.Any(), "fire-bolt").
		Return(&external.SpellData{Key: "fire-bolt", School: "Evocation"}, nil).
		Times(1)

	for i := 0; i < 3; i++ {
		out, err := s.service.Lookup(s.ctx, &spellbook.LookupInput{Class: dnd5e.ClassWizard, SpellID: dnd5e.SpellFireBolt})
		s.Require().NoError(err)
		s.Assert().True(out.Known)
		s.Assert().Equal("Evocation", out.Spell.School)
		s.Assert().Equal(12, out.Spell.Range)
	}
}

func (s *SpellbookTestSuite) TestLookupUnknownToClass() {
	s.mockClient.EXPECT().
		GetSpellData(gomock.Any(), "cure-wounds").
		Return(&external.SpellData{School: "Evocation"}, nil)

	out, err := s.service.Lookup(s.ctx, &spellbook.LookupInput{Class: dnd5e.ClassWizard, SpellID: dnd5e.SpellCureWounds})
	s.Require().NoError(err)
	s.Assert().False(out.Known)
}

func (s *SpellbookTestSuite) TestLookupSurvivesClientFailure() {
	s.mockClient.EXPECT().
		GetSpellData(gomock.Any(), "magic-missile").
		Return(nil, errors.Unavailable("srd down"))

	out, err := s.service.Lookup(s.ctx, &spellbook.LookupInput{Class: dnd5e.ClassWizard, SpellID: dnd5e.SpellMagicMissile})
	s.Require().NoError(err)
	s.Assert().Empty(out.Spell.School)
	s.Assert().Equal(1, out.Spell.Level)
}

func (s *SpellbookTestSuite) TestLookupErrors() {
	_, err := s.service.Lookup(s.ctx, nil)
	s.Assert().True(errors.IsInvalidArgument(err))

	_, err = s.service.Lookup(s.ctx, &spellbook.LookupInput{Class: dnd5e.ClassWizard})
	s.Assert().True(errors.IsInvalidArgument(err))

	_, err = s.service.Lookup(s.ctx, &spellbook.LookupInput{Class: dnd5e.ClassWizard, SpellID: "wish"})
	s.Assert().True(errors.IsNotFound(err))
}

func (s *SpellbookTestSuite) TestListKnown() {
	s.mockClient.EXPECT().GetSpellData(gomock.Any(), gomock.Any()).
		Return(&external.SpellData{School: "Evocation"}, nil).
		AnyTimes()

	out, err := s.service.ListKnown(s.ctx, &spellbook.ListKnownInput{Class: dnd5e.ClassCleric})
	s.Require().NoError(err)
	s.Require().Len(out.Spells, 3)
	s.Assert().Equal(dnd5e.SpellSacredFlame, out.Spells[0].ID)

	out, err = s.service.ListKnown(s.ctx, &spellbook.ListKnownInput{Class: dnd5e.ClassFighter})
	s.Require().NoError(err)
	s.Assert().Empty(out.Spells)

	_, err = s.service.ListKnown(s.ctx, &spellbook.ListKnownInput{Class: "necromancer"})
	s.Assert().True(errors.IsInvalidArgument(err))
}

func (s *SpellbookTestSuite) TestWithoutClient() {
	svc, err := spellbook.New(&spellbook.Config{})
	s.Require().NoError(err)

	out, err := svc.Lookup(s.ctx, &spellbook.LookupInput{Class: dnd5e.ClassCleric, SpellID: dnd5e.SpellCureWounds})
	s.Require().NoError(err)
	s.Assert().True(out.Known)
	s.Assert().Empty(out.Spell.School)

	_, err = spellbook.New(nil)
	s.Assert().True(errors.IsInvalidArgument(err))
}
