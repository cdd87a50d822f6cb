package external

import (
	"context"
	"errors"
	"testing"

	"github.com/fadedpez/dnd5e-api/clients/dnd5e"
	"github.com/fadedpez/dnd5e-api/entities"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	internalerrors "github.com/KirkDiggler/rpg-tactics/internal/errors"
)

// mockDND5eClient is a mock implementation of the dnd5e.Interface for testing
type mockDND5eClient struct {
	mock.Mock
}

func (m *mockDND5eClient) ListRaces() ([]*entities.ReferenceItem, error) {
	args := m.Called()
	return args.Get(0).([]*entities.ReferenceItem), args.Error(1)
}

func (m *mockDND5eClient) GetRace(key string) (*entities.Race, error) {
	args := m.Called(key)
	return args.Get(0).(*entities.Race), args.Error(1)
}

func (m *mockDND5eClient) ListEquipment() ([]*entities.ReferenceItem, error) {
	args := m.Called()
	return args.Get(0).([]*entities.ReferenceItem), args.Error(1)
}

func (m *mockDND5eClient) GetEquipment(key string) (dnd5e.EquipmentInterface, error) {
	args := m.Called(key)
	return args.Get(0).(dnd5e.EquipmentInterface), args.Error(1)
}

func (m *mockDND5eClient) GetEquipmentCategory(key string) (*entities.EquipmentCategory, error) {
	args := m.Called(key)
	return args.Get(0).(*entities.EquipmentCategory), args.Error(1)
}

func (m *mockDND5eClient) ListClasses() ([]*entities.ReferenceItem, error) {
	args := m.Called()
	return args.Get(0).([]*entities.ReferenceItem), args.Error(1)
}

func (m *mockDND5eClient) GetClass(key string) (*entities.Class, error) {
	args := m.Called(key)
	return args.Get(0).(*entities.Class), args.Error(1)
}

func (m *mockDND5eClient) ListSpells(input *dnd5e.ListSpellsInput) ([]*entities.ReferenceItem, error) {
	args := m.Called(input)
	return args.Get(0).([]*entities.ReferenceItem), args.Error(1)
}

func (m *mockDND5eClient) GetSpell(key string) (*entities.Spell, error) {
	args := m.Called(key)
	return args.Get(0).(*entities.Spell), args.Error(1)
}

func (m *mockDND5eClient) ListFeatures() ([]*entities.ReferenceItem, error) {
	args := m.Called()
	return args.Get(0).([]*entities.ReferenceItem), args.Error(1)
}

func (m *mockDND5eClient) GetFeature(key string) (*entities.Feature, error) {
	args := m.Called(key)
	return args.Get(0).(*entities.Feature), args.Error(1)
}

func (m *mockDND5eClient) ListSkills() ([]*entities.ReferenceItem, error) {
	args := m.Called()
	return args.Get(0).([]*entities.ReferenceItem), args.Error(1)
}

func (m *mockDND5eClient) GetSkill(key string) (*entities.Skill, error) {
	args := m.Called(key)
	return args.Get(0).(*entities.Skill), args.Error(1)
}

func (m *mockDND5eClient) ListMonsters() ([]*entities.ReferenceItem, error) {
	args := m.Called()
	return args.Get(0).([]*entities.ReferenceItem), args.Error(1)
}

func (m *mockDND5eClient) ListMonstersWithFilter(input *dnd5e.ListMonstersInput) ([]*entities.ReferenceItem, error) {
	args := m.Called(input)
	return args.Get(0).([]*entities.ReferenceItem), args.Error(1)
}

func (m *mockDND5eClient) GetMonster(key string) (*entities.Monster, error) {
	args := m.Called(key)
	return args.Get(0).(*entities.Monster), args.Error(1)
}

func (m *mockDND5eClient) GetClassLevel(key string, level int) (*entities.Level, error) {
	args := m.Called(key, level)
	return args.Get(0).(*entities.Level), args.Error(1)
}

func (m *mockDND5eClient) GetProficiency(key string) (*entities.Proficiency, error) {
	args := m.Called(key)
	return args.Get(0).(*entities.Proficiency), args.Error(1)
}

func (m *mockDND5eClient) ListDamageTypes() ([]*entities.ReferenceItem, error) {
	args := m.Called()
	return args.Get(0).([]*entities.ReferenceItem), args.Error(1)
}

func (m *mockDND5eClient) GetDamageType(key string) (*entities.DamageType, error) {
	args := m.Called(key)
	return args.Get(0).(*entities.DamageType), args.Error(1)
}

func (m *mockDND5eClient) ListBackgrounds() ([]*entities.ReferenceItem, error) {
	args := m.Called()
	return args.Get(0).([]*entities.ReferenceItem), args.Error(1)
}

func (m *mockDND5eClient) GetBackground(key string) (*entities.Background, error) {
	args := m.Called(key)
	return args.Get(0).(*entities.Background), args.Error(1)
}

type ClientTestSuite struct {
	suite.Suite
	api    *mockDND5eClient
	client *client
	ctx    context.Context
}

func TestClientSuite(t *testing.T) {
	suite.Run(t, new(ClientTestSuite))
}

func (s *ClientTestSuite) SetupTest() {
	s.api = new(mockDND5eClient)
	s.client = &client{dnd5eClient: s.api}
	s.ctx = context.Background()
}

func (s *ClientTestSuite) TearDownTest() {
	s.api.AssertExpectations(s.T())
}

func (s *ClientTestSuite) TestGetSpellData() {
	s.Run("converts the SRD entry", func() {
		s.SetupTest()
		s.api.On("GetSpell", "fire-bolt").Return(&entities.Spell{
			Key:         "fire-bolt",
			Name:        "Fire Bolt",
			SpellLevel:  0,
			Range:       "120 feet",
			CastingTime: "1 action",
			Duration:    "Instantaneous",
		}, nil).Once()

		data, err := s.client.GetSpellData(s.ctx, "fire-bolt")
		s.Require().NoError(err)
		s.Assert().Equal("Fire Bolt", data.Name)
		s.Assert().Empty(data.School)
		s.Assert().Equal("120 feet", data.Range)
		s.Assert().Contains(data.Description, "Cantrip Unknown School spell")
		s.Assert().Contains(data.Description, "Casting Time: 1 action")
	})

	s.Run("marks concentration and ritual", func() {
		s.SetupTest()
		s.api.On("GetSpell", "entangle").Return(&entities.Spell{
			Key:           "entangle",
			Name:          "Entangle",
			SpellLevel:    1,
			Concentration: true,
			Ritual:        true,
		}, nil).Once()

		data, err := s.client.GetSpellData(s.ctx, "entangle")
		s.Require().NoError(err)
		s.Assert().Equal(1, data.Level)
		s.Assert().Contains(data.Description, "Level 1 Unknown School spell")
		s.Assert().Contains(data.Description, "Properties: Ritual, Concentration")
	})

	s.Run("api failure is unavailable", func() {
		s.SetupTest()
		s.api.On("GetSpell", "wish").Return((*entities.Spell)(nil), errors.New("boom")).Once()

		_, err := s.client.GetSpellData(s.ctx, "wish")
		s.Require().Error(err)
		s.Assert().True(internalerrors.IsUnavailable(err))
	})

	s.Run("empty key", func() {
		s.SetupTest()
		_, err := s.client.GetSpellData(s.ctx, "")
		s.Assert().True(internalerrors.IsInvalidArgument(err))
	})
}

func (s *ClientTestSuite) TestConfigDefaults() {
	cfg := &Config{}
	s.Require().NoError(cfg.Validate())
	s.Assert().Equal(DefaultBaseURL, cfg.BaseURL)
	s.Assert().NotZero(cfg.HTTPTimeout)
	s.Assert().NotZero(cfg.CacheTTL)
}
