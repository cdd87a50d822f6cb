package idgen_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-tactics/internal/pkg/idgen"
)

type IDGenTestSuite struct {
	suite.Suite
}

func TestIDGenSuite(t *testing.T) {
	suite.Run(t, new(IDGenTestSuite))
}

func (s *IDGenTestSuite) TestSequential() {
	gen := idgen.NewSequential("enemy")
	s.Assert().Equal("enemy_1", gen.Generate())
	s.Assert().Equal("enemy_2", gen.Generate())

	bare := idgen.NewSequential("")
	s.Assert().Equal("1", bare.Generate())
}

func (s *IDGenTestSuite) TestUUIDPrefixed() {
	gen := idgen.NewUUID("sess")
	a := gen.Generate()
	b := gen.Generate()
	s.Assert().True(strings.HasPrefix(a, "sess_"))
	s.Assert().NotEqual(a, b)
	s.Assert().Len(a, len("sess_")+36)
}
