package redis

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-tactics/internal/errors"
)

type ClientTestSuite struct {
	suite.Suite
}

func TestClientSuite(t *testing.T) {
	suite.Run(t, new(ClientTestSuite))
}

func (s *ClientTestSuite) TestNewClientRequiresEndpoint() {
	_, err := NewClient("", nil)
	s.Assert().True(errors.IsInvalidArgument(err))
}

func (s *ClientTestSuite) TestOpenMemory() {
	client, closeFn, err := Open(MemoryAddr, nil)
	s.Require().NoError(err)
	defer closeFn()

	ctx := context.Background()
	s.Require().NoError(client.Set(ctx, "k", "v", 0).Err())
	val, err := client.Get(ctx, "k").Result()
	s.Require().NoError(err)
	s.Assert().Equal("v", val)
}
