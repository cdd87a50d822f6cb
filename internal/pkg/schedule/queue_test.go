package schedule_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-tactics/internal/pkg/schedule"
)

type QueueTestSuite struct {
	suite.Suite
	queue *schedule.Queue[string]
}

func TestQueueSuite(t *testing.T) {
	suite.Run(t, new(QueueTestSuite))
}

func (s *QueueTestSuite) SetupTest() {
	s.queue = schedule.New[string]()
}

func (s *QueueTestSuite) collect(ticks int64) []string {
	var fired []string
	s.queue.Advance(ticks, func(v string) { fired = append(fired, v) })
	return fired
}

func (s *QueueTestSuite) TestFiresInDueOrder() {
	s.queue.Schedule(10, "ai")
	s.queue.Schedule(2, "step")
	s.queue.Schedule(2, "step2")

	s.Assert().Empty(s.collect(1))
	s.Assert().Equal([]string{"step", "step2"}, s.collect(1))
	s.Assert().Equal(int64(2), s.queue.Now())
	s.Assert().Equal([]string{"ai"}, s.collect(8))
	s.Assert().Zero(s.queue.Len())
}

func (s *QueueTestSuite) TestChainedSchedulingInsideWindow() {
	s.queue.Schedule(10, "enemy")
	var fired []string
	var times []int64
	s.queue.Advance(30, func(v string) {
		fired = append(fired, v)
		times = append(times, s.queue.Now())
		if v == "enemy" {
			s.queue.Schedule(8, "end")
		}
	})
	s.Assert().Equal([]string{"enemy", "end"}, fired)
	s.Assert().Equal([]int64{10, 18}, times)
	s.Assert().Equal(int64(30), s.queue.Now())
}

func (s *QueueTestSuite) TestClearDropsPending() {
	s.queue.Schedule(3, "x")
	s.queue.Schedule(1, "y")

	s.queue.Clear()
	s.Assert().Zero(s.queue.Len())
	s.Assert().Empty(s.collect(10))

	s.queue.Schedule(0, "z")
	s.Assert().Equal([]string{"z"}, s.collect(0))
}

func (s *QueueTestSuite) TestClearInsideAdvance() {
	s.queue.Schedule(1, "stop")
	s.queue.Schedule(2, "never")
	fired := s.queue.Advance(5, func(string) { s.queue.Clear() })
	s.Assert().Equal(1, fired)
	s.Assert().Equal(int64(5), s.queue.Now())
}
