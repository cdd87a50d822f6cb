package logger_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-tactics/internal/pkg/logger"
)

type LoggerTestSuite struct {
	suite.Suite
}

func TestLoggerSuite(t *testing.T) {
	suite.Run(t, new(LoggerTestSuite))
}

func (s *LoggerTestSuite) TestJSONFormatAndLevel() {
	s.T().Setenv("LOG_LEVEL", "warn")
	s.T().Setenv("LOG_FORMAT", "json")

	var buf bytes.Buffer
	logger.InitWithOutput(&buf)

	logger.Component("battle").Info("hidden")
	s.Assert().Zero(buf.Len())

	logger.Component("battle").Warn("visible")

	var line map[string]interface{}
	s.Require().NoError(json.Unmarshal(buf.Bytes(), &line))
	s.Assert().Equal("battle", line["component"])
	s.Assert().Equal("visible", line["msg"])
}

func (s *LoggerTestSuite) TestBadLevelFallsBackToInfo() {
	s.T().Setenv("LOG_LEVEL", "chatty")
	s.T().Setenv("LOG_FORMAT", "text")

	var buf bytes.Buffer
	logger.InitWithOutput(&buf)
	logger.Log.Debug("no")
	s.Assert().Zero(buf.Len())
	logger.Log.Info("yes")
	s.Assert().Contains(buf.String(), "yes")
}
