package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/suite"
)

type LoggerTestSuite struct {
	suite.Suite
}

func TestLoggerSuite(t *testing.T) {
	suite.Run(t, new(LoggerTestSuite))
}

func (s *LoggerTestSuite) TestNew_Release() {
	s.T().Setenv("GIN_MODE", "release")
	s.T().Setenv("LOG_LEVEL", "")

	var buf bytes.Buffer
	l := New(&buf)
	s.Equal(logrus.InfoLevel, l.GetLevel())

	Component(l, "mpesa", "reconciler").Info("started")

	var entry map[string]any
	s.Require().NoError(json.Unmarshal(buf.Bytes(), &entry))
	s.Equal("mpesa", entry["component"])
	s.Equal("reconciler", entry["module"])
	s.Equal("started", entry["msg"])
}

func (s *LoggerTestSuite) TestNew_Development() {
	s.T().Setenv("GIN_MODE", "debug")
	s.T().Setenv("LOG_LEVEL", "")

	l := New(new(bytes.Buffer))
	s.Equal(logrus.DebugLevel, l.GetLevel())
	s.IsType(new(logrus.TextFormatter), l.Formatter)
}

func (s *LoggerTestSuite) TestNew_LevelOverride() {
	s.T().Setenv("GIN_MODE", "release")

	s.T().Setenv("LOG_LEVEL", "warn")
	s.Equal(logrus.WarnLevel, New(new(bytes.Buffer)).GetLevel())

	s.T().Setenv("LOG_LEVEL", "loud")
	s.Equal(logrus.InfoLevel, New(new(bytes.Buffer)).GetLevel())
}
