package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/suite"
)

type ChamactlTestSuite struct {
	suite.Suite
}

func TestChamactlSuite(t *testing.T) {
	suite.Run(t, new(ChamactlTestSuite))
}

func (s *ChamactlTestSuite) SetupTest() {
	databaseDSN = "postgres://localhost/none"
	routingThreshold = ""
}

func (s *ChamactlTestSuite) TestMigrateDown_InvalidSteps() {
	cmd := migrateCmd()
	cmd.SetArgs([]string{"down", "zero"})
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))

	err := cmd.Execute()
	s.Require().Error(err)
	s.Contains(err.Error(), "steps must be a positive integer")
}

func (s *ChamactlTestSuite) TestRequireDSN() {
	databaseDSN = ""
	cmd := migrateCmd()
	cmd.SetArgs([]string{"up"})
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))

	err := cmd.Execute()
	s.Require().Error(err)
	s.Contains(err.Error(), "database DSN is not set")
}

func (s *ChamactlTestSuite) TestRoutingSet_InvalidThreshold() {
	cmd := routingCmd()
	cmd.SetArgs([]string{"set", "--threshold=-5", "--bank", "b", "--mpesa", "m", "--platform", "p"})
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))

	err := cmd.Execute()
	s.Require().Error(err)
	s.Contains(err.Error(), "threshold must be a positive amount")
}

func (s *ChamactlTestSuite) TestRoutingSet_RequiredFlags() {
	cmd := routingCmd()
	cmd.SetArgs([]string{"set", "--threshold", "1000"})
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))

	s.Require().Error(cmd.Execute())
}
