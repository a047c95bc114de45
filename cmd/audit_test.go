package cmd

import (
	"bytes"
	"context"
	"errors"
	"github.com/kanzihuang/conda-guard/pkg/conda"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"go.temporal.io/sdk/client"
	"go.temporal.io/sdk/mocks"
	"strings"
	"testing"
)

func TestAuditTestSuite(t *testing.T) {
	suite.Run(t, new(AuditTestSuite))
}

type AuditTestSuite struct {
	suite.Suite
	client *mocks.Client
	run    *mocks.WorkflowRun
}

func (s *AuditTestSuite) SetupTest() {
	s.client = &mocks.Client{}
	s.run = &mocks.WorkflowRun{}
	s.run.On("GetID").Return("conda-audit-test").Maybe()
	s.run.On("GetRunID").Return("run-test").Maybe()
}

func (s *AuditTestSuite) AfterTest(_, _ string) {
	s.client.AssertExpectations(s.T())
	s.run.AssertExpectations(s.T())
}

func (s *AuditTestSuite) expectAudit(output conda.AuditOutput, err error) {
	s.client.On("ExecuteWorkflow", mock.Anything,
		mock.MatchedBy(func(options client.StartWorkflowOptions) bool {
			return options.TaskQueue == "conda-guard" && strings.HasPrefix(options.ID, "conda-audit-")
		}),
		conda.Audit, conda.AuditInput{}).Return(s.run, nil).Once()
	s.run.On("Get", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		*args.Get(1).(*conda.AuditOutput) = output
	}).Return(err).Once()
}

func (s *AuditTestSuite) TestPassed() {
	s.expectAudit(conda.AuditOutput{
		HostTaskQueue: "conda-guard-host",
		Results: []conda.Result{
			{Check: "packages", Status: conda.StatusPassed, Command: "conda list --explicit"},
			{Check: "channels", Status: conda.StatusSkipped, Command: "conda config --get channels", Message: "conda not available (exit code 127)"},
		},
	}, nil)
	var out bytes.Buffer
	s.Require().NoError(runAudit(context.Background(), s.client, "conda-guard", &out))
	s.Contains(out.String(), "PASS\tpackages\tconda list --explicit\n")
	s.Contains(out.String(), "SKIP\tchannels\tconda config --get channels\n")
}

func (s *AuditTestSuite) TestFailed() {
	s.expectAudit(conda.AuditOutput{
		Results: []conda.Result{
			{Check: "packages", Status: conda.StatusFailed, Message: "Found 1 packages from repo.anaconda.com (defaults channel):\nhttps://repo.anaconda.com/pkgs/main/foo-1.0"},
		},
	}, nil)
	var out bytes.Buffer
	s.Require().ErrorIs(runAudit(context.Background(), s.client, "conda-guard", &out), errComplianceFailed)
	s.Contains(out.String(), "\thttps://repo.anaconda.com/pkgs/main/foo-1.0\n")
}

func (s *AuditTestSuite) TestWorkflowError() {
	boom := errors.New("schedule to start timeout")
	s.expectAudit(conda.AuditOutput{}, boom)
	var out bytes.Buffer
	s.Require().ErrorIs(runAudit(context.Background(), s.client, "conda-guard", &out), boom)
	s.Empty(out.String())
}

func (s *AuditTestSuite) TestStartError() {
	boom := errors.New("namespace not found")
	s.client.On("ExecuteWorkflow", mock.Anything, mock.Anything, conda.Audit, conda.AuditInput{}).
		Return(nil, boom).Once()
	s.Require().ErrorIs(runAudit(context.Background(), s.client, "conda-guard", &bytes.Buffer{}), boom)
}
