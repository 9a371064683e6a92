package runner

import (
	"encoding/json"
	"errors"
	"os"
	"ownlist/options"
	"ownlist/scenario"
	"ownlist/util"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"
)

type runnerTestSuite struct {
	suite.Suite
	outputPath string
}

func TestRunnerTestSuite(t *testing.T) {
	suite.Run(t, new(runnerTestSuite))
}

func (s *runnerTestSuite) SetupTest() {
	var err error
	s.outputPath, err = os.MkdirTemp("", "")
	if err != nil {
		panic(err)
	}
}

func (s *runnerTestSuite) TearDownTest() {
	err := os.RemoveAll(s.outputPath)
	if err != nil {
		panic(err)
	}
}

func (s *runnerTestSuite) TestAllSuitesPass() {
	outputFile := filepath.Join(s.outputPath, "report.json")
	err := Run(&options.Options{
		Suites:         scenario.SuiteNames(),
		OutputPath:     outputFile,
		VerboseLogging: true,
		Parallelism:    3,
	})
	s.Require().Nil(err)

	data, err := os.ReadFile(outputFile)
	s.Require().Nil(err)

	var written struct {
		Suites      map[string]json.RawMessage `json:"suites"`
		FailedSteps int                        `json:"failedSteps"`
		Success     bool                       `json:"success"`
	}
	s.Require().Nil(json.Unmarshal(data, &written))
	s.True(written.Success)
	s.Equal(0, written.FailedSteps)
	s.Len(written.Suites, len(scenario.SuiteNames()))
}

func (s *runnerTestSuite) TestWithoutReport() {
	err := Run(&options.Options{
		Suites:      []string{"int", "float32"},
		Parallelism: 1,
	})
	s.Nil(err)

	entries, err := os.ReadDir(s.outputPath)
	s.Require().Nil(err)
	s.Empty(entries)
}

func (s *runnerTestSuite) TestUnknownSuite() {
	err := Run(&options.Options{
		Suites:      []string{"int", "complex128"},
		Parallelism: 1,
	})
	s.Require().Error(err)

	var withCode *util.ErrorWithCode
	s.Require().True(errors.As(err, &withCode))
	s.Equal(util.ERROR_NO_SUITES, withCode.StatusCode)
}

func (s *runnerTestSuite) TestReportWriteFailure() {
	err := Run(&options.Options{
		Suites:      []string{"int"},
		OutputPath:  filepath.Join(s.outputPath, "missing", "report.json"),
		Parallelism: 1,
	})
	s.Require().Error(err)

	var withCode *util.ErrorWithCode
	s.Require().True(errors.As(err, &withCode))
	s.Equal(util.ERROR_REPORT_WRITE, withCode.StatusCode)
}
