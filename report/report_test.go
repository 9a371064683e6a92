package report

import (
	"encoding/json"
	"os"
	"ownlist/scenario"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/suite"
)

type reportTestSuite struct {
	suite.Suite
	outputPath string
}

func TestReportTestSuite(t *testing.T) {
	suite.Run(t, new(reportTestSuite))
}

func (s *reportTestSuite) SetupTest() {
	var err error
	s.outputPath, err = os.MkdirTemp("", "report-*")
	if err != nil {
		panic(err)
	}
}

func (s *reportTestSuite) TearDownTest() {
	err := os.RemoveAll(s.outputPath)
	if err != nil {
		panic(err)
	}
}

func failingResult(name string) *scenario.Result {
	return &scenario.Result{
		Suite: name,
		Steps: []scenario.StepResult{
			{Name: "insert", Passed: true, Rendering: "[1 ]"},
			{Name: "reverse", Passed: false, Rendering: "[1 ]", Detail: "expected [2], got [1]"},
		},
	}
}

func (s *reportTestSuite) TestAggregatesConcurrentResults() {
	r := NewReport()
	names := scenario.SuiteNames()

	var wg sync.WaitGroup
	for _, name := range names {
		wg.Add(1)
		go func(name string) {
			defer wg.Done()
			registered, found := scenario.GetSuite(name)
			if !s.True(found) {
				return
			}
			r.AddResult(registered.Run(false))
		}(name)
	}
	wg.Wait()
	r.Finalize()

	s.Len(r.Suites, len(names))
	s.True(r.Success)
	s.Equal(0, r.FailedSteps)
	s.Equal(len(names)*(len(scenario.DefaultSteps[int]())+1), r.TotalSteps)
	s.Empty(r.FailedSuites())
}

func (s *reportTestSuite) TestRecordsFailures() {
	r := NewReport()
	r.AddResult(failingResult("int"))
	r.Finalize()

	s.False(r.Success)
	s.Equal(2, r.TotalSteps)
	s.Equal(1, r.FailedSteps)
	s.Equal([]string{"int"}, r.FailedSuites())
	s.Equal([]string{"reverse: expected [2], got [1]"}, r.Suites["int"].Failures)
}

func (s *reportTestSuite) TestEmptyReportIsNotSuccess() {
	r := NewReport()
	r.Finalize()
	s.False(r.Success)
}

func (s *reportTestSuite) TestWriteFile() {
	r := NewReport()
	r.AddResult(failingResult("float64"))
	r.Finalize()

	outputFile := filepath.Join(s.outputPath, "report.json")
	s.Require().Nil(r.WriteFile(outputFile))

	data, err := os.ReadFile(outputFile)
	s.Require().Nil(err)

	var written map[string]interface{}
	s.Require().Nil(json.Unmarshal(data, &written))
	s.Equal(false, written["success"])
	s.Equal(float64(2), written["totalSteps"])
	s.Equal(float64(1), written["failedSteps"])

	suites, ok := written["suites"].(map[string]interface{})
	s.Require().True(ok)
	s.Contains(suites, "float64")
}

func (s *reportTestSuite) TestWriteFileToMissingDirectory() {
	r := NewReport()
	r.Finalize()

	err := r.WriteFile(filepath.Join(s.outputPath, "missing", "report.json"))
	s.Error(err)
}
