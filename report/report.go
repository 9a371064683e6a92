package report

import (
	"encoding/json"
	"fmt"
	"os"
	"ownlist/scenario"
	"sort"
	"sync"
	"time"

	"github.com/avast/retry-go"
)

const TARGET_PERMISSIONS = 0644

// Report represents the aggregated outcome of every suite run
type Report struct {
	Suites      map[string]*SuiteStats `json:"suites"`
	TotalSteps  int                    `json:"totalSteps"`
	FailedSteps int                    `json:"failedSteps"`
	Success     bool                   `json:"success"`
	lock        sync.Mutex
}

// SuiteStats represents the counters of a single element type suite
type SuiteStats struct {
	Steps    int      `json:"steps"`
	Passed   int      `json:"passed"`
	Failed   int      `json:"failed"`
	Failures []string `json:"failures,omitempty"`
}

// NewReport creates a new Report instance with initialized maps
func NewReport() *Report {
	return &Report{
		Suites: make(map[string]*SuiteStats),
	}
}

// AddResult folds a suite result into the report; safe for concurrent use
func (r *Report) AddResult(result *scenario.Result) {
	r.lock.Lock()
	defer r.lock.Unlock()

	stats, exists := r.Suites[result.Suite]
	if !exists {
		stats = &SuiteStats{}
		r.Suites[result.Suite] = stats
	}

	for _, step := range result.Steps {
		stats.Steps++
		if step.Passed {
			stats.Passed++
			continue
		}
		stats.Failed++
		stats.Failures = append(stats.Failures, fmt.Sprintf("%v: %v", step.Name, step.Detail))
	}
}

// Finalize calculates totals from the per suite counters
func (r *Report) Finalize() {
	r.lock.Lock()
	defer r.lock.Unlock()

	r.TotalSteps, r.FailedSteps = 0, 0
	for _, stats := range r.Suites {
		r.TotalSteps += stats.Steps
		r.FailedSteps += stats.Failed
	}
	r.Success = r.FailedSteps == 0 && len(r.Suites) > 0
}

// FailedSuites returns the names of suites with at least one failed step, sorted
func (r *Report) FailedSuites() []string {
	r.lock.Lock()
	defer r.lock.Unlock()

	var names []string
	for name, stats := range r.Suites {
		if stats.Failed > 0 {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// WriteFile writes the report as indented JSON to outputPath
func (r *Report) WriteFile(outputPath string) error {
	r.lock.Lock()
	data, err := json.MarshalIndent(r, "", "  ")
	r.lock.Unlock()
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}

	err = retry.Do(
		func() error {
			return os.WriteFile(outputPath, data, TARGET_PERMISSIONS)
		},
		retry.Attempts(3),
		retry.Delay(50*time.Millisecond),
	)
	if err != nil {
		return fmt.Errorf("failed to write report to '%v': %w", outputPath, err)
	}
	return nil
}
