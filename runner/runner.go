package runner

import (
	"fmt"
	"log"
	"ownlist/options"
	"ownlist/parallel"
	"ownlist/report"
	"ownlist/scenario"
	"ownlist/util"
	"strings"
)

// Run executes the scenario for every selected element type and writes the
// report when an output path is set.
func Run(opts *options.Options) error {
	r, err := runSuites(opts)
	if err != nil {
		return err
	}

	if len(opts.OutputPath) > 0 {
		err = r.WriteFile(opts.OutputPath)
		if err != nil {
			return &util.ErrorWithCode{
				StatusCode:    util.ERROR_REPORT_WRITE,
				InternalError: err,
			}
		}
		log.Printf("written report to '%v'", opts.OutputPath)
	}

	if !r.Success {
		failed := r.FailedSuites()
		return &util.ErrorWithCode{
			StatusCode: util.ERROR_STEPS_FAILED,
			InternalError: fmt.Errorf("%v of %v steps failed in suites: %v",
				r.FailedSteps, r.TotalSteps, strings.Join(failed, ", ")),
		}
	}
	log.Printf("%v steps passed across %v suites", r.TotalSteps, len(r.Suites))
	return nil
}

func runSuites(opts *options.Options) (*report.Report, error) {
	r := report.NewReport()
	queue := parallel.CreateJobQueue(len(opts.Suites), opts.Parallelism)
	defer queue.Close()

	for _, name := range opts.Suites {
		suite, found := scenario.GetSuite(name)
		if !found {
			return nil, &util.ErrorWithCode{
				StatusCode:    util.ERROR_NO_SUITES,
				InternalError: fmt.Errorf("unknown element type '%v'", name),
			}
		}
		err := queue.Add(func() error {
			log.Printf("%v test:", suite.Name)
			r.AddResult(suite.Run(opts.VerboseLogging))
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	err := queue.Wait()
	if err != nil {
		return nil, err
	}
	r.Finalize()
	return r, nil
}
