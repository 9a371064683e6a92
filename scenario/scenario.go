package scenario

import (
	"fmt"
	"log"
	"ownlist/list"
)

type Op string

const (
	OP_NONE         Op = "none"
	OP_INSERT_FIRST Op = "insert-first"
	OP_INSERT_LAST  Op = "insert-last"
	OP_REMOVE_FIRST Op = "remove-first"
	OP_REMOVE_LAST  Op = "remove-last"
	OP_REVERSE      Op = "reverse"
	OP_CLEAR        Op = "clear"
)

// TEARDOWN_STEP names the leak check run after the last step of every scenario.
const TEARDOWN_STEP = "teardown"

// Step applies Op (with Arg for inserts) and expects the list to hold exactly Want afterwards.
type Step[T any] struct {
	Name string
	Op   Op
	Arg  T
	Want []T
}

type Number interface {
	~int | ~int64 | ~float32 | ~float64
}

// DefaultSteps is the smoke sequence run for every element type.
func DefaultSteps[T Number]() []Step[T] {
	return []Step[T]{
		{Name: "create empty list", Op: OP_NONE, Want: []T{}},
		{Name: "insert first into empty", Op: OP_INSERT_FIRST, Arg: 5, Want: []T{5}},
		{Name: "insert last", Op: OP_INSERT_LAST, Arg: 10, Want: []T{5, 10}},
		{Name: "insert first", Op: OP_INSERT_FIRST, Arg: 3, Want: []T{3, 5, 10}},
		{Name: "insert last again", Op: OP_INSERT_LAST, Arg: 15, Want: []T{3, 5, 10, 15}},
		{Name: "reverse", Op: OP_REVERSE, Want: []T{15, 10, 5, 3}},
		{Name: "remove first", Op: OP_REMOVE_FIRST, Want: []T{10, 5, 3}},
		{Name: "remove last", Op: OP_REMOVE_LAST, Want: []T{10, 5}},
		{Name: "remove last again", Op: OP_REMOVE_LAST, Want: []T{10}},
		{Name: "remove last single", Op: OP_REMOVE_LAST, Want: []T{}},
		{Name: "remove first on empty", Op: OP_REMOVE_FIRST, Want: []T{}},
		{Name: "remove last on empty", Op: OP_REMOVE_LAST, Want: []T{}},
		{Name: "insert last into empty", Op: OP_INSERT_LAST, Arg: 7, Want: []T{7}},
		{Name: "insert last after refill", Op: OP_INSERT_LAST, Arg: 8, Want: []T{7, 8}},
		{Name: "reverse refilled", Op: OP_REVERSE, Want: []T{8, 7}},
		{Name: "reverse back", Op: OP_REVERSE, Want: []T{7, 8}},
		{Name: "clear", Op: OP_CLEAR, Want: []T{}},
	}
}

type StepResult struct {
	Name      string `json:"name"`
	Passed    bool   `json:"passed"`
	Rendering string `json:"rendering"`
	Detail    string `json:"detail,omitempty"`
}

type Result struct {
	Suite string       `json:"suite"`
	Steps []StepResult `json:"steps"`
}

func (result *Result) Failed() int {
	failed := 0
	for _, step := range result.Steps {
		if !step.Passed {
			failed++
		}
	}
	return failed
}

type runner[T comparable] struct {
	suite   string
	verbose bool
	counter *list.Counter
	list    *list.List[T]
}

func (r *runner[T]) verboseLog(format string, v ...interface{}) {
	if r.verbose {
		log.Printf(format, v...)
	}
}

// Run applies steps in order to a fresh list and checks the contents after each one.
// A failed step does not stop the run. The list is cleared at the end and any node
// left unreleased fails the teardown step.
func Run[T comparable](suite string, steps []Step[T], verbose bool) *Result {
	counter := &list.Counter{}
	r := &runner[T]{
		suite:   suite,
		verbose: verbose,
		counter: counter,
		list:    list.New[T](list.WithTracker(counter)),
	}
	result := &Result{Suite: suite, Steps: make([]StepResult, 0, len(steps)+1)}
	for _, step := range steps {
		result.Steps = append(result.Steps, r.apply(step))
	}
	result.Steps = append(result.Steps, r.teardown())
	return result
}

func (r *runner[T]) apply(step Step[T]) StepResult {
	r.verboseLog("%v: before %v: %v", r.suite, step.Name, r.list)
	err := r.mutate(step)
	if err == nil {
		err = r.check(step.Want)
	}
	res := StepResult{
		Name:      step.Name,
		Passed:    err == nil,
		Rendering: r.list.String(),
	}
	if err != nil {
		res.Detail = err.Error()
		log.Printf("%v: %v: fail - %v", r.suite, step.Name, err)
	} else {
		log.Printf("%v: %v: ok", r.suite, step.Name)
	}
	r.verboseLog("%v: after %v: %v", r.suite, step.Name, r.list)
	return res
}

func (r *runner[T]) mutate(step Step[T]) error {
	switch step.Op {
	case OP_NONE:
	case OP_INSERT_FIRST:
		r.list.InsertFirst(step.Arg)
	case OP_INSERT_LAST:
		r.list.InsertLast(step.Arg)
	case OP_REMOVE_FIRST:
		r.list.RemoveFirst()
	case OP_REMOVE_LAST:
		r.list.RemoveLast()
	case OP_REVERSE:
		r.list.Reverse()
	case OP_CLEAR:
		r.list.Clear()
	default:
		return fmt.Errorf("unknown operation '%v'", step.Op)
	}
	return nil
}

func (r *runner[T]) check(want []T) error {
	if !list.CompareArray(r.list, want) {
		return fmt.Errorf("expected %v, got %v", want, r.list.Values())
	}
	if r.list.IsEmpty() != (r.list.Size() == 0) {
		return fmt.Errorf("empty is %v but size is %v", r.list.IsEmpty(), r.list.Size())
	}
	if live := r.counter.Live(); live != int64(r.list.Size()) {
		return fmt.Errorf("%v nodes alive for size %v", live, r.list.Size())
	}
	return nil
}

func (r *runner[T]) teardown() StepResult {
	r.list.Clear()
	res := StepResult{Name: TEARDOWN_STEP, Passed: true, Rendering: r.list.String()}
	if live := r.counter.Live(); live != 0 {
		res.Passed = false
		res.Detail = fmt.Sprintf("%v of %v nodes not released", live, r.counter.Allocations())
		log.Printf("%v: %v: fail - %v", r.suite, TEARDOWN_STEP, res.Detail)
		return res
	}
	r.verboseLog("%v: %v: released %v nodes", r.suite, TEARDOWN_STEP, r.counter.Releases())
	return res
}
