package scenario

import "sort"

// Suite runs the default steps against a list of one element type.
type Suite struct {
	Name string
	Run  func(verbose bool) *Result
}

var suites = map[string]Suite{
	"int":     numberSuite[int]("int"),
	"int64":   numberSuite[int64]("int64"),
	"float32": numberSuite[float32]("float32"),
	"float64": numberSuite[float64]("float64"),
}

func numberSuite[T Number](name string) Suite {
	return Suite{
		Name: name,
		Run: func(verbose bool) *Result {
			return Run(name, DefaultSteps[T](), verbose)
		},
	}
}

// GetSuite returns the suite registered for an element type name.
func GetSuite(name string) (Suite, bool) {
	suite, found := suites[name]
	return suite, found
}

// SuiteNames returns the registered element type names in sorted order.
func SuiteNames() []string {
	names := make([]string, 0, len(suites))
	for name := range suites {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
