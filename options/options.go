package options

import (
	"fmt"
	"os"
	"ownlist/scenario"
	"ownlist/util"
	"path/filepath"
	"strings"

	"github.com/gobwas/glob"
	"github.com/urfave/cli/v2"
)

var Flags = []cli.Flag{
	&cli.StringFlag{
		Name:     "types",
		Aliases:  []string{"t"},
		Value:    "*",
		Usage:    "patterns of element types to test, comma delimited, may contain any glob pattern",
		Required: false,
	},
	&cli.StringFlag{
		Name:     "out",
		Aliases:  []string{"o"},
		Value:    "",
		Usage:    "path of a JSON report file. its directory will be created if does not exist",
		Required: false,
	},
	&cli.BoolFlag{
		Name:     "verbose",
		Aliases:  []string{"vv"},
		Value:    false,
		Usage:    "verbose logging, including the list contents around every step",
		Required: false,
	},
	&cli.IntFlag{
		Name:     "parallelism",
		Aliases:  []string{"p"},
		Value:    2,
		Usage:    "number of suites to run concurrently",
		Required: false,
	},
}

type Options struct {
	TypePatterns   []string
	Suites         []string
	OutputPath     string
	VerboseLogging bool
	Parallelism    int
}

func splitListFlag(flag string) []string {
	if len(flag) == 0 {
		return []string{}
	}
	parts := strings.Split(flag, ",")
	patterns := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if len(part) > 0 {
			patterns = append(patterns, part)
		}
	}
	return patterns
}

func validateDirectory(dirPath string, createIfNotExist bool) error {
	info, err := os.Stat(dirPath)
	if os.IsNotExist(err) {
		if !createIfNotExist {
			return fmt.Errorf("directory does not exist at %v", dirPath)
		}
		err = os.MkdirAll(dirPath, 0777)
		if err != nil {
			return fmt.Errorf("failed to create directory at %v: %w", dirPath, err)
		}
		return nil
	}
	if err != nil {
		return fmt.Errorf("directory error at %v: %w", dirPath, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("directory is actually a file at %v", dirPath)
	}
	return nil
}

// MatchSuites returns the registered element types matching any of patterns, in sorted order.
func MatchSuites(patterns []string) ([]string, error) {
	globs := make([]glob.Glob, len(patterns))
	for i, pattern := range patterns {
		compiled, err := glob.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("failed to compile type pattern '%v': %w", pattern, err)
		}
		globs[i] = compiled
	}

	var matched []string
	for _, name := range scenario.SuiteNames() {
		for _, g := range globs {
			if g.Match(name) {
				matched = append(matched, name)
				break
			}
		}
	}
	return matched, nil
}

func ParseOptions(c *cli.Context) (*Options, error) {
	opts := &Options{
		TypePatterns:   splitListFlag(c.String("types")),
		OutputPath:     c.String("out"),
		VerboseLogging: c.Bool("verbose"),
		Parallelism:    c.Int("parallelism"),
	}

	if opts.Parallelism < 1 {
		opts.Parallelism = 1
	}

	suites, err := MatchSuites(opts.TypePatterns)
	if err != nil {
		return nil, &util.ErrorWithCode{
			StatusCode:    util.ERROR_BAD_TYPE_PATTERNS,
			InternalError: err,
		}
	}
	if len(suites) == 0 {
		return nil, &util.ErrorWithCode{
			StatusCode: util.ERROR_NO_SUITES,
			InternalError: fmt.Errorf("no element type matches '%v', known types are: %v",
				strings.Join(opts.TypePatterns, ","), strings.Join(scenario.SuiteNames(), ", ")),
		}
	}
	opts.Suites = suites

	if len(opts.OutputPath) > 0 {
		err = validateDirectory(filepath.Dir(opts.OutputPath), true)
		if err != nil {
			return nil, &util.ErrorWithCode{
				StatusCode:    util.ERROR_BAD_OUTPUT_PATH,
				InternalError: err,
			}
		}
	}

	return opts, nil
}
