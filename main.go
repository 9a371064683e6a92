package main

import (
	"log"
	"os"
	"ownlist/options"
	"ownlist/runner"
	"ownlist/util"

	"github.com/urfave/cli/v2"
)

const VERSION = "1.0.0"

func main() {
	cli.AppHelpTemplate =
		`NAME:
   ownlist - 1.0.0 - Run the linked list smoke scenario against one or more element types.

USAGE:
   ownlist [optional flags]

OPTIONS:
   --types value, -t value        patterns of element types to test, comma delimited, may contain any glob pattern (default: "*")
   --out value, -o value          path of a JSON report file. its directory will be created if does not exist
   --verbose, --vv                verbose logging, including the list contents around every step (default: false)
   --parallelism value, -p value  number of suites to run concurrently (default: 2)
   --help, -h                     show help (default: false)
   --version, -v                  print the version (default: false)

ELEMENT TYPES:
   int, int64, float32, float64

EXIT CODES:
  0    Success
  201  Element type patterns are invalid
  202  No element type matches the patterns
  203  Report output path is invalid
  204  Report could not be written
  210  One or more scenario steps failed
  1    Any other error
`

	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stdout)
	app := &cli.App{
		Name:    "ownlist",
		Usage:   "Run the linked list smoke scenario against one or more element types.",
		Flags:   options.Flags,
		Version: VERSION,
		Action: func(ctx *cli.Context) error {
			opts, err := options.ParseOptions(ctx)
			if err != nil {
				return err
			}
			err = runner.Run(opts)
			if err == nil {
				log.Printf("Completed successfully for %v", opts.Suites)
			}
			return err
		},
	}

	err := app.Run(os.Args)
	if err != nil {
		log.Printf("failed: %v", err)
		if errorWithCode, isWithCode := err.(*util.ErrorWithCode); isWithCode {
			os.Exit(errorWithCode.StatusCode)
		}
		os.Exit(1)
	}
}
