package config

import (
	"flag"
	"fmt"
)

// ParseFlags parses the command-line flags in args (without the program name).
//
// Flags:
//
//	-e/-env-file dotenv file loaded before assembly
//	-o/-output   destination of the exported settings, "-" for stdout
//	-strict      fail when validation reports problems
//	-log-level   minimal log level (debug, info, warn, error)
//	-c/-config   json file path with configs
func ParseFlags(args []string) (*StructuredConfig, error) {
	var envFile string
	var output string
	var strict bool
	var logLevel string
	var jsonConfigPath string

	fs := flag.NewFlagSet("toolconfig", flag.ContinueOnError)
	fs.StringVar(&envFile, "e", "", "Dotenv file path")
	fs.StringVar(&envFile, "env-file", "", "Dotenv file path (alias)")
	fs.StringVar(&output, "o", "", "Output file path, - for stdout")
	fs.StringVar(&output, "output", "", "Output file path, - for stdout (alias)")
	fs.BoolVar(&strict, "strict", false, "Fail on validation problems")
	fs.StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("%w: %v", ErrUnexpectedArguments, fs.Args())
	}

	return &StructuredConfig{
		App: App{
			EnvFile:  envFile,
			Output:   output,
			Strict:   strict,
			LogLevel: logLevel,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}
