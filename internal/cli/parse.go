package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"quizgen/internal/config"
	"quizgen/internal/question"
)

// runParse builds the handler for the parse command.
func runParse(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		flags.SetOutput(stderr)
		configPath := flags.String("config", "", "Path to config file (default: search for "+config.FileName+")")
		format := flags.String("format", question.FormatYAML, "Output format: yaml|json")
		seed := flags.Int64("seed", 0, "Shuffle seed (0 picks a random order)")
		if err := flags.Parse(reorderArgs(args)); err != nil {
			if err == flag.ErrHelp {
				printCommandUsage(cmd, stdout)
				return ExitOK
			}
			fmt.Fprintf(stderr, "invalid arguments: %v\n", err)
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}
		if flags.NArg() != 1 {
			fmt.Fprintln(stderr, "expected exactly one input file (use - for stdin)")
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}
		switch strings.ToLower(*format) {
		case question.FormatYAML, question.FormatJSON:
		default:
			fmt.Fprintf(stderr, "invalid arguments: unsupported format %q (expected yaml|json)\n", *format)
			return ExitUsage
		}

		cfg, _, err := loadConfig(*configPath)
		if err != nil {
			fmt.Fprintf(stderr, "Config error:\n%v\n", err)
			return ExitError
		}
		flags.Visit(func(f *flag.Flag) {
			if f.Name == "seed" {
				cfg.Seed = *seed
			}
		})

		setup := newTakeSetup(cfg)
		source, err := readSource(context.Background(), flags.Arg(0), setup.shuffler)
		if err != nil {
			fmt.Fprintf(stderr, "Parse failed: %v\n", err)
			return ExitError
		}

		questions := source.Questions
		if !source.Spec {
			result := setup.parser.ParseDetailed(source.Text)
			questions = result.Questions
			for _, skipped := range result.Skipped {
				fmt.Fprintf(stderr, "skipped block %d: %s\n", skipped.Block+1, skipped.Reason)
			}
		}
		if err := question.WriteSpec(stdout, question.ExportSpec(questions), *format); err != nil {
			fmt.Fprintf(stderr, "Parse failed: %v\n", err)
			return ExitError
		}
		return ExitOK
	}
}
