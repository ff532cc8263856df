package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"quizgen/internal/config"
	"quizgen/internal/logging"
	"quizgen/internal/question"
	"quizgen/internal/session"
	"quizgen/internal/shuffle"
	"quizgen/internal/ui/quiz"
)

// takeSetup bundles what a quiz attempt needs, built from config.
type takeSetup struct {
	cfg      config.Config
	shuffler *shuffle.Randomizer
	parser   *question.Parser
	reducer  session.Reducer
}

func newTakeSetup(cfg config.Config) takeSetup {
	shuffler := shuffle.FromSeed(cfg.Seed)
	parser := question.NewParser(shuffler, cfg.AnswerKeyLabels...)
	return takeSetup{
		cfg:      cfg,
		shuffler: shuffler,
		parser:   parser,
		reducer:  session.NewReducer(parser, cfg.Seconds()),
	}
}

// runTake builds the handler for the take command.
func runTake(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		flags.SetOutput(stderr)
		configPath := flags.String("config", "", "Path to config file (default: search for "+config.FileName+")")
		uiMode := flags.String("ui", "", "UI mode: auto|live|plain (default: from config)")
		seed := flags.Int64("seed", 0, "Shuffle seed (0 picks a random order)")
		seconds := flags.Int("seconds", 0, "Seconds per question (0 disables the timer)")
		noColor := flags.Bool("no-color", false, "Disable colored output")
		logPath := flags.String("log", "", "Write a JSON log to this file")
		if err := flags.Parse(reorderArgs(args)); err != nil {
			if err == flag.ErrHelp {
				printCommandUsage(cmd, stdout)
				return ExitOK
			}
			fmt.Fprintf(stderr, "invalid arguments: %v\n", err)
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}
		if flags.NArg() > 1 {
			fmt.Fprintf(stderr, "unexpected arguments: %s\n", strings.Join(flags.Args()[1:], " "))
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}

		cfg, usedConfig, err := loadConfig(*configPath)
		if err != nil {
			fmt.Fprintf(stderr, "Config error:\n%v\n", err)
			return ExitError
		}
		flags.Visit(func(f *flag.Flag) {
			switch f.Name {
			case "ui":
				cfg.UI = strings.ToLower(strings.TrimSpace(*uiMode))
			case "seed":
				cfg.Seed = *seed
			case "seconds":
				value := *seconds
				cfg.SecondsPerQuestion = &value
			case "no-color":
				cfg.NoColor = *noColor
			case "log":
				cfg.LogFile = strings.TrimSpace(*logPath)
			}
		})
		if err := config.Validate(&cfg); err != nil {
			fmt.Fprintf(stderr, "invalid arguments:\n%v\n", err)
			return ExitUsage
		}

		in := quizInput
		if in == nil {
			in = os.Stdin
		}
		decision, err := resolveUIMode(cfg.UI, in, stdout)
		if err != nil {
			fmt.Fprintf(stderr, "invalid arguments: %v\n", err)
			return ExitUsage
		}
		if decision.warning != "" {
			fmt.Fprintln(stderr, decision.warning)
		}

		logger, err := logging.Open(cfg.LogFile, cfg.LogLevel)
		if err != nil {
			fmt.Fprintf(stderr, "Take failed: %v\n", err)
			return ExitError
		}
		defer logger.Close()
		mode := config.UIPlain
		if decision.useLive {
			mode = config.UILive
		}
		logger.Info("quiz starting",
			"config", usedConfig,
			"ui", mode,
			"seconds_per_question", cfg.Seconds(),
			"seed", cfg.Seed,
		)

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		setup := newTakeSetup(cfg)
		// "-" keeps stdin for answers; the questions are pasted up to "---".
		hasSource := flags.NArg() == 1 && flags.Arg(0) != "-"
		var source quizSource
		if hasSource {
			source, err = readSource(ctx, flags.Arg(0), setup.shuffler)
			if err != nil {
				logger.Error("load failed", "path", flags.Arg(0), "error", err)
				fmt.Fprintf(stderr, "Take failed: %v\n", err)
				return ExitError
			}
		}

		if decision.useLive {
			return runLive(ctx, setup, source, logger, stdout, stderr)
		}
		state, err := runPlain(ctx, plainOptions{
			In:        in,
			Out:       stdout,
			Reducer:   setup.reducer,
			Logger:    logger.With("ui", config.UIPlain),
			Source:    source,
			HasSource: hasSource,
		})
		if err != nil {
			fmt.Fprintf(stderr, "Take failed: %v\n", err)
			return ExitError
		}
		logger.Info("quiz finished", "session_id", state.ID, "score", session.FormatScore(state))
		return ExitOK
	}
}

// runLive runs the Bubble Tea quiz screen and prints the final score.
func runLive(ctx context.Context, setup takeSetup, source quizSource, logger *logging.Logger, stdout, stderr io.Writer) int {
	model := quiz.NewModel(quiz.Options{
		Context:   ctx,
		Reducer:   setup.reducer,
		Shuffler:  setup.shuffler,
		Logger:    logger.With("ui", config.UILive),
		NoColor:   setup.cfg.NoColor,
		Text:      source.Text,
		Start:     source.Path != "" && !source.Spec,
		Questions: source.Questions,
	})
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithOutput(stdout))
	final, err := program.Run()
	if err != nil {
		fmt.Fprintf(stderr, "Take failed: %v\n", err)
		return ExitError
	}
	if finished, ok := final.(quiz.Model); ok {
		if state := finished.State(); state.Status == session.StatusSubmitted {
			fmt.Fprintf(stdout, "Score: %s\n", session.FormatScore(state))
		}
	}
	return ExitOK
}

// reorderArgs moves flags ahead of positional arguments so that
// "take exam.docx --seed 3" parses like "take --seed 3 exam.docx".
func reorderArgs(args []string) []string {
	var flagArgs, positional []string
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			positional = append(positional, args[i+1:]...)
			break
		}
		if !strings.HasPrefix(arg, "-") || arg == "-" {
			positional = append(positional, arg)
			continue
		}
		flagArgs = append(flagArgs, arg)
		if !strings.Contains(arg, "=") && flagTakesValue(arg) && i+1 < len(args) {
			i++
			flagArgs = append(flagArgs, args[i])
		}
	}
	if len(positional) == 0 {
		return flagArgs
	}
	return append(append(flagArgs, "--"), positional...)
}

// flagTakesValue reports whether a flag consumes the following argument.
func flagTakesValue(arg string) bool {
	switch strings.TrimLeft(arg, "-") {
	case "no-color", "yes", "h", "help":
		return false
	}
	return true
}
