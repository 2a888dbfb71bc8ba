// Command expense-tracker tracks personal expenses against monthly budgets.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/AhmedHeshamC/expenseTracker/cmd"
	"github.com/AhmedHeshamC/expenseTracker/docs"
	"github.com/google/subcommands"
	"github.com/joho/godotenv"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	// .env values become visible to the configuration layer.
	_ = godotenv.Load()

	// In a shell completion invocation this prints the candidates and exits.
	completion().Complete("expense-tracker")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	zerolog.SetGlobalLevel(zerolog.WarnLevel)
	if *cmd.Verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	// A verb that matches no built-in command is tried as an external
	// expense-tracker-<verb> program on PATH.
	if args := flag.Args(); len(args) > 0 && !isBuiltin(commander, args[0]) {
		if found, code := cmd.RunExtension(args[0], args[1:]); found {
			os.Exit(code)
		}
	}

	os.Exit(int(commander.Execute(context.Background())))
}

func isBuiltin(commander *subcommands.Commander, name string) bool {
	found := false
	commander.VisitCommands(func(_ *subcommands.CommandGroup, c subcommands.Command) {
		if c.Name() == name {
			found = true
		}
	})
	return found
}

// completion describes the verbs and flags for bash/zsh/fish completion.
func completion() *complete.Command {
	topics, _ := docs.GetAllTopics()

	category := predict.Something
	month := predict.Set{"1", "2", "3", "4", "5", "6", "7", "8", "9", "10", "11", "12"}

	return &complete.Command{
		Sub: map[string]*complete.Command{
			"add": {Flags: map[string]complete.Predictor{
				"d": predict.Something, "description": predict.Something,
				"a": predict.Something, "amount": predict.Something,
				"c": category, "category": category,
			}},
			"list": {Flags: map[string]complete.Predictor{
				"c": category, "category": category,
			}},
			"update": {Flags: map[string]complete.Predictor{
				"i": predict.Something, "id": predict.Something,
				"d": predict.Something, "description": predict.Something,
				"a": predict.Something, "amount": predict.Something,
				"c": category, "category": category,
			}},
			"delete": {Flags: map[string]complete.Predictor{
				"i": predict.Something, "id": predict.Something,
			}},
			"set-budget": {Flags: map[string]complete.Predictor{
				"m": month, "month": month,
				"a": predict.Something, "amount": predict.Something,
			}},
			"summary": {Flags: map[string]complete.Predictor{
				"m": month, "month": month,
				"c": category, "category": category,
				"g": predict.Nothing, "by-category": predict.Nothing,
			}},
			"export": {Flags: map[string]complete.Predictor{
				"f": predict.Files("*.csv"), "file": predict.Files("*.csv"),
			}},
			"import": {Flags: map[string]complete.Predictor{
				"f": predict.Files("*.csv"), "file": predict.Files("*.csv"),
			}},
			"fmt":   {},
			"topic": {Args: predict.Set(topics)},
		},
		Flags: map[string]complete.Predictor{
			"expenses": predict.Files("*.json"),
			"budgets":  predict.Files("*.json"),
			"config":   predict.Files("*.toml"),
			"v":        predict.Nothing,
		},
	}
}
