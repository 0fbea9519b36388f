package main

import (
	"context"
	"flag"
	"io"
	"os"
	"os/signal"
	"syscall"

	"racingcar/internal/config"
	"racingcar/internal/console"
	"racingcar/internal/game"
	"racingcar/internal/i18n"
	"racingcar/internal/logging"
	"racingcar/internal/record"
	"racingcar/internal/util"
)

func main() {
	var cfgPath, out, locale string
	var seed int64
	var verbose bool
	flag.StringVar(&cfgPath, "config", "", "YAML config file (optional)")
	flag.Int64Var(&seed, "seed", 0, "random seed (0 = random)")
	flag.StringVar(&out, "out", "", "write the race result JSON to this file")
	flag.StringVar(&locale, "locale", "", "output language (ko, en)")
	flag.BoolVar(&verbose, "log", false, "write JSON log lines to stderr")
	flag.Parse()

	cfg, err := config.Load(cfgPath)
	if err != nil {
		logging.Fatal("load config", err, nil)
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "seed":
			cfg.Seed = seed
		case "out":
			cfg.Out = out
		case "locale":
			cfg.Locale = locale
		case "log":
			cfg.Log = verbose
		}
	})
	if cfg.Log {
		logging.Enable(os.Stderr)
	}

	if cfg.Seed == 0 {
		if cfg.Seed, err = util.NewSeed(); err != nil {
			logging.Fatal("seed rng", err, nil)
		}
	}
	logging.Info("config loaded", logging.Fields{"seed": cfg.Seed, "locale": cfg.Locale})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, os.Stdin, os.Stdout); err != nil {
		stop()
		logging.Fatal("race aborted", err, logging.Fields{"seed": cfg.Seed})
	}
}

// run plays one race on in/out and writes the result file when cfg.Out is set.
func run(ctx context.Context, cfg config.Config, in io.Reader, out io.Writer) error {
	rec := record.NewRecorder(cfg.Seed)
	sim, err := game.NewSimulator(
		console.NewPrompter(in, out),
		console.NewPrinter(out),
		game.WithRng(util.New(cfg.Seed)),
		game.WithPrinter(i18n.NewPrinter(cfg.Locale)),
		game.WithRecorder(rec),
	)
	if err != nil {
		return err
	}
	if err := sim.StartGame(ctx); err != nil {
		return err
	}

	if cfg.Out != "" {
		if err := rec.Save(cfg.Out); err != nil {
			return err
		}
	}
	return nil
}
