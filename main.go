package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v2"

	"github.com/tiggercwh/stone-paper-scissors/app"
	"github.com/tiggercwh/stone-paper-scissors/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		cli.HandleExitCoder(cli.Exit(fmt.Sprintf("Error: %v", err), 1))
	}

	if err := newApp(&cfg, os.Stdin, os.Stdout, os.Stderr).Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

// newApp binds command-line flags on top of the env-derived cfg and plays on
// the given streams.
func newApp(cfg *config.Config, in io.Reader, out, errOut io.Writer) *cli.App {
	return &cli.App{
		Name:  "sps",
		Usage: "play a best-of series of Stone, Paper, Scissors against the computer",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "banner",
				Usage:       "banner utility used for the final result",
				Value:       cfg.BannerCmd,
				Destination: &cfg.BannerCmd,
			},
			&cli.IntFlag{
				Name:        "width",
				Usage:       "width passed to the banner utility",
				Value:       cfg.BannerWidth,
				Destination: &cfg.BannerWidth,
			},
			&cli.IntFlag{
				Name:        "attempts",
				Usage:       "invalid move entries allowed per round",
				Value:       cfg.MaxAttempts,
				Destination: &cfg.MaxAttempts,
			},
			&cli.BoolFlag{
				Name:        "no-delay",
				Usage:       "print without pacing delays",
				Value:       cfg.NoDelay,
				Destination: &cfg.NoDelay,
			},
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "debug, info, warn or error",
				Value:       cfg.LogLevel,
				Destination: &cfg.LogLevel,
			},
		},
		Action: func(c *cli.Context) error {
			if err := cfg.Validate(); err != nil {
				return cli.Exit(fmt.Sprintf("Error: %v", err), 1)
			}

			ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
			defer stop()

			// Game already printed its own diagnostic.
			if err := app.Run(ctx, *cfg, in, out, errOut); err != nil {
				return cli.Exit("", 1)
			}
			return nil
		},
	}
}
