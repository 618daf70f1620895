// Command bigcalc does exact integer arithmetic from the command line.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/zeebo/errs"

	"github.com/calebcase/bigint/internal/config"
)

// Error is the error class for this command.
var Error = errs.Class("bigcalc")

type app struct {
	configPath string
	color      string

	cfg config.Config
	out *printer
}

func defaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}

	return filepath.Join(dir, "bigcalc", "config.toml")
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "bigcalc",
		Short: "Exact arithmetic on integers of any size",
		Long: `bigcalc evaluates integer arithmetic exactly, with no limit on the
number of digits. Single operations are subcommands; eval runs reverse
Polish notation programs.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) (err error) {
			a.cfg, err = config.Load(a.configPath)
			if err != nil {
				return err
			}

			if a.color != "" {
				a.cfg.Color = a.color

				err = a.cfg.Validate()
				if err != nil {
					return err
				}
			}

			a.out = newPrinter(cmd.OutOrStdout(), cmd.ErrOrStderr(), a.cfg.Color)

			return nil
		},
	}

	root.PersistentFlags().StringVar(&a.configPath, "config", defaultConfigPath(), "configuration file")
	root.PersistentFlags().StringVar(&a.color, "color", "", "colorize output (auto|on|off)")

	for _, op := range ops {
		root.AddCommand(newOpCmd(a, op))
	}

	root.AddCommand(newEvalCmd(a))

	return root
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("bigcalc: ")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := newRootCmd().ExecuteContext(ctx)
	if err != nil {
		stop()
		log.Print(err)
		os.Exit(1)
	}
}
