package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

type rootFlags struct {
	verbose    bool
	configPath string
	dark       bool
}

// isTerminal is swapped in tests.
var isTerminal = func() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

var errNotTerminal = errors.New("stdout is not a terminal; use `counterbuddy run` to replay actions non-interactively")

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "counterbuddy",
		Short:         "Counter Buddy is an interactive counter with limits, step size and history",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !isTerminal() {
				return errNotTerminal
			}

			state, log, closeLog, err := prepareSession(flags)
			if err != nil {
				return err
			}
			defer closeLog()

			if err := interactiveRunner(state, log); err != nil {
				log.Error(err, "interactive session failed")
				return fmt.Errorf("run counter: %w", err)
			}
			log.Info("session closed")
			return nil
		},
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Write debug logs to "+defaultLogPath())
	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "Path to a YAML settings file")
	cmd.PersistentFlags().BoolVar(&flags.dark, "dark", false, "Start in dark mode")

	cmd.AddCommand(newRunCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
