package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/counterbuddy/internal/counter"
)

type runOptions struct {
	Format string
}

// action is one scripted command applied to a session.
type action struct {
	name  string
	apply func(s *counter.Session) bool
}

func newRunCmd(root *rootFlags) *cobra.Command {
	opts := runOptions{}

	cmd := &cobra.Command{
		Use:   "run ACTION...",
		Short: "Replay counter actions without the interactive UI",
		Long: `Replay counter actions against a fresh counter and print the result.

Actions:
  inc, dec, reset           change the count
  step=N, upper=N, lower=N  change settings (N is parsed like a form field)
  negative, dark            toggle allow-negative and dark mode
  info, history, share      print the corresponding message`,
		Example: "  counterbuddy run inc inc dec\n  counterbuddy run step=5 inc history --format yaml",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateRunOptions(opts); err != nil {
				return err
			}

			actions, err := parseActions(args)
			if err != nil {
				return err
			}

			state, log, closeLog, err := prepareSession(root)
			if err != nil {
				return err
			}
			defer closeLog()

			out := cmd.OutOrStdout()
			session := counter.NewSession(state, counter.NotifierFunc(func(msg string) {
				fmt.Fprintln(out, msg)
			}))

			for _, a := range actions {
				applied := a.apply(session)
				log.WithFields(map[string]any{
					"action":  a.name,
					"applied": applied,
					"count":   state.Count(),
				}).Debug("counter command")
			}

			return writeResult(out, opts.Format, state)
		},
	}

	cmd.Flags().StringVarP(&opts.Format, "format", "f", "text", "Output format: text or yaml")

	return cmd
}

func validateRunOptions(opts runOptions) error {
	switch opts.Format {
	case "text", "yaml":
		return nil
	default:
		return fmt.Errorf("unsupported format %q (want text or yaml)", opts.Format)
	}
}

func parseActions(args []string) ([]action, error) {
	actions := make([]action, 0, len(args))
	for _, arg := range args {
		a, err := parseAction(arg)
		if err != nil {
			return nil, err
		}
		actions = append(actions, a)
	}
	return actions, nil
}

func parseAction(arg string) (action, error) {
	name, value, hasValue := strings.Cut(strings.TrimSpace(arg), "=")
	name = strings.ToLower(name)

	if hasValue {
		var set func(*counter.State, string)
		switch name {
		case "step":
			set = (*counter.State).SetStepText
		case "upper":
			set = (*counter.State).SetUpperLimitText
		case "lower":
			set = (*counter.State).SetLowerLimitText
		default:
			return action{}, fmt.Errorf("unknown action %q", arg)
		}
		return action{name: name, apply: func(s *counter.Session) bool {
			set(s.State(), value)
			return true
		}}, nil
	}

	always := func(f func(*counter.Session)) func(*counter.Session) bool {
		return func(s *counter.Session) bool {
			f(s)
			return true
		}
	}

	switch name {
	case "inc", "increment":
		return action{name: "increment", apply: func(s *counter.Session) bool { return s.State().Increment() }}, nil
	case "dec", "decrement":
		return action{name: "decrement", apply: func(s *counter.Session) bool { return s.State().Decrement() }}, nil
	case "reset":
		return action{name: "reset", apply: always(func(s *counter.Session) { s.State().Reset() })}, nil
	case "negative":
		return action{name: "toggle_allow_negative", apply: always(func(s *counter.Session) { s.State().ToggleAllowNegative() })}, nil
	case "dark":
		return action{name: "toggle_dark_mode", apply: always(func(s *counter.Session) { s.State().ToggleDarkMode() })}, nil
	case "info":
		return action{name: "info", apply: always((*counter.Session).ShowInfo)}, nil
	case "history":
		return action{name: "history", apply: always((*counter.Session).ShowHistory)}, nil
	case "share":
		return action{name: "share", apply: always((*counter.Session).ShareCount)}, nil
	default:
		return action{}, fmt.Errorf("unknown action %q", arg)
	}
}

func writeResult(w io.Writer, format string, state *counter.State) error {
	snap := state.Snapshot()

	if format == "yaml" {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(snap); err != nil {
			return fmt.Errorf("encode result: %w", err)
		}
		return enc.Close()
	}

	fmt.Fprintf(w, "count: %d (%s)\n", snap.Count, snap.Category)
	fmt.Fprintf(w, "step: %d, limits: [%d, %d], allow negative: %t\n", snap.Step, snap.LowerLimit, snap.UpperLimit, snap.AllowNegative)
	fmt.Fprintln(w, state.HistoryText())
	return nil
}
