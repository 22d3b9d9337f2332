package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"nyxventure/internal/script"
	"nyxventure/internal/session"
	"nyxventure/pkg/types"
)

// Output modes of the run command.
const (
	outputTree    = "tree"
	outputResults = "results"
	outputEvents  = "events"
)

type runReport struct {
	Script  string           `json:"script"`
	Results []types.OpResult `json:"results"`
}

func newRunCmd(opts *Options) *cobra.Command {
	var (
		output string
		title  string
	)
	cmd := &cobra.Command{
		Use:     "run <script>...",
		Short:   "Apply edit scripts to a fresh game and print the outcome as JSON",
		Example: "  nyxd run scripts/opening.yaml\n  nyxd run --output events a.toml b.json",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch output {
			case outputTree, outputResults, outputEvents:
			default:
				return fmt.Errorf("unknown output %q: want tree|results|events", output)
			}
			cfg, err := opts.resolve()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("title") {
				cfg.Title = title
			}
			log, err := cfg.NewLogger(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			scripts := make([]script.Script, 0, len(args))
			for _, path := range args {
				s, err := script.Load(path)
				if err != nil {
					return err
				}
				scripts = append(scripts, s)
			}

			sess := session.New(session.Config{
				Title:       cfg.Title,
				JournalSize: cfg.JournalSize,
				Logger:      &log,
			})
			var reports []runReport
			var events []types.Event
			for _, s := range scripts {
				results, err := sess.ApplyAll(s.Ops)
				if err != nil {
					return fmt.Errorf("script %s: %w", s.Name, err)
				}
				reports = append(reports, runReport{Script: s.Name, Results: results})
				for _, r := range results {
					events = append(events, r.Events...)
				}
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			switch output {
			case outputResults:
				return enc.Encode(reports)
			case outputEvents:
				if events == nil {
					events = []types.Event{}
				}
				return enc.Encode(events)
			}
			return enc.Encode(sess.Tree())
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", outputTree, "Output: tree|results|events")
	cmd.Flags().StringVar(&title, "title", "", "Title of the new game")
	return cmd
}
