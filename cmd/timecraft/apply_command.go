package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/framefold/timecraft/internal/config"
	"github.com/framefold/timecraft/internal/dispatch"
	"github.com/framefold/timecraft/internal/logging"
	"github.com/framefold/timecraft/internal/timeline/store"
)

func newApplyCommand(loadConfig func() (config.Config, error)) *cobra.Command {
	var undoSteps int

	cmd := &cobra.Command{
		Use:   "apply <timeline.json> <calls.jsonl>",
		Short: "Apply a stream of tool calls to a timeline and verify the result",
		Long: `Apply reads newline-delimited tool calls, each a JSON object of the
form {"name": "move_clip", "args": {"clipId": "...", "startTime": 2}},
executes them as one agent turn against the loaded timeline, and prints
per-call results followed by the structural verification report.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			logger := logging.New(cmd.ErrOrStderr(), cfg.Logging.Level)

			project, err := loadProject(args[0])
			if err != nil {
				return err
			}
			calls, err := loadCalls(args[1])
			if err != nil {
				return err
			}

			st := store.New(store.WithHistoryLimit(cfg.History.MaxEntries))
			st.SetClips(project.Clips)
			for _, t := range project.Transitions {
				st.AddTransition(t)
			}

			d := dispatch.New(st, dispatch.WithLogger(logging.WithComponent(logger, "dispatch")))
			results, report := d.Turn(calls)

			out := cmd.OutOrStdout()
			for _, res := range results {
				fmt.Fprintln(out, res.JSON())
			}

			for i := 0; i < undoSteps; i++ {
				if err := st.Undo(); err != nil {
					logger.Warn("undo exhausted", "requested", undoSteps, "applied", i)
					break
				}
			}

			fmt.Fprintln(out, renderClipTable(st.Clips()))
			printReport(cmd, report)

			if !report.Passed {
				return fmt.Errorf("timeline has %d structural issue(s)", len(report.Issues))
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&undoSteps, "undo", 0, "Undo this many steps after applying")
	return cmd
}

// loadCalls reads one JSON tool call per non-empty line.
func loadCalls(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("read calls %s: %w", path, err)
	}
	defer f.Close()

	var calls []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		calls = append(calls, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read calls %s: %w", path, err)
	}
	return calls, nil
}
