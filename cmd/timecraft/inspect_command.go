package main

import (
	"fmt"
	"sort"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"

	"github.com/framefold/timecraft/internal/config"
	"github.com/framefold/timecraft/internal/timeline"
	"github.com/framefold/timecraft/internal/timeline/verify"
)

func newInspectCommand(loadConfig func() (config.Config, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <timeline.json>",
		Short: "Print the clips and transitions of a timeline and verify its structure",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := loadConfig(); err != nil {
				return err
			}
			project, err := loadProject(args[0])
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), renderClipTable(project.Clips))
			if len(project.Transitions) > 0 {
				fmt.Fprintln(cmd.OutOrStdout(), renderTransitionTable(project.Transitions))
			}

			report := verify.Run(nil, project.Clips)
			printReport(cmd, report)
			return nil
		},
	}
}

func renderClipTable(clips []timeline.Clip) string {
	sorted := timeline.CloneClips(clips)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Track != sorted[j].Track {
			return sorted[i].Track > sorted[j].Track
		}
		return sorted[i].StartTime < sorted[j].StartTime
	})

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"TRACK", "KIND", "ID", "START", "END", "DURATION", "SPEED"})
	for _, c := range sorted {
		tw.AppendRow(table.Row{
			c.Track,
			string(c.Kind),
			shortID(c.ID),
			fmt.Sprintf("%.2fs", c.StartTime),
			fmt.Sprintf("%.2fs", c.End()),
			fmt.Sprintf("%.2fs", c.Duration),
			fmt.Sprintf("%.2fx", c.Speed),
		})
	}
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight},
		{Number: 4, Align: text.AlignRight},
		{Number: 5, Align: text.AlignRight},
		{Number: 6, Align: text.AlignRight},
		{Number: 7, Align: text.AlignRight},
	})
	return tw.Render()
}

func renderTransitionTable(transitions []timeline.Transition) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"TYPE", "TRACK", "START", "DURATION", "FROM", "TO"})
	for _, t := range transitions {
		tw.AppendRow(table.Row{
			string(t.Type),
			t.Track,
			fmt.Sprintf("%.2fs", t.StartTime),
			fmt.Sprintf("%.2fs", t.Duration),
			shortID(t.FromClipID),
			shortID(t.ToClipID),
		})
	}
	return tw.Render()
}

func printReport(cmd *cobra.Command, report verify.Report) {
	out := cmd.OutOrStdout()
	if report.Passed {
		fmt.Fprintln(out, "structure: ok")
		return
	}
	fmt.Fprintf(out, "structure: %d issue(s)\n", len(report.Issues))
	for i, issue := range report.Issues {
		fmt.Fprintf(out, "  - %s\n", issue)
		if i < len(report.RemediationHints) {
			fmt.Fprintf(out, "    hint: %s\n", report.RemediationHints[i])
		}
	}
}

// shortID abbreviates UUIDs for table display.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
