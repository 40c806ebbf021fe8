package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/framefold/timecraft/internal/config"
	"github.com/framefold/timecraft/internal/timeline/snap"
)

func newDragCommand(loadConfig func() (config.Config, error)) *cobra.Command {
	var (
		clipID   string
		kindName string
		delta    float64
		playhead float64
		track    int
	)

	cmd := &cobra.Command{
		Use:   "drag <timeline.json>",
		Short: "Resolve a simulated drag against a timeline and print the candidate placement",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			project, err := loadProject(args[0])
			if err != nil {
				return err
			}

			var kind snap.Kind
			switch kindName {
			case "move":
				kind = snap.Move
			case "resize-start":
				kind = snap.ResizeStart
			case "resize-end":
				kind = snap.ResizeEnd
			default:
				return fmt.Errorf("unknown drag kind %q (want move, resize-start, or resize-end)", kindName)
			}

			var drag snap.Drag
			found := false
			for _, c := range project.Clips {
				if c.ID == clipID {
					drag = snap.Begin(kind, c)
					found = true
					break
				}
			}
			if !found {
				return fmt.Errorf("no clip with id %s", clipID)
			}

			hover := drag.Track
			if cmd.Flags().Changed("track") {
				hover = track
			}

			cand := drag.Resolve(delta, snap.Context{
				Clips:           project.Clips,
				Playhead:        playhead,
				PixelsPerSecond: cfg.Snap.PixelsPerSecond,
				ThresholdPx:     cfg.Snap.ThresholdPx,
				Enabled:         cfg.Snap.Enabled,
				HoverTrack:      hover,
			})

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "start: %.3fs  duration: %.3fs  track: %d\n", cand.StartTime, cand.Duration, cand.Track)
			if cand.SnappedStart {
				fmt.Fprintln(out, "snapped: start edge")
			}
			if cand.SnappedEnd {
				fmt.Fprintln(out, "snapped: end edge")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&clipID, "clip", "", "Id of the clip to drag")
	cmd.Flags().StringVar(&kindName, "kind", "move", "Drag kind: move, resize-start, or resize-end")
	cmd.Flags().Float64Var(&delta, "delta", 0, "Drag delta in seconds")
	cmd.Flags().Float64Var(&playhead, "playhead", 0, "Playhead position in seconds")
	cmd.Flags().IntVar(&track, "track", 0, "Track the pointer hovers (move drags only)")
	_ = cmd.MarkFlagRequired("clip")

	return cmd
}
