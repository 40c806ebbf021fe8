package verify

import (
	"fmt"
	"math"
	"sort"

	"github.com/framefold/timecraft/internal/timeline"
)

// tailTolerance is how far audio may outrun the last visual clip, and
// how much adjacent audio clips may overlap, before either is reported.
const tailTolerance = 0.5

// clipLabel names a clip for issue text. Text clips read better by
// content, everything else by id.
func clipLabel(c timeline.Clip) string {
	if c.Kind == timeline.ClipText && c.Text != "" {
		return fmt.Sprintf("%s clip %q", c.Kind, c.Text)
	}
	return fmt.Sprintf("%s clip %s", c.Kind, c.ID)
}

// checkMinimumDuration flags clips at or below the minimum duration.
func checkMinimumDuration(_, after []timeline.Clip) []CheckResult {
	var results []CheckResult
	for _, c := range after {
		if c.Duration <= timeline.MinClipDuration {
			results = append(results, CheckResult{
				Issue: fmt.Sprintf("%s has a duration of %.2fs, at or below the %.1fs minimum",
					clipLabel(c), c.Duration, timeline.MinClipDuration),
				Hint: fmt.Sprintf("Extend %s to a duration above %.1fs or remove it.",
					clipLabel(c), timeline.MinClipDuration),
			})
		}
	}
	return results
}

// checkValidStartTime flags clips whose start time is not a number.
func checkValidStartTime(_, after []timeline.Clip) []CheckResult {
	var results []CheckResult
	for _, c := range after {
		if math.IsNaN(c.StartTime) {
			results = append(results, CheckResult{
				Issue: fmt.Sprintf("%s has an invalid start time", clipLabel(c)),
				Hint:  fmt.Sprintf("Move %s to a valid start time at or after 0s.", clipLabel(c)),
			})
		}
	}
	return results
}

// checkOcclusion flags newly added visual clips hidden behind a visual
// clip on a strictly higher track over an overlapping time range. The
// first occluder in collection order is named.
func checkOcclusion(before, after []timeline.Clip) []CheckResult {
	known := make(map[string]bool, len(before))
	for _, c := range before {
		known[c.ID] = true
	}

	var results []CheckResult
	for _, added := range after {
		if known[added.ID] || !added.Kind.IsVisual() {
			continue
		}
		for _, other := range after {
			if other.ID == added.ID || !other.Kind.IsVisual() {
				continue
			}
			if other.Track > added.Track && other.Overlaps(added) {
				results = append(results, CheckResult{
					Issue: fmt.Sprintf("newly added %s (track %d, %.1fs-%.1fs) is hidden behind %s on track %d",
						clipLabel(added), added.Track, added.StartTime, added.End(),
						clipLabel(other), other.Track),
					Hint: fmt.Sprintf("Move %s to a track above %d, or shift it to a time range not covered by %s.",
						clipLabel(added), other.Track, clipLabel(other)),
				})
				break
			}
		}
	}
	return results
}

// checkAudioVisualTail flags audio running more than the tolerance past
// the last visual clip, which plays as a black screen with sound.
func checkAudioVisualTail(_, after []timeline.Clip) []CheckResult {
	var audioEnd, visualEnd float64
	hasAudio := false
	for _, c := range after {
		switch {
		case c.Kind == timeline.ClipAudio:
			hasAudio = true
			if c.End() > audioEnd {
				audioEnd = c.End()
			}
		case c.Kind.IsVisual():
			if c.End() > visualEnd {
				visualEnd = c.End()
			}
		}
	}
	if !hasAudio {
		return nil
	}

	overrun := audioEnd - visualEnd
	if overrun <= tailTolerance {
		return nil
	}
	return []CheckResult{{
		Issue: fmt.Sprintf("audio continues %.1fs past the last visual clip, leaving a black screen with sound from %.1fs to %.1fs",
			overrun, visualEnd, audioEnd),
		Hint: fmt.Sprintf("Extend the visual content to %.1fs, or trim the trailing audio back to %.1fs.",
			audioEnd, visualEnd),
	}}
}

// checkAudioOverlap flags adjacent audio clips whose ranges overlap by
// more than the tolerance, which plays as clashing sound.
func checkAudioOverlap(_, after []timeline.Clip) []CheckResult {
	var audio []timeline.Clip
	for _, c := range after {
		if c.Kind == timeline.ClipAudio {
			audio = append(audio, c)
		}
	}
	sort.SliceStable(audio, func(i, j int) bool {
		return audio[i].StartTime < audio[j].StartTime
	})

	var results []CheckResult
	for i := 0; i+1 < len(audio); i++ {
		a, b := audio[i], audio[i+1]
		overlap := a.OverlapWith(b)
		if overlap <= tailTolerance {
			continue
		}
		results = append(results, CheckResult{
			Issue: fmt.Sprintf("%s and %s overlap by %.1fs and will play over each other",
				clipLabel(a), clipLabel(b), overlap),
			Hint: fmt.Sprintf("Shift %s to start at or after %.1fs, or trim %s.",
				clipLabel(b), a.End(), clipLabel(a)),
		})
	}
	return results
}
