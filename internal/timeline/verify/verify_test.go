package verify

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/framefold/timecraft/internal/timeline"
)

func clip(id string, kind timeline.ClipKind, start, dur float64, track int) timeline.Clip {
	return timeline.Clip{
		ID:        id,
		Kind:      kind,
		StartTime: start,
		Duration:  dur,
		Speed:     1,
		Track:     track,
	}
}

func TestCleanTimelinePasses(t *testing.T) {
	after := []timeline.Clip{
		clip("v1", timeline.ClipVideo, 0, 10, 1),
		clip("a1", timeline.ClipAudio, 0, 10, 0),
	}

	report := Run(nil, after)

	assert.True(t, report.Passed)
	assert.Empty(t, report.Issues)
	assert.Empty(t, report.RemediationHints)
}

func TestMinimumDuration(t *testing.T) {
	after := []timeline.Clip{
		clip("tiny", timeline.ClipVideo, 0, 0.05, 0),
		clip("ok", timeline.ClipVideo, 1, 5, 0),
	}

	report := Run(nil, after)

	require.Len(t, report.Issues, 1)
	assert.Contains(t, report.Issues[0], "tiny")
	assert.Contains(t, report.Issues[0], "minimum")
}

func TestInvalidStartTime(t *testing.T) {
	after := []timeline.Clip{
		clip("bad", timeline.ClipVideo, math.NaN(), 5, 0),
	}

	report := Run(nil, after)

	require.Len(t, report.Issues, 1)
	assert.Contains(t, report.Issues[0], "invalid start time")
	require.Len(t, report.RemediationHints, 1)
	assert.Contains(t, report.RemediationHints[0], "Move")
}

func TestOcclusionOfNewClip(t *testing.T) {
	before := []timeline.Clip{
		clip("v1", timeline.ClipVideo, 0, 10, 1),
	}
	added := clip("t1", timeline.ClipText, 2, 3, 0)
	added.Text = "Title"
	after := append([]timeline.Clip{}, before...)
	after = append(after, added)

	report := Run(before, after)

	require.False(t, report.Passed)
	require.Len(t, report.Issues, 1)
	assert.Contains(t, report.Issues[0], `"Title"`)
	assert.Contains(t, report.Issues[0], "hidden behind")
	assert.Contains(t, report.Issues[0], "v1")
	require.Len(t, report.RemediationHints, 1)
	assert.Contains(t, report.RemediationHints[0], "track above 1")
}

func TestNoOcclusionForPreexistingClip(t *testing.T) {
	// Both clips were already present; the check only guards additions.
	clips := []timeline.Clip{
		clip("v1", timeline.ClipVideo, 0, 10, 1),
		clip("t1", timeline.ClipText, 2, 3, 0),
	}

	report := Run(clips, clips)

	assert.True(t, report.Passed)
}

func TestNoOcclusionOnSameOrLowerTrack(t *testing.T) {
	before := []timeline.Clip{
		clip("v1", timeline.ClipVideo, 0, 10, 1),
	}
	after := append([]timeline.Clip{}, before...)
	after = append(after, clip("t1", timeline.ClipText, 2, 3, 2))

	report := Run(before, after)

	assert.True(t, report.Passed, "a clip on a higher track is not occluded")
}

func TestOcclusionIgnoresAudioOccluder(t *testing.T) {
	before := []timeline.Clip{
		clip("a1", timeline.ClipAudio, 0, 10, 5),
	}
	after := append([]timeline.Clip{}, before...)
	after = append(after, clip("t1", timeline.ClipText, 2, 3, 0))

	report := Run(before, after)

	assert.True(t, report.Passed, "audio clips do not occlude")
}

func TestAudioVisualTailOverrun(t *testing.T) {
	after := []timeline.Clip{
		clip("v1", timeline.ClipVideo, 0, 10, 1),
		clip("a1", timeline.ClipAudio, 0, 12, 0),
	}

	report := Run(nil, after)

	require.Len(t, report.Issues, 1)
	assert.Contains(t, report.Issues[0], "2.0s")
	assert.Contains(t, report.Issues[0], "black screen")
	require.Len(t, report.RemediationHints, 1)
	assert.Contains(t, report.RemediationHints[0], "10.0s")
}

func TestAudioVisualTailWithinTolerance(t *testing.T) {
	after := []timeline.Clip{
		clip("v1", timeline.ClipVideo, 0, 10, 1),
		clip("a1", timeline.ClipAudio, 0, 10.5, 0),
	}

	report := Run(nil, after)

	assert.True(t, report.Passed, "0.5s overrun is within tolerance")
}

func TestAudioOverlap(t *testing.T) {
	after := []timeline.Clip{
		clip("a2", timeline.ClipAudio, 4, 6, 0),
		clip("a1", timeline.ClipAudio, 0, 6, 0),
		clip("v1", timeline.ClipVideo, 0, 10, 1),
	}

	report := Run(nil, after)

	require.Len(t, report.Issues, 1)
	assert.Contains(t, report.Issues[0], "a1")
	assert.Contains(t, report.Issues[0], "a2")
	assert.Contains(t, report.Issues[0], "2.0s")
}

func TestAudioOverlapWithinTolerance(t *testing.T) {
	after := []timeline.Clip{
		clip("a1", timeline.ClipAudio, 0, 5, 0),
		clip("a2", timeline.ClipAudio, 4.6, 5, 0),
	}

	report := Run(nil, after)

	assert.True(t, report.Passed, "0.4s overlap is within tolerance")
}

func TestDeterminism(t *testing.T) {
	before := []timeline.Clip{
		clip("v1", timeline.ClipVideo, 0, 10, 2),
	}
	after := []timeline.Clip{
		clip("v1", timeline.ClipVideo, 0, 10, 2),
		clip("tiny", timeline.ClipText, 1, 0.05, 0),
		clip("a1", timeline.ClipAudio, 0, 14, 0),
		clip("a2", timeline.ClipAudio, 2, 14, 0),
	}

	first := Run(before, after)
	second := Run(before, after)

	assert.Equal(t, first, second, "identical inputs must yield identical reports, order included")
	assert.False(t, first.Passed)
	assert.Greater(t, len(first.Issues), 2)
}

func TestCustomCheckRegistration(t *testing.T) {
	r := NewRegistry()
	r.Register("always-fails", func(_, _ []timeline.Clip) []CheckResult {
		return []CheckResult{{Issue: "synthetic issue", Hint: "Do the thing."}}
	})

	report := r.Run(nil, nil)

	require.False(t, report.Passed)
	assert.Equal(t, "synthetic issue", report.Issues[len(report.Issues)-1])
	assert.Equal(t, []string{"minimum-duration", "valid-start-time", "occlusion", "audio-visual-tail", "audio-overlap", "always-fails"}, r.Names())
}
