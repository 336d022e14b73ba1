// pkg/output/renderer_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test plain-text rendering of command results

package output_test

import (
	"bytes"
	stderrors "errors"
	"strings"
	"testing"

	"github.com/arthur-debert/savesync/pkg/output"
	"github.com/arthur-debert/savesync/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func render(t *testing.T, fn func(r *output.Renderer) error) []string {
	t.Helper()
	var buf bytes.Buffer
	r, err := output.NewRenderer(&buf, true)
	require.NoError(t, err)
	require.NoError(t, fn(r))

	out := buf.String()
	assert.NotContains(t, out, "</", "style tags must be stripped")

	var lines []string
	for _, line := range strings.Split(strings.TrimRight(out, "\n"), "\n") {
		lines = append(lines, strings.Join(strings.Fields(line), " "))
	}
	return lines
}

func entry(key, name string) types.GameEntry {
	return types.GameEntry{
		Key:         key,
		Name:        name,
		Source:      "/saves/" + key,
		Destination: "/home/me/." + key,
		Enabled:     true,
	}
}

func TestRenderTrack(t *testing.T) {
	results := []types.TrackResult{
		{Entry: entry("foo", "Foo"), Status: types.TrackSuccess},
		{Entry: entry("bar", ""), Status: types.TrackSkipped, Reason: types.ReasonAlreadySymlink},
		{Entry: entry("baz", "Baz"), Status: types.TrackFailed, Err: stderrors.New("permission denied")},
		{Entry: entry("qux", "Qux"), Status: types.TrackAlreadyTracked},
	}

	lines := render(t, func(r *output.Renderer) error { return r.RenderTrack(results) })

	assert.Equal(t, []string{
		"tracked Foo",
		"skipped bar (already a symlink)",
		"failed Baz",
		"permission denied",
		"already tracked Qux",
		"",
		"1 tracked, 1 already tracked, 1 skipped, 1 failed",
	}, lines)
}

func TestRenderTrack_Empty(t *testing.T) {
	lines := render(t, func(r *output.Renderer) error { return r.RenderTrack(nil) })
	assert.Equal(t, []string{"No enabled games to track."}, lines)
}

func TestRenderList(t *testing.T) {
	disabled := entry("bar", "Bar Quest")
	disabled.Enabled = false

	lines := render(t, func(r *output.Renderer) error {
		return r.RenderList([]types.GameEntry{entry("foo", "foo"), disabled})
	})

	assert.Equal(t, []string{
		"Games",
		"foo enabled",
		"/home/me/.foo -> /saves/foo",
		"bar Bar Quest disabled",
		"/home/me/.bar -> /saves/bar",
	}, lines)
}

func TestRenderList_Empty(t *testing.T) {
	lines := render(t, func(r *output.Renderer) error { return r.RenderList(nil) })
	assert.Equal(t, []string{"No games configured."}, lines)
}

func TestRenderStatus(t *testing.T) {
	statuses := []types.EntryStatus{
		{Entry: entry("foo", "Foo"), State: types.StateTracked},
		{Entry: entry("bar", "Bar"), State: types.StateLinkMissing},
		{Entry: entry("baz", "Baz"), State: types.StateForeignLink, LinkTarget: "/elsewhere"},
	}

	lines := render(t, func(r *output.Renderer) error { return r.RenderStatus(statuses) })

	assert.Equal(t, []string{
		"tracked Foo",
		"link missing Bar",
		"foreign link Baz (links to /elsewhere)",
	}, lines)
}

func TestRenderPull(t *testing.T) {
	const (
		orig     = "1111111aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"
		upstream = "2222222bbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb"
		replayed = "3333333ccccccccccccccccccccccccccccccccc"
		dropped  = "4444444ddddddddddddddddddddddddddddddddd"
	)

	t.Run("up_to_date", func(t *testing.T) {
		lines := render(t, func(r *output.Renderer) error {
			return r.RenderPull(&types.PullResult{Remote: "origin", Branch: "main", NewHead: orig, UpToDate: true})
		})
		assert.Equal(t, []string{"Already up to date with origin/main at 1111111"}, lines)
	})

	t.Run("fast_forward", func(t *testing.T) {
		lines := render(t, func(r *output.Renderer) error {
			return r.RenderPull(&types.PullResult{
				HeadName: "refs/heads/main", OrigHead: orig, NewHead: upstream, FastForward: true,
			})
		})
		assert.Equal(t, []string{"Fast-forwarded main 1111111..2222222"}, lines)
	})

	t.Run("rebased", func(t *testing.T) {
		lines := render(t, func(r *output.Renderer) error {
			return r.RenderPull(&types.PullResult{
				Remote:   "origin",
				Branch:   "main",
				HeadName: "refs/heads/main",
				OrigHead: orig,
				Upstream: upstream,
				Replayed: []types.ReplayedCommit{{Original: orig, New: replayed, Summary: "foo: slot 2"}},
				Dropped:  []string{dropped},
			})
		})
		assert.Equal(t, []string{
			"Rebased main onto origin/main at 2222222",
			"1111111 -> 3333333 foo: slot 2",
			"4444444 dropped, already upstream",
		}, lines)
	})
}

func TestRenderErrorAndMessage(t *testing.T) {
	lines := render(t, func(r *output.Renderer) error {
		if err := r.RenderError(stderrors.New("boom")); err != nil {
			return err
		}
		return r.RenderMessage("Warning", "push is not implemented")
	})
	assert.Equal(t, []string{"Error: boom", "push is not implemented"}, lines)
}

func TestCountTrack(t *testing.T) {
	counts := output.CountTrack([]types.TrackResult{
		{Status: types.TrackSuccess},
		{Status: types.TrackSuccess},
		{Status: types.TrackFailed},
	})
	assert.Equal(t, output.TrackCounts{Success: 2, Failed: 1}, counts)
}
