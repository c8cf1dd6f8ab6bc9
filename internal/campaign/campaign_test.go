package campaign

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spigell/hiring-desk/internal/recruiting"
	"github.com/spigell/hiring-desk/internal/store"
)

func newStore(t *testing.T) (*store.Store, *store.ManualScheduler) {
	t.Helper()

	scheduler := &store.ManualScheduler{}
	s := store.New(store.Seed{
		Jobs: []*recruiting.Job{
			{ID: "1", Title: "Mathematics Teacher", Status: recruiting.JobActive, Candidates: []string{"c1", "c2", "c3"}},
			{ID: "2", Title: "Principal", Status: recruiting.JobActive, Candidates: []string{"c4"}},
		},
		Candidates: []*recruiting.Candidate{
			{ID: "c1", Name: "Aisha", Status: recruiting.CandidatePending},
			{ID: "c2", Name: "Bilal", Status: recruiting.CandidateVoicemail},
			{ID: "c3", Name: "Carla", Status: recruiting.CandidateNoAnswer},
			{ID: "c4", Name: "Dina", Status: recruiting.CandidatePending},
		},
	}, store.WithScheduler(scheduler))

	return s, scheduler
}

func statuses(s *store.Store, ids ...string) []recruiting.CandidateStatus {
	out := make([]recruiting.CandidateStatus, 0, len(ids))
	for _, id := range ids {
		c, _ := s.GetCandidate(id)
		out = append(out, c.Status)
	}
	return out
}

func TestCallAll(t *testing.T) {
	s, scheduler := newStore(t)
	d := New(s, 0, nil)
	defer d.Close()

	dialed, err := d.CallAll(context.Background(), "1")
	require.NoError(t, err)
	assert.Equal(t, 3, dialed)
	assert.Equal(t, 3, scheduler.Pending())

	scheduled := recruiting.CandidateScheduled
	assert.Equal(t, []recruiting.CandidateStatus{scheduled, scheduled, scheduled}, statuses(s, "c1", "c2", "c3"))
	assert.Equal(t, recruiting.CandidatePending, statuses(s, "c4")[0])

	scheduler.Advance(store.DefaultCallDelay)
	answered := recruiting.CandidateAnswered
	assert.Equal(t, []recruiting.CandidateStatus{answered, answered, answered}, statuses(s, "c1", "c2", "c3"))
}

func TestCallAllUnknownJob(t *testing.T) {
	s, _ := newStore(t)
	d := New(s, 0, nil)
	defer d.Close()

	_, err := d.CallAll(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrUnknownJob)
}

func TestCallAllCanceledContext(t *testing.T) {
	s, scheduler := newStore(t)
	d := New(s, 0, nil)
	defer d.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	dialed, err := d.CallAll(ctx, "1")
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, dialed)
	assert.Equal(t, 0, scheduler.Pending())
}

func TestCallAllStagger(t *testing.T) {
	s, _ := newStore(t)
	d := New(s, 20*time.Millisecond, nil)
	defer d.Close()

	started := time.Now()
	dialed, err := d.CallAll(context.Background(), "1")
	require.NoError(t, err)
	assert.Equal(t, 3, dialed)
	assert.GreaterOrEqual(t, time.Since(started), 40*time.Millisecond)
}

func TestStartAndClose(t *testing.T) {
	s, scheduler := newStore(t)
	d := New(s, time.Millisecond, nil)

	require.NoError(t, d.Start("1"))
	require.Eventually(t, func() bool { return !d.Running("1") }, 5*time.Second, time.Millisecond)
	d.Close()

	assert.Equal(t, 3, scheduler.Pending())
	assert.ErrorIs(t, d.Start("1"), ErrClosed)
}

func TestStartErrors(t *testing.T) {
	s, _ := newStore(t)
	d := New(s, time.Hour, nil)
	defer d.Close()

	assert.ErrorIs(t, d.Start("missing"), ErrUnknownJob)

	require.NoError(t, d.Start("1"))
	assert.ErrorIs(t, d.Start("1"), ErrRunning)
	assert.True(t, d.Running("1"))
}

func TestCloseInterruptsCampaign(t *testing.T) {
	s, scheduler := newStore(t)
	d := New(s, time.Hour, nil)

	require.NoError(t, d.Start("1"))
	require.Eventually(t, func() bool { return scheduler.Pending() == 1 }, 5*time.Second, time.Millisecond)

	d.Close()
	assert.False(t, d.Running("1"))
	assert.Equal(t, 1, scheduler.Pending())
}

func TestCancel(t *testing.T) {
	s, scheduler := newStore(t)
	d := New(s, time.Hour, nil)
	defer d.Close()

	require.NoError(t, d.Start("1"))
	require.Eventually(t, func() bool { return scheduler.Pending() == 1 }, 5*time.Second, time.Millisecond)

	reset, err := d.Cancel("1")
	require.NoError(t, err)
	assert.Equal(t, 3, reset)
	assert.False(t, d.Running("1"))

	pending := recruiting.CandidatePending
	assert.Equal(t, []recruiting.CandidateStatus{pending, pending, pending}, statuses(s, "c1", "c2", "c3"))

	// the call started before the cancel still completes
	scheduler.Advance(store.DefaultCallDelay)
	assert.Equal(t, recruiting.CandidateAnswered, statuses(s, "c1")[0])
	assert.Equal(t, []recruiting.CandidateStatus{pending, pending}, statuses(s, "c2", "c3"))
}

func TestCancelWithoutCampaign(t *testing.T) {
	s, _ := newStore(t)
	d := New(s, 0, nil)
	defer d.Close()

	reset, err := d.Cancel("2")
	require.NoError(t, err)
	assert.Equal(t, 1, reset)

	_, err = d.Cancel("missing")
	assert.ErrorIs(t, err, ErrUnknownJob)
}
