package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/vianieuws/perstool/internal/model"
)

func TestSweepEvictsExpiredJobsWithArtifacts(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t, 20*time.Minute)
	dir := t.TempDir()

	src := writeArtifact(t, dir, "stale.src.txt")
	out := writeArtifact(t, dir, "stale.out.txt")
	job := model.NewJob("stale", src)
	job.Status = model.JobProcessed
	job.OutputPath = out
	require.NoError(t, s.Put(ctx, job))
	require.NoError(t, s.Put(ctx, model.NewJob("fresh", writeArtifact(t, dir, "fresh.src.txt"))))

	// a result that is never downloaded must become unretrievable once the
	// TTL has passed and the sweeper has run
	s.now = func() time.Time { return time.Now().Add(21 * time.Minute) }
	// refresh the second job so only "stale" is past the cutoff
	fresh := model.NewJob("fresh", writeArtifact(t, dir, "fresh.src.txt"))
	fresh.CreatedAt = s.now()
	require.NoError(t, s.Put(ctx, fresh))

	sw := NewSweeper(s, time.Minute, zap.NewNop())
	sw.Sweep(ctx)

	assert.NoFileExists(t, src)
	assert.NoFileExists(t, out)
	_, err := s.Get(ctx, "stale")
	assert.ErrorIs(t, err, ErrNotFound)

	got, err := s.Get(ctx, "fresh")
	require.NoError(t, err)
	assert.Equal(t, "fresh", got.ID)
}

func TestSweeperStartStop(t *testing.T) {
	s := newTestStore(t, 20*time.Minute)
	sw := NewSweeper(s, 10*time.Millisecond, zap.NewNop())

	sw.Start(context.Background())
	time.Sleep(30 * time.Millisecond)
	sw.Stop() // must not hang or panic

	// stopping twice is safe
	sw.Stop()
}
