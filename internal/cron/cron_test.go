package cron

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/linskybing/freelance-market/internal/domain/contract"
	"github.com/stretchr/testify/assert"
)

type fakeCleaner struct {
	calls atomic.Int32
	days  atomic.Int32
}

func (f *fakeCleaner) CleanupOldLogs(_ context.Context, days int) (int64, error) {
	f.calls.Add(1)
	f.days.Store(int32(days))
	return 2, nil
}

type fakeReconciler struct {
	calls atomic.Int32
	err   error
}

func (f *fakeReconciler) Run(_ context.Context, dryRun bool) (contract.ReconcileReport, error) {
	f.calls.Add(1)
	if dryRun {
		return contract.ReconcileReport{}, errors.New("scheduled runs must write")
	}
	return contract.ReconcileReport{Scanned: 3, Changed: 1, JobIDs: []uint{5}}, f.err
}

func TestStartCleanupTask_RunsOnStart(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	f := &fakeCleaner{}
	StartCleanupTask(ctx, f, 30)

	assert.Eventually(t, func() bool { return f.calls.Load() == 1 }, time.Second, 5*time.Millisecond)
	assert.Equal(t, int32(30), f.days.Load())
}

func TestStartCleanupTask_Disabled(t *testing.T) {
	f := &fakeCleaner{}
	StartCleanupTask(context.Background(), f, 0)

	time.Sleep(20 * time.Millisecond)
	assert.Zero(t, f.calls.Load())
}

func TestStartReconcileTask_Ticks(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	f := &fakeReconciler{err: errors.New("db down")}
	StartReconcileTask(ctx, f, 10*time.Millisecond)

	assert.Eventually(t, func() bool { return f.calls.Load() >= 3 }, time.Second, 5*time.Millisecond)
}

func TestEvery_StopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	var calls atomic.Int32
	done := make(chan struct{})

	go func() {
		every(ctx, time.Hour, func() { calls.Add(1) })
		close(done)
	}()
	assert.Eventually(t, func() bool { return calls.Load() == 1 }, time.Second, 5*time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("every did not return after cancel")
	}
}
