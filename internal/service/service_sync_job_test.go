// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-quote-keeper/internal/logger"
	"github.com/MKhiriev/go-quote-keeper/models"
)

// spySyncService counts Sync calls and returns a fixed report.
type spySyncService struct {
	calls  atomic.Int64
	report models.SyncReport
}

func (s *spySyncService) Sync(_ context.Context) models.SyncReport {
	s.calls.Add(1)
	return s.report
}

// ── NewSyncJob ───────────────────────────────────────────────────────────────

func TestNewSyncJob_ReturnsInterface(t *testing.T) {
	job := NewSyncJob(&spySyncService{}, logger.Nop())
	require.NotNil(t, job)

	var _ SyncJob = job
}

// ── Start / Stop ─────────────────────────────────────────────────────────────

func TestSyncJob_Start_SyncsImmediately(t *testing.T) {
	spy := &spySyncService{}
	job := NewSyncJob(spy, logger.Nop())

	// the interval is long, only the startup run may happen
	job.Start(context.Background(), time.Hour)
	require.Eventually(t, func() bool { return spy.calls.Load() == 1 }, time.Second, 5*time.Millisecond)
	job.Stop()

	assert.Equal(t, int64(1), spy.calls.Load())
}

func TestSyncJob_Start_CallsSyncRepeatedly(t *testing.T) {
	spy := &spySyncService{}
	job := NewSyncJob(spy, logger.Nop())

	job.Start(context.Background(), 10*time.Millisecond)
	time.Sleep(55 * time.Millisecond)
	job.Stop()

	got := spy.calls.Load()
	assert.GreaterOrEqual(t, got, int64(3), "Sync should be called several times, called: %d", got)
}

func TestSyncJob_Stop_StopsGoroutine(t *testing.T) {
	spy := &spySyncService{}
	job := NewSyncJob(spy, logger.Nop())

	job.Start(context.Background(), 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)
	job.Stop()

	callsAfterStop := spy.calls.Load()
	time.Sleep(30 * time.Millisecond)

	assert.Equal(t, callsAfterStop, spy.calls.Load(), "no calls after Stop")
}

func TestSyncJob_Stop_BeforeStart_NoPanic(t *testing.T) {
	job := NewSyncJob(&spySyncService{}, logger.Nop())

	assert.NotPanics(t, func() { job.Stop() })
}

func TestSyncJob_DoubleStop_NoPanic(t *testing.T) {
	job := NewSyncJob(&spySyncService{}, logger.Nop())

	job.Start(context.Background(), 10*time.Millisecond)
	job.Stop()

	assert.NotPanics(t, func() { job.Stop() })
}

func TestSyncJob_Start_DefaultInterval(t *testing.T) {
	spy := &spySyncService{}
	job := NewSyncJob(spy, logger.Nop())

	// interval <= 0 falls back to DefaultSyncInterval, so only the startup run
	job.Start(context.Background(), 0)
	time.Sleep(20 * time.Millisecond)
	job.Stop()

	assert.Equal(t, int64(1), spy.calls.Load())
}

func TestSyncJob_Start_Restart(t *testing.T) {
	spy := &spySyncService{}
	job := NewSyncJob(spy, logger.Nop())

	job.Start(context.Background(), time.Hour)
	job.Start(context.Background(), time.Hour)
	require.Eventually(t, func() bool { return spy.calls.Load() == 2 }, time.Second, 5*time.Millisecond)
	job.Stop()
}

func TestSyncJob_ParentContextCancel(t *testing.T) {
	spy := &spySyncService{}
	job := NewSyncJob(spy, logger.Nop())
	ctx, cancel := context.WithCancel(context.Background())

	job.Start(ctx, 10*time.Millisecond)
	time.Sleep(25 * time.Millisecond)
	cancel()
	job.Stop()

	calls := spy.calls.Load()
	time.Sleep(25 * time.Millisecond)
	assert.Equal(t, calls, spy.calls.Load())
}

// ── Subscribe ────────────────────────────────────────────────────────────────

func TestSyncJob_Subscribe_ReceivesReports(t *testing.T) {
	spy := &spySyncService{report: models.SyncReport{New: 2, Conflicts: 1}}
	job := NewSyncJob(spy, logger.Nop())

	first := job.Subscribe()
	second := job.Subscribe()

	job.Start(context.Background(), time.Hour)
	defer job.Stop()

	for _, ch := range []<-chan models.SyncReport{first, second} {
		select {
		case report := <-ch:
			assert.Equal(t, 2, report.New)
			assert.Equal(t, 1, report.Conflicts)
		case <-time.After(time.Second):
			t.Fatal("report was not delivered")
		}
	}
}

func TestSyncJob_Subscribe_SkippedRunsAreNotDelivered(t *testing.T) {
	spy := &spySyncService{report: models.SyncReport{Err: ErrSyncInProgress}}
	job := NewSyncJob(spy, logger.Nop())
	ch := job.Subscribe()

	job.Start(context.Background(), time.Hour)
	require.Eventually(t, func() bool { return spy.calls.Load() == 1 }, time.Second, 5*time.Millisecond)
	job.Stop()

	select {
	case report := <-ch:
		t.Fatalf("unexpected report: %+v", report)
	default:
	}
}

func TestSyncJob_Subscribe_SlowSubscriberDoesNotBlock(t *testing.T) {
	spy := &spySyncService{report: models.SyncReport{New: 1}}
	job := NewSyncJob(spy, logger.Nop())
	_ = job.Subscribe() // never read

	job.Start(context.Background(), time.Millisecond)
	require.Eventually(t, func() bool { return spy.calls.Load() > subscriberBuffer+2 }, time.Second, time.Millisecond)

	stopped := make(chan struct{})
	go func() {
		job.Stop()
		close(stopped)
	}()

	select {
	case <-stopped:
	case <-time.After(time.Second):
		t.Fatal("Stop blocked on a full subscriber")
	}
}
