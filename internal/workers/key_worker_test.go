// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-master-password/internal/crypto"
	"github.com/MKhiriev/go-master-password/internal/secret"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// spyDeriver counts MasterKey calls and optionally blocks until released.
type spyDeriver struct {
	calls   atomic.Int64
	err     error
	release chan struct{}
	started chan struct{}
	lastKey atomic.Pointer[crypto.MasterKey]
	sawPass atomic.Bool
}

func (s *spyDeriver) MasterKey(_ context.Context, password *secret.Bytes, _ string) (*crypto.MasterKey, error) {
	s.calls.Add(1)
	s.sawPass.Store(password.IsAlive())
	if s.started != nil {
		s.started <- struct{}{}
	}
	if s.release != nil {
		<-s.release
	}
	if s.err != nil {
		return nil, s.err
	}
	key := crypto.NewMasterKey(make([]byte, crypto.MasterKeySize))
	s.lastKey.Store(key)
	return key, nil
}

func receive(t *testing.T, ch <-chan KeyResult) KeyResult {
	t.Helper()
	select {
	case res := <-ch:
		return res
	case <-time.After(2 * time.Second):
		t.Fatal("no result from key worker")
		return KeyResult{}
	}
}

// ── Submit ───────────────────────────────────────────────────────────────────

func TestKeyWorker_Submit_DerivesKey(t *testing.T) {
	spy := &spyDeriver{}
	w := NewKeyWorker(spy)
	w.Run(context.Background())
	defer w.Stop()

	pw := secret.FromString("pw")
	res := receive(t, w.Submit(context.Background(), pw, "user"))

	require.NoError(t, res.Err)
	require.NotNil(t, res.Key)
	defer res.Key.Destroy()

	assert.True(t, res.Key.IsAlive())
	assert.True(t, spy.sawPass.Load(), "password must be alive during derivation")
	assert.False(t, pw.IsAlive(), "worker takes ownership of the password")
	assert.Equal(t, int64(1), spy.calls.Load())
}

func TestKeyWorker_Submit_DeriverError(t *testing.T) {
	boom := errors.New("boom")
	w := NewKeyWorker(&spyDeriver{err: boom})
	w.Run(context.Background())
	defer w.Stop()

	pw := secret.FromString("pw")
	res := receive(t, w.Submit(context.Background(), pw, "user"))

	assert.ErrorIs(t, res.Err, boom)
	assert.Nil(t, res.Key)
	assert.False(t, pw.IsAlive())
}

func TestKeyWorker_Submit_NotRunning(t *testing.T) {
	spy := &spyDeriver{}
	w := NewKeyWorker(spy)

	pw := secret.FromString("pw")
	res := receive(t, w.Submit(context.Background(), pw, "user"))

	assert.ErrorIs(t, res.Err, ErrWorkerStopped)
	assert.False(t, pw.IsAlive())
	assert.Equal(t, int64(0), spy.calls.Load())
}

func TestKeyWorker_Submit_CancelledBeforeStart(t *testing.T) {
	spy := &spyDeriver{}
	w := NewKeyWorker(spy)
	w.Run(context.Background())
	defer w.Stop()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res := receive(t, w.Submit(ctx, secret.FromString("pw"), "user"))

	assert.ErrorIs(t, res.Err, context.Canceled)
	assert.Equal(t, int64(0), spy.calls.Load())
}

func TestKeyWorker_Submit_CancelledDuringDerivation_DestroysKey(t *testing.T) {
	spy := &spyDeriver{
		started: make(chan struct{}),
		release: make(chan struct{}),
	}
	w := NewKeyWorker(spy)
	w.Run(context.Background())
	defer w.Stop()

	ctx, cancel := context.WithCancel(context.Background())
	ch := w.Submit(ctx, secret.FromString("pw"), "user")

	<-spy.started
	cancel()
	close(spy.release)

	res := receive(t, ch)
	assert.ErrorIs(t, res.Err, context.Canceled)
	assert.Nil(t, res.Key)

	key := spy.lastKey.Load()
	require.NotNil(t, key)
	assert.False(t, key.IsAlive(), "a key nobody waits for must be destroyed")
}

func TestKeyWorker_Submit_Sequential(t *testing.T) {
	spy := &spyDeriver{}
	w := NewKeyWorker(spy)
	w.Run(context.Background())
	defer w.Stop()

	for range 3 {
		res := receive(t, w.Submit(context.Background(), secret.FromString("pw"), "user"))
		require.NoError(t, res.Err)
		res.Key.Destroy()
	}
	assert.Equal(t, int64(3), spy.calls.Load())
}

// ── Run / Stop ───────────────────────────────────────────────────────────────

func TestKeyWorker_Stop_BeforeRun_NoPanic(t *testing.T) {
	w := NewKeyWorker(&spyDeriver{})

	assert.NotPanics(t, func() { w.Stop() })
}

func TestKeyWorker_DoubleStop_NoPanic(t *testing.T) {
	w := NewKeyWorker(&spyDeriver{})
	w.Run(context.Background())
	w.Stop()

	assert.NotPanics(t, func() { w.Stop() })
}

func TestKeyWorker_Stop_RejectsNewJobs(t *testing.T) {
	spy := &spyDeriver{}
	w := NewKeyWorker(spy)
	w.Run(context.Background())
	w.Stop()

	res := receive(t, w.Submit(context.Background(), secret.FromString("pw"), "user"))

	assert.ErrorIs(t, res.Err, ErrWorkerStopped)
	assert.Equal(t, int64(0), spy.calls.Load())
}

func TestKeyWorker_Stop_WaitsForDerivation(t *testing.T) {
	spy := &spyDeriver{
		started: make(chan struct{}),
		release: make(chan struct{}),
	}
	w := NewKeyWorker(spy)
	w.Run(context.Background())

	ch := w.Submit(context.Background(), secret.FromString("pw"), "user")
	<-spy.started

	stopped := make(chan struct{})
	go func() {
		w.Stop()
		close(stopped)
	}()

	select {
	case <-stopped:
		t.Fatal("Stop returned while a derivation was running")
	case <-time.After(20 * time.Millisecond):
	}

	close(spy.release)
	<-stopped

	res := receive(t, ch)
	require.NoError(t, res.Err)
	res.Key.Destroy()
}

func TestKeyWorker_RunAgainAfterStop(t *testing.T) {
	spy := &spyDeriver{}
	w := NewKeyWorker(spy)

	w.Run(context.Background())
	w.Stop()
	w.Run(context.Background())
	defer w.Stop()

	res := receive(t, w.Submit(context.Background(), secret.FromString("pw"), "user"))
	require.NoError(t, res.Err)
	res.Key.Destroy()
}

func TestKeyWorker_ParentContextCancelled(t *testing.T) {
	spy := &spyDeriver{}
	w := NewKeyWorker(spy)

	ctx, cancel := context.WithCancel(context.Background())
	w.Run(ctx)
	cancel()
	w.Stop()

	assert.Equal(t, int64(0), spy.calls.Load())
}
