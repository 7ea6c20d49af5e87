// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"sync"

	"github.com/MKhiriev/go-master-password/internal/crypto"
	"github.com/MKhiriev/go-master-password/internal/secret"
)

// ErrWorkerStopped is reported for jobs submitted to a KeyWorker that is not
// running.
var ErrWorkerStopped = errors.New("key worker is not running")

// KeyResult is the outcome of one master key derivation. Exactly one of Key
// and Err is set; the receiver owns Key.
type KeyResult struct {
	Key *crypto.MasterKey
	Err error
}

type keyJob struct {
	ctx      context.Context
	password *secret.Bytes
	userName string
	out      chan<- KeyResult
}

// KeyWorker derives master keys on a dedicated goroutine, one at a time.
// The worker is idle until Run is called.
type KeyWorker struct {
	deriver MasterKeyDeriver
	jobs    chan keyJob

	mu     sync.Mutex
	runCtx context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewKeyWorker(deriver MasterKeyDeriver) *KeyWorker {
	return &KeyWorker{
		deriver: deriver,
		jobs:    make(chan keyJob),
	}
}

// Run implements Worker. It stops a previously running loop, then launches
// the derivation goroutine, which exits when ctx is cancelled or Stop is
// called.
func (w *KeyWorker) Run(ctx context.Context) {
	w.Stop()

	w.mu.Lock()
	runCtx, cancel := context.WithCancel(ctx)
	w.runCtx = runCtx
	w.cancel = cancel
	w.wg.Add(1)
	w.mu.Unlock()

	go func() {
		defer w.wg.Done()
		for {
			select {
			case <-runCtx.Done():
				return
			case job := <-w.jobs:
				w.process(job)
			}
		}
	}()
}

// Stop implements Worker. It blocks until a derivation in progress has
// finished and the goroutine has exited.
func (w *KeyWorker) Stop() {
	w.mu.Lock()
	cancel := w.cancel
	w.cancel = nil
	w.runCtx = nil
	w.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	w.wg.Wait()
}

// Submit queues a derivation and returns a channel that receives exactly
// one KeyResult. Submit takes ownership of password and destroys it once the
// job is done or rejected.
//
// A derivation cannot be interrupted. If ctx is cancelled while it runs,
// the freshly derived key is destroyed and ctx.Err() is reported instead.
func (w *KeyWorker) Submit(ctx context.Context, password *secret.Bytes, userName string) <-chan KeyResult {
	out := make(chan KeyResult, 1)

	w.mu.Lock()
	runCtx := w.runCtx
	w.mu.Unlock()

	if runCtx == nil {
		password.Destroy()
		out <- KeyResult{Err: ErrWorkerStopped}
		return out
	}

	select {
	case w.jobs <- keyJob{ctx: ctx, password: password, userName: userName, out: out}:
	case <-ctx.Done():
		password.Destroy()
		out <- KeyResult{Err: ctx.Err()}
	case <-runCtx.Done():
		password.Destroy()
		out <- KeyResult{Err: ErrWorkerStopped}
	}
	return out
}

func (w *KeyWorker) process(job keyJob) {
	defer job.password.Destroy()

	if err := job.ctx.Err(); err != nil {
		job.out <- KeyResult{Err: err}
		return
	}

	key, err := w.deriver.MasterKey(job.ctx, job.password, job.userName)
	if err != nil {
		job.out <- KeyResult{Err: err}
		return
	}

	if err := job.ctx.Err(); err != nil {
		key.Destroy()
		job.out <- KeyResult{Err: err}
		return
	}
	job.out <- KeyResult{Key: key}
}
