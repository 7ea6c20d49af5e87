// Package workers provides abstractions for managing and running
// background workers in the application.
// It defines the Worker interface, a Workers aggregate that allows
// running multiple workers in a unified way, and the KeyWorker that keeps
// master key derivation off the interactive goroutine.
package workers

import (
	"context"

	"github.com/MKhiriev/go-master-password/internal/crypto"
	"github.com/MKhiriev/go-master-password/internal/secret"
)

// Worker is the interface that must be implemented by any background worker.
//
// Run starts the worker and returns immediately; the worker keeps running
// until ctx is cancelled or Stop is called. Stop blocks until every
// goroutine started by Run has exited and is safe to call on a worker that
// is not running.
//
// Example implementation:
//
//	type MyWorker struct{}
//
//	func (w *MyWorker) Run(ctx context.Context) {
//	    // start background processing
//	}
//
//	func (w *MyWorker) Stop() {}
type Worker interface {
	Run(ctx context.Context)
	Stop()
}

// MasterKeyDeriver is the slice of the password service a KeyWorker needs.
type MasterKeyDeriver interface {
	MasterKey(ctx context.Context, password *secret.Bytes, userName string) (*crypto.MasterKey, error)
}
