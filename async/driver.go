// Package async implements the single-shot background worker of
// spec.md §4.7: a three-state status flag (NotStarted, Ongoing, Finished)
// that the scene facade polls while voxelisation runs off the caller's
// thread.
//
// Grounded on the teacher's own async idiom: mod_physics.go hands state
// between a background goroutine and its poller through an atomic
// pointer, and particles_ecs.go spawns that goroutine with a bare
// `go func() { ... }()`. Driver generalises that one-worker shape instead
// of building a general task queue (spec.md §9 explicitly says not to).
package async

import (
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
)

// Status is one of the three states spec.md §4.7's transition table names.
type Status int32

const (
	NotStarted Status = iota
	Ongoing
	Finished
)

func (s Status) String() string {
	switch s {
	case NotStarted:
		return "NotStarted"
	case Ongoing:
		return "Ongoing"
	case Finished:
		return "Finished"
	default:
		return "Unknown"
	}
}

// Driver is a single-shot background worker with an atomic status word.
// A Driver runs one job at a time and can be reused for later jobs: Start
// handles the Finished -> NotStarted rejoin-then-restart transition itself.
type Driver struct {
	status atomic.Int32
	wg     sync.WaitGroup
	mu     sync.Mutex
	err    error
	jobID  uuid.UUID
}

// NewDriver returns a Driver in the NotStarted state.
func NewDriver() *Driver {
	return &Driver{}
}

// Poll returns the current status without blocking.
func (d *Driver) Poll() Status {
	return Status(d.status.Load())
}

// JobID returns the correlation id of the most recently started job, for
// tagging log lines from concurrent voxelisation jobs across scenes.
func (d *Driver) JobID() uuid.UUID {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.jobID
}

// Start implements spec.md §4.7's transition table:
//   - NotStarted -> Ongoing: spawns a worker goroutine running fn.
//   - Ongoing -> Ongoing: no-op, the in-flight request is ignored.
//   - Finished -> NotStarted: joins the previous worker, then starts fresh.
func (d *Driver) Start(fn func() error) {
	switch d.Poll() {
	case Ongoing:
		return
	case Finished:
		d.Join() // drain the previous job before starting a new one.
	}

	d.mu.Lock()
	d.jobID = uuid.New()
	d.mu.Unlock()

	d.status.Store(int32(Ongoing))
	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		err := fn()
		d.mu.Lock()
		d.err = err
		d.mu.Unlock()
		d.status.Store(int32(Finished))
	}()
}

// Join blocks until the current worker (if any) completes, and returns the
// error it finished with. Calling Join when no job is or ever was running
// returns nil immediately. Simulate (spec.md §4.6) calls this
// unconditionally before touching the lattice.
func (d *Driver) Join() error {
	d.wg.Wait()
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.err
}
