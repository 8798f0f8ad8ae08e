package sandbox

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/GriffinCanCode/dsaviz/internal/shared/types"
)

var (
	ErrPoolClosed = errors.New("sandbox pool is closed")
	ErrTimeout    = errors.New("sandbox acquisition timeout")
)

// acquireTimeout bounds how long Acquire waits for a free runtime
const acquireTimeout = 5 * time.Second

// Pool manages a pool of reusable sandboxes
type Pool struct {
	config    Config
	sandboxes chan *Runtime
	size      int
	mu        sync.RWMutex
	closed    bool
	discarded int
}

// PoolStats is a point-in-time view of the pool
type PoolStats struct {
	Size      int  `json:"size"`
	Available int  `json:"available"`
	InUse     int  `json:"in_use"`
	Discarded int  `json:"discarded"`
	Closed    bool `json:"closed"`
}

// NewPool creates a sandbox pool
func NewPool(config Config, size int) (*Pool, error) {
	if size <= 0 {
		size = 4
	}

	pool := &Pool{
		config:    config,
		sandboxes: make(chan *Runtime, size),
		size:      size,
	}

	// Pre-create sandboxes
	for i := 0; i < size; i++ {
		sandbox, err := New(config)
		if err != nil {
			pool.Close()
			return nil, err
		}
		pool.sandboxes <- sandbox
	}

	return pool, nil
}

// Acquire gets a sandbox from pool with timeout
func (p *Pool) Acquire(ctx context.Context) (*Runtime, error) {
	p.mu.RLock()
	if p.closed {
		p.mu.RUnlock()
		return nil, ErrPoolClosed
	}
	p.mu.RUnlock()

	timer := time.NewTimer(acquireTimeout)
	defer timer.Stop()

	select {
	case sandbox, ok := <-p.sandboxes:
		if !ok {
			return nil, ErrPoolClosed
		}
		return sandbox, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-timer.C:
		return nil, ErrTimeout
	}
}

// Release returns sandbox to pool with a fresh VM. A runtime abandoned
// after a timeout is replaced instead of reused.
func (p *Pool) Release(sandbox *Runtime) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return sandbox.Close()
	}

	if sandbox.Abandoned() {
		sandbox.Close()
		p.discarded++
		replacement, err := New(p.config)
		if err != nil {
			return err
		}
		sandbox = replacement
	} else if err := sandbox.Reset(); err != nil {
		sandbox.Close()
		p.discarded++
		replacement, newErr := New(p.config)
		if newErr != nil {
			return errors.Join(err, newErr)
		}
		sandbox = replacement
	}

	// The channel holds every runtime the pool owns; this send never blocks
	p.sandboxes <- sandbox
	return nil
}

// Execute runs source on a pooled runtime
func (p *Pool) Execute(ctx context.Context, source string, kind types.Kind) (*Result, error) {
	sandbox, err := p.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer p.Release(sandbox)

	return sandbox.Execute(ctx, source, kind)
}

// Close closes pool and all sandboxes
func (p *Pool) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return nil
	}

	p.closed = true
	close(p.sandboxes)

	// Close all sandboxes
	for sandbox := range p.sandboxes {
		sandbox.Close()
	}

	return nil
}

// Stats returns pool statistics
func (p *Pool) Stats() PoolStats {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return PoolStats{
		Size:      p.size,
		Available: len(p.sandboxes),
		InUse:     p.size - len(p.sandboxes),
		Discarded: p.discarded,
		Closed:    p.closed,
	}
}
