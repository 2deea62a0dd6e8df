package registration

import (
	"context"
	"sync"
	"time"

	"github.com/sbilibin2017/gw-webshop-client/internal/logger"
)

// Factory builds the controller for a new client session.
type Factory func(sessionID string) *Controller

// Registry keeps one controller per client session. Controllers are never
// shared between sessions.
type Registry struct {
	mu          sync.Mutex
	controllers map[string]*Controller
	factory     Factory
	idleTTL     time.Duration
}

// NewRegistry creates a registry that evicts controllers idle for longer than idleTTL.
func NewRegistry(factory Factory, idleTTL time.Duration) *Registry {
	return &Registry{
		controllers: make(map[string]*Controller),
		factory:     factory,
		idleTTL:     idleTTL,
	}
}

// Get returns the controller of sessionID, creating it on first use.
func (r *Registry) Get(sessionID string) *Controller {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.controllers[sessionID]
	if !ok {
		c = r.factory(sessionID)
		r.controllers[sessionID] = c
	}
	return c
}

// Remove tears down the controller of sessionID, if any.
func (r *Registry) Remove(sessionID string) {
	r.mu.Lock()
	c, ok := r.controllers[sessionID]
	delete(r.controllers, sessionID)
	r.mu.Unlock()

	if ok {
		c.Close()
	}
}

// Len returns the number of live controllers.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.controllers)
}

// Sweep closes controllers idle since before now minus the idle TTL and
// returns how many were evicted. Controllers with a submission in flight are kept.
func (r *Registry) Sweep(now time.Time) int {
	r.mu.Lock()
	var evicted []*Controller
	for id, c := range r.controllers {
		last, evictable := c.idleSince()
		if evictable && now.Sub(last) > r.idleTTL {
			evicted = append(evicted, c)
			delete(r.controllers, id)
		}
	}
	r.mu.Unlock()

	for _, c := range evicted {
		c.Close()
	}
	return len(evicted)
}

// Run sweeps every interval until ctx is done, then closes all controllers.
func (r *Registry) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			r.closeAll()
			return
		case now := <-ticker.C:
			if n := r.Sweep(now); n > 0 {
				logger.Log.Infow("evicted idle registration forms", "count", n)
			}
		}
	}
}

func (r *Registry) closeAll() {
	r.mu.Lock()
	controllers := r.controllers
	r.controllers = make(map[string]*Controller)
	r.mu.Unlock()

	for _, c := range controllers {
		c.Close()
	}
}
