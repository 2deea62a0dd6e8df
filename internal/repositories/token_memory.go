package repositories

import (
	"context"
	"sync"
)

// TokenMemoryRepository keeps access tokens in process memory. Tokens are
// lost on restart; used when Redis is not configured.
type TokenMemoryRepository struct {
	mu     sync.RWMutex
	tokens map[string]string
}

// NewTokenMemoryRepository creates an empty in-memory token store.
func NewTokenMemoryRepository() *TokenMemoryRepository {
	return &TokenMemoryRepository{tokens: make(map[string]string)}
}

func (r *TokenMemoryRepository) Get(_ context.Context, sessionID string) (string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.tokens[sessionID], nil
}

func (r *TokenMemoryRepository) Set(_ context.Context, sessionID, token string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tokens[sessionID] = token
	return nil
}

func (r *TokenMemoryRepository) Delete(_ context.Context, sessionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.tokens, sessionID)
	return nil
}
