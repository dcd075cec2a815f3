package service

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// SessionRegistry enforces at most one live access token per account. State is
// process-local; running more than one instance requires relocating both maps
// to a shared store.
type SessionRegistry struct {
	mu      sync.RWMutex
	active  map[string]string   // accountID -> current access token
	revoked map[string]struct{} // tokens rejected regardless of validity
	tokens  TokenGenerator
	log     zerolog.Logger
}

func NewSessionRegistry(tokens TokenGenerator, log zerolog.Logger) *SessionRegistry {
	return &SessionRegistry{
		active:  make(map[string]string),
		revoked: make(map[string]struct{}),
		tokens:  tokens,
		log:     log,
	}
}

func (r *SessionRegistry) IsDuplicateLogin(accountID string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.active[accountID]
	return ok
}

// Register stores newToken as the account's active session. An existing session
// for the account is moved into the revoked set in the same critical section,
// so two tokens are never simultaneously active for one account.
func (r *SessionRegistry) Register(accountID, newToken string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if prev, ok := r.active[accountID]; ok {
		r.revoked[prev] = struct{}{}
	}
	r.active[accountID] = newToken
}

func (r *SessionRegistry) IsRevoked(token string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.revoked[token]
	return ok
}

// Revoke blacklists a single token without touching the active-session map.
// Used when a refresh token is rotated out.
func (r *SessionRegistry) Revoke(token string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.revoked[token] = struct{}{}
}

// Logout removes the account's active session and blacklists both tokens. The
// stored active token is blacklisted even when it differs from the supplied
// access token, so a forgotten session can never outlive its logout. The
// refresh token is blacklisted too, so a logged-out session cannot be
// resurrected through the refresh endpoint.
func (r *SessionRegistry) Logout(accountID, accessToken, refreshToken string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if current, ok := r.active[accountID]; ok && current != accessToken {
		r.revoked[current] = struct{}{}
	}
	delete(r.active, accountID)
	if accessToken != "" {
		r.revoked[accessToken] = struct{}{}
	}
	if refreshToken != "" {
		r.revoked[refreshToken] = struct{}{}
	}
}

// Compact drops revoked tokens whose embedded expiry has passed. Tokens the
// lenient reader cannot parse are dropped as well: they can never pass
// verification again, so keeping them only grows the set. Parsing happens
// outside the write lock so the sweep never stalls logins or revocation
// checks.
func (r *SessionRegistry) Compact() int {
	now := time.Now()

	r.mu.RLock()
	tokens := make([]string, 0, len(r.revoked))
	for token := range r.revoked {
		tokens = append(tokens, token)
	}
	r.mu.RUnlock()

	stale := make([]string, 0, len(tokens))
	for _, token := range tokens {
		claims, err := r.tokens.ClaimsIgnoringExpiry(token)
		if err != nil || claims.ExpiresAt == nil || claims.ExpiresAt.Time.Before(now) {
			stale = append(stale, token)
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	removed := 0
	for _, token := range stale {
		if _, ok := r.revoked[token]; ok {
			delete(r.revoked, token)
			removed++
		}
	}

	return removed
}

// StartCompaction sweeps the revoked set on the given interval until ctx is
// cancelled.
func (r *SessionRegistry) StartCompaction(ctx context.Context, interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				removed := r.Compact()
				r.log.Info().Int("removed", removed).Msg("blacklist compaction finished")
			}
		}
	}()
}
