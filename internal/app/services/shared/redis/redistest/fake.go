// Package redistest provides an in-memory RedisRepository for tests.
package redistest

import (
	"clinic-console-service/internal/app/contracts"
	"context"
	"sort"
	"sync"
	"time"

	"github.com/goccy/go-json"
)

type entry struct {
	value     string
	expiresAt time.Time
}

// Repository mirrors the behaviour of the real repository: values are stored
// as JSON and missing keys read as "".
type Repository struct {
	mu      sync.Mutex
	now     func() time.Time
	strings map[string]entry
	sets    map[string]map[string]struct{}
	setExp  map[string]time.Time
	ttls    map[string]time.Duration
}

var _ contracts.RedisRepository = (*Repository)(nil)

func New() *Repository {
	return &Repository{
		now:     time.Now,
		strings: map[string]entry{},
		sets:    map[string]map[string]struct{}{},
		setExp:  map[string]time.Time{},
		ttls:    map[string]time.Duration{},
	}
}

func (r *Repository) Delete(ctx context.Context, keys ...string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, key := range keys {
		delete(r.strings, key)
		delete(r.sets, key)
		delete(r.setExp, key)
		delete(r.ttls, key)
	}
	return nil
}

func (r *Repository) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.setLocked(key, string(raw), exp)
	return nil
}

func (r *Repository) Get(ctx context.Context, key string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.getLocked(key)
	if !ok {
		return "", nil
	}
	return e.value, nil
}

func (r *Repository) IncrementWithTTL(ctx context.Context, key string, ttl time.Duration) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var count int64
	e, ok := r.getLocked(key)
	if ok {
		if err := json.Unmarshal([]byte(e.value), &count); err != nil {
			return 0, err
		}
	}
	count++
	raw, _ := json.Marshal(count)
	if ok {
		e.value = string(raw)
		r.strings[key] = e
	} else {
		r.setLocked(key, string(raw), ttl)
	}
	return count, nil
}

func (r *Repository) AddToSet(ctx context.Context, key string, values ...interface{}) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	set, ok := r.liveSetLocked(key)
	if !ok {
		set = map[string]struct{}{}
		r.sets[key] = set
	}
	for _, value := range values {
		if s, ok := value.(string); ok {
			set[s] = struct{}{}
			continue
		}
		raw, err := json.Marshal(value)
		if err != nil {
			return err
		}
		set[string(raw)] = struct{}{}
	}
	return nil
}

func (r *Repository) GetSetMembers(ctx context.Context, key string) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	set, _ := r.liveSetLocked(key)
	members := make([]string, 0, len(set))
	for member := range set {
		members = append(members, member)
	}
	sort.Strings(members)
	return members, nil
}

func (r *Repository) Expire(ctx context.Context, key string, exp time.Duration) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.expireLocked(key, exp)
	return nil
}

func (r *Repository) ExpireGT(ctx context.Context, key string, exp time.Duration) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	var deadline time.Time
	if e, ok := r.getLocked(key); ok {
		deadline = e.expiresAt
	} else if _, ok := r.liveSetLocked(key); ok {
		deadline = r.setExp[key]
	} else {
		return nil
	}
	if deadline.IsZero() || r.now().Add(exp).After(deadline) {
		r.expireLocked(key, exp)
	}
	return nil
}

func (r *Repository) TrySetNX(ctx context.Context, key string, value interface{}, exp time.Duration) (bool, error) {
	raw, err := json.Marshal(value)
	if err != nil {
		return false, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.getLocked(key); ok {
		return false, nil
	}
	r.setLocked(key, string(raw), exp)
	return true, nil
}

// Has reports whether key holds a string or a set.
func (r *Repository) Has(key string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.getLocked(key); ok {
		return true
	}
	_, ok := r.liveSetLocked(key)
	return ok
}

// Len counts the live keys.
func (r *Repository) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	count := 0
	for key := range r.sets {
		if _, ok := r.liveSetLocked(key); ok {
			count++
		}
	}
	for key := range r.strings {
		if _, ok := r.getLocked(key); ok {
			count++
		}
	}
	return count
}

// TTL returns the last expiry applied to key.
func (r *Repository) TTL(key string) time.Duration {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.ttls[key]
}

// Advance moves the fake clock forward.
func (r *Repository) Advance(d time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	current := r.now()
	r.now = func() time.Time { return current.Add(d) }
}

func (r *Repository) setLocked(key, value string, exp time.Duration) {
	e := entry{value: value}
	if exp > 0 {
		e.expiresAt = r.now().Add(exp)
		r.ttls[key] = exp
	}
	r.strings[key] = e
}

func (r *Repository) getLocked(key string) (entry, bool) {
	e, ok := r.strings[key]
	if !ok {
		return entry{}, false
	}
	if !e.expiresAt.IsZero() && !r.now().Before(e.expiresAt) {
		delete(r.strings, key)
		return entry{}, false
	}
	return e, true
}

func (r *Repository) expireLocked(key string, exp time.Duration) {
	r.ttls[key] = exp
	if e, ok := r.strings[key]; ok {
		e.expiresAt = r.now().Add(exp)
		r.strings[key] = e
	}
	if _, ok := r.sets[key]; ok {
		r.setExp[key] = r.now().Add(exp)
	}
}

func (r *Repository) liveSetLocked(key string) (map[string]struct{}, bool) {
	set, ok := r.sets[key]
	if !ok {
		return nil, false
	}
	if deadline, ok := r.setExp[key]; ok && !r.now().Before(deadline) {
		delete(r.sets, key)
		delete(r.setExp, key)
		return nil, false
	}
	return set, true
}
