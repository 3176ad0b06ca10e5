package memory

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"jeopardy-board-service/internal/domain"
)

// SetSource fetches a question set from a backing store (repository,
// document DB).
type SetSource interface {
	Get(ctx context.Context, id string) (domain.QuestionSet, error)
}

// CachedSetProvider caches question sets with TTL so repeated game starts
// against the same stored set skip the backing store.
type CachedSetProvider struct {
	source SetSource
	ttl    time.Duration
	clock  func() time.Time
	sf     singleflight.Group
	rnd    *rand.Rand

	mu    sync.RWMutex
	cache map[string]cachedSet
}

type cachedSet struct {
	set       domain.QuestionSet
	expiresAt time.Time
}

func NewCachedSetProvider(source SetSource, ttl time.Duration) *CachedSetProvider {
	return &CachedSetProvider{
		source: source,
		ttl:    ttl,
		clock:  time.Now,
		rnd:    rand.New(rand.NewSource(time.Now().UnixNano())),
		cache:  make(map[string]cachedSet),
	}
}

func (p *CachedSetProvider) Get(ctx context.Context, id string) (domain.QuestionSet, error) {
	now := p.clock()

	p.mu.RLock()
	if entry, ok := p.cache[id]; ok && entry.expiresAt.After(now) {
		p.mu.RUnlock()
		return entry.set.Clone(), nil
	}
	p.mu.RUnlock()

	result, err, _ := p.sf.Do(id, func() (interface{}, error) {
		now := p.clock()
		p.mu.RLock()
		if entry, ok := p.cache[id]; ok && entry.expiresAt.After(now) {
			p.mu.RUnlock()
			return entry.set, nil
		}
		p.mu.RUnlock()

		set, err := p.source.Get(ctx, id)
		if err != nil {
			return domain.QuestionSet{}, err
		}

		p.mu.Lock()
		p.cache[id] = cachedSet{
			set:       set,
			expiresAt: now.Add(p.ttlWithJitter()),
		}
		p.mu.Unlock()
		return set, nil
	})
	if err != nil {
		return domain.QuestionSet{}, err
	}
	return result.(domain.QuestionSet).Clone(), nil
}

// Invalidate drops a cached entry, e.g. after a rename.
func (p *CachedSetProvider) Invalidate(id string) {
	p.mu.Lock()
	delete(p.cache, id)
	p.mu.Unlock()
}

func (p *CachedSetProvider) ttlWithJitter() time.Duration {
	if p.ttl <= 0 {
		return 0
	}
	// add up to 10% jitter to spread expirations
	jitterMax := int64(p.ttl) / 10
	return p.ttl + time.Duration(p.rnd.Int63n(jitterMax+1))
}
