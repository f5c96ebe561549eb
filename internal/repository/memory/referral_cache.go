package memory

import (
	"strings"
	"time"

	"legal-letter-be/internal/entity"

	"github.com/patrickmn/go-cache"
)

// ReferralCache remembers resolved contractor username codes. Only positive
// lookups are stored, so a newly registered contractor is never shadowed.
type ReferralCache struct {
	cache *cache.Cache
}

func NewReferralCache(ttl time.Duration) *ReferralCache {
	return &ReferralCache{
		cache: cache.New(ttl, 2*ttl),
	}
}

func key(code string) string {
	return strings.ToLower(strings.TrimSpace(code))
}

func (c *ReferralCache) Save(code string, referral entity.Referral) {
	c.cache.Set(key(code), referral, cache.DefaultExpiration)
}

func (c *ReferralCache) Get(code string) (entity.Referral, bool) {
	if x, found := c.cache.Get(key(code)); found {
		return x.(entity.Referral), true
	}
	return entity.Referral{}, false
}

func (c *ReferralCache) Delete(code string) {
	c.cache.Delete(key(code))
}
