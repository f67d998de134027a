package cache

import (
	"time"

	"github.com/bradfitz/gomemcache/memcache"
)

// Memcached backs the response cache with a memcached server. The client
// pools its connections and is safe for concurrent use.
type Memcached struct {
	client *memcache.Client
}

// NewMemcached creates a Store talking to the memcached server at endpoint
// (host:port).
func NewMemcached(endpoint string) *Memcached {
	return &Memcached{client: memcache.New(endpoint)}
}

func (m *Memcached) Get(key string) ([]byte, bool, error) {
	item, err := m.client.Get(key)
	if err == memcache.ErrCacheMiss {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return item.Value, true, nil
}

func (m *Memcached) Set(key string, val []byte, ttl time.Duration) error {
	return m.client.Set(&memcache.Item{
		Key:        key,
		Value:      val,
		Expiration: int32(ttl / time.Second),
	})
}
