package geocode

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// Coordinate identifies a cached address.
type Coordinate struct {
	Latitude  float64
	Longitude float64
}

// Cache holds resolved addresses by coordinate. Entries expire after ttl; a
// zero ttl keeps them until evicted by size or invalidated.
type Cache struct {
	lru *expirable.LRU[Coordinate, string]
}

func NewCache(size int, ttl time.Duration) *Cache {
	return &Cache{lru: expirable.NewLRU[Coordinate, string](size, nil, ttl)}
}

func (c *Cache) Get(k Coordinate) (string, bool)  { return c.lru.Get(k) }
func (c *Cache) Add(k Coordinate, address string) { c.lru.Add(k, address) }
func (c *Cache) Remove(k Coordinate)              { c.lru.Remove(k) }
func (c *Cache) Purge()                           { c.lru.Purge() }
func (c *Cache) Len() int                         { return c.lru.Len() }
