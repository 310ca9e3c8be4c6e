package search

import (
	"errors"
	"fmt"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
	da "github.com/lintang-b-s/campusnav/pkg/datastructure"
)

var ErrNameNotFound = errors.New("building not found")

type NameResolver interface {
	Resolve(query string) (da.Building, error)
}

// Resolver looks buildings up by abbreviation or partial name.
type Resolver struct {
	buildings []da.Building
}

func NewResolver(buildings []da.Building) *Resolver {
	return &Resolver{buildings: buildings}
}

// Resolve returns the first building whose abbreviation equals query. If there is
// none, it returns the first building whose full name contains query. Matching is
// case-sensitive.
func (r *Resolver) Resolve(query string) (da.Building, error) {
	for _, b := range r.buildings {
		if b.Abbrev == query {
			return b, nil
		}
	}

	for _, b := range r.buildings {
		if strings.Contains(b.Fullname, query) {
			return b, nil
		}
	}

	return da.Building{}, fmt.Errorf("%q: %w", query, ErrNameNotFound)
}

// CachedResolver memoises successful lookups. Misses are not cached.
type CachedResolver struct {
	resolver NameResolver
	cache    *lru.Cache[string, da.Building]
}

func NewCachedResolver(resolver NameResolver, size int) (*CachedResolver, error) {
	cache, err := lru.New[string, da.Building](size)
	if err != nil {
		return nil, err
	}
	return &CachedResolver{resolver: resolver, cache: cache}, nil
}

func (c *CachedResolver) Resolve(query string) (da.Building, error) {
	if b, ok := c.cache.Get(query); ok {
		return b, nil
	}

	b, err := c.resolver.Resolve(query)
	if err != nil {
		return da.Building{}, err
	}
	c.cache.Add(query, b)
	return b, nil
}

func (c *CachedResolver) Len() int {
	return c.cache.Len()
}
