package shader

import (
	"github.com/hashicorp/golang-lru/v2"
	"github.com/pkg/errors"
)

// Cache maps shader sources to linked programs. Programs are released
// when they are evicted.
type Cache struct {
	builder  *Builder
	programs *lru.Cache[Source, uint32]
}

// NewCache creates a cache holding at most size programs built by b.
func NewCache(b *Builder, size int) (*Cache, error) {
	programs, err := lru.NewWithEvict[Source, uint32](size, func(_ Source, program uint32) {
		b.Release(program)
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create program cache")
	}

	return &Cache{builder: b, programs: programs}, nil
}

// Get returns the program for src, building it if it is not cached.
// Failed builds are not cached.
func (c *Cache) Get(src Source) (uint32, error) {
	if program, ok := c.programs.Get(src); ok {
		return program, nil
	}

	program, err := c.builder.Build(src)
	if err != nil {
		return 0, err
	}

	c.programs.Add(src, program)
	return program, nil
}

// Len returns the number of cached programs.
func (c *Cache) Len() int {
	return c.programs.Len()
}

// Purge releases all cached programs.
func (c *Cache) Purge() {
	c.programs.Purge()
}
