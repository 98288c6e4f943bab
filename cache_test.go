// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package pardd

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCacheStoreLookup(t *testing.T) {
	c := newcache(64)
	assert.Equal(t, InvalidHandle, c.lookup(4, 9, OPand))
	c.store(4, 9, OPand, 17)
	assert.Equal(t, Handle(17), c.lookup(4, 9, OPand))
	assert.Equal(t, InvalidHandle, c.lookup(4, 9, OPor))
	// (2, 11) hashes to the same slot as (4, 9); the key must not match
	assert.Equal(t, InvalidHandle, c.lookup(2, 11, OPand))
	c.store(2, 11, OPand, 23)
	assert.Equal(t, Handle(23), c.lookup(2, 11, OPand))
	assert.Equal(t, InvalidHandle, c.lookup(4, 9, OPand))
}

func TestCacheEviction(t *testing.T) {
	c := newcache(4)
	c.store(2, 2, OPand, 7)
	// (6, 2) hashes to the same slot as (2, 2) with 4 entries
	c.store(6, 2, OPand, 9)
	assert.Equal(t, InvalidHandle, c.lookup(2, 2, OPand))
	assert.Equal(t, Handle(9), c.lookup(6, 2, OPand))
}

// Concurrent readers and writers on a deliberately tiny cache. Every stored
// result is derived from its key, so any non-miss lookup can be checked for
// consistency: a torn slot must never surface.
func TestCacheConcurrent(t *testing.T) {
	c := newcache(8)
	expected := func(a, b Handle, op Operator) Handle {
		return Handle(uint32(a)*31 + uint32(b)*17 + uint32(op))
	}
	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func(seed uint32) {
			defer wg.Done()
			state := seed
			for i := 0; i < 20000; i++ {
				state = state*1664525 + 1013904223
				a := Handle(state % 97)
				b := Handle((state >> 8) % 89)
				op := Operator(state % 3)
				if state%2 == 0 {
					c.store(a, b, op, expected(a, b, op))
					continue
				}
				if res := c.lookup(a, b, op); res != InvalidHandle && res != expected(a, b, op) {
					t.Errorf("inconsistent entry for (%d,%d,%s): got %d", a, b, op, res)
					return
				}
			}
		}(uint32(w + 1))
	}
	wg.Wait()
}
