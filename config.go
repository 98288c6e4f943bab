// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package pardd

// configs stores the values of the tunable parameters of the engine.
type configs struct {
	varnum    int // number of BDD variables
	poolsize  int // capacity of the node arena and of the unique table
	cachesize int // number of entries in the computed cache
	threads   int // number of parallel workers inside apply (0 = GOMAXPROCS)
}

func makeconfigs(varnum int) *configs {
	return &configs{
		varnum:    varnum,
		poolsize:  _DEFAULTPOOLSIZE,
		cachesize: _DEFAULTCACHESIZE,
	}
}

// PoolSize is a configuration option (function). Used as a parameter in New it
// sets the capacity of the node pool and of the unique table, rounded up to a
// power of two. The capacity is fixed for the life of the engine: an operation
// trying to allocate past it fails with ErrPoolExhausted. Choose a value that
// keeps the steady-state load factor low; the table never rehashes.
func PoolSize(size int) func(*configs) {
	return func(c *configs) {
		if size > 0 {
			c.poolsize = size
		}
	}
}

// CacheSize is a configuration option (function). Used as a parameter in New
// it sets the number of entries in the computed cache, rounded up to a power
// of two. The cache is direct-mapped and lossy, so the size only trades memory
// against recomputation.
func CacheSize(size int) func(*configs) {
	return func(c *configs) {
		if size > 0 {
			c.cachesize = size
		}
	}
}

// Threads is a configuration option (function). Used as a parameter in New it
// sets the number of workers available to the fork/join recursion in apply.
// A value of zero or less selects GOMAXPROCS. With one worker the recursion is
// purely sequential.
func Threads(n int) func(*configs) {
	return func(c *configs) {
		c.threads = n
	}
}
