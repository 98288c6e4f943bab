// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package pardd

import (
	"log"
	"runtime"
	"sync"
	"sync/atomic"
)

// BDD is a Reduced Ordered Binary Decision Diagram engine. It owns an
// append-only arena of nodes, a unique (hash-cons) table enforcing structural
// sharing, and a computed cache for apply results. All operations returning a
// Handle are safe for concurrent use; the engine canonicalizes every node it
// creates, so results do not depend on the number of workers.
type BDD struct {
	varnum   uint32          // number of declared input variables
	names    []string        // input names, indexed by level; may be empty
	nodes    []node          // arena; slots 0 and 1 are the terminals
	head     atomic.Uint32   // next free arena slot
	table    []atomic.Uint32 // unique table; InvalidHandle marks an empty slot
	mask     uint32          // len(table) - 1
	cache    *cache          // computed cache for apply
	workers  int             // size of the fork/join pool
	maxdepth int32           // recursion depth below which apply forks

	failed atomic.Bool // set on the first fatal condition
	errmu  sync.Mutex
	err    error

	uniqueAccess atomic.Uint64 // accesses to the unique table (debug builds)
	uniqueHit    atomic.Uint64 // entries found in the unique table
	uniqueMiss   atomic.Uint64 // entries claimed after a miss
}

// New initializes an engine over varnum Boolean variables, with levels
// assigned in declaration order: variable 0 is the topmost in every diagram.
//
// Options can change the capacity of the node pool (PoolSize), the capacity of
// the computed cache (CacheSize) and the number of parallel workers used
// inside apply (Threads). The pool is bounded: the engine never garbage
// collects or rehashes, so handles stay valid until the engine is dropped, and
// exhausting the pool is fatal.
func New(varnum int, options ...func(*configs)) (*BDD, error) {
	if varnum < 0 || uint32(varnum) > _MAXVAR {
		return nil, errVarnum(varnum)
	}
	c := makeconfigs(varnum)
	for _, f := range options {
		f(c)
	}
	b := &BDD{
		varnum: uint32(varnum),
		nodes:  make([]node, pow2gte(c.poolsize)),
	}
	b.table = make([]atomic.Uint32, len(b.nodes))
	b.mask = uint32(len(b.table) - 1)
	for k := range b.table {
		b.table[k].Store(uint32(InvalidHandle))
	}
	// The two terminals live at positions 0 and 1 of the arena and are never
	// entered in the unique table.
	b.nodes[bddfalse] = node{level: termLevel, low: bddfalse, high: bddfalse, weight: 0}
	b.nodes[bddtrue] = node{level: termLevel, low: bddtrue, high: bddtrue, weight: 1}
	b.head.Store(2)
	b.workers = c.threads
	if b.workers <= 0 {
		b.workers = runtime.GOMAXPROCS(0)
	}
	b.maxdepth = int32(2 * (b.workers - 1))
	b.cache = newcache(c.cachesize)
	if _LOGLEVEL > 0 {
		log.Printf("new BDD with %d variables, %d pool slots, %d workers\n", varnum, len(b.nodes), b.workers)
	}
	return b, nil
}

// True returns the handle of the constant true function.
func (b *BDD) True() Handle {
	return bddtrue
}

// False returns the handle of the constant false function.
func (b *BDD) False() Handle {
	return bddfalse
}

// From returns a constant handle from a boolean value.
func (b *BDD) From(v bool) Handle {
	if v {
		return bddtrue
	}
	return bddfalse
}

// Varnum returns the number of declared variables.
func (b *BDD) Varnum() int {
	return int(b.varnum)
}

// Ithvar returns a handle representing the i'th variable. The requested
// variable must be in the range [0..Varnum); otherwise we set the error status
// of the engine and return the constant False.
func (b *BDD) Ithvar(i int) Handle {
	if i < 0 || uint32(i) >= b.varnum {
		return b.seterror("unknown variable (%d) in call to Ithvar", i)
	}
	res, err := b.makenode(uint32(i), bddfalse, bddtrue)
	if err != nil {
		return b.fail(err)
	}
	return res
}

// NIthvar returns a handle representing the negation of the i'th variable. See
// Ithvar for the range constraint.
func (b *BDD) NIthvar(i int) Handle {
	if i < 0 || uint32(i) >= b.varnum {
		return b.seterror("unknown variable (%d) in call to NIthvar", i)
	}
	res, err := b.makenode(uint32(i), bddtrue, bddfalse)
	if err != nil {
		return b.fail(err)
	}
	return res
}

// makenode returns the unique handle for the triple (level, low, high),
// claiming a fresh arena slot when none exists. The claim protocol is
// concurrent: the new node is fully written before its handle is published
// with a compare-and-swap on the empty table slot. A slot allocated by a
// goroutine that loses the race is leaked, which is acceptable because the
// arena is append-only and bounded.
func (b *BDD) makenode(level uint32, low, high Handle) (Handle, error) {
	if _DEBUG {
		b.uniqueAccess.Add(1)
	}
	// no-redundance rule: skip the node when both branches agree
	if low == high {
		return low, nil
	}
	pos := (level + uint32(low) + uint32(high)) & b.mask
	fresh := InvalidHandle
	for {
		cur := Handle(b.table[pos].Load())
		if cur == InvalidHandle {
			if fresh == InvalidHandle {
				next := b.head.Add(1) - 1
				if int(next) >= len(b.nodes) {
					return InvalidHandle, ErrPoolExhausted
				}
				fresh = Handle(next)
				b.nodes[fresh] = node{
					level:  level,
					low:    low,
					high:   high,
					weight: b.weightFor(level, low, high),
				}
			}
			if b.table[pos].CompareAndSwap(uint32(InvalidHandle), uint32(fresh)) {
				if _DEBUG {
					b.uniqueMiss.Add(1)
				}
				return fresh, nil
			}
			cur = Handle(b.table[pos].Load())
		}
		nd := &b.nodes[cur]
		if nd.level == level && nd.low == low && nd.high == high {
			if _DEBUG {
				b.uniqueHit.Add(1)
			}
			return cur, nil
		}
		pos = (pos + 1) & b.mask
	}
}

// weightFor computes the satisfying-assignment count of a fresh node from the
// weights of its children. Skipped levels double the count once per level.
func (b *BDD) weightFor(level uint32, low, high Handle) uint64 {
	wl := b.nodes[low].weight << (b.effLevel(low) - level - 1)
	wh := b.nodes[high].weight << (b.effLevel(high) - level - 1)
	return wl + wh
}

// Size returns the number of allocated nodes, terminals included. Slots leaked
// to lost unique-table races are counted: they occupy arena capacity.
func (b *BDD) Size() int {
	// failed allocations past the capacity still advance head
	if n := int(b.head.Load()); n < len(b.nodes) {
		return n
	}
	return len(b.nodes)
}

// Err returns the first fatal condition recorded by the engine, or nil.
func (b *BDD) Err() error {
	b.errmu.Lock()
	defer b.errmu.Unlock()
	return b.err
}

func (b *BDD) fail(err error) Handle {
	b.errmu.Lock()
	if b.err == nil {
		b.err = err
	}
	b.errmu.Unlock()
	b.failed.Store(true)
	if _DEBUG {
		log.Println(err)
	}
	return bddfalse
}

// pow2gte returns the smallest power of two greater than or equal to size,
// with a floor of 4 so that the terminals always fit.
func pow2gte(size int) int {
	n := 4
	for n < size {
		n <<= 1
	}
	return n
}
