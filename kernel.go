// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package pardd

import "math"

// Handle is a reference to a node of a BDD. It is the atomic unit of
// interactions and computations within a BDD. Handles are stable for the whole
// life of an engine: a node is never moved or reclaimed once allocated.
type Handle uint32

// InvalidHandle is the reserved sentinel used for absent values, both in the
// unique table (empty slots) and in the computed cache (empty entries). It is
// never a valid node reference.
const InvalidHandle Handle = math.MaxUint32

// The two constant nodes are always allocated at positions 0 and 1 of the node
// pool, outside of the unique table.
const (
	bddfalse Handle = 0
	bddtrue  Handle = 1
)

// termLevel is the level carried by the two terminal nodes. We use the largest
// representable value so that every proper variable compares smaller than a
// terminal in the level test of apply. The two terminals share the same level
// and are distinguished by handle identity only.
const termLevel uint32 = math.MaxUint32

// _MAXVAR is the maximal number of levels in the BDD. Levels are stored in a
// uint32 next to the termLevel sentinel, but we keep the limit well below so
// that shift amounts in weight computations stay sane.
const _MAXVAR uint32 = 1 << 21

// _DEFAULTPOOLSIZE is the default capacity of the node pool (and of the unique
// table, which always has the same number of slots). Large problems should
// raise it with the PoolSize option; the reference operating point is 1<<27
// slots for less than 1<<24 resident nodes.
const _DEFAULTPOOLSIZE int = 1 << 20

// _DEFAULTCACHESIZE is the default number of entries in the computed cache.
const _DEFAULTCACHESIZE int = 1 << 20
