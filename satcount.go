// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package pardd

import (
	"math/big"
	"sort"
)

// Satcount computes the number of satisfying variable assignments, over the
// whole universe of declared variables, for the function denoted by n. We
// return a result using arbitrary-precision arithmetic so that the count stays
// exact past 64 variables; the per-node Weight accessor gives the same
// information as a uint64 for the level of a node and the levels below it.
func (b *BDD) Satcount(n Handle) *big.Int {
	b.node(n)
	res := big.NewInt(0)
	res.SetBit(res, b.Label(n), 1)
	satc := make(map[Handle]*big.Int)
	return res.Mul(res, b.satcount(n, satc))
}

func (b *BDD) satcount(n Handle, satc map[Handle]*big.Int) *big.Int {
	if n < 2 {
		return big.NewInt(int64(n))
	}
	if res, ok := satc[n]; ok {
		return res
	}
	level := b.level(n)
	low := b.low(n)
	high := b.high(n)
	res := big.NewInt(0)
	two := big.NewInt(0)
	two.SetBit(two, int(b.effLevel(low)-level-1), 1)
	res.Add(res, two.Mul(two, b.satcount(low, satc)))
	two = big.NewInt(0)
	two.SetBit(two, int(b.effLevel(high)-level-1), 1)
	res.Add(res, two.Mul(two, b.satcount(high, satc)))
	satc[n] = res
	return res
}

// Allsat iterates through all legal variable assignments for n and calls the
// function f on each of them. We pass an int slice of length Varnum to f where
// each entry is either 0 if the variable is false, 1 if it is true, and -1 if
// it is a don't care. We stop and return an error if f returns an error at
// some point.
func (b *BDD) Allsat(n Handle, f func([]int) error) error {
	b.node(n)
	prof := make([]int, b.varnum)
	for k := range prof {
		prof[k] = -1
	}
	return b.allsat(n, prof, f)
}

func (b *BDD) allsat(n Handle, prof []int, f func([]int) error) error {
	if n == bddtrue {
		return f(prof)
	}
	if n == bddfalse {
		return nil
	}
	level := b.level(n)
	if low := b.low(n); low != bddfalse {
		prof[level] = 0
		for v := b.effLevel(low) - 1; v > level; v-- {
			prof[v] = -1
		}
		if err := b.allsat(low, prof, f); err != nil {
			return err
		}
	}
	if high := b.high(n); high != bddfalse {
		prof[level] = 1
		for v := b.effLevel(high) - 1; v > level; v-- {
			prof[v] = -1
		}
		if err := b.allsat(high, prof, f); err != nil {
			return err
		}
	}
	prof[level] = -1
	return nil
}

// Allnodes applies function f over the nodes accessible from the handles in
// the sequence n, or over every allocated node if n is absent. The parameters
// to f are the id, level, and ids of the low and high successors of each node.
// The two constant nodes always have ids 0 and 1 and their level is the number
// of declared variables. We stop and return an error if f returns an error at
// some point.
func (b *BDD) Allnodes(f func(id, level, low, high int) error, n ...Handle) error {
	if err := f(0, int(b.varnum), 0, 0); err != nil {
		return err
	}
	if err := f(1, int(b.varnum), 1, 1); err != nil {
		return err
	}
	if len(n) == 0 {
		for k := 2; k < b.Size(); k++ {
			nd := &b.nodes[k]
			if err := f(k, int(nd.level), int(nd.low), int(nd.high)); err != nil {
				return err
			}
		}
		return nil
	}
	seen := make(map[Handle]bool)
	for _, root := range n {
		b.node(root)
		b.reach(root, seen)
	}
	ids := make([]int, 0, len(seen))
	for h := range seen {
		if h > 1 {
			ids = append(ids, int(h))
		}
	}
	sort.Ints(ids)
	for _, k := range ids {
		nd := &b.nodes[k]
		if err := f(k, int(nd.level), int(nd.low), int(nd.high)); err != nil {
			return err
		}
	}
	return nil
}

func (b *BDD) reach(n Handle, seen map[Handle]bool) {
	if seen[n] {
		return
	}
	seen[n] = true
	if n < 2 {
		return
	}
	b.reach(b.low(n), seen)
	b.reach(b.high(n), seen)
}
