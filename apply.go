// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package pardd

// Apply performs the basic binary operations on BDD nodes. Left and right are
// the operands and op is the requested operation, one of:
//
//	Identifier    Description     Truth table
//
//	OPand         logical and     [0,0,0,1]
//	OPxor         logical xor     [0,1,1,0]
//	OPor          logical or      [0,1,1,1]
//
// The result is the canonical handle for the combined function: two calls with
// the same operands always return the same handle, whatever the number of
// workers involved.
func (b *BDD) Apply(left, right Handle, op Operator) Handle {
	if op < OPand || op > OPor {
		return b.seterror("unauthorized operation (%d) in call to Apply", op)
	}
	b.node(left)
	b.node(right)
	return b.apply(left, right, op, 0)
}

// Not returns the negation of the expression rooted at n. Negation is xor with
// the constant true, so it shares the cache and the parallel recursion of
// Apply.
func (b *BDD) Not(n Handle) Handle {
	return b.Apply(n, bddtrue, OPxor)
}

func (b *BDD) apply(left, right Handle, op Operator, depth int32) Handle {
	if b.failed.Load() {
		return bddfalse
	}
	// terminal rules that do not require looking at both operands
	switch op {
	case OPand:
		if left == right {
			return left
		}
		if left == bddfalse || right == bddfalse {
			return bddfalse
		}
		if left == bddtrue {
			return right
		}
		if right == bddtrue {
			return left
		}
	case OPor:
		if left == right {
			return left
		}
		if left == bddtrue || right == bddtrue {
			return bddtrue
		}
		if left == bddfalse {
			return right
		}
		if right == bddfalse {
			return left
		}
	case OPxor:
		if left == right {
			return bddfalse
		}
		if left == bddfalse {
			return right
		}
		if right == bddfalse {
			return left
		}
	}
	if left < 2 && right < 2 {
		return opres[op][left][right]
	}
	if res := b.cache.lookup(left, right, op); res != InvalidHandle {
		return res
	}
	// Shannon decomposition on the smallest level. Terminals carry the largest
	// possible level, so any proper variable wins the comparison.
	la := b.level(left)
	lb := b.level(right)
	v := min(la, lb)
	llow, lhigh := left, left
	if la == v {
		llow, lhigh = b.low(left), b.high(left)
	}
	rlow, rhigh := right, right
	if lb == v {
		rlow, rhigh = b.low(right), b.high(right)
	}
	var low, high Handle
	if depth < b.maxdepth {
		ch := make(chan Handle, 1)
		go func() {
			ch <- b.apply(llow, rlow, op, depth+1)
		}()
		high = b.apply(lhigh, rhigh, op, depth+1)
		low = <-ch
	} else {
		low = b.apply(llow, rlow, op, depth)
		high = b.apply(lhigh, rhigh, op, depth)
	}
	if b.failed.Load() {
		return bddfalse
	}
	res, err := b.makenode(v, low, high)
	if err != nil {
		return b.fail(err)
	}
	b.cache.store(left, right, op, res)
	return res
}
