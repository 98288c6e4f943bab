// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package pardd

import (
	"errors"
	"fmt"
)

// ErrPoolExhausted is reported when the node arena reaches its fixed capacity.
// The condition is fatal: handles are stable and the engine provides no
// garbage collection, so there is nothing to reclaim. Start over with a larger
// PoolSize.
var ErrPoolExhausted = errors.New("node pool exhausted")

// ErrBadInstruction is reported by Compile for an unknown opcode or an operand
// id that is out of range or not yet assigned. It always indicates a bug in
// the front-end that produced the stream.
var ErrBadInstruction = errors.New("bad instruction")

func errVarnum(varnum int) error {
	return fmt.Errorf("bad number of variables (%d)", varnum)
}

// seterror records a fatal condition and returns the constant False so that
// calls can be chained. Only the first error is kept.
func (b *BDD) seterror(format string, a ...interface{}) Handle {
	return b.fail(fmt.Errorf(format, a...))
}
