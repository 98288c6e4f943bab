// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package pardd

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProgramBuilder(t *testing.T) {
	p := NewProgram()
	a := p.Input("a")
	b := p.Input("b")
	assert.Equal(t, 2, a)
	assert.Equal(t, 3, b)
	both := p.And(a, b)
	assert.Equal(t, 4, both)
	assert.Equal(t, 2, p.NumInputs())
	assert.Equal(t, 3, p.Len())
	assert.Equal(t, "a", p.InputName(0))
	assert.Equal(t, "b", p.InputName(1))
}

// majorityProgram records (a & b) | (a & c) | (b & c) with a single root.
func majorityProgram() *Program {
	p := NewProgram()
	a := p.Input("a")
	b := p.Input("b")
	c := p.Input("c")
	root := p.Or(p.Or(p.And(a, b), p.And(a, c)), p.And(b, c))
	p.AddRoot("maj", root)
	return p
}

func TestCompileMajority(t *testing.T) {
	b, roots, err := Compile(majorityProgram())
	require.NoError(t, err)
	require.Len(t, roots, 1)
	assert.Equal(t, "maj", roots[0].Name)
	assert.Equal(t, 0, big.NewInt(4).Cmp(b.Satcount(roots[0].Node)))
	checkInvariants(t, b, roots[0].Node)
}

func TestCompileConstants(t *testing.T) {
	p := NewProgram()
	a := p.Input("a")
	// ids 0 and 1 are pre-bound to the constants
	p.AddRoot("zero", p.And(a, FalseID))
	p.AddRoot("one", p.Or(a, TrueID))
	b, roots, err := Compile(p)
	require.NoError(t, err)
	assert.Equal(t, b.False(), roots[0].Node)
	assert.Equal(t, b.True(), roots[1].Node)
}

func TestCompileNot(t *testing.T) {
	p := NewProgram()
	a := p.Input("a")
	p.AddRoot("na", p.Not(a))
	b, roots, err := Compile(p)
	require.NoError(t, err)
	assert.Equal(t, b.NIthvar(0), roots[0].Node)
}

func TestCompileEmpty(t *testing.T) {
	b, roots, err := Compile(NewProgram())
	require.NoError(t, err)
	assert.Empty(t, roots)
	assert.Equal(t, 0, b.Varnum())
}

func TestCompileBadInstruction(t *testing.T) {
	// an operand id that was never assigned
	p := &Program{instrs: []Instr{{Op: OpAnd, Dst: 2, A: 7, B: 0}}, next: 3}
	_, _, err := Compile(p)
	require.ErrorIs(t, err, ErrBadInstruction)

	// an unknown opcode
	p = &Program{instrs: []Instr{{Op: Opcode(9), Dst: 2}}, next: 3}
	_, _, err = Compile(p)
	require.ErrorIs(t, err, ErrBadInstruction)

	// a destination clashing with the constants
	p = &Program{instrs: []Instr{{Op: OpNot, Dst: 1, A: 0}}, next: 3}
	_, _, err = Compile(p)
	require.ErrorIs(t, err, ErrBadInstruction)

	// a root over an unassigned id
	p = &Program{next: 2, roots: []Root{{Name: "r", ID: 5}}}
	_, _, err = Compile(p)
	require.ErrorIs(t, err, ErrBadInstruction)
}

func TestCompilePoolExhausted(t *testing.T) {
	p := NewProgram()
	acc := p.Input("x0")
	for i := 1; i < 64; i++ {
		acc = p.Xor(acc, p.Input("x"+string(rune('0'+i%10))))
	}
	p.AddRoot("acc", acc)
	_, _, err := Compile(p, PoolSize(16))
	require.ErrorIs(t, err, ErrPoolExhausted)
}
