// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package pardd

import (
	"fmt"
)

// Opcode identifies one of the instructions understood by Compile.
type Opcode uint8

const (
	OpNewInput Opcode = iota // declare a fresh input variable
	OpAnd                    // dst = a and b
	OpOr                     // dst = a or b
	OpXor                    // dst = a xor b
	OpNot                    // dst = not a
)

var opcodenames = [5]string{
	OpNewInput: "newinput",
	OpAnd:      "and",
	OpOr:       "or",
	OpXor:      "xor",
	OpNot:      "not",
}

func (op Opcode) String() string {
	if int(op) >= len(opcodenames) {
		return fmt.Sprintf("opcode(%d)", int(op))
	}
	return opcodenames[op]
}

// Instr is one record of an instruction stream. Dst and the operands A, B are
// dense instruction ids; ids 0 and 1 are pre-bound to the constants false and
// true and ids assigned by a front-end start at 2. For OpNewInput, Var is the
// position of the fresh variable in the BDD ordering and Name its external
// name; A is the only operand of OpNot.
type Instr struct {
	Op   Opcode
	Dst  int
	A, B int
	Var  int
	Name string
}

// Root designates an instruction id whose compiled handle must be reported
// back to the caller, under a user-chosen name.
type Root struct {
	Name string
	ID   int
}

// Program is a linear instruction stream together with the list of roots of
// interest. A Program is the hand-off point between a front-end and the
// engine: front-ends only append instructions, and Compile only reads them.
// The zero Program is not ready for use; call NewProgram.
type Program struct {
	instrs []Instr
	inputs []string
	roots  []Root
	next   int
}

// Ids pre-bound before the first front-end assigned id.
const (
	FalseID = 0
	TrueID  = 1
)

// NewProgram returns an empty program. The first assigned id is 2.
func NewProgram() *Program {
	return &Program{next: 2}
}

// Input records the declaration of a fresh boolean input and returns its id.
// Variables take their position in the BDD ordering from the declaration
// order; declaring the same name twice gives two distinct variables.
func (p *Program) Input(name string) int {
	dst := p.nextid()
	p.instrs = append(p.instrs, Instr{Op: OpNewInput, Dst: dst, Var: len(p.inputs), Name: name})
	p.inputs = append(p.inputs, name)
	return dst
}

// And records a conjunction of two previously assigned ids and returns the id
// of the result.
func (p *Program) And(a, b int) int {
	return p.binop(OpAnd, a, b)
}

// Or records a disjunction of two previously assigned ids and returns the id
// of the result.
func (p *Program) Or(a, b int) int {
	return p.binop(OpOr, a, b)
}

// Xor records an exclusive or of two previously assigned ids and returns the
// id of the result.
func (p *Program) Xor(a, b int) int {
	return p.binop(OpXor, a, b)
}

// Not records the negation of a previously assigned id and returns the id of
// the result.
func (p *Program) Not(a int) int {
	dst := p.nextid()
	p.instrs = append(p.instrs, Instr{Op: OpNot, Dst: dst, A: a})
	return dst
}

// AddRoot marks id as a root of interest under the given name. Compile reports
// roots in AddRoot order.
func (p *Program) AddRoot(name string, id int) {
	p.roots = append(p.roots, Root{Name: name, ID: id})
}

// NumInputs returns the number of declared input variables.
func (p *Program) NumInputs() int {
	return len(p.inputs)
}

// InputName returns the name of the variable at the given level.
func (p *Program) InputName(level int) string {
	return p.inputs[level]
}

// Len returns the number of recorded instructions.
func (p *Program) Len() int {
	return len(p.instrs)
}

// Roots returns the recorded roots of interest, in AddRoot order.
func (p *Program) Roots() []Root {
	return p.roots
}

func (p *Program) binop(op Opcode, a, b int) int {
	dst := p.nextid()
	p.instrs = append(p.instrs, Instr{Op: op, Dst: dst, A: a, B: b})
	return dst
}

func (p *Program) nextid() int {
	id := p.next
	p.next++
	return id
}

// ************************************************************

// RootNode pairs the name of a root of interest with its compiled handle.
type RootNode struct {
	Name string
	Node Handle
}

// Compile executes the instruction stream in order and materializes every
// destination as a canonical handle. It constructs a fresh engine sized for
// the declared inputs (options are passed through to New) and returns it
// together with the handles of the requested roots.
//
// Instructions run sequentially; parallelism is internal to each apply. A
// malformed stream, an unknown opcode or an operand referencing an unassigned
// id, fails with ErrBadInstruction: those are front-end bugs, not user errors.
func Compile(p *Program, options ...func(*configs)) (*BDD, []RootNode, error) {
	b, err := New(p.NumInputs(), options...)
	if err != nil {
		return nil, nil, err
	}
	env := make([]Handle, p.next)
	for k := range env {
		env[k] = InvalidHandle
	}
	env[FalseID] = bddfalse
	env[TrueID] = bddtrue
	fetch := func(i, id int) (Handle, error) {
		if id < 0 || id >= len(env) || env[id] == InvalidHandle {
			return InvalidHandle, fmt.Errorf("%w: instruction %d reads unassigned id %d", ErrBadInstruction, i, id)
		}
		return env[id], nil
	}
	for i, in := range p.instrs {
		if in.Dst < 2 || in.Dst >= len(env) {
			return nil, nil, fmt.Errorf("%w: instruction %d writes id %d", ErrBadInstruction, i, in.Dst)
		}
		switch in.Op {
		case OpNewInput:
			if in.Var < 0 || in.Var >= p.NumInputs() {
				return nil, nil, fmt.Errorf("%w: instruction %d declares variable %d of %d", ErrBadInstruction, i, in.Var, p.NumInputs())
			}
			h, err := b.makenode(uint32(in.Var), bddfalse, bddtrue)
			if err != nil {
				return nil, nil, err
			}
			env[in.Dst] = h
		case OpAnd, OpOr, OpXor:
			x, err := fetch(i, in.A)
			if err != nil {
				return nil, nil, err
			}
			y, err := fetch(i, in.B)
			if err != nil {
				return nil, nil, err
			}
			// The three operators are commutative; ordering the operands
			// improves the hit rate of the computed cache.
			if x > y {
				x, y = y, x
			}
			env[in.Dst] = b.apply(x, y, instrop(in.Op), 0)
		case OpNot:
			x, err := fetch(i, in.A)
			if err != nil {
				return nil, nil, err
			}
			env[in.Dst] = b.apply(x, bddtrue, OPxor, 0)
		default:
			return nil, nil, fmt.Errorf("%w: instruction %d has unknown opcode %d", ErrBadInstruction, i, int(in.Op))
		}
		if err := b.Err(); err != nil {
			return nil, nil, err
		}
	}
	b.names = append([]string(nil), p.inputs...)
	roots := make([]RootNode, 0, len(p.roots))
	for _, r := range p.roots {
		h, err := fetch(len(p.instrs), r.ID)
		if err != nil {
			return nil, nil, err
		}
		roots = append(roots, RootNode{Name: r.Name, Node: h})
	}
	return b, roots, nil
}

func instrop(op Opcode) Operator {
	switch op {
	case OpAnd:
		return OPand
	case OpOr:
		return OPor
	default:
		return OPxor
	}
}
