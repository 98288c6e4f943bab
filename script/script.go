// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

// Package script implements the Lua surface used to describe Boolean
// formulas. A script reads fresh variables from the global `input` table,
// combines them with the overloaded operators `*` (and), `+` (or), `^` (xor)
// and unary `-` (not), and assigns named results to the global `output`
// table. Running a script only records a linear instruction stream; nothing
// is evaluated until the stream is handed to pardd.Compile.
package script

import (
	"sort"

	"github.com/pkg/errors"
	lua "github.com/yuin/gopher-lua"

	"github.com/dalzilio/pardd"
)

const bddTypeName = "bdd"

// Result is the outcome of running a script: the recorded instruction
// stream, with the script's named outputs registered as roots, and the
// optional title declared by the script.
type Result struct {
	Program *pardd.Program
	Title   string
}

// Run loads and executes the Lua script at path.
func Run(path string) (*Result, error) {
	return run(func(l *lua.LState) error { return l.DoFile(path) })
}

// RunString executes src as a Lua chunk. It is mainly useful in tests.
func RunString(src string) (*Result, error) {
	return run(func(l *lua.LState) error { return l.DoString(src) })
}

func run(do func(*lua.LState) error) (*Result, error) {
	prog := pardd.NewProgram()
	l := lua.NewState()
	defer l.Close()
	registerBDDType(l, prog)
	registerInputTable(l, prog)
	out := l.NewTable()
	l.SetGlobal("output", out)

	if err := do(l); err != nil {
		return nil, errors.Wrap(err, "script error")
	}

	roots, err := collectRoots(out)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(roots))
	for name := range roots {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		prog.AddRoot(name, roots[name])
	}
	title := ""
	if s, ok := l.GetGlobal("title").(lua.LString); ok {
		title = string(s)
	}
	return &Result{Program: prog, Title: title}, nil
}

// registerBDDType installs the metatable shared by every BDD value. Values are
// userdata wrapping the instruction id they were assigned by the recorder.
func registerBDDType(l *lua.LState, prog *pardd.Program) {
	mt := l.NewTypeMetatable(bddTypeName)
	l.SetField(mt, "__mul", l.NewFunction(func(l *lua.LState) int {
		return pushID(l, prog.And(checkID(l, 1), checkID(l, 2)))
	}))
	l.SetField(mt, "__add", l.NewFunction(func(l *lua.LState) int {
		return pushID(l, prog.Or(checkID(l, 1), checkID(l, 2)))
	}))
	l.SetField(mt, "__pow", l.NewFunction(func(l *lua.LState) int {
		return pushID(l, prog.Xor(checkID(l, 1), checkID(l, 2)))
	}))
	l.SetField(mt, "__unm", l.NewFunction(func(l *lua.LState) int {
		return pushID(l, prog.Not(checkID(l, 1)))
	}))
}

// registerInputTable installs the read-only `input` table. Each read of a
// field declares a fresh variable, even when the same name is read twice; the
// variable order is the read order.
func registerInputTable(l *lua.LState, prog *pardd.Program) {
	tbl := l.NewTable()
	mt := l.NewTable()
	l.SetField(mt, "__index", l.NewFunction(func(l *lua.LState) int {
		name := l.CheckString(2)
		return pushID(l, prog.Input(name))
	}))
	l.SetField(mt, "__newindex", l.NewFunction(func(l *lua.LState) int {
		l.RaiseError("cannot write to the input table")
		return 0
	}))
	l.SetMetatable(tbl, mt)
	l.SetGlobal("input", tbl)
}

func collectRoots(out *lua.LTable) (map[string]int, error) {
	roots := make(map[string]int)
	var bad error
	out.ForEach(func(k, v lua.LValue) {
		name, ok := k.(lua.LString)
		if !ok {
			bad = errors.Errorf("output key %s is not a string", k.String())
			return
		}
		ud, ok := v.(*lua.LUserData)
		if !ok {
			bad = errors.Errorf("output.%s is not a bdd value", name)
			return
		}
		id, ok := ud.Value.(int)
		if !ok {
			bad = errors.Errorf("output.%s is not a bdd value", name)
			return
		}
		roots[string(name)] = id
	})
	if bad != nil {
		return nil, bad
	}
	return roots, nil
}

func pushID(l *lua.LState, id int) int {
	ud := l.NewUserData()
	ud.Value = id
	l.SetMetatable(ud, l.GetTypeMetatable(bddTypeName))
	l.Push(ud)
	return 1
}

func checkID(l *lua.LState, pos int) int {
	ud := l.CheckUserData(pos)
	if id, ok := ud.Value.(int); ok {
		return id
	}
	l.ArgError(pos, "bdd value expected")
	return 0
}
