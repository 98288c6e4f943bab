// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

/*
Package pardd implements a parallel Reduced Ordered Binary Decision Diagram
(ROBDD) engine: a canonical, shared DAG representation of Boolean functions
over a fixed set of variables, with a fork/join parallel apply.

# Basics

Each engine has a fixed number of variables declared when it is initialized
with New; each variable is an integer level in [0..Varnum), ordered by
declaration. Operations return a Handle, an opaque 32 bit identifier for a
vertex of the DAG. Handles 0 and 1 always denote the constant functions false
and true, and handles stay valid for the whole life of the engine: the node
pool is append-only and bounded, with no garbage collection or reordering.

Canonicity is the central invariant. The unique table guarantees that at most
one node exists for each (level, low, high) triple, that no node has equal
branches, and that levels strictly increase along every path. As a consequence
two equivalent formulas always compile to the same handle, and equivalence
checks are pointer comparisons.

# Parallelism

Apply recursions fork their low branch into a separate goroutine up to a
bounded depth derived from the Threads option. All workers share the unique
table, which publishes nodes with compare-and-swap, and the computed cache,
whose per-slot sequence locks make entries advisory. Results are deterministic
with respect to the number of workers: racing goroutines can duplicate work,
never diverge.

# Instruction streams

Besides the direct API (Ithvar, Apply, Not, ...), the engine consumes linear
instruction streams built with NewProgram and executed with Compile. This is
the hand-off point for front-ends such as the Lua surface in the script
package and the robdd command.

Use the build tag `debug` to collect unique-table statistics and unlock
logging of internal operations.
*/
package pardd
