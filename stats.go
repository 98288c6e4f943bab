// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package pardd

import (
	"fmt"
	"io"
)

// Stats returns information about the engine: occupancy of the node pool and
// hit rates of the computed cache. Unique-table counters are only collected in
// builds with the debug tag.
func (b *BDD) Stats() string {
	res := fmt.Sprintf("Varnum:     %d\n", b.varnum)
	res += fmt.Sprintf("Allocated:  %d\n", len(b.nodes))
	used := b.Size()
	r := (float64(used) / float64(len(b.nodes))) * 100
	res += fmt.Sprintf("Used:       %d  (%.3g %%)\n", used, r)
	res += fmt.Sprintf("Workers:    %d\n", b.workers)
	res += fmt.Sprintf("Cache Hit:  %d\n", b.cache.hit.Load())
	res += fmt.Sprintf("Cache Miss: %d", b.cache.miss.Load())
	if _DEBUG {
		res += "\n"
		res += fmt.Sprintf("Unique Access:  %d\n", b.uniqueAccess.Load())
		res += fmt.Sprintf("Unique Hit:     %d\n", b.uniqueHit.Load())
		res += fmt.Sprintf("Unique Miss:    %d", b.uniqueMiss.Load())
	}
	return res
}

// canonum assigns canonical numbers to the nodes reachable from roots, in
// depth-first order, low branch before high branch. Terminals keep the numbers
// 0 and 1. The numbering only depends on the shape of the DAG and on the order
// of the roots, never on the handles themselves, so two isomorphic compilation
// results number identically whatever the thread interleaving that built them.
func (b *BDD) canonum(roots []Handle) (order []Handle, num map[Handle]int) {
	num = map[Handle]int{bddfalse: 0, bddtrue: 1}
	var visit func(n Handle)
	visit = func(n Handle) {
		if n < 2 {
			return
		}
		if _, ok := num[n]; ok {
			return
		}
		num[n] = len(num)
		order = append(order, n)
		visit(b.low(n))
		visit(b.high(n))
	}
	for _, r := range roots {
		visit(r)
	}
	return order, num
}

// varname returns the display name of a level, falling back to a synthetic
// name when the engine was built without input names.
func (b *BDD) varname(level uint32) string {
	if int(level) < len(b.names) {
		return b.names[level]
	}
	return fmt.Sprintf("x%d", level)
}

// FDump writes a canonical textual description of the subgraphs rooted at
// roots: one line per node, children written as canonical numbers. The output
// is identical for isomorphic DAGs, which makes it a stable target for golden
// files and determinism checks.
func (b *BDD) FDump(w io.Writer, roots ...Handle) error {
	for _, r := range roots {
		b.node(r)
	}
	order, num := b.canonum(roots)
	for _, r := range roots {
		if _, err := fmt.Fprintf(w, "root %d\n", num[r]); err != nil {
			return err
		}
	}
	for _, n := range order {
		nd := b.node(n)
		_, err := fmt.Fprintf(w, "%d [%s] ? %d : %d\n", num[n], b.varname(nd.level), num[nd.low], num[nd.high])
		if err != nil {
			return err
		}
	}
	return nil
}
