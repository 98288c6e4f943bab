// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package pardd

import (
	"fmt"
	"io"

	"github.com/emicklei/dot"
)

// WriteDot writes a GraphViz DOT description of the subgraphs reachable from
// the given roots. Terminals are drawn as boxes labeled 0 and 1, internal
// nodes carry their input name, low edges are dotted and high edges are solid.
// Each root gets a filled marker labeled with its name and its total
// satisfying-assignment count. A non-empty title becomes the graph label.
//
// Nodes are identified by their canonical numbers (see FDump), so the output
// depends only on the shape of the DAG: compiling the same program with
// different worker counts yields byte-identical graphs.
func (b *BDD) WriteDot(w io.Writer, title string, roots []RootNode) error {
	g := dot.NewGraph(dot.Directed)
	if title != "" {
		g.Attr("label", title)
	}
	handles := make([]Handle, 0, len(roots))
	for _, r := range roots {
		b.node(r.Node)
		handles = append(handles, r.Node)
	}
	order, num := b.canonum(handles)

	vertex := func(n Handle) dot.Node {
		if n < 2 {
			v := g.Node(fmt.Sprintf("n%d", num[n]))
			v.Attr("shape", "box")
			v.Attr("label", fmt.Sprintf("%d", n))
			v.Attr("height", "0.3")
			v.Attr("width", "0.3")
			return v
		}
		v := g.Node(fmt.Sprintf("n%d", num[n]))
		v.Attr("label", b.varname(b.level(n)))
		return v
	}

	for _, n := range order {
		v := vertex(n)
		lo := vertex(b.low(n))
		hi := vertex(b.high(n))
		g.Edge(v, lo).Attr("style", "dotted")
		g.Edge(v, hi).Attr("style", "solid")
	}
	for _, r := range roots {
		m := g.Node("root_" + r.Name)
		m.Attr("style", "filled")
		m.Attr("label", fmt.Sprintf("%s (%s)", r.Name, b.Satcount(r.Node)))
		g.Edge(m, vertex(r.Node))
	}
	_, err := io.WriteString(w, g.String())
	return err
}
