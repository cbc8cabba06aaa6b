// Package graphio loads dual graphs exported by networkx: the adjacency
// format written by json_graph.adjacency_data and the node-link format
// written by json_graph.node_link_data.
//
// Node attributes are mapped onto core.Vertex: numbers become Attrs, booleans
// become 0/1, numeric strings become both an Attr and a Label, other strings
// become Labels. Nested values such as geometries are skipped. Edge numbers
// become edge Attrs.
package graphio

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/recom/core"
)

// ErrLoad wraps every failure of ReadJSON.
var ErrLoad = errors.New("graphio: load failed")

type document struct {
	Nodes     []map[string]any   `json:"nodes"`
	Adjacency [][]map[string]any `json:"adjacency"`
	Links     []map[string]any   `json:"links"`
	Edges     []map[string]any   `json:"edges"`
}

// ReadJSON decodes a networkx JSON graph from r and returns it frozen.
// required names node attributes every node must carry.
//
// Errors: ErrLoad, wrapping core.ErrMissingAttribute for absent required
// attributes and the JSON decoder's error for malformed input.
func ReadJSON(r io.Reader, required ...string) (*core.Graph, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	var doc document
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: decode: %w", ErrLoad, err)
	}
	if len(doc.Nodes) == 0 {
		return nil, fmt.Errorf("%w: no nodes", ErrLoad)
	}

	g := core.NewGraph(core.WithRequiredAttrs(required...))
	ids := make([]string, len(doc.Nodes))
	for i, n := range doc.Nodes {
		id, err := nodeID(n["id"])
		if err != nil {
			return nil, fmt.Errorf("%w: nodes[%d]: %w", ErrLoad, i, err)
		}
		if g.HasVertex(id) {
			return nil, fmt.Errorf("%w: nodes[%d]: duplicate id %q", ErrLoad, i, id)
		}
		if err = g.AddVertex(id); err != nil {
			return nil, fmt.Errorf("%w: nodes[%d]: %w", ErrLoad, i, err)
		}
		if err = setNodeAttrs(g, id, n); err != nil {
			return nil, fmt.Errorf("%w: node %q: %w", ErrLoad, id, err)
		}
		ids[i] = id
	}

	switch {
	case doc.Adjacency != nil:
		if len(doc.Adjacency) != len(ids) {
			return nil, fmt.Errorf("%w: %d adjacency rows for %d nodes", ErrLoad, len(doc.Adjacency), len(ids))
		}
		for i, row := range doc.Adjacency {
			for j, nb := range row {
				if err := addEdge(g, ids[i], nb["id"], nb); err != nil {
					return nil, fmt.Errorf("%w: adjacency[%d][%d]: %w", ErrLoad, i, j, err)
				}
			}
		}
	default:
		links := doc.Links
		if links == nil {
			links = doc.Edges
		}
		for i, l := range links {
			from, err := nodeID(l["source"])
			if err != nil {
				return nil, fmt.Errorf("%w: links[%d]: source: %w", ErrLoad, i, err)
			}
			if err = addEdge(g, from, l["target"], l); err != nil {
				return nil, fmt.Errorf("%w: links[%d]: %w", ErrLoad, i, err)
			}
		}
	}

	if err := g.Freeze(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoad, err)
	}

	return g, nil
}

// nodeID accepts JSON numbers and strings.
func nodeID(v any) (string, error) {
	switch id := v.(type) {
	case json.Number:
		return id.String(), nil
	case string:
		if id == "" {
			return "", core.ErrEmptyVertexID
		}
		return id, nil
	case nil:
		return "", errors.New("missing id")
	default:
		return "", fmt.Errorf("id of type %T", v)
	}
}

func setNodeAttrs(g *core.Graph, id string, attrs map[string]any) error {
	for name, v := range attrs {
		if name == "id" {
			continue
		}
		var err error
		switch val := v.(type) {
		case json.Number:
			var f float64
			if f, err = val.Float64(); err == nil {
				err = g.SetVertexAttr(id, name, f)
			}
		case bool:
			f := 0.0
			if val {
				f = 1
			}
			err = g.SetVertexAttr(id, name, f)
		case string:
			if f, perr := strconv.ParseFloat(val, 64); perr == nil {
				if err = g.SetVertexAttr(id, name, f); err != nil {
					return err
				}
			}
			err = g.SetVertexLabel(id, name, val)
		}
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}

	return nil
}

// addEdge links from to the node named by target, skipping pairs already
// linked (adjacency lists name every edge twice).
func addEdge(g *core.Graph, from string, target any, attrs map[string]any) error {
	to, err := nodeID(target)
	if err != nil {
		return fmt.Errorf("target: %w", err)
	}
	if !g.HasVertex(to) {
		return fmt.Errorf("target %q: %w", to, core.ErrVertexNotFound)
	}
	if _, ok := g.EdgeBetween(from, to); ok {
		return nil
	}
	eid, err := g.AddEdge(from, to)
	if err != nil {
		return err
	}
	for name, v := range attrs {
		switch name {
		case "id", "source", "target", "key":
			continue
		}
		if n, ok := v.(json.Number); ok {
			f, err := n.Float64()
			if err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
			if err = g.SetEdgeAttr(eid, name, f); err != nil {
				return err
			}
		}
	}

	return nil
}
