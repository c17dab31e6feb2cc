package router

import (
	"sort"
	"strings"
)

// anyMethod registers a route for every method not otherwise registered at its path.
const anyMethod = "*"

// A capture is a parameter value taken from a request path.
type capture struct {
	name  string
	value string
}

// A patternEdge leads from a node to the child reached through a pattern segment.
type patternEdge struct {
	seg   segment
	child *node
}

// A node is one position in the route trie.
//
// literal holds children reached through a single literal segment, keyed by its text,
// along with shortcut entries keyed by a run of literal segments leading to the run's last node.
// patterns holds children reached through pattern segments, in registration order.
// routes holds the routes ending at the node, keyed by method.
//
// Nodes are created while registering routes and never removed.
type node struct {
	literal  map[string]*node
	patterns []patternEdge
	routes   map[string]*Route
}

// child returns the child reached through seg, creating it if needed.
func (n *node) child(seg segment) *node {
	if seg.kind == literalSegment {
		if next, ok := n.literal[seg.raw]; ok {
			return next
		}

		if n.literal == nil {
			n.literal = make(map[string]*node)
		}

		next := new(node)
		n.literal[seg.raw] = next
		return next
	}

	for _, e := range n.patterns {
		if e.seg.raw == seg.raw {
			return e.child
		}
	}

	next := new(node)
	n.patterns = append(n.patterns, patternEdge{seg: seg, child: next})
	return next
}

// insert adds rt under n, the trie root.
// A route already registered for the same path and method is an error.
func (n *node) insert(rt *Route) error {
	walked := make([]*node, 0, len(rt.segments)+1)
	walked = append(walked, n)

	cur := n
	for _, seg := range rt.segments {
		cur = cur.child(seg)
		walked = append(walked, cur)
	}

	if _, ok := cur.routes[rt.Method]; ok {
		return duplicateRouteError{method: rt.Method, path: rt.Path}
	}

	if cur.routes == nil {
		cur.routes = make(map[string]*Route)
	}
	cur.routes[rt.Method] = rt

	addShortcuts(rt.segments, walked)
	return nil
}

// addShortcuts links each node along the trailing run of literal segments
// straight to the run's last node, keyed by the rest of the run's text.
//
// walked[i] is the node reached after i segments.
// An existing entry under the same key is kept.
func addShortcuts(segs []segment, walked []*node) {
	start := len(segs)
	for start > 0 && segs[start-1].kind == literalSegment {
		start--
	}

	if len(segs)-start < 2 {
		return
	}

	leaf := walked[len(segs)]
	for i := start; i < len(segs)-1; i++ {
		var b strings.Builder
		for _, s := range segs[i:] {
			b.WriteString(s.raw)
		}

		key := b.String()
		if _, ok := walked[i].literal[key]; ok {
			continue
		}
		walked[i].literal[key] = leaf
	}
}

// find walks n, the trie root, along path and picks the route for method.
// Values captured by pattern segments are appended to caps in path order.
//
// find returns errNotFound if no node matches path or no routes end at it,
// and a *MethodNotAllowedError if routes end at it but none for method.
//
// find does not backtrack: once a segment matches a child, a later miss is final.
func (n *node) find(path, method string, caps *[]capture) (*Route, error) {
	cur := n
	if path == "/" {
		next, ok := n.literal["/"]
		if !ok {
			return nil, errNotFound
		}

		return next.route(method, path)
	}

walk:
	for i := 0; i < len(path); {
		if next, ok := cur.literal[path[i:]]; ok {
			cur = next
			break
		}

		j := len(path)
		if k := strings.IndexByte(path[i+1:], '/'); k >= 0 {
			j = i + 1 + k
		}

		seg := path[i:j]
		i = j

		if next, ok := cur.literal[seg]; ok {
			cur = next
			continue
		}

		for _, e := range cur.patterns {
			if v, ok := e.seg.capture(seg); ok {
				*caps = append(*caps, capture{name: e.seg.name, value: v})
				cur = e.child
				continue walk
			}
		}

		return nil, errNotFound
	}

	return cur.route(method, path)
}

// route picks the route registered at n for method, falling back to anyMethod.
func (n *node) route(method, path string) (*Route, error) {
	if len(n.routes) == 0 {
		return nil, errNotFound
	}

	if rt, ok := n.routes[method]; ok {
		return rt, nil
	}

	if rt, ok := n.routes[anyMethod]; ok {
		return rt, nil
	}

	allowed := make([]string, 0, len(n.routes))
	for m := range n.routes {
		allowed = append(allowed, m)
	}
	sort.Strings(allowed)

	return nil, &MethodNotAllowedError{Method: method, Path: path, allowed: allowed}
}
