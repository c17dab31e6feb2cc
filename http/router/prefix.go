package router

import (
	"fmt"
	"strings"
)

// A prefix scopes a whole Router under a leading path pattern, e.g., "/orgs/{org}/".
type prefix struct {
	raw      string
	segments []segment
}

func parsePrefix(pattern string) (*prefix, error) {
	trimmed := strings.TrimSuffix(pattern, "/")
	if trimmed == "" {
		return nil, fmt.Errorf("%w: prefix %q matches every path", ErrBadPattern, pattern)
	}

	segs, err := parsePath(trimmed)
	if err != nil {
		return nil, err
	}

	return &prefix{raw: pattern, segments: segs}, nil
}

// match matches the start of path against p, appending captured values to caps.
// The rest of path returns with a leading "/", which is the whole rest when nothing follows the prefix.
func (p *prefix) match(path string, caps *[]capture) (string, bool) {
	i := 0
	for _, seg := range p.segments {
		if i >= len(path) || path[i] != '/' {
			return "", false
		}

		j := len(path)
		if k := strings.IndexByte(path[i+1:], '/'); k >= 0 {
			j = i + 1 + k
		}

		text := path[i:j]
		switch seg.kind {
		case literalSegment:
			if text != seg.raw {
				return "", false
			}
		case patternSegment:
			v, ok := seg.capture(text)
			if !ok {
				return "", false
			}
			*caps = append(*caps, capture{name: seg.name, value: v})
		}

		i = j
	}

	rest := path[i:]
	if rest == "" {
		rest = "/"
	}

	return rest, true
}

// makePath fills the prefix with params, keeping a trailing "/" if the pattern has one.
func (p *prefix) makePath(params map[string]any) string {
	path := fillPath(p.segments, params)
	if strings.HasSuffix(p.raw, "/") {
		path += "/"
	}

	return path
}

// joinPaths concatenates a and b, dropping one "/" where a ends and b begins with one.
func joinPaths(a, b string) string {
	if strings.HasSuffix(a, "/") && strings.HasPrefix(b, "/") {
		return a + b[1:]
	}

	return a + b
}
