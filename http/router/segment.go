package router

import (
	"fmt"
	"strings"
)

type segmentKind uint8

const (
	literalSegment segmentKind = iota
	patternSegment
)

// A segment is one "/"-led piece of a path pattern.
//
// A literal segment matches its raw text exactly.
// A pattern segment captures what sits between its prefix and suffix,
// e.g., "/a-{p1}.json" has the prefix "/a-", the name "p1", and the suffix ".json".
type segment struct {
	kind   segmentKind
	raw    string
	name   string
	prefix string
	suffix string
}

// parsePath splits path into segments on "/" boundaries.
// Each segment keeps its leading "/"; a trailing "/" is its own literal segment.
func parsePath(path string) ([]segment, error) {
	if path == "" || path[0] != '/' {
		return nil, fmt.Errorf("%w: %q must begin with /", ErrBadPattern, path)
	}

	var segs []segment
	names := make(map[string]struct{})
	for i := 0; i < len(path); {
		j := strings.IndexByte(path[i+1:], '/')
		if j < 0 {
			j = len(path)
		} else {
			j += i + 1
		}

		raw := path[i:j]
		if raw == "/" && j != len(path) {
			return nil, fmt.Errorf("%w: %q has an empty segment", ErrBadPattern, path)
		}

		seg, err := parseSegment(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: %q %s", ErrBadPattern, path, err)
		}

		if seg.kind == patternSegment {
			if _, ok := names[seg.name]; ok {
				return nil, fmt.Errorf("%w: %q repeats parameter %q", ErrBadPattern, path, seg.name)
			}
			names[seg.name] = struct{}{}
		}

		segs = append(segs, seg)
		i = j
	}

	return segs, nil
}

// parseSegment reads a single segment, allowing at most one {name} placeholder.
func parseSegment(raw string) (segment, error) {
	open := strings.IndexByte(raw, '{')
	closing := strings.IndexByte(raw, '}')
	if open < 0 && closing < 0 {
		return segment{kind: literalSegment, raw: raw}, nil
	}

	if open < 0 || closing < open || strings.Count(raw, "{") != 1 || strings.Count(raw, "}") != 1 {
		return segment{}, fmt.Errorf("has unbalanced braces in %q", raw)
	}

	name := raw[open+1 : closing]
	if name == "" {
		return segment{}, fmt.Errorf("has an empty parameter name in %q", raw)
	}

	for _, r := range name {
		if !isNameRune(r) {
			return segment{}, fmt.Errorf("has an invalid parameter name %q", name)
		}
	}

	return segment{
		kind:   patternSegment,
		raw:    raw,
		name:   name,
		prefix: raw[:open],
		suffix: raw[closing+1:],
	}, nil
}

func isNameRune(r rune) bool {
	return r == '_' || ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z') || ('0' <= r && r <= '9')
}

// capture returns the text a pattern segment captures from text,
// which must be exactly one request path segment.
// A capture is never empty.
func (s segment) capture(text string) (string, bool) {
	if len(text) <= len(s.prefix)+len(s.suffix) {
		return "", false
	}

	if !strings.HasPrefix(text, s.prefix) || !strings.HasSuffix(text, s.suffix) {
		return "", false
	}

	return text[len(s.prefix) : len(text)-len(s.suffix)], true
}

// fill writes the segment back out, substituting the value params holds for its name.
// A missing value leaves the placeholder as is.
func (s segment) fill(b *strings.Builder, params map[string]any) {
	if s.kind == literalSegment {
		b.WriteString(s.raw)
		return
	}

	v, ok := params[s.name]
	if !ok {
		b.WriteString(s.raw)
		return
	}

	b.WriteString(s.prefix)
	b.WriteString(fmt.Sprint(v))
	b.WriteString(s.suffix)
}

// fillPath writes every segment back out.
func fillPath(segs []segment, params map[string]any) string {
	var b strings.Builder
	for _, s := range segs {
		s.fill(&b, params)
	}

	return b.String()
}
