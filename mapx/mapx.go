// Package mapx locates a single value inside decoded JSON-like data
// (map[string]any, []any, primitives) with a small jq-style path.
//
// Supported syntax:
//
//	.foo.bar           object field access
//	.foo[0]            array index (negative indexes count from the end)
//	.["complex key"]   quoted keys, single or double quotes
//	foo                bare leading identifier, same as .foo
//	.                  the root itself
package mapx

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"unicode"
)

type segmentKind int

const (
	segField segmentKind = iota
	segIndex
)

type segment struct {
	kind  segmentKind
	field string
	index int
}

// Path is a parsed path, safe to reuse across lookups.
type Path struct {
	raw  string
	segs []segment
}

func (p Path) String() string { return p.raw }

// Parse compiles path. An empty path or "." selects the root.
func Parse(path string) (Path, error) {
	segs, err := parse(path)
	if err != nil {
		return Path{}, err
	}
	return Path{raw: path, segs: segs}, nil
}

// MustParse is Parse that panics on error; meant for constants and tests.
func MustParse(path string) Path {
	p, err := Parse(path)
	if err != nil {
		panic(err)
	}
	return p
}

// Lookup walks root along the path. Missing fields, out-of-range indexes
// and type mismatches report found=false. A present JSON null is found
// with a nil value.
func (p Path) Lookup(root any) (value any, found bool) {
	node := root
	for _, s := range p.segs {
		switch s.kind {
		case segField:
			m, ok := asMap(node)
			if !ok {
				return nil, false
			}
			v, ok := m[s.field]
			if !ok {
				return nil, false
			}
			node = v
		case segIndex:
			arr, ok := asSlice(node)
			if !ok {
				return nil, false
			}
			idx := s.index
			if idx < 0 {
				idx = len(arr) + idx
			}
			if idx < 0 || idx >= len(arr) {
				return nil, false
			}
			node = arr[idx]
		}
	}
	return node, true
}

func asMap(v any) (map[string]any, bool) {
	if m, ok := v.(map[string]any); ok {
		return m, true
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String {
		return nil, false
	}
	out := make(map[string]any, rv.Len())
	for _, key := range rv.MapKeys() {
		out[key.String()] = rv.MapIndex(key).Interface()
	}
	return out, true
}

func asSlice(v any) ([]any, bool) {
	if s, ok := v.([]any); ok {
		return s, true
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice {
		return nil, false
	}
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out, true
}

// ----------------- Parser -----------------

type scanner struct {
	s string
	i int
}

func parse(path string) ([]segment, error) {
	s := &scanner{s: strings.TrimSpace(path)}
	var segs []segment
	for s.i < len(s.s) {
		ch := s.peek()
		switch {
		case ch == '.':
			s.i++
			if isIdentStart(s.peek()) {
				segs = append(segs, segment{kind: segField, field: s.readIdent()})
				continue
			}
			if s.peek() == '[' || s.peek() == 0 {
				continue
			}
			return nil, s.errf("unexpected character after '.': %q", s.peek())
		case ch == '[':
			s.i++
			s.skipSpaces()
			seg, err := s.readBracket()
			if err != nil {
				return nil, err
			}
			s.skipSpaces()
			if s.peek() != ']' {
				return nil, s.errf("] expected")
			}
			s.i++
			segs = append(segs, seg)
		case isIdentStart(ch) && len(segs) == 0 && s.i == 0:
			segs = append(segs, segment{kind: segField, field: s.readIdent()})
		default:
			return nil, s.errf("unexpected character %q", ch)
		}
	}
	return segs, nil
}

func (s *scanner) readBracket() (segment, error) {
	if q := s.peek(); q == '"' || q == '\'' {
		str, err := s.readQuoted()
		if err != nil {
			return segment{}, err
		}
		return segment{kind: segField, field: str}, nil
	}
	start := s.i
	if s.peek() == '-' {
		s.i++
	}
	for s.i < len(s.s) && s.s[s.i] >= '0' && s.s[s.i] <= '9' {
		s.i++
	}
	n, err := strconv.Atoi(s.s[start:s.i])
	if err != nil {
		return segment{}, s.errf("number or quoted key expected inside []")
	}
	return segment{kind: segIndex, index: n}, nil
}

func (s *scanner) peek() byte {
	if s.i >= len(s.s) {
		return 0
	}
	return s.s[s.i]
}

func (s *scanner) skipSpaces() {
	for s.i < len(s.s) && strings.IndexByte(" \t\r\n", s.s[s.i]) >= 0 {
		s.i++
	}
}

func (s *scanner) readIdent() string {
	start := s.i
	for s.i < len(s.s) && isIdentPart(s.s[s.i]) {
		s.i++
	}
	return s.s[start:s.i]
}

func isIdentStart(b byte) bool {
	return b == '_' || unicode.IsLetter(rune(b))
}

func isIdentPart(b byte) bool {
	return b == '_' || b == '-' || unicode.IsLetter(rune(b)) || unicode.IsDigit(rune(b))
}

func (s *scanner) readQuoted() (string, error) {
	quote := s.peek()
	s.i++
	var b strings.Builder
	for s.i < len(s.s) {
		ch := s.s[s.i]
		s.i++
		switch ch {
		case quote:
			return b.String(), nil
		case '\\':
			if s.i >= len(s.s) {
				return "", s.errf("unterminated escape")
			}
			esc := s.s[s.i]
			s.i++
			switch esc {
			case '\\', '\'', '"':
				b.WriteByte(esc)
			case 'n':
				b.WriteByte('\n')
			case 't':
				b.WriteByte('\t')
			default:
				return "", s.errf("unsupported escape: \\%c", esc)
			}
		default:
			b.WriteByte(ch)
		}
	}
	return "", s.errf("unterminated string literal")
}

func (s *scanner) errf(format string, a ...any) error {
	return fmt.Errorf("parse error at %d: "+format, append([]any{s.i}, a...)...)
}
