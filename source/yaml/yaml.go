// Package yaml exposes YAML documents (for example YAML-LD recipe collections)
// as a recipeld.Source so they decode through the same resolvers as JSON-LD.
package yaml

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/reoring/recipeld"
	eng "github.com/reoring/recipeld/internal/engine"
)

// NewBytes parses the first YAML document in b. Parse errors surface from the
// first NextToken call so callers handle them like JSON syntax errors.
func NewBytes(b []byte) recipeld.Source {
	return NewReader(bytes.NewReader(b))
}

// NewReader parses the first YAML document from r.
func NewReader(r io.Reader) recipeld.Source {
	src := &source{}
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			src.err = io.EOF
		} else {
			src.err = fmt.Errorf("yaml: %w", err)
		}
		return recipeld.SourceFromEngine(src, recipeld.NumberJSONNumber)
	}
	if err := src.flatten(&doc, 0); err != nil {
		src.err = err
		src.tokens = nil
	}
	return recipeld.SourceFromEngine(src, recipeld.NumberJSONNumber)
}

// maxAliasDepth bounds alias expansion so self-referencing anchors terminate.
const maxAliasDepth = 64

type source struct {
	tokens []eng.Token
	pos    int
	err    error
}

func (s *source) NextToken() (eng.Token, error) {
	if s.err != nil {
		return eng.Token{}, s.err
	}
	if s.pos >= len(s.tokens) {
		return eng.Token{}, io.EOF
	}
	t := s.tokens[s.pos]
	s.pos++
	return t, nil
}

func (s *source) Location() int64 { return -1 }

func (s *source) emit(t eng.Token) {
	t.Offset = -1
	s.tokens = append(s.tokens, t)
}

func (s *source) flatten(n *yaml.Node, aliasDepth int) error {
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return io.EOF
		}
		return s.flatten(n.Content[0], aliasDepth)
	case yaml.AliasNode:
		if aliasDepth >= maxAliasDepth {
			return fmt.Errorf("yaml: alias nesting exceeds %d at line %d", maxAliasDepth, n.Line)
		}
		return s.flatten(n.Alias, aliasDepth+1)
	case yaml.MappingNode:
		s.emit(eng.Token{Kind: eng.KindBeginObject})
		for i := 0; i+1 < len(n.Content); i += 2 {
			k := n.Content[i]
			if k.Kind != yaml.ScalarNode {
				return fmt.Errorf("yaml: non-scalar mapping key at line %d", k.Line)
			}
			s.emit(eng.Token{Kind: eng.KindKey, String: k.Value})
			if err := s.flatten(n.Content[i+1], aliasDepth); err != nil {
				return err
			}
		}
		s.emit(eng.Token{Kind: eng.KindEndObject})
	case yaml.SequenceNode:
		s.emit(eng.Token{Kind: eng.KindBeginArray})
		for _, c := range n.Content {
			if err := s.flatten(c, aliasDepth); err != nil {
				return err
			}
		}
		s.emit(eng.Token{Kind: eng.KindEndArray})
	case yaml.ScalarNode:
		s.emit(scalarToken(n))
	default:
		return fmt.Errorf("yaml: unsupported node kind %d at line %d", n.Kind, n.Line)
	}
	return nil
}

func scalarToken(n *yaml.Node) eng.Token {
	switch n.ShortTag() {
	case "!!null":
		return eng.Token{Kind: eng.KindNull}
	case "!!bool":
		if b, err := strconv.ParseBool(n.Value); err == nil {
			return eng.Token{Kind: eng.KindBool, Bool: b}
		}
	case "!!int":
		if i, err := strconv.ParseInt(n.Value, 0, 64); err == nil {
			return eng.Token{Kind: eng.KindNumber, Number: strconv.FormatInt(i, 10)}
		}
	case "!!float":
		if f, err := strconv.ParseFloat(n.Value, 64); err == nil {
			return eng.Token{Kind: eng.KindNumber, Number: strconv.FormatFloat(f, 'g', -1, 64)}
		}
	}
	return eng.Token{Kind: eng.KindString, String: n.Value}
}
