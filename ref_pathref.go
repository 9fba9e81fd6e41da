package recipeld

import (
	"strconv"
	"strings"
)

// PathRef builds JSON Pointer paths in a chain-safe way. The zero value is the
// document root.
type PathRef struct {
	parts []string
}

// Root returns the document root path.
func Root() PathRef { return PathRef{} }

// At parses a JSON Pointer into a PathRef.
func At(path string) PathRef {
	if path == "" || path == "/" {
		return Root()
	}
	// Segments are kept in escaped form.
	return PathRef{parts: strings.Split(strings.TrimPrefix(path, "/"), "/")}
}

// Field appends an object member name.
func (p PathRef) Field(name string) PathRef {
	if name == "" {
		return p
	}
	return p.with(pointerEscaper.Replace(name))
}

// Index appends an array index.
func (p PathRef) Index(i int) PathRef {
	return p.with(strconv.Itoa(i))
}

func (p PathRef) with(seg string) PathRef {
	parts := make([]string, len(p.parts), len(p.parts)+1)
	copy(parts, p.parts)
	return PathRef{parts: append(parts, seg)}
}

// RFC 6901 escaping.
var pointerEscaper = strings.NewReplacer("~", "~0", "/", "~1")

// Pointer renders the path as a JSON Pointer ("/" for the root).
func (p PathRef) Pointer() string {
	if len(p.parts) == 0 {
		return "/"
	}
	return "/" + strings.Join(p.parts, "/")
}

func (p PathRef) String() string { return p.Pointer() }
