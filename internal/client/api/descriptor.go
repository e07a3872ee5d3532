package api

import (
	"encoding/json"
	"net/url"
	"strings"
)

// Descriptor is the normalized unit of work passed to the request client.
// Immutable once constructed; the client clones the resulting HTTP request
// when it retries against a different origin.
type Descriptor struct {
	Method string
	Path   string
	Query  url.Values
	Body   any

	// Cacheable marks GET-shaped, side-effect-free calls whose responses may
	// be served from the read cache. Declared by domain methods, not here.
	Cacheable bool

	// AIRouted marks /api/ai/* calls eligible for the dual-origin fallback.
	AIRouted bool
}

// CacheKey returns a stable signature of method, path, sorted query and body
// parameters. url.Values.Encode sorts by key and encoding/json sorts map
// keys, so logically identical descriptors always collide.
func (d Descriptor) CacheKey() string {
	var b strings.Builder
	b.WriteString(d.Method)
	b.WriteByte(' ')
	b.WriteString(d.Path)
	if len(d.Query) > 0 {
		b.WriteByte('?')
		b.WriteString(d.Query.Encode())
	}
	if d.Body != nil {
		if body, err := json.Marshal(d.Body); err == nil {
			b.WriteByte('|')
			b.Write(body)
		}
	}
	return b.String()
}
