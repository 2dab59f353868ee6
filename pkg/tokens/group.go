package tokens

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Group is a token document or sub-group. Entries are either Token or *Group
// and serialize to JSON in insertion order.
type Group struct {
	entries *orderedmap.OrderedMap[string, any]
}

// NewGroup returns an empty group.
func NewGroup() *Group {
	return &Group{entries: orderedmap.New[string, any]()}
}

// Add sets key to a token and returns g for chaining.
func (g *Group) Add(key string, t Token) *Group {
	g.entries.Set(key, t)
	return g
}

// AddGroup sets key to a nested group and returns g for chaining.
func (g *Group) AddGroup(key string, sub *Group) *Group {
	g.entries.Set(key, sub)
	return g
}

// Len returns the number of direct entries.
func (g *Group) Len() int {
	return g.entries.Len()
}

// Keys returns the direct entry keys in insertion order.
func (g *Group) Keys() []string {
	keys := make([]string, 0, g.entries.Len())
	for pair := g.entries.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}
	return keys
}

// Lookup resolves a token by path, e.g. Lookup("sana", "neon").
func (g *Group) Lookup(path ...string) (Token, bool) {
	if len(path) == 0 {
		return Token{}, false
	}

	v, ok := g.entries.Get(path[0])
	if !ok {
		return Token{}, false
	}

	switch v := v.(type) {
	case Token:
		if len(path) == 1 {
			return v, true
		}
	case *Group:
		return v.Lookup(path[1:]...)
	}
	return Token{}, false
}

// Sub returns the nested group stored under key.
func (g *Group) Sub(key string) (*Group, bool) {
	v, ok := g.entries.Get(key)
	if !ok {
		return nil, false
	}
	sub, ok := v.(*Group)
	return sub, ok
}

// Count returns the number of tokens in g and all nested groups.
func (g *Group) Count() int {
	n := 0
	for pair := g.entries.Oldest(); pair != nil; pair = pair.Next() {
		switch v := pair.Value.(type) {
		case Token:
			n++
		case *Group:
			n += v.Count()
		}
	}
	return n
}

// Entry is a token and its key path inside a document.
type Entry struct {
	Path  []string
	Token Token
}

// Flatten returns every token in g, depth first, in insertion order.
func (g *Group) Flatten() []Entry {
	var entries []Entry
	g.flatten(nil, &entries)
	return entries
}

func (g *Group) flatten(prefix []string, entries *[]Entry) {
	for pair := g.entries.Oldest(); pair != nil; pair = pair.Next() {
		path := append(prefix[:len(prefix):len(prefix)], pair.Key)
		switch v := pair.Value.(type) {
		case Token:
			*entries = append(*entries, Entry{Path: path, Token: v})
		case *Group:
			v.flatten(path, entries)
		}
	}
}

// MarshalJSON implements json.Marshaler, preserving entry order.
func (g *Group) MarshalJSON() ([]byte, error) {
	return g.entries.MarshalJSON()
}
