package domain

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
)

// Catalog is an immutable, ordered collection of items.
// Titles resolve to the index of their first occurrence.
type Catalog struct {
	name        string
	items       []Item
	index       map[string]int
	documents   [][]string
	fingerprint string
}

// NewCatalog copies items into a new catalog and derives its lookup index,
// normalized genre documents and content fingerprint.
func NewCatalog(name string, items []Item) *Catalog {
	c := &Catalog{
		name:      name,
		items:     make([]Item, len(items)),
		index:     make(map[string]int, len(items)),
		documents: make([][]string, len(items)),
	}
	copy(c.items, items)

	for i, it := range c.items {
		if _, exists := c.index[it.Title]; !exists {
			c.index[it.Title] = i
		}
		c.documents[i] = NormalizeGenres(it.Genre)
	}
	c.fingerprint = Fingerprint(c.items)

	return c
}

// Name returns the catalog name.
func (c *Catalog) Name() string { return c.name }

// Len returns the number of items.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.items)
}

// Item returns the item at position i.
func (c *Catalog) Item(i int) Item { return c.items[i] }

// Items returns a copy of the catalog items in order.
func (c *Catalog) Items() []Item {
	out := make([]Item, len(c.items))
	copy(out, c.items)
	return out
}

// Titles returns the item titles in catalog order.
func (c *Catalog) Titles() []string {
	out := make([]string, len(c.items))
	for i, it := range c.items {
		out[i] = it.Title
	}
	return out
}

// IndexOf resolves a title (case-sensitive, exact) to its first index.
func (c *Catalog) IndexOf(title string) (int, bool) {
	if c == nil {
		return 0, false
	}
	i, ok := c.index[title]
	return i, ok
}

// Contains reports whether the title exists in the catalog.
func (c *Catalog) Contains(title string) bool {
	_, ok := c.IndexOf(title)
	return ok
}

// Documents returns the normalized genre tags per item. Callers must not modify them.
func (c *Catalog) Documents() [][]string { return c.documents }

// Fingerprint returns the content fingerprint used as the similarity cache key.
func (c *Catalog) Fingerprint() string { return c.fingerprint }

// Fingerprint hashes the ordered (title, genre) sequence. Every field is
// length-prefixed so that no two distinct sequences share an encoding.
func Fingerprint(items []Item) string {
	h := sha256.New()
	buf := make([]byte, 0, binary.MaxVarintLen64)

	write := func(s string) {
		buf = binary.AppendUvarint(buf[:0], uint64(len(s)))
		_, _ = h.Write(buf)
		_, _ = h.Write([]byte(s))
	}

	buf = binary.AppendUvarint(buf[:0], uint64(len(items)))
	_, _ = h.Write(buf)
	for _, it := range items {
		write(it.Title)
		write(it.Genre)
	}

	return hex.EncodeToString(h.Sum(nil))
}
