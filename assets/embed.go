// Package assets holds the embedded vector artwork layers are created from.
package assets

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
	"sync"
)

//go:embed icons/*.svg shapes/*.svg
var embedded embed.FS

// ErrUnknownAsset is returned when no asset matches an id.
var ErrUnknownAsset = errors.New("unknown asset")

// Entry describes one asset in a catalog.
type Entry struct {
	// ID is the file name, e.g. "star.svg".
	ID string
	// Name is the ID without its extension.
	Name string
	// Group is the directory the asset lives in, e.g. "icons".
	Group string
}

// Catalog looks up SVG assets by id in a file system laid out as
// <group>/<name>.svg.
type Catalog struct {
	fsys fs.FS

	once    sync.Once
	err     error
	entries []Entry
	byID    map[string]Entry
}

// NewCatalog returns a catalog over fsys.
func NewCatalog(fsys fs.FS) *Catalog {
	return &Catalog{fsys: fsys}
}

var defaultCatalog = NewCatalog(embedded)

// Default returns the catalog of embedded assets.
func Default() *Catalog {
	return defaultCatalog
}

func (c *Catalog) index() error {
	c.once.Do(func() {
		c.byID = make(map[string]Entry)
		groups, err := fs.ReadDir(c.fsys, ".")
		if err != nil {
			c.err = err
			return
		}
		for _, g := range groups {
			if !g.IsDir() {
				continue
			}
			files, err := fs.ReadDir(c.fsys, g.Name())
			if err != nil {
				c.err = err
				return
			}
			for _, f := range files {
				if f.IsDir() || !strings.HasSuffix(f.Name(), ".svg") {
					continue
				}
				e := Entry{ID: f.Name(), Name: strings.TrimSuffix(f.Name(), ".svg"), Group: g.Name()}
				if _, dup := c.byID[e.ID]; dup {
					continue
				}
				c.byID[e.ID] = e
				c.entries = append(c.entries, e)
			}
		}
		sort.Slice(c.entries, func(i, j int) bool {
			if c.entries[i].Group != c.entries[j].Group {
				return c.entries[i].Group < c.entries[j].Group
			}
			return c.entries[i].Name < c.entries[j].Name
		})
	})
	return c.err
}

// Entries lists the catalog sorted by group and name.
func (c *Catalog) Entries() ([]Entry, error) {
	if err := c.index(); err != nil {
		return nil, err
	}
	out := make([]Entry, len(c.entries))
	copy(out, c.entries)
	return out, nil
}

// Lookup returns a copy of the SVG bytes for id.
func (c *Catalog) Lookup(id string) ([]byte, error) {
	if err := c.index(); err != nil {
		return nil, err
	}
	e, ok := c.byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownAsset, id)
	}
	data, err := fs.ReadFile(c.fsys, path.Join(e.Group, e.ID))
	if err != nil {
		return nil, err
	}
	return data, nil
}
