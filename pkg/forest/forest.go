// Package forest reads forest files: ordered mappings from a node identifier
// to the node's display name followed by its ancestor identifiers, nearest
// first.
//
//	{
//	  "u2": ["Child", "u1"],
//	  "u1": ["Alpha"]
//	}
//
// Key order is significant and is preserved by both the JSON and YAML
// readers. Only the first ancestor is used for grouping; the rest are kept
// on [Entry.Ancestors] for callers that want them.
package forest

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/matzehuels/forestmerge/pkg/errors"
)

// Entry is one forest record.
type Entry struct {
	ID        string   // node identifier (the mapping key)
	Name      string   // display name (first list element)
	Ancestors []string // ancestor identifiers, nearest first
}

// IsRoot reports whether the entry has no ancestors.
func (e Entry) IsRoot() bool { return len(e.Ancestors) == 0 }

// Parent returns the nearest ancestor, or "" for roots.
func (e Entry) Parent() string {
	if e.IsRoot() {
		return ""
	}
	return e.Ancestors[0]
}

// Forest is an ordered list of entries as they appeared in the source file.
type Forest struct {
	Entries []Entry
}

// Len returns the number of entries.
func (f *Forest) Len() int { return len(f.Entries) }

// Roots returns the identifiers of all root entries in file order.
func (f *Forest) Roots() []string {
	var out []string
	for _, e := range f.Entries {
		if e.IsRoot() {
			out = append(out, e.ID)
		}
	}
	return out
}

// newEntry builds an entry from a key and its decoded list. Keys are opaque:
// any string the decoder accepts is a valid identifier.
func newEntry(id string, list []string) (Entry, error) {
	if len(list) == 0 {
		return Entry{}, errors.New(errors.ErrCodeInvalidForest, "entry %q has no name", id)
	}
	return Entry{ID: id, Name: list[0], Ancestors: list[1:]}, nil
}

// Import reads the forest file at path. Files ending in .yaml or .yml are
// decoded with [ReadYAML]; anything else is treated as JSON.
func Import(path string) (*Forest, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	var read func(io.Reader) (*Forest, error) = ReadJSON
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		read = ReadYAML
	}

	forest, err := read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return forest, nil
}
