package forest

import (
	"io"

	"gopkg.in/yaml.v3"

	"github.com/matzehuels/forestmerge/pkg/errors"
)

// ReadYAML decodes a YAML forest from r. The document must be a mapping of
// identifiers to sequences of strings; mapping order is preserved.
//
//	u2: [Child, u1]
//	u1: [Alpha]
func ReadYAML(r io.Reader) (*Forest, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if err == io.EOF {
			return &Forest{}, nil
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidForest, err, "decode")
	}

	root := &doc
	if root.Kind == yaml.DocumentNode && len(root.Content) > 0 {
		root = root.Content[0]
	}
	if root.Kind != yaml.MappingNode {
		return nil, errors.New(errors.ErrCodeInvalidForest, "line %d: forest must be a mapping", root.Line)
	}

	f := &Forest{}
	for i := 0; i+1 < len(root.Content); i += 2 {
		key, val := root.Content[i], root.Content[i+1]
		if key.Kind != yaml.ScalarNode {
			return nil, errors.New(errors.ErrCodeInvalidForest, "line %d: key must be a scalar", key.Line)
		}

		var list []string
		if err := val.Decode(&list); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidForest, err, "entry %q", key.Value)
		}

		e, err := newEntry(key.Value, list)
		if err != nil {
			return nil, err
		}
		f.Entries = append(f.Entries, e)
	}
	return f, nil
}
