package forest

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/matzehuels/forestmerge/pkg/errors"
)

// ReadJSON decodes a JSON forest from r, keeping the object's key order.
//
// The top-level value must be an object whose values are arrays of strings.
// ReadJSON does not close r.
func ReadJSON(r io.Reader) (*Forest, error) {
	dec := json.NewDecoder(r)

	if err := expectDelim(dec, '{'); err != nil {
		return nil, err
	}

	f := &Forest{}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidForest, err, "decode key")
		}
		id, ok := tok.(string)
		if !ok {
			return nil, errors.New(errors.ErrCodeInvalidForest, "unexpected token %v", tok)
		}

		var list []string
		if err := dec.Decode(&list); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidForest, err, "entry %q", id)
		}

		e, err := newEntry(id, list)
		if err != nil {
			return nil, err
		}
		f.Entries = append(f.Entries, e)
	}

	if err := expectDelim(dec, '}'); err != nil {
		return nil, err
	}
	return f, nil
}

func expectDelim(dec *json.Decoder, want json.Delim) error {
	tok, err := dec.Token()
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidForest, err, "decode")
	}
	if d, ok := tok.(json.Delim); !ok || d != want {
		return errors.New(errors.ErrCodeInvalidForest, "expected %q, got %v", fmt.Sprint(want), tok)
	}
	return nil
}
