package datatable

import (
	"fmt"
	"regexp"
)

// Kind selects how a column participates in the search predicate.
type Kind int

const (
	// Text columns are cast to text, lower-cased and accent-folded before
	// substring matching.
	Text Kind = iota
	// Numeric columns are cast to text and matched as-is, so partial
	// numeric substrings still hit.
	Numeric
)

// Column is one allow-listed, searchable and sortable column.
type Column struct {
	Name string
	Kind Kind
}

// Descriptor is the ordered allow-list of columns for one entity. It is
// supplied by trusted entity code, never derived from request input; the
// engine refuses any identifier that does not look like a plain column
// name, so no request-controlled text ever reaches the generated SQL.
type Descriptor []Column

var identifierPattern = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)

func (d Descriptor) validate() error {
	if len(d) == 0 {
		return fmt.Errorf("%w: empty column descriptor", ErrInvalidQueryParameter)
	}
	seen := make(map[string]struct{}, len(d))
	for _, col := range d {
		if !identifierPattern.MatchString(col.Name) {
			return fmt.Errorf("%w: column %q is not an allowed identifier", ErrInvalidQueryParameter, col.Name)
		}
		if _, dup := seen[col.Name]; dup {
			return fmt.Errorf("%w: duplicate column %q", ErrInvalidQueryParameter, col.Name)
		}
		seen[col.Name] = struct{}{}
	}
	return nil
}
