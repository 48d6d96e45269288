package forms

// Category is the read-only department reference listed by the directory.
type Category struct {
	ID   string
	Name string
}

// CategoryInput is the sum of the two shapes callers supply department
// references in: a bare identifier or a full {id, name} record. Both
// normalize to a plain identifier at ingestion.
type CategoryInput interface {
	categoryID() string
}

// RawID is a department reference supplied as a bare identifier string.
type RawID string

func (r RawID) categoryID() string { return string(r) }

// CategoryRef is a department reference supplied as an {id, name} record.
type CategoryRef struct {
	ID   string
	Name string
}

func (c CategoryRef) categoryID() string { return c.ID }

// NormalizeCategoryIDs flattens a mixed sequence of category inputs into a
// deduplicated, order-preserving identifier list. Empty identifiers are
// dropped.
func NormalizeCategoryIDs(inputs []CategoryInput) []string {
	seen := make(map[string]struct{}, len(inputs))
	ids := make([]string, 0, len(inputs))
	for _, in := range inputs {
		if in == nil {
			continue
		}
		id := in.categoryID()
		if id == "" {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	return ids
}
