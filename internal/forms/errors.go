package forms

// ValidationErrors maps a field name to a human-readable message. A missing
// key or an empty string means the field is valid.
type ValidationErrors map[string]string

// Set records a message for a field. Empty messages are dropped so the map
// only ever holds real failures.
func (e ValidationErrors) Set(field, message string) {
	if message == "" {
		delete(e, field)
		return
	}
	e[field] = message
}

// Clear removes the error for a single field.
func (e ValidationErrors) Clear(field string) {
	delete(e, field)
}

// Valid reports whether no field carries an error.
func (e ValidationErrors) Valid() bool {
	return len(e) == 0
}

// Copy returns an independent snapshot of the map.
func (e ValidationErrors) Copy() ValidationErrors {
	out := make(ValidationErrors, len(e))
	for k, v := range e {
		out[k] = v
	}
	return out
}

// Details converts the map into the generic details shape used by API error
// envelopes.
func (e ValidationErrors) Details() map[string]any {
	out := make(map[string]any, len(e))
	for k, v := range e {
		out[k] = v
	}
	return out
}

// Merge applies external errors over local ones, per key. External entries
// win on collision; local entries without an external counterpart survive.
// Callers invoke this on the event that produced the external errors, not
// continuously.
func Merge(local, external ValidationErrors) ValidationErrors {
	merged := local.Copy()
	for field, message := range external {
		if message == "" {
			continue
		}
		merged[field] = message
	}
	return merged
}
