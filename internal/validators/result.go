package validators

// Result is the outcome of a validation pass.
type Result struct {
	// Data holds only declared fields, with strings trimmed and emails
	// lower-cased. Missing fields are absent.
	Data map[string]any

	// Messages lists violations in rule declaration order.
	Messages []string
}

// Valid reports whether no violation was found.
func (r Result) Valid() bool {
	return len(r.Messages) == 0
}

// AddMessage appends a message produced by a cross-field check.
func (r *Result) AddMessage(msg string) {
	r.Messages = append(r.Messages, msg)
}

// String returns the cleaned string value of field or "".
func (r Result) String(field string) string {
	s, _ := r.Data[field].(string)
	return s
}

// Has reports whether field survived cleaning.
func (r Result) Has(field string) bool {
	_, ok := r.Data[field]
	return ok
}
