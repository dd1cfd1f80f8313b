package domain

// ChangeTracker records which aggregate fields changed during a write
// session. Repositories read it to build partial Spanner UPDATE mutations
// touching only the dirty columns (see the Field* and CategoryField*
// constants for the tracked names).
type ChangeTracker struct {
	dirty map[string]struct{}
}

func NewChangeTracker() *ChangeTracker {
	return &ChangeTracker{dirty: make(map[string]struct{})}
}

// MarkDirty records field as modified.
func (ct *ChangeTracker) MarkDirty(field string) {
	ct.dirty[field] = struct{}{}
}

// Dirty reports whether field was modified.
func (ct *ChangeTracker) Dirty(field string) bool {
	_, ok := ct.dirty[field]
	return ok
}

// HasChanges reports whether any field was modified.
func (ct *ChangeTracker) HasChanges() bool {
	return len(ct.dirty) > 0
}

// DirtyFields returns the modified field names, in no particular order.
func (ct *ChangeTracker) DirtyFields() []string {
	fields := make([]string, 0, len(ct.dirty))
	for field := range ct.dirty {
		fields = append(fields, field)
	}
	return fields
}

// Clear drops all markers. Called after a plan is committed, or by tests
// isolating a single mutation.
func (ct *ChangeTracker) Clear() {
	ct.dirty = make(map[string]struct{})
}

// Count returns the number of modified fields.
func (ct *ChangeTracker) Count() int {
	return len(ct.dirty)
}
