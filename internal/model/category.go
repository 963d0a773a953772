package model

// TaskCategory is a named, colored grouping label for tasks.
// Color is a packed 32-bit ARGB value.
type TaskCategory struct {
	ID    int64
	Name  string
	Color uint32
}
