package hashtab

// ResizePolicy controls when a Table is allowed to resize and incrementally
// rehash. It is process-wide, not per-table, mirroring the original's global
// resize policy: the most common reason to change it is a forked child
// process sharing copy-on-write pages with the parent, and that condition is
// a property of the process, not of any one table.
type ResizePolicy int

const (
	// ResizeAllow rehashes as required for optimal performance. This is the
	// default.
	ResizeAllow ResizePolicy = iota
	// ResizeAvoid avoids rehashing and moving memory when it can be avoided,
	// for use while a forked child process is running and copy-on-write
	// memory should be left alone as much as possible.
	ResizeAvoid
	// ResizeForbid disables rehashing entirely. Used in a child process that
	// doesn't add any keys.
	ResizeForbid
)

var resizePolicy = ResizeAllow

// SetResizePolicy sets the process-wide resize policy.
//
// With an open addressing scheme, resizing can't be completely forbidden if
// elements are still being inserted: it's impossible to insert more elements
// than there are slots, so a table must still be allowed to grow even under
// ResizeAvoid. In that case the table still resizes, but reads no longer
// advance incremental rehashing: new elements land in the new table, and the
// old table's elements move one bucket per insert or delete. As a result a
// table may need to resize again while a previous rehash is still
// unfinished; in that case the pending rehash is fast-forwarded to
// completion before the new table is allocated.
func SetResizePolicy(policy ResizePolicy) {
	resizePolicy = policy
}

// GetResizePolicy returns the current process-wide resize policy.
func GetResizePolicy() ResizePolicy {
	return resizePolicy
}
