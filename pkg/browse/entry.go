package browse

import "strings"

// ParentMarker is the synthetic entry that navigates to the parent directory.
const ParentMarker = Entry("..")

// Entry is one display row of a listing: the parent marker, "name/" for a
// subdirectory, or "name" for a file. Entries are immutable; a listing is a
// fresh slice every time a directory is read.
type Entry string

func (e Entry) IsParent() bool {
	return e == ParentMarker
}

// IsDir reports whether the entry names a subdirectory. The parent marker is
// not a subdirectory.
func (e Entry) IsDir() bool {
	return strings.HasSuffix(string(e), "/")
}

// Name returns the entry without the directory suffix.
func (e Entry) Name() string {
	return strings.TrimSuffix(string(e), "/")
}
