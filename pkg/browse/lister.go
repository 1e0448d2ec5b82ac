package browse

import (
	"context"
	"sort"

	"github.com/manish-ach/Tmages/pkg/files"
)

// Lister produces display rows for a single directory. It keeps no state:
// every call reads the live filesystem through the store.
type Lister struct {
	store files.Store
}

func NewLister(store files.Store) Lister {
	return Lister{store: store}
}

// List returns the parent marker plus one row per child of path, directories
// suffixed with "/". The whole slice is sorted bytewise with the marker
// included, so ".." lands at its natural position among the names rather than
// being forced first.
func (l Lister) List(ctx context.Context, path string) ([]Entry, error) {
	children, err := l.store.ReadDir(ctx, path)
	if err != nil {
		return nil, err
	}
	entries := make([]Entry, 0, len(children)+1)
	entries = append(entries, ParentMarker)
	for _, child := range children {
		name := child.Name()
		if child.IsDir() {
			name += "/"
		}
		entries = append(entries, Entry(name))
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i] < entries[j]
	})
	return entries, nil
}
