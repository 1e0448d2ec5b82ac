package browse

import (
	"context"
	"path/filepath"

	"github.com/manish-ach/Tmages/pkg/files"
)

// Window is the answer to one viewport query: the rows to draw and where the
// selection sits. Selected and Scroll are absolute indexes into the full
// listing; the row of Entries holding the selection is Selected-Scroll.
type Window struct {
	Dir      string
	Entries  []Entry
	Selected int
	Scroll   int
}

// State is the navigation state machine: current directory, its sorted rows,
// the selection and the scroll offset. It is mutated by exactly one event at
// a time (the tview event loop is single-threaded) and re-listed only on
// navigation, so it always reflects the filesystem as of the last operation.
type State struct {
	store    files.Store
	lister   Lister
	dir      string
	entries  []Entry
	selected int
	scroll   int
	exited   bool
}

// NewState lists dir and starts with the first row selected. A failed first
// listing is returned to the caller: without rows there is nothing to browse.
func NewState(ctx context.Context, store files.Store, dir string) (*State, error) {
	s := &State{
		store:  store,
		lister: NewLister(store),
		dir:    filepath.Clean(dir),
	}
	entries, err := s.lister.List(ctx, s.dir)
	if err != nil {
		return nil, err
	}
	s.entries = entries
	return s, nil
}

func (s *State) Dir() string {
	return s.dir
}

// Entries returns the full listing. Callers must not modify the slice.
func (s *State) Entries() []Entry {
	return s.entries
}

func (s *State) Selected() int {
	return s.selected
}

func (s *State) SelectedEntry() Entry {
	return s.entries[s.selected]
}

// MoveSelection shifts the selection by delta, clamped to the listing bounds.
// There is no wraparound: moving up from the first row or down from the last
// is a no-op.
func (s *State) MoveSelection(delta int) {
	if s.exited {
		return
	}
	s.setSelected(s.selected + delta)
}

// Select jumps the selection to an absolute index, clamped to the listing
// bounds.
func (s *State) Select(index int) {
	if s.exited {
		return
	}
	s.setSelected(index)
}

func (s *State) setSelected(index int) {
	if index < 0 {
		index = 0
	}
	if last := len(s.entries) - 1; index > last {
		index = last
	}
	s.selected = index
	if s.selected < s.scroll {
		s.scroll = s.selected
	}
}

// Activate acts on the selected row. The parent marker ascends, a directory
// row descends, a file row does nothing (files are previewed, never opened).
// Any failure rejects the navigation silently: a directory that vanished
// since listing, or a target that cannot be listed, leaves dir, entries,
// selection and scroll exactly as they were.
func (s *State) Activate(ctx context.Context) {
	if s.exited {
		return
	}
	entry := s.entries[s.selected]
	var target string
	switch {
	case entry.IsParent():
		parent := filepath.Dir(s.dir)
		if parent == s.dir {
			return
		}
		target = parent
	case entry.IsDir():
		target = filepath.Join(s.dir, entry.Name())
		info, err := s.store.Stat(ctx, target)
		if err != nil || !info.IsDir() {
			return
		}
	default:
		return
	}
	entries, err := s.lister.List(ctx, target)
	if err != nil {
		return
	}
	s.dir = target
	s.entries = entries
	s.selected = 0
	s.scroll = 0
}

// RequestExit marks the session done. Idempotent; mutation operations become
// no-ops once set.
func (s *State) RequestExit() {
	s.exited = true
}

func (s *State) Exited() bool {
	return s.exited
}

// View returns the rows visible in a viewport of the given height. The
// viewport height belongs to the layout engine and may change between
// redraws, so the scroll invariant scroll <= selected < scroll+height is
// re-established on every call and the clamped offset kept.
func (s *State) View(height int) Window {
	if height < 1 {
		height = 1
	}
	if s.selected < s.scroll {
		s.scroll = s.selected
	}
	if s.selected >= s.scroll+height {
		s.scroll = s.selected - height + 1
	}
	end := s.scroll + height
	if end > len(s.entries) {
		end = len(s.entries)
	}
	return Window{
		Dir:      s.dir,
		Entries:  s.entries[s.scroll:end],
		Selected: s.selected,
		Scroll:   s.scroll,
	}
}
