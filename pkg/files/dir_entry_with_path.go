package files

import (
	"os"
	"path"
	"path/filepath"
)

// EntryWithDirPath pairs an os.DirEntry with the directory it was listed
// from, so previewers can address the file without extra lookups.
type EntryWithDirPath struct {
	os.DirEntry
	Dir string
}

func NewEntryWithDirPath(entry os.DirEntry, dir string) *EntryWithDirPath {
	if parent, _ := filepath.Split(entry.Name()); parent != "" {
		panic("entry name can not have path: " + entry.Name())
	}
	return &EntryWithDirPath{
		Dir:      dir,
		DirEntry: entry,
	}
}

// FullName returns the platform path of the entry.
func (c EntryWithDirPath) FullName() string {
	return filepath.Join(c.Dir, c.Name())
}

func (c EntryWithDirPath) String() string {
	return path.Join(c.Dir, c.Name())
}
