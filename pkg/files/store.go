package files

import (
	"context"
	"net/url"
	"os"
)

// Store abstracts the filesystem the browser navigates. Browsing needs
// directory listings and stat checks only, so the interface carries nothing
// else.
type Store interface {
	RootTitle() string
	RootURL() url.URL
	ReadDir(ctx context.Context, name string) ([]os.DirEntry, error)
	Stat(ctx context.Context, name string) (os.FileInfo, error)
}
