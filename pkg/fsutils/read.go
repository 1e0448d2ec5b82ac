package fsutils

import (
	"io"
	"log"
	"os"
)

// ReadFileData reads up to max bytes from the file at fullName.
//
// max == 0 reads the whole file, max > 0 reads the first max bytes and
// max < 0 reads the last |max| bytes (tail), in every case capped by the
// actual file size.
func ReadFileData(fullName string, max int) (data []byte, err error) {
	if max == 0 {
		return os.ReadFile(fullName)
	}
	file, err := os.Open(fullName)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.Printf("failed to close file %v: %v", fullName, err)
		}
	}()
	info, err := file.Stat()
	if err != nil {
		return nil, err
	}
	size := info.Size()
	limit := int64(max)
	if limit < 0 {
		limit = -limit
	}
	if limit > size {
		limit = size
	}
	if max < 0 {
		if _, err = file.Seek(size-limit, io.SeekStart); err != nil {
			return nil, err
		}
	}
	data = make([]byte, limit)
	if _, err = io.ReadFull(file, data); err != nil {
		return nil, err
	}
	return data, nil
}
