package fsutils

import (
	"encoding/json"
	"log"
	"os"
)

// ReadJSONFile decodes the JSON file at filePath into o. A missing file is
// not an error unless required is true.
func ReadJSONFile(filePath string, required bool, o interface{}) (err error) {
	var file *os.File
	if file, err = os.Open(filePath); err != nil {
		if os.IsNotExist(err) && !required {
			err = nil
		}
		return err
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.Printf("failed to close file %v: %v", filePath, err)
		}
	}()
	return json.NewDecoder(file).Decode(o)
}

// WriteJSONFile encodes o as indented JSON and writes it to filePath,
// replacing any previous content.
func WriteJSONFile(filePath string, o interface{}) error {
	file, err := os.Create(filePath)
	if err != nil {
		return err
	}
	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err = encoder.Encode(o); err != nil {
		_ = file.Close()
		return err
	}
	return file.Close()
}
