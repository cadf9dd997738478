package roster

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"cardwall/internal/model"
)

// File is the on-disk YAML roster shape.
type File struct {
	// Name optionally labels the roster; informational only.
	Name string `yaml:"name,omitempty"`

	// Records holds the roster in display order.
	Records []model.Record `yaml:"records"`
}

// LoadFile loads a YAML roster file.
//
// Decoding is strict: unknown fields are an error, so typos in roster
// files surface instead of silently dropping data. The loaded records are
// validated; any violation fails the load.
func LoadFile(path string) ([]model.Record, []error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, []error{&LoadError{Code: ErrCodeNotFound, Message: fmt.Sprintf("roster file not found: %s", path)}}
	}
	if err != nil {
		return nil, []error{&LoadError{Code: ErrCodeNotFound, Message: fmt.Sprintf("error reading roster file: %v", err)}}
	}

	var f File
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return nil, []error{&LoadError{Code: ErrCodeLoadFailed, Message: fmt.Sprintf("decoding %s: %v", path, err)}}
	}

	if len(f.Records) == 0 {
		return nil, []error{&LoadError{Code: ErrCodeNoFiles, Message: fmt.Sprintf("no records in %s", path)}}
	}

	if errs := model.Validate(f.Records); len(errs) > 0 {
		return nil, errs
	}

	return f.Records, nil
}
