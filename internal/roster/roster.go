package roster

import (
	"fmt"
	"os"
	"path/filepath"

	"cardwall/internal/model"
)

// Load resolves a roster argument to records:
//
//   - empty path: the embedded seed roster
//   - a directory: a CUE roster (see LoadDir)
//   - a .yaml/.yml file: a YAML roster (see LoadFile)
//
// Anything else is an error.
func Load(path string, mode LoadMode) ([]model.Record, []error) {
	if path == "" {
		return Seed(), nil
	}

	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil, []error{&LoadError{Code: ErrCodeNotFound, Message: fmt.Sprintf("roster not found: %s", path)}}
	}
	if err != nil {
		return nil, []error{&LoadError{Code: ErrCodeNotFound, Message: fmt.Sprintf("error accessing roster: %v", err)}}
	}

	if info.IsDir() {
		result, errs := LoadDir(path, mode)
		if len(errs) > 0 {
			return nil, errs
		}
		return result.Records, nil
	}

	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		return LoadFile(path)
	default:
		return nil, []error{&LoadError{
			Code:    ErrCodeLoadFailed,
			Message: fmt.Sprintf("unsupported roster format %q: want a .yaml file or a CUE directory", filepath.Ext(path)),
		}}
	}
}
