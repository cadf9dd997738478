package roster

import (
	"fmt"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/errors"
	"cuelang.org/go/cue/token"

	"cardwall/internal/model"
)

// CompileRecord parses a CUE value into a Record.
// Uses CUE SDK's Go API directly (not CLI subprocess).
//
// The CUE value should be the person struct itself, e.g.:
//
//	ctx := cuecontext.New()
//	v := ctx.CompileString(`person: alice: { ... }`)
//	rec, err := CompileRecord(v.LookupPath(cue.ParsePath("person.alice")))
func CompileRecord(v cue.Value) (*model.Record, error) {
	if err := v.Err(); err != nil {
		return nil, formatCUEError(err)
	}

	rec := &model.Record{}

	// id (required)
	idVal := v.LookupPath(cue.ParsePath("id"))
	if !idVal.Exists() {
		return nil, &CompileError{
			Field:   "id",
			Message: "id is required",
			Pos:     v.Pos(),
		}
	}
	id, err := idVal.Int64()
	if err != nil {
		return nil, formatCUEError(err)
	}
	rec.ID = id

	// name (required)
	nameVal := v.LookupPath(cue.ParsePath("name"))
	if !nameVal.Exists() {
		return nil, &CompileError{
			Field:   "name",
			Message: "name is required",
			Pos:     v.Pos(),
		}
	}
	name, err := nameVal.String()
	if err != nil {
		return nil, formatCUEError(err)
	}
	rec.Name = name

	// is_active (optional, defaults false)
	if activeVal := v.LookupPath(cue.ParsePath("is_active")); activeVal.Exists() {
		active, err := activeVal.Bool()
		if err != nil {
			return nil, formatCUEError(err)
		}
		rec.Active = active
	}

	// age (optional, defaults 0)
	if ageVal := v.LookupPath(cue.ParsePath("age")); ageVal.Exists() {
		age, err := ageVal.Int64()
		if err != nil {
			return nil, formatCUEError(err)
		}
		rec.Age = age
	}

	// skills (optional list, order preserved)
	if skillsVal := v.LookupPath(cue.ParsePath("skills")); skillsVal.Exists() {
		iter, err := skillsVal.List()
		if err != nil {
			return nil, formatCUEError(err)
		}
		for iter.Next() {
			skill, err := iter.Value().String()
			if err != nil {
				return nil, formatCUEError(err)
			}
			rec.Skills = append(rec.Skills, skill)
		}
	}

	// address (optional struct)
	if addrVal := v.LookupPath(cue.ParsePath("address")); addrVal.Exists() {
		addr, err := compileAddress(addrVal)
		if err != nil {
			return nil, err
		}
		rec.Address = addr
	}

	// status (optional)
	if statusVal := v.LookupPath(cue.ParsePath("status")); statusVal.Exists() {
		status, err := statusVal.String()
		if err != nil {
			return nil, formatCUEError(err)
		}
		rec.Status = &status
	}

	// score (optional)
	if scoreVal := v.LookupPath(cue.ParsePath("score")); scoreVal.Exists() {
		score, err := scoreVal.Int64()
		if err != nil {
			return nil, formatCUEError(err)
		}
		rec.Score = &score
	}

	// birthdate (required, "YYYY-MM-DD")
	birthVal := v.LookupPath(cue.ParsePath("birthdate"))
	if !birthVal.Exists() {
		return nil, &CompileError{
			Field:   "birthdate",
			Message: "birthdate is required",
			Pos:     v.Pos(),
		}
	}
	birthStr, err := birthVal.String()
	if err != nil {
		return nil, formatCUEError(err)
	}
	birthdate, err := model.ParseDate(birthStr)
	if err != nil {
		return nil, &CompileError{
			Field:   "birthdate",
			Message: err.Error(),
			Pos:     birthVal.Pos(),
		}
	}
	rec.Birthdate = birthdate

	return rec, nil
}

// compileAddress parses the address sub-struct. All fields are optional;
// missing ones stay zero and render as such.
func compileAddress(v cue.Value) (model.Address, error) {
	var addr model.Address

	if streetVal := v.LookupPath(cue.ParsePath("street")); streetVal.Exists() {
		street, err := streetVal.String()
		if err != nil {
			return addr, formatCUEError(err)
		}
		addr.Street = street
	}

	if cityVal := v.LookupPath(cue.ParsePath("city")); cityVal.Exists() {
		city, err := cityVal.String()
		if err != nil {
			return addr, formatCUEError(err)
		}
		addr.City = city
	}

	if postalVal := v.LookupPath(cue.ParsePath("postal_code")); postalVal.Exists() {
		postal, err := postalVal.Int64()
		if err != nil {
			return addr, formatCUEError(err)
		}
		addr.PostalCode = postal
	}

	return addr, nil
}

// CompileError represents a structured error from compiling a CUE record.
type CompileError struct {
	Field   string
	Message string
	Pos     token.Pos
}

func (e *CompileError) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s:%d:%d: %s: %s",
			e.Pos.Filename(), e.Pos.Line(), e.Pos.Column(),
			e.Field, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// formatCUEError extracts position info from CUE errors.
func formatCUEError(err error) error {
	if err == nil {
		return nil
	}

	// CUE errors may contain multiple errors
	errs := errors.Errors(err)
	if len(errs) == 0 {
		return err
	}

	// Return first error with position info
	firstErr := errs[0]
	positions := errors.Positions(firstErr)
	if len(positions) > 0 {
		return &CompileError{
			Field:   "cue",
			Message: firstErr.Error(),
			Pos:     positions[0],
		}
	}

	return err
}
