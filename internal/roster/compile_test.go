package roster

import (
	"testing"
	"time"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cardwall/internal/model"
)

func compileString(t *testing.T, src, path string) cue.Value {
	t.Helper()
	ctx := cuecontext.New()
	v := ctx.CompileString(src)
	require.NoError(t, v.Err())
	return v.LookupPath(cue.ParsePath(path))
}

const fullPerson = `
person: alice: {
	id:        1
	name:      "Alice Johnson"
	is_active: true
	age:       27
	skills: ["Go", "SQL", "Kubernetes"]
	address: {street: "12 Rose Lane", city: "Springfield", postal_code: 49007}
	status:    "active"
	score:     100
	birthdate: "1998-05-15"
}
`

func TestCompileRecordFull(t *testing.T) {
	v := compileString(t, fullPerson, "person.alice")

	rec, err := CompileRecord(v)
	require.NoError(t, err)

	assert.Equal(t, int64(1), rec.ID)
	assert.Equal(t, "Alice Johnson", rec.Name)
	assert.True(t, rec.Active)
	assert.Equal(t, int64(27), rec.Age)
	assert.Equal(t, []string{"Go", "SQL", "Kubernetes"}, rec.Skills)
	assert.Equal(t, model.Address{Street: "12 Rose Lane", City: "Springfield", PostalCode: 49007}, rec.Address)
	require.NotNil(t, rec.Status)
	assert.Equal(t, "active", *rec.Status)
	require.NotNil(t, rec.Score)
	assert.Equal(t, int64(100), *rec.Score)
	assert.Equal(t, model.NewDate(1998, time.May, 15), rec.Birthdate)
}

func TestCompileRecordOptionalsAbsent(t *testing.T) {
	v := compileString(t, `
person: bruno: {
	id:        2
	name:      "Bruno Keller"
	birthdate: "1991-11-02"
}
`, "person.bruno")

	rec, err := CompileRecord(v)
	require.NoError(t, err)

	assert.Nil(t, rec.Score)
	assert.Nil(t, rec.Status)
	assert.False(t, rec.Active)
	assert.Empty(t, rec.Skills)
	assert.Equal(t, model.Address{}, rec.Address)
}

func TestCompileRecordMissingID(t *testing.T) {
	v := compileString(t, `
person: bad: {
	name:      "No ID"
	birthdate: "1991-11-02"
}
`, "person.bad")

	_, err := CompileRecord(v)
	require.Error(t, err)

	var compileErr *CompileError
	require.ErrorAs(t, err, &compileErr)
	assert.Equal(t, "id", compileErr.Field)
}

func TestCompileRecordMissingName(t *testing.T) {
	v := compileString(t, `
person: bad: {
	id:        1
	birthdate: "1991-11-02"
}
`, "person.bad")

	_, err := CompileRecord(v)
	require.Error(t, err)

	var compileErr *CompileError
	require.ErrorAs(t, err, &compileErr)
	assert.Equal(t, "name", compileErr.Field)
}

func TestCompileRecordMissingBirthdate(t *testing.T) {
	v := compileString(t, `
person: bad: {
	id:   1
	name: "No Birthdate"
}
`, "person.bad")

	_, err := CompileRecord(v)
	require.Error(t, err)

	var compileErr *CompileError
	require.ErrorAs(t, err, &compileErr)
	assert.Equal(t, "birthdate", compileErr.Field)
}

func TestCompileRecordBadBirthdate(t *testing.T) {
	v := compileString(t, `
person: bad: {
	id:        1
	name:      "Bad Date"
	birthdate: "15/05/1998"
}
`, "person.bad")

	_, err := CompileRecord(v)
	require.Error(t, err)

	var compileErr *CompileError
	require.ErrorAs(t, err, &compileErr)
	assert.Equal(t, "birthdate", compileErr.Field)
}

func TestCompileRecordWrongFieldType(t *testing.T) {
	v := compileString(t, `
person: bad: {
	id:        "one"
	name:      "Wrong Type"
	birthdate: "1991-11-02"
}
`, "person.bad")

	_, err := CompileRecord(v)
	require.Error(t, err)
}
