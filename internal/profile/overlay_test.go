package profile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/filingworks/filing-converter/internal/jurisdiction"
)

func TestParseValidOverlay(t *testing.T) {
	o, err := Parse([]byte(`{
		"jurisdiction": "AZ",
		"patterns": [
			{"schedule_id": "C2", "pattern": "(?i)^Schedule C-2\\b", "prepend": true},
			{"schedule_id": "E1", "pattern": "(?i)^Operating Expenses\\b"}
		]
	}`))
	require.NoError(t, err)
	assert.Equal(t, "AZ", o.Jurisdiction)
	require.Len(t, o.Patterns, 2)
	assert.True(t, o.Patterns[0].Prepend)
}

func TestParseRejectsSchemaViolations(t *testing.T) {
	cases := map[string]string{
		"missing patterns":   `{"jurisdiction": "AZ"}`,
		"empty patterns":     `{"jurisdiction": "AZ", "patterns": []}`,
		"unknown field":      `{"jurisdiction": "AZ", "patterns": [{"schedule_id": "C2", "pattern": "x", "priority": 1}]}`,
		"missing pattern":    `{"jurisdiction": "AZ", "patterns": [{"schedule_id": "C2"}]}`,
		"not even an object": `[1, 2, 3]`,
	}
	for name, body := range cases {
		_, err := Parse([]byte(body))
		assert.Error(t, err, name)
	}
}

func TestParseRejectsBadRegexp(t *testing.T) {
	_, err := Parse([]byte(`{
		"jurisdiction": "AZ",
		"patterns": [{"schedule_id": "C2", "pattern": "(unclosed"}]
	}`))
	require.Error(t, err)
}

func TestApplyPrependsAndAppends(t *testing.T) {
	base, err := jurisdiction.DefaultRegistry().Get("AZ")
	require.NoError(t, err)
	baseCount := len(base.Patterns)

	o, err := Parse([]byte(`{
		"jurisdiction": "AZ",
		"patterns": [
			{"schedule_id": "C2", "pattern": "^Alt C2 Header$", "prepend": true},
			{"schedule_id": "R1", "pattern": "^Alt R1 Header$"}
		]
	}`))
	require.NoError(t, err)

	modified, err := o.Apply(base)
	require.NoError(t, err)
	require.Len(t, modified.Patterns, baseCount+2)
	assert.Equal(t, "C2", modified.Patterns[0].ScheduleID)
	assert.True(t, modified.Patterns[0].Pattern.MatchString("Alt C2 Header"))
	assert.Equal(t, "R1", modified.Patterns[len(modified.Patterns)-1].ScheduleID)

	// The base profile is left untouched.
	assert.Len(t, base.Patterns, baseCount)
}

func TestApplyRejectsWrongJurisdiction(t *testing.T) {
	base, err := jurisdiction.DefaultRegistry().Get("MI")
	require.NoError(t, err)
	o := &Overlay{Jurisdiction: "AZ"}
	_, err = o.Apply(base)
	require.Error(t, err)
}

func TestApplyRejectsUnknownSchedule(t *testing.T) {
	base, err := jurisdiction.DefaultRegistry().Get("AZ")
	require.NoError(t, err)
	o, err := Parse([]byte(`{
		"jurisdiction": "AZ",
		"patterns": [{"schedule_id": "NOPE", "pattern": "^x$"}]
	}`))
	require.NoError(t, err)
	_, err = o.Apply(base)
	require.Error(t, err)
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "overlay.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"jurisdiction": "MI",
		"patterns": [{"schedule_id": "III", "pattern": "^SCHEDULE 3\\b"}]
	}`), 0o644))

	o, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "MI", o.Jurisdiction)

	_, err = Load(filepath.Join(dir, "missing.json"))
	require.Error(t, err)
}
