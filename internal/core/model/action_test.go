package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestActionTexts(t *testing.T) {
	assert.Equal(t, "Clocked in", ActionClockIn.Description())
	assert.Equal(t, "Started break", ActionBreakStart.Description())
	assert.Equal(t, "Ended break", ActionBreakEnd.Description())
	assert.Equal(t, "Clocked out", ActionClockOut.Description())

	assert.Equal(t, "Successfully clocked in!", ActionClockIn.Notice())
	assert.Equal(t, "Break started!", ActionBreakStart.Notice())
	assert.Equal(t, "Break ended!", ActionBreakEnd.Notice())
	assert.Equal(t, "Successfully clocked out!", ActionClockOut.Notice())
}

func TestParseAction(t *testing.T) {
	for _, action := range Actions {
		parsed, err := ParseAction(string(action))
		require.NoError(t, err)
		assert.Equal(t, action, parsed)
	}

	_, err := ParseAction("lunch")
	assert.Error(t, err)
}

func TestActivityEntryYAMLRejectsUnknownType(t *testing.T) {
	var entry ActivityEntry
	err := yaml.Unmarshal([]byte("type: lunch\ntime: \"12:00:00\"\n"), &entry)
	assert.Error(t, err)

	err = yaml.Unmarshal([]byte("type: break-start\ntime: \"12:00:00\"\ndescription: Started break\n"), &entry)
	require.NoError(t, err)
	assert.Equal(t, ActionBreakStart, entry.Type)
	assert.Equal(t, "12:00:00", entry.Time)
}
