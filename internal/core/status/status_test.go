package status

import (
	"testing"

	"timeclock/internal/core/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransitionTable(t *testing.T) {
	type cell struct {
		next Status
		ok   bool
	}
	table := map[Status]map[model.Action]cell{
		Off: {
			model.ActionClockIn:    {Working, true},
			model.ActionBreakStart: {},
			model.ActionBreakEnd:   {},
			model.ActionClockOut:   {},
		},
		Working: {
			model.ActionClockIn:    {},
			model.ActionBreakStart: {Break, true},
			model.ActionBreakEnd:   {},
			model.ActionClockOut:   {Off, true},
		},
		Break: {
			model.ActionClockIn:    {},
			model.ActionBreakStart: {},
			model.ActionBreakEnd:   {Working, true},
			model.ActionClockOut:   {Off, true},
		},
	}

	for current, row := range table {
		for action, want := range row {
			t.Run(string(current)+"/"+string(action), func(t *testing.T) {
				next, err := Transition(current, action)
				if !want.ok {
					require.ErrorIs(t, err, ErrTransitionNotAllowed)
					assert.Equal(t, current, next)
					return
				}
				require.NoError(t, err)
				assert.Equal(t, want.next, next)
			})
		}
	}
}

func TestTransitionRejectsUnknownValues(t *testing.T) {
	_, err := Transition(Status("lunch"), model.ActionClockIn)
	assert.ErrorIs(t, err, ErrUnknownStatus)

	_, err = Transition(Off, model.Action("punch"))
	assert.ErrorIs(t, err, ErrUnknownAction)
}

func TestEnabledControls(t *testing.T) {
	cases := []struct {
		status Status
		want   []model.Action
	}{
		{Off, []model.Action{model.ActionClockIn}},
		{Working, []model.Action{model.ActionBreakStart, model.ActionClockOut}},
		{Break, []model.Action{model.ActionBreakEnd, model.ActionClockOut}},
		{Status("unknown"), nil},
	}

	for _, tc := range cases {
		t.Run(string(tc.status), func(t *testing.T) {
			controls := EnabledControls(tc.status)
			require.Len(t, controls, len(model.Actions))
			for _, action := range model.Actions {
				assert.Equal(t, contains(tc.want, action), controls.Enabled(action), "action %s", action)
			}
		})
	}
}

func TestEnabledControlsAgreeWithTransitions(t *testing.T) {
	for _, current := range []Status{Off, Working, Break} {
		controls := EnabledControls(current)
		for _, action := range model.Actions {
			_, err := Transition(current, action)
			assert.Equal(t, err == nil, controls.Enabled(action), "%s/%s", current, action)
		}
	}
}

func TestNoControls(t *testing.T) {
	controls := NoControls()
	for _, action := range model.Actions {
		assert.False(t, controls.Enabled(action))
	}
}

func TestDescribe(t *testing.T) {
	cases := []struct {
		name     string
		selected bool
		status   Status
		last     model.Action
		want     Display
	}{
		{"unselected", false, Working, model.ActionClockIn, Display{"Please select an employee to begin", StyleInfo}},
		{"fresh", true, Off, "", Display{"Not clocked in", StyleOff}},
		{"clocked out", true, Off, model.ActionClockOut, Display{"Clocked out", StyleOff}},
		{"working", true, Working, model.ActionClockIn, Display{"Currently working", StyleWorking}},
		{"back from break", true, Working, model.ActionBreakEnd, Display{"Currently working", StyleWorking}},
		{"break", true, Break, model.ActionBreakStart, Display{"On break", StyleBreak}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Describe(tc.selected, tc.status, tc.last))
		})
	}
}

func contains(actions []model.Action, action model.Action) bool {
	for _, candidate := range actions {
		if candidate == action {
			return true
		}
	}
	return false
}
