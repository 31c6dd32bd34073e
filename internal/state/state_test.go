package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestsAlternate(t *testing.T) {
	m := NewMachine(StateOne)

	want := []string{"State 1 action.", "State 2 action.", "State 1 action."}
	for i, expected := range want {
		out, err := m.Request()
		require.NoError(t, err)
		assert.Equal(t, expected, out, "request %d", i+1)
	}

	assert.Equal(t, StateTwo, m.Current(), "after three requests the machine sits in state two")
}

func TestMachineCyclesWithPeriodTwo(t *testing.T) {
	m := NewMachine(StateTwo)

	for i := 0; i < 10; i++ {
		expected := "State 2 action."
		if i%2 == 1 {
			expected = "State 1 action."
		}
		out, err := m.Request()
		require.NoError(t, err)
		assert.Equal(t, expected, out)
	}
}

func TestUnconfiguredMachineFails(t *testing.T) {
	var m Machine

	_, err := m.Request()
	assert.ErrorIs(t, err, ErrNoState)
}
