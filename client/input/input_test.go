package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShouldRepeat(t *testing.T) {
	tests := []struct {
		name     string
		duration int
		want     bool
	}{
		{name: "not pressed", duration: 0, want: false},
		{name: "just pressed", duration: 1, want: true},
		{name: "held", duration: 2, want: false},
		{name: "before delay", duration: RepeatDelay - 1, want: false},
		{name: "first repeat", duration: RepeatDelay, want: true},
		{name: "between repeats", duration: RepeatDelay + 1, want: false},
		{name: "between repeats again", duration: RepeatDelay + 2, want: false},
		{name: "second repeat", duration: RepeatDelay + RepeatInterval, want: true},
		{name: "much later", duration: RepeatDelay + 10*RepeatInterval, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ShouldRepeat(tt.duration, RepeatDelay, RepeatInterval))
		})
	}
}

func TestShouldRepeat_NoInterval(t *testing.T) {
	assert.True(t, ShouldRepeat(1, 10, 0))
	assert.False(t, ShouldRepeat(10, 10, 0))
}

func TestDefaultBindings(t *testing.T) {
	seen := map[Action]bool{}
	for _, b := range DefaultBindings {
		assert.False(t, seen[b.Action], "duplicate binding for %s", b.Action)
		seen[b.Action] = true
		assert.NotEmpty(t, b.Keys, "no keys for %s", b.Action)
	}
	for a := ActionMoveLeft; a <= ActionStart; a++ {
		assert.True(t, seen[a], "missing binding for %s", a)
	}

	repeating := map[Action]bool{ActionMoveLeft: true, ActionMoveRight: true, ActionSoftDrop: true}
	for _, b := range DefaultBindings {
		assert.Equal(t, repeating[b.Action], b.Repeat, "repeat flag of %s", b.Action)
	}
}

func TestAction_String(t *testing.T) {
	assert.Equal(t, "HardDrop", ActionHardDrop.String())
	assert.Equal(t, "Unknown", Action(99).String())
}
