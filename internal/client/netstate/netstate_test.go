package netstate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMonitor_Online(t *testing.T) {
	m := NewMonitor(false)
	assert.False(t, m.Online())

	m.SetOnline(true)
	assert.True(t, m.Online())
}

func TestMonitor_OnChange(t *testing.T) {
	m := NewMonitor(false)

	var transitions []bool
	m.OnChange(func(online bool) {
		transitions = append(transitions, online)
	})

	m.SetOnline(true)
	m.SetOnline(true) // повторная установка не вызывает listener
	m.SetOnline(false)

	assert.Equal(t, []bool{true, false}, transitions)
}
