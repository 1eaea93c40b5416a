package clipboard

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemory_WriteAll(t *testing.T) {
	var m Memory
	require.NoError(t, m.WriteAll("π"))
	require.NoError(t, m.WriteAll("√"))

	assert.Equal(t, "√", m.Content())
	assert.Equal(t, 2, m.Writes())
}

func TestMemory_Fail(t *testing.T) {
	var m Memory
	require.NoError(t, m.WriteAll("π"))

	boom := errors.New("no display")
	m.Fail(boom)
	assert.ErrorIs(t, m.WriteAll("√"), boom)
	assert.Equal(t, "π", m.Content())

	m.Fail(nil)
	assert.NoError(t, m.WriteAll("√"))
}

func TestSystemImplementsWriter(t *testing.T) {
	var _ Writer = System{}
	var _ Writer = &Memory{}
}
