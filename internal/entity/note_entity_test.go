package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNoteOwnedBy(t *testing.T) {
	note := &Note{Id: 1, UserId: 42}

	assert.True(t, note.OwnedBy(42))
	assert.False(t, note.OwnedBy(7))
	assert.False(t, note.OwnedBy(0))
}
