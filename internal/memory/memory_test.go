package memory

import (
	"errors"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestLoadAt(t *testing.T) {
	m := New()

	assert.NoError(t, m.LoadAt(0x200, []byte{0x12, 0x34}))

	b, err := m.Read(0x200)
	assert.NoError(t, err)
	assert.Equal(t, 0x12, b)
	b, err = m.Read(0x201)
	assert.NoError(t, err)
	assert.Equal(t, 0x34, b)
}

func TestLoadAtOutOfBounds(t *testing.T) {
	m := New()

	err := m.LoadAt(Size-1, []byte{0x01, 0x02})
	assert.Error(t, err)

	var boundsErr *BoundsError
	assert.True(t, errors.As(err, &boundsErr))
	assert.Equal(t, Size-1, boundsErr.Addr)
	assert.Equal(t, 2, boundsErr.Length)
}

func TestReadWrite(t *testing.T) {
	m := New()

	assert.NoError(t, m.Write(0xFFF, 0xAB))
	b, err := m.Read(0xFFF)
	assert.NoError(t, err)
	assert.Equal(t, 0xAB, b)

	assert.Error(t, m.Write(0x1000, 0x01))
	_, err = m.Read(0x1000)
	assert.Error(t, err)
}

func TestSprite(t *testing.T) {
	m := New()
	assert.NoError(t, m.LoadAt(0x300, []byte{0xF0, 0x90, 0xF0}))

	sprite, err := m.Sprite(0x300, 3)
	assert.NoError(t, err)
	assert.Equal(t, []byte{0xF0, 0x90, 0xF0}, sprite)

	_, err = m.Sprite(0xFFE, 3)
	assert.Error(t, err)
}

func TestFetchInstruction(t *testing.T) {
	m := New()
	assert.NoError(t, m.LoadAt(0x200, []byte{0xA2, 0xF0}))

	opcode, err := m.FetchInstruction(0x200)
	assert.NoError(t, err)
	assert.Equal(t, 0xA2F0, opcode)

	_, err = m.FetchInstruction(0xFFF)
	assert.Error(t, err)
}
