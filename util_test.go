package gor502

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReadBigEndian(t *testing.T) {
	b := []byte{0x00, 0x12, 0x34, 0x56, 0x78, 0x9A}

	assert.Equal(t, uint16(0x0012), readU16(b, 0))
	assert.Equal(t, uint16(0x1234), readU16(b, 1))
	assert.Equal(t, uint32(0x123456), readU32(b, 0))
	assert.Equal(t, uint32(0x3456789A), readU32(b, 2))
}

func TestReadPastEndPanics(t *testing.T) {
	assert.Panics(t, func() { readU16([]byte{0x01}, 0) })
	assert.Panics(t, func() { readU32([]byte{0x01, 0x02, 0x03}, 0) })
}
