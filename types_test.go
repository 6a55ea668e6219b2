package gor502

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusRegisterFlags(t *testing.T) {
	tests := []struct {
		name       string
		status     uint16
		busy       bool
		match      bool
		password   bool
		validImage bool
	}{
		{name: "all clear", status: 0x0000},
		{name: "busy only", status: 0x0001, busy: true},
		{name: "match only", status: 0x0002, match: true},
		{name: "password only", status: 0x0004, password: true},
		{name: "image only", status: 0x0008, validImage: true},
		{name: "all set", status: 0x000F, busy: true, match: true, password: true, validImage: true},
		// Reserved upper bits must not leak into the flags.
		{name: "reserved bits only", status: 0xFFF0},
		{name: "busy with reserved bits", status: 0xFF01, busy: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := SystemParameters{StatusRegister: tt.status}
			assert.Equal(t, tt.busy, p.Busy())
			assert.Equal(t, tt.match, p.HasFingerMatch())
			assert.Equal(t, tt.password, p.PasswordOK())
			assert.Equal(t, tt.validImage, p.HasValidImage())
		})
	}
}

func TestPacketSizeBytes(t *testing.T) {
	sizes := map[uint16]int{0: 32, 1: 64, 2: 128, 3: 256}
	for code, want := range sizes {
		got, err := SystemParameters{PacketSize: code}.PacketSizeBytes()
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := SystemParameters{PacketSize: 4}.PacketSizeBytes()
	assert.Error(t, err)
}

func TestBaudRate(t *testing.T) {
	assert.Equal(t, 57600, SystemParameters{BaudSetting: 6}.BaudRate())
	assert.Equal(t, 9600, SystemParameters{BaudSetting: 1}.BaudRate())
	assert.Equal(t, 115200, SystemParameters{BaudSetting: 12}.BaudRate())
}
