package gor502

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordVerificationStateFrom(t *testing.T) {
	valid := map[byte]PasswordVerificationState{
		0x00: PasswordCorrect,
		0x01: PasswordError,
		0x13: PasswordIncorrect,
	}

	for b := 0; b < 256; b++ {
		state, err := PasswordVerificationStateFrom(byte(b))
		if want, ok := valid[byte(b)]; ok {
			require.NoError(t, err)
			assert.Equal(t, want, state)
			continue
		}
		assert.Error(t, err, "byte %#02x must be rejected", b)
	}
}

func TestGenImgStatusFrom(t *testing.T) {
	valid := map[byte]GenImgStatus{
		0x00: GenImgSuccess,
		0x01: GenImgPacketError,
		0x02: GenImgFingerNotDetected,
		0x03: GenImgImageNotCaptured,
	}

	for b := 0; b < 256; b++ {
		status, err := GenImgStatusFrom(byte(b))
		if want, ok := valid[byte(b)]; ok {
			require.NoError(t, err)
			assert.Equal(t, want, status)
			continue
		}
		assert.Error(t, err, "byte %#02x must be rejected", b)
	}
}

func TestStatusStrings(t *testing.T) {
	assert.Equal(t, "password incorrect", PasswordIncorrect.String())
	assert.Equal(t, "finger not detected", GenImgFingerNotDetected.String())
	assert.Contains(t, GenImgStatus(0x77).String(), "0x77")
}
