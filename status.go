package gor502

import (
	"fmt"
)

// PasswordVerificationState is the confirmation code of a VfyPwd reply.
type PasswordVerificationState byte

const (
	PasswordCorrect   PasswordVerificationState = 0x00
	PasswordError     PasswordVerificationState = 0x01
	PasswordIncorrect PasswordVerificationState = 0x13
)

// PasswordVerificationStateFrom maps a confirmation byte to its state.
// Bytes outside {0x00, 0x01, 0x13} mean the device violated the
// protocol and are reported as ErrInvalidStatusByte.
func PasswordVerificationStateFrom(b byte) (PasswordVerificationState, error) {
	switch b {
	case 0x00:
		return PasswordCorrect, nil
	case 0x13:
		return PasswordIncorrect, nil
	case 0x01:
		return PasswordError, nil
	default:
		return 0, fmt.Errorf("%w: VfyPwd confirmation %#02x", ErrInvalidStatusByte, b)
	}
}

func (s PasswordVerificationState) String() string {
	switch s {
	case PasswordCorrect:
		return "password correct"
	case PasswordIncorrect:
		return "password incorrect"
	case PasswordError:
		return "packet error"
	default:
		return fmt.Sprintf("PasswordVerificationState(%#02x)", byte(s))
	}
}

// GenImgStatus is the confirmation code of a GenImg reply.
type GenImgStatus byte

const (
	// Fingerprint captured successfully.
	GenImgSuccess GenImgStatus = 0x00

	// Error receiving the packet from the host.
	GenImgPacketError GenImgStatus = 0x01

	// No finger on the sensor.
	GenImgFingerNotDetected GenImgStatus = 0x02

	// Finger present but the image failed to capture.
	GenImgImageNotCaptured GenImgStatus = 0x03
)

// GenImgStatusFrom maps a confirmation byte to its capture status.
// Bytes outside {0x00..0x03} are reported as ErrInvalidStatusByte.
func GenImgStatusFrom(b byte) (GenImgStatus, error) {
	switch b {
	case 0x00:
		return GenImgSuccess, nil
	case 0x01:
		return GenImgPacketError, nil
	case 0x02:
		return GenImgFingerNotDetected, nil
	case 0x03:
		return GenImgImageNotCaptured, nil
	default:
		return 0, fmt.Errorf("%w: GenImg confirmation %#02x", ErrInvalidStatusByte, b)
	}
}

func (s GenImgStatus) String() string {
	switch s {
	case GenImgSuccess:
		return "image captured"
	case GenImgPacketError:
		return "packet error"
	case GenImgFingerNotDetected:
		return "finger not detected"
	case GenImgImageNotCaptured:
		return "image not captured"
	default:
		return fmt.Sprintf("GenImgStatus(%#02x)", byte(s))
	}
}
