package gor502

import (
	"errors"
	"fmt"
)

// Instruction codes of the commands whose replies this package decodes.
// The command layer puts these on the wire; replies do not repeat them,
// so the caller has to remember which command it sent.
const (
	CmdGenImg      byte = 0x01
	CmdVfyPwd      byte = 0x13
	CmdReadSysPara byte = 0x0F
)

// Start-of-frame marker, occupying offsets 0-1 of every reply. The
// transport validates it before handing the payload over; it is not
// reinterpreted here.
const (
	HeaderHigh byte = 0xEF
	HeaderLow  byte = 0x01
)

// Confirmation byte a well-behaved module puts in a ReadSysPara reply.
// Informational, not enforced.
const ReadSysParaConfirmCode byte = 0x0F

// Constant system identifier per the datasheet, whatever that means.
const SystemIdentifierCode uint16 = 0x0009

// StatusRegister flag masks. Bits above StatusValidImage are reserved
// and must be ignored.
const (
	StatusBusy        uint16 = 1 << 0
	StatusFingerMatch uint16 = 1 << 1
	StatusPasswordOK  uint16 = 1 << 2
	StatusValidImage  uint16 = 1 << 3
)

// Layout shared by every reply frame.
const (
	offAddress     = 2 // 4 bytes, device address
	offIdent       = 6 // packet identifier, unused here
	offLength      = 7 // 2 bytes, declared body length, unused here
	offConfirmCode = 9 // confirmation code
)

// ReadSysPara reply: confirmation code, 16-byte parameter body, checksum.
const (
	readSysParaBodyStart = 10
	readSysParaBodyEnd   = 26
	readSysParaChecksum  = 26
	readSysParaReplyLen  = 28
)

// VfyPwd and GenImg replies carry only the confirmation code.
const (
	ackChecksumOff = 10
	ackReplyLen    = 12
)

// Offsets within the 16-byte system-parameter body. The datasheet counts
// in words here; words are 16 bit.
const (
	spOffStatus     = 0
	spOffIdentifier = 2
	spOffLibSize    = 4
	spOffSecurity   = 6
	spOffAddress    = 8
	spOffPacketSize = 12
	spOffBaud       = 14
	spBodyLen       = 16
)

var (
	// ErrTruncatedReply means the payload is shorter than the fixed
	// shape of the selected reply.
	ErrTruncatedReply = errors.New("truncated reply payload")

	// ErrInvalidStatusByte means a confirmation code outside its
	// documented value set. The protocol gives no recovery semantics
	// for unknown codes, so the decode attempt is abandoned.
	ErrInvalidStatusByte = errors.New("invalid status byte")

	// ErrUnknownCommand means ParseReply was asked for a command this
	// package has no decoder for.
	ErrUnknownCommand = errors.New("unknown command code")
)

// ParseReply decodes one reply payload according to the command that was
// sent. The transport must already have delimited the payload to a
// single frame starting at the header marker.
func ParseReply(cmd byte, payload []byte) (*Reply, error) {
	Log.Debugf("Reply[RAW] cmd=%#02x: % X", cmd, payload)

	reply := &Reply{Command: cmd}
	var err error

	switch cmd {
	case CmdReadSysPara:
		reply.ReadSysPara, err = ParseReadSysParaResponse(payload)
	case CmdVfyPwd:
		reply.VfyPwd, err = ParseVfyPwdResponse(payload)
	case CmdGenImg:
		reply.GenImg, err = ParseGenImgResponse(payload)
	default:
		return nil, fmt.Errorf("%w: %#02x", ErrUnknownCommand, cmd)
	}

	if err != nil {
		return nil, err
	}
	return reply, nil
}

// ParseReadSysParaResponse decodes a ReadSysPara reply.
//
// Expected frame:
//
//	headr  | 0xEF 0x01 [2]
//	addr   | device address [4]
//	ident  | [1]
//	length | [2]
//	confrm | 0x0F [1]
//	params | system parameters [16]
//	chksum | [2]
//
// Neither the confirmation code nor the checksum is validated here;
// both are surfaced for the caller to judge.
func ParseReadSysParaResponse(payload []byte) (*ReadSysParaResult, error) {
	if len(payload) < readSysParaReplyLen {
		return nil, fmt.Errorf("%w: ReadSysPara reply needs %d bytes, got %d", ErrTruncatedReply, readSysParaReplyLen, len(payload))
	}

	params, err := ParseSystemParameters(payload[readSysParaBodyStart:readSysParaBodyEnd])
	if err != nil {
		return nil, err
	}

	return &ReadSysParaResult{
		Address:          readU32(payload, offAddress),
		ConfirmationCode: payload[offConfirmCode],
		SystemParameters: params,
		Checksum:         readU16(payload, readSysParaChecksum),
	}, nil
}

// ParseVfyPwdResponse decodes a VfyPwd reply. A confirmation byte
// outside the password-verification set fails the decode; treat that as
// the device sending an invalid response, not something to retry.
func ParseVfyPwdResponse(payload []byte) (*VfyPwdResult, error) {
	if len(payload) < ackReplyLen {
		return nil, fmt.Errorf("%w: VfyPwd reply needs %d bytes, got %d", ErrTruncatedReply, ackReplyLen, len(payload))
	}

	state, err := PasswordVerificationStateFrom(payload[offConfirmCode])
	if err != nil {
		return nil, err
	}

	return &VfyPwdResult{
		Address:          readU32(payload, offAddress),
		ConfirmationCode: state,
		Checksum:         readU16(payload, ackChecksumOff),
	}, nil
}

// ParseGenImgResponse decodes a GenImg reply. Same shape and same
// fatal-error policy as ParseVfyPwdResponse.
func ParseGenImgResponse(payload []byte) (*GenImgResult, error) {
	if len(payload) < ackReplyLen {
		return nil, fmt.Errorf("%w: GenImg reply needs %d bytes, got %d", ErrTruncatedReply, ackReplyLen, len(payload))
	}

	status, err := GenImgStatusFrom(payload[offConfirmCode])
	if err != nil {
		return nil, err
	}

	return &GenImgResult{
		Address:          readU32(payload, offAddress),
		ConfirmationCode: status,
		Checksum:         readU16(payload, ackChecksumOff),
	}, nil
}

// ParseSystemParameters decodes the 16-byte parameter body of a
// ReadSysPara reply.
//
// The upstream driver this port replaces read BaudSetting from the same
// word as PacketSize; per the datasheet the body is seven words with the
// baud setting in the last one, which is what is read here.
func ParseSystemParameters(body []byte) (SystemParameters, error) {
	if len(body) < spBodyLen {
		return SystemParameters{}, fmt.Errorf("%w: system parameters need %d bytes, got %d", ErrTruncatedReply, spBodyLen, len(body))
	}

	return SystemParameters{
		StatusRegister:    readU16(body, spOffStatus),
		SystemIdentifier:  readU16(body, spOffIdentifier),
		FingerLibrarySize: readU16(body, spOffLibSize),
		SecurityLevel:     readU16(body, spOffSecurity),
		DeviceAddress:     readU32(body, spOffAddress),
		PacketSize:        readU16(body, spOffPacketSize),
		BaudSetting:       readU16(body, spOffBaud),
	}, nil
}
