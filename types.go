package gor502

import (
	"fmt"
)

// Reply is the decoded form of one response frame. Exactly one of the
// result fields is non-nil, selected by the command that was sent; the
// frame itself does not say which command it answers.
type Reply struct {
	Command     byte
	ReadSysPara *ReadSysParaResult
	VfyPwd      *VfyPwdResult
	GenImg      *GenImgResult
}

// ReadSysParaResult carries the module's status and configuration.
type ReadSysParaResult struct {
	Address          uint32
	ConfirmationCode byte
	SystemParameters SystemParameters
	Checksum         uint16
}

// VfyPwdResult is the outcome of the password handshake.
type VfyPwdResult struct {
	Address          uint32
	ConfirmationCode PasswordVerificationState
	Checksum         uint16
}

// GenImgResult is the outcome of a fingerprint capture request.
type GenImgResult struct {
	Address          uint32
	ConfirmationCode GenImgStatus
	Checksum         uint16
}

// SystemParameters is the 16-byte configuration block returned by
// ReadSysPara. Use the bit accessors to get to the individual flags of
// StatusRegister.
type SystemParameters struct {
	// Device state flags, see the Status* masks.
	StatusRegister uint16

	// Constant per the datasheet, see SystemIdentifierCode.
	SystemIdentifier uint16

	// Capacity of the fingerprint library.
	FingerLibrarySize uint16

	// Matching security level, 1-5.
	SecurityLevel uint16

	// Address the module answers on.
	DeviceAddress uint32

	// Data packet length code, 0-3. See PacketSizeBytes.
	PacketSize uint16

	// Baud rate divided by 9600. The default is 6 for 57600 baud.
	BaudSetting uint16
}

// Busy reports whether the module is still executing a command.
// "Busy" in the datasheet.
func (p SystemParameters) Busy() bool {
	return p.StatusRegister&StatusBusy != 0
}

// HasFingerMatch reports whether the module found a matching finger.
// Check the reply to the actual matching command as well.
// "Pass" in the datasheet.
func (p SystemParameters) HasFingerMatch() bool {
	return p.StatusRegister&StatusFingerMatch != 0
}

// PasswordOK reports whether the handshake password was correct.
// "PWD" in the datasheet.
func (p SystemParameters) PasswordOK() bool {
	return p.StatusRegister&StatusPasswordOK != 0
}

// HasValidImage reports whether the image buffer holds a valid image.
// "ImgBufStat" in the datasheet.
func (p SystemParameters) HasValidImage() bool {
	return p.StatusRegister&StatusValidImage != 0
}

// PacketSizeBytes translates the packet length code into bytes:
// 0 = 32, 1 = 64, 2 = 128 (the default), 3 = 256.
func (p SystemParameters) PacketSizeBytes() (int, error) {
	switch p.PacketSize {
	case 0:
		return 32, nil
	case 1:
		return 64, nil
	case 2:
		return 128, nil
	case 3:
		return 256, nil
	default:
		return 0, fmt.Errorf("packet size code %d out of range", p.PacketSize)
	}
}

// BaudRate is the configured baud rate in bits per second.
//
// The datasheet contradicts itself on the maximum setting - one table
// gives the range 1-6, another states a 115200 maximum which would mean
// 1-12. No range check is done here.
func (p SystemParameters) BaudRate() int {
	return int(p.BaudSetting) * 9600
}

func (r Reply) String() string {
	switch {
	case r.ReadSysPara != nil:
		return fmt.Sprintf("ReadSysPara addr=%d status=%#04x", r.ReadSysPara.Address, r.ReadSysPara.SystemParameters.StatusRegister)
	case r.VfyPwd != nil:
		return fmt.Sprintf("VfyPwd addr=%d %v", r.VfyPwd.Address, r.VfyPwd.ConfirmationCode)
	case r.GenImg != nil:
		return fmt.Sprintf("GenImg addr=%d %v", r.GenImg.Address, r.GenImg.ConfirmationCode)
	default:
		return fmt.Sprintf("empty reply for command %#02x", r.Command)
	}
}
