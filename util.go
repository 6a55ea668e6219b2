package gor502

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
)

// PrintlHex printls bytes to console as HEX encoding
func PrintlHex(title string, buf []byte) {
	fmt.Printf("%s %q\n", title, hex.EncodeToString(buf))
}

// readU16 reads a big-endian 16-bit field starting at off. The decoders
// length-check the whole payload before calling; an out-of-range offset
// is a programming error and panics.
func readU16(b []byte, off int) uint16 {
	return binary.BigEndian.Uint16(b[off : off+2])
}

// readU32 reads a big-endian 32-bit field starting at off.
func readU32(b []byte, off int) uint32 {
	return binary.BigEndian.Uint32(b[off : off+4])
}
