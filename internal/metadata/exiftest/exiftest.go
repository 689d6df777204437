// Package exiftest builds minimal image files with EXIF blocks for tests.
package exiftest

import (
	"bytes"
	"encoding/binary"
	"os"
	"testing"
)

const (
	tagMake     = 0x010F
	tagDateTime = 0x0132
	typeASCII   = 2
)

// JPEG returns a tiny JPEG whose IFD0 holds DateTime set to dateTime.
func JPEG(dateTime string) []byte {
	return wrapJPEG(tiffWithASCII(tagDateTime, dateTime))
}

// JPEGWithoutDateTime returns a JPEG with an EXIF block that lacks the
// DateTime tag.
func JPEGWithoutDateTime() []byte {
	return wrapJPEG(tiffWithASCII(tagMake, "TestCam"))
}

// PlainJPEG returns a JPEG with no EXIF block at all.
func PlainJPEG() []byte {
	return []byte{0xFF, 0xD8, 0xFF, 0xD9}
}

// WriteFile writes data to path, failing the test on error.
func WriteFile(t testing.TB, path string, data []byte) {
	t.Helper()
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("write fixture %s: %v", path, err)
	}
}

// tiffWithASCII builds a little-endian TIFF stream with a single IFD0 entry.
func tiffWithASCII(tag uint16, value string) []byte {
	val := append([]byte(value), 0)
	le := binary.LittleEndian

	var buf bytes.Buffer
	buf.WriteString("II")
	binary.Write(&buf, le, uint16(42))
	binary.Write(&buf, le, uint32(8))

	// IFD0: one entry, then the next-IFD offset.
	binary.Write(&buf, le, uint16(1))
	binary.Write(&buf, le, tag)
	binary.Write(&buf, le, uint16(typeASCII))
	binary.Write(&buf, le, uint32(len(val)))
	if len(val) <= 4 {
		inline := make([]byte, 4)
		copy(inline, val)
		buf.Write(inline)
	} else {
		binary.Write(&buf, le, uint32(8+2+12+4))
	}
	binary.Write(&buf, le, uint32(0))

	if len(val) > 4 {
		buf.Write(val)
	}
	return buf.Bytes()
}

func wrapJPEG(tiff []byte) []byte {
	payload := append([]byte("Exif\x00\x00"), tiff...)

	var buf bytes.Buffer
	buf.Write([]byte{0xFF, 0xD8, 0xFF, 0xE1})
	binary.Write(&buf, binary.BigEndian, uint16(len(payload)+2))
	buf.Write(payload)
	buf.Write([]byte{0xFF, 0xD9})
	return buf.Bytes()
}
