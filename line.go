package hxd

import "fmt"

const (
	ChunkSize   = 16
	OffsetWidth = 6
)

// IsPrint reports whether b is rendered literally in the ASCII column.
// The range is fixed to 0x20..0x7e regardless of locale.
func IsPrint(b byte) bool {
	return b >= 0x20 && b <= 0x7e
}

// AppendLine appends the listing line for chunk read at offset off.
func AppendLine(dst []byte, off int64, chunk []byte) []byte {
	if len(chunk) > ChunkSize {
		chunk = chunk[:ChunkSize]
	}
	dst = fmt.Appendf(dst, "%0*x ", OffsetWidth, off)
	for _, b := range chunk {
		dst = fmt.Appendf(dst, "%02x ", b)
	}
	for i := 0; i < (ChunkSize-len(chunk))*3; i++ {
		dst = append(dst, ' ')
	}
	for _, b := range chunk {
		if IsPrint(b) {
			dst = append(dst, b)
		} else {
			dst = append(dst, '.')
		}
	}
	return append(dst, '\n')
}

// AppendTotal appends the closing line holding the byte count of a file.
func AppendTotal(dst []byte, off int64) []byte {
	return fmt.Appendf(dst, "%0*x\n", OffsetWidth, off)
}
