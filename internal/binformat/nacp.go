package binformat

import (
	"bytes"
	"io"
	"strings"
)

const (
	nacpTitleTableOffset = 0x3000
	nacpEntrySize        = 0x200
	nacpMaxLanguages     = 16
)

// DecodeNACPTitle reads a Switch control.nacp buffer and returns the first
// non-empty language entry's title, per §4.G. If every entry is empty,
// "no title" is returned rather than an empty string, so callers can
// distinguish "decoded, but blank" from "not decoded at all".
func DecodeNACPTitle(data []byte) string {
	for i := 0; i < nacpMaxLanguages; i++ {
		start := nacpTitleTableOffset + i*nacpEntrySize
		if start >= len(data) {
			break
		}
		end := start + nacpEntrySize
		if end > len(data) {
			end = len(data)
		}
		entry := data[start:end]
		if nul := bytes.IndexByte(entry, 0); nul >= 0 {
			entry = entry[:nul]
		}
		title := strings.TrimSpace(string(entry))
		if title != "" {
			return title
		}
	}
	return "no title"
}

// ReadNACPTitle is a convenience wrapper reading the whole control.nacp
// file into memory before decoding, matching the "complete in-memory
// buffer" decoder contract of §4.G.
func ReadNACPTitle(r io.Reader) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	return DecodeNACPTitle(data), nil
}
