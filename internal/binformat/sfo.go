package binformat

import (
	"bytes"
	"encoding/binary"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
)

var sfoMagic = [4]byte{0x00, 'P', 'S', 'F'}

const (
	sfoFmtUTF8   = 0x0204
	sfoFmtUint32 = 0x0404
)

// SFOInfo is the subset of a PS Vita param.sfo this module cares about.
type SFOInfo struct {
	Title   string
	TitleID string
}

type sfoHeader struct {
	Magic           [4]byte
	Version         uint32
	KeyTableOffset  uint32
	DataTableOffset uint32
	EntriesCount    uint32
}

type sfoIndexEntry struct {
	KeyOffset   uint16
	DataFmt     uint16
	DataLen     uint32
	DataMaxLen  uint32
	DataOffset  uint32
}

// DecodeSFO parses a complete param.sfo buffer. On a bad magic or a
// truncated header it returns a zero-value SFOInfo, per §4.G/§7 ("a bad
// file magic on IMKVDB/SFO yields an empty map, not a crash").
func DecodeSFO(data []byte) SFOInfo {
	var info SFOInfo
	r := bytes.NewReader(data)

	var header sfoHeader
	if err := binary.Read(r, binary.LittleEndian, &header); err != nil {
		log.Debug().Err(err).Msg("sfo: truncated header")
		return info
	}
	if header.Magic != sfoMagic {
		log.Warn().Bytes("magic", header.Magic[:]).Msg("sfo: bad header magic")
		return info
	}

	entries := make([]sfoIndexEntry, 0, header.EntriesCount)
	for i := uint32(0); i < header.EntriesCount; i++ {
		var e sfoIndexEntry
		if err := binary.Read(r, binary.LittleEndian, &e); err != nil {
			log.Debug().Err(err).Uint32("index", i).Msg("sfo: truncated index table")
			break
		}
		entries = append(entries, e)
	}

	var title, stitle string
	for _, e := range entries {
		key := readNulString(data, int(header.KeyTableOffset)+int(e.KeyOffset))
		value := sfoEntryValue(data, header, e)

		switch key {
		case "TITLE":
			title = value
		case "STITLE":
			stitle = value
		case "TITLE_ID":
			info.TitleID = value
		}
	}

	if title != "" {
		info.Title = title
	} else {
		info.Title = stitle
	}
	return info
}

func sfoEntryValue(data []byte, header sfoHeader, e sfoIndexEntry) string {
	start := int(header.DataTableOffset) + int(e.DataOffset)
	end := start + int(e.DataLen)
	if start < 0 || end > len(data) || start > end {
		return ""
	}
	raw := data[start:end]

	switch e.DataFmt {
	case sfoFmtUTF8:
		return strings.TrimRight(string(raw), "\x00")
	case sfoFmtUint32:
		if len(raw) < 4 {
			return ""
		}
		return strconv.FormatUint(uint64(binary.LittleEndian.Uint32(raw)), 10)
	default:
		return string(raw)
	}
}

func readNulString(data []byte, offset int) string {
	if offset < 0 || offset >= len(data) {
		return ""
	}
	end := bytes.IndexByte(data[offset:], 0)
	if end < 0 {
		return string(data[offset:])
	}
	return string(data[offset : offset+end])
}
