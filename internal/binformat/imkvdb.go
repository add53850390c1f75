// Package binformat decodes the small binary formats the emulator adapters
// rely on: Nintendo Switch's IMKVDB save index and NACP control metadata,
// the PS Vita param.sfo, and similar sequential, little-endian, wire-exact
// layouts. DecodeIMKVDB reads sequentially from an io.Reader; DecodeSFO and
// DecodeNACPTitle take the whole file as a byte slice. All decoders are total:
// malformed input yields a partial result plus a logged warning, never an
// error that aborts the caller.
package binformat

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/rs/zerolog/log"
)

const (
	imkvMagic        = 0x564B4D49 // "IMKV"
	imenMagic        = 0x4E454D49 // "IMEN"
	imkvHeaderSize   = 12
	imenEntryKeySize = 8
	imenSaneSizeCap  = 1024
)

// DecodeIMKVDB parses a Nintendo Switch save-index binary (imkvdb.arc) into
// a map of SaveDataID (hex, uppercase) to ProgramID/TitleID (hex, uppercase).
// Per §4.G and §7: a bad header magic yields an empty map, not an error;
// per-entry magic or size mismatches are logged and skipped; a truncated
// read aborts cleanly and returns whatever was assembled so far.
func DecodeIMKVDB(r io.Reader) map[string]string {
	result := make(map[string]string)

	var header struct {
		Magic      uint32
		Reserved   uint32
		EntryCount int32
	}
	if err := binary.Read(r, binary.LittleEndian, &header); err != nil {
		log.Debug().Err(err).Msg("imkvdb: truncated header")
		return result
	}
	if header.Magic != imkvMagic {
		log.Warn().Uint32("magic", header.Magic).Msg("imkvdb: bad header magic")
		return result
	}

	for i := int32(0); i < header.EntryCount; i++ {
		var entry struct {
			Magic     uint32
			KeySize   int32
			ValueSize int32
		}
		if err := binary.Read(r, binary.LittleEndian, &entry); err != nil {
			log.Debug().Err(err).Int32("index", i).Msg("imkvdb: truncated entry header")
			return result
		}

		if entry.Magic != imenMagic {
			log.Warn().Uint32("magic", entry.Magic).Int32("index", i).Msg("imkvdb: bad entry magic, attempting recovery")
			if !skipBytes(r, int64(entry.KeySize)+int64(entry.ValueSize)) {
				return result
			}
			continue
		}

		keySize, valueSize := entry.KeySize, entry.ValueSize
		if keySize != 64 || valueSize != 64 {
			log.Warn().Int32("keySize", keySize).Int32("valueSize", valueSize).Msg("imkvdb: unexpected entry size")
			skipLen := maxInt64(int64(keySize), 64) + maxInt64(int64(valueSize), 64)
			if skipLen > imenSaneSizeCap {
				skipLen = imenSaneSizeCap
			}
			if !skipBytes(r, skipLen) {
				return result
			}
			continue
		}

		keyBuf := make([]byte, keySize)
		if _, err := io.ReadFull(r, keyBuf); err != nil {
			log.Debug().Err(err).Msg("imkvdb: truncated key block")
			return result
		}
		valueBuf := make([]byte, valueSize)
		if _, err := io.ReadFull(r, valueBuf); err != nil {
			log.Debug().Err(err).Msg("imkvdb: truncated value block")
			return result
		}

		programID := binary.LittleEndian.Uint64(keyBuf[:imenEntryKeySize])
		saveDataID := binary.LittleEndian.Uint64(valueBuf[:imenEntryKeySize])

		result[fmt.Sprintf("%016X", saveDataID)] = fmt.Sprintf("%016X", programID)
	}

	return result
}

func skipBytes(r io.Reader, n int64) bool {
	if n <= 0 {
		return true
	}
	if _, err := io.CopyN(io.Discard, r, n); err != nil {
		log.Debug().Err(err).Msg("imkvdb: truncated while skipping malformed entry")
		return false
	}
	return true
}

func maxInt64(a, b int64) int64 {
	if a > b {
		return a
	}
	return b
}
