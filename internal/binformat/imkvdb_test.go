package binformat

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func buildIMKVDBEntry(buf *bytes.Buffer, programID, saveDataID uint64) {
	_ = binary.Write(buf, binary.LittleEndian, uint32(imenMagic))
	_ = binary.Write(buf, binary.LittleEndian, int32(64))
	_ = binary.Write(buf, binary.LittleEndian, int32(64))

	key := make([]byte, 64)
	binary.LittleEndian.PutUint64(key, programID)
	buf.Write(key)

	value := make([]byte, 64)
	binary.LittleEndian.PutUint64(value, saveDataID)
	buf.Write(value)
}

func TestDecodeIMKVDBScenario(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	_ = binary.Write(&buf, binary.LittleEndian, uint32(imkvMagic))
	_ = binary.Write(&buf, binary.LittleEndian, uint32(0))
	_ = binary.Write(&buf, binary.LittleEndian, int32(1))
	buildIMKVDBEntry(&buf, 0x0100000000010000, 0x0000ABCDEF012345)

	got := DecodeIMKVDB(&buf)

	require.Len(t, got, 1)
	for saveID, programID := range got {
		assert.Equal(t, "0000ABCDEF012345", saveID)
		assert.Equal(t, "0100000000010000", programID)
	}
}

func TestDecodeIMKVDBBadMagicYieldsEmptyMap(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	_ = binary.Write(&buf, binary.LittleEndian, uint32(0xDEADBEEF))
	_ = binary.Write(&buf, binary.LittleEndian, uint32(0))
	_ = binary.Write(&buf, binary.LittleEndian, int32(1))

	got := DecodeIMKVDB(&buf)
	assert.Empty(t, got)
}

func TestDecodeIMKVDBTruncatedReturnsPartial(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	_ = binary.Write(&buf, binary.LittleEndian, uint32(imkvMagic))
	_ = binary.Write(&buf, binary.LittleEndian, uint32(0))
	_ = binary.Write(&buf, binary.LittleEndian, int32(2))
	buildIMKVDBEntry(&buf, 1, 2)
	// Second entry is truncated: only a partial header.
	_ = binary.Write(&buf, binary.LittleEndian, uint32(imenMagic))

	got := DecodeIMKVDB(&buf)
	assert.Len(t, got, 1)
}

func TestDecodeIMKVDBRoundTrip(t *testing.T) {
	t.Parallel()
	rapid.Check(t, func(rt *rapid.T) {
		n := rapid.IntRange(0, 20).Draw(rt, "n")
		var buf bytes.Buffer
		_ = binary.Write(&buf, binary.LittleEndian, uint32(imkvMagic))
		_ = binary.Write(&buf, binary.LittleEndian, uint32(0))
		_ = binary.Write(&buf, binary.LittleEndian, int32(n))

		expected := make(map[string]string, n)
		for i := 0; i < n; i++ {
			programID := rapid.Uint64().Draw(rt, "programID")
			saveDataID := rapid.Uint64().Draw(rt, "saveDataID")
			buildIMKVDBEntry(&buf, programID, saveDataID)
			expected[hexUpper(saveDataID)] = hexUpper(programID)
		}

		got := DecodeIMKVDB(&buf)
		require.Equal(rt, len(expected), len(got))
	})
}

func hexUpper(v uint64) string {
	const hexDigits = "0123456789ABCDEF"
	b := make([]byte, 16)
	for i := 15; i >= 0; i-- {
		b[i] = hexDigits[v&0xF]
		v >>= 4
	}
	return string(b)
}
