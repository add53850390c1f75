package binformat

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func buildNACP(titles ...string) []byte {
	size := nacpTitleTableOffset + nacpMaxLanguages*nacpEntrySize
	data := make([]byte, size)
	for i, title := range titles {
		if i >= nacpMaxLanguages {
			break
		}
		start := nacpTitleTableOffset + i*nacpEntrySize
		copy(data[start:], []byte(title))
	}
	return data
}

func TestDecodeNACPTitleFirstNonEmptyWins(t *testing.T) {
	t.Parallel()
	data := buildNACP("", "", "Super Mario Odyssey")
	assert.Equal(t, "Super Mario Odyssey", DecodeNACPTitle(data))
}

func TestDecodeNACPTitleAllEmpty(t *testing.T) {
	t.Parallel()
	data := buildNACP()
	assert.Equal(t, "no title", DecodeNACPTitle(data))
}

func TestDecodeNACPTitleTruncatedBuffer(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "no title", DecodeNACPTitle(make([]byte, 10)))
}
