package persistence

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gcbaptista/geoquery/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadJSONL_MissingFile(t *testing.T) {
	docs, err := LoadJSONL(filepath.Join(t.TempDir(), "absent.jsonl"))
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Empty(t, docs)
}

func TestLoadJSONL_SkipsBlankAndMalformedLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cards.jsonl")
	content := `{"title":"Wildfires","country":"Saudi Arabia"}

{not json}
["an","array"]
null
{"title":"Drought","images":["backend/data/img/a.png"]}
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	docs, err := LoadJSONL(path)
	require.NoError(t, err)
	require.Len(t, docs, 2)
	assert.Equal(t, "Wildfires", docs[0]["title"])
	assert.Equal(t, "Drought", docs[1]["title"])
	assert.Equal(t, []interface{}{"backend/data/img/a.png"}, docs[1]["images"])
}

func TestSaveJSONL_RoundTripPreservesOrder(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "out.jsonl")
	in := []model.Document{
		{"title": "土地退化", "country": "China"},
		{"title": "Land cover & wetlands", "country": "Ghana"},
	}

	require.NoError(t, SaveJSONL(path, in))
	out, err := LoadJSONL(path)
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "土地退化", out[0]["title"])
	assert.Equal(t, "Land cover & wetlands", out[1]["title"])
}

func TestLoadJSONL_SkipsOversizedLine(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cards.jsonl")
	oversized := `{"id":"2","text":"` + strings.Repeat("x", maxLineBytes+1024*1024) + `"}`
	content := `{"id":"1"}` + "\n" + oversized + "\n" + `{"id":"3"}` + "\n" + `{"id":"4"}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	docs, err := LoadJSONL(path)
	require.NoError(t, err)
	require.Len(t, docs, 3)
	assert.Equal(t, "1", docs[0]["id"])
	assert.Equal(t, "3", docs[1]["id"])
	assert.Equal(t, "4", docs[2]["id"])
}

func TestReadLine(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		limit       int
		wantLines   []string
		wantTooLong []bool
	}{
		{"short lines", "ab\ncd\n", 10, []string{"ab", "cd", ""}, []bool{false, false, false}},
		{"no trailing newline", "ab\ncd", 10, []string{"ab", "cd"}, []bool{false, false}},
		{"line over limit", "ab\n" + strings.Repeat("z", 40) + "\ncd", 10, []string{"ab", "", "cd"}, []bool{false, true, false}},
		{"oversized last line", "ab\n" + strings.Repeat("z", 40), 10, []string{"ab", ""}, []bool{false, true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// The minimum buffer size forces lines to span several reads
			reader := bufio.NewReaderSize(strings.NewReader(tt.input), 16)
			var lines []string
			var tooLongs []bool
			for {
				line, tooLong, err := readLine(reader, tt.limit)
				lines = append(lines, string(line))
				tooLongs = append(tooLongs, tooLong)
				if err == io.EOF {
					break
				}
				require.NoError(t, err)
			}
			assert.Equal(t, tt.wantLines, lines)
			assert.Equal(t, tt.wantTooLong, tooLongs)
		})
	}
}
