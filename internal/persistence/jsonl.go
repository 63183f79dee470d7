package persistence

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/gcbaptista/geoquery/model"
	"github.com/rs/zerolog/log"
)

// maxLineBytes bounds a single JSONL record. Longer lines are skipped like
// malformed ones. A variable so tests can lower it.
var maxLineBytes = 8 * 1024 * 1024

// LoadJSONL reads a line-delimited JSON file into an ordered slice of documents.
// Blank lines are ignored. A line that is not a JSON object is skipped and logged
// with its line number; the remaining lines are still loaded.
// If the file does not exist, it returns os.ErrNotExist, allowing callers to
// degrade to an empty collection.
func LoadJSONL(filePath string) ([]model.Document, error) {
	file, err := os.Open(filePath) // #nosec G304 -- filePath comes from application config, not user input
	if err != nil {
		if os.IsNotExist(err) {
			return nil, os.ErrNotExist
		}
		return nil, fmt.Errorf("failed to open file %s: %w", filePath, err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			log.Warn().Err(closeErr).Str("path", filePath).Msg("failed to close file")
		}
	}()

	docs := make([]model.Document, 0)
	reader := bufio.NewReaderSize(file, 64*1024)

	lineNum := 0
	skipped := 0
	for {
		raw, tooLong, readErr := readLine(reader, maxLineBytes)
		if readErr != nil && readErr != io.EOF {
			log.Warn().Err(readErr).Str("path", filePath).Int("line", lineNum+1).Msg("stopped reading JSONL file early")
			break
		}
		if readErr == io.EOF && len(raw) == 0 && !tooLong {
			break
		}
		lineNum++

		if tooLong {
			skipped++
			log.Warn().Str("path", filePath).Int("line", lineNum).Int("max_bytes", maxLineBytes).Msg("skipping oversized JSONL line")
		} else if line := strings.TrimSpace(string(raw)); line != "" {
			var doc model.Document
			if err := json.Unmarshal([]byte(line), &doc); err != nil || doc == nil {
				if err == nil {
					err = errors.New("record is not a JSON object")
				}
				skipped++
				log.Warn().Err(err).Str("path", filePath).Int("line", lineNum).Msg("skipping malformed JSONL line")
			} else {
				docs = append(docs, doc)
			}
		}

		if readErr == io.EOF {
			break
		}
	}

	log.Debug().Str("path", filePath).Int("documents", len(docs)).Int("skipped", skipped).Msg("loaded JSONL file")
	return docs, nil
}

// readLine returns the next line without its trailing newline. When the line
// is longer than limit, the rest of it is discarded and tooLong is set. err is
// io.EOF on the final line, which may be empty.
func readLine(reader *bufio.Reader, limit int) (line []byte, tooLong bool, err error) {
	for {
		chunk, readErr := reader.ReadSlice('\n')
		if !tooLong {
			if len(line)+len(chunk) > limit+1 {
				tooLong = true
				line = nil
			} else {
				line = append(line, chunk...)
			}
		}
		switch {
		case readErr == bufio.ErrBufferFull:
			continue
		case readErr != nil:
			return line, tooLong, readErr
		default:
			return bytes.TrimSuffix(line, []byte("\n")), tooLong, nil
		}
	}
}

// SaveJSONL writes documents as one JSON object per line to filePath.
// It creates necessary directories if they don't exist.
func SaveJSONL(filePath string, docs []model.Document) error {
	dir := filepath.Dir(filePath)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	file, err := os.Create(filePath) // #nosec G304 -- filePath is controlled by application, not user input
	if err != nil {
		return fmt.Errorf("failed to create file %s: %w", filePath, err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			log.Warn().Err(closeErr).Str("path", filePath).Msg("failed to close file")
		}
	}()

	writer := bufio.NewWriter(file)
	encoder := json.NewEncoder(writer)
	encoder.SetEscapeHTML(false)
	for i, doc := range docs {
		if err := encoder.Encode(doc); err != nil {
			return fmt.Errorf("failed to encode document %d to %s: %w", i, filePath, err)
		}
	}
	if err := writer.Flush(); err != nil {
		return fmt.Errorf("failed to flush %s: %w", filePath, err)
	}
	return nil
}
