// Package seats reads the seat-inventory file: a JSON object mapping block
// names to arrays of seat identifiers. The file is hand-maintained, so //
// line comments, /* block comments */ and trailing commas are allowed and
// stripped before decoding.
package seats

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/tidwall/jsonc"

	"seatAllocator/internal/models"
)

// Loader loads seat blocks from one inventory file.
type Loader struct {
	path string
}

func New(path string) *Loader {
	return &Loader{path: path}
}

// LoadBlocks reads and decodes the inventory. Blocks come back in document
// order; the allocation engine owns the numeric-key ordering. A malformed
// document is an error, never a skipped entry: the inventory is authored,
// not user input.
func (l *Loader) LoadBlocks() ([]models.SeatBlock, error) {
	data, err := os.ReadFile(l.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seat inventory: %w", err)
	}

	blocks, err := parseBlocks(jsonc.ToJSON(data))
	if err != nil {
		return nil, fmt.Errorf("failed to parse seat inventory %s: %w", l.path, err)
	}

	return blocks, nil
}

// parseBlocks walks the top-level object token by token. A plain map would
// randomize block order between runs; the token walk keeps the document
// order the file author chose.
func parseBlocks(data []byte) ([]models.SeatBlock, error) {
	decoder := json.NewDecoder(bytes.NewReader(data))

	token, err := decoder.Token()
	if err != nil {
		return nil, err
	}
	if delim, ok := token.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("expected a top-level object, got %v", token)
	}

	var blocks []models.SeatBlock
	for decoder.More() {
		token, err := decoder.Token()
		if err != nil {
			return nil, err
		}
		name, ok := token.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected token %v in place of a block name", token)
		}

		var seatIDs []string
		if err := decoder.Decode(&seatIDs); err != nil {
			return nil, fmt.Errorf("block %q: %w", name, err)
		}
		for _, seat := range seatIDs {
			if seat == "" {
				return nil, fmt.Errorf("block %q contains an empty seat identifier", name)
			}
		}

		blocks = append(blocks, models.SeatBlock{Name: name, Seats: seatIDs})
	}

	if _, err := decoder.Token(); err != nil {
		return nil, err
	}

	return blocks, nil
}
