package goldenset

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
)

// Read parses a JSON Lines catalog from r and builds a validated Catalog.
// Blank lines are skipped; any malformed line is a catalog error.
func Read(r io.Reader, minCases int) (*Catalog, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var cases []Case
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		var c Case
		if err := json.Unmarshal([]byte(line), &c); err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrCatalog, lineNo, err)
		}
		cases = append(cases, c)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: read catalog: %v", ErrCatalog, err)
	}

	return New(cases, minCases)
}

// LoadFile reads a JSONL catalog from disk.
func LoadFile(path string, minCases int) (*Catalog, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: open catalog %s: %v", ErrCatalog, path, err)
	}
	defer file.Close()
	return Read(file, minCases)
}
