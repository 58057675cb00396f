package outcome

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
)

// row mirrors one JSON Lines record as emitted by the run-execution system.
type row struct {
	ID         string  `json:"id"`
	FinalScore float64 `json:"final_score"`
	Decision   string  `json:"decision"`
	OK         bool    `json:"ok"`
	Error      *string `json:"error"`
	LatencyMS  float64 `json:"latency_ms"`
	Repetition int     `json:"repetition"`
}

// Read parses a JSON Lines run file into the collection. Malformed lines are
// read errors; records that fail validation are returned as rejections so the
// caller can report them, with the affected case degrading to unmatched.
func Read(r io.Reader, into *Collection) (rejected []error, err error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		var rw row
		if err := json.Unmarshal([]byte(line), &rw); err != nil {
			return rejected, fmt.Errorf("run file line %d: %w", lineNo, err)
		}
		rec := Record{
			CaseID:     rw.ID,
			Version:    into.Version(),
			Score:      rw.FinalScore,
			Decision:   DecisionLabel(strings.ToLower(strings.TrimSpace(rw.Decision))),
			LatencyMS:  rw.LatencyMS,
			ASRFailed:  !rw.OK,
			Repetition: rw.Repetition,
		}
		if addErr := into.Add(rec); addErr != nil {
			rejected = append(rejected, addErr)
		}
	}
	if err := scanner.Err(); err != nil {
		return rejected, fmt.Errorf("read run file: %w", err)
	}
	return rejected, nil
}

// LoadFile reads a JSONL run file from disk into a fresh collection.
func LoadFile(path string, version Version, scale Scale, decisionThreshold float64) (*Collection, []error, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open run file %s: %w", path, err)
	}
	defer file.Close()

	collection := NewCollection(version, scale, decisionThreshold)
	rejected, err := Read(file, collection)
	if err != nil {
		return nil, rejected, err
	}
	return collection, rejected, nil
}
