package mtx

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/labelrank/graph"
)

// ReadWeighted parses a Matrix-Market coordinate file from r into a new
// Graph. Lines beginning with '%' are comments (including the banner
// line); the first non-comment line must be "rows cols entries"; every
// line after that is "row col [value]" with 1-based indices, value
// defaulting to 1 when omitted (the pattern/boolean matrix convention).
//
// The returned Graph allows neither multi-edges nor self-loops; repeated
// coordinate entries accumulate weight (see Graph.AddEdge), and row==col
// entries are rejected with graph.ErrLoopNotAllowed — callers that expect
// diagonal entries should strip them before calling ReadWeighted, since
// self-loop augmentation is this package's own explicit Load step, not an
// artifact of the source file.
func ReadWeighted(r io.Reader) (*graph.Graph, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	rows, cols, entries, ok, err := readDimensions(scanner)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrEmptyFile
	}
	_ = cols // cols is informational for a square adjacency matrix; Graph tracks span itself

	g := graph.NewGraph()
	var seen int
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "%") {
			continue
		}
		u, v, w, perr := parseEntry(line)
		if perr != nil {
			return nil, perr
		}
		if err := g.AddEdge(u, v, w); err != nil {
			return nil, fmt.Errorf("mtx: entry %d (%d,%d): %w", seen+1, u+1, v+1, err)
		}
		seen++
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	_ = rows
	_ = entries // entries is a hint, not enforced: trailing blank/comment lines are common

	return g, nil
}

func readDimensions(scanner *bufio.Scanner) (rows, cols, entries int, ok bool, err error) {
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "%") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 3 {
			return 0, 0, 0, false, ErrMalformedHeader
		}
		rows, err = strconv.Atoi(fields[0])
		if err != nil {
			return 0, 0, 0, false, fmt.Errorf("mtx: %w", ErrMalformedHeader)
		}
		cols, err = strconv.Atoi(fields[1])
		if err != nil {
			return 0, 0, 0, false, fmt.Errorf("mtx: %w", ErrMalformedHeader)
		}
		entries, err = strconv.Atoi(fields[2])
		if err != nil {
			return 0, 0, 0, false, fmt.Errorf("mtx: %w", ErrMalformedHeader)
		}

		return rows, cols, entries, true, nil
	}
	if err := scanner.Err(); err != nil {
		return 0, 0, 0, false, err
	}

	return 0, 0, 0, false, nil
}

func parseEntry(line string) (u, v int, w float64, err error) {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return 0, 0, 0, ErrMalformedEntry
	}
	ru, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, 0, 0, fmt.Errorf("mtx: %w", ErrMalformedEntry)
	}
	rv, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, 0, 0, fmt.Errorf("mtx: %w", ErrMalformedEntry)
	}
	w = 1
	if len(fields) >= 3 {
		w, err = strconv.ParseFloat(fields[2], 64)
		if err != nil {
			return 0, 0, 0, fmt.Errorf("mtx: %w", ErrMalformedEntry)
		}
	}

	return ru - 1, rv - 1, w, nil
}
