package datastructure

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dsnet/compress/bzip2"
	"github.com/lintang-b-s/gridroute/pkg"
)

// NewGridFromSymbols parses the textual city map format: one row per line,
// pkg.FREE_SYMBOL for a traversable cell, pkg.BLOCKED_SYMBOL for an obstacle.
func NewGridFromSymbols(lines []string) (*Grid, error) {
	blocked := make([][]bool, 0, len(lines))
	for i, line := range lines {
		row := make([]bool, 0, len(line))
		for j := 0; j < len(line); j++ {
			switch line[j] {
			case pkg.FREE_SYMBOL:
				row = append(row, false)
			case pkg.BLOCKED_SYMBOL:
				row = append(row, true)
			default:
				return nil, fmt.Errorf("invalid symbol %q at row %d col %d", line[j], i, j)
			}
		}
		blocked = append(blocked, row)
	}
	return NewGrid(blocked)
}

// ReadGridFile loads a city map from disk. Files ending in .bz2 are
// bzip2-compressed.
func ReadGridFile(filename string) (*Grid, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(filename, ".bz2") {
		bz, err := bzip2.NewReader(f, &bzip2.ReaderConfig{})
		if err != nil {
			return nil, err
		}
		defer bz.Close()
		r = bz
	}

	lines := make([]string, 0)
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r\n")
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	return NewGridFromSymbols(lines)
}

// WriteGridFile writes the city map back to disk in the symbol format.
// Files ending in .bz2 are bzip2-compressed.
func (g *Grid) WriteGridFile(filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()

	var (
		w  io.Writer = f
		bz *bzip2.Writer
	)
	if strings.HasSuffix(filename, ".bz2") {
		bz, err = bzip2.NewWriter(f, &bzip2.WriterConfig{})
		if err != nil {
			return err
		}
		w = bz
	}

	bw := bufio.NewWriter(w)
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			sym := pkg.FREE_SYMBOL
			if g.blocked[r][c] {
				sym = pkg.BLOCKED_SYMBOL
			}
			if err := bw.WriteByte(sym); err != nil {
				return err
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	if err := bw.Flush(); err != nil {
		return err
	}
	if bz != nil {
		// Close writes the final compressed block; its error is the write
		// failing, not cleanup
		return bz.Close()
	}
	return nil
}
