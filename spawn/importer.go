package spawn

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/lixenwraith/skyfall/parameter"
)

// ErrMalformedStructure is wrapped by every structure parse failure
var ErrMalformedStructure = errors.New("incorrect formatting of structure file")

// ParseStructure reads one structure definition
// Format: an optional single-field header line holding a finite float weight, then "<x> <y> <kind>" per line.
// Y values are shifted by SpawnBias so authored coordinates start above the viewport
func ParseStructure(name string, r io.Reader) (Structure, error) {
	s := Structure{Name: name, Weight: 1}

	scanner := bufio.NewScanner(r)
	lineNo := 0
	first := true
	for scanner.Scan() {
		lineNo++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		if first {
			first = false
			if len(fields) == 1 {
				w, err := strconv.ParseFloat(fields[0], 64)
				if err != nil || w < 0 || math.IsNaN(w) || math.IsInf(w, 0) {
					return Structure{}, fmt.Errorf("%w %q line %d: bad weight %q", ErrMalformedStructure, name, lineNo, fields[0])
				}
				s.Weight = w
				continue
			}
		}

		if len(fields) < 3 {
			return Structure{}, fmt.Errorf("%w %q line %d: expected \"<x> <y> <kind>\"", ErrMalformedStructure, name, lineNo)
		}

		x, err := strconv.Atoi(fields[0])
		if err != nil {
			return Structure{}, fmt.Errorf("%w %q line %d: bad x %q", ErrMalformedStructure, name, lineNo, fields[0])
		}
		y, err := strconv.Atoi(fields[1])
		if err != nil {
			return Structure{}, fmt.Errorf("%w %q line %d: bad y %q", ErrMalformedStructure, name, lineNo, fields[1])
		}

		kind, _ := ParseKind(fields[2])
		o := Offset{
			X:    Int(x),
			Y:    Int(y + parameter.SpawnBias),
			Kind: kind,
		}
		// Authored planes always enter flying right
		if kind == KindPlane {
			o.Dir = DirRight
		}
		s.Offsets = append(s.Offsets, o)
	}

	if err := scanner.Err(); err != nil {
		return Structure{}, fmt.Errorf("read structure %q: %w", name, err)
	}
	return s, nil
}

// LoadFile parses a single structure file
func LoadFile(path string) (Structure, error) {
	f, err := os.Open(path)
	if err != nil {
		return Structure{}, fmt.Errorf("open structure: %w", err)
	}
	defer f.Close()

	return ParseStructure(filepath.Base(path), f)
}

// LoadDir parses every regular file in dir in name order, creating dir if absent
func LoadDir(dir string) ([]Structure, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create structures dir: %w", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read structures dir: %w", err)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })

	var result []Structure
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		s, err := LoadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, err
		}
		result = append(result, s)
	}
	return result, nil
}
