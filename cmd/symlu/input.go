package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/symlu/field"
	"github.com/katalvlaran/symlu/matrix"
)

// demoMatrix is factored when no input is given.
var demoMatrix = [][]int64{{1, -1, 0}, {2, 2, 3}, {-1, 3, 2}}

var errUnknownFormat = errors.New("unsupported matrix file extension (want .toml, .yaml or .yml)")

// matrixDoc is the on-disk shape of a matrix file:
//
//	matrix = [[1, -1, 0], [2, 2, 3], [-1, 3, 2]]   # toml
//	matrix: [[1, -1, 0], [2, 2, 3], [-1, 3, 2]]    # yaml
//
// Entries may be integers, floats or quoted decimal strings ("0.1"); strings
// are parsed by the field and stay exact under the decimal backend.
type matrixDoc struct {
	Matrix [][]any `toml:"matrix" yaml:"matrix"`
}

// loadMatrix reads A from inline text, a file, or falls back to demoMatrix.
// inline wins over path.
func loadMatrix(f field.Field, inline, path string) (*matrix.Dense, error) {
	switch {
	case inline != "":
		return parseInline(f, inline)
	case path != "":
		return readMatrixFile(f, path)
	default:
		rows := make([][]field.Value, len(demoMatrix))
		for i, r := range demoMatrix {
			rows[i] = field.Ints(f, r...)
		}
		return matrix.NewDenseValues(rows)
	}
}

// parseInline reads "a,b;c,d": rows split by ';', entries by ',' or spaces.
func parseInline(f field.Field, s string) (*matrix.Dense, error) {
	var rows [][]field.Value
	for i, line := range strings.Split(s, ";") {
		cells := strings.FieldsFunc(line, func(r rune) bool { return r == ',' || r == ' ' || r == '\t' })
		if len(cells) == 0 {
			continue
		}
		row := make([]field.Value, len(cells))
		for j, c := range cells {
			v, err := f.Parse(c)
			if err != nil {
				return nil, fmt.Errorf("row %d, column %d: %w", i+1, j+1, err)
			}
			row[j] = v
		}
		rows = append(rows, row)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("empty matrix: %w", matrix.ErrInvalidDimensions)
	}

	return matrix.NewDenseValues(rows)
}

func readMatrixFile(f field.Field, path string) (*matrix.Dense, error) {
	var doc matrixDoc
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if _, err := toml.DecodeFile(path, &doc); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	case ".yaml", ".yml":
		content, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		if err := yaml.Unmarshal(content, &doc); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("%s: %w", path, errUnknownFormat)
	}
	if len(doc.Matrix) == 0 {
		return nil, fmt.Errorf("%s: no matrix key: %w", path, matrix.ErrInvalidDimensions)
	}

	rows := make([][]field.Value, len(doc.Matrix))
	for i, r := range doc.Matrix {
		rows[i] = make([]field.Value, len(r))
		for j, x := range r {
			v, err := toValue(f, x)
			if err != nil {
				return nil, fmt.Errorf("%s: row %d, column %d: %w", path, i+1, j+1, err)
			}
			rows[i][j] = v
		}
	}

	return matrix.NewDenseValues(rows)
}

// toValue converts a decoded toml/yaml scalar.
func toValue(f field.Field, x any) (field.Value, error) {
	switch v := x.(type) {
	case int64:
		return f.FromInt(v), nil
	case int:
		return f.FromInt(int64(v)), nil
	case float64:
		return f.FromFloat(v)
	case string:
		return f.Parse(v)
	default:
		return nil, fmt.Errorf("unsupported entry %v (%T): %w", x, x, field.ErrParse)
	}
}

// describe summarizes A for the log.
func describe(m matrix.Matrix) string {
	return strconv.Itoa(m.Rows()) + "x" + strconv.Itoa(m.Cols())
}
