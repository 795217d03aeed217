package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/symlu/lu"
	"github.com/katalvlaran/symlu/matrix"
)

func newExpandCmd(a *app) *cobra.Command {
	var (
		size     int
		inline   string
		file     string
		residual bool
	)

	cmd := &cobra.Command{
		Use:   "expand",
		Short: "Print the symbolic product L·U",
		Long: `Print every cell of the symbolic product L·U, one per line, before any
unknown is resolved. With --residual the matrix is solved first and each
cell shows what was left after substituting the unknowns resolved before it.

Examples:
  symlu expand --size 3
  symlu expand --matrix "4,3;6,3" --residual`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runExpand(cmd.OutOrStdout(), cmd.ErrOrStderr(), size, inline, file, residual)
		},
	}

	cmd.Flags().IntVarP(&size, "size", "n", 3, "Matrix size when no matrix is given")
	cmd.Flags().StringVarP(&inline, "matrix", "m", "", "Inline matrix, rows split by ';'")
	cmd.Flags().StringVarP(&file, "file", "f", "", "Matrix file (.toml, .yaml, .yml)")
	cmd.Flags().BoolVar(&residual, "residual", false, "Show each cell after substitution, in resolution order")

	return cmd
}

func (a *app) runExpand(out, logOut io.Writer, size int, inline, file string, residual bool) error {
	logger, err := newLogger(logOut, a.cfg.LogLevel, a.cfg.LogFormat)
	if err != nil {
		return err
	}
	f, err := a.field()
	if err != nil {
		return err
	}

	var m matrix.Matrix
	if inline != "" || file != "" {
		if m, err = loadMatrix(f, inline, file); err != nil {
			return err
		}
	} else {
		if size < 1 {
			return fmt.Errorf("size must be at least 1, got %d", size)
		}
		// the product depends only on the shape
		if m, err = matrix.Identity(f, size); err != nil {
			return err
		}
	}

	s, err := lu.New(m, lu.WithLogger(logger))
	if err != nil {
		return err
	}
	n := s.Size()

	if !residual {
		p := s.Product()
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if _, err = fmt.Fprintf(out, "(%d,%d)\t%s\n", i+1, j+1, p[i][j]); err != nil {
					return err
				}
			}
		}
		return nil
	}

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			r, err := s.Residual(i, j)
			if err != nil {
				return err
			}
			aij, _ := m.At(i, j)
			if _, err = fmt.Fprintf(out, "(%d,%d)\t%s = %s\n", i+1, j+1, r, aij); err != nil {
				return err
			}
			if err = s.Resolve(i, j); err != nil {
				return err
			}
		}
	}

	return nil
}
