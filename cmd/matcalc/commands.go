// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/densemat/internal/cli"
	"github.com/katalvlaran/densemat/matrix"
)

type (
	unaryOp  func(m *matrix.Dense) (*matrix.Dense, error)
	binaryOp func(a, b *matrix.Dense) (*matrix.Dense, error)
)

var (
	transposeOp unaryOp  = matrix.T
	cofactorsOp unaryOp  = func(m *matrix.Dense) (*matrix.Dense, error) { return m.Cofactors() }
	addOp       binaryOp = matrix.Add
	subOp       binaryOp = matrix.Sub
	mulOp       binaryOp = matrix.Mul
)

// parseArgs turns every literal argument into a matrix.
func (a *app) parseArgs(args []string) ([]*matrix.Dense, error) {
	out := make([]*matrix.Dense, len(args))
	for i, lit := range args {
		m, err := cli.ParseMatrix(lit)
		if err != nil {
			return nil, fmt.Errorf("argument %d: %w", i+1, err)
		}
		a.log.Debug("parsed operand", "index", i+1, "rows", m.Rows(), "cols", m.Cols())
		out[i] = m
	}
	return out, nil
}

func (a *app) detCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "det [matrix]",
		Short: "determinant of a square matrix",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ms, err := a.parseArgs(args)
			if err != nil {
				return err
			}
			start := time.Now()
			det, err := ms[0].DetWith(a.cfg.MatrixOptions()...)
			if err != nil {
				return err
			}
			a.log.Debug("determinant", "algorithm", a.cfg.Algorithm, "elapsed", time.Since(start))
			return cli.RenderScalar(cmd.OutOrStdout(), det, a.cfg.Precision)
		},
	}
}

func (a *app) inverseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inverse [matrix]",
		Short: "inverse of a square matrix via the adjugate",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ms, err := a.parseArgs(args)
			if err != nil {
				return err
			}
			inv, err := ms[0].InverseWith(a.cfg.MatrixOptions()...)
			if err != nil {
				return err
			}
			return cli.Render(cmd.OutOrStdout(), inv, a.cfg.Precision)
		},
	}
}

func (a *app) unaryCmd(use, short string, op unaryOp) *cobra.Command {
	return &cobra.Command{
		Use:   use + " [matrix]",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ms, err := a.parseArgs(args)
			if err != nil {
				return err
			}
			res, err := op(ms[0])
			if err != nil {
				return err
			}
			return cli.Render(cmd.OutOrStdout(), res, a.cfg.Precision)
		},
	}
}

func (a *app) binaryCmd(use, short string, op binaryOp) *cobra.Command {
	return &cobra.Command{
		Use:   use + " [a] [b]",
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ms, err := a.parseArgs(args)
			if err != nil {
				return err
			}
			res, err := op(ms[0], ms[1])
			if err != nil {
				return err
			}
			return cli.Render(cmd.OutOrStdout(), res, a.cfg.Precision)
		},
	}
}

func (a *app) scaleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "scale [matrix] [factor]",
		Short: "multiply every element by a scalar",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ms, err := a.parseArgs(args[:1])
			if err != nil {
				return err
			}
			k, err := cli.ParseScalar(args[1])
			if err != nil {
				return err
			}
			res, err := matrix.Scale(ms[0], k)
			if err != nil {
				return err
			}
			return cli.Render(cmd.OutOrStdout(), res, a.cfg.Precision)
		},
	}
}

func (a *app) equalCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "equal [a] [b]",
		Short: "compare two matrices within epsilon",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ms, err := a.parseArgs(args)
			if err != nil {
				return err
			}
			eq := ms[0].EqualWith(ms[1], a.cfg.MatrixOptions()...)
			_, err = fmt.Fprintln(cmd.OutOrStdout(), eq)
			return err
		},
	}
}
