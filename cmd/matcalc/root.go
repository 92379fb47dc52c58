// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/densemat/internal/config"
)

// app carries the resolved settings shared by every subcommand.
type app struct {
	configFile string
	flags      config.Config
	cfg        *config.Config
	log        *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{log: slog.New(slog.NewTextHandler(io.Discard, nil))}
	def := config.DefaultConfig()

	rootCmd := &cobra.Command{
		Use:           "matcalc",
		Short:         "dense matrix calculator",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.resolve(cmd)
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&a.configFile, "config", "", "config file path (yaml)")
	pf.IntVar(&a.flags.Precision, "precision", def.Precision, "digits after the decimal point")
	pf.StringVar(&a.flags.Algorithm, "algorithm", def.Algorithm, "determinant algorithm (cofactor|lu)")
	pf.Float64Var(&a.flags.Epsilon, "epsilon", def.Epsilon, "tolerance for equal")
	pf.Float64Var(&a.flags.SingularTol, "singular-tol", def.SingularTol, "|det| below which inverse fails")
	pf.BoolVarP(&a.flags.Verbose, "verbose", "v", false, "log diagnostics to stderr")

	rootCmd.AddCommand(
		a.detCmd(),
		a.inverseCmd(),
		a.unaryCmd("transpose", "transpose a matrix", transposeOp),
		a.unaryCmd("cofactors", "matrix of cofactors", cofactorsOp),
		a.binaryCmd("add", "element-wise sum", addOp),
		a.binaryCmd("sub", "element-wise difference", subOp),
		a.binaryCmd("mul", "matrix product", mulOp),
		a.scaleCmd(),
		a.equalCmd(),
	)

	return rootCmd
}

// resolve loads the config file (if any) and lets explicitly set flags
// override its values.
func (a *app) resolve(cmd *cobra.Command) error {
	cfg := config.DefaultConfig()
	if a.configFile != "" {
		loaded, err := config.Load(a.configFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	fs := cmd.Flags()
	if a.configFile == "" || fs.Changed("precision") {
		cfg.Precision = a.flags.Precision
	}
	if a.configFile == "" || fs.Changed("algorithm") {
		cfg.Algorithm = a.flags.Algorithm
	}
	if a.configFile == "" || fs.Changed("epsilon") {
		cfg.Epsilon = a.flags.Epsilon
	}
	if a.configFile == "" || fs.Changed("singular-tol") {
		cfg.SingularTol = a.flags.SingularTol
	}
	if fs.Changed("verbose") {
		cfg.Verbose = a.flags.Verbose
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg

	if cfg.Verbose {
		a.log = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
	a.log.Debug("config resolved",
		"file", a.configFile,
		"precision", cfg.Precision,
		"algorithm", cfg.Algorithm,
		"epsilon", cfg.Epsilon,
		"singular_tol", cfg.SingularTol,
	)

	return nil
}
