package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"golang.org/x/xerrors"

	"go.dedis.ch/sssrecover/recovery/impl"
	"go.dedis.ch/sssrecover/types"
)

// Solve recovers the secret of the test case at path and prints it to out.
func Solve(out io.Writer, path string, opts Options) error {
	conf, err := opts.Configuration()
	if err != nil {
		return err
	}

	solver, err := impl.NewSolver(conf)
	if err != nil {
		return err
	}

	tc, err := types.LoadTestCase(path)
	if err != nil {
		return err
	}

	result, err := solver.Solve(tc)
	if err != nil {
		return xerrors.Errorf("%s: %w", path, err)
	}

	return printResult(out, result, opts.JSON)
}

func printResult(out io.Writer, result types.SolveResult, asJSON bool) error {
	if !asJSON {
		_, err := fmt.Fprintln(out, result.Secret.String())
		return err
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}
