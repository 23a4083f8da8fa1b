package cmd

import (
	"fmt"
	"io"

	"golang.org/x/sync/errgroup"
	"golang.org/x/xerrors"

	"go.dedis.ch/sssrecover/recovery/impl"
	"go.dedis.ch/sssrecover/storage"
	"go.dedis.ch/sssrecover/types"
)

// DefaultJobs is the number of files solved at the same time.
const DefaultJobs = 4

type batchEntry struct {
	result types.SolveResult
	err    error
}

// Batch solves every file with at most jobs solves in flight and prints one
// "path: secret" line per file, in argument order. Files with identical
// content are solved once. It returns an error if any file failed.
func Batch(out io.Writer, paths []string, jobs int, opts Options) error {
	conf, err := opts.Configuration()
	if err != nil {
		return err
	}

	solver, err := impl.NewSolver(conf)
	if err != nil {
		return err
	}

	if jobs < 1 {
		jobs = DefaultJobs
	}

	store := storage.NewMemoryStore()
	entries := make([]batchEntry, len(paths))

	// testcases are loaded up front so that duplicates share one digest
	digests := make([]string, len(paths))
	cases := make([]types.TestCase, len(paths))
	for i, path := range paths {
		tc, err := types.LoadTestCase(path)
		if err != nil {
			entries[i].err = err
			continue
		}
		digest, err := storage.Digest(tc, conf.Identity())
		if err != nil {
			entries[i].err = err
			continue
		}
		cases[i] = tc
		digests[i] = digest
	}

	// one solve per distinct digest
	first := map[string]int{}
	for i := range paths {
		if entries[i].err != nil {
			continue
		}
		if _, ok := first[digests[i]]; !ok {
			first[digests[i]] = i
		}
	}

	g := new(errgroup.Group)
	g.SetLimit(jobs)
	for digest, i := range first {
		digest, i := digest, i
		g.Go(func() error {
			result, err := solver.Solve(cases[i])
			if err != nil {
				entries[i].err = err
				return nil
			}
			return store.Put(digest, result)
		})
	}
	err = g.Wait()
	if err != nil {
		return err
	}

	failed := 0
	for i, path := range paths {
		entry := entries[i]
		if entry.err == nil {
			result, ok := store.Get(digests[i])
			if !ok {
				entry.err = entries[first[digests[i]]].err
			} else {
				entry.result = result
			}
		}

		if entry.err != nil {
			failed++
			fmt.Fprintf(out, "%s: error: %v\n", path, entry.err)
			continue
		}
		fmt.Fprintf(out, "%s: %s\n", path, entry.result.Secret)
	}

	if failed > 0 {
		return xerrors.Errorf("%d of %d test cases failed", failed, len(paths))
	}
	return nil
}
