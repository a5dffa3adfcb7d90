// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package account

import (
	"context"
	"sync"

	"github.com/bureau-foundation/ntaccount/lib/principal"
)

// Result is the outcome of resolving one name in a batch.
type Result struct {
	Name     string
	Identity principal.Identity
	Found    bool
	Err      error
}

// ResolveAll resolves names on at most workers goroutines and returns
// one Result per name, in input order. Duplicate names are resolved
// independently.
//
// Cancelling ctx stops new resolutions from starting; names that were
// not started get ctx.Err(). A native call already in flight cannot be
// interrupted and runs to completion.
func (r *Resolver) ResolveAll(ctx context.Context, names []string, workers int) []Result {
	results := make([]Result, len(names))
	for index, name := range names {
		results[index].Name = name
	}
	if len(names) == 0 {
		return results
	}
	workers = max(1, min(workers, len(names)))

	indices := make(chan int)
	var waitGroup sync.WaitGroup
	for i := 0; i < workers; i++ {
		waitGroup.Add(1)
		go func() {
			defer waitGroup.Done()
			for index := range indices {
				identity, found, err := r.Resolve(names[index])
				results[index].Identity = identity
				results[index].Found = found
				results[index].Err = err
			}
		}()
	}

	next := 0
dispatch:
	for ; next < len(names); next++ {
		if ctx.Err() != nil {
			break
		}
		select {
		case indices <- next:
		case <-ctx.Done():
			break dispatch
		}
	}
	close(indices)
	waitGroup.Wait()

	for ; next < len(names); next++ {
		results[next].Err = ctx.Err()
	}
	return results
}
