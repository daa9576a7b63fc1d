// Copyright 2025 The randkit Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package parallel is the bulk-generation engine. It partitions [0, n) into
// contiguous blocks, one per worker, and fills a single pre-allocated buffer in
// place. Workers never share a generator and never share a write range, so the
// draw path takes no locks.
package parallel

import (
	"math/rand/v2"
	"runtime"
	"sync"

	"go.uber.org/zap"

	"github.com/randkit/randkit/pkg/metrics"
	"github.com/randkit/randkit/pkg/rng"
)

type (
	// Draw produces one variate from the worker-local generator it closed over.
	Draw[T any] func() T

	// Bind builds the per-worker draw closure from that worker's private
	// generator. It must capture distribution parameters by value; the
	// generator is owned by exactly one worker for the duration of the call.
	Bind[T any] func(rnd *rand.Rand) Draw[T]
)

// DefaultWorkers is used when the runtime cannot report usable parallelism.
const DefaultWorkers = 4

// Generate fills a fresh slice of length n across at most min(GOMAXPROCS, n)
// workers, each with its own entropy-seeded generator, and joins them all
// before returning. n == 0 returns the empty slice without spawning a worker
// or invoking bind.
func Generate[T any](n int, bind Bind[T]) []T {
	return generate(n, func(int) *rand.Rand { return rng.New() }, bind)
}

// GenerateSeeded is Generate with deterministic per-worker streams derived
// from seed. Equal seeds yield identical output on equal GOMAXPROCS, since the
// partition depends on the worker count.
func GenerateSeeded[T any](n int, seed uint64, bind Bind[T]) []T {
	return generate(n, func(worker int) *rand.Rand { return rng.Stream(seed, uint64(worker)) }, bind)
}

func generate[T any](n int, source func(worker int) *rand.Rand, bind Bind[T]) []T {
	out := make([]T, n)
	if n == 0 {
		return out
	}

	workers := runtime.GOMAXPROCS(0)
	if workers <= 0 {
		workers = DefaultWorkers
	}
	if n < workers {
		workers = n
	}

	// Ceiling division, so every block but possibly the last has equal size.
	block := (n + workers - 1) / workers

	zap.L().Named("parallel").Debug("filling variate buffer",
		zap.Int("count", n),
		zap.Int("workers", workers),
		zap.Int("block_size", block),
	)

	var wg sync.WaitGroup

	for i := range workers {
		start := i * block
		end := min(start+block, n)
		if start >= end {
			continue
		}

		wg.Add(1)
		metrics.WorkersSpawned.Inc()

		go func(worker, start, end int) {
			defer wg.Done()

			draw := bind(source(worker))
			for j := start; j < end; j++ {
				out[j] = draw()
			}
		}(i, start, end)
	}

	wg.Wait()

	return out
}
