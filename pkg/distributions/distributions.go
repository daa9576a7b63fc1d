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

// Package distributions exposes the public sampling surface: one Sample/Draw
// pair per family, plus immutable value objects binding fixed parameters.
// Every fallible entry point reports invalid parameters through mo.Result
// before any generator work begins; the value-object constructors panic on the
// same violations instead, since construction has no result channel.
package distributions

import (
	"math/rand/v2"

	"github.com/samber/mo"
	"golang.org/x/exp/constraints"

	"github.com/randkit/randkit/pkg/metrics"
	"github.com/randkit/randkit/pkg/parallel"
	"github.com/randkit/randkit/pkg/rng"
)

// Number covers every element type a uniform draw supports.
type Number interface {
	constraints.Integer | constraints.Float
}

// bulk runs one validated request through the engine and records it.
func bulk[T any](family string, n int, bind parallel.Bind[T]) mo.Result[[]T] {
	running := metrics.GenerationTimeStart(family)
	out := parallel.Generate(n, bind)
	running.Record()

	metrics.SampledVariates.WithLabelValues(family).Add(float64(n))

	return mo.Ok(out)
}

// one draws a single variate synchronously through the shared locked source,
// never spawning a worker.
func one[T any](bind parallel.Bind[T]) mo.Result[T] {
	return mo.Ok(bind(rand.New(rng.Shared))())
}

// isFloat reports whether T is a floating-point element type. The conversion
// of 0.5 truncates to zero for every integer T.
func isFloat[T Number]() bool {
	half := 0.5
	return T(half) != T(0)
}

// isSigned reports whether T can go negative. Unsigned types wrap to their
// maximum under the subtraction.
func isSigned[T Number]() bool {
	var zero T
	return zero-1 < zero
}
