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

package distributions

import (
	"math"
	"math/rand/v2"

	"github.com/pkg/errors"
	"github.com/samber/mo"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/randkit/randkit/pkg/parallel"
)

// SampleUniform draws n variates uniformly between low and high. Integral
// element types draw on the inclusive range [low, high], floating-point ones
// on the half-open [low, high).
func SampleUniform[T Number](n int, low, high T) mo.Result[[]T] {
	if low > high {
		return mo.Err[[]T](uniformErr(low, high))
	}

	return bulk("uniform", n, uniformDraw(low, high))
}

// DrawUniform draws a single uniform variate with SampleUniform's semantics.
func DrawUniform[T Number](low, high T) mo.Result[T] {
	if low > high {
		return mo.Err[T](uniformErr(low, high))
	}

	return one(uniformDraw(low, high))
}

func uniformErr[T Number](low, high T) error {
	return errors.Errorf(
		"the lower bound `low` must not exceed the upper bound `high`, but got %v > %v",
		low, high,
	)
}

func uniformDraw[T Number](low, high T) parallel.Bind[T] {
	if isFloat[T]() {
		return func(rnd *rand.Rand) parallel.Draw[T] {
			dist := distuv.Uniform{Min: float64(low), Max: float64(high), Src: rnd}
			return func() T {
				return T(dist.Rand())
			}
		}
	}

	// Integral path. Spans are computed in modular uint64 arithmetic, which is
	// exact even at the extremes of 64-bit element types.
	if isSigned[T]() {
		lo := int64(low)
		span := uint64(int64(high) - lo)
		return func(rnd *rand.Rand) parallel.Draw[T] {
			if span == math.MaxUint64 {
				return func() T {
					return T(rnd.Uint64())
				}
			}
			return func() T {
				return T(lo + int64(rnd.Uint64N(span+1)))
			}
		}
	}

	lo := uint64(low)
	span := uint64(high) - lo
	return func(rnd *rand.Rand) parallel.Draw[T] {
		if span == math.MaxUint64 {
			return func() T {
				return T(rnd.Uint64())
			}
		}
		return func() T {
			return T(lo + rnd.Uint64N(span+1))
		}
	}
}
