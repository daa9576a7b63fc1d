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
	"fmt"
	"math/rand/v2"

	"github.com/pkg/errors"
	"github.com/samber/mo"
	"golang.org/x/exp/constraints"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/randkit/randkit/pkg/parallel"
)

// SampleExponential draws n variates from the exponential distribution with
// the given rate (mean 1/rate).
func SampleExponential[T constraints.Float](n int, rate T) mo.Result[[]T] {
	if rate <= 0 {
		return mo.Err[[]T](rateErr(float64(rate)))
	}

	return bulk("exponential", n, exponentialDraw(rate))
}

// DrawExponential draws a single exponential variate.
func DrawExponential[T constraints.Float](rate T) mo.Result[T] {
	if rate <= 0 {
		return mo.Err[T](rateErr(float64(rate)))
	}

	return one(exponentialDraw(rate))
}

func rateErr(rate float64) error {
	return errors.Errorf("the rate `rate` must be positive, but got %v", rate)
}

func exponentialDraw[T constraints.Float](rate T) parallel.Bind[T] {
	return func(rnd *rand.Rand) parallel.Draw[T] {
		dist := distuv.Exponential{Rate: float64(rate), Src: rnd}
		return func() T {
			return T(dist.Rand())
		}
	}
}

// Exponential binds a fixed rate for repeated sampling.
type Exponential struct {
	rate float64
}

// NewExponential panics if rate is not positive.
func NewExponential(rate float64) Exponential {
	if rate <= 0 {
		panic(fmt.Sprintf("the rate `rate` must be positive, but got %v", rate))
	}

	return Exponential{rate: rate}
}

func (d Exponential) Rate() float64 {
	return d.rate
}

func (d Exponential) Sample(n int) mo.Result[[]float64] {
	return SampleExponential(n, d.rate)
}

func (d Exponential) Draw() mo.Result[float64] {
	return DrawExponential(d.rate)
}
