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

	"github.com/samber/mo"
	"golang.org/x/exp/constraints"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/randkit/randkit/pkg/parallel"
)

// SamplePoisson draws n counts from the Poisson distribution with the given
// rate. Poisson variates are event counts, so only unsigned element types are
// allowed.
func SamplePoisson[T constraints.Unsigned](n int, rate float64) mo.Result[[]T] {
	if rate <= 0 {
		return mo.Err[[]T](rateErr(rate))
	}

	return bulk("poisson", n, poissonDraw[T](rate))
}

// DrawPoisson draws a single Poisson count.
func DrawPoisson[T constraints.Unsigned](rate float64) mo.Result[T] {
	if rate <= 0 {
		return mo.Err[T](rateErr(rate))
	}

	return one(poissonDraw[T](rate))
}

func poissonDraw[T constraints.Unsigned](rate float64) parallel.Bind[T] {
	return func(rnd *rand.Rand) parallel.Draw[T] {
		dist := distuv.Poisson{Lambda: rate, Src: rnd}
		return func() T {
			return T(dist.Rand())
		}
	}
}

// Poisson binds a fixed rate for repeated sampling.
type Poisson struct {
	rate float64
}

// NewPoisson panics if rate is not positive.
func NewPoisson(rate float64) Poisson {
	if rate <= 0 {
		panic(fmt.Sprintf("the rate `rate` must be positive, but got %v", rate))
	}

	return Poisson{rate: rate}
}

func (d Poisson) Rate() float64 {
	return d.rate
}

func (d Poisson) Sample(n int) mo.Result[[]uint64] {
	return SamplePoisson[uint64](n, d.rate)
}

func (d Poisson) Draw() mo.Result[uint64] {
	return DrawPoisson[uint64](d.rate)
}
