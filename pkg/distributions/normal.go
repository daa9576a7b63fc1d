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

// SampleNormal draws n Gaussian variates with the given mean and standard
// deviation.
func SampleNormal[T constraints.Float](n int, mean, stddev T) mo.Result[[]T] {
	if stddev <= 0 {
		return mo.Err[[]T](stddevErr(stddev))
	}

	return bulk("normal", n, normalDraw(mean, stddev))
}

// DrawNormal draws a single Gaussian variate.
func DrawNormal[T constraints.Float](mean, stddev T) mo.Result[T] {
	if stddev <= 0 {
		return mo.Err[T](stddevErr(stddev))
	}

	return one(normalDraw(mean, stddev))
}

func stddevErr[T constraints.Float](stddev T) error {
	return errors.Errorf(
		"the standard deviation `stddev` must be positive, but got %v", stddev,
	)
}

func normalDraw[T constraints.Float](mean, stddev T) parallel.Bind[T] {
	return func(rnd *rand.Rand) parallel.Draw[T] {
		dist := distuv.Normal{Mu: float64(mean), Sigma: float64(stddev), Src: rnd}
		return func() T {
			return T(dist.Rand())
		}
	}
}

// Normal binds a (mean, stddev) pair for repeated sampling and carries the
// closed Gaussian algebra.
type Normal struct {
	mean   float64
	stddev float64
}

// StdNormal is the standard Gaussian N(0, 1).
var StdNormal = Normal{stddev: 1}

// NewNormal panics if stddev is not positive; SampleNormal and DrawNormal are
// the recoverable validation path.
func NewNormal(mean, stddev float64) Normal {
	if stddev <= 0 {
		panic(fmt.Sprintf(
			"the standard deviation `stddev` must be positive, but got %v", stddev,
		))
	}

	return Normal{mean: mean, stddev: stddev}
}

func (d Normal) Mean() float64 {
	return d.mean
}

func (d Normal) StdDev() float64 {
	return d.stddev
}

func (d Normal) Sample(n int) mo.Result[[]float64] {
	return SampleNormal(n, d.mean, d.stddev)
}

func (d Normal) Draw() mo.Result[float64] {
	return DrawNormal(d.mean, d.stddev)
}
