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
	"math/rand/v2"

	"github.com/pkg/errors"
	"github.com/samber/mo"
	"golang.org/x/exp/constraints"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/randkit/randkit/pkg/parallel"
)

// SampleGamma draws n variates from the gamma distribution in its
// shape/scale parameterization (mean shape*scale).
func SampleGamma[T constraints.Float](n int, shape, scale T) mo.Result[[]T] {
	if err := gammaErr(float64(shape), float64(scale)); err != nil {
		return mo.Err[[]T](err)
	}

	return bulk("gamma", n, gammaDraw(shape, scale))
}

// DrawGamma draws a single gamma variate.
func DrawGamma[T constraints.Float](shape, scale T) mo.Result[T] {
	if err := gammaErr(float64(shape), float64(scale)); err != nil {
		return mo.Err[T](err)
	}

	return one(gammaDraw(shape, scale))
}

func gammaErr(shape, scale float64) error {
	if shape <= 0 {
		return errors.Errorf("the shape parameter `shape` must be positive, but got %v", shape)
	}
	if scale <= 0 {
		return errors.Errorf("the scale parameter `scale` must be positive, but got %v", scale)
	}
	return nil
}

func gammaDraw[T constraints.Float](shape, scale T) parallel.Bind[T] {
	return func(rnd *rand.Rand) parallel.Draw[T] {
		// distuv.Gamma takes a rate, not a scale.
		dist := distuv.Gamma{Alpha: float64(shape), Beta: 1 / float64(scale), Src: rnd}
		return func() T {
			return T(dist.Rand())
		}
	}
}

// Gamma binds a fixed (shape, scale) pair for repeated sampling.
type Gamma struct {
	shape float64
	scale float64
}

// NewGamma panics if shape or scale is not positive.
func NewGamma(shape, scale float64) Gamma {
	if err := gammaErr(shape, scale); err != nil {
		panic(err.Error())
	}

	return Gamma{shape: shape, scale: scale}
}

func (d Gamma) Shape() float64 {
	return d.shape
}

func (d Gamma) Scale() float64 {
	return d.scale
}

func (d Gamma) Sample(n int) mo.Result[[]float64] {
	return SampleGamma(n, d.shape, d.scale)
}

func (d Gamma) Draw() mo.Result[float64] {
	return DrawGamma(d.shape, d.scale)
}
