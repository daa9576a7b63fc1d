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

	"github.com/pkg/errors"
	"github.com/samber/mo"
)

// The Gaussian family is closed under these operations; every method returns a
// valid Normal without touching generator state.

// Add returns the distribution of the sum of two independent Gaussians:
// means add, variances add.
func (d Normal) Add(other Normal) Normal {
	return Normal{
		mean:   d.mean + other.mean,
		stddev: math.Sqrt(d.stddev*d.stddev + other.stddev*other.stddev),
	}
}

// Neg mirrors the variable around zero.
func (d Normal) Neg() Normal {
	return Normal{mean: -d.mean, stddev: d.stddev}
}

// Sub is Add of the negation.
func (d Normal) Sub(other Normal) Normal {
	return d.Add(other.Neg())
}

// Scale multiplies the variable by a. A zero factor degenerates to a point
// mass, which is not a Gaussian, so it is rejected.
func (d Normal) Scale(a float64) mo.Result[Normal] {
	if a == 0 {
		return mo.Err[Normal](errors.New("the scale factor `a` must not be zero"))
	}

	return mo.Ok(Normal{mean: a * d.mean, stddev: math.Abs(a) * d.stddev})
}

// Shift adds the constant a to the variable.
func (d Normal) Shift(a float64) Normal {
	return Normal{mean: d.mean + a, stddev: d.stddev}
}
