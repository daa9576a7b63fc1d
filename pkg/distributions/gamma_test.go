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
	"testing"

	"github.com/montanaflynn/stats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSampleGammaMoments(t *testing.T) {
	t.Parallel()

	// Shape 2, scale 3: mean = shape*scale = 6, variance = shape*scale^2 = 18.
	values := SampleGamma(100_000, 2.0, 3.0).MustGet()

	for _, v := range values {
		require.Positive(t, v)
	}

	mean, err := stats.Mean(values)
	require.NoError(t, err)
	assert.InDelta(t, 6, mean, 0.15)

	stddev, err := stats.StandardDeviation(values)
	require.NoError(t, err)
	assert.InDelta(t, math.Sqrt(18), stddev, 0.15)
}

func TestGammaObject(t *testing.T) {
	t.Parallel()

	d := NewGamma(2, 3)
	assert.Equal(t, 2.0, d.Shape())
	assert.Equal(t, 3.0, d.Scale())
	require.Len(t, d.Sample(1000).MustGet(), 1000)
	require.NoError(t, d.Draw().Error())

	require.Panics(t, func() { NewGamma(0, 1) })
	require.Panics(t, func() { NewGamma(1, 0) })
}
