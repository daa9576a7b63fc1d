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
	"testing"

	"github.com/montanaflynn/stats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSampleNormalMoments(t *testing.T) {
	t.Parallel()

	values := SampleNormal(100_000, 5.0, 2.0).MustGet()

	mean, err := stats.Mean(values)
	require.NoError(t, err)
	assert.InDelta(t, 5, mean, 0.05)

	stddev, err := stats.StandardDeviation(values)
	require.NoError(t, err)
	assert.InDelta(t, 2, stddev, 0.05)
}

func TestSampleNormalFloat32(t *testing.T) {
	t.Parallel()

	values := SampleNormal[float32](10_000, -1, 0.5).MustGet()
	require.Len(t, values, 10_000)

	data := make([]float64, len(values))
	for i, v := range values {
		data[i] = float64(v)
	}
	mean, err := stats.Mean(data)
	require.NoError(t, err)
	assert.InDelta(t, -1, mean, 0.05)
}

func TestNormalObject(t *testing.T) {
	t.Parallel()

	d := NewNormal(5, 2)
	assert.Equal(t, 5.0, d.Mean())
	assert.Equal(t, 2.0, d.StdDev())

	require.Len(t, d.Sample(1000).MustGet(), 1000)
	require.NoError(t, d.Draw().Error())
}

func TestNewNormalPanicsOnInvalidStdDev(t *testing.T) {
	t.Parallel()

	require.Panics(t, func() { NewNormal(0, 0) })
	require.Panics(t, func() { NewNormal(0, -1) })
}

func TestStdNormal(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0.0, StdNormal.Mean())
	assert.Equal(t, 1.0, StdNormal.StdDev())
	require.Len(t, StdNormal.Sample(100).MustGet(), 100)
}
