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

func TestSampleUniformFloatHalfOpen(t *testing.T) {
	t.Parallel()

	values := SampleUniform(100_000, 2.0, 3.0).MustGet()

	for _, v := range values {
		require.GreaterOrEqual(t, v, 2.0)
		require.Less(t, v, 3.0)
	}

	mean, err := stats.Mean(values)
	require.NoError(t, err)
	assert.InDelta(t, 2.5, mean, 0.02)
}

func TestSampleUniformIntInclusive(t *testing.T) {
	t.Parallel()

	values := SampleUniform(100_000, int64(-3), int64(3)).MustGet()

	seen := make(map[int64]int, 7)
	for _, v := range values {
		require.GreaterOrEqual(t, v, int64(-3))
		require.LessOrEqual(t, v, int64(3))
		seen[v]++
	}

	// Both endpoints must be reachable, unlike the floating-point draw.
	assert.Positive(t, seen[-3])
	assert.Positive(t, seen[3])
	assert.Len(t, seen, 7)
}

func TestSampleUniformDegenerateBounds(t *testing.T) {
	t.Parallel()

	values := SampleUniform(1000, 5, 5).MustGet()
	for _, v := range values {
		require.Equal(t, 5, v)
	}
}

func TestSampleUniformUnsignedFullRange(t *testing.T) {
	t.Parallel()

	values := SampleUniform(1000, uint8(0), uint8(255)).MustGet()
	require.Len(t, values, 1000)

	full := SampleUniform(1000, uint64(0), uint64(1<<64-1)).MustGet()
	require.Len(t, full, 1000)
}

func TestDrawUniformRespectsBounds(t *testing.T) {
	t.Parallel()

	for range 100 {
		v := DrawUniform(int32(1), int32(6)).MustGet()
		require.GreaterOrEqual(t, v, int32(1))
		require.LessOrEqual(t, v, int32(6))
	}

	require.Error(t, DrawUniform(6, 1).Error())
}
