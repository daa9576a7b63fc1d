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

func TestSampleExponentialMean(t *testing.T) {
	t.Parallel()

	values := SampleExponential(100_000, 2.0).MustGet()

	for _, v := range values {
		require.GreaterOrEqual(t, v, 0.0)
	}

	mean, err := stats.Mean(values)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, mean, 0.01)
}

func TestExponentialObject(t *testing.T) {
	t.Parallel()

	d := NewExponential(2)
	assert.Equal(t, 2.0, d.Rate())
	require.Len(t, d.Sample(1000).MustGet(), 1000)
	require.NoError(t, d.Draw().Error())

	require.Panics(t, func() { NewExponential(0) })
	require.Panics(t, func() { NewExponential(-1) })
}
