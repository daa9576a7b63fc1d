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
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSampleLengths(t *testing.T) {
	t.Parallel()

	for _, n := range []int{0, 1, 7, 1000, 10_000} {
		t.Run(strconv.Itoa(n), func(t *testing.T) {
			t.Parallel()

			require.Len(t, SampleUniform(n, 0.0, 1.0).MustGet(), n)
			require.Len(t, SampleUniform(n, int32(-5), int32(5)).MustGet(), n)
			require.Len(t, SampleNormal(n, 0.0, 1.0).MustGet(), n)
			require.Len(t, SampleExponential(n, 1.0).MustGet(), n)
			require.Len(t, SampleGamma(n, 2.0, 3.0).MustGet(), n)
			require.Len(t, SamplePoisson[uint64](n, 1).MustGet(), n)
			require.Len(t, SampleStable(n, 1.5, 0, 1, 0).MustGet(), n)
		})
	}
}

func TestSampleLarge(t *testing.T) {
	t.Parallel()

	if testing.Short() {
		t.Skip("10M-variate request is skipped in short mode")
	}

	require.Len(t, SampleNormal(10_000_000, 0.0, 1.0).MustGet(), 10_000_000)
}

func TestValidationFailuresAreIdempotent(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		call func() error
		want string
	}{
		{"uniform bounds", func() error { return SampleUniform(10, 5.0, 1.0).Error() }, "lower bound"},
		{"uniform bounds int", func() error { return SampleUniform(10, 5, 1).Error() }, "lower bound"},
		{"normal stddev zero", func() error { return SampleNormal(10, 0.0, 0.0).Error() }, "standard deviation"},
		{"normal stddev negative", func() error { return SampleNormal(10, 0.0, -2.0).Error() }, "standard deviation"},
		{"exponential rate", func() error { return SampleExponential(10, -1.0).Error() }, "rate"},
		{"gamma shape", func() error { return SampleGamma(10, 0.0, 1.0).Error() }, "shape"},
		{"gamma scale", func() error { return SampleGamma(10, 1.0, 0.0).Error() }, "scale"},
		{"poisson rate", func() error { return SamplePoisson[uint64](10, 0).Error() }, "rate"},
		{"stable alpha low", func() error { return SampleStable(10, 0, 0, 1, 0).Error() }, "stability index"},
		{"stable alpha high", func() error { return SampleStable(10, 2.5, 0, 1, 0).Error() }, "stability index"},
		{"stable beta", func() error { return SampleStable(10, 1.5, 1.5, 1, 0).Error() }, "skewness"},
		{"stable sigma", func() error { return SampleStable(10, 1.5, 0, 0, 0).Error() }, "scale"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			first := tc.call()
			require.Error(t, first)
			assert.Contains(t, first.Error(), tc.want)

			// Same inputs must name the same constraint again.
			second := tc.call()
			require.Error(t, second)
			assert.Contains(t, second.Error(), tc.want)
		})
	}
}

func TestDrawSingleVariates(t *testing.T) {
	t.Parallel()

	require.NoError(t, DrawUniform(0.0, 1.0).Error())
	require.NoError(t, DrawUniform(1, 6).Error())
	require.NoError(t, DrawNormal(0.0, 1.0).Error())
	require.NoError(t, DrawExponential(2.0).Error())
	require.NoError(t, DrawGamma(2.0, 3.0).Error())
	require.NoError(t, DrawPoisson[uint64](3).Error())
	require.NoError(t, DrawStable(1.5, 0, 1, 0).Error())

	require.Error(t, DrawNormal(0.0, -1.0).Error())
	require.Error(t, DrawStable(3, 0, 1, 0).Error())
}
