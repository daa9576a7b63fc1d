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

package rng

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/bits"
	"math/rand/v2"
	"time"
)

// Source yields raw entropy used to seed per-worker generators. It is backed by
// crypto/rand, or by a time-mixing PCG when crypto entropy is unavailable.
var Source rand.Source

type crandSource struct{}

func (c *crandSource) Uint64() uint64 {
	var out [8]byte
	_, _ = crand.Read(out[:])
	return binary.LittleEndian.Uint64(out[:])
}

// TimeSource mixes wall-clock jitter into a PCG stream. Fallback only; the
// quality is good enough for seeding but nothing else.
type TimeSource struct {
	source rand.Source
}

func NewTimeSource() *TimeSource {
	now := time.Now()
	val := uint64(now.Nanosecond() * now.Second())

	return &TimeSource{
		source: rand.NewPCG(val, val),
	}
}

func (c *TimeSource) Uint64() uint64 {
	now := time.Now()
	val := c.source.Uint64()
	return bits.RotateLeft64(val^uint64(now.Nanosecond()*now.Second()), -int(val>>58))
}

func init() {
	var b [8]byte
	_, err := crand.Read(b[:])
	if err == nil {
		Source = &crandSource{}
	} else {
		Source = NewTimeSource()
	}

	Shared = NewLockedSource(rand.NewPCG(Source.Uint64(), Source.Uint64()))
}
