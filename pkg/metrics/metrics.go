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

package metrics

import (
	"context"
	"net"
	"net/http"
	"os"
	"runtime"
	"time"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

var registerer = prometheus.NewRegistry()

var (
	SampledVariates = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sampled_variates",
		},
		[]string{"distribution"},
	)

	GenerationTime = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "generation_time",
			Help:    "Time taken to fill one bulk variate request, in seconds.",
			Buckets: []float64{0.000001, 0.00001, 0.0001, 0.001, 0.01, 0.1, 0.5, 1, 2, 5, 10},
		},
		[]string{"distribution"},
	)

	WorkersSpawned = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "workers_spawned",
		},
	)
)

func init() {
	r := prometheus.WrapRegistererWithPrefix("randkit_", registerer)

	r.MustRegister(
		SampledVariates,
		GenerationTime,
		WorkersSpawned,
	)

	r.MustRegister(
		collectors.NewGoCollector(
			collectors.WithGoCollectorRuntimeMetrics(collectors.MetricsAll),
		),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{
			ReportErrors: true,
			PidFn: func() (int, error) {
				return os.Getpid(), nil
			},
		}),
		collectors.NewBuildInfoCollector(),
		prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Name: "go_goroutines_count",
			Help: "Number of goroutines currently active.",
		}, func() float64 {
			return float64(runtime.NumGoroutine())
		}),
	)
}

func StartMetricsServer(ctx context.Context, bind string, logger *zap.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.InstrumentMetricHandler(
		registerer, promhttp.HandlerFor(registerer, promhttp.HandlerOpts{
			EnableOpenMetrics: true,
			Registry:          registerer,
			OfferedCompressions: []promhttp.Compression{
				promhttp.Zstd,
				promhttp.Gzip,
				promhttp.Identity,
			},
		}),
	))

	server := &http.Server{
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
		WriteTimeout: 1 * time.Minute,
		Handler:      mux,
		Addr:         bind,
	}

	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			panic(errors.Wrapf(err, "failed to start metrics server on %s", bind))
		}
	}()

	go func() {
		<-ctx.Done()
		if err := server.Shutdown(context.Background()); err != nil {
			logger.Error("failed to shutdown metrics server", zap.Error(err))
		}
	}()
}

type RunningTime struct {
	start    time.Time
	observer prometheus.Observer
}

// GenerationTimeStart begins timing one bulk request for the given family.
func GenerationTimeStart(distribution string) RunningTime {
	return RunningTime{
		start:    time.Now(),
		observer: GenerationTime.WithLabelValues(distribution),
	}
}

func (r RunningTime) Record() {
	r.observer.Observe(time.Since(r.start).Seconds())
}
