// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package metrics

import (
	"context"
	"errors"
	"time"

	"github.com/ecodeclub/edubot/internal/ai/internal/domain"
	"github.com/ecodeclub/edubot/internal/ai/internal/errs"
	"github.com/ecodeclub/edubot/internal/ai/internal/service/llm/handler"
	"github.com/prometheus/client_golang/prometheus"
)

const (
	statusSuccess     = "success"
	statusEmpty       = "empty"
	statusUnavailable = "unavailable"
	statusBackend     = "backend_error"
	statusUnknown     = "unknown"
)

type HandlerBuilder struct {
	histogramVec *prometheus.HistogramVec
	counterVec   *prometheus.CounterVec
}

var _ handler.Builder = &HandlerBuilder{}

func NewHandler() *HandlerBuilder {
	histogramVec := register(prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "edubot",
			Name:      "llm_request_duration_seconds",
			Help:      "LLM request duration in seconds",
			// vision 模型动辄几十秒
			Buckets: []float64{0.5, 1, 2.5, 5, 10, 30, 60, 120, 240},
		},
		[]string{"biz", "model", "status"},
	))
	counterVec := register(prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "edubot",
			Name:      "llm_requests_total",
			Help:      "Total number of LLM requests",
		},
		[]string{"biz", "model", "status"},
	))
	return &HandlerBuilder{
		histogramVec: histogramVec,
		counterVec:   counterVec,
	}
}

// register 重复注册的时候复用已经存在的 collector，测试里面会多次初始化
func register[T prometheus.Collector](c T) T {
	err := prometheus.Register(c)
	if err == nil {
		return c
	}
	var are prometheus.AlreadyRegisteredError
	if errors.As(err, &are) {
		if existing, ok := are.ExistingCollector.(T); ok {
			return existing
		}
	}
	panic(err)
}

func (h *HandlerBuilder) Name() string {
	return "metrics"
}

func (h *HandlerBuilder) Next(next handler.Handler) handler.Handler {
	return handler.HandleFunc(func(ctx context.Context, req domain.LLMRequest) (domain.LLMResponse, error) {
		start := time.Now()
		resp, err := next.Handle(ctx, req)
		status := h.status(resp, err)
		h.histogramVec.WithLabelValues(req.Biz, req.Model, status).Observe(time.Since(start).Seconds())
		h.counterVec.WithLabelValues(req.Biz, req.Model, status).Inc()
		return resp, err
	})
}

func (h *HandlerBuilder) status(resp domain.LLMResponse, err error) string {
	var backendErr *errs.BackendError
	switch {
	case err == nil && resp.Answer == "":
		return statusEmpty
	case err == nil:
		return statusSuccess
	case errors.Is(err, errs.ErrBackendUnavailable):
		return statusUnavailable
	case errors.As(err, &backendErr):
		return statusBackend
	default:
		return statusUnknown
	}
}
