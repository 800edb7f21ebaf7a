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

package trace

import (
	"context"

	"github.com/ecodeclub/edubot/internal/ai/internal/domain"
	"github.com/ecodeclub/edubot/internal/ai/internal/service/llm/handler"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "internal/ai/llm/tracing"

type HandlerBuilder struct {
	tracer trace.Tracer
}

var _ handler.Builder = &HandlerBuilder{}

func NewHandler() *HandlerBuilder {
	return &HandlerBuilder{
		tracer: otel.GetTracerProvider().Tracer(instrumentationName),
	}
}

func (h *HandlerBuilder) Name() string {
	return "trace"
}

func (h *HandlerBuilder) Next(next handler.Handler) handler.Handler {
	return handler.HandleFunc(func(ctx context.Context, req domain.LLMRequest) (domain.LLMResponse, error) {
		ctx, span := h.tracer.Start(ctx, "llm."+req.Biz,
			trace.WithSpanKind(trace.SpanKindClient),
			trace.WithAttributes(
				attribute.String("llm.tid", req.Tid),
				attribute.String("llm.model", req.Model),
				attribute.Int("llm.images", len(req.Images)),
			))
		defer span.End()
		resp, err := next.Handle(ctx, req)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			return resp, err
		}
		span.SetAttributes(attribute.Int("llm.answer_len", len(resp.Answer)))
		span.SetStatus(codes.Ok, "")
		return resp, nil
	})
}
