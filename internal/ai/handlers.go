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

package ai

import (
	"github.com/ecodeclub/edubot/internal/ai/internal/service/llm/handler"
	"github.com/ecodeclub/edubot/internal/ai/internal/service/llm/handler/log"
	"github.com/ecodeclub/edubot/internal/ai/internal/service/llm/handler/metrics"
	"github.com/ecodeclub/edubot/internal/ai/internal/service/llm/handler/platform/ollama"
	"github.com/ecodeclub/edubot/internal/ai/internal/service/llm/handler/trace"
	"github.com/gotomicro/ego/core/econf"
)

const defaultOllamaURL = "http://localhost:11434"

func InitOllama() *ollama.Handler {
	baseURL := econf.GetString("ollama.baseURL")
	if baseURL == "" {
		baseURL = defaultOllamaURL
	}
	return ollama.NewHandler(baseURL)
}

func InitCommonHandlers(log *log.HandlerBuilder,
	trace *trace.HandlerBuilder,
	metrics *metrics.HandlerBuilder) []handler.Builder {
	// log -> trace -> metrics -> ollama
	return []handler.Builder{log, trace, metrics}
}

func InitRootHandler(common []handler.Builder,
	// platform 就是真正的出口
	platform *ollama.Handler) handler.Handler {
	return handler.NewCompositionHandler(common, platform)
}
