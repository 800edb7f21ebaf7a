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

package ollama

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/ecodeclub/edubot/internal/ai/internal/domain"
	"github.com/ecodeclub/edubot/internal/ai/internal/errs"
	"github.com/go-resty/resty/v2"
)

const generatePath = "/api/generate"

// Handler 调用本地的 ollama，它不会调用 next，因为它是最终的出口
type Handler struct {
	client *resty.Client
}

func NewHandler(baseURL string) *Handler {
	client := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetHeader("Content-Type", "application/json")
	return &Handler{
		client: client,
	}
}

func (h *Handler) Name() string {
	return "ollama"
}

type generateRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	Stream bool   `json:"stream"`
	// ollama 要的是不带 data:image/...;base64, 前缀的 base64
	Images []string `json:"images,omitempty"`
}

type generateResponse struct {
	Response string `json:"response"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (h *Handler) Handle(ctx context.Context, req domain.LLMRequest) (domain.LLMResponse, error) {
	if req.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, req.Timeout)
		defer cancel()
	}
	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(h.buildReq(req)).
		Post(generatePath)
	if err != nil {
		return domain.LLMResponse{}, &errs.BackendUnavailableError{Cause: err}
	}
	if resp.StatusCode() != http.StatusOK {
		return domain.LLMResponse{}, &errs.BackendError{
			StatusCode: resp.StatusCode(),
			Detail:     h.errorDetail(resp.Body()),
		}
	}
	var res generateResponse
	if err = json.Unmarshal(resp.Body(), &res); err != nil {
		return domain.LLMResponse{}, fmt.Errorf("解析 ollama 响应失败: %w", err)
	}
	return domain.LLMResponse{
		Answer: strings.TrimSpace(res.Response),
	}, nil
}

func (h *Handler) buildReq(req domain.LLMRequest) generateRequest {
	res := generateRequest{
		Model:  req.Model,
		Prompt: req.Prompt,
		Stream: false,
	}
	for _, img := range req.Images {
		res.Images = append(res.Images, base64.StdEncoding.EncodeToString(img))
	}
	return res
}

func (h *Handler) errorDetail(body []byte) string {
	var res errorResponse
	if err := json.Unmarshal(body, &res); err == nil && res.Error != "" {
		return res.Error
	}
	return strings.TrimSpace(string(body))
}
