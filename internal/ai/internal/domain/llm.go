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

package domain

import "time"

const (
	// BizText 纯文本问答
	BizText = "text"
	// BizVision 图片问答
	BizVision = "vision"
)

type LLMRequest struct {
	Biz string
	Uid int64
	// 请求id，用来串联日志
	Tid string
	// 使用的模型
	Model  string
	Prompt string
	// 原始图片，发给 ollama 之前才会编码成 base64
	Images [][]byte
	// 单次调用的超时时间，vision 模型明显要慢
	Timeout time.Duration
}

type LLMResponse struct {
	// llm 的回答，已经去掉了首尾空白。可能为空
	Answer string
}
