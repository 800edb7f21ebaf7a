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

package web

import (
	"errors"
	"fmt"
	"testing"

	"github.com/ecodeclub/edubot/internal/ai"
	"github.com/ecodeclub/edubot/internal/chat/internal/domain"
	"github.com/ecodeclub/edubot/internal/chat/internal/service"
	"github.com/ecodeclub/edubot/internal/rating"
	"github.com/stretchr/testify/assert"
)

func TestAnswerErrorText(t *testing.T) {
	testCases := []struct {
		name string
		mode domain.Mode
		err  error
		want string
	}{
		{
			name: "连不上 Ollama",
			mode: domain.ModeText,
			err:  &ai.BackendUnavailableError{Cause: errors.New("connection refused")},
			want: "Ошибка при обращении к локальной модели (Ollama).\n" +
				"Ollama request failed: connection refused\n\n" +
				"Проверь, что Ollama запущена и модель скачана.",
		},
		{
			name: "Ollama 返回错误码",
			mode: domain.ModeText,
			err:  fmt.Errorf("调用模型: %w", &ai.BackendError{StatusCode: 404, Detail: "model 'x' not found"}),
			want: "Ошибка при обращении к локальной модели (Ollama).\n" +
				"Ollama HTTP 404: model 'x' not found\n\n" +
				"Проверь, что Ollama запущена и модель скачана.",
		},
		{
			name: "图片 Ollama 错误",
			mode: domain.ModeVision,
			err:  &ai.BackendError{StatusCode: 500, Detail: "oom"},
			want: "Ошибка при обработке фото через Ollama.\n" +
				"Ollama HTTP 500: oom\n\n" +
				"Проверь, что vision-модель скачана (например, llava) и Ollama запущена.",
		},
		{
			name: "文本其它错误",
			mode: domain.ModeText,
			err:  errors.New("boom"),
			want: "Неожиданная ошибка: boom",
		},
		{
			name: "图片其它错误",
			mode: domain.ModeVision,
			err:  errors.New("boom"),
			want: "Неожиданная ошибка при фото: boom",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, answerErrorText(tc.mode, tc.err))
		})
	}
}

func TestRatingResultText(t *testing.T) {
	testCases := []struct {
		name string
		res  rating.Interaction
		err  error
		want string
	}{
		{name: "成功", res: rating.Interaction{Rating: 5}, want: "Спасибо! Оценка: 5/5 ✅"},
		{name: "格式错误", err: rating.ErrMalformedCallback, want: "Некорректные данные оценки."},
		{name: "评分非法", err: rating.ErrInvalidRating, want: "Оценка должна быть от 1 до 5."},
		{name: "token 不存在", err: rating.ErrUnknownToken,
			want: "Не нашёл, к какому ответу относится оценка (возможно, уже сохранено)."},
		{name: "保存失败", err: errors.New("disk full"), want: "Ошибка при сохранении оценки: disk full"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ratingResultText(tc.res, tc.err))
		})
	}
}

func TestHelpText(t *testing.T) {
	text := helpText(service.Config{TextModel: "qwen2.5:7b", VisionModel: "llava:7b"})
	assert.Contains(t, text, "Команды: /start /help")
	assert.Contains(t, text, "- Модели: TEXT_MODEL=qwen2.5:7b, VISION_MODEL=llava:7b")
}
