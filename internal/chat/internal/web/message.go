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

	"github.com/ecodeclub/edubot/internal/ai"
	"github.com/ecodeclub/edubot/internal/chat/internal/domain"
	"github.com/ecodeclub/edubot/internal/chat/internal/service"
	"github.com/ecodeclub/edubot/internal/rating"
)

const startText = "Привет! Я локальный AI-бот (Ollama).\n\n" +
	"• Отправь текст — отвечу\n" +
	"• Отправь фото (+ подпись) — опишу/решу по фото\n\n" +
	"После ответа появится оценка 1–5, а результат сохранится в CSV."

func helpText(cfg service.Config) string {
	return "Команды: /start /help\n\n" +
		"Как пользоваться:\n" +
		"1) Текстом: отправь вопрос\n" +
		"2) Фото: отправь фото и (желательно) подпись, что сделать\n\n" +
		"Важно:\n" +
		"- Ollama должна быть запущена\n" +
		fmt.Sprintf("- Модели: TEXT_MODEL=%s, VISION_MODEL=%s", cfg.TextModel, cfg.VisionModel)
}

// answerErrorText 回答失败的时候回复给用户的
func answerErrorText(mode domain.Mode, err error) string {
	var unavailable *ai.BackendUnavailableError
	var backend *ai.BackendError
	var cause error
	switch {
	case errors.As(err, &unavailable):
		cause = unavailable
	case errors.As(err, &backend):
		cause = backend
	}
	if cause != nil {
		if mode == domain.ModeVision {
			return "Ошибка при обработке фото через Ollama.\n" +
				cause.Error() + "\n\n" +
				"Проверь, что vision-модель скачана (например, llava) и Ollama запущена."
		}
		return "Ошибка при обращении к локальной модели (Ollama).\n" +
			cause.Error() + "\n\n" +
			"Проверь, что Ollama запущена и модель скачана."
	}
	if mode == domain.ModeVision {
		return "Неожиданная ошибка при фото: " + err.Error()
	}
	return "Неожиданная ошибка: " + err.Error()
}

// ratingResultText 评分之后替换掉评分按钮那条消息
func ratingResultText(r rating.Interaction, err error) string {
	switch {
	case err == nil:
		return fmt.Sprintf("Спасибо! Оценка: %d/5 ✅", r.Rating)
	case errors.Is(err, rating.ErrMalformedCallback):
		return "Некорректные данные оценки."
	case errors.Is(err, rating.ErrInvalidRating):
		return "Оценка должна быть от 1 до 5."
	case errors.Is(err, rating.ErrUnknownToken):
		return "Не нашёл, к какому ответу относится оценка (возможно, уже сохранено)."
	default:
		return "Ошибка при сохранении оценки: " + err.Error()
	}
}
