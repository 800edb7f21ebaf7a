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

import "strings"

type Mode string

const (
	ModeText   Mode = "text"
	ModeVision Mode = "vision"
)

// SystemHint 每个提示词的开头
const SystemHint = "Ты — помощник для учебных задач. " +
	"Отвечай кратко и по делу. " +
	"Если данных недостаточно — задай 1 уточняющий вопрос."

const (
	EmptyTextAnswer   = "Пустой ответ от модели. Попробуй переформулировать вопрос."
	EmptyVisionAnswer = "Пустой ответ от vision-модели. Попробуй добавить подпись к фото с задачей."
)

// BuildPrompt userText 在文本模式下是用户的消息，在图片模式下是图片的说明
func BuildPrompt(userText string, mode Mode) string {
	text := strings.TrimSpace(userText)
	if mode == ModeText {
		if text != "" {
			return SystemHint + "\n\nЗапрос пользователя:\n" + text
		}
		return SystemHint + "\n\nПользователь ничего не написал. Попроси уточнить задачу."
	}
	if text != "" {
		return SystemHint + "\n\n" +
			"Пользователь прислал изображение и подпись:\n" + text + "\n\n" +
			"Сначала кратко опиши, что видишь на изображении, " +
			"потом реши/объясни по запросу из подписи."
	}
	return SystemHint + "\n\n" +
		"Пользователь прислал изображение без подписи. " +
		"1) Опиши, что на изображении. " +
		"2) Предложи, какую учебную пользу можно из этого извлечь."
}

// FallbackAnswer 模型返回空字符串的时候回复给用户的
func (m Mode) FallbackAnswer() string {
	if m == ModeVision {
		return EmptyVisionAnswer
	}
	return EmptyTextAnswer
}
