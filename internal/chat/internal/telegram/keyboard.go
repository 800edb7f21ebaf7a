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

package telegram

import (
	"strconv"

	"github.com/ecodeclub/edubot/internal/rating"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const RatingPrompt = "Оцени ответ по шкале 1–5:"

// RatingKeyboard 一行五个按钮，1 到 5
func RatingKeyboard(token string) tgbotapi.InlineKeyboardMarkup {
	buttons := make([]tgbotapi.InlineKeyboardButton, 0, rating.MaxRating)
	for r := rating.MinRating; r <= rating.MaxRating; r++ {
		buttons = append(buttons, tgbotapi.NewInlineKeyboardButtonData(
			strconv.Itoa(int(r)), rating.CallbackData(token, r)))
	}
	return tgbotapi.NewInlineKeyboardMarkup(buttons)
}
