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
	"time"

	"github.com/ecodeclub/edubot/internal/rating/internal/domain"
)

type ListReq struct {
	Offset int `json:"offset,omitempty"`
	Limit  int `json:"limit,omitempty"`
}

type Interaction struct {
	Uid         int64  `json:"uid"`
	ChatID      int64  `json:"chatId"`
	MessageID   int    `json:"messageId"`
	InputType   string `json:"inputType"`
	UserText    string `json:"userText,omitempty"`
	TextModel   string `json:"textModel"`
	VisionModel string `json:"visionModel"`
	Answer      string `json:"answer"`
	Rating      uint8  `json:"rating"`
	Ctime       string `json:"ctime"`
}

type InteractionList struct {
	Interactions []Interaction `json:"interactions"`
}

type PendingCount struct {
	Count int `json:"count"`
}

func newInteraction(i domain.Interaction) Interaction {
	return Interaction{
		Uid:         i.Uid,
		ChatID:      i.ChatID,
		MessageID:   i.MessageID,
		InputType:   string(i.InputType),
		UserText:    i.UserText,
		TextModel:   i.TextModel,
		VisionModel: i.VisionModel,
		Answer:      i.Answer,
		Rating:      uint8(i.Rating),
		Ctime:       i.Ctime.UTC().Format(time.DateTime),
	}
}
