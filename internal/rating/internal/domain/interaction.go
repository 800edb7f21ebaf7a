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

type InputType string

const (
	InputTypeText  InputType = "text"
	InputTypePhoto InputType = "photo"
)

// Interaction 一次问答。等待评分的时候 Rating 为 0，写入账本之后一定有 Rating
type Interaction struct {
	Ctime time.Time
	Uid   int64
	// ChatID 和 MessageID 是机器人回答那条消息的
	ChatID      int64
	MessageID   int
	InputType   InputType
	UserText    string
	TextModel   string
	VisionModel string
	Answer      string
	Rating      Rating
}

func (i Interaction) Token() string {
	return MakeToken(i.ChatID, i.MessageID)
}

// Rating 0 表示还没有评分
type Rating uint8

const (
	MinRating Rating = 1
	MaxRating Rating = 5
)

func (r Rating) Valid() bool {
	return r >= MinRating && r <= MaxRating
}

// ParseRating 只接受 "1" 到 "5" 这五个字面量，"05"、" 5" 之类的都不行
func ParseRating(s string) (Rating, bool) {
	if len(s) != 1 || s[0] < '1' || s[0] > '5' {
		return 0, false
	}
	return Rating(s[0] - '0'), true
}
