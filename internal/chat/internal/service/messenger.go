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

package service

import "context"

//go:generate mockgen -source=./messenger.go -package=chatmocks -destination=../../mocks/messenger.mock.go -typed Messenger

// Messenger 和聊天平台打交道的部分
type Messenger interface {
	// Reply 发一条消息，返回这条消息的 ID
	Reply(ctx context.Context, chatID int64, text string) (int, error)
	// AskRating 发送带评分按钮的消息
	AskRating(ctx context.Context, chatID int64, token string) error
	// Typing 显示"正在输入"
	Typing(ctx context.Context, chatID int64) error
	EditText(ctx context.Context, chatID int64, messageID int, text string) error
	AnswerCallback(ctx context.Context, callbackID string) error
	// Download 下载用户发的文件
	Download(ctx context.Context, fileID string) ([]byte, error)
}
