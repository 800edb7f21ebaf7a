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
	"context"
	"fmt"
	"net/http"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/go-resty/resty/v2"
)

// Messenger 基于 Bot API 的实现。tgbotapi 不支持 context，只有下载文件用得上
type Messenger struct {
	api          *tgbotapi.BotAPI
	client       *resty.Client
	fileEndpoint string
}

func NewMessenger(api *tgbotapi.BotAPI, client *resty.Client) *Messenger {
	return &Messenger{
		api:          api,
		client:       client,
		fileEndpoint: tgbotapi.FileEndpoint,
	}
}

func (m *Messenger) Reply(ctx context.Context, chatID int64, text string) (int, error) {
	msg, err := m.api.Send(tgbotapi.NewMessage(chatID, text))
	if err != nil {
		return 0, m.redact(err)
	}
	return msg.MessageID, nil
}

func (m *Messenger) AskRating(ctx context.Context, chatID int64, token string) error {
	msg := tgbotapi.NewMessage(chatID, RatingPrompt)
	msg.ReplyMarkup = RatingKeyboard(token)
	_, err := m.api.Send(msg)
	return m.redact(err)
}

func (m *Messenger) Typing(ctx context.Context, chatID int64) error {
	_, err := m.api.Request(tgbotapi.NewChatAction(chatID, tgbotapi.ChatTyping))
	return m.redact(err)
}

func (m *Messenger) EditText(ctx context.Context, chatID int64, messageID int, text string) error {
	_, err := m.api.Request(tgbotapi.NewEditMessageText(chatID, messageID, text))
	return m.redact(err)
}

func (m *Messenger) AnswerCallback(ctx context.Context, callbackID string) error {
	_, err := m.api.Request(tgbotapi.NewCallback(callbackID, ""))
	return m.redact(err)
}

func (m *Messenger) Download(ctx context.Context, fileID string) ([]byte, error) {
	file, err := m.api.GetFile(tgbotapi.FileConfig{FileID: fileID})
	if err != nil {
		return nil, m.redact(err)
	}
	resp, err := m.client.R().
		SetContext(ctx).
		Get(fmt.Sprintf(m.fileEndpoint, m.api.Token, file.FilePath))
	if err != nil {
		return nil, m.redact(fmt.Errorf("下载文件失败: %w", err))
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("下载文件失败 HTTP %d", resp.StatusCode())
	}
	return resp.Body(), nil
}

// redact 请求的 URL 里带着 bot token，网络错误的信息里会有完整的 URL
func (m *Messenger) redact(err error) error {
	if err == nil || m.api.Token == "" {
		return err
	}
	msg := err.Error()
	if !strings.Contains(msg, m.api.Token) {
		return err
	}
	return &redactedError{
		msg:   strings.ReplaceAll(msg, m.api.Token, "<token>"),
		cause: err,
	}
}

type redactedError struct {
	msg   string
	cause error
}

func (e *redactedError) Error() string {
	return e.msg
}

func (e *redactedError) Unwrap() error {
	return e.cause
}
