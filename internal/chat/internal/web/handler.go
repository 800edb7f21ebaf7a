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
	"context"
	"fmt"

	"github.com/ecodeclub/edubot/internal/chat/internal/domain"
	"github.com/ecodeclub/edubot/internal/chat/internal/service"
	"github.com/ecodeclub/edubot/internal/rating"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/gotomicro/ego/core/elog"
)

// Handler 把 Telegram 的消息分发给对应的处理方法
type Handler struct {
	svc       service.Service
	ratingSvc rating.Service
	messenger service.Messenger
	cfg       service.Config
	logger    *elog.Component
}

func NewHandler(svc service.Service, ratingSvc rating.Service,
	messenger service.Messenger, cfg service.Config) *Handler {
	return &Handler{
		svc:       svc,
		ratingSvc: ratingSvc,
		messenger: messenger,
		cfg:       cfg,
		logger:    elog.DefaultLogger,
	}
}

func (h *Handler) Handle(ctx context.Context, update tgbotapi.Update) {
	defer func() {
		if r := recover(); r != nil {
			h.logger.Error("处理消息 panic",
				elog.Int("updateId", update.UpdateID),
				elog.FieldErr(fmt.Errorf("%v", r)))
			h.reportPanic(ctx, update, fmt.Sprintf("Неожиданная ошибка: %v", r))
		}
	}()
	switch {
	case update.CallbackQuery != nil:
		if rating.IsRatingCallback(update.CallbackQuery.Data) {
			h.handleRating(ctx, update.CallbackQuery)
		}
	case update.Message == nil || update.Message.Chat == nil:
		return
	case update.Message.IsCommand():
		h.handleCommand(ctx, update.Message)
	case len(update.Message.Photo) > 0:
		h.handlePhoto(ctx, update.Message)
	case update.Message.Text != "":
		h.handleText(ctx, update.Message)
	}
}

// reportPanic 普通消息回复一条新消息，评分回调直接改写评分按钮那条消息
func (h *Handler) reportPanic(ctx context.Context, update tgbotapi.Update, text string) {
	if msg := update.Message; msg != nil && msg.Chat != nil {
		h.reply(ctx, msg.Chat.ID, text)
		return
	}
	if q := update.CallbackQuery; q != nil && q.Message != nil && q.Message.Chat != nil {
		if err := h.messenger.EditText(ctx, q.Message.Chat.ID, q.Message.MessageID, text); err != nil {
			h.logger.Error("更新评分消息失败", elog.FieldErr(err))
		}
	}
}

func (h *Handler) handleCommand(ctx context.Context, msg *tgbotapi.Message) {
	var text string
	switch msg.Command() {
	case "start":
		text = startText
	case "help":
		text = helpText(h.cfg)
	default:
		return
	}
	h.reply(ctx, msg.Chat.ID, text)
}

func (h *Handler) handleText(ctx context.Context, msg *tgbotapi.Message) {
	h.typing(ctx, msg.Chat.ID)
	_, err := h.svc.AnswerText(ctx, domain.Input{
		Uid:    uid(msg),
		ChatID: msg.Chat.ID,
		Text:   msg.Text,
	})
	if err != nil {
		h.logger.Error("回答文本消息失败",
			elog.FieldErr(err),
			elog.Int64("chatId", msg.Chat.ID))
		h.reply(ctx, msg.Chat.ID, answerErrorText(domain.ModeText, err))
	}
}

func (h *Handler) handlePhoto(ctx context.Context, msg *tgbotapi.Message) {
	h.typing(ctx, msg.Chat.ID)
	// 最后一个尺寸最大
	photo := msg.Photo[len(msg.Photo)-1]
	err := h.answerPhoto(ctx, msg, photo.FileID)
	if err != nil {
		h.logger.Error("回答图片消息失败",
			elog.FieldErr(err),
			elog.Int64("chatId", msg.Chat.ID))
		h.reply(ctx, msg.Chat.ID, answerErrorText(domain.ModeVision, err))
	}
}

func (h *Handler) answerPhoto(ctx context.Context, msg *tgbotapi.Message, fileID string) error {
	image, err := h.messenger.Download(ctx, fileID)
	if err != nil {
		return err
	}
	_, err = h.svc.AnswerPhoto(ctx, domain.Input{
		Uid:    uid(msg),
		ChatID: msg.Chat.ID,
		Text:   msg.Caption,
		Image:  image,
	})
	return err
}

func (h *Handler) handleRating(ctx context.Context, query *tgbotapi.CallbackQuery) {
	if err := h.messenger.AnswerCallback(ctx, query.ID); err != nil {
		h.logger.Warn("应答回调失败", elog.FieldErr(err))
	}
	res, err := h.ratingSvc.Rate(ctx, query.Data)
	if err != nil {
		h.logger.Error("评分失败",
			elog.FieldErr(err),
			elog.String("data", query.Data))
	}
	if query.Message == nil || query.Message.Chat == nil {
		return
	}
	err = h.messenger.EditText(ctx, query.Message.Chat.ID, query.Message.MessageID, ratingResultText(res, err))
	if err != nil {
		h.logger.Error("更新评分消息失败", elog.FieldErr(err))
	}
}

func (h *Handler) typing(ctx context.Context, chatID int64) {
	if err := h.messenger.Typing(ctx, chatID); err != nil {
		h.logger.Warn("发送输入状态失败", elog.FieldErr(err))
	}
}

func (h *Handler) reply(ctx context.Context, chatID int64, text string) {
	if _, err := h.messenger.Reply(ctx, chatID, text); err != nil {
		h.logger.Error("回复消息失败",
			elog.FieldErr(err),
			elog.Int64("chatId", chatID))
	}
}

func uid(msg *tgbotapi.Message) int64 {
	if msg.From == nil {
		return 0
	}
	return msg.From.ID
}
