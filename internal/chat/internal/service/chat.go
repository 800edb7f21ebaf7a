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

import (
	"context"
	"time"

	"github.com/ecodeclub/edubot/internal/ai"
	"github.com/ecodeclub/edubot/internal/chat/internal/domain"
	"github.com/ecodeclub/edubot/internal/rating"
	"github.com/gotomicro/ego/core/elog"
	"github.com/lithammer/shortuuid/v4"
)

//go:generate mockgen -source=./chat.go -package=chatmocks -destination=../../mocks/chat.mock.go -typed Service
type Service interface {
	// AnswerText 回答文本消息，并且让用户评分
	AnswerText(ctx context.Context, in domain.Input) (rating.Interaction, error)
	// AnswerPhoto 回答图片消息，in.Text 是图片的说明
	AnswerPhoto(ctx context.Context, in domain.Input) (rating.Interaction, error)
}

type Config struct {
	TextModel     string
	VisionModel   string
	TextTimeout   time.Duration
	VisionTimeout time.Duration
}

type service struct {
	llm       ai.LLMService
	ratingSvc rating.Service
	messenger Messenger
	cfg       Config
	logger    *elog.Component
}

func NewService(llm ai.LLMService, ratingSvc rating.Service, messenger Messenger, cfg Config) Service {
	return &service{
		llm:       llm,
		ratingSvc: ratingSvc,
		messenger: messenger,
		cfg:       cfg,
		logger:    elog.DefaultLogger,
	}
}

func (s *service) AnswerText(ctx context.Context, in domain.Input) (rating.Interaction, error) {
	return s.answer(ctx, in, domain.ModeText)
}

func (s *service) AnswerPhoto(ctx context.Context, in domain.Input) (rating.Interaction, error) {
	return s.answer(ctx, in, domain.ModeVision)
}

func (s *service) answer(ctx context.Context, in domain.Input, mode domain.Mode) (rating.Interaction, error) {
	req := ai.LLMRequest{
		Uid:    in.Uid,
		Tid:    shortuuid.New(),
		Prompt: domain.BuildPrompt(in.Text, mode),
	}
	inputType := rating.InputTypeText
	if mode == domain.ModeVision {
		req.Biz = ai.BizVision
		req.Model = s.cfg.VisionModel
		req.Timeout = s.cfg.VisionTimeout
		req.Images = [][]byte{in.Image}
		inputType = rating.InputTypePhoto
	} else {
		req.Biz = ai.BizText
		req.Model = s.cfg.TextModel
		req.Timeout = s.cfg.TextTimeout
	}

	// 调用失败直接返回，不回复，也不会等待评分
	resp, err := s.llm.Invoke(ctx, req)
	if err != nil {
		return rating.Interaction{}, err
	}
	answer := resp.Answer
	if answer == "" {
		answer = mode.FallbackAnswer()
	}

	msgID, err := s.messenger.Reply(ctx, in.ChatID, answer)
	if err != nil {
		return rating.Interaction{}, err
	}
	i := rating.Interaction{
		Ctime:       time.Now().UTC(),
		Uid:         in.Uid,
		ChatID:      in.ChatID,
		MessageID:   msgID,
		InputType:   inputType,
		UserText:    in.Text,
		TextModel:   s.cfg.TextModel,
		VisionModel: s.cfg.VisionModel,
		Answer:      answer,
	}
	token, err := s.ratingSvc.Track(ctx, i)
	if err != nil {
		return rating.Interaction{}, err
	}
	if err = s.messenger.AskRating(ctx, in.ChatID, token); err != nil {
		// 回答已经发出去了，只是没法评分
		s.logger.Error("发送评分按钮失败",
			elog.FieldErr(err),
			elog.String("tid", req.Tid),
			elog.String("token", token))
		return i, err
	}
	return i, nil
}
