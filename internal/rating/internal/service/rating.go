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
	"fmt"
	"time"

	"github.com/ecodeclub/edubot/internal/rating/internal/domain"
	"github.com/ecodeclub/edubot/internal/rating/internal/errs"
	"github.com/ecodeclub/edubot/internal/rating/internal/repository"
	"github.com/gotomicro/ego/core/elog"
)

//go:generate mockgen -source=./rating.go -package=ratingmocks -destination=../../mocks/rating.mock.go -typed Service
type Service interface {
	// Track 记下等待评分的回答，返回放进评分按钮里的 token
	Track(ctx context.Context, i domain.Interaction) (string, error)
	// Rate 处理评分按钮的回调，成功之后返回写入账本的记录
	Rate(ctx context.Context, payload string) (domain.Interaction, error)
	PendingCount(ctx context.Context) int
	// ExpirePending 丢弃 before 之前就在等待评分的回答
	ExpirePending(ctx context.Context, before time.Time) int
	List(ctx context.Context, offset, limit int) ([]domain.Interaction, error)
}

type service struct {
	repo   repository.InteractionRepository
	logger *elog.Component
}

func NewService(repo repository.InteractionRepository) Service {
	return &service{
		repo:   repo,
		logger: elog.DefaultLogger,
	}
}

func (s *service) Track(ctx context.Context, i domain.Interaction) (string, error) {
	token := i.Token()
	if i.Ctime.IsZero() {
		i.Ctime = time.Now().UTC()
	}
	return token, s.repo.AddPending(ctx, token, i)
}

func (s *service) Rate(ctx context.Context, payload string) (domain.Interaction, error) {
	token, raw, ok := domain.ParseCallback(payload)
	if !ok {
		return domain.Interaction{}, errs.ErrMalformedCallback
	}
	rating, ok := domain.ParseRating(raw)
	if !ok {
		return domain.Interaction{}, errs.ErrInvalidRating
	}
	i, ok := s.repo.TakePending(ctx, token)
	if !ok {
		return domain.Interaction{}, errs.ErrUnknownToken
	}
	rated := i
	rated.Rating = rating
	if err := s.repo.Append(ctx, rated); err != nil {
		// 放回去，用户可以再点一次
		if er := s.repo.AddPending(ctx, token, i); er != nil {
			s.logger.Error("放回等待评分的回答失败",
				elog.FieldErr(er),
				elog.String("token", token))
		}
		return domain.Interaction{}, fmt.Errorf("写入评分账本失败: %w", err)
	}
	return rated, nil
}

func (s *service) PendingCount(ctx context.Context) int {
	return s.repo.PendingCount(ctx)
}

func (s *service) ExpirePending(ctx context.Context, before time.Time) int {
	return s.repo.RemovePendingBefore(ctx, before)
}

func (s *service) List(ctx context.Context, offset, limit int) ([]domain.Interaction, error) {
	return s.repo.List(ctx, offset, limit)
}
