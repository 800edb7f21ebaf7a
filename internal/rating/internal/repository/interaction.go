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

package repository

import (
	"context"
	"time"

	"github.com/ecodeclub/edubot/internal/rating/internal/domain"
	"github.com/ecodeclub/edubot/internal/rating/internal/errs"
	"github.com/ecodeclub/edubot/internal/rating/internal/repository/cache"
	"github.com/ecodeclub/edubot/internal/rating/internal/repository/dao"
	"github.com/ecodeclub/ekit/slice"
)

type InteractionRepository interface {
	// AddPending 等待评分，带评分的记录返回 errs.ErrRated
	AddPending(ctx context.Context, token string, i domain.Interaction) error
	TakePending(ctx context.Context, token string) (domain.Interaction, bool)
	PendingCount(ctx context.Context) int
	RemovePendingBefore(ctx context.Context, t time.Time) int

	// Append 写入账本，没有评分的记录返回 errs.ErrUnrated
	Append(ctx context.Context, i domain.Interaction) error
	List(ctx context.Context, offset, limit int) ([]domain.Interaction, error)
}

type interactionRepository struct {
	cache cache.PendingCache
	dao   dao.LedgerDAO
}

func NewInteractionRepository(c cache.PendingCache, d dao.LedgerDAO) InteractionRepository {
	return &interactionRepository{
		cache: c,
		dao:   d,
	}
}

func (repo *interactionRepository) AddPending(ctx context.Context, token string, i domain.Interaction) error {
	if i.Rating != 0 {
		return errs.ErrRated
	}
	repo.cache.Set(token, i)
	return nil
}

func (repo *interactionRepository) TakePending(ctx context.Context, token string) (domain.Interaction, bool) {
	return repo.cache.Take(token)
}

func (repo *interactionRepository) PendingCount(ctx context.Context) int {
	return repo.cache.Len()
}

func (repo *interactionRepository) RemovePendingBefore(ctx context.Context, t time.Time) int {
	return repo.cache.EvictBefore(t)
}

func (repo *interactionRepository) Append(ctx context.Context, i domain.Interaction) error {
	if !i.Rating.Valid() {
		return errs.ErrUnrated
	}
	return repo.dao.Append(ctx, repo.toEntity(i))
}

func (repo *interactionRepository) List(ctx context.Context, offset, limit int) ([]domain.Interaction, error) {
	res, err := repo.dao.List(ctx, offset, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(res, func(idx int, src dao.RatedInteraction) domain.Interaction {
		return repo.toDomain(src)
	}), nil
}

func (repo *interactionRepository) toEntity(i domain.Interaction) dao.RatedInteraction {
	return dao.RatedInteraction{
		Uid:         i.Uid,
		ChatID:      i.ChatID,
		MessageID:   int64(i.MessageID),
		InputType:   string(i.InputType),
		UserText:    i.UserText,
		TextModel:   i.TextModel,
		VisionModel: i.VisionModel,
		Answer:      i.Answer,
		Rating:      uint8(i.Rating),
		Ctime:       i.Ctime.UnixMilli(),
	}
}

func (repo *interactionRepository) toDomain(ri dao.RatedInteraction) domain.Interaction {
	return domain.Interaction{
		Ctime:       time.UnixMilli(ri.Ctime).UTC(),
		Uid:         ri.Uid,
		ChatID:      ri.ChatID,
		MessageID:   int(ri.MessageID),
		InputType:   domain.InputType(ri.InputType),
		UserText:    ri.UserText,
		TextModel:   ri.TextModel,
		VisionModel: ri.VisionModel,
		Answer:      ri.Answer,
		Rating:      domain.Rating(ri.Rating),
	}
}
