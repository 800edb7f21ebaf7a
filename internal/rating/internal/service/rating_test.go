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
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/ecodeclub/edubot/internal/rating/internal/domain"
	"github.com/ecodeclub/edubot/internal/rating/internal/errs"
	"github.com/ecodeclub/edubot/internal/rating/internal/repository"
	"github.com/ecodeclub/edubot/internal/rating/internal/repository/cache"
	"github.com/ecodeclub/edubot/internal/rating/internal/repository/dao"
	daomocks "github.com/ecodeclub/edubot/internal/rating/internal/repository/dao/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var ctime = time.UnixMilli(1700000000000).UTC()

func pending() domain.Interaction {
	return domain.Interaction{
		Ctime:       ctime,
		Uid:         7,
		ChatID:      100,
		MessageID:   55,
		InputType:   domain.InputTypeText,
		UserText:    "2+2=?",
		TextModel:   "qwen2.5:7b",
		VisionModel: "llava:7b",
		Answer:      "4",
	}
}

func newService(d dao.LedgerDAO) Service {
	return NewService(repository.NewInteractionRepository(cache.NewMemoryPendingCache(), d))
}

func TestService_Track(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := newService(daomocks.NewMockLedgerDAO(ctrl))

	token, err := svc.Track(context.Background(), pending())
	require.NoError(t, err)
	assert.Equal(t, "100:55", token)
	assert.Equal(t, 1, svc.PendingCount(context.Background()))

	rated := pending()
	rated.MessageID = 56
	rated.Rating = 3
	_, err = svc.Track(context.Background(), rated)
	assert.ErrorIs(t, err, errs.ErrRated)
	assert.Equal(t, 1, svc.PendingCount(context.Background()))
}

func TestService_Rate(t *testing.T) {
	testCases := []struct {
		name    string
		mock    func(ctrl *gomock.Controller) dao.LedgerDAO
		payload string

		wantRes     domain.Interaction
		wantErr     error
		wantPending int
	}{
		{
			name: "评分成功",
			mock: func(ctrl *gomock.Controller) dao.LedgerDAO {
				d := daomocks.NewMockLedgerDAO(ctrl)
				d.EXPECT().Append(gomock.Any(), dao.RatedInteraction{
					Uid:         7,
					ChatID:      100,
					MessageID:   55,
					InputType:   "text",
					UserText:    "2+2=?",
					TextModel:   "qwen2.5:7b",
					VisionModel: "llava:7b",
					Answer:      "4",
					Rating:      5,
					Ctime:       ctime.UnixMilli(),
				}).Return(nil)
				return d
			},
			payload: "rate|100:55|5",
			wantRes: func() domain.Interaction {
				i := pending()
				i.Rating = 5
				return i
			}(),
			wantPending: 0,
		},
		{
			name: "未知的 token",
			mock: func(ctrl *gomock.Controller) dao.LedgerDAO {
				return daomocks.NewMockLedgerDAO(ctrl)
			},
			payload:     "rate|100:56|5",
			wantErr:     errs.ErrUnknownToken,
			wantPending: 1,
		},
		{
			name: "写账本失败",
			mock: func(ctrl *gomock.Controller) dao.LedgerDAO {
				d := daomocks.NewMockLedgerDAO(ctrl)
				d.EXPECT().Append(gomock.Any(), gomock.Any()).Return(errors.New("disk full"))
				return d
			},
			payload:     "rate|100:55|4",
			wantErr:     errors.New("disk full"),
			wantPending: 1,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc := newService(tc.mock(ctrl))
			ctx := context.Background()
			_, err := svc.Track(ctx, pending())
			require.NoError(t, err)

			res, err := svc.Rate(ctx, tc.payload)
			if tc.wantErr != nil {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.wantErr.Error())
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tc.wantRes, res)
			assert.Equal(t, tc.wantPending, svc.PendingCount(ctx))
		})
	}
}

func TestService_RateRejected(t *testing.T) {
	testCases := []struct {
		name    string
		payload string
		wantErr error
	}{
		{name: "评分为 0", payload: "rate|100:55|0", wantErr: errs.ErrInvalidRating},
		{name: "评分为 6", payload: "rate|100:55|6", wantErr: errs.ErrInvalidRating},
		{name: "评分不是数字", payload: "rate|100:55|abc", wantErr: errs.ErrInvalidRating},
		{name: "评分为空", payload: "rate|100:55|", wantErr: errs.ErrInvalidRating},
		{name: "前导零", payload: "rate|100:55|05", wantErr: errs.ErrInvalidRating},
		{name: "少一段", payload: "rate|100:55", wantErr: errs.ErrMalformedCallback},
		{name: "多一段", payload: "rate|100:55|5|1", wantErr: errs.ErrMalformedCallback},
		{name: "前缀不对", payload: "vote|100:55|5", wantErr: errs.ErrMalformedCallback},
		{name: "空", payload: "", wantErr: errs.ErrMalformedCallback},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			// 不应该写账本
			svc := newService(daomocks.NewMockLedgerDAO(ctrl))
			ctx := context.Background()
			_, err := svc.Track(ctx, pending())
			require.NoError(t, err)

			_, err = svc.Rate(ctx, tc.payload)
			assert.ErrorIs(t, err, tc.wantErr)
			assert.Equal(t, 1, svc.PendingCount(ctx))
		})
	}
}

func TestService_RateTwice(t *testing.T) {
	ctrl := gomock.NewController(t)
	d := daomocks.NewMockLedgerDAO(ctrl)
	d.EXPECT().Append(gomock.Any(), gomock.Any()).Return(nil).Times(1)
	svc := newService(d)
	ctx := context.Background()
	_, err := svc.Track(ctx, pending())
	require.NoError(t, err)

	_, err = svc.Rate(ctx, "rate|100:55|5")
	require.NoError(t, err)
	_, err = svc.Rate(ctx, "rate|100:55|3")
	assert.ErrorIs(t, err, errs.ErrUnknownToken)
}

func TestService_RateRetryAfterAppendFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	d := daomocks.NewMockLedgerDAO(ctrl)
	gomock.InOrder(
		d.EXPECT().Append(gomock.Any(), gomock.Any()).Return(errors.New("disk full")),
		d.EXPECT().Append(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, ri dao.RatedInteraction) error {
				assert.Equal(t, uint8(2), ri.Rating)
				return nil
			}),
	)
	svc := newService(d)
	ctx := context.Background()
	_, err := svc.Track(ctx, pending())
	require.NoError(t, err)

	_, err = svc.Rate(ctx, "rate|100:55|4")
	require.Error(t, err)
	res, err := svc.Rate(ctx, "rate|100:55|2")
	require.NoError(t, err)
	assert.Equal(t, domain.Rating(2), res.Rating)
	assert.Equal(t, 0, svc.PendingCount(ctx))
}

func TestService_RateConcurrent(t *testing.T) {
	ctrl := gomock.NewController(t)
	d := daomocks.NewMockLedgerDAO(ctrl)
	d.EXPECT().Append(gomock.Any(), gomock.Any()).Return(nil).Times(1)
	svc := newService(d)
	ctx := context.Background()
	_, err := svc.Track(ctx, pending())
	require.NoError(t, err)

	var success atomic.Int32
	var wg sync.WaitGroup
	for k := 0; k < 10; k++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := svc.Rate(ctx, "rate|100:55|5"); err == nil {
				success.Add(1)
			} else {
				assert.ErrorIs(t, err, errs.ErrUnknownToken)
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, int32(1), success.Load())
}

func TestService_ExpirePending(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := newService(daomocks.NewMockLedgerDAO(ctrl))
	ctx := context.Background()
	now := time.Now().UTC()

	old := pending()
	old.Ctime = now.Add(-48 * time.Hour)
	fresh := pending()
	fresh.MessageID = 56
	fresh.Ctime = now
	_, err := svc.Track(ctx, old)
	require.NoError(t, err)
	_, err = svc.Track(ctx, fresh)
	require.NoError(t, err)

	assert.Equal(t, 1, svc.ExpirePending(ctx, now.Add(-24*time.Hour)))
	_, err = svc.Rate(ctx, "rate|100:55|5")
	assert.ErrorIs(t, err, errs.ErrUnknownToken)
	assert.Equal(t, 1, svc.PendingCount(ctx))
}
