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

package job

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/ecodeclub/edubot/internal/rating/internal/domain"
	ratingmocks "github.com/ecodeclub/edubot/internal/rating/mocks"
	"github.com/gotomicro/ego/task/ejob"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestExportJob_Export(t *testing.T) {
	ctime := time.UnixMilli(1700000000000).UTC()
	rows := []domain.Interaction{
		{Ctime: ctime, Uid: 555, ChatID: 555, MessageID: 10, InputType: domain.InputTypeText,
			UserText: "2+2=?", TextModel: "qwen2.5:7b", VisionModel: "llava:7b", Answer: "4", Rating: 5},
		{Ctime: ctime, Uid: 777, ChatID: -100123, MessageID: 11, InputType: domain.InputTypePhoto,
			TextModel: "qwen2.5:7b", VisionModel: "llava:7b", Answer: "кот", Rating: 2},
		{Ctime: ctime, Uid: 555, ChatID: 555, MessageID: 12, InputType: domain.InputTypeText,
			UserText: "ещё", TextModel: "qwen2.5:7b", VisionModel: "llava:7b", Answer: "да", Rating: 4},
	}
	ctrl := gomock.NewController(t)
	svc := ratingmocks.NewMockService(ctrl)
	svc.EXPECT().List(gomock.Any(), 0, 2).Return(rows[:2], nil)
	svc.EXPECT().List(gomock.Any(), 2, 2).Return(rows[2:], nil)

	job := NewExportJob(svc, t.TempDir())
	job.batchSize = 2
	buf := &bytes.Buffer{}
	err := job.Export(ejob.Context{Ctx: context.Background()}, buf)
	require.NoError(t, err)

	records, err := csv.NewReader(buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 4)
	assert.Equal(t, []string{"timestamp_utc", "user_id", "chat_id", "message_id", "input_type",
		"user_text", "text_model", "vision_model", "ai_answer", "rating"}, records[0])
	// 555 -> 0, 777 -> 1, -100123 -> 2
	assert.Equal(t, []string{"0", "0", "10"}, records[1][1:4])
	assert.Equal(t, []string{"1", "2", "11"}, records[2][1:4])
	assert.Equal(t, []string{"0", "0", "12"}, records[3][1:4])
	assert.Equal(t, "кот", records[2][8])
	assert.Equal(t, "2", records[2][9])
	assert.Equal(t, "2023-11-14T22:13:20Z", records[1][0])
}

func TestExportJob_Start(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := ratingmocks.NewMockService(ctrl)
	svc.EXPECT().List(gomock.Any(), 0, 100).Return([]domain.Interaction{}, nil)

	dir := filepath.Join(t.TempDir(), "export")
	job := NewExportJob(svc, dir)
	require.NoError(t, job.Start(ejob.Context{Ctx: context.Background()}))
	data, err := os.ReadFile(filepath.Join(dir, ExportFileName))
	require.NoError(t, err)
	assert.Equal(t, "timestamp_utc,user_id,chat_id,message_id,input_type,user_text,text_model,vision_model,ai_answer,rating\n", string(data))
}

func TestExportJob_ListError(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := ratingmocks.NewMockService(ctrl)
	svc.EXPECT().List(gomock.Any(), 0, 100).Return(nil, errors.New("mock db error"))

	job := NewExportJob(svc, t.TempDir())
	err := job.Export(ejob.Context{Ctx: context.Background()}, &bytes.Buffer{})
	assert.ErrorContains(t, err, "mock db error")
}

func TestPendingSweepJob_Run(t *testing.T) {
	t.Run("ttl 为 0 不清理", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := ratingmocks.NewMockService(ctrl)
		job := NewPendingSweepJob(svc, 0)
		assert.NoError(t, job.Run(context.Background()))
	})
	t.Run("清理过期", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := ratingmocks.NewMockService(ctrl)
		svc.EXPECT().ExpirePending(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, before time.Time) int {
				assert.WithinDuration(t, time.Now().Add(-time.Hour), before, time.Minute)
				return 2
			})
		svc.EXPECT().PendingCount(gomock.Any()).Return(3)
		job := NewPendingSweepJob(svc, time.Hour)
		assert.NoError(t, job.Run(context.Background()))
	})
}
