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
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/ecodeclub/edubot/internal/rating/internal/domain"
	"github.com/ecodeclub/edubot/internal/rating/internal/repository/dao"
	"github.com/ecodeclub/edubot/internal/rating/internal/service"
	"github.com/gotomicro/ego/task/ejob"
)

const ExportFileName = "final_ratings.csv"

// ExportJob 导出脱敏之后的评分数据，user_id 和 chat_id 换成从 0 开始的编号
type ExportJob struct {
	svc       service.Service
	batchSize int
	baseDir   string
}

func NewExportJob(svc service.Service, baseDir string) *ExportJob {
	return &ExportJob{
		svc:       svc,
		batchSize: 100,
		baseDir:   baseDir,
	}
}

func (s *ExportJob) Start(ctx ejob.Context) error {
	if err := os.MkdirAll(s.baseDir, 0o755); err != nil {
		return err
	}
	writer, err := os.Create(filepath.Join(s.baseDir, ExportFileName))
	if err != nil {
		return err
	}
	defer writer.Close()
	return s.Export(ctx, writer)
}

func (s *ExportJob) Export(ctx ejob.Context, writer io.Writer) error {
	rows, err := s.all(ctx.Ctx)
	if err != nil {
		return err
	}
	ids := newAnonymizer(rows)
	csvWriter := csv.NewWriter(writer)
	_ = csvWriter.Write(dao.CSVHeader)
	for _, r := range rows {
		err = csvWriter.Write([]string{
			r.Ctime.UTC().Format(time.RFC3339Nano),
			strconv.Itoa(ids.index(r.Uid)),
			strconv.Itoa(ids.index(r.ChatID)),
			strconv.Itoa(r.MessageID),
			string(r.InputType),
			r.UserText,
			r.TextModel,
			r.VisionModel,
			r.Answer,
			strconv.Itoa(int(r.Rating)),
		})
		if err != nil {
			return err
		}
	}
	csvWriter.Flush()
	return csvWriter.Error()
}

func (s *ExportJob) all(ctx context.Context) ([]domain.Interaction, error) {
	var res []domain.Interaction
	for offset := 0; ; offset += s.batchSize {
		batchCtx, cancel := context.WithTimeout(ctx, time.Second*3)
		batch, err := s.svc.List(batchCtx, offset, s.batchSize)
		cancel()
		if err != nil {
			return nil, fmt.Errorf("读取评分账本失败: %w", err)
		}
		res = append(res, batch...)
		if len(batch) < s.batchSize {
			return res, nil
		}
	}
}

// anonymizer 先给所有 user_id 编号，再给 chat_id 编号，都是按第一次出现的顺序。
// 私聊里 chat_id 和 user_id 是同一个数，这时候共用一个编号
type anonymizer struct {
	ids map[int64]int
}

func newAnonymizer(rows []domain.Interaction) anonymizer {
	a := anonymizer{ids: make(map[int64]int, len(rows))}
	for _, r := range rows {
		a.add(r.Uid)
	}
	for _, r := range rows {
		a.add(r.ChatID)
	}
	return a
}

func (a anonymizer) add(id int64) {
	if _, ok := a.ids[id]; !ok {
		a.ids[id] = len(a.ids)
	}
}

func (a anonymizer) index(id int64) int {
	return a.ids[id]
}
