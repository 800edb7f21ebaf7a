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

package dao

import (
	"context"
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	"github.com/pkg/errors"
)

// CSVHeader 列的顺序是固定的，下游的数据处理脚本按列名读
var CSVHeader = []string{
	"timestamp_utc",
	"user_id",
	"chat_id",
	"message_id",
	"input_type",
	"user_text",
	"text_model",
	"vision_model",
	"ai_answer",
	"rating",
}

// CSVLedgerDAO 每一行都是 打开-追加-刷盘-关闭，多个 goroutine 同时写由 mu 串行化
type CSVLedgerDAO struct {
	path string
	mu   sync.Mutex
}

func NewCSVLedgerDAO(path string) *CSVLedgerDAO {
	return &CSVLedgerDAO{path: path}
}

func (c *CSVLedgerDAO) Path() string {
	return c.path
}

func (c *CSVLedgerDAO) Append(ctx context.Context, ri RatedInteraction) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if dir := filepath.Dir(c.path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.Wrap(err, "创建账本目录失败")
		}
	}
	f, err := os.OpenFile(c.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return errors.Wrap(err, "打开账本失败")
	}
	st, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return errors.Wrap(err, "打开账本失败")
	}
	records := [][]string{toRecord(ri)}
	if st.Size() == 0 {
		records = [][]string{CSVHeader, records[0]}
	}
	if err = appendRecords(f, st.Size(), records...); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

type ledgerFile interface {
	io.Writer
	Truncate(size int64) error
}

// appendRecords 写失败的时候截断回 size，不留下半行
func appendRecords(f ledgerFile, size int64, records ...[]string) error {
	w := csv.NewWriter(f)
	for _, record := range records {
		if err := w.Write(record); err != nil {
			return rollback(f, size, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return rollback(f, size, err)
	}
	return nil
}

func rollback(f ledgerFile, size int64, err error) error {
	if er := f.Truncate(size); er != nil {
		return errors.Wrapf(err, "写入账本失败，截断也失败了: %v", er)
	}
	return errors.Wrap(err, "写入账本失败")
}

func (c *CSVLedgerDAO) List(ctx context.Context, offset, limit int) ([]RatedInteraction, error) {
	if limit <= 0 {
		return []RatedInteraction{}, nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	f, err := os.Open(c.path)
	if errors.Is(err, os.ErrNotExist) {
		return []RatedInteraction{}, nil
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()
	r := csv.NewReader(f)
	r.FieldsPerRecord = len(CSVHeader)
	res := make([]RatedInteraction, 0, limit)
	// 第 0 行是表头
	for line := 0; ; line++ {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if line == 0 {
			continue
		}
		if line-1 < offset {
			continue
		}
		if len(res) >= limit {
			break
		}
		ri, err := fromRecord(record)
		if err != nil {
			return nil, errors.Wrapf(err, "账本第 %d 行", line+1)
		}
		ri.Id = int64(line)
		res = append(res, ri)
	}
	return res, nil
}

func toRecord(ri RatedInteraction) []string {
	return []string{
		time.UnixMilli(ri.Ctime).UTC().Format(time.RFC3339Nano),
		strconv.FormatInt(ri.Uid, 10),
		strconv.FormatInt(ri.ChatID, 10),
		strconv.FormatInt(ri.MessageID, 10),
		ri.InputType,
		ri.UserText,
		ri.TextModel,
		ri.VisionModel,
		ri.Answer,
		strconv.Itoa(int(ri.Rating)),
	}
}

func fromRecord(record []string) (RatedInteraction, error) {
	ts, err := time.Parse(time.RFC3339Nano, record[0])
	if err != nil {
		return RatedInteraction{}, err
	}
	ints := make([]int64, 3)
	for i := range ints {
		ints[i], err = strconv.ParseInt(record[i+1], 10, 64)
		if err != nil {
			return RatedInteraction{}, err
		}
	}
	rating, err := strconv.ParseUint(record[9], 10, 8)
	if err != nil {
		return RatedInteraction{}, err
	}
	return RatedInteraction{
		Ctime:       ts.UnixMilli(),
		Uid:         ints[0],
		ChatID:      ints[1],
		MessageID:   ints[2],
		InputType:   record[4],
		UserText:    record[5],
		TextModel:   record[6],
		VisionModel: record[7],
		Answer:      record[8],
		Rating:      uint8(rating),
	}, nil
}
