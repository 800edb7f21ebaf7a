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
	"time"

	"github.com/ecodeclub/edubot/internal/rating/internal/service"
	"github.com/gotomicro/ego/core/elog"
)

// PendingSweepJob 等太久没人评分的回答直接丢掉
type PendingSweepJob struct {
	svc service.Service
	ttl time.Duration
	l   *elog.Component
}

func NewPendingSweepJob(svc service.Service, ttl time.Duration) *PendingSweepJob {
	return &PendingSweepJob{
		svc: svc,
		ttl: ttl,
		l:   elog.DefaultLogger,
	}
}

func (s *PendingSweepJob) Name() string {
	return "pending_rating_sweep_job"
}

func (s *PendingSweepJob) Run(ctx context.Context) error {
	// 0 表示永不过期
	if s.ttl <= 0 {
		return nil
	}
	cnt := s.svc.ExpirePending(ctx, time.Now().Add(-s.ttl))
	if cnt > 0 {
		s.l.Info("清理过期的待评分回答",
			elog.Int("cnt", cnt),
			elog.Int("remaining", s.svc.PendingCount(ctx)))
	}
	return nil
}
