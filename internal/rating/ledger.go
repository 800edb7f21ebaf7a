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

package rating

import (
	"sync"
	"time"

	"github.com/ecodeclub/edubot/internal/rating/internal/job"
	"github.com/ecodeclub/edubot/internal/rating/internal/repository/dao"
	"github.com/ecodeclub/edubot/internal/rating/internal/service"
	"github.com/ego-component/egorm"
	"github.com/gotomicro/ego/core/econf"
)

// NewCSVLedgerDAO 文件不存在的时候第一次写入会创建，包括父目录
func NewCSVLedgerDAO(path string) LedgerDAO {
	return dao.NewCSVLedgerDAO(path)
}

var daoOnce = sync.Once{}

func InitTableOnce(db *egorm.Component) {
	daoOnce.Do(func() {
		err := dao.InitTables(db)
		if err != nil {
			panic(err)
		}
	})
}

func NewGORMLedgerDAO(db *egorm.Component) LedgerDAO {
	InitTableOnce(db)
	return dao.NewGORMLedgerDAO(db)
}

func initPendingSweepJob(svc service.Service) *job.PendingSweepJob {
	ttl := 24 * time.Hour
	if econf.Get("rating.pendingTTL") != nil {
		ttl = econf.GetDuration("rating.pendingTTL")
	}
	return job.NewPendingSweepJob(svc, ttl)
}

func initExportJob(svc service.Service) *job.ExportJob {
	baseDir := econf.GetString("job.exportRatings.baseDir")
	if baseDir == "" {
		baseDir = "."
	}
	return job.NewExportJob(svc, baseDir)
}
