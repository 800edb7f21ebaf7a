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

package ioc

import (
	"github.com/ecodeclub/edubot/internal/rating"
	"github.com/gotomicro/ego/core/econf"
)

const defaultCSVPath = "ratings.csv"

// InitLedgerDAO ledger.driver 是 mysql 的时候写数据库，其余情况写 CSV 文件
func InitLedgerDAO() rating.LedgerDAO {
	if econf.GetString("ledger.driver") == "mysql" {
		return rating.NewGORMLedgerDAO(InitDB())
	}
	path := econf.GetString("ledger.csvPath")
	if path == "" {
		path = defaultCSVPath
	}
	return rating.NewCSVLedgerDAO(path)
}
