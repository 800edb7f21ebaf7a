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
	"errors"

	"github.com/ego-component/egorm"
	"github.com/go-sql-driver/mysql"
)

var ErrDuplicateInteraction = errors.New("同一条回答重复评分")

type GORMLedgerDAO struct {
	db *egorm.Component
}

func NewGORMLedgerDAO(db *egorm.Component) LedgerDAO {
	return &GORMLedgerDAO{db: db}
}

func (g *GORMLedgerDAO) Append(ctx context.Context, ri RatedInteraction) error {
	ri.Id = 0
	err := g.db.WithContext(ctx).Create(&ri).Error
	var me *mysql.MySQLError
	if errors.As(err, &me) {
		const uniqueIndexErrNo uint16 = 1062
		if me.Number == uniqueIndexErrNo {
			return ErrDuplicateInteraction
		}
	}
	return err
}

func (g *GORMLedgerDAO) List(ctx context.Context, offset, limit int) ([]RatedInteraction, error) {
	var res []RatedInteraction
	err := g.db.WithContext(ctx).
		Order("id asc").
		Offset(offset).Limit(limit).Find(&res).Error
	return res, err
}
