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

import "context"

//go:generate mockgen -source=./types.go -package=daomocks -destination=mocks/ledger.mock.go -typed LedgerDAO

// LedgerDAO 评过分的问答只追加，不修改
type LedgerDAO interface {
	Append(ctx context.Context, ri RatedInteraction) error
	// List 按写入顺序
	List(ctx context.Context, offset, limit int) ([]RatedInteraction, error)
}

type RatedInteraction struct {
	Id          int64  `gorm:"primaryKey,autoIncrement"`
	Uid         int64  `gorm:"column:uid;type:bigint;comment:用户ID;not null;default:0"`
	ChatID      int64  `gorm:"column:chat_id;type:bigint;comment:会话ID;not null;uniqueIndex:uniq_chat_msg"`
	MessageID   int64  `gorm:"column:message_id;type:bigint;comment:回答消息ID;not null;uniqueIndex:uniq_chat_msg"`
	InputType   string `gorm:"column:input_type;type:varchar(16);comment:输入类型 text/photo;not null"`
	UserText    string `gorm:"column:user_text;type:text;comment:用户输入"`
	TextModel   string `gorm:"column:text_model;type:varchar(128);not null;default:''"`
	VisionModel string `gorm:"column:vision_model;type:varchar(128);not null;default:''"`
	Answer      string `gorm:"column:answer;type:text;comment:模型回答"`
	Rating      uint8  `gorm:"column:rating;type:tinyint(3);comment:评分 1-5;not null;index:idx_rating"`
	Ctime       int64
}

func (RatedInteraction) TableName() string {
	return "rated_interactions"
}
