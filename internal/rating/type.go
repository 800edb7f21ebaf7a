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
	"github.com/ecodeclub/edubot/internal/rating/internal/domain"
	"github.com/ecodeclub/edubot/internal/rating/internal/errs"
	"github.com/ecodeclub/edubot/internal/rating/internal/job"
	"github.com/ecodeclub/edubot/internal/rating/internal/repository/dao"
	"github.com/ecodeclub/edubot/internal/rating/internal/service"
	"github.com/ecodeclub/edubot/internal/rating/internal/web"
)

type Service = service.Service
type AdminHandler = web.AdminHandler
type PendingSweepJob = job.PendingSweepJob
type ExportJob = job.ExportJob
type LedgerDAO = dao.LedgerDAO

type Interaction = domain.Interaction
type InputType = domain.InputType
type Rating = domain.Rating

const (
	MinRating = domain.MinRating
	MaxRating = domain.MaxRating

	InputTypeText  = domain.InputTypeText
	InputTypePhoto = domain.InputTypePhoto
)

var (
	ErrMalformedCallback = errs.ErrMalformedCallback
	ErrInvalidRating     = errs.ErrInvalidRating
	ErrUnknownToken      = errs.ErrUnknownToken
	ErrRated             = errs.ErrRated
	ErrUnrated           = errs.ErrUnrated
)

func MakeToken(chatID int64, messageID int) string {
	return domain.MakeToken(chatID, messageID)
}

func CallbackData(token string, r Rating) string {
	return domain.CallbackData(token, r)
}

func IsRatingCallback(payload string) bool {
	return domain.IsRatingCallback(payload)
}
