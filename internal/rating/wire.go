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

//go:build wireinject

package rating

import (
	"github.com/ecodeclub/edubot/internal/rating/internal/repository"
	"github.com/ecodeclub/edubot/internal/rating/internal/repository/cache"
	"github.com/ecodeclub/edubot/internal/rating/internal/service"
	"github.com/ecodeclub/edubot/internal/rating/internal/web"
	"github.com/google/wire"
)

func InitModule(d LedgerDAO) (*Module, error) {
	wire.Build(
		cache.NewMemoryPendingCache,
		repository.NewInteractionRepository,
		service.NewService,
		web.NewAdminHandler,
		initPendingSweepJob,
		initExportJob,
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}
