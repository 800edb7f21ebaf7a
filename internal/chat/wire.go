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

package chat

import (
	"github.com/ecodeclub/edubot/internal/ai"
	"github.com/ecodeclub/edubot/internal/chat/internal/service"
	"github.com/ecodeclub/edubot/internal/chat/internal/web"
	"github.com/ecodeclub/edubot/internal/rating"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/google/wire"
)

func InitModule(api *tgbotapi.BotAPI, aiModule *ai.Module, ratingModule *rating.Module) (*Module, error) {
	wire.Build(
		wire.FieldsOf(new(*ai.Module), "Svc"),
		wire.FieldsOf(new(*rating.Module), "Svc"),
		initConfig,
		initMessenger,
		service.NewService,
		web.NewHandler,
		initBot,
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}
