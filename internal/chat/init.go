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

package chat

import (
	"time"

	"github.com/ecodeclub/edubot/internal/chat/internal/service"
	"github.com/ecodeclub/edubot/internal/chat/internal/telegram"
	"github.com/ecodeclub/edubot/internal/chat/internal/web"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/go-resty/resty/v2"
	"github.com/gotomicro/ego/core/econf"
)

// initConfig 环境变量 TEXT_MODEL 和 VISION_MODEL 在启动的时候已经写进 ollama.* 了
func initConfig() service.Config {
	cfg := service.Config{
		TextModel:     "qwen2.5:7b",
		VisionModel:   "llava:7b",
		TextTimeout:   180 * time.Second,
		VisionTimeout: 240 * time.Second,
	}
	if s := econf.GetString("ollama.textModel"); s != "" {
		cfg.TextModel = s
	}
	if s := econf.GetString("ollama.visionModel"); s != "" {
		cfg.VisionModel = s
	}
	if d := econf.GetDuration("ollama.textTimeout"); d > 0 {
		cfg.TextTimeout = d
	}
	if d := econf.GetDuration("ollama.visionTimeout"); d > 0 {
		cfg.VisionTimeout = d
	}
	return cfg
}

func initMessenger(api *tgbotapi.BotAPI) service.Messenger {
	client := resty.New().SetTimeout(time.Minute)
	return telegram.NewMessenger(api, client)
}

func initBot(api *tgbotapi.BotAPI, hdl *web.Handler) *telegram.Bot {
	maxConcurrency := econf.GetInt64("bot.maxConcurrency")
	if maxConcurrency <= 0 {
		maxConcurrency = 16
	}
	return telegram.NewBot(api, hdl, maxConcurrency)
}
