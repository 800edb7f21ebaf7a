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
	"os"

	"github.com/gotomicro/ego/core/econf"
)

// envOverrides 环境变量优先于配置文件
var envOverrides = map[string]string{
	"TELEGRAM_BOT_TOKEN": "telegram.token",
	"OLLAMA_URL":         "ollama.baseURL",
	"TEXT_MODEL":         "ollama.textModel",
	"VISION_MODEL":       "ollama.visionModel",
	"CSV_PATH":           "ledger.csvPath",
	"ADMIN_TOKEN":        "admin.token",
}

// LoadEnv 要在 InitApp 之前调用
func LoadEnv() {
	for env, key := range envOverrides {
		if val, ok := os.LookupEnv(env); ok && val != "" {
			econf.Set(key, val)
		}
	}
}
