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

package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/ecodeclub/ginx"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
)

const bearerPrefix = "Bearer "

// CheckAdminTokenBuilder 校验 Authorization: Bearer <token>。
// 没有配置 token 的时候拒绝所有请求
type CheckAdminTokenBuilder struct {
	token string
}

func NewCheckAdminTokenBuilder(token string) *CheckAdminTokenBuilder {
	return &CheckAdminTokenBuilder{token: token}
}

func (b *CheckAdminTokenBuilder) Build() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		gctx := &ginx.Context{Context: ctx}
		if b.token == "" {
			gctx.AbortWithStatus(http.StatusUnauthorized)
			elog.Error("非法访问 admin 接口，没有配置 admin.token")
			return
		}
		header := ctx.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, bearerPrefix)
		if !ok || subtle.ConstantTimeCompare([]byte(token), []byte(b.token)) != 1 {
			gctx.AbortWithStatus(http.StatusUnauthorized)
			elog.Warn("非法访问 admin 接口", elog.String("path", ctx.Request.URL.Path))
			return
		}
	}
}
