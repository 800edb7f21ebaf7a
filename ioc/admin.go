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
	"net/http"
	"strings"

	"github.com/ecodeclub/edubot/internal/pkg/middleware"
	"github.com/ecodeclub/edubot/internal/rating"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
	"github.com/prometheus/client_golang/prometheus"
)

type AdminServer *egin.Component

// InitAdminServer 除了 /hello 都要带 admin.token
func InitAdminServer(ratingHdl *rating.AdminHandler) AdminServer {
	res := egin.Load("admin").Build()
	origins := econf.GetStringSlice("admin.allowOrigins")
	res.Use(cors.New(cors.Config{
		AllowHeaders: []string{"Authorization", "Content-Type"},
		AllowMethods: []string{http.MethodGet, http.MethodPost},
		AllowOriginFunc: func(origin string) bool {
			if strings.HasPrefix(origin, "http://localhost") {
				return true
			}
			for _, o := range origins {
				if origin == o {
					return true
				}
			}
			return false
		},
	}))
	res.Use(middleware.NewMetricsBuilder(prometheus.DefaultRegisterer).Build())
	res.GET("/hello", func(ctx *gin.Context) {
		ctx.String(http.StatusOK, "hello, world!")
	})

	// 登录校验
	res.Use(middleware.NewCheckAdminTokenBuilder(econf.GetString("admin.token")).Build())
	ratingHdl.PrivateRoutes(res.Engine)
	return res
}
