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

package web

import (
	"github.com/ecodeclub/edubot/internal/rating/internal/domain"
	"github.com/ecodeclub/edubot/internal/rating/internal/service"
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
)

const maxListLimit = 100

// AdminHandler 管理端，只挂在 admin server 上
type AdminHandler struct {
	svc    service.Service
	logger *elog.Component
}

func NewAdminHandler(svc service.Service) *AdminHandler {
	return &AdminHandler{
		svc:    svc,
		logger: elog.DefaultLogger,
	}
}

func (h *AdminHandler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/rating")
	// 还在等用户评分的回答个数
	g.GET("/pending-count", ginx.W(h.PendingCount))
	g.POST("/list", ginx.B[ListReq](h.List))
}

func (h *AdminHandler) PendingCount(ctx *ginx.Context) (ginx.Result, error) {
	return ginx.Result{
		Data: PendingCount{Count: h.svc.PendingCount(ctx)},
	}, nil
}

func (h *AdminHandler) List(ctx *ginx.Context, req ListReq) (ginx.Result, error) {
	if req.Limit <= 0 || req.Limit > maxListLimit {
		req.Limit = maxListLimit
	}
	data, err := h.svc.List(ctx, req.Offset, req.Limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: InteractionList{
			Interactions: slice.Map(data, func(idx int, src domain.Interaction) Interaction {
				return newInteraction(src)
			}),
		},
	}, nil
}
