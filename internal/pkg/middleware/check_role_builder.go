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
	"net/http"

	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
)

// CheckRoleMiddlewareBuilder 校验会话角色，后台接口只放行员工和管理员
type CheckRoleMiddlewareBuilder struct {
	roles  map[string]struct{}
	logger *elog.Component
	sp     session.Provider
}

func NewCheckRoleMiddlewareBuilder(roles ...string) *CheckRoleMiddlewareBuilder {
	rs := make(map[string]struct{}, len(roles))
	for _, r := range roles {
		rs[r] = struct{}{}
	}
	return &CheckRoleMiddlewareBuilder{
		roles:  rs,
		logger: elog.DefaultLogger,
	}
}

func (c *CheckRoleMiddlewareBuilder) Build() gin.HandlerFunc {
	if c.sp == nil {
		c.sp = session.DefaultProvider()
	}
	return func(ctx *gin.Context) {
		gctx := &ginx.Context{Context: ctx}
		sess, err := c.sp.Get(gctx)
		if err != nil {
			gctx.AbortWithStatus(http.StatusForbidden)
			c.logger.Debug("用户未登录", elog.FieldErr(err))
			return
		}

		claims := sess.Claims()
		role := claims.Get("role").StringOrDefault("")
		if _, ok := c.roles[role]; !ok {
			c.logger.Debug("角色无权访问",
				elog.Int64("uid", claims.Uid),
				elog.String("role", role))
			gctx.AbortWithStatus(http.StatusForbidden)
			return
		}
	}
}
