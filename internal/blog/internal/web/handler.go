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
	"errors"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/greenshop/internal/blog/internal/domain"
	"github.com/ecodeclub/greenshop/internal/blog/internal/errs"
	"github.com/ecodeclub/greenshop/internal/blog/internal/service"
	"github.com/ecodeclub/greenshop/internal/pkg/html_truncate"
	"github.com/gin-gonic/gin"
)

var _ ginx.Handler = &Handler{}

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	notFoundResult = ginx.Result{
		Code: errs.BlogNotFound.Code,
		Msg:  errs.BlogNotFound.Msg,
	}
)

type Handler struct {
	svc       service.Service
	truncator html_truncate.HTMLTruncator
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{
		svc:       svc,
		truncator: html_truncate.DefaultHTMLTruncator(),
	}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	g := server.Group("/blog")
	g.POST("/list", ginx.B[ListReq](h.List))
	g.POST("/detail", ginx.B[BlogReq](h.Detail))
	g.POST("/hot", ginx.W(h.ListHot))
	g.POST("/banner", ginx.W(h.ListBanner))
	g.POST("/latest", ginx.W(h.Latest))
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {}

// AdminRoutes 管理端，注册在角色校验中间件之后
func (h *Handler) AdminRoutes(server *gin.Engine) {
	g := server.Group("/blog")
	g.POST("/create", ginx.B[SaveBlogReq](h.Create))
	g.POST("/update", ginx.B[SaveBlogReq](h.Update))
	g.POST("/delete", ginx.B[BlogReq](h.Delete))
}

func (h *Handler) List(ctx *ginx.Context, req ListReq) (ginx.Result, error) {
	const defaultLimit = 20
	if req.Limit <= 0 {
		req.Limit = defaultLimit
	}
	bs, err := h.svc.List(ctx.Request.Context(), req.Offset, req.Limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: h.toListResp(bs)}, nil
}

func (h *Handler) Detail(ctx *ginx.Context, req BlogReq) (ginx.Result, error) {
	b, err := h.svc.FindByID(ctx.Request.Context(), req.ID)
	if errors.Is(err, service.ErrBlogNotFound) {
		return notFoundResult, err
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: h.toVO(b)}, nil
}

func (h *Handler) ListHot(ctx *ginx.Context) (ginx.Result, error) {
	bs, err := h.svc.ListHot(ctx.Request.Context())
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: h.toListResp(bs)}, nil
}

func (h *Handler) ListBanner(ctx *ginx.Context) (ginx.Result, error) {
	bs, err := h.svc.ListBanner(ctx.Request.Context())
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: h.toListResp(bs)}, nil
}

func (h *Handler) Latest(ctx *ginx.Context) (ginx.Result, error) {
	bs, err := h.svc.Latest(ctx.Request.Context())
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: h.toListResp(bs)}, nil
}

func (h *Handler) Create(ctx *ginx.Context, req SaveBlogReq) (ginx.Result, error) {
	if req.Title == "" {
		return ginx.Result{Code: errs.InvalidInput.Code, Msg: errs.InvalidInput.Msg},
			errors.New("文章标题为空")
	}
	id, err := h.svc.Create(ctx.Request.Context(), h.toDomain(req))
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: id}, nil
}

func (h *Handler) Update(ctx *ginx.Context, req SaveBlogReq) (ginx.Result, error) {
	err := h.svc.Update(ctx.Request.Context(), h.toDomain(req))
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) Delete(ctx *ginx.Context, req BlogReq) (ginx.Result, error) {
	err := h.svc.Delete(ctx.Request.Context(), req.ID)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) toDomain(req SaveBlogReq) domain.Blog {
	return domain.Blog{
		ID:            req.ID,
		Title:         req.Title,
		Image:         req.Image,
		Content:       req.Content,
		DisplayHot:    req.DisplayHot,
		DisplayBanner: req.DisplayBanner,
	}
}

func (h *Handler) toVO(b domain.Blog) Blog {
	return Blog{
		ID:            b.ID,
		Title:         b.Title,
		Image:         b.Image,
		Content:       b.Content,
		DisplayHot:    b.DisplayHot,
		DisplayBanner: b.DisplayBanner,
		Ctime:         b.Ctime,
	}
}

func (h *Handler) toListResp(bs []domain.Blog) BlogListResp {
	return BlogListResp{
		Blogs: slice.Map(bs, func(idx int, src domain.Blog) Blog {
			vo := h.toVO(src)
			// 列表里全文换成摘要，减小响应体
			vo.Excerpt = html_truncate.StripHTML(h.truncator.Truncate(src.Content))
			vo.Content = ""
			return vo
		}),
	}
}
