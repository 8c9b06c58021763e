package ioc

import (
	"net/http"
	"strings"

	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/greenshop/internal/blog"
	"github.com/ecodeclub/greenshop/internal/coupon"
	"github.com/ecodeclub/greenshop/internal/newsletter"
	"github.com/ecodeclub/greenshop/internal/order"
	"github.com/ecodeclub/greenshop/internal/payment"
	"github.com/ecodeclub/greenshop/internal/pkg/middleware"
	"github.com/ecodeclub/greenshop/internal/product"
	"github.com/ecodeclub/greenshop/internal/review"
	"github.com/ecodeclub/greenshop/internal/user"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/server/egin"
)

func initGinxServer(sp session.Provider,
	userHdl *user.Handler,
	productHdl *product.Handler,
	blogHdl *blog.Handler,
	reviewHdl *review.Handler,
	newsletterHdl *newsletter.Handler,
	couponHdl *coupon.Handler,
	orderHdl *order.Handler,
	orderAdminHdl *order.AdminHandler,
	paymentHdl *payment.Handler,
) *egin.Component {
	session.SetDefaultProvider(sp)
	res := egin.Load("web").Build()
	res.Use(cors.New(cors.Config{
		ExposeHeaders:    []string{"X-Refresh-Token", "X-Access-Token"},
		AllowCredentials: true,
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		AllowOriginFunc: func(origin string) bool {
			if strings.HasPrefix(origin, "http://localhost") {
				return true
			}
			return strings.Contains(origin, "greenshop.vn")
		},
	}))
	res.GET("/hello", func(ctx *gin.Context) {
		ctx.String(http.StatusOK, "hello, world!")
	})
	userHdl.PublicRoutes(res.Engine)
	productHdl.PublicRoutes(res.Engine)
	blogHdl.PublicRoutes(res.Engine)
	reviewHdl.PublicRoutes(res.Engine)
	newsletterHdl.PublicRoutes(res.Engine)
	couponHdl.PublicRoutes(res.Engine)
	orderHdl.PublicRoutes(res.Engine)
	paymentHdl.PublicRoutes(res.Engine)
	// 登录校验
	res.Use(session.CheckLoginMiddleware())
	userHdl.PrivateRoutes(res.Engine)
	orderHdl.PrivateRoutes(res.Engine)
	// 后台接口在登录之外再校验角色
	res.Use(middleware.NewCheckRoleMiddlewareBuilder(user.RoleStaff, user.RoleAdmin).Build())
	userHdl.AdminRoutes(res.Engine)
	productHdl.AdminRoutes(res.Engine)
	blogHdl.AdminRoutes(res.Engine)
	reviewHdl.AdminRoutes(res.Engine)
	newsletterHdl.AdminRoutes(res.Engine)
	couponHdl.AdminRoutes(res.Engine)
	orderAdminHdl.AdminRoutes(res.Engine)
	return res
}
