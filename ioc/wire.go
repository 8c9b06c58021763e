//go:build wireinject

package ioc

import (
	"github.com/ecodeclub/greenshop/internal/blog"
	"github.com/ecodeclub/greenshop/internal/coupon"
	"github.com/ecodeclub/greenshop/internal/newsletter"
	"github.com/ecodeclub/greenshop/internal/order"
	"github.com/ecodeclub/greenshop/internal/payment"
	"github.com/ecodeclub/greenshop/internal/product"
	"github.com/ecodeclub/greenshop/internal/review"
	"github.com/ecodeclub/greenshop/internal/user"
	"github.com/google/wire"
)

var BaseSet = wire.NewSet(InitDB, InitCache, InitRedis, InitSession, InitMQ, InitEmailService)

func InitApp() (*App, error) {
	wire.Build(wire.Struct(new(App), "*"),
		BaseSet,
		initUserModule,
		product.InitModule,
		blog.InitModule,
		coupon.InitModule,
		newsletter.InitModule,
		review.InitModule,
		initPaymentConfig,
		initPaymentService,
		initPaymentURLBuilder,
		initOrderModule,
		initPaymentModule,
		initCloseExpiredJob,
		initCronJobs,
		initConsumers,
		wire.FieldsOf(new(*user.Module), "Hdl"),
		wire.FieldsOf(new(*product.Module), "Hdl", "Svc"),
		wire.FieldsOf(new(*blog.Module), "Hdl"),
		wire.FieldsOf(new(*review.Module), "Hdl"),
		wire.FieldsOf(new(*newsletter.Module), "Hdl"),
		wire.FieldsOf(new(*coupon.Module), "Hdl"),
		wire.FieldsOf(new(*order.Module), "Hdl", "AdminHdl"),
		wire.FieldsOf(new(*payment.Module), "Hdl"),
		initGinxServer)
	return new(App), nil
}
