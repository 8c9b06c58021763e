package ioc

import (
	"github.com/ecodeclub/greenshop/internal/email"
	"github.com/ecodeclub/greenshop/internal/email/aliyun"
	"github.com/gotomicro/ego/core/econf"
)

func InitEmailService() email.Service {
	type Config struct {
		AccessKeyID     string `yaml:"accessKeyID"`
		AccessKeySecret string `yaml:"accessKeySecret"`
		AccountName     string `yaml:"accountName"`
	}
	var cfg Config
	err := econf.UnmarshalKey("email", &cfg)
	if err != nil {
		panic(err)
	}
	svc, err := aliyun.NewAliyunDirectMailAPI(cfg.AccessKeyID, cfg.AccessKeySecret, cfg.AccountName)
	if err != nil {
		panic(err)
	}
	return svc
}

func emailFrom() string {
	return econf.GetString("email.from")
}
