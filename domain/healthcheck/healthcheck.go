package healthcheck

import "github.com/mintora/goapi/base/ctx"

type HealthCheckRepo interface {
	PingDB(context ctx.Ctx) error
}

type HealthCheckUsecase interface {
	Check(context ctx.Ctx) error
}
