//go:build wireinject

package ioc

import (
	"github.com/ecodeclub/edubot/internal/ai"
	"github.com/ecodeclub/edubot/internal/chat"
	"github.com/ecodeclub/edubot/internal/rating"
	"github.com/google/wire"
)

func InitApp() (*App, error) {
	wire.Build(wire.Struct(new(App), "*"),
		InitBotAPI,
		InitLedgerDAO,
		ai.InitModule,
		rating.InitModule,
		chat.InitModule,
		wire.FieldsOf(new(*rating.Module), "AdminHdl", "SweepJob", "ExportJob"),
		wire.FieldsOf(new(*chat.Module), "Bot"),
		InitAdminServer,
		initCronJobs,
		initJobs,
	)
	return new(App), nil
}
