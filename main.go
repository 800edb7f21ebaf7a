package main

import (
	"context"

	"github.com/ecodeclub/edubot/ioc"
	"github.com/gotomicro/ego"
	"github.com/gotomicro/ego/core/eflag"
	"github.com/gotomicro/ego/core/elog"
	"github.com/gotomicro/ego/server/egin"
	"github.com/gotomicro/ego/server/egovernor"
	"go.opentelemetry.io/otel/sdk/trace"
)

// export TELEGRAM_BOT_TOKEN=xxx
// go run main.go --config=config/config.yaml
// 导出脱敏数据: go run main.go --config=config/config.yaml --job=export_ratings
func main() {
	// 先触发初始化
	egoApp := ego.New()
	ioc.LoadEnv()
	tp := ioc.InitZipkinTracer()
	defer func(tp *trace.TracerProvider) {
		err := tp.Shutdown(context.Background())
		if err != nil {
			elog.Error("Shutdown zipkinTracer", elog.FieldErr(err))
		}
	}(tp)
	app, err := ioc.InitApp()
	if err != nil {
		panic(err)
	}
	// 跑离线任务的时候不接收消息
	if eflag.String("job") == "" {
		err = app.Bot.Start(context.Background())
		if err != nil {
			panic(err)
		}
		defer app.Bot.Stop()
	}
	err = egoApp.
		Serve(
			egovernor.Load("server.governor").Build(),
			(*egin.Component)(app.Admin)).
		Cron(app.Crons...).
		Job(app.Jobs...).
		Run()
	if err != nil {
		elog.DefaultLogger.Error("App运行错误", elog.FieldErr(err))
	}
}
