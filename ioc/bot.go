package ioc

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/core/elog"
)

func InitBotAPI() *tgbotapi.BotAPI {
	token := econf.GetString("telegram.token")
	if token == "" {
		panic("缺少 Telegram 机器人 token，请设置 TELEGRAM_BOT_TOKEN 或者 telegram.token")
	}
	endpoint := econf.GetString("telegram.apiEndpoint")
	if endpoint == "" {
		endpoint = tgbotapi.APIEndpoint
	}
	api, err := tgbotapi.NewBotAPIWithAPIEndpoint(token, endpoint)
	if err != nil {
		panic(err)
	}
	api.Debug = econf.GetBool("telegram.debug")
	elog.DefaultLogger.Info("Telegram 机器人初始化完成", elog.String("username", api.Self.UserName))
	return api
}
