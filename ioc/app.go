package ioc

import (
	"github.com/ecodeclub/edubot/internal/chat"
	"github.com/gotomicro/ego/task/ecron"
	"github.com/gotomicro/ego/task/ejob"
)

type App struct {
	Bot   *chat.Bot
	Admin AdminServer
	Crons []ecron.Ecron
	Jobs  []ejob.Ejob
}
