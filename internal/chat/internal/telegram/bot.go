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

package telegram

import (
	"context"
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/gotomicro/ego/core/elog"
	"golang.org/x/sync/semaphore"
)

// UpdateSource *tgbotapi.BotAPI 实现了这个接口
type UpdateSource interface {
	GetUpdatesChan(config tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel
	StopReceivingUpdates()
}

type UpdateHandler interface {
	Handle(ctx context.Context, update tgbotapi.Update)
}

// Bot 长轮询拉取消息，每条消息一个 goroutine，最多 maxConcurrency 个同时在处理
type Bot struct {
	source  UpdateSource
	handler UpdateHandler
	sem     *semaphore.Weighted
	wg      sync.WaitGroup
	timeout int
	cancel  context.CancelFunc
	logger  *elog.Component
}

func NewBot(source UpdateSource, handler UpdateHandler, maxConcurrency int64) *Bot {
	return &Bot{
		source:  source,
		handler: handler,
		sem:     semaphore.NewWeighted(maxConcurrency),
		timeout: 60,
		logger:  elog.DefaultLogger,
	}
}

// Start 不会阻塞
func (b *Bot) Start(ctx context.Context) error {
	ctx, b.cancel = context.WithCancel(ctx)
	cfg := tgbotapi.NewUpdate(0)
	cfg.Timeout = b.timeout
	updates := b.source.GetUpdatesChan(cfg)
	b.wg.Add(1)
	go func() {
		defer b.wg.Done()
		b.loop(ctx, updates)
	}()
	b.logger.Info("机器人开始接收消息")
	return nil
}

func (b *Bot) loop(ctx context.Context, updates tgbotapi.UpdatesChannel) {
	for {
		select {
		case <-ctx.Done():
			return
		case update, ok := <-updates:
			if !ok {
				return
			}
			if err := b.sem.Acquire(ctx, 1); err != nil {
				return
			}
			b.wg.Add(1)
			go func() {
				defer func() {
					b.sem.Release(1)
					b.wg.Done()
				}()
				// 停止接收之后，正在处理的消息还是要处理完
				b.handler.Handle(context.WithoutCancel(ctx), update)
			}()
		}
	}
}

// Stop 等正在处理的消息都处理完再返回
func (b *Bot) Stop() {
	b.source.StopReceivingUpdates()
	if b.cancel != nil {
		b.cancel()
	}
	b.wg.Wait()
	b.logger.Info("机器人已停止")
}
