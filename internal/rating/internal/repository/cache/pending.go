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

package cache

import (
	"time"

	"github.com/ecodeclub/edubot/internal/rating/internal/domain"
	"github.com/ecodeclub/ekit/syncx"
)

// PendingCache 等待评分的回答，只在进程内，重启就丢了
type PendingCache interface {
	// Set token 冲突的时候后写的覆盖前面的
	Set(token string, i domain.Interaction)
	// Take 取出来的同时删掉，同一个 token 并发 Take 只有一个能拿到
	Take(token string) (domain.Interaction, bool)
	Len() int
	// EvictBefore 删掉 Ctime 早于 t 的记录，返回删掉的个数
	EvictBefore(t time.Time) int
}

type MemoryPendingCache struct {
	entries syncx.Map[string, domain.Interaction]
}

func NewMemoryPendingCache() PendingCache {
	return &MemoryPendingCache{}
}

func (c *MemoryPendingCache) Set(token string, i domain.Interaction) {
	c.entries.Store(token, i)
}

func (c *MemoryPendingCache) Take(token string) (domain.Interaction, bool) {
	return c.entries.LoadAndDelete(token)
}

func (c *MemoryPendingCache) Len() int {
	cnt := 0
	c.entries.Range(func(key string, value domain.Interaction) bool {
		cnt++
		return true
	})
	return cnt
}

func (c *MemoryPendingCache) EvictBefore(t time.Time) int {
	cnt := 0
	c.entries.Range(func(key string, value domain.Interaction) bool {
		if value.Ctime.Before(t) {
			if _, ok := c.entries.LoadAndDelete(key); ok {
				cnt++
			}
		}
		return true
	})
	return cnt
}
