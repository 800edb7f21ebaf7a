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

package errs

import "errors"

var (
	// ErrMalformedCallback 回调数据的结构不对，不会去查 token
	ErrMalformedCallback = errors.New("评分回调数据格式错误")
	// ErrInvalidRating 评分不在 1-5 之间，不会消费 token
	ErrInvalidRating = errors.New("评分必须在 1 到 5 之间")
	// ErrUnknownToken 已经评过分了，或者服务重启过
	ErrUnknownToken = errors.New("找不到等待评分的回答")
	// ErrRated 等待评分的记录不能带评分
	ErrRated = errors.New("记录已经有评分")
	// ErrUnrated 写入账本的记录必须带评分
	ErrUnrated = errors.New("记录没有合法的评分")
)
