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

package domain

import (
	"strconv"
	"strings"
)

const (
	CallbackPrefix = "rate"
	callbackSep    = "|"
)

// MakeToken 用 chat 和机器人回答的消息 ID 拼出来，同一个 chat 里面消息 ID 不会重复
func MakeToken(chatID int64, messageID int) string {
	return strconv.FormatInt(chatID, 10) + ":" + strconv.Itoa(messageID)
}

// CallbackData 评分按钮上携带的数据 rate|<token>|<rating>
func CallbackData(token string, r Rating) string {
	return CallbackPrefix + callbackSep + token + callbackSep + strconv.Itoa(int(r))
}

func IsRatingCallback(payload string) bool {
	return strings.HasPrefix(payload, CallbackPrefix+callbackSep)
}

// ParseCallback 只校验结构，不校验评分的取值
func ParseCallback(payload string) (token string, rating string, ok bool) {
	parts := strings.Split(payload, callbackSep)
	if len(parts) != 3 || parts[0] != CallbackPrefix {
		return "", "", false
	}
	return parts[1], parts[2], true
}
