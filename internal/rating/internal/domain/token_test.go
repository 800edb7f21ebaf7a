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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMakeToken(t *testing.T) {
	assert.Equal(t, "42:7", MakeToken(42, 7))
	assert.Equal(t, MakeToken(100, 55), MakeToken(100, 55))
	assert.Equal(t, "-1001234:9", MakeToken(-1001234, 9))
	assert.Equal(t, "100:55", Interaction{ChatID: 100, MessageID: 55}.Token())
}

func TestParseCallback(t *testing.T) {
	testCases := []struct {
		name      string
		payload   string
		wantToken string
		wantRate  string
		wantOK    bool
	}{
		{
			name:      "正常",
			payload:   "rate|100:55|5",
			wantToken: "100:55",
			wantRate:  "5",
			wantOK:    true,
		},
		{
			name:      "评分为空也算结构合法",
			payload:   "rate|100:55|",
			wantToken: "100:55",
			wantOK:    true,
		},
		{
			name:    "字段太少",
			payload: "rate|100:55",
		},
		{
			name:    "字段太多",
			payload: "rate|100:55|5|1",
		},
		{
			name:    "前缀不对",
			payload: "vote|100:55|5",
		},
		{
			name: "空",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			token, rate, ok := ParseCallback(tc.payload)
			assert.Equal(t, tc.wantOK, ok)
			assert.Equal(t, tc.wantToken, token)
			assert.Equal(t, tc.wantRate, rate)
		})
	}
}

func TestCallbackData(t *testing.T) {
	data := CallbackData("100:55", 3)
	assert.Equal(t, "rate|100:55|3", data)
	assert.True(t, IsRatingCallback(data))
	assert.False(t, IsRatingCallback("other|x"))
	token, rate, ok := ParseCallback(data)
	assert.True(t, ok)
	assert.Equal(t, "100:55", token)
	assert.Equal(t, "3", rate)
}

func TestParseRating(t *testing.T) {
	testCases := []struct {
		input  string
		want   Rating
		wantOK bool
	}{
		{input: "1", want: 1, wantOK: true},
		{input: "3", want: 3, wantOK: true},
		{input: "5", want: 5, wantOK: true},
		{input: "0"},
		{input: "6"},
		{input: "abc"},
		{input: ""},
		{input: "05"},
		{input: " 5"},
		{input: "-1"},
	}
	for _, tc := range testCases {
		t.Run("输入"+tc.input, func(t *testing.T) {
			r, ok := ParseRating(tc.input)
			assert.Equal(t, tc.wantOK, ok)
			assert.Equal(t, tc.want, r)
			assert.Equal(t, tc.wantOK, r.Valid())
		})
	}
}
