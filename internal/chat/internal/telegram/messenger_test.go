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
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const testToken = "123:abc"

// fakeBotAPI 记录每次调用的方法和表单参数
type fakeBotAPI struct {
	mu    sync.Mutex
	calls []fakeCall
}

type fakeCall struct {
	method string
	params map[string]string
}

func (f *fakeBotAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if strings.HasPrefix(r.URL.Path, "/file/") {
		_, _ = w.Write([]byte("jpeg-bytes"))
		return
	}
	_ = r.ParseForm()
	method := r.URL.Path[strings.LastIndex(r.URL.Path, "/")+1:]
	params := make(map[string]string, len(r.Form))
	for k := range r.Form {
		params[k] = r.Form.Get(k)
	}
	f.mu.Lock()
	f.calls = append(f.calls, fakeCall{method: method, params: params})
	f.mu.Unlock()

	var result string
	switch method {
	case "getMe":
		result = `{"id":1,"is_bot":true,"first_name":"edubot","username":"edubot_bot"}`
	case "sendMessage":
		result = `{"message_id":55,"date":0,"chat":{"id":100,"type":"private"},"text":"ok"}`
	case "getFile":
		result = `{"file_id":"photo-1","file_path":"photos/file_1.jpg"}`
	default:
		result = `true`
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(`{"ok":true,"result":` + result + `}`))
}

func (f *fakeBotAPI) last() fakeCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[len(f.calls)-1]
}

type MessengerTestSuite struct {
	suite.Suite
	fake      *fakeBotAPI
	server    *httptest.Server
	messenger *Messenger
}

func TestMessenger(t *testing.T) {
	suite.Run(t, new(MessengerTestSuite))
}

func (s *MessengerTestSuite) SetupTest() {
	s.fake = &fakeBotAPI{}
	s.server = httptest.NewServer(s.fake)
	api, err := tgbotapi.NewBotAPIWithClient(testToken, s.server.URL+"/bot%s/%s", s.server.Client())
	require.NoError(s.T(), err)
	s.messenger = NewMessenger(api, resty.New())
	s.messenger.fileEndpoint = s.server.URL + "/file/bot%s/%s"
}

func (s *MessengerTestSuite) TearDownTest() {
	s.server.Close()
}

func (s *MessengerTestSuite) TestReply() {
	id, err := s.messenger.Reply(context.Background(), 100, "4")
	require.NoError(s.T(), err)
	assert.Equal(s.T(), 55, id)
	call := s.fake.last()
	assert.Equal(s.T(), "sendMessage", call.method)
	assert.Equal(s.T(), "100", call.params["chat_id"])
	assert.Equal(s.T(), "4", call.params["text"])
}

func (s *MessengerTestSuite) TestAskRating() {
	err := s.messenger.AskRating(context.Background(), 100, "100:55")
	require.NoError(s.T(), err)
	call := s.fake.last()
	assert.Equal(s.T(), "sendMessage", call.method)
	assert.Equal(s.T(), RatingPrompt, call.params["text"])

	var markup tgbotapi.InlineKeyboardMarkup
	require.NoError(s.T(), json.Unmarshal([]byte(call.params["reply_markup"]), &markup))
	require.Len(s.T(), markup.InlineKeyboard, 1)
	row := markup.InlineKeyboard[0]
	require.Len(s.T(), row, 5)
	for i, btn := range row {
		assert.Equal(s.T(), string(rune('1'+i)), btn.Text)
		require.NotNil(s.T(), btn.CallbackData)
		assert.Equal(s.T(), "rate|100:55|"+string(rune('1'+i)), *btn.CallbackData)
	}
}

func (s *MessengerTestSuite) TestTyping() {
	require.NoError(s.T(), s.messenger.Typing(context.Background(), 100))
	call := s.fake.last()
	assert.Equal(s.T(), "sendChatAction", call.method)
	assert.Equal(s.T(), "typing", call.params["action"])
}

func (s *MessengerTestSuite) TestEditText() {
	require.NoError(s.T(), s.messenger.EditText(context.Background(), 100, 56, "Спасибо! Оценка: 5/5 ✅"))
	call := s.fake.last()
	assert.Equal(s.T(), "editMessageText", call.method)
	assert.Equal(s.T(), "56", call.params["message_id"])
	assert.Equal(s.T(), "Спасибо! Оценка: 5/5 ✅", call.params["text"])
}

func (s *MessengerTestSuite) TestAnswerCallback() {
	require.NoError(s.T(), s.messenger.AnswerCallback(context.Background(), "cb-1"))
	call := s.fake.last()
	assert.Equal(s.T(), "answerCallbackQuery", call.method)
	assert.Equal(s.T(), "cb-1", call.params["callback_query_id"])
}

func (s *MessengerTestSuite) TestDownload() {
	data, err := s.messenger.Download(context.Background(), "photo-1")
	require.NoError(s.T(), err)
	assert.Equal(s.T(), []byte("jpeg-bytes"), data)
	call := s.fake.last()
	assert.Equal(s.T(), "getFile", call.method)
	assert.Equal(s.T(), "photo-1", call.params["file_id"])
}

func (s *MessengerTestSuite) TestDownloadErrorHidesToken() {
	// 没有人监听的端口
	s.messenger.fileEndpoint = "http://127.0.0.1:1/file/bot%s/%s"
	_, err := s.messenger.Download(context.Background(), "photo-1")
	require.Error(s.T(), err)
	assert.NotContains(s.T(), err.Error(), testToken)
	assert.Contains(s.T(), err.Error(), "<token>")
}

func (s *MessengerTestSuite) TestRequestErrorHidesToken() {
	s.server.Close()
	testCases := []struct {
		name string
		call func(ctx context.Context) error
	}{
		{
			name: "Reply",
			call: func(ctx context.Context) error {
				_, err := s.messenger.Reply(ctx, 100, "4")
				return err
			},
		},
		{
			name: "AskRating",
			call: func(ctx context.Context) error {
				return s.messenger.AskRating(ctx, 100, "100:55")
			},
		},
		{
			name: "Typing",
			call: func(ctx context.Context) error {
				return s.messenger.Typing(ctx, 100)
			},
		},
		{
			name: "EditText",
			call: func(ctx context.Context) error {
				return s.messenger.EditText(ctx, 100, 56, "ok")
			},
		},
		{
			name: "AnswerCallback",
			call: func(ctx context.Context) error {
				return s.messenger.AnswerCallback(ctx, "cb-1")
			},
		},
		{
			name: "Download",
			call: func(ctx context.Context) error {
				_, err := s.messenger.Download(ctx, "photo-1")
				return err
			},
		},
	}
	for _, tc := range testCases {
		s.T().Run(tc.name, func(t *testing.T) {
			err := tc.call(context.Background())
			require.Error(t, err)
			assert.NotContains(t, err.Error(), testToken)
		})
	}
}

func TestRatingKeyboard(t *testing.T) {
	markup := RatingKeyboard("42:7")
	require.Len(t, markup.InlineKeyboard, 1)
	require.Len(t, markup.InlineKeyboard[0], 5)
	assert.Equal(t, "1", markup.InlineKeyboard[0][0].Text)
	assert.Equal(t, "rate|42:7|1", *markup.InlineKeyboard[0][0].CallbackData)
	assert.Equal(t, "rate|42:7|5", *markup.InlineKeyboard[0][4].CallbackData)
}
