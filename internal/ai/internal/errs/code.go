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

import (
	"errors"
	"fmt"
)

// ErrBackendUnavailable 推理服务连不上，或者超时
var ErrBackendUnavailable = errors.New("推理服务不可用")

type BackendUnavailableError struct {
	Cause error
}

func (e *BackendUnavailableError) Error() string {
	return fmt.Sprintf("Ollama request failed: %v", e.Cause)
}

func (e *BackendUnavailableError) Unwrap() error {
	return e.Cause
}

func (e *BackendUnavailableError) Is(target error) bool {
	return target == ErrBackendUnavailable
}

// BackendError 推理服务返回了非 200 的响应
type BackendError struct {
	StatusCode int
	// 优先是 JSON 里面的 error 字段，解析不了就是原始的响应体
	Detail string
}

func (e *BackendError) Error() string {
	return fmt.Sprintf("Ollama HTTP %d: %s", e.StatusCode, e.Detail)
}
