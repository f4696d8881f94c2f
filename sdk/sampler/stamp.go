// Copyright 2025 Zintix Labs
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package sampler 提供 crash 假資料所需的各種取樣器。
//
// 本檔案 (stamp.go) 實作 epoch 毫秒時間戳取樣。
package sampler

import (
	"time"

	"github.com/zintix-labs/crashlab/errs"
	"github.com/zintix-labs/crashlab/sdk/core"
)

// DefaultWindow 預設時間窗長度：7 天。
const DefaultWindow = 7 * 24 * time.Hour

// StampInWindow 回傳 [startMs, endMs]（雙端含）的均勻 epoch 毫秒時間戳。
//
// startMs > endMs 屬呼叫端錯誤（Warn 級），立即回報、不重試。
func StampInWindow(c *core.Core, startMs, endMs int64) (int64, error) {
	if startMs > endMs {
		return 0, errs.Warnf("timestamp window inverted: start=%d > end=%d", startMs, endMs)
	}
	return c.Int64InRange(startMs, endMs), nil
}

// Stamp 以預設時間窗取樣：end = 呼叫當下，start = 7 天前。
//
// 「當下」是在每次呼叫時解析的：相隔很久的兩次無參呼叫會觀察到
// 稍微不同的 now，單一行程內可忽略不計。
func Stamp(c *core.Core) int64 {
	end := time.Now()
	start := end.Add(-DefaultWindow)
	// 窗永不顛倒，錯誤分支到不了
	v, _ := StampInWindow(c, start.UnixMilli(), end.UnixMilli())
	return v
}
