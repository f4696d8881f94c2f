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

package dto

import "time"

// Envelope 是外層回應結構，形狀模仿真實站台：
//
//	{ data, msg, code, success, timestamp, generated }
//
// generated 恆為 true，是 payload 唯一的「合成」標記——
// 其餘欄位對下游解析器而言必須與真實回應無法區分。
//
// Envelope 的 timestamp 是「封裝建構時間」，與紀錄內的 timestamp 無關。
type Envelope[T any] struct {
	Data      T      `json:"data"`
	Msg       string `json:"msg"`  // 成功時為空字串
	Code      int    `json:"code"` // 成功時為 200
	Success   bool   `json:"success"`
	Timestamp int64  `json:"timestamp"`
	Generated bool   `json:"generated"`
}

// HistoryEnvelope 分頁歷史回應。
type HistoryEnvelope = Envelope[*PageData]

// RecentEnvelope recent 清單回應（data 直接是紀錄陣列，無分頁中繼資料）。
type RecentEnvelope = Envelope[[]RecentRecord]

// NewHistoryEnvelope 以成功狀態包裝一頁歷史資料。
func NewHistoryEnvelope(pd *PageData) *HistoryEnvelope {
	return &HistoryEnvelope{
		Data:      pd,
		Msg:       "",
		Code:      200,
		Success:   true,
		Timestamp: time.Now().UnixMilli(),
		Generated: true,
	}
}

// ErrorEnvelope 失敗回應（data 恆為 null）。
type ErrorEnvelope = Envelope[any]

// NewErrorEnvelope 以失敗狀態包裝錯誤訊息。
//
// 下游前端用同一套 envelope 解析器吃成功與失敗回應，
// 所以錯誤也必須長成 {data:null, msg, code, success:false, ...}。
func NewErrorEnvelope(code int, msg string) *ErrorEnvelope {
	return &ErrorEnvelope{
		Data:      nil,
		Msg:       msg,
		Code:      code,
		Success:   false,
		Timestamp: time.Now().UnixMilli(),
		Generated: true,
	}
}

// NewRecentEnvelope 以成功狀態包裝 recent 清單。
//
// items 為 nil 時正規化成空陣列，序列化必須是 [] 而不是 null。
func NewRecentEnvelope(items []RecentRecord) *RecentEnvelope {
	if items == nil {
		items = []RecentRecord{}
	}
	return &RecentEnvelope{
		Data:      items,
		Msg:       "",
		Code:      200,
		Success:   true,
		Timestamp: time.Now().UnixMilli(),
		Generated: true,
	}
}
