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

// Package dto 定義對外輸出的資料結構。
//
// 欄位名稱與真實站台的回應逐字相同：下游解析器是對真實 API 寫的，
// 結構上必須無法分辨真假 payload。
//
// timestamp 的有無以「兩種明確的紀錄型別」表達，而不是單一型別掛
// nullable 欄位：分頁歷史帶 timestamp，recent 清單不帶，建構後不再變動。
package dto

// HistoryRecord 分頁歷史中的單筆遊戲紀錄（帶 timestamp）。
type HistoryRecord struct {
	GameID     int     `json:"gameId"`     // 遊戲編號
	CrashPoint float64 `json:"crashPoint"` // 爆點倍數，恰好 2 位小數
	Hash       string  `json:"hash"`       // "0x" + 64 小寫 hex
	Timestamp  int64   `json:"timestamp"`  // epoch 毫秒
}

// RecentRecord recent 清單中的單筆遊戲紀錄（不帶 timestamp）。
type RecentRecord struct {
	GameID     int     `json:"gameId"`
	CrashPoint float64 `json:"crashPoint"`
	Hash       string  `json:"hash"`
}

// PageData 分頁歷史的 data 區塊。
//
// 不變量：len(Items) == max(0, min(PageSize, Total-(Page-1)*PageSize))。
type PageData struct {
	Items    []HistoryRecord `json:"items"`
	Total    int             `json:"total"`
	Page     int             `json:"page"`
	PageSize int             `json:"pageSize"`
}
