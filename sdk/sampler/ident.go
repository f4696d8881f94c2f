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
// 本檔案 (ident.go) 實作遊戲編號取樣。
package sampler

import "github.com/zintix-labs/crashlab/sdk/core"

// 預設編號錨點：讓假資料落在目標站台當下的真實編號區段附近。
const (
	DefaultIDBase = 7_900_000
	DefaultIDSpan = 100_000
)

// GameID 回傳 [base, base+span) 的均勻遊戲編號。
//
// span <= 0 屬退化區間，直接回傳 base（不視為錯誤、不做額外驗證）。
// 不保證跨筆唯一——假資料允許編號碰撞，與真實 API 的行為無關。
func GameID(c *core.Core, base, span int) int {
	if span <= 0 {
		return base
	}
	return base + c.IntN(span)
}
