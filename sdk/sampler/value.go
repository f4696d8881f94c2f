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
// 本檔案 (value.go) 實作 crash point（爆點倍數）取樣。
//
// 模型：三層級距（magnitude tiers）——
//   - Tier A: [1.00, 3.00)   名目機率 80%
//   - Tier B: [3.00, 10.00)  名目機率 15%
//   - Tier C: [10.00, 100.00) 名目機率 5%
//
// 層級選完後在該層內做均勻抽樣，並四捨五入到小數點後 2 位。
//
// 選層策略有兩種，差異是**合約的一部分**：
//
//  1. CrashPoint（cascade，預設）：逐層獨立擲骰。
//     先抽 u1 ∈ [0,1)，u1 < 0.80 選 A；否則再抽一個**獨立的** u2，
//     u2 < 0.95 選 B，否則選 C。因為第二次抽樣獨立於第一次，
//     長期實現頻率約為 80% / 19% / 1%，而不是名目上的 80% / 15% / 5%。
//     歷史消費端是針對這個分布形狀校準的，需要逐位相容時必須用這一個。
//
//  2. CrashPointFromTable（corrected）：單次抽樣對照累積門檻表（tiertable.go），
//     實現頻率即名目頻率 80% / 15% / 5%。這是刻意的行為變更，
//     必須由呼叫端明確選用（profile 的 corrected 旗標），絕不默默替換。
package sampler

import (
	"math"

	"github.com/zintix-labs/crashlab/sdk/core"
)

// Tier 描述一個爆點級距：在 [Lo, Hi) 內均勻取值，Weight 為名目權重。
type Tier struct {
	Lo     float64 `yaml:"lo" json:"lo"`
	Hi     float64 `yaml:"hi" json:"hi"`
	Weight int     `yaml:"weight" json:"weight"`
}

// DefaultTiers 內建的 bc 風格三層模型。
//
// 請勿修改預設值：cascade 選層的 0.80 / 0.95 門檻由這組權重推出，
// 改動會同時改變 legacy 與 corrected 兩種模式的分布形狀。
func DefaultTiers() []Tier {
	return []Tier{
		{Lo: 1.00, Hi: 3.00, Weight: 80},
		{Lo: 3.00, Hi: 10.00, Weight: 15},
		{Lo: 10.00, Hi: 100.00, Weight: 5},
	}
}

// CrashPoint 以 cascade（逐層獨立擲骰）策略抽一個爆點。
//
// 選層流程（與累積門檻的對應）：
//
//	對第 i 層（最後一層除外），抽一個新的 u ∈ [0,1)，
//	u < cum_i（該層名目累積機率）即選定第 i 層；否則進入下一層。
//	所有門檻都沒命中時落到最後一層。
//
// 對預設三層模型，門檻即 0.80 與 0.95，完整重現歷史工具的兩段式抽樣
// （實現頻率 ≈ 80/19/1）。空的 tiers 會 panic（組裝期錯誤，不屬於取樣路徑）。
func CrashPoint(c *core.Core, tiers []Tier) float64 {
	if len(tiers) == 0 {
		panic("CrashPoint: empty tiers")
	}

	total := 0
	for _, t := range tiers {
		if t.Weight < 0 {
			panic("CrashPoint: negative weight")
		}
		total += t.Weight
	}
	if total == 0 {
		panic("CrashPoint: all weights are zero")
	}

	// 逐層擲骰：每一層用一個「新的」均勻亂數對照該層的累積門檻。
	// 這個結構（而非單次抽樣）正是實現頻率偏離名目頻率的原因，
	// 需要保持逐位相容時不可改寫成單次抽樣。
	cum := 0
	idx := len(tiers) - 1
	for i := 0; i < len(tiers)-1; i++ {
		cum += tiers[i].Weight
		if c.Float64() < float64(cum)/float64(total) {
			idx = i
			break
		}
	}

	return Round2(c.Float64InRange(tiers[idx].Lo, tiers[idx].Hi))
}

// CrashPointFromTable 以單次抽樣對照累積門檻表抽一個爆點（corrected 模式）。
//
// 實現頻率等於名目頻率。表為空會 panic（組裝期錯誤）。
func CrashPointFromTable(c *core.Core, tt *TierTable) float64 {
	idx := tt.Pick(c)
	if idx < 0 {
		panic("CrashPointFromTable: empty tier table")
	}
	t := tt.Tiers[idx]
	return Round2(c.Float64InRange(t.Lo, t.Hi))
}

// Round2 四捨五入到小數點後 2 位。
//
// 合約：所有對外輸出的爆點都恰好 2 位小數（資料模型不變量）。
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
