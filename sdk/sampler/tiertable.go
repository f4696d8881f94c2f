// Package sampler 提供 crash 假資料所需的各種取樣器。
//
// 本檔案 (tiertable.go) 實作「單次抽樣」的累積門檻選層表。
//
// 演算法原理：
//   - 把各層名目權重累加成遞增的整數門檻 [w0, w0+w1, ..., total)。
//   - 抽一個 [0,total) 的整數，線性掃描第一個大於它的門檻即為選中層。
//
// 特性：
//   - 建表時間：O(N)。
//   - 抽樣時間：O(N)，層數固定為個位數，實務上與 O(1) 無異。
//   - 全整數運算，沒有浮點累積誤差（0.999... != 1.0 一類的問題）。
//
// 它是 cascade 選層（value.go / CrashPoint）的「修正版」替代品：
// 實現頻率嚴格等於名目頻率。兩者之間的切換是行為變更，由呼叫端明確決定。

package sampler

import (
	"math"

	"github.com/zintix-labs/crashlab/sdk/core"
)

// TierTable 是累積門檻選層表。
//
// 結構欄位說明：
// - Tiers: 原始層定義（含上下界與名目權重），建表後唯讀。
// - Bounds: 遞增的整數累積門檻，len(Bounds) == len(Tiers)，最末項 == Total。
// - Total: 權重總和，抽樣範圍 [0, Total)。
type TierTable struct {
	Tiers  []Tier
	Bounds []int
	Total  int
}

// BuildTierTable 根據層定義建立 TierTable。
//
// 輸入檢查（與 cascade 的組裝期合約一致）：
// - 權重為負 panic。
// - 權重總和為零 panic。
// - 權重為零的層允許存在，但永遠抽不中。
// - 權重總和超出 int 範圍 panic（防溢位，與建表期檢查一致）。
func BuildTierTable(tiers []Tier) *TierTable {
	if len(tiers) == 0 {
		return &TierTable{Tiers: []Tier{}, Bounds: []int{}, Total: 0}
	}

	total := uint64(0)
	for _, t := range tiers {
		if t.Weight < 0 {
			panic("TierTable: negative weight encountered")
		}
		if total > uint64(math.MaxInt)-uint64(t.Weight) {
			panic("TierTable: total weight overflow int range")
		}
		total += uint64(t.Weight)
	}
	if total == 0 {
		panic("TierTable: all weights are zero")
	}

	bounds := make([]int, len(tiers))
	cum := 0
	for i, t := range tiers {
		cum += t.Weight
		bounds[i] = cum
	}

	out := make([]Tier, len(tiers))
	copy(out, tiers)

	return &TierTable{
		Tiers:  out,
		Bounds: bounds,
		Total:  int(total),
	}
}

// Pick 從 TierTable 中抽取一個層索引，若表為空則回傳 -1。
//
// 抽樣步驟：
// 1) 抽 u = IntN(Total)，u ∈ [0, Total)。
// 2) 線性掃描第一個 Bounds[i] > u 的 i 即為選中層。
//
// 權重為零的層其門檻與前一層相同，u 永遠不會落在其中，故永不中選。
func (tt *TierTable) Pick(c *core.Core) int {
	if tt.Total == 0 {
		return -1
	}
	u := c.IntN(tt.Total)
	for i, b := range tt.Bounds {
		if u < b {
			return i
		}
	}
	// u < Total 且最末項 == Total，理論上到不了這裡
	return len(tt.Bounds) - 1
}
