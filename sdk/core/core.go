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

// Package core 提供 crashlab 的亂數核心。
//
// 所有 sampler 一律以注入的 *Core 取樣，不允許套件層級的全域亂數：
//   - 可重現：同一個 seed 必須產生同一串假資料（測試與回歸比對需要）。
//   - 可審計：Snapshot/Restore 允許保存與還原內部狀態。
//   - 無共享狀態：每個 Generator 持有自己的 Core，併發請求彼此獨立。
package core

// PRNG 定義 Core 所需的亂數來源，需同時支援取樣與狀態保存/還原。
type PRNG interface {
	RAND
	Restorable
}

// Restorable 定義可快照與還原的狀態介面。
type Restorable interface {
	// Snapshot 回傳可用於還原的序列化狀態。
	Snapshot() ([]byte, error)
	// Restore 依序列化狀態還原 PRNG 內部狀態。
	Restore([]byte) error
}

// RAND 定義核心亂數取樣能力。
//
// bounded 生成（IntN/Int64N）交由 PRNG 自己實作，
// 讓每個 PRNG 用最合適的無偏策略（乘法高位 + 拒絕採樣等）。
type RAND interface {
	// Uint64 回傳非負 uint64 亂數。
	Uint64() uint64
	// Float64 回傳 [0,1) 的浮點亂數。
	Float64() float64
	// IntN 回傳 [0,max) 的 int 亂數，若 max <= 0 回傳 -1。
	IntN(int) int
	// Int64N 回傳 [0,max) 的 int64 亂數，若 max <= 0 回傳 -1。
	Int64N(int64) int64
}

type PRNGFactory interface {
	// New 以指定 seed 建立新的 PRNG。
	//
	// 合約（很重要）：在同一個實作與同一個版本下，New(seed) 必須是「決定性」的——
	// 相同的 seed 必須產生相同的初始內部狀態與輸出序列。
	//
	// seed 的生命週期由 Generator 統一管理：外部未提供時由 crypto/rand 產生
	// baseSeed，後續所有衍生 Core 皆由 baseSeed 以固定算法派生子 seed。
	New(int64) PRNG
}

// DefaultPRNG 實作預設的 PRNGFactory（PCG64）。
type DefaultPRNG struct{}

// New 滿足合約
func (d *DefaultPRNG) New(seed int64) PRNG {
	return newPCG64WithSeed(seed)
}

func Default() *DefaultPRNG {
	return &DefaultPRNG{}
}

// Core 封裝 PRNG，並提供常用取樣與工具方法。
type Core struct {
	PRNG
}

// New 允許使用外部自實現的 PRNG 建立 Core。
func New(rng PRNG) *Core {
	return &Core{rng}
}

// Float64InRange 回傳 [lo, hi) 的均勻浮點亂數。
// lo >= hi 時直接回傳 lo（退化區間，不視為錯誤）。
func (c *Core) Float64InRange(lo, hi float64) float64 {
	if lo >= hi {
		return lo
	}
	return lo + c.Float64()*(hi-lo)
}

// Int64InRange 回傳 [lo, hi] 的均勻整數亂數（雙端含）。
// lo > hi 屬呼叫端錯誤，此處回傳 lo 作哨兵值，由邊界層負責驗證。
func (c *Core) Int64InRange(lo, hi int64) int64 {
	if lo >= hi {
		return lo
	}
	return lo + c.Int64N(hi-lo+1)
}
