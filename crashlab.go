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

// Package crashlab 提供假 crash-game 歷史資料產生器的「組裝入口（assembler）」
// 與「運行入口（runtime entry）」。
//
// 它把三個必需的地基組裝在一起：
//  1. GenProfile：資料形狀設定（編號錨點、爆點級距、時間窗、選層策略）。
//  2. PRNGFactory：亂數核心工廠，保證可重現（reproducible）與可審計（auditable）。
//  3. Samplers：各欄位的取樣器（sdk/sampler），一律以注入的 Core 取樣。
//
// 典型使用情境：
//   - CLI（cmd/gen）：產生一頁歷史或一份 recent 清單，寫成 JSON 檔。
//   - Mock server（cmd/svr）：以 GenPool 對外提供與真實站台同形狀的 HTTP 回應。
//
// 注意：產生器不連任何真實遊戲服務，也不在多次呼叫間保存狀態；
// 每個封裝都是當場組裝、寫出、丟棄。
package crashlab

import (
	"crypto/rand"
	"math"
	"math/big"
	"time"

	"github.com/zintix-labs/crashlab/dto"
	"github.com/zintix-labs/crashlab/errs"
	"github.com/zintix-labs/crashlab/sdk/core"
	"github.com/zintix-labs/crashlab/sdk/sampler"
	"github.com/zintix-labs/crashlab/spec"
	"github.com/zintix-labs/crashlab/stats"
)

// Generator 是產生假紀錄的最小單位。
//
// 一個 Generator 持有自己的 Core，單一 Generator 不支援併發呼叫；
// 併發場景（mock server）請用 GenPool，每個請求独占一台。
type Generator struct {
	gp       *spec.GenProfile
	cf       core.PRNGFactory
	c        *core.Core
	tt       *sampler.TierTable  // corrected 模式才建表，否則為 nil
	rec      *stats.TierRecorder // EnableStats 後才紀錄，否則為 nil
	initSeed int64
}

// New 建立 Generator，seed 由 crypto/rand 產生。
//
// 參數要求（是合約的一部分）：
//   - cf 不能為 nil：沒有 RNG 工廠就無法建立可重現的核心。
//   - gp 可為 nil：退回內建 bc 風格 profile。
func New(cf core.PRNGFactory, gp *spec.GenProfile) (*Generator, error) {
	seed, err := rand.Int(rand.Reader, big.NewInt(math.MaxInt64))
	if err != nil {
		return nil, errs.Wrap(err, "generate seed failed")
	}
	return NewWithSeed(cf, gp, seed.Int64())
}

// NewWithSeed 與 New 相同，但由呼叫端指定初始 seed。
//
// 使用情境：可重現的測試——同一份 profile + 同一個 seed，
// 必須產生一致的假資料序列。
func NewWithSeed(cf core.PRNGFactory, gp *spec.GenProfile, seed int64) (*Generator, error) {
	if cf == nil {
		return nil, errs.NewFatal("prng factory required")
	}
	if gp == nil {
		gp = spec.Default()
	}

	g := &Generator{
		gp:       gp,
		cf:       cf,
		c:        core.New(cf.New(seed)),
		initSeed: seed,
	}
	if gp.Corrected {
		g.tt = sampler.BuildTierTable(gp.Tiers)
	}
	return g, nil
}

// Seed 回傳初始 seed（追溯/重現用）。
func (g *Generator) Seed() int64 {
	return g.initSeed
}

// Profile 回傳產生器使用的設定（唯讀，請勿修改）。
func (g *Generator) Profile() *spec.GenProfile {
	return g.gp
}

// EnableStats 掛上爆點紀錄員，之後產生的每一筆都會進分布統計。
func (g *Generator) EnableStats() {
	g.rec = stats.NewTierRecorder(g.gp.ProfileName)
}

// Report 回傳目前累積的分布報表；未啟用統計時回傳 nil。
func (g *Generator) Report() *stats.TierReport {
	if g.rec == nil {
		return nil
	}
	return g.rec.Done()
}

// SnapshotCore 取得亂數核心當下的內部狀態（審計用）。
func (g *Generator) SnapshotCore() ([]byte, error) {
	return g.c.Snapshot()
}

// HistoryRecord 產生一筆分頁歷史紀錄（帶 timestamp）。
func (g *Generator) HistoryRecord() dto.HistoryRecord {
	return dto.HistoryRecord{
		GameID:     sampler.GameID(g.c, g.gp.IDBase, g.gp.IDSpan),
		CrashPoint: g.crashPoint(),
		Hash:       sampler.GameHash(g.c),
		Timestamp:  g.stamp(),
	}
}

// RecentRecord 產生一筆 recent 紀錄（不帶 timestamp）。
func (g *Generator) RecentRecord() dto.RecentRecord {
	return dto.RecentRecord{
		GameID:     sampler.GameID(g.c, g.gp.IDBase, g.gp.IDSpan),
		CrashPoint: g.crashPoint(),
		Hash:       sampler.GameHash(g.c),
	}
}

// Recent 產生 count 筆 recent 紀錄並包進回應封裝。
//
// count < 0 屬呼叫端錯誤（Warn 級）。count == 0 合法，回傳空清單。
func (g *Generator) Recent(count int) (*dto.RecentEnvelope, error) {
	if count < 0 {
		return nil, errs.NewWarn("count must >= 0")
	}
	items := make([]dto.RecentRecord, 0, count)
	for i := 0; i < count; i++ {
		items = append(items, g.RecentRecord())
	}
	return dto.NewRecentEnvelope(items), nil
}

// History 產生一頁歷史並包進回應封裝（單次呼叫的捷徑）。
//
// 需要跨頁一致的 total 時請改用 NewDataset 並重用同一個 Dataset。
func (g *Generator) History(count, page, pageSize int) (*dto.HistoryEnvelope, error) {
	ds, err := g.NewDataset(count, pageSize)
	if err != nil {
		return nil, err
	}
	pd, err := ds.Page(page)
	if err != nil {
		return nil, err
	}
	return dto.NewHistoryEnvelope(pd), nil
}

// crashPoint 依 profile 的選層策略抽一個爆點，並餵給紀錄員（若有）。
func (g *Generator) crashPoint() float64 {
	var v float64
	if g.tt != nil {
		v = sampler.CrashPointFromTable(g.c, g.tt)
	} else {
		v = sampler.CrashPoint(g.c, g.gp.Tiers)
	}
	if g.rec != nil {
		g.rec.Record(v)
	}
	return v
}

// stamp 以 profile 的時間窗取一個 epoch 毫秒時間戳。
//
// 「當下」逐筆解析：與歷史工具一致，單一行程內差異可忽略。
func (g *Generator) stamp() int64 {
	end := time.Now()
	start := end.Add(-time.Duration(g.gp.WindowDays) * 24 * time.Hour)
	// 窗永不顛倒，錯誤分支到不了
	v, _ := sampler.StampInWindow(g.c, start.UnixMilli(), end.UnixMilli())
	return v
}
