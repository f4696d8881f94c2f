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

package crashlab

import (
	"encoding/json"
	"testing"

	"github.com/zintix-labs/crashlab/sdk/core"
	"github.com/zintix-labs/crashlab/spec"
)

func newTestGen(t *testing.T, seed int64) *Generator {
	t.Helper()
	g, err := NewWithSeed(core.Default(), nil, seed)
	if err != nil {
		t.Fatal(err)
	}
	return g
}

// TestNew_Contract 組裝合約
func TestNew_Contract(t *testing.T) {
	if _, err := NewWithSeed(nil, nil, 1); err == nil {
		t.Fatal("expected error for nil factory")
	}
	g, err := New(core.Default(), nil)
	if err != nil {
		t.Fatal(err)
	}
	if g.Profile().ProfileName != "bc-style" {
		t.Errorf("nil profile did not fall back to default: %q", g.Profile().ProfileName)
	}
}

// TestReproducibility 同 seed 同 profile 必須產生同一串紀錄
func TestReproducibility(t *testing.T) {
	a := newTestGen(t, 99)
	b := newTestGen(t, 99)
	for i := 0; i < 100; i++ {
		ra, rb := a.RecentRecord(), b.RecentRecord()
		if ra != rb {
			t.Fatalf("diverged at record %d: %+v vs %+v", i, ra, rb)
		}
	}
}

// TestHistoryRecord_Fields 單筆歷史紀錄的欄位形狀
func TestHistoryRecord_Fields(t *testing.T) {
	g := newTestGen(t, 1)
	for i := 0; i < 1000; i++ {
		r := g.HistoryRecord()
		if r.GameID < 7_900_000 || r.GameID >= 8_000_000 {
			t.Fatalf("game id out of default range: %d", r.GameID)
		}
		if r.CrashPoint < 1.00 || r.CrashPoint > 100.00 {
			t.Fatalf("crash point out of range: %v", r.CrashPoint)
		}
		if len(r.Hash) != 66 {
			t.Fatalf("hash length = %d, want 66", len(r.Hash))
		}
		if r.Timestamp <= 0 {
			t.Fatalf("missing timestamp: %+v", r)
		}
	}
}

// TestDataset_FirstPageFull count=50 page=1 pageSize=50 → total >= 50 且整頁填滿
func TestDataset_FirstPageFull(t *testing.T) {
	g := newTestGen(t, 2)
	ds, err := g.NewDataset(50, 50)
	if err != nil {
		t.Fatal(err)
	}
	pd, err := ds.Page(1)
	if err != nil {
		t.Fatal(err)
	}
	if pd.Total < 50 {
		t.Errorf("total = %d, want >= 50", pd.Total)
	}
	if want := min(50, pd.Total); len(pd.Items) != want {
		t.Errorf("items = %d, want %d", len(pd.Items), want)
	}
	if pd.Page != 1 || pd.PageSize != 50 {
		t.Errorf("page meta mismatch: %+v", pd)
	}
}

// TestDataset_MiddlePage count=200 page=3 pageSize=50 → start=100
func TestDataset_MiddlePage(t *testing.T) {
	g := newTestGen(t, 3)
	ds, err := g.NewDataset(200, 50)
	if err != nil {
		t.Fatal(err)
	}
	pd, err := ds.Page(3)
	if err != nil {
		t.Fatal(err)
	}
	// count(200) > page*pageSize(150) → total = 200，第三頁整頁填滿
	if pd.Total != 200 {
		t.Errorf("total = %d, want 200", pd.Total)
	}
	if len(pd.Items) != 50 {
		t.Errorf("items = %d, want 50", len(pd.Items))
	}
}

// TestDataset_JitterBranch count <= page*pageSize 時 total 落在 [need, need+pageSize)
func TestDataset_JitterBranch(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		g := newTestGen(t, seed)
		ds, err := g.NewDataset(50, 50)
		if err != nil {
			t.Fatal(err)
		}
		pd, err := ds.Page(2)
		if err != nil {
			t.Fatal(err)
		}
		need := 2 * 50
		if pd.Total < need || pd.Total >= need+50 {
			t.Fatalf("seed %d: total = %d, want in [%d,%d)", seed, pd.Total, need, need+50)
		}
	}
}

// TestDataset_StableTotal 同一個 Dataset 連續翻頁 total 不漂移
func TestDataset_StableTotal(t *testing.T) {
	g := newTestGen(t, 4)
	ds, err := g.NewDataset(500, 50)
	if err != nil {
		t.Fatal(err)
	}
	first, err := ds.Page(1)
	if err != nil {
		t.Fatal(err)
	}
	for page := 2; page <= 10; page++ {
		pd, err := ds.Page(page)
		if err != nil {
			t.Fatal(err)
		}
		if pd.Total != first.Total {
			t.Fatalf("total drifted at page %d: %d vs %d", page, pd.Total, first.Total)
		}
	}
}

// TestDataset_GrowBeyondTotal 超出資料集的頁先回空頁邏輯前的單調上長
func TestDataset_GrowBeyondTotal(t *testing.T) {
	g := newTestGen(t, 5)
	ds, err := g.NewDataset(50, 50)
	if err != nil {
		t.Fatal(err)
	}
	p1, _ := ds.Page(1)
	p3, err := ds.Page(3)
	if err != nil {
		t.Fatal(err)
	}
	if p3.Total < p1.Total {
		t.Errorf("total shrank: %d -> %d", p1.Total, p3.Total)
	}
	if p3.Total < 150 {
		t.Errorf("total = %d, want >= 150 after page 3", p3.Total)
	}
	// 上長後任何合法頁都拿得到整頁資料，不會出現空頁
	if len(p3.Items) != 50 {
		t.Errorf("items = %d, want full page after regrow", len(p3.Items))
	}
}

// TestDataset_Validation 邊界驗證（Warn 級）
func TestDataset_Validation(t *testing.T) {
	g := newTestGen(t, 6)
	if _, err := g.NewDataset(-1, 50); err == nil {
		t.Error("expected error for negative count")
	}
	if _, err := g.NewDataset(50, 0); err == nil {
		t.Error("expected error for zero page size")
	}
	ds, _ := g.NewDataset(50, 50)
	if _, err := ds.Page(0); err == nil {
		t.Error("expected error for page 0")
	}
}

// TestRecent_CountAndShape count=10 → 恰好 10 筆、無 timestamp 欄位
func TestRecent_CountAndShape(t *testing.T) {
	g := newTestGen(t, 7)
	env, err := g.Recent(10)
	if err != nil {
		t.Fatal(err)
	}
	if len(env.Data) != 10 {
		t.Fatalf("records = %d, want 10", len(env.Data))
	}

	raw, err := json.Marshal(env)
	if err != nil {
		t.Fatal(err)
	}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		t.Fatal(err)
	}
	items := m["data"].([]any)
	for _, it := range items {
		rec := it.(map[string]any)
		if _, ok := rec["timestamp"]; ok {
			t.Fatal("recent record carries a timestamp field")
		}
	}
	if _, err := g.Recent(-1); err == nil {
		t.Error("expected error for negative count")
	}
}

// TestHistory_Envelope 單次呼叫捷徑的封裝形狀
func TestHistory_Envelope(t *testing.T) {
	g := newTestGen(t, 8)
	env, err := g.History(50, 1, 50)
	if err != nil {
		t.Fatal(err)
	}
	if !env.Success || env.Code != 200 || !env.Generated {
		t.Errorf("unexpected envelope status: %+v", env)
	}
	for _, r := range env.Data.Items {
		if r.Timestamp <= 0 {
			t.Fatal("history record missing timestamp")
		}
	}
}

// TestGenerator_Stats 統計掛上後累積筆數正確
func TestGenerator_Stats(t *testing.T) {
	g := newTestGen(t, 9)
	if rep := g.Report(); rep != nil {
		t.Fatal("report before EnableStats should be nil")
	}
	g.EnableStats()
	if _, err := g.Recent(100); err != nil {
		t.Fatal(err)
	}
	rep := g.Report()
	if rep.Rounds != 100 {
		t.Errorf("rounds = %d, want 100", rep.Rounds)
	}
}

// TestGenPool 池的借還與獨立性
func TestGenPool(t *testing.T) {
	gp := spec.Default()
	pool, err := NewGenPool(3, core.Default(), gp, 42)
	if err != nil {
		t.Fatal(err)
	}
	if pool.Size() != 3 {
		t.Fatalf("size = %d, want 3", pool.Size())
	}
	a := pool.Get()
	b := pool.Get()
	if a == b {
		t.Fatal("pool returned the same generator twice")
	}
	if a.Seed() == b.Seed() {
		t.Error("pool generators share a seed")
	}
	pool.Put(a)
	pool.Put(b)

	if _, err := NewGenPool(0, core.Default(), gp, 1); err == nil {
		t.Error("expected error for zero pool size")
	}
}

// TestCorrectedProfile corrected 模式走單次抽樣路徑
func TestCorrectedProfile(t *testing.T) {
	gp := spec.Default()
	gp.Corrected = true
	g, err := NewWithSeed(core.Default(), gp, 10)
	if err != nil {
		t.Fatal(err)
	}
	if g.tt == nil {
		t.Fatal("corrected profile did not build a tier table")
	}
	var high int
	trials := 100000
	for i := 0; i < trials; i++ {
		if g.RecentRecord().CrashPoint >= 10.00 {
			high++
		}
	}
	// corrected: Tier C 名目 5%（cascade 只有 ~1%）
	freq := float64(high) / float64(trials)
	if freq < 0.04 || freq > 0.06 {
		t.Errorf("tier C freq = %.4f, want ~0.05", freq)
	}
}
