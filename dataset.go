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
	"io"

	"github.com/cheggaaa/pb/v3"
	"github.com/zintix-labs/crashlab/dto"
	"github.com/zintix-labs/crashlab/errs"
)

// Dataset 代表一個邏輯上的假資料集，持有「唯一一份權威 total」。
//
// 歷史工具每次呼叫都重算 total，jitter 分支一旦走到，連續翻頁會看到
// total 漂移。Dataset 把 total 的所有權收進來：同一個 Dataset 的連續
// Page 呼叫觀察到穩定的 total，只有在要求的頁超出現有 total 時才單調
// 上長（對應真實站台翻頁期間不斷有新局落地的行為）。
//
// total 規則（與歷史工具的單次呼叫數值相容）：
//   - count > page*pageSize 時 total = count。
//   - 否則 total = page*pageSize + jitter，jitter 均勻取自 [0, pageSize)。
//
// jitter 的目的：避免假資料出現可疑的整數 total。
type Dataset struct {
	g        *Generator
	count    int
	pageSize int
	total    int // 0 表示尚未結算
	showpb   bool
}

// NewDataset 建立資料集。
//
// 邊界驗證在此（Warn 級）：count < 0 或 pageSize < 1 直接回報，
// 內部的切片算術不再重複檢查。
func (g *Generator) NewDataset(count, pageSize int) (*Dataset, error) {
	if count < 0 {
		return nil, errs.NewWarn("count must >= 0")
	}
	if pageSize < 1 {
		return nil, errs.NewWarn("page size must >= 1")
	}
	return &Dataset{
		g:        g,
		count:    count,
		pageSize: pageSize,
	}, nil
}

// ShowProgress 開關產生時的進度條（大 corpus 的 CLI 場景用）。
func (d *Dataset) ShowProgress(show bool) {
	d.showpb = show
}

// Total 回傳目前的權威 total；尚未取過任何頁時為 0。
func (d *Dataset) Total() int {
	return d.total
}

// Page 取出第 page 頁（page >= 1），逐筆產生該頁的紀錄。
//
// 邊界策略：
//   - 要求的頁超出現有 total 時不回空頁：settleTotal 會把 total 單調
//     上長到蓋住該頁，所以任何合法的 page 都拿得到資料。
//   - 紀錄按產生順序排列（不依爆點排序）。
func (d *Dataset) Page(page int) (*dto.PageData, error) {
	if page < 1 {
		return nil, errs.NewWarn("page must >= 1")
	}
	d.settleTotal(page)

	// settleTotal 保證 total >= page*pageSize，end-start 永不為負
	start := (page - 1) * d.pageSize
	end := min(start+d.pageSize, d.total)
	n := end - start

	items := make([]dto.HistoryRecord, 0, n)

	bar := pb.StartNew(n)
	if !d.showpb {
		bar.SetWriter(io.Discard)
	}
	for i := 0; i < n; i++ {
		items = append(items, d.g.HistoryRecord())
		bar.Increment()
	}
	bar.Finish()

	return &dto.PageData{
		Items:    items,
		Total:    d.total,
		Page:     page,
		PageSize: d.pageSize,
	}, nil
}

// settleTotal 結算（或單調上長）權威 total。
func (d *Dataset) settleTotal(page int) {
	need := page * d.pageSize
	switch {
	case d.total == 0:
		// 首次結算：與歷史工具的單次呼叫公式一致
		if d.count > need {
			d.total = d.count
		} else {
			d.total = need + d.g.c.IntN(d.pageSize)
		}
	case d.total < need && d.count <= need:
		// 要求的頁超出現有資料集：視為期間有新局落地，單調上長
		d.total = need + d.g.c.IntN(d.pageSize)
	}
}
