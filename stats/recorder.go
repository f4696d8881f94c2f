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

package stats

import "math"

// TierRecorder 爆點紀錄員
//
// 在產生假資料的同時逐筆紀錄爆點，Done() 輸出分布報表。
// 紀錄路徑只做計數與累加，統計計算延後到 Done() 一次完成。
type TierRecorder struct {
	ProfileName string
	counts      []int
	rounds      int
	sum         float64
	min         float64
	max         float64
}

// NewTierRecorder 建立紀錄員，分桶使用行程內共享的 Buckets。
func NewTierRecorder(profileName string) *TierRecorder {
	return &TierRecorder{
		ProfileName: profileName,
		counts:      make([]int, Buckets.Len()),
		min:         math.Inf(1),
		max:         math.Inf(-1),
	}
}

// Record 紀錄一筆爆點。
func (r *TierRecorder) Record(v float64) {
	r.counts[Buckets.Index(v)]++
	r.rounds++
	r.sum += v
	if v < r.min {
		r.min = v
	}
	if v > r.max {
		r.max = v
	}
}

// Done 輸出統計報表。空紀錄回傳零值報表（不視為錯誤）。
func (r *TierRecorder) Done() *TierReport {
	rep := &TierReport{
		ProfileName: r.ProfileName,
		Rounds:      r.rounds,
		Labels:      Buckets.Labels(),
		Counts:      append([]int(nil), r.counts...),
	}
	if r.rounds > 0 {
		rep.Mean = r.sum / float64(r.rounds)
		rep.Min = r.min
		rep.Max = r.max
	}
	rep.Done()
	return rep
}
