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

// CrashBuckets
//
// 用來快速定位爆點 -> 分布統計位置
//
// 請勿修改預設值
//   - 爆點區間: [1.0,1.5), [1.5,2), [2,3), [3,5), [5,10), [10,20), [20,50), [50,+inf)
//
// 邊界刻意跨越三個取樣層（3 與 10 是層邊界），讓 cascade 與 corrected
// 兩種選層策略的差異直接反映在分桶頻率上。
type CrashBuckets struct {
	bounds []float64
	labels []string
}

// Buckets 爆點分桶（行程內共享、唯讀）。
var Buckets *CrashBuckets = &CrashBuckets{
	bounds: []float64{1.5, 2, 3, 5, 10, 20, 50},
	labels: []string{"[1.0,1.5)", "[1.5,2)", "[2,3)", "[3,5)", "[5,10)", "[10,20)", "[20,50)", "[50,+inf)"},
}

func (b *CrashBuckets) Labels() []string {
	return b.labels
}

func (b *CrashBuckets) Len() int {
	return len(b.labels)
}

// Index 回傳爆點所屬桶位。
//
// 桶數固定為個位數，線性掃描即可；不需要 LUT。
func (b *CrashBuckets) Index(v float64) int {
	for i, bound := range b.bounds {
		if v < bound {
			return i
		}
	}
	return len(b.bounds)
}
