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

package stats_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/zintix-labs/crashlab/stats"
)

// TestBuckets_Index 分桶邊界
func TestBuckets_Index(t *testing.T) {
	cases := []struct {
		v    float64
		want int
	}{
		{1.00, 0}, {1.49, 0},
		{1.50, 1}, {1.99, 1},
		{2.00, 2}, {2.99, 2},
		{3.00, 3}, {4.99, 3},
		{5.00, 4}, {9.99, 4},
		{10.00, 5}, {19.99, 5},
		{20.00, 6}, {49.99, 6},
		{50.00, 7}, {100.00, 7},
	}
	for _, c := range cases {
		if got := stats.Buckets.Index(c.v); got != c.want {
			t.Errorf("Index(%v) = %d, want %d", c.v, got, c.want)
		}
	}
}

// TestTierRecorder_Report 計數、頻率與極值
func TestTierRecorder_Report(t *testing.T) {
	r := stats.NewTierRecorder("test")
	values := []float64{1.10, 1.20, 1.80, 2.50, 12.00}
	for _, v := range values {
		r.Record(v)
	}
	rep := r.Done()

	if rep.Rounds != 5 {
		t.Fatalf("rounds = %d, want 5", rep.Rounds)
	}
	if rep.Min != 1.10 || rep.Max != 12.00 {
		t.Errorf("min/max = %v/%v, want 1.10/12.00", rep.Min, rep.Max)
	}
	if rep.Counts[0] != 2 || rep.Counts[1] != 1 || rep.Counts[2] != 1 || rep.Counts[5] != 1 {
		t.Errorf("unexpected counts: %v", rep.Counts)
	}

	// 頻率總和 = 1
	sum := 0.0
	for _, f := range rep.Freq {
		sum += f
	}
	if sum < 0.999 || sum > 1.001 {
		t.Errorf("freqs do not sum to 1: %v", sum)
	}

	// CI 必須包住觀測頻率
	for i := range rep.Freq {
		ci := rep.FreqCI[i]
		if rep.Freq[i] < ci.Lo-1e-9 || rep.Freq[i] > ci.Hi+1e-9 {
			t.Errorf("bucket %d: freq %v outside CI [%v,%v]", i, rep.Freq[i], ci.Lo, ci.Hi)
		}
	}
}

// TestTierRecorder_Empty 空紀錄輸出零值報表，不 panic
func TestTierRecorder_Empty(t *testing.T) {
	rep := stats.NewTierRecorder("empty").Done()
	if rep.Rounds != 0 || rep.Mean != 0 {
		t.Errorf("unexpected empty report: %+v", rep)
	}
}

// TestRender_JSONAndYAML 兩種渲染都能輸出完整欄位
func TestRender_JSONAndYAML(t *testing.T) {
	r := stats.NewTierRecorder("render")
	r.Record(1.5)
	r.Record(3.3)
	rep := r.Done()

	var jbuf bytes.Buffer
	if err := rep.WriteWith(&jbuf, &stats.JsonTierReportRender{}); err != nil {
		t.Fatal(err)
	}
	var m map[string]any
	if err := json.Unmarshal(jbuf.Bytes(), &m); err != nil {
		t.Fatal(err)
	}
	if _, ok := m["Counts"]; !ok {
		t.Error("json output missing Counts")
	}

	var ybuf bytes.Buffer
	if err := rep.WriteWith(&ybuf, &stats.YAMLTierReportRender{}); err != nil {
		t.Fatal(err)
	}
	// 一維陣列應為 flow style
	if !strings.Contains(ybuf.String(), "[") {
		t.Errorf("yaml output has no flow sequences:\n%s", ybuf.String())
	}
}
