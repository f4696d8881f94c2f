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

package core

import (
	"testing"
)

// TestDeterminism 同一個 seed 必須產生同一串輸出序列
func TestDeterminism(t *testing.T) {
	a := New(Default().New(42))
	b := New(Default().New(42))
	for i := 0; i < 1000; i++ {
		if a.Uint64() != b.Uint64() {
			t.Fatalf("sequence diverged at draw %d", i)
		}
	}
}

// TestSeedIndependence 不同 seed 不應產生相同序列開頭
func TestSeedIndependence(t *testing.T) {
	a := New(Default().New(1))
	b := New(Default().New(2))
	same := 0
	for i := 0; i < 64; i++ {
		if a.Uint64() == b.Uint64() {
			same++
		}
	}
	if same == 64 {
		t.Fatal("seed 1 and 2 produced identical sequences")
	}
}

// TestFloat64Range Float64 必須落在 [0,1)
func TestFloat64Range(t *testing.T) {
	c := New(Default().New(7))
	for i := 0; i < 100000; i++ {
		v := c.Float64()
		if v < 0 || v >= 1 {
			t.Fatalf("Float64 out of [0,1): %v", v)
		}
	}
}

// TestIntNBounds IntN 的邊界合約：max <= 0 回傳 -1，其餘落在 [0,max)
func TestIntNBounds(t *testing.T) {
	c := New(Default().New(9))
	if got := c.IntN(0); got != -1 {
		t.Errorf("IntN(0) = %d, want -1", got)
	}
	if got := c.IntN(-5); got != -1 {
		t.Errorf("IntN(-5) = %d, want -1", got)
	}
	for i := 0; i < 100000; i++ {
		v := c.IntN(16)
		if v < 0 || v >= 16 {
			t.Fatalf("IntN(16) out of range: %d", v)
		}
	}
}

// TestInt64InRange 雙端含區間取樣
func TestInt64InRange(t *testing.T) {
	c := New(Default().New(11))
	lo, hi := int64(1000), int64(2000)
	seenLo, seenHi := false, false
	for i := 0; i < 200000; i++ {
		v := c.Int64InRange(lo, hi)
		if v < lo || v > hi {
			t.Fatalf("Int64InRange out of [%d,%d]: %d", lo, hi, v)
		}
		if v == lo {
			seenLo = true
		}
		if v == hi {
			seenHi = true
		}
	}
	// 兩端皆應可被取到（雙端含）
	if !seenLo || !seenHi {
		t.Errorf("endpoints not reachable: lo=%v hi=%v", seenLo, seenHi)
	}
	// 退化區間
	if got := c.Int64InRange(5, 5); got != 5 {
		t.Errorf("degenerate range = %d, want 5", got)
	}
}

// TestSnapshotRestore 快照後還原，後續序列必須一致
func TestSnapshotRestore(t *testing.T) {
	c := New(Default().New(123))
	for i := 0; i < 10; i++ {
		c.Uint64()
	}
	snap, err := c.Snapshot()
	if err != nil {
		t.Fatal(err)
	}
	want := make([]uint64, 32)
	for i := range want {
		want[i] = c.Uint64()
	}

	c2 := New(Default().New(0))
	if err := c2.Restore(snap); err != nil {
		t.Fatal(err)
	}
	for i := range want {
		if got := c2.Uint64(); got != want[i] {
			t.Fatalf("restored sequence diverged at %d: got %d want %d", i, got, want[i])
		}
	}
}
