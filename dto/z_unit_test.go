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

package dto

import (
	"encoding/json"
	"testing"
)

// TestHistoryEnvelope_Shape 分頁回應的外層欄位與 data 區塊形狀
func TestHistoryEnvelope_Shape(t *testing.T) {
	pd := &PageData{
		Items: []HistoryRecord{
			{GameID: 7900001, CrashPoint: 1.23, Hash: "0xabc", Timestamp: 1700000000000},
		},
		Total:    51,
		Page:     1,
		PageSize: 50,
	}
	env := NewHistoryEnvelope(pd)
	if !env.Success || env.Code != 200 || env.Msg != "" || !env.Generated {
		t.Errorf("unexpected envelope status: %+v", env)
	}
	if env.Timestamp <= 0 {
		t.Error("envelope timestamp not set")
	}

	raw, err := json.Marshal(env)
	if err != nil {
		t.Fatal(err)
	}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		t.Fatal(err)
	}
	for _, k := range []string{"data", "msg", "code", "success", "timestamp", "generated"} {
		if _, ok := m[k]; !ok {
			t.Errorf("envelope missing key %q", k)
		}
	}
	data := m["data"].(map[string]any)
	for _, k := range []string{"items", "total", "page", "pageSize"} {
		if _, ok := data[k]; !ok {
			t.Errorf("page data missing key %q", k)
		}
	}
	item := data["items"].([]any)[0].(map[string]any)
	if _, ok := item["timestamp"]; !ok {
		t.Error("history record must carry a timestamp field")
	}
}

// TestRecentEnvelope_Shape recent 回應: data 是陣列、紀錄不帶 timestamp、無分頁欄位
func TestRecentEnvelope_Shape(t *testing.T) {
	env := NewRecentEnvelope([]RecentRecord{
		{GameID: 7900002, CrashPoint: 2.50, Hash: "0xdef"},
	})
	raw, err := json.Marshal(env)
	if err != nil {
		t.Fatal(err)
	}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		t.Fatal(err)
	}
	items, ok := m["data"].([]any)
	if !ok {
		t.Fatalf("recent data is not an array: %T", m["data"])
	}
	rec := items[0].(map[string]any)
	if _, ok := rec["timestamp"]; ok {
		t.Error("recent record must not carry a timestamp field")
	}
	for _, k := range []string{"total", "page", "pageSize"} {
		if _, ok := rec[k]; ok {
			t.Errorf("recent record leaked pagination key %q", k)
		}
	}
}

// TestRecentEnvelope_NilItems nil 正規化成 []，序列化不得為 null
func TestRecentEnvelope_NilItems(t *testing.T) {
	env := NewRecentEnvelope(nil)
	raw, err := json.Marshal(env)
	if err != nil {
		t.Fatal(err)
	}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		t.Fatal(err)
	}
	if _, ok := m["data"].([]any); !ok {
		t.Fatalf("nil items serialized as %T, want array", m["data"])
	}
}

// TestErrorEnvelope 失敗封裝：data 為 null、success 為 false
func TestErrorEnvelope(t *testing.T) {
	env := NewErrorEnvelope(400, "count must >= 0")
	raw, err := json.Marshal(env)
	if err != nil {
		t.Fatal(err)
	}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		t.Fatal(err)
	}
	if v, ok := m["data"]; !ok || v != nil {
		t.Errorf("data = %v, want explicit null", v)
	}
	if m["success"] != false || m["code"].(float64) != 400 {
		t.Errorf("unexpected envelope: %v", m)
	}
	if m["msg"] != "count must >= 0" {
		t.Errorf("msg = %v", m["msg"])
	}
}
