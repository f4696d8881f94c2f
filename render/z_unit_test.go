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

package render

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"
)

type sample struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// TestJsonRender_PrettyVsCompact pretty 多行縮排、compact 單行
func TestJsonRender_PrettyVsCompact(t *testing.T) {
	v := sample{Name: "a", Count: 1}

	var pretty bytes.Buffer
	if err := (&JsonRender{Pretty: true}).Write(&pretty, v); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(pretty.String(), "\n  ") {
		t.Errorf("pretty output not indented:\n%s", pretty.String())
	}

	var compact bytes.Buffer
	if err := (&JsonRender{Pretty: false}).Write(&compact, v); err != nil {
		t.Fatal(err)
	}
	if got := strings.Count(strings.TrimRight(compact.String(), "\n"), "\n"); got != 0 {
		t.Errorf("compact output spans %d extra lines", got)
	}
}

// TestWriteFile_RoundTrip 寫檔後讀回必須結構等價
func TestWriteFile_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	v := sample{Name: "roundtrip", Count: 42}

	if err := WriteFile(path, v, &JsonRender{Pretty: true}, false); err != nil {
		t.Fatal(err)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var got sample
	if err := json.Unmarshal(raw, &got); err != nil {
		t.Fatal(err)
	}
	if got != v {
		t.Errorf("round trip mismatch: got %+v want %+v", got, v)
	}
}

// TestWriteFile_Gzip gzip 輸出可解壓回原始 JSON
func TestWriteFile_Gzip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json.gz")
	v := sample{Name: "gz", Count: 7}

	if err := WriteFile(path, v, &JsonRender{}, true); err != nil {
		t.Fatal(err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	zr, err := gzip.NewReader(f)
	if err != nil {
		t.Fatal(err)
	}
	var got sample
	if err := json.NewDecoder(zr).Decode(&got); err != nil {
		t.Fatal(err)
	}
	if got != v {
		t.Errorf("gzip round trip mismatch: got %+v want %+v", got, v)
	}
}

// TestWriteFile_MissingParent 父目錄不存在是 I/O 錯誤，直接回傳
func TestWriteFile_MissingParent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "no-such-dir", "out.json")
	if err := WriteFile(path, sample{}, &JsonRender{}, false); err == nil {
		t.Fatal("expected I/O error for missing parent dir, got nil")
	}
}

// TestYAMLRender 基本輸出
func TestYAMLRender(t *testing.T) {
	var buf bytes.Buffer
	// 注意不要用 y/n/on/off 當樣本值，yaml 會視為布林字面值而加引號
	if err := (&YAMLRender{}).Write(&buf, sample{Name: "alpha", Count: 3}); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "name: alpha") {
		t.Errorf("unexpected yaml:\n%s", buf.String())
	}
	if !strings.Contains(buf.String(), "count: 3") {
		t.Errorf("unexpected yaml:\n%s", buf.String())
	}
}
