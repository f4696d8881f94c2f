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

// Package render 負責把回應封裝寫成結構化文字檔。
//
// I/O 失敗（權限、父目錄不存在、磁碟滿）一律 Fatal 級、不重試，
// 由呼叫端決定中止策略。寫檔保證所有退出路徑都會關閉檔案。
package render

import (
	"encoding/json"
	"io"
	"os"

	"github.com/klauspost/compress/gzip"
	"github.com/zintix-labs/crashlab/errs"
	"gopkg.in/yaml.v3"
)

// EnvelopeRender 定義輸出行為
type EnvelopeRender interface {
	Write(w io.Writer, v any) error
}

// Json渲染
//
// Pretty = true 時多行縮排（2 空白），否則單行緊湊輸出。
type JsonRender struct {
	Pretty bool
}

func (jr *JsonRender) Write(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	if jr.Pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(v); err != nil {
		return errs.Wrap(err, "encode json failed")
	}
	return nil
}

// YAML渲染
type YAMLRender struct{}

func (yr *YAMLRender) Write(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	defer enc.Close()
	if err := enc.Encode(v); err != nil {
		return errs.Wrap(err, "encode yaml failed")
	}
	return nil
}

// WriteFile 以指定 render 將 v 寫入 path。
//
// gzipped = true 時輸出 gzip 壓縮檔（大 corpus 用）。
// 失敗不重試，錯誤帶 Fatal 級回傳給呼叫端。
func WriteFile(path string, v any, r EnvelopeRender, gzipped bool) (err error) {
	f, cerr := os.Create(path)
	if cerr != nil {
		return errs.Wrap(cerr, "open output failed: "+path)
	}
	defer func() {
		// Close 的錯誤不能蓋掉先前的寫入錯誤
		if cerr := f.Close(); cerr != nil && err == nil {
			err = errs.Wrap(cerr, "close output failed: "+path)
		}
	}()

	var w io.Writer = f
	var gw *gzip.Writer
	if gzipped {
		gw = gzip.NewWriter(f)
		w = gw
	}

	if err = r.Write(w, v); err != nil {
		return err
	}

	if gw != nil {
		if cerr := gw.Close(); cerr != nil {
			return errs.Wrap(cerr, "close gzip stream failed: "+path)
		}
	}
	return nil
}
