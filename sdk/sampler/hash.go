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

// Package sampler 提供 crash 假資料所需的各種取樣器。
//
// 本檔案 (hash.go) 實作 provably-fair hash 字串取樣。
//
// 輸出形狀是合約：字首 "0x" 接恰好 64 個小寫十六進位字元（總長 66）。
// 下游的驗證解析器是對這個形狀寫死的，任何大小寫或長度變化都會被拒收。
package sampler

import "github.com/zintix-labs/crashlab/sdk/core"

const (
	hashHexLen  = 64
	hashPrefix  = "0x"
	hexAlphabet = "0123456789abcdef"
)

// GameHash 回傳一個假的 provably-fair hash。
//
// 64 個字元各自獨立均勻取自小寫十六進位字母表（有放回）。
// 不檢查跨筆碰撞——真 hash 是 SHA-256 鏈的承諾值，假資料只要形狀對即可。
func GameHash(c *core.Core) string {
	buf := make([]byte, 0, len(hashPrefix)+hashHexLen)
	buf = append(buf, hashPrefix...)
	for i := 0; i < hashHexLen; i++ {
		buf = append(buf, hexAlphabet[c.IntN(len(hexAlphabet))])
	}
	return string(buf)
}
