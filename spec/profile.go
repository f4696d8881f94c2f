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

// Package spec 定義假資料產生器的設定檔（GenProfile）。
//
// Profile 描述「資料長什麼樣」：編號錨點、爆點級距、時間窗長度、選層策略。
// 「要產多少、分第幾頁」屬於呼叫參數，不進 profile。
package spec

import (
	"bytes"

	"github.com/zintix-labs/crashlab/errs"
	"github.com/zintix-labs/crashlab/sdk/sampler"
	"gopkg.in/yaml.v3"
)

// GenProfile 包含產生一批假 crash 紀錄所需的所有高階設定。
type GenProfile struct {
	ProfileName string         `yaml:"profile_name" json:"profile_name"`
	IDBase      int            `yaml:"id_base"      json:"id_base"`
	IDSpan      int            `yaml:"id_span"      json:"id_span"`
	Tiers       []sampler.Tier `yaml:"tiers"        json:"tiers"`
	WindowDays  int            `yaml:"window_days"  json:"window_days"`

	// Corrected 切換選層策略：
	//   false（預設）: cascade 兩段式抽樣，實現頻率 ≈ 80/19/1（與歷史工具逐位相容）。
	//   true         : 單次抽樣對照累積門檻表，實現頻率 = 名目頻率。
	// 這是刻意暴露的行為開關；預設值保持歷史分布形狀。
	Corrected bool `yaml:"corrected" json:"corrected"`
}

// Default 回傳內建的 bc 風格 profile。
func Default() *GenProfile {
	return &GenProfile{
		ProfileName: "bc-style",
		IDBase:      sampler.DefaultIDBase,
		IDSpan:      sampler.DefaultIDSpan,
		Tiers:       sampler.DefaultTiers(),
		WindowDays:  7,
		Corrected:   false,
	}
}

// valid 執行最基本的設定檔檢查，如需更多驗證可在此擴充。
func (gp *GenProfile) valid() error {
	if gp.IDBase < 0 {
		return errs.Fatalf("profile: %s err:negative id_base", gp.ProfileName)
	}
	if gp.IDSpan < 0 {
		return errs.Fatalf("profile: %s err:negative id_span", gp.ProfileName)
	}
	if len(gp.Tiers) == 0 {
		return errs.Fatalf("profile: %s err:empty tiers", gp.ProfileName)
	}

	total := 0
	for _, t := range gp.Tiers {
		if t.Weight < 0 {
			return errs.Fatalf("profile: %s err:negative tier weight", gp.ProfileName)
		}
		if t.Lo < 1.00 || t.Hi <= t.Lo {
			return errs.Fatalf("profile: %s err:invalid tier bounds [%v,%v)", gp.ProfileName, t.Lo, t.Hi)
		}
		total += t.Weight
	}
	if total == 0 {
		return errs.Fatalf("profile: %s err:all tier weights are zero", gp.ProfileName)
	}

	if gp.WindowDays < 1 {
		return errs.Fatalf("profile: %s err:window_days must >= 1", gp.ProfileName)
	}
	return nil
}

// GetProfileByYAML 解析 YAML bytes 成 *GenProfile。
//
// 嚴格檢查：多寫/拼錯欄位就報錯（KnownFields）。
func GetProfileByYAML(raw []byte) (*GenProfile, error) {
	gp := Default()
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(gp); err != nil {
		return nil, errs.Wrap(err, "spec.profile : decode yaml failed")
	}
	if err := gp.valid(); err != nil {
		return nil, err
	}
	return gp, nil
}

// GetProfileByJSON 解析 JSON bytes 成 *GenProfile。
//
// JSON 是 YAML 的子集，直接沿用同一個嚴格 decoder，確保兩種格式行為一致。
func GetProfileByJSON(raw []byte) (*GenProfile, error) {
	return GetProfileByYAML(raw)
}
