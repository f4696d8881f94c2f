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

package v1

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/zintix-labs/crashlab"
	"github.com/zintix-labs/crashlab/errs"
	"github.com/zintix-labs/crashlab/server/httperr"
)

const (
	maxCount    = 100000
	maxPageSize = 1000
)

type HistoryHandler struct {
	Pool *crashlab.GenPool
}

func NewHistoryHandler(pool *crashlab.GenPool) (*HistoryHandler, error) {
	if pool == nil {
		return nil, errs.NewFatal("generator pool is required")
	}
	return &HistoryHandler{Pool: pool}, nil
}

// queryInt 讀取 query 參數；缺省回 def，非整數回 Warn 級錯誤。
func queryInt(r *http.Request, key string, def int) (int, error) {
	s := r.URL.Query().Get(key)
	if s == "" {
		return def, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, errs.NewWarn(key + " must be integer")
	}
	return v, nil
}

// History 回應分頁的歷史局次。
//
// GET /v1/history?count=&page=&page_size=
func (hh *HistoryHandler) History(w http.ResponseWriter, r *http.Request) {
	count, err := queryInt(r, "count", 50)
	if err != nil {
		httperr.Errs(w, err)
		return
	}
	page, err := queryInt(r, "page", 1)
	if err != nil {
		httperr.Errs(w, err)
		return
	}
	pageSize, err := queryInt(r, "page_size", 50)
	if err != nil {
		httperr.Errs(w, err)
		return
	}

	// 業務檢驗
	if count < 0 || count > maxCount {
		httperr.Errs(w, errs.NewWarn("count must be between 0 and 100,000"))
		return
	}
	if page < 1 {
		httperr.Errs(w, errs.NewWarn("page must be at least 1"))
		return
	}
	if pageSize < 1 || pageSize > maxPageSize {
		httperr.Errs(w, errs.NewWarn("page_size must be between 1 and 1,000"))
		return
	}

	g := hh.Pool.Get()
	defer hh.Pool.Put(g)

	env, err := g.History(count, page, pageSize)
	if err != nil {
		// 來自 generator 的錯誤，尊重錯誤分級
		httperr.Errs(w, errs.Wrap(err, "build history err"))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(env)
}
