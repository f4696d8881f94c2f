package v1

import (
	"encoding/json"
	"net/http"

	"github.com/zintix-labs/crashlab/errs"
	"github.com/zintix-labs/crashlab/server/httperr"
)

// Recent 回應最近局次的扁平列表。
//
// GET /v1/recent?count=
//
// count 預設 50，與 CLI 一致。
func (hh *HistoryHandler) Recent(w http.ResponseWriter, r *http.Request) {
	count, err := queryInt(r, "count", 50)
	if err != nil {
		httperr.Errs(w, err)
		return
	}
	if count < 0 || count > maxCount {
		httperr.Errs(w, errs.NewWarn("count must be between 0 and 100,000"))
		return
	}

	g := hh.Pool.Get()
	defer hh.Pool.Put(g)

	env, err := g.Recent(count)
	if err != nil {
		httperr.Errs(w, errs.Wrap(err, "build recent err"))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(env)
}
