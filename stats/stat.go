package stats

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/mattn/go-runewidth"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gonum.org/v1/gonum/stat/distuv"
)

var lang language.Tag = language.English

// 信賴區間
type CI struct {
	Lo float64 `json:"Lo"`
	Hi float64 `json:"Hi"`
}

// TierReport 爆點分布統計報告
//
// 紀錄時不計算，Done() 會將觀測頻率與信賴區間一次性填入。
type TierReport struct {
	ProfileName string    `json:"ProfileName"`
	Rounds      int       `json:"Rounds"`
	Mean        float64   `json:"Mean"`
	Min         float64   `json:"Min"`
	Max         float64   `json:"Max"`
	Labels      []string  `json:"Labels"`
	Counts      []int     `json:"Counts"`
	Freq        []float64 `json:"Freq"`
	FreqCI      []CI      `json:"FreqCI"`
	isDone      bool
}

// ============================================================
// ** 公開方法 **
// ============================================================

// Done 將累積計數轉換為最終統計結果並鎖定 isDone 標記。
func (r *TierReport) Done() {
	if r.isDone {
		return
	}
	r.Freq = make([]float64, len(r.Counts))
	r.FreqCI = make([]CI, len(r.Counts))
	for i, c := range r.Counts {
		if r.Rounds > 0 {
			r.Freq[i] = float64(c) / float64(r.Rounds)
		}
		r.FreqCI[i] = wilson(c, r.Rounds)
	}
	r.isDone = true
}

func (r *TierReport) WriteWith(w io.Writer, rep TierReportRender) error {
	r.Done()
	return rep.Write(w, r)
}

// StdOut 以表格輸出報表。
func (r *TierReport) StdOut() {
	r.Done()
	keys, msg := r.fmtBasic()
	fmt.Println(fmtTable("crash tiers :: "+r.ProfileName, keys, msg))
}

// ============================================================
// ** 內部方法 **
// ============================================================

// wilson 回傳觀測頻率的 95% Wilson 信賴區間。
//
// 比 Wald 區間在頻率貼近 0/1 的桶（高倍爆點極稀有）表現穩定得多。
func wilson(hits, rounds int) CI {
	if rounds == 0 {
		return CI{}
	}
	z := distuv.Normal{Mu: 0, Sigma: 1}.Quantile(0.975)
	n := float64(rounds)
	p := float64(hits) / n

	denom := 1 + z*z/n
	center := (p + z*z/(2*n)) / denom
	half := z * math.Sqrt(p*(1-p)/n+z*z/(4*n*n)) / denom

	return CI{
		Lo: max(center-half, 0.0),
		Hi: min(center+half, 1.0),
	}
}

func (r *TierReport) fmtBasic() ([]string, map[string]string) {
	p := message.NewPrinter(lang)
	basic := map[string]string{
		"Rounds": p.Sprintf("%d", r.Rounds),
		"Mean":   p.Sprintf("%.4f", r.Mean),
		"Min":    p.Sprintf("%.2f", r.Min),
		"Max":    p.Sprintf("%.2f", r.Max),
	}
	keys := []string{"Rounds", "Mean", "Min", "Max"}
	for i, lb := range r.Labels {
		basic[lb] = p.Sprintf("%d (%.3f%% CI[%.3f%%,%.3f%%])",
			r.Counts[i], 100*r.Freq[i], 100*r.FreqCI[i].Lo, 100*r.FreqCI[i].Hi)
		keys = append(keys, lb)
	}
	return keys, basic
}

func fmtTable(title string, keys []string, msg map[string]string) string {
	p := message.NewPrinter(lang)
	maxKeyLen := 0
	maxValLen := 0
	for k, m := range msg {
		if w := runewidth.StringWidth(k); w > maxKeyLen {
			maxKeyLen = w
		}
		if w := runewidth.StringWidth(m); w > maxValLen {
			maxValLen = w
		}
	}
	maxKeyLen += 2
	maxValLen += 2

	divider := "+" + strings.Repeat("-", maxKeyLen) + "+" + strings.Repeat("-", maxValLen) + "+\n"
	top := "+" + strings.Repeat("-", maxKeyLen+1+maxValLen) + "+\n"

	totalInner := maxKeyLen + maxValLen + 1
	titleW := runewidth.StringWidth(title)

	left := (totalInner - titleW) / 2
	right := totalInner - titleW - left

	fmtStr := top
	fmtStr += p.Sprintf("|%s%s%s|\n", blank(left), title, blank(right))
	fmtStr += divider
	for _, k := range keys {
		fmtStr += p.Sprintf("| %s%s | %s%s |\n", k, blank(maxKeyLen-2-runewidth.StringWidth(k)), msg[k], blank(maxValLen-2-runewidth.StringWidth(msg[k])))
	}
	fmtStr += divider
	return fmtStr
}

func blank(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(" ", n)
}
