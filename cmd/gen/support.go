package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/zintix-labs/crashlab"
	"github.com/zintix-labs/crashlab/dto"
	"github.com/zintix-labs/crashlab/render"
	"github.com/zintix-labs/crashlab/sdk/core"
	"github.com/zintix-labs/crashlab/spec"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var cfg *config = new(config)

type config struct {
	history   bool
	recent    bool
	count     int
	page      int
	pageSize  int
	output    string
	pretty    bool
	seed      int64
	profile   string
	corrected bool
	gzip      bool
	stats     bool
	pprofmode string
}

func bindVar() {
	// 綁定 Flag 到本地變數的指標 (&)
	flag.BoolVar(&cfg.history, "history", false, "emit paged history fixture")
	flag.BoolVar(&cfg.recent, "recent", false, "emit recent-rounds fixture")
	flag.IntVar(&cfg.count, "count", 50, "number of rounds in the dataset")
	flag.IntVar(&cfg.page, "page", 1, "page to emit (history only)")
	flag.IntVar(&cfg.pageSize, "page-size", 50, "rounds per page (history only)")
	flag.StringVar(&cfg.output, "output", "", "output file path, '' means the per-mode default name")
	flag.BoolVar(&cfg.pretty, "pretty", true, "indent JSON output")
	flag.Int64Var(&cfg.seed, "seed", -1, "int64 seed for random number generator, <0 means random")
	flag.StringVar(&cfg.profile, "profile", "", "path to a YAML/JSON generation profile")
	flag.BoolVar(&cfg.corrected, "corrected", false, "use single-draw tier selection matching nominal weights")
	flag.BoolVar(&cfg.gzip, "gzip", false, "gzip the output files")
	flag.BoolVar(&cfg.stats, "stats", false, "print a tier frequency report after generating")
	flag.StringVar(&cfg.pprofmode, "p", "", "pprof: '', cpu, heap, allocs")

	flag.Parse()

	// 未指定模式 → 兩種都產
	if !cfg.history && !cfg.recent {
		cfg.history = true
		cfg.recent = true
	}
}

func executeGenerate() {
	cfg.valid() // 基本檢查

	gp := loadProfile()
	if cfg.corrected {
		gp.Corrected = true
	}

	g := buildGenerator(gp)
	if cfg.stats {
		g.EnableStats()
	}

	green := "\033[1;32m"
	reset := "\033[0m"
	p := message.NewPrinter(language.English)
	p.Printf("%s[PROFILE:%s] [SEED:%d] [ROUNDS:%d]%s\n", green, gp.ProfileName, g.Seed(), cfg.count, reset)

	histPath, recentPath := resolveOutputs(cfg.output, cfg.history)

	if cfg.history {
		ds, err := g.NewDataset(cfg.count, cfg.pageSize)
		if err != nil {
			log.Fatal(err)
		}
		ds.ShowProgress(true)
		pd, err := ds.Page(cfg.page)
		if err != nil {
			log.Fatal(err)
		}
		writeOut(histPath, dto.NewHistoryEnvelope(pd))
	}

	if cfg.recent {
		env, err := g.Recent(cfg.count)
		if err != nil {
			log.Fatal(err)
		}
		writeOut(recentPath, env)
	}

	if cfg.stats {
		g.Report().StdOut()
	}
}

func loadProfile() *spec.GenProfile {
	if cfg.profile == "" {
		return spec.Default()
	}
	raw, err := os.ReadFile(cfg.profile)
	if err != nil {
		log.Fatal(err)
	}
	var gp *spec.GenProfile
	if strings.HasSuffix(cfg.profile, ".json") {
		gp, err = spec.GetProfileByJSON(raw)
	} else {
		gp, err = spec.GetProfileByYAML(raw)
	}
	if err != nil {
		log.Fatal(err)
	}
	return gp
}

func buildGenerator(gp *spec.GenProfile) *crashlab.Generator {
	if cfg.seed < 0 {
		g, err := crashlab.New(core.Default(), gp)
		if err != nil {
			log.Fatal(err)
		}
		return g
	}
	g, err := crashlab.NewWithSeed(core.Default(), gp, cfg.seed)
	if err != nil {
		log.Fatal(err)
	}
	return g
}

// resolveOutputs 決定輸出檔路徑。-output 是「目的檔」不是目錄；
// 未指定時退回工作目錄下的預設檔名。兩種模式都產時 -output 只
// 套用在 history，recent 固定用預設檔名（單一路徑給兩份檔會互相覆蓋）。
func resolveOutputs(output string, history bool) (histPath, recentPath string) {
	histPath = "crash_history.json"
	recentPath = "recent_history.json"
	if output == "" {
		return histPath, recentPath
	}
	if history {
		histPath = output
	} else {
		recentPath = output
	}
	return histPath, recentPath
}

func writeOut(path string, v any) {
	if cfg.gzip {
		path += ".gz"
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			log.Fatal(err)
		}
	}
	if err := render.WriteFile(path, v, &render.JsonRender{Pretty: cfg.pretty}, cfg.gzip); err != nil {
		log.Fatal(err)
	}
	log.Printf("wrote %s", path)
}

func (cfg *config) valid() {
	p := message.NewPrinter(language.English)

	if cfg.count < 0 {
		log.Fatal("value err : count must >= 0")
	}
	// 過大的資料集只是浪費磁碟，直接 resize
	if cfg.count > 1000000 {
		p.Printf("too many rounds: %d resized to 1M rounds\n", cfg.count)
		cfg.count = 1000000
	}

	if cfg.page < 1 {
		log.Fatal("value err : page must > 0")
	}
	if cfg.pageSize < 1 {
		log.Fatal("value err : page-size must > 0")
	}
}
