package main

import "github.com/zintix-labs/crashlab/sdk/perf"

// makefile runner
func main() {
	bindVar()
	perf.RunPProf(executeGenerate, cfg.pprofmode)
}
