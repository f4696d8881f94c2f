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

package perf

import (
	"log"
	"os"
	"runtime"
	"runtime/pprof"
)

const pprofDir = "build/profiling" // pprof檔案寫入路徑

// RunPProf 依 mode 決定是否在執行 exe 時收集 profiling 資料。
//
// mode: ""(不收集) / cpu / heap / allocs
//
// Usage like:
//
//	go run ./cmd/gen -count 1000000 -p cpu
func RunPProf(exe func(), mode string) {
	switch mode {
	case "cpu":
		profCPU(exe)
	case "heap":
		profSnapshot(exe, "heap")
	case "allocs":
		profSnapshot(exe, "allocs")
	default:
		exe()
	}
}

func profCPU(exe func()) {
	f, err := createProfFile("cpu.pprof")
	if err != nil {
		log.Printf("pprof disabled: %v", err)
		exe()
		return
	}
	defer f.Close()

	if err := pprof.StartCPUProfile(f); err != nil {
		log.Printf("pprof disabled: %v", err)
		exe()
		return
	}
	defer pprof.StopCPUProfile()
	exe()
}

// profSnapshot 在 exe 結束後寫出一次性 profile（heap / allocs）。
func profSnapshot(exe func(), name string) {
	exe()

	f, err := createProfFile(name + ".pprof")
	if err != nil {
		log.Printf("pprof disabled: %v", err)
		return
	}
	defer f.Close()

	runtime.GC()
	if err := pprof.Lookup(name).WriteTo(f, 0); err != nil {
		log.Printf("write %s profile: %v", name, err)
	}
}

func createProfFile(name string) (*os.File, error) {
	if err := os.MkdirAll(pprofDir, 0o755); err != nil {
		return nil, err
	}
	return os.Create(pprofDir + "/" + name)
}
