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

package main

import (
	"crypto/rand"
	"flag"
	"fmt"
	"math"
	"math/big"
	"os"
	"strings"

	"github.com/zintix-labs/crashlab"
	"github.com/zintix-labs/crashlab/sdk/core"
	"github.com/zintix-labs/crashlab/server"
	"github.com/zintix-labs/crashlab/server/logger"
	"github.com/zintix-labs/crashlab/server/svrcfg"
	"github.com/zintix-labs/crashlab/spec"
)

// Mock API server entrypoint. Serves generated crash history over HTTP
// so a frontend can be pointed at it instead of a live backend.
func main() {
	cfg, err := loadConfigFromFlags()
	if err != nil {
		fmt.Println(err)
		return
	}
	server.Run(cfg)
}

type config struct {
	LogMode   string
	PoolSize  int
	Seed      int64
	Profile   string
	Corrected bool
}

func loadConfigFromFlags() (*svrcfg.SvrCfg, error) {
	cfg := new(config)
	flag.StringVar(&cfg.LogMode, "log-mode", "dev", "log mode: dev|prod|silence")
	flag.IntVar(&cfg.PoolSize, "pool", 3, "number of generator instances in the pool")
	flag.Int64Var(&cfg.Seed, "seed", -1, "int64 base seed for the pool, <0 means random")
	flag.StringVar(&cfg.Profile, "profile", "", "path to a YAML/JSON generation profile")
	flag.BoolVar(&cfg.Corrected, "corrected", false, "use single-draw tier selection matching nominal weights")

	flag.Parse()

	log, _ := logger.NewAsync(4096, logger.ParseMode(cfg.LogMode))

	gp, err := loadProfile(cfg)
	if err != nil {
		return nil, err
	}
	if cfg.Corrected {
		gp.Corrected = true
	}

	if cfg.Seed < 0 {
		rnd, err := rand.Int(rand.Reader, big.NewInt(math.MaxInt64))
		if err != nil {
			return nil, err
		}
		cfg.Seed = rnd.Int64()
	}

	pool, err := crashlab.NewGenPool(cfg.PoolSize, core.Default(), gp, cfg.Seed)
	if err != nil {
		return nil, err
	}

	sCfg := &svrcfg.SvrCfg{
		Log:  log,
		Pool: pool,
	}
	return sCfg, nil
}

func loadProfile(cfg *config) (*spec.GenProfile, error) {
	if cfg.Profile == "" {
		return spec.Default(), nil
	}
	raw, err := os.ReadFile(cfg.Profile)
	if err != nil {
		return nil, err
	}
	if strings.HasSuffix(cfg.Profile, ".json") {
		return spec.GetProfileByJSON(raw)
	}
	return spec.GetProfileByYAML(raw)
}
