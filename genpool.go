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

package crashlab

import (
	"sync/atomic"

	"github.com/zintix-labs/crashlab/errs"
	"github.com/zintix-labs/crashlab/sdk/core"
	"github.com/zintix-labs/crashlab/spec"
)

// GenPool 是 mock server 用的產生器池。
//
// 單一 Generator 不支援併發呼叫；池以 buffered channel 出借實例，
// 每個請求 Get 一台、用完 Put 回來，彼此的亂數序列完全獨立。
// 每台的 seed 由 baseSeed 以固定算法派生（seedMaker），整池可重現。
type GenPool struct {
	ch   chan *Generator
	size int
}

// NewGenPool 建立 size 台共用同一份 profile 的產生器池。
func NewGenPool(size int, cf core.PRNGFactory, gp *spec.GenProfile, baseSeed int64) (*GenPool, error) {
	if size < 1 {
		return nil, errs.NewWarn("pool size must >= 1")
	}
	sm := newSeedMaker(baseSeed)
	p := &GenPool{
		ch:   make(chan *Generator, size),
		size: size,
	}
	for i := 0; i < size; i++ {
		g, err := NewWithSeed(cf, gp, sm.next())
		if err != nil {
			return nil, err
		}
		p.ch <- g
	}
	return p, nil
}

// Get 借出一台產生器；池空時阻塞到有實例歸還。
func (p *GenPool) Get() *Generator {
	return <-p.ch
}

// Put 歸還產生器。只能歸還由同一個池借出的實例。
func (p *GenPool) Put(g *Generator) {
	p.ch <- g
}

// Size 回傳池容量。
func (p *GenPool) Size() int {
	return p.size
}

const mask63 = uint64(1<<63) - 1

type seedMaker struct {
	state atomic.Uint64 // always in [0, 2^63)
}

func newSeedMaker(seed int64) *seedMaker {
	s := &seedMaker{}
	s.state.Store(uint64(seed) & mask63)
	return s
}

// state 走全週期（不重複），再用可逆 mix63 打散
//
// 此方法可能在併發環境下被多 goroutines 同時呼叫，
// 因此 state 的推進必須是原子的（CAS 迴圈確保每次呼叫取得唯一的下一個 state）。
func (s *seedMaker) next() int64 {
	for {
		old := s.state.Load()                                            // always masked
		next := (old*6364136223846793005 + 1442695040888963407) & mask63 // full-period LCG mod 2^63
		if s.state.CompareAndSwap(old, next) {
			return int64(mix63(next)) // 一定非負
		}
	}
}

// mix63：只用「可逆」的 bit 操作 + 乘奇數（mod 2^63）
func mix63(x uint64) uint64 {
	x &= mask63
	x ^= x >> 30
	x = (x * 0xBF58476D1CE4E5B9) & mask63 // 乘奇數 ⇒ mod 2^63 可逆
	x ^= x >> 27
	x = (x * 0x94D049BB133111EB) & mask63
	x ^= x >> 31
	return x & mask63
}
