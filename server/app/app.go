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

// Package app 提供應用程式生命週期管理（App），負責統一啟動與關閉多個 Component。
package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"
)

// 優雅關閉的總預算；單一元件拖過這個期限由實作者自行決定是否強制中止。
const shutdownBudget = 5 * time.Second

// App 啟動所有註冊的 Component，並在收到 OS 信號或任一元件出錯時協調優雅關閉。
type App struct {
	comps []Component
}

// New 建立一個新的 App 實例。
func New() *App { return &App{} }

// NewWith 是 New 的語法糖，允許在建立時直接註冊多個 Component。
func NewWith(comps ...Component) *App {
	app := New()
	for _, c := range comps {
		app.Register(c)
	}
	return app
}

// Register 將一個 Component 註冊到 App 中。註冊順序就是啟動順序；
// 關閉時走反向順序（後啟動的先關）。
func (a *App) Register(c Component) {
	a.comps = append(a.comps, c)
}

// Run 以 goroutine 並行啟動所有元件，阻塞直到其中一個退出條件成立：
//   - 收到 SIGINT/SIGTERM：優雅關閉，回傳 nil（正常結束）。
//   - 任一 Component.Run 返回：優雅關閉，回傳該錯誤。
//
// 每個 Component.Run 假設是阻塞調用，代表該元件的生命週期。
func (a *App) Run() error {
	// 容量 = 元件數，晚到的錯誤不會卡住 goroutine
	errCh := make(chan error, len(a.comps))
	for _, c := range a.comps {
		go func(c Component) {
			errCh <- c.Run()
		}(c)
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case <-quit:
		a.gracefulShutdown(shutdownBudget)
		return nil
	case err := <-errCh:
		a.gracefulShutdown(shutdownBudget)
		return err
	}
}

// gracefulShutdown 在共用的 timeout 內反向關閉所有元件。
// 關閉錯誤只記錄不中斷：剩下的元件仍然要有機會收尾。
func (a *App) gracefulShutdown(td time.Duration) {
	ctx, cancel := context.WithTimeout(context.Background(), td)
	defer cancel()
	for i := len(a.comps) - 1; i >= 0; i-- {
		if err := a.comps[i].Shutdown(ctx); err != nil {
			fmt.Fprintf(os.Stderr, "shutdown err: %v\n", err)
		}
	}
}
