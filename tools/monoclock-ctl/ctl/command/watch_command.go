// Copyright 2026 TiKV Project Authors.
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

package command

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/docker/go-units"
	"github.com/pingcap/log"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/tikv/monoclock/pkg/errs"
	"github.com/tikv/monoclock/pkg/suspendmon"
	"github.com/tikv/monoclock/pkg/utils/logutil"
)

const statusShutdownTimeout = 3 * time.Second

// NewWatchCommand return a watch subcommand of rootCmd
func NewWatchCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch [--config=<file>] [--interval=<duration>] [--threshold=<duration>]",
		Short: "watch the host for suspend and hibernation",
		Run:   watchCommandFunc,
	}
	withWatchFlags(cmd)
	return cmd
}

func watchCommandFunc(cmd *cobra.Command, _ []string) {
	cfg := &watchConfig{}
	if err := cfg.parse(cmd.Flags()); err != nil {
		cmd.Printf("Failed to load config: %s\n", err)
		return
	}
	if err := logutil.SetupGlobalLogger(cfg.Log); err != nil {
		cmd.Printf("Failed to initialize logger: %s\n", err)
		return
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if cfg.Duration.Duration > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Duration.Duration)
		defer cancel()
	}

	monitor := suspendmon.NewMonitor(cfg.Monitor, suspendmon.WithHandler(func(e suspendmon.Event) {
		cmd.Printf("suspended for %s (%s) at %s\n", e.Suspended, units.HumanDuration(e.Suspended), e.At)
	}))

	if cfg.StatusAddr != "" {
		srv := &http.Server{
			Addr:              cfg.StatusAddr,
			Handler:           newStatusHandler(monitor),
			ReadHeaderTimeout: statusShutdownTimeout,
		}
		go func() {
			defer logutil.LogPanic()
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Error("status server exited", zap.String("address", cfg.StatusAddr), errs.ZapError(err))
			}
		}()
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), statusShutdownTimeout)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				log.Warn("shutdown status server failed", errs.ZapError(err))
			}
		}()
	}

	cmd.Printf("watching for suspend, monitor id %s\n", monitor.ID())
	if err := monitor.Run(ctx); err != nil {
		cmd.Printf("Failed to run monitor: %s\n", err)
		return
	}
	stats := monitor.Stats()
	cmd.Printf("samples: %d, suspensions: %d, suspended: %s, backward: %d\n",
		stats.Samples, stats.Events, stats.TotalSuspended, stats.Backward)
}
