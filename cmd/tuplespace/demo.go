// Copyright (C) 2025 sage-x-project
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with this program. If not, see <https://www.gnu.org/licenses/>.

// SPDX-License-Identifier: LGPL-3.0-or-later

package main

import (
	"context"
	"fmt"
	"net/http/httptest"
	"time"

	"github.com/spf13/cobra"

	"github.com/sage-x-project/tuplespace/builder"
	"github.com/sage-x-project/tuplespace/core/resilience"
	"github.com/sage-x-project/tuplespace/observability/metrics"
	"github.com/sage-x-project/tuplespace/pkg/tuplespace"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run a small, self-contained tuplespace demo",
	Long: `Each demo subcommand stands up its own in-process Space, drives it
through a scenario, and prints what happened — no external services, no
flags to configure.`,
}

func init() {
	demoCmd.AddCommand(roundtripCmd)
	demoCmd.AddCommand(blockingCmd)
	demoCmd.AddCommand(transactionCmd)
	demoCmd.AddCommand(mandelbrotCmd)
	demoCmd.AddCommand(metricsCmd)
}

var roundtripCmd = &cobra.Command{
	Use:   "roundtrip",
	Short: "Put a tuple and take it back out by pattern",
	RunE:  runRoundtrip,
}

func runRoundtrip(cmd *cobra.Command, args []string) error {
	space := builder.NewSpace("demo-roundtrip").MustBuild()
	defer space.Close()

	fmt.Println("putting {greeting: \"hello\", count: 1}")
	if err := space.Put(map[string]tuplespace.Value{"greeting": "hello", "count": 1}, 0, nil); err != nil {
		return fmt.Errorf("put: %w", err)
	}

	fmt.Println("taking {greeting: \"hello\", count: <wildcard>}")
	got, ok, err := space.Take(context.Background(), map[string]tuplespace.Value{"greeting": "hello", "count": nil}, tuplespace.NoWait, nil)
	if err != nil {
		return fmt.Errorf("take: %w", err)
	}
	if !ok {
		return fmt.Errorf("take returned no match, expected one")
	}
	fmt.Printf("took %v\n", got)
	return nil
}

var blockingCmd = &cobra.Command{
	Use:   "blocking",
	Short: "Block a Take until a matching Put wakes it",
	RunE:  runBlocking,
}

func runBlocking(cmd *cobra.Command, args []string) error {
	space := builder.NewSpace("demo-blocking").MustBuild()
	defer space.Close()

	result := make(chan map[string]tuplespace.Value, 1)
	errs := make(chan error, 1)

	fmt.Println("starting a Take that blocks until a matching job arrives")
	go func() {
		// The tuplespace wait itself is unbounded (tuplespace.Forever);
		// resilience.WithTimeout is the outer watchdog in case nothing
		// ever shows up to wake it.
		timeoutCfg := &resilience.TimeoutConfig{Duration: 5 * time.Second}
		var got map[string]tuplespace.Value
		err := resilience.WithTimeout(context.Background(), timeoutCfg, func(ctx context.Context) error {
			var ok bool
			var err error
			got, ok, err = space.Take(ctx, map[string]tuplespace.Value{"job": "render"}, tuplespace.Forever, nil)
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("blocked take returned no match")
			}
			return nil
		})
		if err != nil {
			errs <- err
			return
		}
		result <- got
	}()

	time.Sleep(200 * time.Millisecond)
	fmt.Println("putting {job: \"render\"} to wake it")
	if err := space.Put(map[string]tuplespace.Value{"job": "render"}, 0, nil); err != nil {
		return fmt.Errorf("put: %w", err)
	}

	select {
	case got := <-result:
		fmt.Printf("blocked take woke up with %v\n", got)
	case err := <-errs:
		return err
	case <-time.After(5 * time.Second):
		return fmt.Errorf("blocked take never woke up")
	}
	return nil
}

var transactionCmd = &cobra.Command{
	Use:   "transaction",
	Short: "Show transactional put/take visibility across commit and rollback",
	RunE:  runTransaction,
}

func runTransaction(cmd *cobra.Command, args []string) error {
	space := builder.NewSpace("demo-transaction").MustBuild()
	defer space.Close()

	txn := tuplespace.NewTransaction()
	fmt.Println("putting {account: \"alice\", balance: 100} inside an open transaction")
	if err := space.Put(map[string]tuplespace.Value{"account": "alice", "balance": 100}, 0, txn); err != nil {
		return fmt.Errorf("put: %w", err)
	}

	_, ok, err := space.Get(context.Background(), map[string]tuplespace.Value{"account": "alice", "balance": nil}, tuplespace.NoWait, nil)
	if err != nil {
		return fmt.Errorf("get: %w", err)
	}
	fmt.Printf("visible outside the transaction before commit? %v\n", ok)

	fmt.Println("committing")
	if err := txn.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}

	_, ok, err = space.Get(context.Background(), map[string]tuplespace.Value{"account": "alice", "balance": nil}, tuplespace.NoWait, nil)
	if err != nil {
		return fmt.Errorf("get: %w", err)
	}
	fmt.Printf("visible outside the transaction after commit? %v\n", ok)
	return nil
}

var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "Drive a Space wired to a Prometheus collector and print the scraped output",
	RunE:  runMetrics,
}

func runMetrics(cmd *cobra.Command, args []string) error {
	collector := metrics.NewPrometheusCollector()
	space := builder.NewSpace("demo-metrics").WithMetrics(collector).MustBuild()
	defer space.Close()

	fmt.Println("putting and taking a few tuples to generate counter activity")
	for i := 0; i < 3; i++ {
		if err := space.Put(map[string]tuplespace.Value{"job": "render", "n": i}, 0, nil); err != nil {
			return fmt.Errorf("put: %w", err)
		}
	}
	for i := 0; i < 3; i++ {
		if _, _, err := space.Take(context.Background(), map[string]tuplespace.Value{"job": "render", "n": nil}, tuplespace.NoWait, nil); err != nil {
			return fmt.Errorf("take: %w", err)
		}
	}
	// One more Take against an empty Space to generate a timeout sample.
	if _, _, err := space.Take(context.Background(), map[string]tuplespace.Value{"job": "render", "n": nil}, tuplespace.NoWait, nil); err != nil {
		return fmt.Errorf("take: %w", err)
	}

	req := httptest.NewRequest("GET", "/metrics", nil)
	rec := httptest.NewRecorder()
	collector.Handler().ServeHTTP(rec, req)

	fmt.Print(rec.Body.String())
	return nil
}
