// Copyright (C) 2025 sage-x-project
// SPDX-License-Identifier: LGPL-3.0-or-later

package main

import "testing"

func TestRunRoundtrip(t *testing.T) {
	if err := runRoundtrip(roundtripCmd, nil); err != nil {
		t.Fatalf("runRoundtrip() error = %v", err)
	}
}

func TestRunBlocking(t *testing.T) {
	if err := runBlocking(blockingCmd, nil); err != nil {
		t.Fatalf("runBlocking() error = %v", err)
	}
}

func TestRunTransaction(t *testing.T) {
	if err := runTransaction(transactionCmd, nil); err != nil {
		t.Fatalf("runTransaction() error = %v", err)
	}
}

func TestRunMetrics(t *testing.T) {
	if err := runMetrics(metricsCmd, nil); err != nil {
		t.Fatalf("runMetrics() error = %v", err)
	}
}

func TestDemoCmd_HasSubcommands(t *testing.T) {
	names := map[string]bool{}
	for _, c := range demoCmd.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"roundtrip", "blocking", "transaction", "mandelbrot", "metrics"} {
		if !names[want] {
			t.Errorf("demoCmd missing subcommand %q", want)
		}
	}
}
