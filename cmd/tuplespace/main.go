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
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "tuplespace",
	Short: "Explore an in-process, associative tuplespace from the command line",
	Long: `tuplespace is the CLI companion to the pkg/tuplespace coordination
engine: an in-process, content-addressable store where concurrent
participants publish immutable tuples and retrieve them by value-pattern
templates.

Run "tuplespace demo" to see it in action, "tuplespace serve" to drive a
registry-backed Space interactively with put/take/get, or "tuplespace
version" for build information.`,
}

func init() {
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(demoCmd)
	rootCmd.AddCommand(serveCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
