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
	"bufio"
	"context"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/sage-x-project/tuplespace/pkg/tuplespace"
)

var serveSpace string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run an in-process loop accepting put/take/get against a named, registry-backed Space",
	Long: `serve starts a single Space (looked up or created in the process-wide
registry by name) and reads one command per line from stdin until EOF:

  put key=value [key=value ...]     publish a tuple
  take key[=value] [key ...]        destructively read a matching tuple, blocking up to 5s
  get key[=value] [key ...]         non-destructively read a matching tuple, blocking up to 5s
  spaces                            list every registered Space name
  quit                              stop the loop

A bare key with no "=" is a wildcard; int/float/bool-looking values are
parsed as such, everything else stays a string.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveSpace, "space", tuplespace.DefaultSpaceName, "name of the registry-backed Space to serve")
}

func runServe(cmd *cobra.Command, args []string) error {
	space := tuplespace.GetOrCreateSpace(serveSpace, nil, nil)
	defer tuplespace.CloseSpace(serveSpace)

	out := cmd.OutOrStdout()
	scanner := bufio.NewScanner(cmd.InOrStdin())

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		op, rest := strings.ToLower(fields[0]), fields[1:]

		if err := dispatchServeCmd(out, space, op, rest); err != nil {
			if err == errServeQuit {
				return nil
			}
			fmt.Fprintf(out, "error: %v\n", err)
		}
	}
	if err := scanner.Err(); err != nil && err != io.EOF {
		return err
	}
	return nil
}

var errServeQuit = fmt.Errorf("quit")

func dispatchServeCmd(out io.Writer, space *tuplespace.Space, op string, args []string) error {
	switch op {
	case "quit", "exit":
		return errServeQuit
	case "spaces":
		names := tuplespace.ListSpaces()
		sort.Strings(names)
		fmt.Fprintln(out, strings.Join(names, ", "))
		return nil
	case "put":
		fields, err := parseConcreteFields(args)
		if err != nil {
			return err
		}
		if err := space.Put(fields, 0, nil); err != nil {
			return err
		}
		fmt.Fprintf(out, "ok put %v\n", fields)
		return nil
	case "take", "get":
		tmpl, err := parseTemplateFields(args)
		if err != nil {
			return err
		}
		ctx := context.Background()

		var (
			got map[string]tuplespace.Value
			ok  bool
		)
		if op == "take" {
			got, ok, err = space.Take(ctx, tmpl, 5*time.Second, nil)
		} else {
			got, ok, err = space.Get(ctx, tmpl, 5*time.Second, nil)
		}
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintln(out, "no match")
			return nil
		}
		fmt.Fprintf(out, "ok %v\n", got)
		return nil
	default:
		return fmt.Errorf("unknown command %q", op)
	}
}

// parseConcreteFields requires every argument to be key=value.
func parseConcreteFields(args []string) (map[string]tuplespace.Value, error) {
	fields := make(map[string]tuplespace.Value, len(args))
	for _, arg := range args {
		key, raw, ok := strings.Cut(arg, "=")
		if !ok {
			return nil, fmt.Errorf("put field %q must be key=value", arg)
		}
		fields[key] = parseScalar(raw)
	}
	return fields, nil
}

// parseTemplateFields accepts key=value (concrete match) or a bare key
// (wildcard) for take/get.
func parseTemplateFields(args []string) (map[string]tuplespace.Value, error) {
	fields := make(map[string]tuplespace.Value, len(args))
	for _, arg := range args {
		key, raw, hasValue := strings.Cut(arg, "=")
		if !hasValue {
			fields[key] = nil
			continue
		}
		fields[key] = parseScalar(raw)
	}
	return fields, nil
}

// parseScalar infers int64/float64/bool from raw text, falling back to
// string — there is no type annotation syntax on the command line.
func parseScalar(raw string) tuplespace.Value {
	if i, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(raw, 64); err == nil {
		return f
	}
	if b, err := strconv.ParseBool(raw); err == nil {
		return b
	}
	return raw
}
