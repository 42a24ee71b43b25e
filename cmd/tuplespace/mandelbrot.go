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
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/sage-x-project/tuplespace/builder"
	"github.com/sage-x-project/tuplespace/core/resilience"
	"github.com/sage-x-project/tuplespace/pkg/tuplespace"
)

var mandelbrotWorkers int

var mandelbrotCmd = &cobra.Command{
	Use:   "mandelbrot",
	Short: "Render a Mandelbrot set row-by-row using a tuplespace job queue",
	Long: `Splits the image into one row-job tuple per scanline, then starts a
worker pool (an errgroup.Group) that repeatedly Takes a job, renders that
row, and Puts the result back — the tuplespace standing in for the shared
work queue, with no channel or mutex of the caller's own.`,
	RunE: runMandelbrot,
}

func init() {
	mandelbrotCmd.Flags().IntVar(&mandelbrotWorkers, "workers", 4, "number of concurrent render workers")
}

const (
	mandelbrotWidth  = 60
	mandelbrotHeight = 20
	mandelbrotIter   = 100
)

func runMandelbrot(cmd *cobra.Command, args []string) error {
	space := builder.NewSpace("demo-mandelbrot").MustBuild()
	defer space.Close()

	for row := 0; row < mandelbrotHeight; row++ {
		if err := space.Put(map[string]tuplespace.Value{"job": "row", "row": row}, 0, nil); err != nil {
			return fmt.Errorf("enqueue row %d: %w", row, err)
		}
	}

	// renderLimiter bounds how many rows are being rendered at once,
	// independent of how many pollers are draining the job queue.
	renderLimiter := resilience.NewBulkhead(&resilience.BulkheadConfig{
		MaxConcurrent: mandelbrotWorkers,
		Timeout:       30 * time.Second,
	})

	g, ctx := errgroup.WithContext(context.Background())
	for w := 0; w < mandelbrotWorkers; w++ {
		g.Go(func() error {
			for {
				fields, ok, err := space.Take(ctx, map[string]tuplespace.Value{"job": "row", "row": nil}, tuplespace.NoWait, nil)
				if err != nil {
					return err
				}
				if !ok {
					return nil // no more rows queued
				}

				row := fields["row"].(int)
				err = renderLimiter.Execute(ctx, func(ctx context.Context) error {
					line := renderMandelbrotRow(row)
					return space.Put(map[string]tuplespace.Value{"result": "row", "row": row, "line": line}, 0, nil)
				})
				if err != nil {
					return fmt.Errorf("publish row %d: %w", row, err)
				}
			}
		})
	}
	if err := g.Wait(); err != nil {
		return fmt.Errorf("render: %w", err)
	}

	for row := 0; row < mandelbrotHeight; row++ {
		fields, ok, err := space.Take(context.Background(), map[string]tuplespace.Value{"result": "row", "row": row, "line": nil}, tuplespace.NoWait, nil)
		if err != nil {
			return fmt.Errorf("collect row %d: %w", row, err)
		}
		if !ok {
			return fmt.Errorf("missing rendered row %d", row)
		}
		fmt.Println(fields["line"].(string))
	}
	return nil
}

// renderMandelbrotRow computes one scanline of the classic escape-time
// Mandelbrot set over a fixed [-2,1]x[-1,1] viewport.
func renderMandelbrotRow(row int) string {
	const (
		xMin, xMax = -2.0, 1.0
		yMin, yMax = -1.0, 1.0
	)

	y := yMin + (yMax-yMin)*float64(row)/float64(mandelbrotHeight-1)
	glyphs := " .:-=+*#%@"

	out := make([]byte, mandelbrotWidth)
	for col := 0; col < mandelbrotWidth; col++ {
		x := xMin + (xMax-xMin)*float64(col)/float64(mandelbrotWidth-1)

		var zr, zi float64
		n := 0
		for ; n < mandelbrotIter; n++ {
			if zr*zr+zi*zi > 4 {
				break
			}
			zr, zi = zr*zr-zi*zi+x, 2*zr*zi+y
		}

		idx := n * (len(glyphs) - 1) / mandelbrotIter
		out[col] = glyphs[idx]
	}
	return string(out)
}
