// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	lgtable "github.com/charmbracelet/lipgloss/table"
	"github.com/dustin/go-humanize"
	"k8s.io/klog/v2"
)

// maxFailuresReported is the maximum number of failure messages printed.
const maxFailuresReported = 10

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Padding(1, 4, 1, 4)
	keyStyle   = lipgloss.NewStyle().Align(lipgloss.Right).Padding(0, 1)
	valueStyle = lipgloss.NewStyle().Align(lipgloss.Left).Padding(0, 1)
	failStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#F33")).Bold(true)
	okStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#3C3"))

	tableBorderColor = "#705090"
)

func newReportTable() *lgtable.Table {
	return lgtable.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color(tableBorderColor))).
		StyleFunc(func(row, col int) lipgloss.Style {
			if col == 0 {
				return keyStyle
			}
			return valueStyle
		})
}

func printReport(cfg config, stats *runStats) {
	fmt.Println(titleStyle.Render("tiled_bench"))
	table := newReportTable()
	table.Row("dtype", cfg.dtype.String())
	table.Row("tile range", cfg.tileRange.String())
	table.Row("permutation", cfg.perm.String())
	table.Row("offsets", fmt.Sprintf("%v", cfg.offsets))
	table.Row("factor", humanize.Ftoa(cfg.factor))
	table.Row("consume", fmt.Sprintf("%v", cfg.consume))
	table.Row("parallelism", parallelismString(stats.parallelism))
	table.Row("# tiles", humanize.Comma(int64(stats.numTiles)))
	table.Row("# elements", humanize.Comma(int64(stats.numElements)))
	table.Row("# bytes", humanize.Bytes(uint64(stats.numElements)*uint64(cfg.dtype.Size())))
	table.Row("time", stats.elapsed.String())
	if seconds := stats.elapsed.Seconds(); seconds > 0 {
		table.Row("throughput", humanize.SIWithDigits(float64(stats.numElements)/seconds, 2, "elements/s"))
	}
	if stats.numFailures > 0 {
		table.Row("failures", failStyle.Render(humanize.Comma(int64(stats.numFailures))))
	} else {
		table.Row("failures", okStyle.Render("0"))
	}
	fmt.Println(table.Render())

	for i, failure := range stats.failures {
		if i == maxFailuresReported {
			klog.Warningf("... %d more failures not reported", len(stats.failures)-maxFailuresReported)
			break
		}
		klog.Errorf("%s", failure)
	}
}

func parallelismString(parallelism int) string {
	switch {
	case parallelism < 0:
		return "unlimited"
	case parallelism == 0:
		return "disabled"
	}
	return humanize.Comma(int64(parallelism))
}
