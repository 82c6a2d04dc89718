/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package report

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/suparena/dbbench/results"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
)

// renderTerminal writes the report as bordered terminal tables.
func renderTerminal(w io.Writer, runs []*results.RunResult) error {
	for i, s := range allSections(runs) {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintln(w, titleStyle.Render(s.Title))

		t := table.New().
			Border(lipgloss.NormalBorder()).
			StyleFunc(func(row, col int) lipgloss.Style {
				if row == table.HeaderRow {
					return headerStyle
				}
				return cellStyle
			}).
			Headers(s.Headers...).
			Rows(s.Rows...)
		fmt.Fprintln(w, t.String())
	}
	return nil
}
