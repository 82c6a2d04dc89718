/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/suparena/dbbench/results"
)

// renderMarkdown writes the report as Markdown headings and pipe tables.
func renderMarkdown(w io.Writer, runs []*results.RunResult) error {
	for i, s := range allSections(runs) {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "### %s\n\n", s.Title)
		fmt.Fprintf(w, "| %s |\n", strings.Join(s.Headers, " | "))

		sep := make([]string, len(s.Headers))
		for j := range sep {
			sep[j] = "---"
		}
		fmt.Fprintf(w, "| %s |\n", strings.Join(sep, " | "))

		for _, row := range s.Rows {
			fmt.Fprintf(w, "| %s |\n", strings.Join(row, " | "))
		}
	}
	return nil
}
