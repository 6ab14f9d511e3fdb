package securityaudit

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"time"
)

// WriteText prints a human-readable report: a line per failed probe, then a
// per-category tally and a summary line.
func (r Report) WriteText(w io.Writer) error {
	var b strings.Builder

	fmt.Fprintf(&b, "security audit %s\n", r.RunID)
	for _, res := range r.FailedResults() {
		fmt.Fprintf(&b, "FAIL %s [%s] input=%q\n", res.Probe.Name, res.Probe.Category, res.Probe.Input)
		for _, f := range res.Failures {
			fmt.Fprintf(&b, "     %s\n", f)
		}
	}

	type tally struct{ passed, failed int }
	byCategory := make(map[string]*tally)
	for _, res := range r.Results {
		t, ok := byCategory[res.Probe.Category]
		if !ok {
			t = &tally{}
			byCategory[res.Probe.Category] = t
		}
		if res.Passed() {
			t.passed++
		} else {
			t.failed++
		}
	}
	categories := make([]string, 0, len(byCategory))
	for c := range byCategory {
		categories = append(categories, c)
	}
	sort.Strings(categories)
	for _, c := range categories {
		fmt.Fprintf(&b, "%-14s passed=%d failed=%d\n", c, byCategory[c].passed, byCategory[c].failed)
	}

	status := "OK"
	if !r.OK() {
		status = "FAILED"
	}
	fmt.Fprintf(&b, "%s: %d passed, %d failed, %d skipped in %s\n", status, r.Passed, r.Failed, r.Skipped, r.Duration.Round(time.Microsecond))

	_, err := io.WriteString(w, b.String())
	return err
}
