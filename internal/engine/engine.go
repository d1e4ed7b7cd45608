// Package engine runs the rule catalog over parsed syntax trees and
// aggregates per-file results into a single report.
package engine

import (
	"context"
	"fmt"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/mouse-blink/cooplint/internal/classify"
	m "github.com/mouse-blink/cooplint/internal/model"
	"github.com/mouse-blink/cooplint/internal/rules"
	"github.com/mouse-blink/cooplint/internal/syntax"
)

// Options tunes one engine run.
type Options struct {
	// Threads caps the number of files analyzed concurrently.
	Threads int
	// DisabledRules lists rule ids or names excluded from the run.
	DisabledRules []string
	// Extensions widens the default name registry.
	Extensions classify.Extensions
	// Catalog overrides the built-in rule set; nil runs the full catalog.
	Catalog []rules.Rule
}

// Input is one compilation unit handed to the engine. Err carries a
// loader failure; such inputs become file errors, never findings.
type Input struct {
	File string
	Tree *syntax.Tree
	Err  error
}

type fileResult struct {
	findings []m.Finding
	fileErr  *m.FileError
}

// Analyze runs every enabled rule over every input and merges the
// results. Findings come out sorted by file, position and rule id, with
// exact duplicates removed. The error return is reserved for run-level
// failures such as context cancellation; per-file trouble lands in
// Report.Errors instead.
func Analyze(ctx context.Context, inputs []Input, opts Options) (m.Report, error) {
	threads := opts.Threads
	if threads <= 0 {
		threads = 1
	}

	catalog := enabledRules(opts.Catalog, opts.DisabledRules)
	classifier := classify.New(classify.Default().Extend(opts.Extensions))

	// One slot per input, so workers never share a buffer.
	results := make([]fileResult, len(inputs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(threads)

	for i, in := range inputs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			results[i] = analyzeFile(in, catalog, classifier)

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return m.Report{}, fmt.Errorf("analysis aborted: %w", err)
	}

	return merge(results, len(inputs)), nil
}

func analyzeFile(in Input, catalog []rules.Rule, classifier *classify.Classifier) fileResult {
	if in.Err != nil {
		return fileResult{fileErr: &m.FileError{File: in.File, Message: in.Err.Error()}}
	}

	if err := in.Tree.Validate(); err != nil {
		return fileResult{fileErr: &m.FileError{File: in.File, Message: fmt.Sprintf("malformed syntax tree: %v", err)}}
	}

	rctx := rules.NewContext(in.Tree, classifier)

	var findings []m.Finding

	for _, rule := range catalog {
		findings = append(findings, runGuarded(rule, rctx, in.File)...)
	}

	return fileResult{findings: findings}
}

// runGuarded isolates one rule invocation: a panic becomes a single
// info-severity finding and the remaining rules still run.
func runGuarded(rule rules.Rule, rctx *rules.Context, file string) (out []m.Finding) {
	defer func() {
		if r := recover(); r != nil {
			span := m.Span{File: file, StartLine: 1, StartCol: 1, EndLine: 1, EndCol: 1}
			out = []m.Finding{
				m.NewFinding(rule.ID, m.SeverityInfo, span, rule.DocAnchor, "rule failed on this file: %v", r),
			}
		}
	}()

	return rule.Run(rctx)
}

func enabledRules(catalog []rules.Rule, disabled []string) []rules.Rule {
	if catalog == nil {
		catalog = rules.All()
	}

	off := make(map[string]bool, len(disabled))
	for _, d := range disabled {
		off[d] = true
	}

	var out []rules.Rule

	for _, r := range catalog {
		if off[r.ID] || off[r.Name] {
			continue
		}

		out = append(out, r)
	}

	return out
}

type findingKey struct {
	ruleID string
	span   m.Span
}

func merge(results []fileResult, files int) m.Report {
	report := m.Report{Files: files}

	for _, res := range results {
		if res.fileErr != nil {
			report.Errors = append(report.Errors, *res.fileErr)

			continue
		}

		report.Findings = append(report.Findings, res.findings...)
	}

	sort.SliceStable(report.Findings, func(i, j int) bool {
		a, b := report.Findings[i], report.Findings[j]

		if a.Span.Before(b.Span) {
			return true
		}

		if b.Span.Before(a.Span) {
			return false
		}

		return a.RuleID < b.RuleID
	})

	report.Findings = dedupe(report.Findings)

	sort.Slice(report.Errors, func(i, j int) bool {
		return report.Errors[i].File < report.Errors[j].File
	})

	return report
}

// dedupe drops findings that repeat an exact (rule id, span) pair.
// Distinct messages at the same span from the same rule count as one.
func dedupe(findings []m.Finding) []m.Finding {
	if len(findings) == 0 {
		return findings
	}

	seen := make(map[findingKey]bool, len(findings))
	out := findings[:0]

	for _, f := range findings {
		key := findingKey{ruleID: f.RuleID, span: f.Span}
		if seen[key] {
			continue
		}

		seen[key] = true

		out = append(out, f)
	}

	return out
}
