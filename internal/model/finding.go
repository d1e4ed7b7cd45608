// Package model defines the data structures shared across the analysis engine.
package model

import "fmt"

// Severity represents the reporting channel a finding maps to.
type Severity string

const (
	// SeverityError marks violations that break structured-concurrency discipline.
	SeverityError Severity = "error"
	// SeverityWarning marks advisory findings.
	SeverityWarning Severity = "warning"
	// SeverityInfo is reserved for engine-produced notices such as rule failures.
	SeverityInfo Severity = "info"
)

// Span is a half-open source region, 1-based lines and columns.
type Span struct {
	File      string `json:"file"`
	StartLine int    `json:"startLine"`
	StartCol  int    `json:"startCol"`
	EndLine   int    `json:"endLine"`
	EndCol    int    `json:"endCol"`
}

// Before reports whether s starts strictly before other in document order.
func (s Span) Before(other Span) bool {
	if s.File != other.File {
		return s.File < other.File
	}

	if s.StartLine != other.StartLine {
		return s.StartLine < other.StartLine
	}

	return s.StartCol < other.StartCol
}

// Finding is a single rule violation reported by the engine.
type Finding struct {
	RuleID    string   `json:"ruleId"`
	Severity  Severity `json:"severity"`
	Span      Span     `json:"span"`
	Message   string   `json:"message"`
	DocAnchor string   `json:"docAnchor"`
}

// NewFinding builds a Finding whose message embeds the rule code.
func NewFinding(ruleID string, severity Severity, span Span, docAnchor, format string, args ...any) Finding {
	return Finding{
		RuleID:    ruleID,
		Severity:  severity,
		Span:      span,
		Message:   fmt.Sprintf("[%s] ", ruleID) + fmt.Sprintf(format, args...),
		DocAnchor: docAnchor,
	}
}
