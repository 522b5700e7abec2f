package cssprune

import (
	"encoding/json"
	"io"
	"time"
)

// JSONOutput is the structured export schema for tooling integration.
type JSONOutput struct {
	Version   string       `json:"version"`
	Timestamp string       `json:"timestamp"`
	Summary   JSONSummary  `json:"summary"`
	Unused    []UnusedRule `json:"unused"`
	Warnings  []string     `json:"warnings,omitempty"`
}

// JSONSummary contains the run's high-level statistics.
type JSONSummary struct {
	IndexSizeBytes  int64 `json:"index_size_bytes"`
	DistinctTokens  int   `json:"distinct_tokens"`
	SearchFiles     int   `json:"search_files"`
	StylesheetFiles int   `json:"stylesheet_files"`
	RulesExamined   int   `json:"rules_examined"`
	UnusedRules     int   `json:"unused_rules"`
}

// WriteJSON exports the result as indented JSON.
func WriteJSON(w io.Writer, result *Result) error {
	out := JSONOutput{
		Version:   "1",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Summary: JSONSummary{
			IndexSizeBytes:  result.IndexSize,
			DistinctTokens:  result.TokenCount,
			SearchFiles:     result.FilesScanned,
			StylesheetFiles: result.FilesParsed,
			RulesExamined:   result.RulesSeen,
			UnusedRules:     len(result.Unused),
		},
		Unused:   result.Unused,
		Warnings: result.Warnings,
	}
	if out.Unused == nil {
		out.Unused = []UnusedRule{}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
