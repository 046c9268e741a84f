package restyle

import (
	"encoding/json"
	"io"
)

// JSONOutput represents the structured JSON export schema
type JSONOutput struct {
	Path        string `json:"path"`
	Encoding    string `json:"encoding"`
	Modified    bool   `json:"modified"`
	DryRun      bool   `json:"dry_run"`
	Written     bool   `json:"written"`
	BytesBefore int    `json:"bytes_before"`
	BytesAfter  int    `json:"bytes_after"`
}

// WriteJSON writes the rewrite result as JSON
func WriteJSON(w io.Writer, result *Result) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(buildJSONOutput(result))
}

// buildJSONOutput converts Result to JSONOutput
func buildJSONOutput(result *Result) JSONOutput {
	return JSONOutput{
		Path:        result.Path,
		Encoding:    result.Encoding,
		Modified:    result.Modified,
		DryRun:      result.DryRun,
		Written:     result.Written,
		BytesBefore: len(result.Original),
		BytesAfter:  len(result.Final),
	}
}
