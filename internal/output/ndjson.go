package output

import (
	"encoding/json"
	"io"

	"github.com/phyten/hookspot/internal/model"
)

type ndjsonRecord struct {
	Project string `json:"project_name"`
	model.Match
}

// WriteNDJSON streams matches as newline-delimited JSON objects.
func WriteNDJSON(w io.Writer, matches []model.Match, project string) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	for _, m := range matches {
		if err := enc.Encode(ndjsonRecord{Project: project, Match: m}); err != nil {
			return err
		}
	}
	return nil
}
