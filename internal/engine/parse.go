package engine

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/vianieuws/perstool/internal/model"
)

// parseGeneratedDocument decodes the model's JSON answer into a
// GeneratedDocument. Responses wrapped in markdown code fences are tolerated.
func parseGeneratedDocument(raw string) (*model.GeneratedDocument, error) {
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	s = strings.TrimSpace(s)

	var doc model.GeneratedDocument
	if err := json.Unmarshal([]byte(s), &doc); err != nil {
		return nil, fmt.Errorf("decode rewrite response: %w", err)
	}
	doc.Kop = strings.TrimSpace(doc.Kop)
	doc.Intro = strings.TrimSpace(doc.Intro)
	doc.Body = strings.TrimSpace(doc.Body)
	if doc.Kop == "" || doc.Intro == "" || doc.Body == "" {
		return nil, fmt.Errorf("rewrite response misses kop, intro or body")
	}
	return &doc, nil
}
