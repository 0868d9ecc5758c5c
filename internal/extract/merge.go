package extract

import "github.com/crelens/dealsense/internal/model"

// MergePages folds per-page extraction results into one document-level
// result. The reduce is associative and order-independent for field values:
// for each field the entry with the strictly higher confidence wins, ties
// keep the first seen. Notes concatenate in page order and missing-critical
// sets union. Inputs are never mutated.
func MergePages(pages []*model.PageExtraction) *model.PageExtraction {
	merged := &model.PageExtraction{Fields: make(map[string]model.ExtractedField)}

	missing := make(map[string]bool)
	for _, page := range pages {
		if page == nil {
			continue
		}
		for name, field := range page.Fields {
			current, exists := merged.Fields[name]
			if !exists || field.Confidence > current.Confidence {
				merged.Fields[name] = field
			}
		}
		merged.Notes = append(merged.Notes, page.Notes...)
		for _, name := range page.MissingCritical {
			missing[name] = true
		}
	}

	// A field found on any page is no longer missing
	for _, name := range model.CriticalFields {
		if missing[name] {
			if _, ok := merged.Fields[name]; !ok {
				merged.MissingCritical = append(merged.MissingCritical, name)
			}
		}
	}

	if len(merged.Fields) > 0 {
		sum := 0.0
		for _, f := range merged.Fields {
			sum += f.Confidence
		}
		merged.Confidence = sum / float64(len(merged.Fields))
	}

	return merged
}
