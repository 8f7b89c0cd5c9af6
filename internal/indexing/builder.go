package indexing

import (
	"strings"

	"github.com/campusconnect/discovery-engine/index"
	"github.com/campusconnect/discovery-engine/internal/errors"
	"github.com/campusconnect/discovery-engine/internal/tokenizer"
	"github.com/campusconnect/discovery-engine/services"
)

// Build constructs a brand-new PrefixIndex from a full record snapshot. It
// never patches an existing index: the caller publishes the result with an
// atomic swap, so readers see either the fully-old or fully-new index.
//
// Per record it indexes:
//  1. every whitespace-separated word of the primary text field,
//  2. each tag as one whole-field token,
//  3. the secondary display string (organization name, industry) as one
//     whole-field token.
//
// A malformed record (non-positive identifier) aborts the build; the
// caller must leave the live index unchanged.
func Build(category string, records []services.RecordSnapshot) (*index.PrefixIndex, error) {
	idx := index.New()

	for _, rec := range records {
		if rec.ID <= 0 {
			return nil, errors.NewRebuildFailedError(category,
				errors.NewValidationError("id", "record identifier must be positive"))
		}

		for _, word := range tokenizer.Tokenize(rec.PrimaryText) {
			idx.Insert(word, rec.ID)
		}
		for _, tag := range rec.Tags {
			idx.Insert(tag, rec.ID)
		}
		if strings.TrimSpace(rec.SecondaryText) != "" {
			idx.Insert(rec.SecondaryText, rec.ID)
		}
	}

	return idx, nil
}
