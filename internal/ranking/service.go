package ranking

import (
	"sort"
	"strings"

	"github.com/campusconnect/discovery-engine/internal/tokenizer"
	"github.com/campusconnect/discovery-engine/model"
	"github.com/campusconnect/discovery-engine/services"
)

// Scoring weights. A tag that matches a stated job preference outweighs a
// tag that merely matches a known skill, and title-word hits trail both.
const (
	skillMatchWeight      = 3
	preferenceMatchWeight = 5
	titleMatchWeight      = 2
	affinityBonus         = 2 // per preference found inside the secondary entity's name/category
)

// Service computes personalized relevance scores and total orders over
// candidate records. It holds no state: every call is a pure function of
// (candidates, profile), so concurrent calls need no synchronization.
// It fulfills the services.Ranker interface.
type Service struct{}

// NewService creates a new ranking Service.
func NewService() *Service {
	return &Service{}
}

// Score computes the relevance of a single record to the given profile.
// The matched interest terms are retained on the result for
// explainability.
func (s *Service) Score(rec services.RecordView, profile model.InterestProfile) services.ScoredCandidate {
	return scoreAgainst(rec, newInterestSet(profile))
}

// Rank orders candidates by score descending; ties break by the record's
// date ascending so the order is fully deterministic. A profile with no
// skills and no preferences short-circuits to plain chronological order
// through an explicit branch, not as a side effect of stable sorting, so
// the contract survives future scoring terms.
func (s *Service) Rank(records []services.RecordView, profile model.InterestProfile) []services.ScoredCandidate {
	if profile.IsEmpty() {
		return chronological(records)
	}

	interests := newInterestSet(profile)

	type scoredView struct {
		view      services.RecordView
		candidate services.ScoredCandidate
	}
	scored := make([]scoredView, len(records))
	for i, rec := range records {
		scored[i] = scoredView{view: rec, candidate: scoreAgainst(rec, interests)}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		if scored[i].candidate.Score != scored[j].candidate.Score {
			return scored[i].candidate.Score > scored[j].candidate.Score
		}
		return scored[i].view.Date.Before(scored[j].view.Date)
	})

	out := make([]services.ScoredCandidate, len(scored))
	for i, sv := range scored {
		out[i] = sv.candidate
	}
	return out
}

// interestSet is a profile with its skill and preference strings
// normalized once, shared across every candidate of a Rank call.
type interestSet struct {
	skills      map[string]struct{}
	preferences map[string]struct{}
}

func newInterestSet(profile model.InterestProfile) interestSet {
	is := interestSet{
		skills:      make(map[string]struct{}, len(profile.Skills)),
		preferences: make(map[string]struct{}, len(profile.Preferences)),
	}
	for _, s := range tokenizer.NormalizeAll(profile.Skills) {
		is.skills[s] = struct{}{}
	}
	for _, p := range tokenizer.NormalizeAll(profile.Preferences) {
		is.preferences[p] = struct{}{}
	}
	return is
}

func (is interestSet) union() map[string]struct{} {
	u := make(map[string]struct{}, len(is.skills)+len(is.preferences))
	for s := range is.skills {
		u[s] = struct{}{}
	}
	for p := range is.preferences {
		u[p] = struct{}{}
	}
	return u
}

func scoreAgainst(rec services.RecordView, interests interestSet) services.ScoredCandidate {
	tags := recordTagSet(rec)
	titleWords := tokenizer.TokenSet(rec.Title)

	score := 0
	matched := make(map[string]struct{})

	for skill := range interests.skills {
		if _, ok := tags[skill]; ok {
			score += skillMatchWeight
			matched[skill] = struct{}{}
		}
	}
	for pref := range interests.preferences {
		if _, ok := tags[pref]; ok {
			score += preferenceMatchWeight
			matched[pref] = struct{}{}
		}
	}

	// Title hits count for skill and preference terms alike; a term listed
	// as both still counts once.
	for term := range interests.union() {
		if _, ok := titleWords[term]; ok {
			score += titleMatchWeight
			matched[term] = struct{}{}
		}
	}

	// Industry/company affinity: a preference contained anywhere in the
	// secondary entity's name or category, distinct from the tag-set
	// intersection above.
	if rec.Secondary != nil {
		name := strings.ToLower(rec.Secondary.Name)
		category := strings.ToLower(rec.Secondary.Category)
		for pref := range interests.preferences {
			if (name != "" && strings.Contains(name, pref)) ||
				(category != "" && strings.Contains(category, pref)) {
				score += affinityBonus
				matched[pref] = struct{}{}
			}
		}
	}

	matches := make([]string, 0, len(matched))
	for term := range matched {
		matches = append(matches, term)
	}
	sort.Strings(matches)

	return services.ScoredCandidate{ID: rec.ID, Score: score, Matches: matches}
}

// recordTagSet is the record's normalized tag tokens plus the secondary
// entity's name and category, each treated as one whole-field token.
func recordTagSet(rec services.RecordView) map[string]struct{} {
	tags := make(map[string]struct{}, len(rec.Tags)+2)
	for _, tag := range tokenizer.NormalizeAll(rec.Tags) {
		tags[tag] = struct{}{}
	}
	if rec.Secondary != nil {
		if name := tokenizer.Normalize(rec.Secondary.Name); name != "" {
			tags[name] = struct{}{}
		}
		if category := tokenizer.Normalize(rec.Secondary.Category); category != "" {
			tags[category] = struct{}{}
		}
	}
	return tags
}

func chronological(records []services.RecordView) []services.ScoredCandidate {
	ordered := make([]services.RecordView, len(records))
	copy(ordered, records)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Date.Before(ordered[j].Date)
	})

	out := make([]services.ScoredCandidate, len(ordered))
	for i, rec := range ordered {
		out[i] = services.ScoredCandidate{ID: rec.ID, Score: 0, Matches: []string{}}
	}
	return out
}
