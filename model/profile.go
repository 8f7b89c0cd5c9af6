package model

// InterestProfile carries a requester's normalized interests: skill names
// and job preferences, both lower-cased before scoring. A zero-value
// profile is valid and means "no personalization".
type InterestProfile struct {
	Skills      []string `json:"skills,omitempty"`
	Preferences []string `json:"preferences,omitempty"`
}

// IsEmpty reports whether the profile carries no interests at all, in which
// case ranking degenerates to chronological order.
func (p InterestProfile) IsEmpty() bool {
	return len(p.Skills) == 0 && len(p.Preferences) == 0
}
