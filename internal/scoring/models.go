// internal/scoring/models.go
package scoring

import (
	"encoding/json"
	"fmt"
)

// SubScore is the common view the aggregator takes of every sub-scorer
// result. Concrete results carry scorer-specific metadata on top.
type SubScore interface {
	Value() int
	Summary() string
}

// NicheScore is the niche alignment result.
type NicheScore struct {
	Score    int      `json:"score"`
	Message  string   `json:"message"`
	Matched  []string `json:"matchedNiches,omitempty"`
	Detected []string `json:"detectedNiches,omitempty"`
}

func (s NicheScore) Value() int      { return s.Score }
func (s NicheScore) Summary() string { return s.Message }

// EngagementScore is the engagement quality result.
type EngagementScore struct {
	Score   int     `json:"score"`
	Message string  `json:"message"`
	Rate    float64 `json:"rate"`
	Tier    Tier    `json:"tier"`
}

func (s EngagementScore) Value() int      { return s.Score }
func (s EngagementScore) Summary() string { return s.Message }

// AudienceScore is the audience-size fit result.
type AudienceScore struct {
	Score       int    `json:"score"`
	Message     string `json:"message"`
	CreatorTier Tier   `json:"creatorTier"`
	TargetTier  string `json:"targetTier,omitempty"`
}

func (s AudienceScore) Value() int      { return s.Score }
func (s AudienceScore) Summary() string { return s.Message }

// SafetyScore is the brand safety result.
type SafetyScore struct {
	Score            int      `json:"score"`
	Message          string   `json:"message"`
	Flags            []string `json:"flags,omitempty"`
	RiskLevel        string   `json:"riskLevel"`
	PriorSponsorship []string `json:"priorSponsorship,omitempty"`
}

func (s SafetyScore) Value() int      { return s.Score }
func (s SafetyScore) Summary() string { return s.Message }

// SponsorshipScore is the sponsorship readiness result.
type SponsorshipScore struct {
	Score   int    `json:"score"`
	Message string `json:"message"`
	Signal  string `json:"signal"`
}

func (s SponsorshipScore) Value() int      { return s.Score }
func (s SponsorshipScore) Summary() string { return s.Message }

// Rating is the overall score mapped to a display label.
type Rating struct {
	Label string `json:"label"`
	Color string `json:"color"`
}

// Recommendation is the suggested action for the brand.
type Recommendation struct {
	Action     string `json:"action"`
	Message    string `json:"message"`
	Confidence string `json:"confidence"`
}

// CompatibilityResult is the full evaluation of one creator against a brand.
// It is derived data, produced fresh per call, never mutated afterwards.
type CompatibilityResult struct {
	OverallScore     int                 `json:"overallScore"`
	Rating           Rating              `json:"rating"`
	Recommendation   Recommendation      `json:"recommendation"`
	Scores           map[string]SubScore `json:"scores"`
	Strengths        []string            `json:"strengths"`
	Flags            []string            `json:"flags"`
	DataQualityScore int                 `json:"dataQualityScore"`
}

// UnmarshalJSON reconstructs the Scores map with the concrete sub-score
// type for each key, so results survive a trip through job variables.
func (r *CompatibilityResult) UnmarshalJSON(data []byte) error {
	type plain CompatibilityResult
	aux := struct {
		*plain
		Scores map[string]json.RawMessage `json:"scores"`
	}{plain: (*plain)(r)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if aux.Scores == nil {
		return nil
	}
	r.Scores = make(map[string]SubScore, len(aux.Scores))
	for key, raw := range aux.Scores {
		sub, err := unmarshalSubScore(key, raw)
		if err != nil {
			return err
		}
		r.Scores[key] = sub
	}
	return nil
}

func unmarshalSubScore(key string, raw json.RawMessage) (SubScore, error) {
	var (
		sub SubScore
		err error
	)
	switch key {
	case KeyNiche:
		var s NicheScore
		err = json.Unmarshal(raw, &s)
		sub = s
	case KeyEngagement:
		var s EngagementScore
		err = json.Unmarshal(raw, &s)
		sub = s
	case KeyAudience:
		var s AudienceScore
		err = json.Unmarshal(raw, &s)
		sub = s
	case KeySafety:
		var s SafetyScore
		err = json.Unmarshal(raw, &s)
		sub = s
	case KeySponsorship:
		var s SponsorshipScore
		err = json.Unmarshal(raw, &s)
		sub = s
	default:
		return nil, fmt.Errorf("unknown sub-score key %q", key)
	}
	if err != nil {
		return nil, err
	}
	return sub, nil
}

// RankedCreator pairs a username with its evaluation inside a ranking.
type RankedCreator struct {
	Username string `json:"username"`
	CompatibilityResult
}

// UnmarshalJSON exists because the embedded CompatibilityResult's custom
// unmarshaler would otherwise be promoted and drop the username field.
func (rc *RankedCreator) UnmarshalJSON(data []byte) error {
	var aux struct {
		Username string `json:"username"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if err := json.Unmarshal(data, &rc.CompatibilityResult); err != nil {
		return err
	}
	rc.Username = aux.Username
	return nil
}

// RatingSummary counts ranked creators per rating bucket.
type RatingSummary struct {
	Excellent int `json:"excellent"`
	Good      int `json:"good"`
	Moderate  int `json:"moderate"`
	Weak      int `json:"weak"`
}

// RankingResult is the ranked report for one brand over many creators.
type RankingResult struct {
	BrandName      string          `json:"brandName,omitempty"`
	BrandCategory  string          `json:"brandCategory,omitempty"`
	RankedCreators []RankedCreator `json:"rankedCreators"`
	TopPick        *RankedCreator  `json:"topPick,omitempty"`
	Summary        RatingSummary   `json:"summary"`
}
