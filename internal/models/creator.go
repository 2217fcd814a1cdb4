// internal/models/creator.go
package models

// CreatorProfile is a social-media creator record as returned by the scraper.
// Optional fields default to zero values; validation happens in scoring.
type CreatorProfile struct {
	Username       string   `json:"username"`
	Nickname       string   `json:"nickname,omitempty"`
	Bio            string   `json:"bio,omitempty"`
	Followers      int64    `json:"followers"`
	EngagementRate float64  `json:"engagementRate"`
	Verified       bool     `json:"verified"`
	BioLink        string   `json:"bioLink,omitempty"`
	BioLinks       []string `json:"bioLinks,omitempty"`
	CommerceUser   bool     `json:"commerceUser,omitempty"`
	SellerFlag     bool     `json:"sellerFlag,omitempty"`
}
