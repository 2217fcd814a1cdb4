// internal/models/brand.go
package models

// BrandProfile describes the brand side of a compatibility evaluation.
// The caller contract requires at least one of Category or Name; the
// validate-creator-input worker enforces that before scoring runs.
type BrandProfile struct {
	Category   string `json:"category,omitempty"`
	Name       string `json:"name,omitempty"`
	TargetTier string `json:"targetTier,omitempty"` // one of the tier labels, or "any"
}
