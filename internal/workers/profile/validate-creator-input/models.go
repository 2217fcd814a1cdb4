// internal/workers/profile/validate-creator-input/models.go
package validatecreatorinput

import "creator-match-workers/internal/models"

type Input struct {
	Creator  map[string]interface{}   `json:"creator,omitempty"`
	Creators []map[string]interface{} `json:"creators"`
	Brand    models.BrandProfile      `json:"brand"`
}

type Output struct {
	Valid            bool                    `json:"valid"`
	ValidCreators    []models.CreatorProfile `json:"validCreators"`
	RejectedCreators []RejectedCreator       `json:"rejectedCreators"`
	Brand            models.BrandProfile     `json:"brand"`
}

type RejectedCreator struct {
	Username string   `json:"username"`
	Errors   []string `json:"errors"`
}
