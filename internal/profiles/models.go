package profiles

import "time"

// ProfileDTO is the owner's last submitted generation profile, used by
// clients to pre-fill the plan form.
type ProfileDTO struct {
	HeightCm  float64   `json:"height_cm"`
	WeightKg  float64   `json:"weight_kg"`
	Goal      string    `json:"goal"`
	Equipment []string  `json:"equipment"`
	UpdatedAt time.Time `json:"updated_at"`
}

type PutProfileRequest struct {
	HeightCm  float64  `json:"height_cm"`
	WeightKg  float64  `json:"weight_kg"`
	Goal      string   `json:"goal"`
	Equipment []string `json:"equipment"`
}
