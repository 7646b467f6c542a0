package dto

type LivenessStatusResponse struct {
	Status  string `json:"status"`
	Version string `json:"version,omitempty"`
}
