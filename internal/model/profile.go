package model

import "time"

// Profile holds the user-profile fields needed for display. A nil
// *Profile is the valid "no profile" state: the profile lookup is best
// effort and its failure never aborts a run.
type Profile struct {
	Login     string    `json:"login"`
	Name      string    `json:"name,omitempty"`
	AvatarURL string    `json:"avatarUrl,omitempty"`
	Bio       string    `json:"bio,omitempty"`
	Email     string    `json:"email,omitempty"`
	Followers int       `json:"followers"`
	Following int       `json:"following"`
	CreatedAt time.Time `json:"createdAt,omitempty"`
}

// DisplayName returns the profile name, falling back to the login.
func (p *Profile) DisplayName() string {
	if p.Name != "" {
		return p.Name
	}
	return p.Login
}
