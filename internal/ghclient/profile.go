package ghclient

import (
	"context"

	"github.com/Biki-dev/Contrib-Aura-Farming/internal/model"
)

// GetProfile fetches the public profile of a user. Callers treat failure
// as a valid "no profile" state, not a fatal error.
func (c *Client) GetProfile(ctx context.Context, user string) (*model.Profile, error) {
	u, _, err := c.client.Users.Get(ctx, user)
	if err != nil {
		return nil, mapError(err)
	}

	return &model.Profile{
		Login:     u.GetLogin(),
		Name:      u.GetName(),
		AvatarURL: u.GetAvatarURL(),
		Bio:       u.GetBio(),
		Email:     u.GetEmail(),
		Followers: u.GetFollowers(),
		Following: u.GetFollowing(),
		CreatedAt: u.GetCreatedAt().Time,
	}, nil
}
