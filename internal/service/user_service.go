package service

import (
	"context"
	"strings"

	"vybe/internal/models"
	"vybe/internal/repository"
	"vybe/internal/validation"
)

// UserService handles artist profiles and account settings.
type UserService struct {
	userRepo repository.UserRepository
}

// NewUserService returns a new UserService.
func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// Get returns an artist profile.
func (s *UserService) Get(ctx context.Context, userID string) (*models.User, error) {
	return s.userRepo.GetByID(ctx, userID)
}

// UpdateProfileInput carries the editable profile fields. Nil pointers mean
// "leave unchanged".
type UpdateProfileInput struct {
	ArtistName       *string
	Bio              *string
	ProfileImage     *string
	Instagram        *string
	TikTok           *string
	YouTube          *string
	Twitter          *string
	TwitchEmbed      *string
	Phone            *string
	EmergencyContact *string
}

// UpdateProfile merges the submitted fields into the profile.
func (s *UserService) UpdateProfile(ctx context.Context, userID string, in UpdateProfileInput) (*models.User, error) {
	fields := make(map[string]any)

	if in.ArtistName != nil {
		if err := validation.ValidateArtistName(*in.ArtistName); err != nil {
			return nil, models.NewValidationError(err.Error())
		}
		fields["artist_name"] = strings.TrimSpace(*in.ArtistName)
	}
	if in.Bio != nil {
		fields["bio"] = *in.Bio
	}
	if in.ProfileImage != nil {
		fields["profile_image"] = *in.ProfileImage
	}
	if in.Instagram != nil {
		fields["instagram"] = *in.Instagram
	}
	if in.TikTok != nil {
		fields["tik_tok"] = *in.TikTok
	}
	if in.YouTube != nil {
		fields["you_tube"] = *in.YouTube
	}
	if in.Twitter != nil {
		fields["twitter"] = *in.Twitter
	}
	if in.TwitchEmbed != nil {
		fields["twitch_embed"] = *in.TwitchEmbed
	}
	if in.Phone != nil {
		fields["phone"] = *in.Phone
	}
	if in.EmergencyContact != nil {
		fields["emergency_contact"] = *in.EmergencyContact
	}

	if err := s.userRepo.Update(ctx, userID, fields); err != nil {
		return nil, err
	}
	return s.userRepo.GetByID(ctx, userID)
}

// SetDarkMode stores the user's theme preference.
func (s *UserService) SetDarkMode(ctx context.Context, userID string, darkMode bool) error {
	return s.userRepo.Update(ctx, userID, map[string]any{"dark_mode": darkMode})
}

// SetAdmin grants or revokes admin rights. Only existing admins reach this
// through the HTTP layer.
func (s *UserService) SetAdmin(ctx context.Context, userID string, isAdmin bool) error {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return err
	}
	return s.userRepo.Update(ctx, userID, map[string]any{"is_admin": isAdmin})
}

// Lobby returns the artist directory page.
func (s *UserService) Lobby(ctx context.Context, limit, offset int) ([]models.User, error) {
	return s.userRepo.List(ctx, limit, offset)
}
