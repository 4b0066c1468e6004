package server

import (
	"vybe/internal/models"
	"vybe/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetMyProfile handles GET /api/users/me
// @Summary Get own profile
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.User
// @Router /users/me [get]
func (s *Server) GetMyProfile(c *fiber.Ctx) error {
	user, err := s.userService.Get(c.Context(), currentUserID(c))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(user)
}

// UpdateMyProfile handles PUT /api/users/me
// @Summary Update own profile
// @Description Merge submitted profile fields; omitted fields are unchanged
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.User
// @Failure 400 {object} models.ErrorResponse
// @Router /users/me [put]
func (s *Server) UpdateMyProfile(c *fiber.Ctx) error {
	var req struct {
		ArtistName       *string `json:"artist_name"`
		Bio              *string `json:"bio"`
		ProfileImage     *string `json:"profile_image"`
		Instagram        *string `json:"instagram"`
		TikTok           *string `json:"tiktok"`
		YouTube          *string `json:"youtube"`
		Twitter          *string `json:"twitter"`
		TwitchEmbed      *string `json:"twitch_embed"`
		Phone            *string `json:"phone"`
		EmergencyContact *string `json:"emergency_contact"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	user, err := s.userService.UpdateProfile(c.Context(), currentUserID(c), service.UpdateProfileInput{
		ArtistName:       req.ArtistName,
		Bio:              req.Bio,
		ProfileImage:     req.ProfileImage,
		Instagram:        req.Instagram,
		TikTok:           req.TikTok,
		YouTube:          req.YouTube,
		Twitter:          req.Twitter,
		TwitchEmbed:      req.TwitchEmbed,
		Phone:            req.Phone,
		EmergencyContact: req.EmergencyContact,
	})
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(user)
}

// UpdateMyPreferences handles PUT /api/users/me/preferences
// @Summary Update display preferences
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body object{dark_mode=bool} true "Preferences"
// @Success 200 {object} object{dark_mode=bool}
// @Router /users/me/preferences [put]
func (s *Server) UpdateMyPreferences(c *fiber.Ctx) error {
	var req struct {
		DarkMode bool `json:"dark_mode"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	if err := s.userService.SetDarkMode(c.Context(), currentUserID(c), req.DarkMode); err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{
		"dark_mode": req.DarkMode,
	})
}

// GetMyCheckIns handles GET /api/users/me/checkins
// @Summary Get own check-in history
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.CheckIn
// @Router /users/me/checkins [get]
func (s *Server) GetMyCheckIns(c *fiber.Ctx) error {
	history, err := s.checkInService.History(c.Context(), currentUserID(c))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(history)
}

// GetUserProfile handles GET /api/users/:id
// @Summary Get an artist profile
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Success 200 {object} models.User
// @Failure 404 {object} models.ErrorResponse
// @Router /users/{id} [get]
func (s *Server) GetUserProfile(c *fiber.Ctx) error {
	userID, err := s.requireParam(c, "id")
	if err != nil {
		return nil
	}

	user, err := s.userService.Get(c.Context(), userID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(user)
}

// GetLobby handles GET /api/users
// @Summary List artists in the lobby directory
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Page size" default(50)
// @Param offset query int false "Offset" default(0)
// @Success 200 {array} models.User
// @Router /users [get]
func (s *Server) GetLobby(c *fiber.Ctx) error {
	page := parsePagination(c, 50)
	users, err := s.userService.Lobby(c.Context(), page.Limit, page.Offset)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(users)
}

// PromoteToAdmin handles POST /api/users/:id/promote-admin
// @Summary Grant admin rights
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Success 200 {object} object{message=string}
// @Failure 404 {object} models.ErrorResponse
// @Router /users/{id}/promote-admin [post]
func (s *Server) PromoteToAdmin(c *fiber.Ctx) error {
	userID, err := s.requireParam(c, "id")
	if err != nil {
		return nil
	}

	if err := s.userService.SetAdmin(c.Context(), userID, true); err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "User promoted to admin",
	})
}

// DemoteFromAdmin handles POST /api/users/:id/demote-admin
// @Summary Revoke admin rights
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Success 200 {object} object{message=string}
// @Failure 404 {object} models.ErrorResponse
// @Router /users/{id}/demote-admin [post]
func (s *Server) DemoteFromAdmin(c *fiber.Ctx) error {
	userID, err := s.requireParam(c, "id")
	if err != nil {
		return nil
	}

	if userID == currentUserID(c) {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Admins cannot demote themselves"))
	}

	if err := s.userService.SetAdmin(c.Context(), userID, false); err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Admin rights revoked",
	})
}

// GetFeatureFlags handles GET /api/admin/feature-flags
// @Summary Inspect feature flag configuration
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} object{raw=map[string]string,resolved=map[string]bool}
// @Router /admin/feature-flags [get]
func (s *Server) GetFeatureFlags(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"raw":      s.featureFlags.Raw(),
		"resolved": s.featureFlags.Snapshot(currentUserID(c)),
	})
}
