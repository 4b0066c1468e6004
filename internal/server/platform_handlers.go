package server

import (
	"vybe/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetPlatforms handles GET /api/platforms
// @Summary List industry platforms
// @Description Lists the platform directory, optionally narrowed to featured entries
// @Tags platforms
// @Produce json
// @Param featured query bool false "Only featured platforms"
// @Success 200 {array} models.Platform
// @Failure 404 {object} models.ErrorResponse
// @Router /platforms [get]
func (s *Server) GetPlatforms(c *fiber.Ctx) error {
	if !s.featureFlags.Enabled("platforms", currentUserID(c)) {
		return models.RespondWithError(c, fiber.StatusNotFound,
			models.NewNotFoundError("Route", c.Path()))
	}

	platforms, err := s.platformService.List(c.Context())
	if err != nil {
		return respondServiceError(c, err)
	}

	if c.QueryBool("featured") {
		featured := make([]models.Platform, 0, len(platforms))
		for _, p := range platforms {
			if p.Featured {
				featured = append(featured, p)
			}
		}
		platforms = featured
	}

	return c.JSON(platforms)
}

// GetPlatform handles GET /api/platforms/:id
// @Summary Get a platform
// @Tags platforms
// @Produce json
// @Param id path string true "Platform ID"
// @Success 200 {object} models.Platform
// @Failure 404 {object} models.ErrorResponse
// @Router /platforms/{id} [get]
func (s *Server) GetPlatform(c *fiber.Ctx) error {
	if !s.featureFlags.Enabled("platforms", currentUserID(c)) {
		return models.RespondWithError(c, fiber.StatusNotFound,
			models.NewNotFoundError("Route", c.Path()))
	}

	platformID, err := s.requireParam(c, "id")
	if err != nil {
		return nil
	}

	platform, err := s.platformService.Get(c.Context(), platformID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(platform)
}

type platformRequest struct {
	Name         string `json:"name"`
	Description  string `json:"description"`
	Logo         string `json:"logo"`
	Instagram    string `json:"instagram"`
	Website      string `json:"website"`
	ContactEmail string `json:"contact_email"`
	Featured     bool   `json:"featured"`
}

// CreatePlatform handles POST /api/platforms
// @Summary Add a platform to the directory
// @Tags platforms
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body platformRequest true "Platform details"
// @Success 201 {object} models.Platform
// @Failure 400 {object} models.ErrorResponse
// @Router /platforms [post]
func (s *Server) CreatePlatform(c *fiber.Ctx) error {
	var req platformRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	platform := &models.Platform{
		Name:         req.Name,
		Description:  req.Description,
		Logo:         req.Logo,
		Instagram:    req.Instagram,
		Website:      req.Website,
		ContactEmail: req.ContactEmail,
		Featured:     req.Featured,
	}
	if err := s.platformService.Create(c.Context(), platform); err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(platform)
}

// UpdatePlatform handles PUT /api/platforms/:id
// @Summary Update a platform
// @Tags platforms
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Platform ID"
// @Success 200 {object} models.Platform
// @Failure 404 {object} models.ErrorResponse
// @Router /platforms/{id} [put]
func (s *Server) UpdatePlatform(c *fiber.Ctx) error {
	platformID, err := s.requireParam(c, "id")
	if err != nil {
		return nil
	}

	fields := make(map[string]any)
	if err := c.BodyParser(&fields); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	if err := s.platformService.Update(c.Context(), platformID, fields); err != nil {
		return respondServiceError(c, err)
	}

	platform, err := s.platformService.Get(c.Context(), platformID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(platform)
}

// DeletePlatform handles DELETE /api/platforms/:id
// @Summary Remove a platform from the directory
// @Tags platforms
// @Produce json
// @Security BearerAuth
// @Param id path string true "Platform ID"
// @Success 200 {object} object{message=string}
// @Router /platforms/{id} [delete]
func (s *Server) DeletePlatform(c *fiber.Ctx) error {
	platformID, err := s.requireParam(c, "id")
	if err != nil {
		return nil
	}

	if err := s.platformService.Delete(c.Context(), platformID); err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Platform removed",
	})
}
