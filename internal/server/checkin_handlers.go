package server

import (
	"vybe/internal/models"
	"vybe/internal/service"

	"github.com/gofiber/fiber/v2"
)

// SubmitCheckIn handles POST /api/events/:id/checkins
// @Summary Check in at an event
// @Description Registers the authenticated artist in the event's performance queue. If the artist already checked in, the existing check-in is returned with already_checked_in set; pass force=true to check in again anyway.
// @Tags checkins
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Event ID"
// @Param request body object{artist_name=string,instagram=string,guest_count=int,song_count=int,special_effects=bool,other_content=string,force=bool} true "Check-in form"
// @Success 201 {object} service.SubmitResult
// @Failure 400 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Router /events/{id}/checkins [post]
func (s *Server) SubmitCheckIn(c *fiber.Ctx) error {
	eventID, err := s.requireParam(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		ArtistName     string `json:"artist_name"`
		Instagram      string `json:"instagram"`
		GuestCount     int    `json:"guest_count"`
		SongCount      int    `json:"song_count"`
		SpecialEffects bool   `json:"special_effects"`
		OtherContent   string `json:"other_content"`
		Force          bool   `json:"force"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	result, err := s.checkInService.Submit(c.Context(), service.SubmitCheckInInput{
		UserID:         currentUserID(c),
		EventID:        eventID,
		ArtistName:     req.ArtistName,
		Instagram:      req.Instagram,
		GuestCount:     req.GuestCount,
		SongCount:      req.SongCount,
		SpecialEffects: req.SpecialEffects,
		OtherContent:   req.OtherContent,
		Force:          req.Force || c.QueryBool("force"),
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	status := fiber.StatusCreated
	if result.AlreadyCheckedIn {
		status = fiber.StatusOK
	}
	return c.Status(status).JSON(result)
}

// GetQueue handles GET /api/events/:id/queue
// @Summary Get the performance queue
// @Description Returns the ordered queue with roster stats. The search filter narrows the queue by artist name; stats always cover the whole roster.
// @Tags checkins
// @Produce json
// @Security BearerAuth
// @Param id path string true "Event ID"
// @Param search query string false "Artist name filter"
// @Success 200 {object} service.Roster
// @Router /events/{id}/queue [get]
func (s *Server) GetQueue(c *fiber.Ctx) error {
	eventID, err := s.requireParam(c, "id")
	if err != nil {
		return nil
	}

	roster, err := s.rosterService.PerformanceQueue(c.Context(), eventID, c.Query("search"))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(roster)
}

// GetNextUp handles GET /api/events/:id/queue/next
// @Summary Get the next artist to perform
// @Tags checkins
// @Produce json
// @Security BearerAuth
// @Param id path string true "Event ID"
// @Success 200 {object} service.RosterEntry
// @Failure 404 {object} models.ErrorResponse
// @Router /events/{id}/queue/next [get]
func (s *Server) GetNextUp(c *fiber.Ctx) error {
	eventID, err := s.requireParam(c, "id")
	if err != nil {
		return nil
	}

	entry, err := s.rosterService.NextUp(c.Context(), eventID)
	if err != nil {
		return respondServiceError(c, err)
	}
	if entry == nil {
		return models.RespondWithError(c, fiber.StatusNotFound,
			models.NewNotFoundError("Next performer for event", eventID))
	}
	return c.JSON(entry)
}

// lobbyEntry is the attendee-facing slice of a roster entry: who is in the
// room, in queue order, without door notes or admin stats.
type lobbyEntry struct {
	Artist    models.User `json:"artist"`
	IsStar    bool        `json:"is_star"`
	Performed bool        `json:"performed"`
	SongCount int         `json:"song_count"`
}

// GetEventLobby handles GET /api/events/:id/lobby
// @Summary List artists checked in at an event
// @Description The lobby view of the roster: artist profiles in queue order
// @Tags checkins
// @Produce json
// @Security BearerAuth
// @Param id path string true "Event ID"
// @Param search query string false "Artist name filter"
// @Success 200 {array} lobbyEntry
// @Router /events/{id}/lobby [get]
func (s *Server) GetEventLobby(c *fiber.Ctx) error {
	eventID, err := s.requireParam(c, "id")
	if err != nil {
		return nil
	}

	roster, err := s.rosterService.PerformanceQueue(c.Context(), eventID, c.Query("search"))
	if err != nil {
		return respondServiceError(c, err)
	}

	lobby := make([]lobbyEntry, 0, len(roster.Queue))
	for _, entry := range roster.Queue {
		lobby = append(lobby, lobbyEntry{
			Artist:    entry.Artist,
			IsStar:    entry.CheckIn.IsStar,
			Performed: entry.CheckIn.Performed,
			SongCount: entry.CheckIn.SongCount,
		})
	}
	return c.JSON(lobby)
}

// UpdateGuestCount handles PATCH /api/checkins/:id/guests
// @Summary Update a check-in's guest count
// @Description Sets the guest count and recomputes star status
// @Tags checkins
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Check-in ID"
// @Param request body object{guest_count=int} true "New guest count"
// @Success 200 {object} models.CheckIn
// @Failure 400 {object} models.ErrorResponse
// @Router /checkins/{id}/guests [patch]
func (s *Server) UpdateGuestCount(c *fiber.Ctx) error {
	checkInID, err := s.requireParam(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		GuestCount int `json:"guest_count"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	if err := s.checkInService.UpdateGuestCount(c.Context(), checkInID, req.GuestCount); err != nil {
		return respondServiceError(c, err)
	}
	return s.respondCheckIn(c, checkInID)
}

// UpdateSongCount handles PATCH /api/checkins/:id/songs
// @Summary Update a check-in's song count
// @Tags checkins
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Check-in ID"
// @Param request body object{song_count=int} true "New song count"
// @Success 200 {object} models.CheckIn
// @Failure 400 {object} models.ErrorResponse
// @Router /checkins/{id}/songs [patch]
func (s *Server) UpdateSongCount(c *fiber.Ctx) error {
	checkInID, err := s.requireParam(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		SongCount int `json:"song_count"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	if err := s.checkInService.UpdateSongCount(c.Context(), checkInID, req.SongCount); err != nil {
		return respondServiceError(c, err)
	}
	return s.respondCheckIn(c, checkInID)
}

// UpdateNotes handles PATCH /api/checkins/:id/notes
// @Summary Update a check-in's door notes
// @Tags checkins
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Check-in ID"
// @Param request body object{notes=string} true "Notes"
// @Success 200 {object} models.CheckIn
// @Failure 400 {object} models.ErrorResponse
// @Router /checkins/{id}/notes [patch]
func (s *Server) UpdateNotes(c *fiber.Ctx) error {
	checkInID, err := s.requireParam(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		Notes string `json:"notes"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	if err := s.checkInService.UpdateNotes(c.Context(), checkInID, req.Notes); err != nil {
		return respondServiceError(c, err)
	}
	return s.respondCheckIn(c, checkInID)
}

// SetComplete handles POST /api/checkins/:id/complete
// @Summary Toggle a check-in's payment-complete flag
// @Tags checkins
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Check-in ID"
// @Param request body object{complete=bool} false "Complete flag (defaults to true)"
// @Success 200 {object} models.CheckIn
// @Router /checkins/{id}/complete [post]
func (s *Server) SetComplete(c *fiber.Ctx) error {
	checkInID, err := s.requireParam(c, "id")
	if err != nil {
		return nil
	}

	req := struct {
		Complete *bool `json:"complete"`
	}{}
	// Empty body means "mark complete".
	_ = c.BodyParser(&req)
	complete := true
	if req.Complete != nil {
		complete = *req.Complete
	}

	if err := s.checkInService.SetComplete(c.Context(), checkInID, complete); err != nil {
		return respondServiceError(c, err)
	}
	return s.respondCheckIn(c, checkInID)
}

// SetSpecialEffects handles POST /api/checkins/:id/special-effects
// @Summary Toggle a check-in's special effects flag
// @Tags checkins
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Check-in ID"
// @Param request body object{special_effects=bool} false "Special effects flag (defaults to true)"
// @Success 200 {object} models.CheckIn
// @Router /checkins/{id}/special-effects [post]
func (s *Server) SetSpecialEffects(c *fiber.Ctx) error {
	checkInID, err := s.requireParam(c, "id")
	if err != nil {
		return nil
	}

	req := struct {
		SpecialEffects *bool `json:"special_effects"`
	}{}
	_ = c.BodyParser(&req)
	effects := true
	if req.SpecialEffects != nil {
		effects = *req.SpecialEffects
	}

	if err := s.checkInService.SetSpecialEffects(c.Context(), checkInID, effects); err != nil {
		return respondServiceError(c, err)
	}
	return s.respondCheckIn(c, checkInID)
}

// MarkPerformed handles POST /api/checkins/:id/performed
// @Summary Mark a check-in as performed
// @Tags checkins
// @Produce json
// @Security BearerAuth
// @Param id path string true "Check-in ID"
// @Success 200 {object} models.CheckIn
// @Router /checkins/{id}/performed [post]
func (s *Server) MarkPerformed(c *fiber.Ctx) error {
	checkInID, err := s.requireParam(c, "id")
	if err != nil {
		return nil
	}

	if err := s.checkInService.MarkPerformed(c.Context(), checkInID); err != nil {
		return respondServiceError(c, err)
	}
	return s.respondCheckIn(c, checkInID)
}

// ReactivateCheckIn handles POST /api/checkins/:id/reactivate
// @Summary Return a performed check-in to the queue
// @Tags checkins
// @Produce json
// @Security BearerAuth
// @Param id path string true "Check-in ID"
// @Success 200 {object} models.CheckIn
// @Router /checkins/{id}/reactivate [post]
func (s *Server) ReactivateCheckIn(c *fiber.Ctx) error {
	checkInID, err := s.requireParam(c, "id")
	if err != nil {
		return nil
	}

	if err := s.checkInService.Reactivate(c.Context(), checkInID); err != nil {
		return respondServiceError(c, err)
	}
	return s.respondCheckIn(c, checkInID)
}

// CallToStage handles POST /api/checkins/:id/call-to-stage
// @Summary Call an artist to the stage
// @Description Sends the artist a performance notification. Suppressed when performance notifications are flagged off.
// @Tags checkins
// @Produce json
// @Security BearerAuth
// @Param id path string true "Check-in ID"
// @Success 200 {object} object{notification=models.Notification,sent=bool}
// @Failure 404 {object} models.ErrorResponse
// @Router /checkins/{id}/call-to-stage [post]
func (s *Server) CallToStage(c *fiber.Ctx) error {
	checkInID, err := s.requireParam(c, "id")
	if err != nil {
		return nil
	}

	notification, err := s.checkInService.CallToStage(c.Context(), checkInID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{
		"notification": notification,
		"sent":         notification != nil,
	})
}

// DeleteCheckIn handles DELETE /api/checkins/:id
// @Summary Remove a check-in from the roster
// @Tags checkins
// @Produce json
// @Security BearerAuth
// @Param id path string true "Check-in ID"
// @Success 200 {object} object{message=string}
// @Router /checkins/{id} [delete]
func (s *Server) DeleteCheckIn(c *fiber.Ctx) error {
	checkInID, err := s.requireParam(c, "id")
	if err != nil {
		return nil
	}

	if err := s.checkInService.Remove(c.Context(), checkInID); err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Check-in removed",
	})
}

// respondCheckIn writes the current state of a check-in after a queue edit.
func (s *Server) respondCheckIn(c *fiber.Ctx, checkInID string) error {
	checkIn, err := s.checkInService.Get(c.Context(), checkInID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(checkIn)
}
