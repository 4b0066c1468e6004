package server

import (
	"strings"
	"time"

	"vybe/internal/models"
	"vybe/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetEvents handles GET /api/events
// @Summary List events
// @Description Lists all events, optionally filtered by display status
// @Tags events
// @Produce json
// @Param filter query string false "Display status filter" Enums(live, upcoming, ended)
// @Success 200 {array} service.EventView
// @Router /events [get]
func (s *Server) GetEvents(c *fiber.Ctx) error {
	views, err := s.eventService.List(c.Context())
	if err != nil {
		return respondServiceError(c, err)
	}

	filter := strings.ToUpper(c.Query("filter"))
	if filter != "" {
		filtered := make([]service.EventView, 0, len(views))
		for _, v := range views {
			if string(v.DisplayStatus) == filter {
				filtered = append(filtered, v)
			}
		}
		views = filtered
	}

	return c.JSON(views)
}

// GetEvent handles GET /api/events/:id
// @Summary Get an event
// @Tags events
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} service.EventView
// @Failure 404 {object} models.ErrorResponse
// @Router /events/{id} [get]
func (s *Server) GetEvent(c *fiber.Ctx) error {
	eventID, err := s.requireParam(c, "id")
	if err != nil {
		return nil
	}

	view, err := s.eventService.Get(c.Context(), eventID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(view)
}

// GetEventByQR handles GET /api/events/qr/:qrId
// @Summary Resolve an event from its QR code
// @Description Looks up the event behind a scanned door QR code
// @Tags events
// @Produce json
// @Param qrId path string true "QR code ID"
// @Success 200 {object} service.EventView
// @Failure 404 {object} models.ErrorResponse
// @Router /events/qr/{qrId} [get]
func (s *Server) GetEventByQR(c *fiber.Ctx) error {
	qrID, err := s.requireParam(c, "qrId")
	if err != nil {
		return nil
	}

	view, err := s.eventService.GetByQR(c.Context(), qrID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(view)
}

type eventRequest struct {
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Date        time.Time  `json:"date"`
	EndDate     *time.Time `json:"end_date"`
	Location    string     `json:"location"`
	Venue       string     `json:"venue"`
	Capacity    int        `json:"capacity"`
	Image       string     `json:"image"`
	Tags        []string   `json:"tags"`
	Price       float64    `json:"price"`
}

// CreateEvent handles POST /api/events
// @Summary Create an event
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body eventRequest true "Event details"
// @Success 201 {object} models.Event
// @Failure 400 {object} models.ErrorResponse
// @Router /events [post]
func (s *Server) CreateEvent(c *fiber.Ctx) error {
	var req eventRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	event, err := s.eventService.Create(c.Context(), service.CreateEventInput{
		Name:        req.Name,
		Description: req.Description,
		Date:        req.Date,
		EndDate:     req.EndDate,
		Location:    req.Location,
		Venue:       req.Venue,
		Capacity:    req.Capacity,
		Image:       req.Image,
		Tags:        req.Tags,
		Price:       req.Price,
	})
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(event)
}

// UpdateEvent handles PUT /api/events/:id
// @Summary Update event details
// @Description Updates event details; lifecycle status only changes through go-live and end
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Event ID"
// @Success 200 {object} service.EventView
// @Failure 404 {object} models.ErrorResponse
// @Router /events/{id} [put]
func (s *Server) UpdateEvent(c *fiber.Ctx) error {
	eventID, err := s.requireParam(c, "id")
	if err != nil {
		return nil
	}

	fields := make(map[string]any)
	if err := c.BodyParser(&fields); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	if err := s.eventService.Update(c.Context(), eventID, fields); err != nil {
		return respondServiceError(c, err)
	}

	view, err := s.eventService.Get(c.Context(), eventID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(view)
}

// DeleteEvent handles DELETE /api/events/:id
// @Summary Delete an event
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param id path string true "Event ID"
// @Success 200 {object} object{message=string}
// @Router /events/{id} [delete]
func (s *Server) DeleteEvent(c *fiber.Ctx) error {
	eventID, err := s.requireParam(c, "id")
	if err != nil {
		return nil
	}

	if err := s.eventService.Delete(c.Context(), eventID); err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Event deleted",
	})
}

// GoLiveEvent handles POST /api/events/:id/go-live
// @Summary Take an event live
// @Description Marks the event live and opens check-ins
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param id path string true "Event ID"
// @Success 200 {object} service.EventView
// @Failure 400 {object} models.ErrorResponse
// @Router /events/{id}/go-live [post]
func (s *Server) GoLiveEvent(c *fiber.Ctx) error {
	eventID, err := s.requireParam(c, "id")
	if err != nil {
		return nil
	}

	if err := s.eventService.GoLive(c.Context(), eventID); err != nil {
		return respondServiceError(c, err)
	}

	view, err := s.eventService.Get(c.Context(), eventID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(view)
}

// EndEvent handles POST /api/events/:id/end
// @Summary End an event
// @Description Ends the night; further check-ins are rejected
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param id path string true "Event ID"
// @Success 200 {object} service.EventView
// @Failure 404 {object} models.ErrorResponse
// @Router /events/{id}/end [post]
func (s *Server) EndEvent(c *fiber.Ctx) error {
	eventID, err := s.requireParam(c, "id")
	if err != nil {
		return nil
	}

	if err := s.eventService.End(c.Context(), eventID); err != nil {
		return respondServiceError(c, err)
	}

	view, err := s.eventService.Get(c.Context(), eventID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(view)
}
