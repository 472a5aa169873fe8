package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"shoresquad/internal/services/community"
)

// MessageResponse carries the notification shown after an action
type MessageResponse struct {
	Message string `json:"message" example:"✅ Joined \"Beach Warriors\"!"`
}

// CrewDetailResponse is the text shown when viewing a crew
type CrewDetailResponse struct {
	ID   int    `json:"id" example:"1"`
	Text string `json:"text" example:"🏄 Beach Warriors\n\nMembers: 12\nCleanups: 8\nLocation: Bondi, Sydney"`
}

// ListEvents godoc
// @Summary List cleanup events
// @Tags Community
// @Produce json
// @Success 200 {array} models.Event
// @Router /api/events [get]
func (r *routes) handleListEvents(c *fiber.Ctx) error {
	return c.JSON(r.community.Events())
}

// JoinEvent godoc
// @Summary Join an event
// @Description Adds one participant to the event and records a join_event action.
// @Tags Community
// @Produce json
// @Param id path int true "Event ID"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/events/{id}/join [post]
func (r *routes) handleJoinEvent(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "Invalid event id"})
	}

	msg, err := r.community.JoinEvent(c.UserContext(), id)
	if errors.Is(err, community.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{Error: "Event not found"})
	}
	if err != nil {
		return err
	}

	return c.JSON(MessageResponse{Message: msg})
}

// ListCrews godoc
// @Summary List crews
// @Tags Community
// @Produce json
// @Success 200 {array} models.Crew
// @Router /api/crews [get]
func (r *routes) handleListCrews(c *fiber.Ctx) error {
	return c.JSON(r.community.Crews())
}

// ViewCrew godoc
// @Summary View a crew
// @Tags Community
// @Produce json
// @Param id path int true "Crew ID"
// @Success 200 {object} CrewDetailResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/crews/{id} [get]
func (r *routes) handleViewCrew(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "Invalid crew id"})
	}

	text, err := r.community.ViewCrew(id)
	if errors.Is(err, community.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{Error: "Crew not found"})
	}
	if err != nil {
		return err
	}

	return c.JSON(CrewDetailResponse{ID: id, Text: text})
}

// JoinCrew godoc
// @Summary Join a crew
// @Description Adds one member to the crew and records a join_crew action.
// @Tags Community
// @Produce json
// @Param id path int true "Crew ID"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/crews/{id}/join [post]
func (r *routes) handleJoinCrew(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "Invalid crew id"})
	}

	msg, err := r.community.JoinCrew(c.UserContext(), id)
	if errors.Is(err, community.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{Error: "Crew not found"})
	}
	if err != nil {
		return err
	}

	return c.JSON(MessageResponse{Message: msg})
}

// GetStats godoc
// @Summary Hero counters
// @Tags Community
// @Produce json
// @Success 200 {object} models.Stats
// @Router /api/stats [get]
func (r *routes) handleStats(c *fiber.Ctx) error {
	return c.JSON(r.community.Stats())
}

// CreateSignup godoc
// @Summary Sign up as a volunteer
// @Description Stores the signup when name and email are both present. Incomplete submissions are ignored and answered with accepted=false.
// @Tags Community
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param signup body community.SignupRequest true "Signup"
// @Success 201 {object} community.SignupResult "Stored"
// @Success 200 {object} community.SignupResult "Ignored"
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/signups [post]
func (r *routes) handleSignup(c *fiber.Ctx) error {
	var req community.SignupRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "Invalid signup body"})
	}

	result, err := r.community.Signup(c.UserContext(), req)
	if err != nil {
		r.l.Error(err)
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{Error: "Failed to save signup"})
	}

	if !result.Accepted {
		return c.JSON(result)
	}

	return c.Status(fiber.StatusCreated).JSON(result)
}
