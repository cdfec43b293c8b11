package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/offerly/console/internal/api/dto"
	"github.com/offerly/console/internal/offering"
	apperrors "github.com/offerly/console/pkg/util/errorutil"
)

// OfferingHandler manages the offering form and the records list.
type OfferingHandler struct{}

// NewOfferingHandler constructs handler.
func NewOfferingHandler() *OfferingHandler {
	return &OfferingHandler{}
}

// Form GET /offerings/form.
func (h *OfferingHandler) Form(c *fiber.Ctx) error {
	session, err := currentSession(c)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": session.OfferingForm()})
}

// Update PATCH /offerings/form.
func (h *OfferingHandler) Update(c *fiber.Ctx) error {
	session, err := currentSession(c)
	if err != nil {
		return err
	}
	var patch offering.Patch
	if err := c.BodyParser(&patch); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	view, err := session.UpdateOfferingForm(patch)
	if err != nil {
		if errors.Is(err, offering.ErrUnknownOption) {
			return apperrors.NewValidationError(err.Error(), nil)
		}
		return err
	}
	return c.JSON(fiber.Map{"data": view})
}

// Submit POST /offerings/form/submit.
func (h *OfferingHandler) Submit(c *fiber.Ctx) error {
	session, err := currentSession(c)
	if err != nil {
		return err
	}
	record, view, err := session.SubmitOffering(c.UserContext())
	if err != nil {
		var vErr *offering.ValidationError
		if errors.As(err, &vErr) {
			return apperrors.NewValidationError(vErr.Error(), map[string]any{
				"fields": vErr.Fields,
				"form":   view,
			})
		}
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"data": dto.NewOfferingRow(record),
		"form": view,
	})
}

// List GET /offerings.
func (h *OfferingHandler) List(c *fiber.Ctx) error {
	session, err := currentSession(c)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewOfferingRows(session.Offerings())})
}
