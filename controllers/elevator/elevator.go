package elevatorController

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"elevate/middleware"
	"elevate/models"
	"elevate/repository"
)

// Handler translates HTTP requests into repository calls. It holds no
// state beyond the repository reference.
type Handler struct {
	repo repository.ElevatorRepository
}

func New(repo repository.ElevatorRepository) *Handler {
	return &Handler{repo: repo}
}

// List returns every rating, public.
func (h *Handler) List(c *fiber.Ctx) error {
	elevators, err := h.repo.FindAll(c.UserContext())
	if err != nil {
		return h.storageError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(elevators)
}

// ListMine returns the caller's ratings.
func (h *Handler) ListMine(c *fiber.Ctx) error {
	userID := c.Locals("userId").(uint)

	elevators, err := h.repo.FindByOwner(c.UserContext(), userID)
	if err != nil {
		return h.storageError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(elevators)
}

// GetByID returns a single rating, public.
func (h *Handler) GetByID(c *fiber.Ctx) error {
	elevator, err := h.repo.FindByID(c.UserContext(), c.Params("id"))
	if errors.Is(err, repository.ErrNotFound) {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "Elevator not found")
	}
	if err != nil {
		return h.storageError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(elevator)
}

// ByCity filters ratings by city, case-insensitive.
func (h *Handler) ByCity(c *fiber.Ctx) error {
	elevators, err := h.repo.FindByCity(c.UserContext(), c.Params("city"))
	if err != nil {
		return h.storageError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(elevators)
}

// ByType filters ratings by location category, case-insensitive.
func (h *Handler) ByType(c *fiber.Ctx) error {
	elevators, err := h.repo.FindByType(c.UserContext(), c.Params("type"))
	if err != nil {
		return h.storageError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(elevators)
}

// TopRated returns the best-scored ratings. The limit was validated by the
// route middleware.
func (h *Handler) TopRated(c *fiber.Ctx) error {
	limit := c.Locals("topLimit").(int)

	elevators, err := h.repo.FindTopRated(c.UserContext(), limit)
	if err != nil {
		return h.storageError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(elevators)
}

// Create persists a new rating owned by the caller.
func (h *Handler) Create(c *fiber.Ctx) error {
	userID := c.Locals("userId").(uint)
	input := c.Locals("createElevatorInput").(*models.CreateElevatorInput)

	elevator, err := h.repo.Save(c.UserContext(), *input, userID)
	if err != nil {
		var ve *repository.ValidationError
		if errors.As(err, &ve) {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, ve.Error())
		}
		return h.storageError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(elevator)
}

// Update merges a partial payload into an existing rating. Only the owner
// may update.
func (h *Handler) Update(c *fiber.Ctx) error {
	userID := c.Locals("userId").(uint)
	id := c.Params("id")
	input := c.Locals("updateElevatorInput").(*models.UpdateElevatorInput)

	if err := h.authorize(c, id, userID); err != nil {
		return h.writeAuthError(c, err)
	}

	elevator, err := h.repo.Update(c.UserContext(), id, *input)
	if err != nil {
		var ve *repository.ValidationError
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return middleware.ErrorResponse(c, fiber.StatusNotFound, "Elevator not found")
		case errors.As(err, &ve):
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, ve.Error())
		default:
			return h.storageError(c, err)
		}
	}

	return c.Status(fiber.StatusOK).JSON(elevator)
}

// Delete removes a rating. Only the owner may delete.
func (h *Handler) Delete(c *fiber.Ctx) error {
	userID := c.Locals("userId").(uint)
	id := c.Params("id")

	if err := h.authorize(c, id, userID); err != nil {
		return h.writeAuthError(c, err)
	}

	deleted, err := h.repo.Delete(c.UserContext(), id)
	if err != nil {
		return h.storageError(c, err)
	}
	if !deleted {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "Elevator not found")
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// errForbidden marks an authenticated caller who is not the record owner.
var errForbidden = errors.New("not the owner")

// authorize checks that the record exists and belongs to the caller.
func (h *Handler) authorize(c *fiber.Ctx, id string, userID uint) error {
	if _, err := h.repo.FindByID(c.UserContext(), id); err != nil {
		return err
	}

	owner, err := h.repo.IsOwner(c.UserContext(), id, userID)
	if err != nil {
		return err
	}
	if !owner {
		return errForbidden
	}
	return nil
}

func (h *Handler) writeAuthError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "Elevator not found")
	case errors.Is(err, errForbidden):
		return middleware.ErrorResponse(c, fiber.StatusForbidden, "You do not have permission to modify this elevator")
	default:
		return h.storageError(c, err)
	}
}

// storageError logs the failure and hides its detail from the client.
func (h *Handler) storageError(c *fiber.Ctx, err error) error {
	log.Printf("Storage error: %v", err)
	return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Internal server error")
}
