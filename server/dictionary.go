package server

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/lexiread/lexiread/dictionary"
)

type entryRequest struct {
	English     string `json:"english"`
	Translation string `json:"translation"`
}

type entryResponse struct {
	Success bool             `json:"success"`
	Entry   dictionary.Entry `json:"entry"`
}

type entriesResponse struct {
	Success bool               `json:"success"`
	Entries []dictionary.Entry `json:"entries"`
}

func (s *Server) handleListEntries(c *fiber.Ctx) error {
	return c.JSON(entriesResponse{Success: true, Entries: s.dict.List()})
}

func (s *Server) handleAddEntry(c *fiber.Ctx) error {
	var req entryRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "invalid JSON body")
	}
	if req.English == "" {
		return fail(c, fiber.StatusBadRequest, "English word is required")
	}
	if req.Translation == "" {
		return fail(c, fiber.StatusBadRequest, "Translation is required")
	}

	entry := s.dict.Add(req.English, req.Translation)
	return c.Status(fiber.StatusCreated).JSON(entryResponse{Success: true, Entry: entry})
}

func (s *Server) handleUpdateEntry(c *fiber.Ctx) error {
	var req entryRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "invalid JSON body")
	}
	if req.English == "" {
		return fail(c, fiber.StatusBadRequest, "English word is required")
	}
	if req.Translation == "" {
		return fail(c, fiber.StatusBadRequest, "Translation is required")
	}

	entry, err := s.dict.Update(c.Params("id"), req.English, req.Translation)
	if err != nil {
		if errors.Is(err, dictionary.ErrNotFound) {
			return fail(c, fiber.StatusNotFound, "dictionary entry not found")
		}
		return err
	}
	return c.JSON(entryResponse{Success: true, Entry: entry})
}

func (s *Server) handleDeleteEntry(c *fiber.Ctx) error {
	if err := s.dict.Remove(c.Params("id")); err != nil {
		if errors.Is(err, dictionary.ErrNotFound) {
			return fail(c, fiber.StatusNotFound, "dictionary entry not found")
		}
		return err
	}
	return c.JSON(fiber.Map{"success": true})
}
