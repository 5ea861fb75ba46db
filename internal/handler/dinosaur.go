// Package handler exposes HTTP handlers for the museum API.
// This file defines the read-only dinosaur endpoints.  Every request works
// on the catalog snapshot current at the time it arrives.
package handler

import (
    "errors"
    "net/http"
    "strconv"
    "strings"

    "github.com/labstack/echo/v4"

    "github.com/iliyamo/dinosaur-museum/internal/catalog"
    "github.com/iliyamo/dinosaur-museum/internal/dinosaur"
)

// DinosaurHandler serves queries over the dinosaur collection.
type DinosaurHandler struct {
    Catalog *catalog.Catalog
}

// NewDinosaurHandler panics if cat is nil.
func NewDinosaurHandler(cat *catalog.Catalog) *DinosaurHandler {
    if cat == nil {
        panic("nil catalog passed to NewDinosaurHandler")
    }
    return &DinosaurHandler{Catalog: cat}
}

// List handles GET /v1/dinosaurs.
func (h *DinosaurHandler) List(c echo.Context) error {
    return c.JSON(http.StatusOK, echo.Map{"items": h.Catalog.Dinosaurs()})
}

// Longest handles GET /v1/dinosaurs/longest and answers {name: feet}.
func (h *DinosaurHandler) Longest(c echo.Context) error {
    l, err := dinosaur.FindLongest(h.Catalog.Dinosaurs())
    if err != nil {
        if errors.Is(err, dinosaur.ErrNoDinosaurs) {
            return c.JSON(http.StatusNotFound, echo.Map{"error": err.Error()})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal error"})
    }
    return c.JSON(http.StatusOK, l.Map())
}

// Describe handles GET /v1/dinosaurs/:id/description.  Unknown ids get a
// 404 whose error is the same sentence Describe produces.
func (h *DinosaurHandler) Describe(c echo.Context) error {
    id := c.Param("id")
    records := h.Catalog.Dinosaurs()
    if _, ok := dinosaur.Lookup(records, id); !ok {
        return c.JSON(http.StatusNotFound, echo.Map{"error": dinosaur.NotFoundMessage(id)})
    }
    return c.JSON(http.StatusOK, echo.Map{"description": dinosaur.Describe(records, id)})
}

// AliveAt handles GET /v1/dinosaurs/alive?mya=<n>[&key=<field>].
func (h *DinosaurHandler) AliveAt(c echo.Context) error {
    raw := strings.TrimSpace(c.QueryParam("mya"))
    if raw == "" {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "mya is required"})
    }
    mya, err := strconv.ParseFloat(raw, 64)
    if err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid mya"})
    }
    key := strings.TrimSpace(c.QueryParam("key"))
    return c.JSON(http.StatusOK, echo.Map{"items": dinosaur.AliveAt(h.Catalog.Dinosaurs(), mya, key)})
}
