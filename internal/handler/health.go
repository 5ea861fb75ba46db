package handler // declare the package name; contains HTTP handlers

import (
    "net/http" // net/http provides status codes and response helpers

    "github.com/labstack/echo/v4" // echo is the web framework used for this project

    "github.com/iliyamo/dinosaur-museum/internal/catalog"
)

// Health is a simple liveness endpoint used by load balancers and
// monitoring systems.  It returns a plain text "ok" with a 200 status.
func Health(c echo.Context) error {
    return c.String(http.StatusOK, "ok")
}

// Ready reports whether the catalog has been loaded.  It returns 503
// until the first successful load so traffic is not routed to an
// instance that would answer every query with "not found".
func Ready(cat *catalog.Catalog) echo.HandlerFunc {
    return func(c echo.Context) error {
        st := cat.Stats()
        if st.Dinosaurs == 0 || st.TicketTypes == 0 {
            return c.JSON(http.StatusServiceUnavailable, echo.Map{"error": "catalog not loaded"})
        }
        return c.JSON(http.StatusOK, st)
    }
}
