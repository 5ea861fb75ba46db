package handler

import (
    "context"
    "crypto/subtle"
    "log"
    "net/http"

    "github.com/labstack/echo/v4"

    "github.com/iliyamo/dinosaur-museum/internal/catalog"
    "github.com/iliyamo/dinosaur-museum/internal/config"
    "github.com/iliyamo/dinosaur-museum/internal/middleware"
    "github.com/iliyamo/dinosaur-museum/internal/utils"
)

// AdminHandler bundles dependencies for the catalog management endpoints.
// Purge, when set, clears cached catalog responses after a reload.
type AdminHandler struct {
    Cfg     config.Config
    Catalog *catalog.Catalog
    Purge   func(ctx context.Context) (int, error)
}

func NewAdminHandler(cfg config.Config, cat *catalog.Catalog, purge func(ctx context.Context) (int, error)) *AdminHandler {
    return &AdminHandler{Cfg: cfg, Catalog: cat, Purge: purge}
}

type loginReq struct {
    Username string `json:"username"`
    Password string `json:"password"`
}

// Login handles POST /v1/admin/login.  It returns 401 for bad
// credentials, and also when no admin password hash is configured.
func (h *AdminHandler) Login(c echo.Context) error {
    var req loginReq
    if err := c.Bind(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
    }
    userOK := subtle.ConstantTimeCompare([]byte(req.Username), []byte(h.Cfg.AdminUsername)) == 1
    passOK := utils.VerifyPassword(h.Cfg.AdminPasswordHash, req.Password)
    if !userOK || !passOK {
        return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid credentials"})
    }
    at, err := utils.NewAccessToken(h.Cfg.JWTSecret, h.Cfg.AdminUsername, utils.RoleAdmin, h.Cfg.AccessTTLMin)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not issue token"})
    }
    return c.JSON(http.StatusOK, echo.Map{"token": at.Token, "expires": at.Exp})
}

// Reload handles POST /v1/admin/catalog/reload.  A failed load keeps the
// previous catalog and answers 502.
func (h *AdminHandler) Reload(c echo.Context) error {
    ctx := c.Request().Context()
    who := middleware.UserID(c)
    st, err := h.Catalog.Load(ctx)
    if err != nil {
        log.Printf("catalog reload by %s failed: %v", who, err)
        return c.JSON(http.StatusBadGateway, echo.Map{"error": "catalog reload failed"})
    }
    purged := 0
    if h.Purge != nil {
        n, err := h.Purge(ctx)
        if err != nil {
            log.Printf("cache purge after reload failed: %v", err)
        }
        purged = n
    }
    log.Printf("catalog reloaded by %s: %d dinosaurs, %d ticket types, %d purged",
        who, st.Dinosaurs, st.TicketTypes, purged)
    return c.JSON(http.StatusOK, echo.Map{"catalog": st, "purged": purged})
}
