package handlers

import (
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/marianaviana/atelie-catalog/internal/hash"
	"github.com/marianaviana/atelie-catalog/internal/logging"
	"github.com/marianaviana/atelie-catalog/internal/storage"
)

const tokenTTL = 24 * time.Hour

type AuthHandler struct {
	Store     storage.Storage
	JWTSecret []byte
}

type credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (h *AuthHandler) Register(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth.register")

	var req credentials
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}
	if req.Username == "" || req.Password == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "username and password are required")
	}

	existing, err := h.Store.GetUserByUsername(ctx, req.Username)
	if err != nil {
		l.Error("user lookup failed", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot register")
	}
	if existing != nil {
		return echo.NewHTTPError(http.StatusConflict, "username already taken")
	}

	hashed, err := hash.HashPassword(req.Password)
	if err != nil {
		l.Error("password hash failed", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot register")
	}

	user, err := h.Store.CreateUser(ctx, req.Username, hashed)
	if err != nil {
		if isConflict(err) {
			// Lost the race against a concurrent register for the same name.
			return echo.NewHTTPError(http.StatusConflict, "username already taken")
		}
		l.Error("create user failed", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot register")
	}

	l.Info("user registered", "id", user.ID, "username", user.Username)
	return c.JSON(http.StatusCreated, user)
}

func (h *AuthHandler) Login(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth.login")

	var req credentials
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	user, err := h.Store.GetUserByUsername(ctx, req.Username)
	if err != nil {
		l.Error("user lookup failed", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot login")
	}
	if user == nil || !hash.CheckPassword(user.Password, req.Password) {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid credentials")
	}

	exp := time.Now().Add(tokenTTL)
	claims := jwt.MapClaims{
		"sub":      user.ID,
		"username": user.Username,
		"exp":      exp.Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(h.JWTSecret)
	if err != nil {
		l.Error("token sign failed", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot login")
	}

	l.Info("user logged in", "id", user.ID)
	return c.JSON(http.StatusOK, echo.Map{
		"token":      token,
		"expires_at": exp.Unix(),
		"user":       user,
	})
}
