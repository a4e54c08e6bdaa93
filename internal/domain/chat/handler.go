package chat

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(g *echo.Group) {
	g.POST("/chat", h.Create)
	g.GET("/chat/:sessionId", h.History)
}

func (h *Handler) Create(c echo.Context) error {
	var m Message
	if err := c.Bind(&m); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	err := h.svc.Create(c.Request().Context(), &m)
	if errors.Is(err, ErrPatientNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "patient not found")
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusCreated, m)
}

func (h *Handler) History(c echo.Context) error {
	messages, err := h.svc.History(c.Request().Context(), c.Param("sessionId"))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to fetch chat messages")
	}
	return c.JSON(http.StatusOK, messages)
}
