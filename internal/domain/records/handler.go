package records

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
	g.POST("/health-events", h.Create)
	g.GET("/health-events/patient/:patientId", h.ListByPatient)
}

func (h *Handler) Create(c echo.Context) error {
	var ev HealthEvent
	if err := c.Bind(&ev); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	err := h.svc.Create(c.Request().Context(), &ev)
	if errors.Is(err, ErrPatientNotFound) || errors.Is(err, ErrDoctorNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusCreated, ev)
}

func (h *Handler) ListByPatient(c echo.Context) error {
	events, err := h.svc.ListByPatient(c.Request().Context(), c.Param("patientId"))
	if errors.Is(err, ErrPatientNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "patient not found")
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to fetch health events")
	}
	return c.JSON(http.StatusOK, events)
}
