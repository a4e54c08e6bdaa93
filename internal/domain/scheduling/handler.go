package scheduling

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
	g.POST("/appointments", h.Create)
	g.GET("/appointments/patient/:patientId", h.ListByPatient)
	g.GET("/appointments/doctor/:doctorId", h.ListByDoctor)
	g.PATCH("/appointments/:id/status", h.UpdateStatus)
}

func (h *Handler) Create(c echo.Context) error {
	var a Appointment
	if err := c.Bind(&a); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if err := h.svc.Create(c.Request().Context(), &a); err != nil {
		if errors.Is(err, ErrPatientNotFound) || errors.Is(err, ErrDoctorNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusCreated, a)
}

func (h *Handler) ListByPatient(c echo.Context) error {
	appts, err := h.svc.ListByPatient(c.Request().Context(), c.Param("patientId"))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to fetch appointments")
	}
	return c.JSON(http.StatusOK, appts)
}

func (h *Handler) ListByDoctor(c echo.Context) error {
	appts, err := h.svc.ListByDoctor(c.Request().Context(), c.Param("doctorId"))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to fetch appointments")
	}
	return c.JSON(http.StatusOK, appts)
}

type statusRequest struct {
	Status string `json:"status"`
}

func (h *Handler) UpdateStatus(c echo.Context) error {
	var req statusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	a, err := h.svc.UpdateStatus(c.Request().Context(), c.Param("id"), req.Status)
	if errors.Is(err, ErrNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "appointment not found")
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusOK, a)
}
