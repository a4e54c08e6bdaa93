package pharmacy

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ruralcare/ruralcare/pkg/pagination"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(g *echo.Group) {
	g.GET("/pharmacies", h.List)
	g.POST("/pharmacies", h.Create)
	g.GET("/pharmacies/:id", h.Get)
	g.GET("/pharmacies/:id/stock", h.ListStock)
	g.GET("/medication-stock/search", h.SearchStock)
	g.GET("/medication-stock/:pharmacyId/:medicationName", h.GetStock)
	g.PUT("/medication-stock/:pharmacyId/:medicationName", h.UpdateStock)
}

func (h *Handler) List(c echo.Context) error {
	pharmacies, err := h.svc.List(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to fetch pharmacies")
	}
	return c.JSON(http.StatusOK, pharmacies)
}

func (h *Handler) Create(c echo.Context) error {
	var p Pharmacy
	if err := c.Bind(&p); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if err := h.svc.Create(c.Request().Context(), &p); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusCreated, p)
}

func (h *Handler) Get(c echo.Context) error {
	p, err := h.svc.Get(c.Request().Context(), c.Param("id"))
	if errors.Is(err, ErrNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "pharmacy not found")
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to fetch pharmacy")
	}
	return c.JSON(http.StatusOK, p)
}

func (h *Handler) ListStock(c echo.Context) error {
	stock, err := h.svc.ListStock(c.Request().Context(), c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to fetch medication stock")
	}
	return c.JSON(http.StatusOK, stock)
}

func (h *Handler) GetStock(c echo.Context) error {
	st, err := h.svc.GetStock(c.Request().Context(), c.Param("pharmacyId"), c.Param("medicationName"))
	if errors.Is(err, ErrStockNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "medication stock not found")
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to fetch medication stock")
	}
	return c.JSON(http.StatusOK, st)
}

type stockUpdateRequest struct {
	StockStatus string `json:"stockStatus"`
}

func (h *Handler) UpdateStock(c echo.Context) error {
	var req stockUpdateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	st := &MedicationStock{
		PharmacyID:     c.Param("pharmacyId"),
		MedicationName: c.Param("medicationName"),
		StockStatus:    req.StockStatus,
	}
	err := h.svc.UpsertStock(c.Request().Context(), st)
	if errors.Is(err, ErrNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "pharmacy not found")
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusOK, st)
}

func (h *Handler) SearchStock(c echo.Context) error {
	medication := c.QueryParam("medication")
	params := pagination.FromContext(c)

	stock, total, err := h.svc.SearchStock(c.Request().Context(), medication, params.Limit, params.Offset)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(stock, total, params.Limit, params.Offset))
}
