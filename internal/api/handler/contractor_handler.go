package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/atelierworks/ffe-portal/internal/core/domain"
	"github.com/atelierworks/ffe-portal/internal/core/ports"
)

// ContractorHandler handles contractor-admin connections and the admin
// directory.
type ContractorHandler struct {
	service ports.ContractorService
}

func NewContractorHandler(service ports.ContractorService) *ContractorHandler {
	return &ContractorHandler{service: service}
}

type connectionRequest struct {
	AdminID string `json:"admin_id" validate:"required"`
}

type decideRequestBody struct {
	Status string `json:"status" validate:"required,oneof=approved rejected"`
}

type adminListResponse struct {
	Admins []*domain.User `json:"admins"`
}

type requestListResponse struct {
	Requests []*domain.ContractorRequest `json:"requests"`
}

// RequestConnection handles POST /api/contractor/requests.
//
// @Summary      Request a connection to an admin
// @Tags         contractors
// @Accept       json
// @Produce      json
// @Param        body  body      connectionRequest  true  "Target admin"
// @Success      201   {object}  domain.ContractorRequest
// @Failure      400   {object}  map[string]string
// @Router       /api/contractor/requests [post]
func (h *ContractorHandler) RequestConnection(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}

	var req connectionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	created, err := h.service.RequestConnection(c.Request().Context(), p.UserID, req.AdminID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, created)
}

// ConnectedAdmins handles GET /api/contractor/connected-admins.
//
// @Summary      List admins connected to the caller
// @Tags         contractors
// @Produce      json
// @Success      200  {object}  adminListResponse
// @Router       /api/contractor/connected-admins [get]
func (h *ContractorHandler) ConnectedAdmins(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}

	admins, err := h.service.ConnectedAdmins(c.Request().Context(), p.UserID)
	if err != nil {
		return err
	}
	if admins == nil {
		admins = []*domain.User{}
	}
	return c.JSON(http.StatusOK, adminListResponse{Admins: admins})
}

// SearchAdmins handles GET /api/contractor/search-admins?query=.
// A missing or empty query returns an empty list without touching storage.
//
// @Summary      Search the admin directory
// @Tags         contractors
// @Produce      json
// @Param        query  query     string  false  "Substring matched against name, email, company"
// @Success      200    {object}  adminListResponse
// @Router       /api/contractor/search-admins [get]
func (h *ContractorHandler) SearchAdmins(c echo.Context) error {
	admins, err := h.service.SearchAdmins(c.Request().Context(), c.QueryParam("query"))
	if err != nil {
		return err
	}
	if admins == nil {
		admins = []*domain.User{}
	}
	return c.JSON(http.StatusOK, adminListResponse{Admins: admins})
}

// ListRequests handles GET /api/admin/contractor-requests.
//
// @Summary      List connection requests addressed to the caller
// @Tags         contractors
// @Produce      json
// @Success      200  {object}  requestListResponse
// @Router       /api/admin/contractor-requests [get]
func (h *ContractorHandler) ListRequests(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}

	requests, err := h.service.ListRequestsForAdmin(c.Request().Context(), p.UserID)
	if err != nil {
		return err
	}
	if requests == nil {
		requests = []*domain.ContractorRequest{}
	}
	return c.JSON(http.StatusOK, requestListResponse{Requests: requests})
}

// Decide handles PUT /api/admin/contractor-requests/:id.
//
// @Summary      Approve or reject a connection request
// @Tags         contractors
// @Accept       json
// @Produce      json
// @Param        id    path      string             true  "Request id"
// @Param        body  body      decideRequestBody  true  "Decision"
// @Success      200   {object}  domain.ContractorRequest
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /api/admin/contractor-requests/{id} [put]
func (h *ContractorHandler) Decide(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}

	var req decideRequestBody
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	decided, err := h.service.Decide(c.Request().Context(), p.UserID, c.Param("id"), domain.RequestStatus(req.Status))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, decided)
}
