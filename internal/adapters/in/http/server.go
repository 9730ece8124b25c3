// Package http is the inbound HTTP adapter. It translates REST requests into
// commands and queries, and translates domain errors into HTTP status codes.
package http

import (
	"errors"
	"net/http"
	"strconv"

	"paquexpress/internal/core/application/usecases/commands"
	"paquexpress/internal/core/application/usecases/queries"
	"paquexpress/internal/core/domain/model/agent"
	"paquexpress/internal/core/domain/model/parcel"
	"paquexpress/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	registerAgentHandler   commands.RegisterAgentCommandHandler
	verifyLoginHandler     commands.VerifyLoginCommandHandler
	createParcelHandler    commands.CreateParcelCommandHandler
	assignAgentHandler     commands.AssignAgentCommandHandler
	confirmDeliveryHandler commands.ConfirmDeliveryCommandHandler
	setStatusHandler       commands.SetStatusCommandHandler

	// Query handlers
	getParcelHandler        queries.GetParcelQueryHandler
	getParcelHistoryHandler queries.GetParcelHistoryQueryHandler
	getAgentParcelsHandler  queries.GetAgentParcelsQueryHandler
	getAllAgentsHandler     queries.GetAllAgentsQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	registerAgentHandler commands.RegisterAgentCommandHandler,
	verifyLoginHandler commands.VerifyLoginCommandHandler,
	createParcelHandler commands.CreateParcelCommandHandler,
	assignAgentHandler commands.AssignAgentCommandHandler,
	confirmDeliveryHandler commands.ConfirmDeliveryCommandHandler,
	setStatusHandler commands.SetStatusCommandHandler,
	getParcelHandler queries.GetParcelQueryHandler,
	getParcelHistoryHandler queries.GetParcelHistoryQueryHandler,
	getAgentParcelsHandler queries.GetAgentParcelsQueryHandler,
	getAllAgentsHandler queries.GetAllAgentsQueryHandler,
) *Server {
	return &Server{
		registerAgentHandler:    registerAgentHandler,
		verifyLoginHandler:      verifyLoginHandler,
		createParcelHandler:     createParcelHandler,
		assignAgentHandler:      assignAgentHandler,
		confirmDeliveryHandler:  confirmDeliveryHandler,
		setStatusHandler:        setStatusHandler,
		getParcelHandler:        getParcelHandler,
		getParcelHistoryHandler: getParcelHistoryHandler,
		getAgentParcelsHandler:  getAgentParcelsHandler,
		getAllAgentsHandler:     getAllAgentsHandler,
	}
}

// RegisterRoutes mounts every endpoint on the given echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/agents", s.RegisterAgent)
	api.GET("/agents", s.GetAgents)
	api.GET("/agents/:id/parcels", s.GetAgentParcels)

	api.POST("/auth/login", s.Login)

	api.POST("/parcels", s.CreateParcel)
	api.GET("/parcels/:id", s.GetParcel)
	api.GET("/parcels/:id/history", s.GetParcelHistory)
	api.POST("/parcels/:id/assign", s.AssignParcel)
	api.POST("/parcels/:id/delivery", s.ConfirmDelivery)
	api.PUT("/parcels/:id/status", s.SetParcelStatus)
}

// statusCodeFor maps domain errors onto HTTP status codes. Any error the
// switch does not recognize is a server fault.
func statusCodeFor(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrValueAlreadyExists),
		errors.Is(err, errs.ErrConcurrencyConflict):
		return http.StatusConflict
	case errors.Is(err, parcel.ErrInvalidTransition):
		return http.StatusUnprocessableEntity
	case errors.Is(err, agent.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, agent.ErrAgentInactive):
		return http.StatusForbidden
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, errs.ErrValueIsRequired):
		return http.StatusBadRequest
	case errors.Is(err, errs.ErrUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// writeError renders err as the uniform error body with the mapped status.
func writeError(ctx echo.Context, err error) error {
	code := statusCodeFor(err)
	return ctx.JSON(code, Error{
		Code:    code,
		Message: err.Error(),
	})
}

// pathID extracts the numeric :id path parameter.
func pathID(ctx echo.Context) (int64, error) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, errs.NewValueIsInvalidError("id")
	}
	return id, nil
}

// RegisterAgent handles POST /api/v1/agents - registers a new delivery agent.
func (s *Server) RegisterAgent(ctx echo.Context) error {
	var req RegisterAgentRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewRegisterAgentCommand(
		req.EmployeeCode, req.Name, req.Email, req.Password, req.Phone, req.Vehicle)
	if err != nil {
		return writeError(ctx, err)
	}

	id, err := s.registerAgentHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: id})
}

// Login handles POST /api/v1/auth/login - verifies credentials and opens a session.
// Unknown emails and wrong passwords produce the same response.
func (s *Server) Login(ctx echo.Context) error {
	var req LoginRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewVerifyLoginCommand(req.Email, req.Password)
	if err != nil {
		return writeError(ctx, err)
	}

	result, err := s.verifyLoginHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, LoginResponse{
		AgentID: result.AgentID,
		Token:   result.Token,
	})
}

// CreateParcel handles POST /api/v1/parcels - registers a parcel, optionally
// assigning it to an agent in the same transaction.
func (s *Server) CreateParcel(ctx echo.Context) error {
	var req CreateParcelRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewCreateParcelCommand(
		req.TrackingCode, req.DestinationAddress, req.Recipient,
		req.RecipientPhone, req.Instructions, req.WeightKg, req.AgentID)
	if err != nil {
		return writeError(ctx, err)
	}

	id, err := s.createParcelHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: id})
}

// AssignParcel handles POST /api/v1/parcels/:id/assign - binds a parcel to an agent.
func (s *Server) AssignParcel(ctx echo.Context) error {
	parcelID, err := pathID(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	var req AssignParcelRequest
	if err = ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewAssignAgentCommand(parcelID, req.AgentID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.assignAgentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ConfirmDelivery handles POST /api/v1/parcels/:id/delivery - records the
// delivery confirmation with its geographic evidence.
func (s *Server) ConfirmDelivery(ctx echo.Context) error {
	parcelID, err := pathID(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	var req ConfirmDeliveryRequest
	if err = ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewConfirmDeliveryCommand(
		parcelID, req.Latitude, req.Longitude, req.EvidencePhoto, req.Observations)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.confirmDeliveryHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// SetParcelStatus handles PUT /api/v1/parcels/:id/status - moves a parcel
// through the lifecycle state machine.
func (s *Server) SetParcelStatus(ctx echo.Context) error {
	parcelID, err := pathID(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	var req SetStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	target, err := parcel.ParseStatus(req.Status)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewSetStatusCommand(parcelID, target, req.Observations)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.setStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetParcel handles GET /api/v1/parcels/:id - retrieves the full parcel state.
func (s *Server) GetParcel(ctx echo.Context) error {
	parcelID, err := pathID(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetParcelQuery(parcelID)
	if err != nil {
		return writeError(ctx, err)
	}

	found, err := s.getParcelHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, Parcel{
		ID:                 found.ID,
		TrackingCode:       found.TrackingCode,
		DestinationAddress: found.DestinationAddress,
		Recipient:          found.Recipient,
		RecipientPhone:     found.RecipientPhone,
		Instructions:       found.Instructions,
		WeightKg:           found.WeightKg,
		Status:             found.Status.String(),
		AgentID:            found.AgentID,
		CreatedAt:          found.CreatedAt,
		AssignedAt:         found.AssignedAt,
		DeliveredAt:        found.DeliveredAt,
		DeliveryLatitude:   found.DeliveryLatitude,
		DeliveryLongitude:  found.DeliveryLongitude,
		EvidencePhoto:      found.EvidencePhoto,
		Observations:       found.Observations,
	})
}

// GetParcelHistory handles GET /api/v1/parcels/:id/history - returns the
// status ledger in chronological order.
func (s *Server) GetParcelHistory(ctx echo.Context) error {
	parcelID, err := pathID(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetParcelHistoryQuery(parcelID)
	if err != nil {
		return writeError(ctx, err)
	}

	entries, err := s.getParcelHistoryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]HistoryEntry, len(entries))
	for i, entry := range entries {
		var previous *string
		if entry.Previous != nil {
			name := entry.Previous.String()
			previous = &name
		}

		response[i] = HistoryEntry{
			ID:             entry.ID,
			ParcelID:       entry.ParcelID,
			PreviousStatus: previous,
			NextStatus:     entry.Next.String(),
			ChangedAt:      entry.ChangedAt,
			Observations:   entry.Observations,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetAgentParcels handles GET /api/v1/agents/:id/parcels - returns the
// agent's active workload.
func (s *Server) GetAgentParcels(ctx echo.Context) error {
	agentID, err := pathID(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetAgentParcelsQuery(agentID)
	if err != nil {
		return writeError(ctx, err)
	}

	parcels, err := s.getAgentParcelsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]AgentParcel, len(parcels))
	for i, p := range parcels {
		response[i] = AgentParcel{
			ID:                 p.ID,
			TrackingCode:       p.TrackingCode,
			DestinationAddress: p.DestinationAddress,
			Recipient:          p.Recipient,
			Status:             p.Status.String(),
			AssignedAt:         p.AssignedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetAgents handles GET /api/v1/agents - returns the roster with workloads.
func (s *Server) GetAgents(ctx echo.Context) error {
	query := queries.NewGetAllAgentsQuery()

	agents, err := s.getAllAgentsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]Agent, len(agents))
	for i, a := range agents {
		response[i] = Agent{
			ID:            a.ID,
			EmployeeCode:  a.EmployeeCode,
			Name:          a.Name,
			Email:         a.Email,
			Phone:         a.Phone,
			Vehicle:       a.Vehicle,
			Status:        a.Status.String(),
			CreatedAt:     a.CreatedAt,
			ActiveParcels: a.ActiveParcels,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}
