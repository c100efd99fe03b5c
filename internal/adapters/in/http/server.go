// Package http provides the inbound HTTP adapter of the freight service.
// It translates HTTP requests into application commands and queries and
// maps domain errors onto HTTP status codes.
package http

import (
	"errors"
	"net/http"

	"freight/internal/core/application/usecases/commands"
	"freight/internal/core/application/usecases/queries"
	"freight/internal/core/domain/model/container"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/product"
	"freight/internal/core/domain/model/ship"
	"freight/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	createContainerHandler  commands.CreateContainerCommandHandler
	createShipHandler       commands.CreateShipCommandHandler
	loadCargoHandler        commands.LoadCargoCommandHandler
	emptyCargoHandler       commands.EmptyCargoCommandHandler
	loadContainersHandler   commands.LoadContainersCommandHandler
	removeContainerHandler  commands.RemoveContainerCommandHandler
	replaceContainerHandler commands.ReplaceContainerCommandHandler
	stowContainersHandler   commands.StowContainersCommandHandler

	getAllShipsHandler             queries.GetAllShipsQueryHandler
	getUnassignedContainersHandler queries.GetUnassignedContainersQueryHandler
}

// NewServer creates a new HTTP server with the required command and query
// handlers.
func NewServer(
	createContainerHandler commands.CreateContainerCommandHandler,
	createShipHandler commands.CreateShipCommandHandler,
	loadCargoHandler commands.LoadCargoCommandHandler,
	emptyCargoHandler commands.EmptyCargoCommandHandler,
	loadContainersHandler commands.LoadContainersCommandHandler,
	removeContainerHandler commands.RemoveContainerCommandHandler,
	replaceContainerHandler commands.ReplaceContainerCommandHandler,
	stowContainersHandler commands.StowContainersCommandHandler,
	getAllShipsHandler queries.GetAllShipsQueryHandler,
	getUnassignedContainersHandler queries.GetUnassignedContainersQueryHandler,
) *Server {
	return &Server{
		createContainerHandler:         createContainerHandler,
		createShipHandler:              createShipHandler,
		loadCargoHandler:               loadCargoHandler,
		emptyCargoHandler:              emptyCargoHandler,
		loadContainersHandler:          loadContainersHandler,
		removeContainerHandler:         removeContainerHandler,
		replaceContainerHandler:        replaceContainerHandler,
		stowContainersHandler:          stowContainersHandler,
		getAllShipsHandler:             getAllShipsHandler,
		getUnassignedContainersHandler: getUnassignedContainersHandler,
	}
}

// RegisterRoutes wires the API endpoints into the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/containers", s.CreateContainer)
	api.GET("/containers/unassigned", s.GetUnassignedContainers)
	api.PUT("/containers/:serial/cargo", s.LoadCargo)
	api.DELETE("/containers/:serial/cargo", s.EmptyCargo)

	api.POST("/ships", s.CreateShip)
	api.GET("/ships", s.GetShips)
	api.POST("/ships/:id/containers", s.LoadContainers)
	api.DELETE("/ships/:id/containers/:serial", s.RemoveContainer)
	api.PUT("/ships/:id/containers/:serial", s.ReplaceContainer)

	api.POST("/stowage/rounds", s.StowContainers)
}

// CreateContainer handles POST /api/v1/containers.
// Registers a new container and returns its serial number.
func (s *Server) CreateContainer(ctx echo.Context) error {
	var body NewContainer
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	kind, err := container.KindFromString(body.Kind)
	if err != nil {
		return badRequest(ctx, "Invalid container kind: "+body.Kind)
	}

	prod := product.Unknown
	if kind == container.Refrigerated {
		prod, err = product.FromString(body.Product)
		if err != nil {
			return badRequest(ctx, "Unknown product: "+body.Product)
		}
	}

	cmd, err := commands.NewCreateContainerCommand(
		kind,
		body.Height, body.Depth, body.TareWeight, body.MaxPayload,
		body.Dangerous,
		body.Pressure,
		prod,
		body.Temperature,
	)
	if err != nil {
		return badRequest(ctx, "Invalid container data: "+err.Error())
	}

	serial, err := s.createContainerHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, ContainerCreated{Serial: serial.String()})
}

// GetUnassignedContainers handles GET /api/v1/containers/unassigned.
func (s *Server) GetUnassignedContainers(ctx echo.Context) error {
	query := queries.NewGetUnassignedContainersQuery()

	containers, err := s.getUnassignedContainersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx, "Failed to retrieve containers")
	}

	response := make([]UnassignedContainer, len(containers))
	for i, c := range containers {
		response[i] = UnassignedContainer{
			Serial:        c.Serial,
			Kind:          c.Kind,
			CargoMassKg:   c.CargoMassKg,
			MaxPayloadKg:  c.MaxPayloadKg,
			TotalWeightKg: c.TotalWeightKg,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// LoadCargo handles PUT /api/v1/containers/:serial/cargo.
// Loading replaces the container's current cargo mass.
func (s *Server) LoadCargo(ctx echo.Context) error {
	serial, err := kernel.SerialNumberFromString(ctx.Param("serial"))
	if err != nil {
		return badRequest(ctx, "Invalid serial number: "+ctx.Param("serial"))
	}

	var body LoadCargoRequest
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewLoadCargoCommand(serial, body.Mass)
	if err != nil {
		return badRequest(ctx, "Invalid cargo data: "+err.Error())
	}

	if err = s.loadCargoHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// EmptyCargo handles DELETE /api/v1/containers/:serial/cargo.
func (s *Server) EmptyCargo(ctx echo.Context) error {
	serial, err := kernel.SerialNumberFromString(ctx.Param("serial"))
	if err != nil {
		return badRequest(ctx, "Invalid serial number: "+ctx.Param("serial"))
	}

	cmd, err := commands.NewEmptyCargoCommand(serial)
	if err != nil {
		return badRequest(ctx, "Invalid request: "+err.Error())
	}

	if err = s.emptyCargoHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CreateShip handles POST /api/v1/ships.
// Commissions a new ship and returns its identifier.
func (s *Server) CreateShip(ctx echo.Context) error {
	var body NewShip
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	shipID := kernel.NewUUID()
	cmd, err := commands.NewCreateShipCommand(
		shipID,
		body.Name,
		body.MaxSpeedKnots,
		body.MaxContainerCount,
		body.MaxWeightTons,
	)
	if err != nil {
		return badRequest(ctx, "Invalid ship data: "+err.Error())
	}

	if err = s.createShipHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, ShipCreated{ID: shipID.String()})
}

// GetShips handles GET /api/v1/ships.
func (s *Server) GetShips(ctx echo.Context) error {
	query := queries.NewGetAllShipsQuery()

	ships, err := s.getAllShipsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx, "Failed to retrieve ships")
	}

	response := make([]Ship, len(ships))
	for i, sh := range ships {
		containers := make([]StowedContainer, len(sh.Containers))
		for j, c := range sh.Containers {
			containers[j] = StowedContainer{
				Serial:        c.Serial,
				Kind:          c.Kind,
				TotalWeightKg: c.TotalWeightKg,
			}
		}

		response[i] = Ship{
			ID:                sh.ID.String(),
			Name:              sh.Name,
			MaxSpeedKnots:     sh.MaxSpeedKnots,
			MaxContainerCount: sh.MaxContainerCount,
			MaxWeightTons:     sh.MaxWeightTons,
			Containers:        containers,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// LoadContainers handles POST /api/v1/ships/:id/containers.
// Loads a batch of containers onto the ship; the batch is all or nothing.
func (s *Server) LoadContainers(ctx echo.Context) error {
	shipID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid ship id: "+ctx.Param("id"))
	}

	var body LoadContainersRequest
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	serials := make([]kernel.SerialNumber, 0, len(body.Serials))
	for _, raw := range body.Serials {
		serial, parseErr := kernel.SerialNumberFromString(raw)
		if parseErr != nil {
			return badRequest(ctx, "Invalid serial number: "+raw)
		}
		serials = append(serials, serial)
	}

	cmd, err := commands.NewLoadContainersCommand(shipID, serials)
	if err != nil {
		return badRequest(ctx, "Invalid batch: "+err.Error())
	}

	if err = s.loadContainersHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RemoveContainer handles DELETE /api/v1/ships/:id/containers/:serial.
func (s *Server) RemoveContainer(ctx echo.Context) error {
	shipID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid ship id: "+ctx.Param("id"))
	}

	serial, err := kernel.SerialNumberFromString(ctx.Param("serial"))
	if err != nil {
		return badRequest(ctx, "Invalid serial number: "+ctx.Param("serial"))
	}

	cmd, err := commands.NewRemoveContainerCommand(shipID, serial)
	if err != nil {
		return badRequest(ctx, "Invalid request: "+err.Error())
	}

	if err = s.removeContainerHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ReplaceContainer handles PUT /api/v1/ships/:id/containers/:serial.
// Swaps the container identified by :serial for the one named in the body.
func (s *Server) ReplaceContainer(ctx echo.Context) error {
	shipID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid ship id: "+ctx.Param("id"))
	}

	oldSerial, err := kernel.SerialNumberFromString(ctx.Param("serial"))
	if err != nil {
		return badRequest(ctx, "Invalid serial number: "+ctx.Param("serial"))
	}

	var body ReplaceContainerRequest
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	newSerial, err := kernel.SerialNumberFromString(body.ReplacementSerial)
	if err != nil {
		return badRequest(ctx, "Invalid serial number: "+body.ReplacementSerial)
	}

	cmd, err := commands.NewReplaceContainerCommand(shipID, oldSerial, newSerial)
	if err != nil {
		return badRequest(ctx, "Invalid request: "+err.Error())
	}

	if err = s.replaceContainerHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// StowContainers handles POST /api/v1/stowage/rounds.
// Triggers a stowage planning round on demand.
func (s *Server) StowContainers(ctx echo.Context) error {
	cmd := commands.NewStowContainersCommand()

	if err := s.stowContainersHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusAccepted)
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

func internalError(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusInternalServerError, Error{
		Code:    http.StatusInternalServerError,
		Message: message,
	})
}

// domainError maps domain and persistence errors onto HTTP status codes:
// missing objects become 404, violated stowage rules become 409, anything
// else is a 500.
func domainError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound),
		errors.Is(err, ship.ErrContainerNotFound):
		return ctx.JSON(http.StatusNotFound, Error{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	case errors.Is(err, container.ErrOverfill),
		errors.Is(err, container.ErrUnsafeTemperature),
		errors.Is(err, ship.ErrCapacityExceeded),
		errors.Is(err, ship.ErrWeightExceeded):
		return ctx.JSON(http.StatusConflict, Error{
			Code:    http.StatusConflict,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	default:
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: err.Error(),
		})
	}
}
