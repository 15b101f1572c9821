package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/taller-api/internal/application/dto"
	"github.com/jhoicas/taller-api/internal/application/repairs"
	"github.com/jhoicas/taller-api/internal/domain/entity"
)

// RepairHandler maneja las órdenes de reparación.
type RepairHandler struct {
	uc *repairs.RepairUseCase
}

// NewRepairHandler construye el handler.
func NewRepairHandler(uc *repairs.RepairUseCase) *RepairHandler {
	return &RepairHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar orden de reparación
// @Description  Valida la sección del técnico antes de escribir; el cliente se crea o reutiliza por teléfono.
// @Tags         repairs
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateRepairRequest  true  "Datos de la reparación"
// @Success      201   {object}  dto.CreateRepairResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/repairs [post]
func (h *RepairHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateRepairRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Error: "cuerpo inválido"})
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar reparaciones
// @Description  El técnico solo ve las órdenes que tiene asignadas.
// @Tags         repairs
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.RepairResponse
// @Router       /api/repairs [get]
func (h *RepairHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context(), GetUserID(c), entity.Role(GetRole(c)))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// UpdateStatus godoc
// @Summary      Cambiar estado de reparación
// @Description  Solo avanza hacia adelante: received → in_progress → completed.
// @Tags         repairs
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la orden"
// @Param        body  body  dto.UpdateRepairStatusRequest  true  "Nuevo estado"
// @Success      200   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/repairs/{id}/status [put]
func (h *RepairHandler) UpdateStatus(c *fiber.Ctx) error {
	var in dto.UpdateRepairStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Error: "cuerpo inválido"})
	}
	if err := h.uc.UpdateStatus(c.Context(), c.Params("id"), GetUserID(c), entity.Role(GetRole(c)), in); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "estado actualizado"})
}

// AddDiagnosis godoc
// @Summary      Registrar diagnóstico
// @Description  Solo el técnico asignado; la orden pasa a in_progress si estaba recibida.
// @Tags         repairs
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la orden"
// @Param        body  body  dto.AddDiagnosisRequest  true  "Diagnóstico"
// @Success      200   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/repairs/{id}/diagnosis [put]
func (h *RepairHandler) AddDiagnosis(c *fiber.Ctx) error {
	var in dto.AddDiagnosisRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Error: "cuerpo inválido"})
	}
	if err := h.uc.AddDiagnosis(c.Context(), c.Params("id"), GetUserID(c), entity.Role(GetRole(c)), in); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "diagnóstico registrado"})
}
