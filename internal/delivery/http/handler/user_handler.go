package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/road-monitoring-service/internal/pkg/errors"
	"github.com/road-monitoring-service/internal/pkg/utils"
	"github.com/road-monitoring-service/internal/usecase"
	"github.com/road-monitoring-service/internal/usecase/dto"
	"go.uber.org/zap"
)

// UserHandler - обработчик запросов по учетным записям
type UserHandler struct {
	userUC *usecase.UserUseCase
	logger *zap.Logger
}

func NewUserHandler(userUC *usecase.UserUseCase, logger *zap.Logger) *UserHandler {
	return &UserHandler{
		userUC: userUC,
		logger: logger,
	}
}

// Register godoc
// @Summary Регистрация пользователя
// @Tags users
// @Accept json
// @Produce json
// @Param request body dto.CredentialsRequest true "Email и пароль"
// @Success 201 {object} utils.SuccessResponse{data=domain.User}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 409 {object} utils.ErrorResponse
// @Router /api/users/register [post]
func (h *UserHandler) Register(c *fiber.Ctx) error {
	var req dto.CredentialsRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	user, err := h.userUC.Register(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendCreated(c, user)
}

// Login godoc
// @Summary Вход пользователя
// @Tags users
// @Accept json
// @Produce json
// @Param request body dto.CredentialsRequest true "Email и пароль"
// @Success 200 {object} utils.SuccessResponse{data=dto.LoginResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Router /api/users/login [post]
func (h *UserHandler) Login(c *fiber.Ctx) error {
	var req dto.CredentialsRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	resp, err := h.userUC.Login(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, resp, nil)
}

// Logout godoc
// @Summary Выход пользователя
// @Description Сессий на сервере нет, поэтому выход всегда успешен
// @Tags users
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Router /api/users/logout [get]
func (h *UserHandler) Logout(c *fiber.Ctx) error {
	return utils.SendSuccess(c, fiber.Map{"message": "logout successful"}, nil)
}

// GetEmails godoc
// @Summary Email всех пользователей
// @Description Строки вида "email - id"
// @Tags users
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=[]string}
// @Router /api/users/emails [get]
func (h *UserHandler) GetEmails(c *fiber.Ctx) error {
	emails, err := h.userUC.GetEmails(c.Context())
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, emails, &utils.Meta{Total: len(emails)})
}

// Delete godoc
// @Summary Удалить пользователя
// @Tags users
// @Param id path string true "ID пользователя"
// @Success 204
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/users/{id} [delete]
func (h *UserHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.SendError(c, errors.ErrInvalidID)
	}

	if err := h.userUC.Delete(c.Context(), id); err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendNoContent(c)
}
