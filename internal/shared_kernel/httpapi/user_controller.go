package httpapi

import (
	"log/slog"
	"net/http"

	"scout-server/internal/infra/httpserver"
	"scout-server/internal/shared_kernel/domain"
	"scout-server/internal/shared_kernel/httpapi/internal"
	"scout-server/internal/shared_kernel/usecases"
)

const (
	listUsersErrMessage      = "failed to list users"
	createUserErrMessage     = "failed to create user"
	updateUserErrMessage     = "failed to update user"
	deleteUserErrMessage     = "failed to delete user"
	changePasswordErrMessage = "failed to change password"
	invalidRoleErrMessage    = "invalid role"
)

func NewUserController(service usecases.UserService) *UserController {
	return &UserController{
		service: service,
	}
}

var _ httpserver.Controller = &UserController{}

type UserController struct {
	service usecases.UserService
}

func (c *UserController) AddRoutes(router *http.ServeMux) {
	router.Handle("GET /v1/users", RequireRole(c.service, domain.RoleAdmin, c.listUsers()))
	router.Handle("POST /v1/users", RequireRole(c.service, domain.RoleAdmin, c.createUser()))
	router.Handle("POST /v1/users/me/password", RequireRole(c.service, domain.RoleReadonly, c.changePassword()))
	router.Handle("PUT /v1/users/{id}", RequireRole(c.service, domain.RoleAdmin, c.updateUser()))
	router.Handle("DELETE /v1/users/{id}", RequireRole(c.service, domain.RoleAdmin, c.deleteUser()))
}

func (c *UserController) listUsers() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		users, err := c.service.ListUsers(r.Context())
		if err != nil {
			ReplyWithDomainError(w, err, listUsersErrMessage)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToUserListResponse(users))
	}
}

func (c *UserController) createUser() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		input, ok := decodeUserRequest(w, r, createUserErrMessage)
		if !ok {
			return
		}

		user, err := c.service.CreateUser(r.Context(), input)
		if err != nil {
			ReplyWithDomainError(w, err, createUserErrMessage)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusCreated, internal.ToUserResponse(user))
	}
}

func (c *UserController) updateUser() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		input, ok := decodeUserRequest(w, r, updateUserErrMessage)
		if !ok {
			return
		}

		userID := domain.ID(r.PathValue("id"))
		user, err := c.service.UpdateUser(r.Context(), CallerID(r), userID, input)
		if err != nil {
			ReplyWithDomainError(w, err, updateUserErrMessage)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToUserResponse(user))
	}
}

func (c *UserController) deleteUser() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := domain.ID(r.PathValue("id"))
		err := c.service.DeleteUser(r.Context(), CallerID(r), userID)
		if err != nil {
			ReplyWithDomainError(w, err, deleteUserErrMessage)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func (c *UserController) changePassword() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body internal.ChangePasswordRequest
		if err := httpserver.DecodeJSONBody(r, &body); err != nil {
			http.Error(w, changePasswordErrMessage, http.StatusBadRequest)
			return
		}

		err := c.service.ChangePassword(r.Context(), CallerID(r), body.CurrentPassword, body.NewPassword)
		if err != nil {
			ReplyWithDomainError(w, err, changePasswordErrMessage)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func decodeUserRequest(w http.ResponseWriter, r *http.Request, errMessage string) (usecases.UserInput, bool) {
	var body internal.UserRequest
	if err := httpserver.DecodeJSONBody(r, &body); err != nil {
		slog.Warn("decoding user request", slog.String("error", err.Error()))
		http.Error(w, errMessage, http.StatusBadRequest)
		return usecases.UserInput{}, false
	}

	role := domain.RoleReadonly
	if body.Role != "" {
		parsed, err := domain.ParseRole(body.Role)
		if err != nil {
			http.Error(w, invalidRoleErrMessage, http.StatusBadRequest)
			return usecases.UserInput{}, false
		}
		role = parsed
	}

	return usecases.UserInput{
		Username: body.Username,
		Email:    body.Email,
		Password: body.Password,
		Role:     role,
	}, true
}
