package users

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/GlebRadaev/globalfund/internal/domain"
	"github.com/GlebRadaev/globalfund/internal/dto"
	"github.com/GlebRadaev/globalfund/internal/service/authservice"
	"github.com/GlebRadaev/globalfund/pkg/auth"
	"github.com/GlebRadaev/globalfund/pkg/utils"
	"github.com/GlebRadaev/globalfund/pkg/validate"
	"github.com/go-chi/chi/v5"
)

//go:generate mockgen -source=users.go -destination=mock_users.go -package=users

const forgotPasswordMessage = "If a user with that email exists, an OTP has been sent."

type Service interface {
	Register(ctx context.Context, in authservice.RegisterInput) (*domain.User, error)
	Authenticate(ctx context.Context, email, password string) (*domain.User, error)
	AdminLogin(ctx context.Context, email, password string) (*domain.User, error)
	GenerateToken(user *domain.User) (string, error)
	GetProfile(ctx context.Context, userID string) (*domain.User, error)
	RequestPasswordReset(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, email, otp, newPassword string) error
	ChangePassword(ctx context.Context, userID, currentPassword, newPassword string) error
	UpdateUser(ctx context.Context, principal *auth.Principal, id string, upd authservice.UserUpdate) (*domain.User, error)
}

type UserHandler struct {
	userService Service
}

func New(userService Service) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// decode reads a JSON body into dst and runs its validate tags. It writes
// the 400 response itself and reports whether the caller may continue.
func decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return false
	}
	if msgs := validate.Struct(dst); len(msgs) > 0 {
		utils.RespondWithError(w, http.StatusBadRequest, strings.Join(msgs, ", "))
		return false
	}
	return true
}

// Register godoc
//
//	@Summary		Register a new user
//	@Description	Create a user account and log it in immediately
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.RegisterRequestDTO	true	"Register request body"
//	@Success		201		{object}	dto.UserResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body or email already used"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/users [post]
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequestDTO
	if !decode(w, r, &req) {
		return
	}
	user, err := h.userService.Register(r.Context(), authservice.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Phone:    req.Phone,
	})
	if err != nil {
		if errors.Is(err, authservice.ErrDuplicateEmail) {
			utils.RespondWithError(w, http.StatusBadRequest, "User with this email already exists.")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Server error during registration")
		return
	}
	h.respondWithToken(w, http.StatusCreated, user)
}

// Login godoc
//
//	@Summary		Authenticate user
//	@Description	Log in with email and password and get a bearer token
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.LoginRequestDTO	true	"Login request body"
//	@Success		200		{object}	dto.UserResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"Invalid credentials"
//	@Failure		429		{object}	utils.Response	"Too many requests"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/users/login [post]
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequestDTO
	if !decode(w, r, &req) {
		return
	}
	user, err := h.userService.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		h.respondLoginError(w, err)
		return
	}
	h.respondWithToken(w, http.StatusOK, user)
}

// AdminLogin godoc
//
//	@Summary		Authenticate an admin
//	@Description	Same as user login but refuses accounts without the admin flag
//	@Tags			Admin
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.LoginRequestDTO	true	"Login request body"
//	@Success		200		{object}	dto.UserResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"Invalid credentials"
//	@Failure		403		{object}	utils.Response	"Not an admin"
//	@Failure		429		{object}	utils.Response	"Too many requests"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/login [post]
func (h *UserHandler) AdminLogin(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequestDTO
	if !decode(w, r, &req) {
		return
	}
	user, err := h.userService.AdminLogin(r.Context(), req.Email, req.Password)
	if err != nil {
		h.respondLoginError(w, err)
		return
	}
	h.respondWithToken(w, http.StatusOK, user)
}

func (h *UserHandler) respondLoginError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, authservice.ErrInvalidCredentials):
		utils.RespondWithError(w, http.StatusUnauthorized, "Invalid email or password.")
	case errors.Is(err, authservice.ErrForbidden):
		utils.RespondWithError(w, http.StatusForbidden, "Not authorized as an admin")
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Server error during login")
	}
}

func (h *UserHandler) respondWithToken(w http.ResponseWriter, code int, user *domain.User) {
	token, err := h.userService.GenerateToken(user)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error generating token")
		return
	}
	utils.RespondWithJSON(w, code, dto.NewUserResponse(user, token))
}

// ForgotPassword godoc
//
//	@Summary		Request a password reset code
//	@Description	Mails a one-time code when the account exists. The response is the same either way.
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.ForgotPasswordRequestDTO	true	"Email of the account"
//	@Success		200		{object}	utils.Response
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		429		{object}	utils.Response	"Too many requests"
//	@Failure		500		{object}	utils.Response	"Failed to send OTP"
//	@Router			/api/users/forgot-password [post]
func (h *UserHandler) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	var req dto.ForgotPasswordRequestDTO
	if !decode(w, r, &req) {
		return
	}
	if err := h.userService.RequestPasswordReset(r.Context(), req.Email); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to send OTP")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: forgotPasswordMessage})
}

// ResetPassword godoc
//
//	@Summary		Reset password with a one-time code
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.ResetPasswordRequestDTO	true	"Email, code and new password"
//	@Success		200		{object}	utils.Response
//	@Failure		400		{object}	utils.Response	"Invalid or expired OTP"
//	@Failure		429		{object}	utils.Response	"Too many requests"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/users/reset-password [post]
func (h *UserHandler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	var req dto.ResetPasswordRequestDTO
	if !decode(w, r, &req) {
		return
	}
	err := h.userService.ResetPassword(r.Context(), req.Email, req.OTP, req.NewPassword)
	if err != nil {
		if errors.Is(err, authservice.ErrInvalidOTP) {
			utils.RespondWithError(w, http.StatusBadRequest, "Invalid or expired OTP.")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to reset password")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Password has been reset successfully. You can now login."})
}

// GetProfile godoc
//
//	@Summary		Get own profile
//	@Tags			Users
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	dto.UserResponseDTO
//	@Failure		401	{object}	utils.Response	"Not authorized"
//	@Failure		404	{object}	utils.Response	"User not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/users/profile [get]
func (h *UserHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	principal, ok := auth.PrincipalFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Not authorized, no token")
		return
	}
	user, err := h.userService.GetProfile(r.Context(), principal.UserID)
	if err != nil {
		h.respondUserError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewUserResponse(user, ""))
}

// ChangePassword godoc
//
//	@Summary		Change own password
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		dto.ChangePasswordRequestDTO	true	"Current and new password"
//	@Success		200		{object}	utils.Response
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"Current password is incorrect"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/users/profile/password [patch]
func (h *UserHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	principal, ok := auth.PrincipalFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Not authorized, no token")
		return
	}
	var req dto.ChangePasswordRequestDTO
	if !decode(w, r, &req) {
		return
	}
	err := h.userService.ChangePassword(r.Context(), principal.UserID, req.CurrentPassword, req.NewPassword)
	if err != nil {
		if errors.Is(err, authservice.ErrInvalidCredentials) {
			utils.RespondWithError(w, http.StatusUnauthorized, "Current password is incorrect")
			return
		}
		h.respondUserError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Password updated successfully"})
}

// UpdateUser godoc
//
//	@Summary		Update any user
//	@Description	Admin only. Every field is optional; isAdmin must be a boolean.
//	@Tags			Admin
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id		path		string					true	"User ID"
//	@Param			request	body		dto.UpdateUserRequestDTO	true	"Fields to change"
//	@Success		200		{object}	dto.UserResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"Not authorized"
//	@Failure		403		{object}	utils.Response	"Not an admin"
//	@Failure		404		{object}	utils.Response	"User not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/users/{id} [patch]
func (h *UserHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	principal, _ := auth.PrincipalFromContext(r.Context())

	var req dto.UpdateUserRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	upd := authservice.UserUpdate{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Password: req.Password,
	}
	if req.IsAdmin != nil {
		isAdmin, ok := req.IsAdmin.(bool)
		if !ok {
			utils.RespondWithError(w, http.StatusBadRequest, "isAdmin must be a boolean value.")
			return
		}
		upd.IsAdmin = &isAdmin
	}

	user, err := h.userService.UpdateUser(r.Context(), principal, chi.URLParam(r, "id"), upd)
	if err != nil {
		h.respondUserError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewUserResponse(user, ""))
}

func (h *UserHandler) respondUserError(w http.ResponseWriter, err error) {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		utils.RespondWithError(w, http.StatusBadRequest, verr.Error())
	case errors.Is(err, authservice.ErrUserNotFound):
		utils.RespondWithError(w, http.StatusNotFound, "User not found")
	case errors.Is(err, authservice.ErrForbidden):
		utils.RespondWithError(w, http.StatusForbidden, "Not authorized as an admin")
	case errors.Is(err, authservice.ErrDuplicateEmail):
		utils.RespondWithError(w, http.StatusBadRequest, "User with this email already exists.")
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}
