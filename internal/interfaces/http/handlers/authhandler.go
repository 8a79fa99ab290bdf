package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"toolvault/internal/application/user/dto"
	userusecases "toolvault/internal/application/user/usecases"
	"toolvault/internal/shared/constants"
	"toolvault/internal/shared/logger"
	"toolvault/internal/shared/utils"
)

type AuthHandler struct {
	registerUseCase     registerUseCase
	loginUseCase        loginUseCase
	refreshTokenUseCase refreshTokenUseCase
	logoutUseCase       logoutUseCase
	currentUserUseCase  getCurrentUserUseCase
	initiateOAuthUC     initiateOAuthUseCase
	handleOAuthUC       handleOAuthCallbackUseCase
	logger              logger.Interface
}

func NewAuthHandler(
	registerUC registerUseCase,
	loginUC loginUseCase,
	refreshTokenUC refreshTokenUseCase,
	logoutUC logoutUseCase,
	currentUserUC getCurrentUserUseCase,
	initiateOAuthUC initiateOAuthUseCase,
	handleOAuthUC handleOAuthCallbackUseCase,
	logger logger.Interface,
) *AuthHandler {
	return &AuthHandler{
		registerUseCase:     registerUC,
		loginUseCase:        loginUC,
		refreshTokenUseCase: refreshTokenUC,
		logoutUseCase:       logoutUC,
		currentUserUseCase:  currentUserUC,
		initiateOAuthUC:     initiateOAuthUC,
		handleOAuthUC:       handleOAuthUC,
		logger:              logger,
	}
}

type RegisterRequest struct {
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=8"`
	FirstName string `json:"firstName" binding:"max=100"`
	LastName  string `json:"lastName" binding:"max=100"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// Register godoc
// @Summary Register with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Registration"
// @Success 201 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /api/auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	account, err := h.registerUseCase.Execute(c.Request.Context(), userusecases.RegisterWithPasswordCommand{
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, "registration successful", dto.UserToDTO(account))
}

// Login godoc
// @Summary Log in with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Credentials"
// @Success 200 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Router /api/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.loginUseCase.Execute(c.Request.Context(), userusecases.LoginWithPasswordCommand{
		Email:     req.Email,
		Password:  req.Password,
		IPAddress: c.ClientIP(),
		UserAgent: c.GetHeader("User-Agent"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", authResultToDTO(result))
}

// RefreshToken godoc
// @Summary Exchange a refresh token for a new token pair
// @Description The presented refresh token is invalidated (rotation)
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RefreshTokenRequest true "Refresh token"
// @Success 200 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Router /api/auth/refresh [post]
func (h *AuthHandler) RefreshToken(c *gin.Context) {
	var req RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.refreshTokenUseCase.Execute(c.Request.Context(), userusecases.RefreshTokenCommand{
		RefreshToken: req.RefreshToken,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", authResultToDTO(result))
}

// Logout godoc
// @Summary Log out the current session
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.APIResponse
// @Router /api/auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	sessionID := c.GetString(constants.ContextKeySessionID)

	if err := h.logoutUseCase.Execute(c.Request.Context(), userusecases.LogoutCommand{
		SessionID: sessionID,
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "logged out", nil)
}

// GetCurrentUser godoc
// @Summary Get the authenticated account
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Router /api/auth/me [get]
func (h *AuthHandler) GetCurrentUser(c *gin.Context) {
	account, err := h.currentUserUseCase.Execute(c.Request.Context(), userusecases.GetCurrentUserQuery{
		UserID: c.GetUint(constants.ContextKeyUserID),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", dto.UserToDTO(account))
}

// InitiateOAuth godoc
// @Summary Start the OAuth login flow
// @Tags auth
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /api/auth/oauth/google [get]
func (h *AuthHandler) InitiateOAuth(c *gin.Context) {
	result, err := h.initiateOAuthUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", gin.H{
		"authUrl": result.AuthURL,
		"state":   result.State,
	})
}

// HandleOAuthCallback godoc
// @Summary Complete the OAuth login flow
// @Tags auth
// @Produce json
// @Param code query string true "Authorization code"
// @Param state query string true "CSRF state"
// @Success 200 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Router /api/auth/oauth/google/callback [get]
func (h *AuthHandler) HandleOAuthCallback(c *gin.Context) {
	result, err := h.handleOAuthUC.Execute(c.Request.Context(), userusecases.HandleOAuthCallbackCommand{
		Code:      c.Query("code"),
		State:     c.Query("state"),
		IPAddress: c.ClientIP(),
		UserAgent: c.GetHeader("User-Agent"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", authResultToDTO(result))
}

func authResultToDTO(result *userusecases.LoginResult) *dto.AuthResultDTO {
	return &dto.AuthResultDTO{
		User:         dto.UserToDTO(result.User),
		AccessToken:  result.AccessToken,
		RefreshToken: result.RefreshToken,
		ExpiresIn:    result.ExpiresIn,
	}
}
