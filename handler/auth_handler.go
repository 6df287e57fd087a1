package handler

import (
	"errors"
	"strings"

	"stickynotes/dto"
	"stickynotes/services"
	"stickynotes/usecase"
	"stickynotes/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AuthHandler serves registration and the JWT token endpoints.
type AuthHandler struct {
	users     *usecase.UserService
	tokens    *services.TokenService
	blacklist services.TokenBlacklist // nil when Redis is not configured
	logger    *zap.Logger
}

func NewAuthHandler(users *usecase.UserService, tokens *services.TokenService, blacklist services.TokenBlacklist, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		users:     users,
		tokens:    tokens,
		blacklist: blacklist,
		logger:    logger,
	}
}

// Register creates an account and returns it without issuing tokens.
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if !bindJSON(c, &req) {
		utils.TrackAuthAttempt("failure", "register")
		return
	}

	user, err := h.users.Register(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	h.logger.Info("user registered", zap.String("user_id", user.UserID))
	utils.Created(c, dto.UserResponse{ID: user.UserID, Username: user.Username})
}

// ObtainToken exchanges username and password for an access/refresh pair.
func (h *AuthHandler) ObtainToken(c *gin.Context) {
	var req dto.TokenRequest
	if !bindJSON(c, &req) {
		utils.TrackAuthAttempt("failure", "login")
		return
	}

	user, err := h.users.Authenticate(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	pair, err := h.tokens.IssuePair(user.UserID)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	utils.Success(c, pair)
}

// RefreshToken issues a new access token for a valid refresh token.
func (h *AuthHandler) RefreshToken(c *gin.Context) {
	var req dto.RefreshRequest
	if !bindJSON(c, &req) {
		return
	}

	claims, ok := h.refreshClaims(c, req.Refresh)
	if !ok {
		utils.TrackAuthAttempt("failure", "refresh")
		return
	}

	if _, err := h.users.Get(c.Request.Context(), claims.UserID); err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			utils.TrackAuthAttempt("failure", "refresh")
			utils.Unauthorized(c, "User not found")
			return
		}
		writeError(c, h.logger, err)
		return
	}

	access, err := h.tokens.IssueAccess(claims.UserID)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	utils.TrackAuthAttempt("success", "refresh")
	utils.Success(c, dto.AccessToken{Access: access})
}

// BlacklistToken revokes the refresh token and, when one is sent, the bearer
// access token too.
func (h *AuthHandler) BlacklistToken(c *gin.Context) {
	var req dto.RefreshRequest
	if !bindJSON(c, &req) {
		return
	}

	claims, ok := h.refreshClaims(c, req.Refresh)
	if !ok {
		utils.TrackAuthAttempt("failure", "logout")
		return
	}

	if h.blacklist == nil {
		h.logger.Warn("logout without token blacklist; tokens stay valid until expiry",
			zap.String("user_id", claims.UserID))
		utils.TrackAuthAttempt("success", "logout")
		utils.Success(c, gin.H{})
		return
	}

	ctx := c.Request.Context()
	if err := h.blacklist.Revoke(ctx, claims); err != nil {
		writeError(c, h.logger, err)
		return
	}

	if bearer, found := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer "); found {
		if access, err := h.tokens.Parse(strings.TrimSpace(bearer), services.AccessToken); err == nil && access.UserID == claims.UserID {
			if err := h.blacklist.Revoke(ctx, access); err != nil {
				h.logger.Warn("failed to revoke access token", zap.Error(err))
			}
		}
	}

	utils.TrackAuthAttempt("success", "logout")
	utils.Success(c, gin.H{})
}

// refreshClaims validates a refresh token including its blacklist entry,
// answering 401 itself when it is not usable.
func (h *AuthHandler) refreshClaims(c *gin.Context, token string) (*services.Claims, bool) {
	claims, err := h.tokens.Parse(token, services.RefreshToken)
	if err != nil {
		utils.Unauthorized(c, "Token is invalid or expired")
		return nil, false
	}

	if h.blacklist != nil {
		revoked, err := h.blacklist.IsRevoked(c.Request.Context(), claims.ID)
		if err != nil {
			h.logger.Error("token blacklist lookup failed", zap.Error(err))
			utils.ServiceUnavailable(c, "Token blacklist unavailable")
			return nil, false
		}
		if revoked {
			utils.Unauthorized(c, "Token is blacklisted")
			return nil, false
		}
	}
	return claims, true
}
