package http

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"

	"fundbuddy/internal/domain"
	"fundbuddy/internal/repository"
	"fundbuddy/internal/service"
)

const ctxUserKey = "authUser"

// Handler wires HTTP routes to domain services.
type Handler struct {
	auth          service.AuthService
	assets        service.AssetService
	notifications service.NotificationService
	jwtSecret     string
	tokenTTL      time.Duration
	logger        *logrus.Logger
}

func NewHandler(
	auth service.AuthService,
	assets service.AssetService,
	notifications service.NotificationService,
	jwtSecret string,
	tokenTTL time.Duration,
	logger *logrus.Logger,
) *Handler {
	return &Handler{
		auth:          auth,
		assets:        assets,
		notifications: notifications,
		jwtSecret:     jwtSecret,
		tokenTTL:      tokenTTL,
		logger:        logger,
	}
}

func (h *Handler) RegisterRoutes(router *gin.Engine) {
	router.Use(corsMiddleware())

	api := router.Group("/api")
	{
		api.POST("/auth/register", h.register)
		api.POST("/auth/login", h.login)
		api.GET("/health", func(ctx *gin.Context) {
			ctx.JSON(http.StatusOK, gin.H{"ok": "ok"})
		})

		authed := api.Group("", h.requireAuth())
		{
			authed.POST("/auth/logout", h.logout)
			authed.GET("/me", h.me)
			authed.PUT("/me", h.updateProfile)
			authed.GET("/assets", h.listAssets)
			authed.POST("/assets", h.createAsset)
			authed.PUT("/assets/:id", h.updateAsset)
			authed.DELETE("/assets/:id", h.deleteAsset)
			authed.GET("/assets/search", h.searchAssets)
			authed.GET("/portfolio/summary", h.portfolioSummary)
			authed.GET("/notifications", h.listNotifications)
		}
	}
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Accept, Authorization")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

// requireAuth validates the bearer token and checks its subject against the
// held session, which stays the single gate for authenticated access: a
// logout invalidates every outstanding token.
func (h *Handler) requireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		const prefix = "Bearer "
		if !strings.HasPrefix(header, prefix) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}

		claims := &jwt.RegisteredClaims{}
		token, err := jwt.ParseWithClaims(strings.TrimPrefix(header, prefix), claims, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
			}
			return []byte(h.jwtSecret), nil
		})
		if err != nil || !token.Valid || claims.Subject == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		user, err := h.auth.CurrentUser(c.Request.Context())
		if err != nil || user.Email != claims.Subject {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "session expired"})
			return
		}

		c.Set(ctxUserKey, *user)
		c.Next()
	}
}

func (h *Handler) issueToken(email string) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   email,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(h.tokenTTL)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(h.jwtSecret))
}

func authedUser(c *gin.Context) domain.User {
	v, _ := c.Get(ctxUserKey)
	user, _ := v.(domain.User)
	return user
}

func (h *Handler) renderError(c *gin.Context, err error) {
	var vErr *domain.ValidationError
	switch {
	case errors.As(err, &vErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": vErr.Error()})
	case errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, service.ErrNotAuthenticated):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrUserAlreadyExists):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, repository.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	default:
		h.logger.WithError(err).Error("request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

type registerRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type profileRequest struct {
	Name       string `json:"name"`
	Goal       string `json:"goal"`
	SocialName string `json:"socialName"`
}

type assetRequest struct {
	Name           string `json:"name"`
	AssetClass     string `json:"assetClass"`
	Description    string `json:"description"`
	Risk           string `json:"risk"`
	ReturnRate     string `json:"returnRate"`
	InvestedAmount string `json:"investedAmount"`
	Liquidity      string `json:"liquidity"`
}

func (r assetRequest) toInput() service.AssetInput {
	return service.AssetInput{
		Name:           r.Name,
		AssetClass:     r.AssetClass,
		Description:    r.Description,
		Risk:           r.Risk,
		ReturnRate:     r.ReturnRate,
		InvestedAmount: r.InvestedAmount,
		Liquidity:      r.Liquidity,
	}
}

type UserResponse struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	CPF        string `json:"cpf,omitempty"`
	Goal       string `json:"goal,omitempty"`
	SocialName string `json:"socialName,omitempty"`
}

func userToResponse(u domain.User) UserResponse {
	return UserResponse{
		Name:       u.Name,
		Email:      u.Email,
		CPF:        u.CPF,
		Goal:       u.Goal,
		SocialName: u.SocialName,
	}
}

type AssetResponse struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	AssetClass     string `json:"assetClass"`
	Description    string `json:"description"`
	Risk           string `json:"risk"`
	ReturnRate     string `json:"returnRate"`
	InvestedAmount string `json:"investedAmount"`
	Liquidity      string `json:"liquidity"`
}

func assetToResponse(a domain.Asset) AssetResponse {
	return AssetResponse{
		ID:             a.ID,
		Name:           a.Name,
		AssetClass:     string(a.AssetClass),
		Description:    a.Description,
		Risk:           string(a.Risk),
		ReturnRate:     a.ReturnRate.String(),
		InvestedAmount: a.InvestedAmount.String(),
		Liquidity:      string(a.Liquidity),
	}
}

func assetsToResponse(assets []domain.Asset) []AssetResponse {
	resp := make([]AssetResponse, len(assets))
	for i := range assets {
		resp[i] = assetToResponse(assets[i])
	}
	return resp
}

type SummaryResponse struct {
	Greeting             string  `json:"greeting"`
	TotalInvested        string  `json:"totalInvested"`
	TotalInvestedDisplay string  `json:"totalInvestedDisplay"`
	AverageReturnPercent string  `json:"averageReturnPercent"`
	MonthlyVariationPct  string  `json:"monthlyVariationPercent"`
	GoalProgressPercent  *string `json:"goalProgressPercent,omitempty"`
}

func (h *Handler) register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.auth.Register(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		h.renderError(c, err)
		return
	}

	token, err := h.issueToken(user.Email)
	if err != nil {
		h.renderError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"token": token, "user": userToResponse(*user)})
}

func (h *Handler) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.renderError(c, err)
		return
	}

	token, err := h.issueToken(user.Email)
	if err != nil {
		h.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token, "user": userToResponse(*user)})
}

func (h *Handler) logout(c *gin.Context) {
	if err := h.auth.Logout(c.Request.Context()); err != nil {
		h.renderError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) me(c *gin.Context) {
	c.JSON(http.StatusOK, userToResponse(authedUser(c)))
}

func (h *Handler) updateProfile(c *gin.Context) {
	var req profileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.auth.UpdateProfile(c.Request.Context(), authedUser(c).Email, service.ProfileUpdate{
		Name:       req.Name,
		Goal:       req.Goal,
		SocialName: req.SocialName,
	})
	if err != nil {
		h.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, userToResponse(*user))
}

func (h *Handler) listAssets(c *gin.Context) {
	assets, err := h.assets.List(c.Request.Context(), authedUser(c).Email)
	if err != nil {
		h.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, assetsToResponse(assets))
}

func (h *Handler) createAsset(c *gin.Context) {
	var req assetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	asset, err := h.assets.Add(c.Request.Context(), authedUser(c).Email, req.toInput())
	if err != nil {
		h.renderError(c, err)
		return
	}

	c.JSON(http.StatusCreated, assetToResponse(*asset))
}

func (h *Handler) updateAsset(c *gin.Context) {
	var req assetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	asset, err := h.assets.Update(c.Request.Context(), authedUser(c).Email, c.Param("id"), req.toInput())
	if err != nil {
		h.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, assetToResponse(*asset))
}

func (h *Handler) deleteAsset(c *gin.Context) {
	if err := h.assets.Remove(c.Request.Context(), authedUser(c).Email, c.Param("id")); err != nil {
		h.renderError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) searchAssets(c *gin.Context) {
	assets, err := h.assets.Search(c.Request.Context(), authedUser(c).Email, c.Query("q"))
	if err != nil {
		h.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, assetsToResponse(assets))
}

func (h *Handler) portfolioSummary(c *gin.Context) {
	user := authedUser(c)
	assets, err := h.assets.List(c.Request.Context(), user.Email)
	if err != nil {
		h.renderError(c, err)
		return
	}

	summary := service.Summarize(assets, user.Goal)
	resp := SummaryResponse{
		Greeting:             user.Greeting(),
		TotalInvested:        summary.TotalInvested.String(),
		TotalInvestedDisplay: service.FormatBRL(summary.TotalInvested),
		AverageReturnPercent: summary.AverageReturn.String(),
		MonthlyVariationPct:  summary.MonthlyVariation.String(),
	}
	if summary.GoalProgress != nil {
		v := summary.GoalProgress.String()
		resp.GoalProgressPercent = &v
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) listNotifications(c *gin.Context) {
	c.JSON(http.StatusOK, h.notifications.List(c.Request.Context(), authedUser(c).Email))
}
