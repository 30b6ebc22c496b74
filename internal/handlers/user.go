package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ideahub-dev/ideahub/internal/store"
	"github.com/ideahub-dev/ideahub/internal/types"
)

type SignupRequest struct {
	ID       string `json:"id" binding:"required"`
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type UserHandler struct {
	users *store.UserStore
}

func NewUserHandler(users *store.UserStore) *UserHandler {
	return &UserHandler{users: users}
}

// GET /user/:external_id
func (h *UserHandler) GetUser(ctx *gin.Context) {
	user, err := h.users.GetByExternalID(ctx.Param("external_id"))

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, types.NewUserResponse(user))
}

// GET /user/username/:username
func (h *UserHandler) GetUserByUsername(ctx *gin.Context) {
	user, err := h.users.GetByUsername(ctx.Param("username"))

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, types.NewUserResponse(user))
}

// POST /signup
func (h *UserHandler) Signup(ctx *gin.Context) {
	var body SignupRequest

	if err := ctx.BindJSON(&body); err != nil {
		badRequest(ctx, "invalid request")
		return
	}

	user, err := h.users.Create(body.ID, body.Username, body.Password)

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, types.NewUserResponse(user))
}

// POST /login
func (h *UserHandler) Login(ctx *gin.Context) {
	var body LoginRequest

	if err := ctx.BindJSON(&body); err != nil {
		badRequest(ctx, "invalid request")
		return
	}

	user, err := h.users.Authenticate(body.Username, body.Password)

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, types.NewUserResponse(user))
}
