// Package httpadapter exposes levels and play sessions as a JSON API.
package httpadapter

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/nickmafra/sym-balls/internal/domain"
	"github.com/nickmafra/sym-balls/internal/usecase"
)

type Handler struct {
	UC     *usecase.Service
	logger *slog.Logger
}

func New(uc *usecase.Service, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{UC: uc, logger: logger}
}

func (h *Handler) fail(c *gin.Context, handler string, err error) {
	status, code := classify(err)
	logger := h.logger.With("request_id", c.GetString(requestIDKey), "handler", handler)
	if status >= http.StatusInternalServerError {
		logger.Error("request failed", "error", err)
	} else {
		logger.Debug("request rejected", "status", status, "error", err)
	}
	c.JSON(status, ErrorResponse{Error: err.Error(), Code: code})
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: msg, Code: "INVALID_REQUEST"})
}

func moveIndex(c *gin.Context) (int, bool) {
	i, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		badRequest(c, "move index must be an integer")
		return 0, false
	}
	return i, true
}

// ---- Levels ----

func (h *Handler) ListLevels(c *gin.Context) {
	metas, err := h.UC.ListLevels(c.Request.Context())
	if err != nil {
		h.fail(c, "ListLevels", err)
		return
	}
	if metas == nil {
		metas = []domain.LevelMeta{}
	}
	c.JSON(http.StatusOK, gin.H{"levels": metas})
}

func (h *Handler) GetLevel(c *gin.Context) {
	l, err := h.UC.LoadLevel(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, "GetLevel", err)
		return
	}
	c.JSON(http.StatusOK, l)
}

func (h *Handler) SaveLevel(c *gin.Context) {
	var l domain.Level
	if err := c.ShouldBindJSON(&l); err != nil {
		badRequest(c, "invalid JSON: "+err.Error())
		return
	}
	if l.CreatedAt == 0 {
		l.CreatedAt = time.Now().UnixNano()
	}
	if err := h.UC.SaveLevel(c.Request.Context(), &l); err != nil {
		h.fail(c, "SaveLevel", err)
		return
	}
	c.JSON(http.StatusCreated, l.Meta())
}

type scrambleReq struct {
	BaseID     string `json:"baseId" binding:"required"`
	Seed       int64  `json:"seed,omitempty"`
	Difficulty string `json:"difficulty,omitempty"`
	Save       bool   `json:"save,omitempty"`
}

type scrambleResp struct {
	Level      *domain.Level `json:"level"`
	Seed       int64         `json:"seed"`
	DurationMs int64         `json:"durationMs"`
	Nodes      int           `json:"nodes"`
}

func (h *Handler) Scramble(c *gin.Context) {
	var req scrambleReq
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid JSON: "+err.Error())
		return
	}
	seed := req.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	l, st, err := h.UC.Scramble(c.Request.Context(), req.BaseID, seed, domain.ParseDifficulty(req.Difficulty), req.Save)
	if err != nil {
		h.fail(c, "Scramble", err)
		return
	}
	status := http.StatusOK
	if req.Save {
		status = http.StatusCreated
	}
	c.JSON(status, scrambleResp{Level: l, Seed: seed, DurationMs: st.Duration.Milliseconds(), Nodes: st.Nodes})
}

// ---- Sessions ----

type startReq struct {
	LevelID string `json:"levelId" binding:"required"`
}

func (h *Handler) StartSession(c *gin.Context) {
	var req startReq
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid JSON: "+err.Error())
		return
	}
	v, err := h.UC.StartSession(c.Request.Context(), req.LevelID)
	if err != nil {
		h.fail(c, "StartSession", err)
		return
	}
	c.JSON(http.StatusCreated, v)
}

func (h *Handler) GetSession(c *gin.Context) {
	v, err := h.UC.Session(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, "GetSession", err)
		return
	}
	c.JSON(http.StatusOK, v)
}

func (h *Handler) EndSession(c *gin.Context) {
	if err := h.UC.EndSession(c.Request.Context(), c.Param("id")); err != nil {
		h.fail(c, "EndSession", err)
		return
	}
	c.Status(http.StatusNoContent)
}

type applyReq struct {
	Move *int `json:"move" binding:"required"`
}

func (h *Handler) ApplyMove(c *gin.Context) {
	var req applyReq
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid JSON: "+err.Error())
		return
	}
	v, err := h.UC.ApplyMove(c.Request.Context(), c.Param("id"), *req.Move)
	if err != nil {
		h.fail(c, "ApplyMove", err)
		return
	}
	c.JSON(http.StatusOK, v)
}

func (h *Handler) ResetSession(c *gin.Context) {
	v, err := h.UC.ResetSession(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, "ResetSession", err)
		return
	}
	c.JSON(http.StatusOK, v)
}

type hintResp struct {
	Found bool        `json:"found"`
	Hint  domain.Hint `json:"hint,omitempty"`
}

func (h *Handler) Hint(c *gin.Context) {
	hint, ok, err := h.UC.Hint(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, "Hint", err)
		return
	}
	c.JSON(http.StatusOK, hintResp{Found: ok, Hint: hint})
}

type solveResp struct {
	Moves      []int `json:"moves"`
	DurationMs int64 `json:"durationMs"`
	Nodes      int   `json:"nodes"`
}

func (h *Handler) Solve(c *gin.Context) {
	path, st, err := h.UC.Solve(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, "Solve", err)
		return
	}
	if path == nil {
		path = []int{}
	}
	c.JSON(http.StatusOK, solveResp{Moves: path, DurationMs: st.Duration.Milliseconds(), Nodes: st.Nodes})
}

// ---- Authoring ----

type authorReq struct {
	Name     string `json:"name,omitempty"`
	Notation string `json:"notation"`
}

func (h *Handler) AuthorMove(c *gin.Context) {
	var req authorReq
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid JSON: "+err.Error())
		return
	}
	v, err := h.UC.AuthorMove(c.Request.Context(), c.Param("id"), req.Name, req.Notation)
	if err != nil {
		h.fail(c, "AuthorMove", err)
		return
	}
	c.JSON(http.StatusCreated, v)
}

func (h *Handler) RemoveMove(c *gin.Context) {
	h.indexed(c, "RemoveMove", h.UC.RemoveMove)
}

func (h *Handler) InvertMove(c *gin.Context) {
	h.indexed(c, "InvertMove", h.UC.InvertMove)
}

func (h *Handler) DuplicateMove(c *gin.Context) {
	h.indexed(c, "DuplicateMove", h.UC.DuplicateMove)
}

type indexedOp func(ctx context.Context, id string, index int) (usecase.SessionView, error)

func (h *Handler) indexed(c *gin.Context, name string, op indexedOp) {
	i, ok := moveIndex(c)
	if !ok {
		return
	}
	v, err := op(c.Request.Context(), c.Param("id"), i)
	if err != nil {
		h.fail(c, name, err)
		return
	}
	c.JSON(http.StatusOK, v)
}
