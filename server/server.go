// Package server exposes account maintenance over HTTP.
package server

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/lixenwraith/reportdeck/admin"
	"github.com/lixenwraith/reportdeck/avatar"
	"github.com/lixenwraith/reportdeck/status"
	"github.com/lixenwraith/reportdeck/store"
)

// Store is the persistence used by the handlers
type Store interface {
	admin.AccountStore
	avatar.Store
	Accounts(ctx context.Context) ([]store.Account, error)
	Avatar(ctx context.Context, id string) (store.Avatar, error)
}

type Server struct {
	store    Store
	log      *slog.Logger
	requests *status.Counters // Keyed by "METHOD route status"
}

func New(st Store, log *slog.Logger) *Server {
	if log == nil {
		log = slog.Default()
	}
	return &Server{store: st, log: log, requests: status.NewCounters()}
}

type accountResponse struct {
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	AvatarID  string    `json:"avatar_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type roleRequest struct {
	Role   string `json:"role" binding:"required"`
	DryRun bool   `json:"dry_run"`
}

type roleResponse struct {
	Email    string `json:"email"`
	Previous string `json:"previous"`
	Role     string `json:"role"`
	Changed  bool   `json:"changed"`
}

// Routes builds the gin handler
func (s *Server) Routes() http.Handler {
	r := gin.New()
	r.Use(gin.Recovery(), s.requestLog)

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/api/accounts", s.listAccounts)
	r.PUT("/api/accounts/:email/role", s.setRole)
	r.POST("/api/accounts/:email/avatar", s.uploadAvatar)
	r.GET("/api/avatars/:id", s.getAvatar)
	r.GET("/api/stats", s.stats)
	return r
}

func (s *Server) requestLog(c *gin.Context) {
	start := time.Now()
	c.Next()
	route := c.FullPath()
	if route == "" {
		route = "unmatched"
	}
	s.requests.Add(c.Request.Method+" "+route+" "+strconv.Itoa(c.Writer.Status()), 1)
	s.log.Debug("request", "method", c.Request.Method, "path", c.FullPath(),
		"status", c.Writer.Status(), "duration", time.Since(start))
}

func (s *Server) stats(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"requests": s.requests.Snapshot()})
}

func (s *Server) listAccounts(c *gin.Context) {
	accts, err := s.store.Accounts(c.Request.Context())
	if err != nil {
		s.fail(c, err)
		return
	}
	out := make([]accountResponse, 0, len(accts))
	for _, a := range accts {
		out = append(out, accountResponse{
			Email: a.Email, Name: a.Name, Role: a.Role,
			AvatarID: a.AvatarID, CreatedAt: a.CreatedAt,
		})
	}
	c.JSON(http.StatusOK, gin.H{"accounts": out})
}

func (s *Server) setRole(c *gin.Context) {
	var req roleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	res, err := admin.RepairRole(c.Request.Context(), s.log, s.store, c.Param("email"), req.Role, req.DryRun)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, roleResponse{
		Email: res.Email, Previous: res.Previous, Role: res.Current, Changed: res.Changed,
	})
}

func (s *Server) uploadAvatar(c *gin.Context) {
	fh, err := c.FormFile("file")
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "missing file"})
		return
	}
	if fh.Size > avatar.MaxSize {
		s.fail(c, avatar.ErrTooLarge)
		return
	}
	f, err := fh.Open()
	if err != nil {
		s.fail(c, err)
		return
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, avatar.MaxSize+1))
	if err != nil {
		s.fail(c, err)
		return
	}
	id, err := avatar.Upload(c.Request.Context(), s.store, c.Param("email"), data)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

func (s *Server) getAvatar(c *gin.Context) {
	av, err := s.store.Avatar(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.fail(c, err)
		return
	}
	c.Header("Cache-Control", "private, max-age=3600")
	c.Data(http.StatusOK, av.ContentType, av.Data)
}

// fail maps domain errors onto status codes
func (s *Server) fail(c *gin.Context, err error) {
	code := http.StatusInternalServerError
	switch {
	case errors.Is(err, store.ErrNotFound):
		code = http.StatusNotFound
	case errors.Is(err, admin.ErrUnknownRole),
		errors.Is(err, avatar.ErrEmpty),
		errors.Is(err, avatar.ErrUnsupportedType):
		code = http.StatusBadRequest
	case errors.Is(err, avatar.ErrTooLarge):
		code = http.StatusRequestEntityTooLarge
	}
	if code == http.StatusInternalServerError {
		s.log.Error("request failed", "path", c.FullPath(), "error", err)
	}
	c.AbortWithStatusJSON(code, gin.H{"error": err.Error()})
}
