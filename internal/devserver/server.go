// Package devserver serves the portal REST API from in-memory fixtures so
// the client can be developed and tested without the real backend.
package devserver

import (
	"context"
	"errors"
	"math"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/dr-rompecabezas/langportal/internal/api"
)

const (
	// WordsPageSize is the fixed server-side page size for word listings.
	WordsPageSize = 10
	// GroupsPageSize is the fixed server-side page size for group listings.
	GroupsPageSize = 10

	defaultItemsPerPage = 10
	maxItemsPerPage     = 100
)

// Server is a gin-backed fixture backend.
type Server struct {
	fx     *Fixtures
	log    *zap.Logger
	engine *gin.Engine
}

// New builds a Server over fx.
func New(fx *Fixtures, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	gin.SetMode(gin.ReleaseMode)

	s := &Server{fx: fx, log: log, engine: gin.New()}
	s.engine.Use(gin.Recovery(), s.accessLog())
	s.routes()
	return s
}

// Handler exposes the gin engine.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves on addr until ctx is canceled.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{Addr: addr, Handler: s.engine}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("dev server listening", zap.String("addr", addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}

func (s *Server) routes() {
	v1 := s.engine.Group("/api/v1")
	{
		v1.GET("/dashboard/recent-session", s.recentSession)
		v1.GET("/dashboard/stats", s.stats)

		v1.GET("/words", s.listWords)
		v1.GET("/words/:id", s.getWord)

		v1.GET("/groups", s.listGroups)
		v1.GET("/groups/:id", s.getGroup)
		v1.GET("/groups/:id/words", s.listGroupWords)

		v1.GET("/study-sessions", s.listSessions)
		v1.GET("/study-sessions/:id", s.getSession)

		v1.GET("/study-activities", s.listActivities)
		v1.GET("/study-activities/:id", s.getActivity)
	}
}

func (s *Server) accessLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.log.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.String("request_id", c.GetHeader("X-Request-ID")),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
		)
	}
}

func (s *Server) recentSession(c *gin.Context) {
	recent := s.fx.recentSession()
	if recent == nil {
		c.Data(http.StatusOK, "application/json", []byte("null"))
		return
	}
	c.JSON(http.StatusOK, recent)
}

func (s *Server) stats(c *gin.Context) {
	c.JSON(http.StatusOK, s.fx.stats())
}

func (s *Server) listWords(c *gin.Context) {
	s.pageOfWords(c, s.fx.Words)
}

func (s *Server) getWord(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	for _, w := range s.fx.Words {
		if w.ID == id {
			c.JSON(http.StatusOK, w)
			return
		}
	}
	notFound(c, "Word not found")
}

func (s *Server) listGroups(c *gin.Context) {
	pageNum, ok := pageParam(c)
	if !ok {
		return
	}
	key := c.DefaultQuery("sort_by", "name")
	dir, ok := directionParam(c, "order")
	if !ok {
		return
	}

	less, known := groupLess[key]
	if !known {
		badRequest(c, "unknown sort_by "+strconv.Quote(key))
		return
	}

	groups := append([]api.Group(nil), s.fx.Groups...)
	sortBy(groups, less, dir)
	c.JSON(http.StatusOK, paginate(groups, pageNum, GroupsPageSize))
}

func (s *Server) getGroup(c *gin.Context) {
	g, ok := s.group(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, g)
}

func (s *Server) listGroupWords(c *gin.Context) {
	g, ok := s.group(c)
	if !ok {
		return
	}
	ids := make(map[int]bool)
	for _, id := range s.fx.Members[g.ID] {
		ids[id] = true
	}
	var words []api.Word
	for _, w := range s.fx.Words {
		if ids[w.ID] {
			words = append(words, w)
		}
	}
	s.pageOfWords(c, words)
}

func (s *Server) listSessions(c *gin.Context) {
	pageNum, ok := pageParam(c)
	if !ok {
		return
	}
	perPage, err := strconv.Atoi(c.DefaultQuery("items_per_page", strconv.Itoa(defaultItemsPerPage)))
	if err != nil || perPage < 1 || perPage > maxItemsPerPage {
		badRequest(c, "items_per_page must be between 1 and 100")
		return
	}

	sessions := make([]api.StudySession, 0, len(s.fx.Sessions))
	for _, rec := range s.fx.Sessions {
		sessions = append(sessions, rec.StudySession)
	}
	// Newest first.
	sort.SliceStable(sessions, func(i, j int) bool {
		return sessions[i].StartTime.After(sessions[j].StartTime)
	})
	c.JSON(http.StatusOK, paginate(sessions, pageNum, perPage))
}

func (s *Server) getSession(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	for _, rec := range s.fx.Sessions {
		if rec.ID == id {
			c.JSON(http.StatusOK, rec.StudySession)
			return
		}
	}
	notFound(c, "Study session not found")
}

func (s *Server) listActivities(c *gin.Context) {
	c.JSON(http.StatusOK, s.fx.Activities)
}

func (s *Server) getActivity(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	for _, a := range s.fx.Activities {
		if a.ID == id {
			c.JSON(http.StatusOK, a)
			return
		}
	}
	notFound(c, "Study activity not found")
}

func (s *Server) group(c *gin.Context) (api.Group, bool) {
	id, ok := pathID(c)
	if !ok {
		return api.Group{}, false
	}
	for _, g := range s.fx.Groups {
		if g.ID == id {
			return g, true
		}
	}
	notFound(c, "Group not found")
	return api.Group{}, false
}

func (s *Server) pageOfWords(c *gin.Context, words []api.Word) {
	pageNum, ok := pageParam(c)
	if !ok {
		return
	}
	key := c.DefaultQuery("sort_key", "kanji")
	dir, ok := directionParam(c, "sort_direction")
	if !ok {
		return
	}

	less, known := wordLess[key]
	if !known {
		badRequest(c, "unknown sort_key "+strconv.Quote(key))
		return
	}

	sorted := append([]api.Word(nil), words...)
	sortBy(sorted, less, dir)
	c.JSON(http.StatusOK, paginate(sorted, pageNum, WordsPageSize))
}

var wordLess = map[string]func(a, b api.Word) bool{
	"kanji":         func(a, b api.Word) bool { return a.Kanji < b.Kanji },
	"romaji":        func(a, b api.Word) bool { return a.Romaji < b.Romaji },
	"english":       func(a, b api.Word) bool { return strings.ToLower(a.English) < strings.ToLower(b.English) },
	"correct_count": func(a, b api.Word) bool { return a.CorrectCount < b.CorrectCount },
	"wrong_count":   func(a, b api.Word) bool { return a.WrongCount < b.WrongCount },
}

var groupLess = map[string]func(a, b api.Group) bool{
	"name":        func(a, b api.Group) bool { return a.Name < b.Name },
	"words_count": func(a, b api.Group) bool { return a.WordsCount < b.WordsCount },
}

func sortBy[T any](items []T, less func(a, b T) bool, dir api.SortDirection) {
	sort.SliceStable(items, func(i, j int) bool {
		if dir == api.SortDesc {
			return less(items[j], items[i])
		}
		return less(items[i], items[j])
	})
}

// paginate slices items into 1-based pages. Pages past the end are empty.
func paginate[T any](items []T, pageNum, size int) api.Page[T] {
	total := int(math.Ceil(float64(len(items)) / float64(size)))
	start := (pageNum - 1) * size
	if start >= len(items) {
		return api.Page[T]{Items: []T{}, TotalPages: total}
	}
	end := min(start+size, len(items))
	return api.Page[T]{Items: items[start:end], TotalPages: total}
}

func pageParam(c *gin.Context) (int, bool) {
	n, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || n < 1 {
		badRequest(c, "page must be a positive integer")
		return 0, false
	}
	return n, true
}

func directionParam(c *gin.Context, name string) (api.SortDirection, bool) {
	switch d := api.SortDirection(c.DefaultQuery(name, string(api.SortAsc))); d {
	case api.SortAsc, api.SortDesc:
		return d, true
	default:
		badRequest(c, name+" must be asc or desc")
		return "", false
	}
}

func pathID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		badRequest(c, "id must be an integer")
		return 0, false
	}
	return id, true
}

func notFound(c *gin.Context, detail string) {
	c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"detail": detail})
}

func badRequest(c *gin.Context, detail string) {
	c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"detail": detail})
}
