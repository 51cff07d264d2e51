package server

import (
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/lunarlife/spacebio/internal/graph"
	"github.com/lunarlife/spacebio/internal/model"
	"github.com/lunarlife/spacebio/internal/search"
	"github.com/lunarlife/spacebio/internal/summary"
)

func (s *Server) SetupRouter() *gin.Engine {
	r := gin.Default()

	r.GET("/publications", s.ListPublications)
	r.POST("/search", s.Search)
	r.POST("/summarize", s.Summarize)
	r.POST("/chat", s.Chat)
	r.GET("/chat/:session", s.ChatHistory)
	r.DELETE("/chat/:session", s.EndSession)
	r.POST("/corpus/reload", s.ReloadCorpus)
	r.GET("/graph", s.BuildGraph)
	r.POST("/graph/export", s.ExportGraph)

	return r
}

func (s *Server) ListPublications(c *gin.Context) {
	pubs, _ := s.snapshot()

	limit := len(pubs)
	if v := c.Query("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid limit"})
			return
		}
		if n < limit {
			limit = n
		}
	}

	c.JSON(http.StatusOK, gin.H{"publications": pubs[:limit], "total": len(pubs)})
}

type SearchRequest struct {
	Query   string         `json:"query"`
	Filters search.Filters `json:"filters"`
	Limit   int            `json:"limit"`
}

func (s *Server) Search(c *gin.Context) {
	var req SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	_, engine := s.snapshot()
	results := engine.Search(req.Query, req.Filters)
	if req.Limit > 0 && len(results) > req.Limit {
		results = results[:req.Limit]
	}

	c.JSON(http.StatusOK, gin.H{"results": results})
}

type SummarizeRequest struct {
	Title           string `json:"title" binding:"required"`
	Question        string `json:"question"`
	IncludeExtended bool   `json:"include_extended"`
	Backend         string `json:"backend"`
}

// Summarize runs one generation call for a publication. Backend
// failures come back as an error-populated result with HTTP 200: the
// failure belongs to the result, not the request flow.
func (s *Server) Summarize(c *gin.Context) {
	var req SummarizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	pub, ok := s.findPublication(req.Title)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Unknown publication"})
		return
	}

	content := summary.AssembleContext(pub, s.assembleOptions(req.Question, req.IncludeExtended))
	result := s.gateway.Summarize(c.Request.Context(), pub.Title, content, req.Backend)

	c.JSON(http.StatusOK, gin.H{"result": result})
}

type ChatRequest struct {
	SessionID       string `json:"session_id"`
	Title           string `json:"title" binding:"required"`
	Question        string `json:"question" binding:"required"`
	IncludeExtended bool   `json:"include_extended"`
	Backend         string `json:"backend"`
}

// Chat answers a question about a publication and appends the turn to
// the session's log. An empty session_id starts a new session.
func (s *Server) Chat(c *gin.Context) {
	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	pub, ok := s.findPublication(req.Title)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Unknown publication"})
		return
	}

	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = uuid.New().String()
	}

	content := summary.AssembleContext(pub, s.assembleOptions(req.Question, req.IncludeExtended))
	result := s.gateway.Summarize(c.Request.Context(), pub.Title, content, req.Backend)

	turn := model.ChatTurn{
		Question: req.Question,
		Answer:   result.DisplayText(),
		Result:   &result,
		AskedAt:  now(),
	}
	s.chats.Append(sessionID, pub.Title, turn)

	c.JSON(http.StatusOK, gin.H{"session_id": sessionID, "turn": turn})
}

func (s *Server) ChatHistory(c *gin.Context) {
	title := c.Query("title")
	if title == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing title"})
		return
	}

	turns := s.chats.Turns(c.Param("session"), title)
	c.JSON(http.StatusOK, gin.H{"turns": turns})
}

func (s *Server) EndSession(c *gin.Context) {
	s.chats.Clear(c.Param("session"))
	c.JSON(http.StatusOK, gin.H{"status": "cleared"})
}

func (s *Server) ReloadCorpus(c *gin.Context) {
	if err := s.reload(); err != nil {
		log.Printf("Failed to reload corpus: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reload corpus"})
		return
	}

	pubs, _ := s.snapshot()
	c.JSON(http.StatusOK, gin.H{"status": "reloaded", "total": len(pubs)})
}

// BuildGraph returns the knowledge graph over the publications
// matching an optional query, bounded by limit.
func (s *Server) BuildGraph(c *gin.Context) {
	g, ok := s.graphForRequest(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"graph": g})
}

func (s *Server) ExportGraph(c *gin.Context) {
	if s.graphs == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "No graph store configured"})
		return
	}

	g, ok := s.graphForRequest(c)
	if !ok {
		return
	}

	if err := s.graphs.Export(c.Request.Context(), g); err != nil {
		log.Printf("Failed to export graph: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to export graph"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "exported", "nodes": len(g.Nodes), "edges": len(g.Edges)})
}

func (s *Server) graphForRequest(c *gin.Context) (*graph.Graph, bool) {
	pubs, engine := s.snapshot()

	if query := strings.TrimSpace(c.Query("q")); query != "" {
		results := engine.Search(query, search.Filters{})
		pubs = make([]model.Publication, len(results))
		for i, r := range results {
			pubs[i] = r.Publication
		}
	}

	if v := c.Query("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid limit"})
			return nil, false
		}
		if n < len(pubs) {
			pubs = pubs[:n]
		}
	}

	return graph.Build(pubs, s.cfg.Graph.MaxKeywords), true
}

func (s *Server) findPublication(title string) (model.Publication, bool) {
	pubs, _ := s.snapshot()
	for _, pub := range pubs {
		if strings.EqualFold(pub.Title, title) {
			return pub, true
		}
	}
	return model.Publication{}, false
}
