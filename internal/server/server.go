// Package server exposes the generated catalog over a read-only JSON API.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"doorforge/internal/api"
	"doorforge/internal/catalog"
	"doorforge/internal/config"
	"doorforge/internal/logging"
	"doorforge/internal/relation"
)

// Server serves a catalog loaded at startup. The catalog is immutable for
// the lifetime of the process; regeneration requires a restart.
type Server struct {
	cfg         *config.Config
	logger      *slog.Logger
	db          catalog.Database
	catalogPath string
	engine      *relation.Engine

	listener net.Listener
	server   *http.Server
}

// New builds a Server around an already-loaded catalog.
func New(cfg *config.Config, db catalog.Database, logger *slog.Logger) *Server {
	if logger == nil {
		logger = logging.NewNop()
	}
	srv := &Server{
		cfg:         cfg,
		logger:      logger.With(logging.String("component", "api-server")),
		db:          db,
		catalogPath: cfg.CatalogPath(),
		engine:      relation.NewEngine(cfg.Server.RelatedLimit),
	}

	mux := http.NewServeMux()
	token := cfg.Paths.APIToken
	mux.HandleFunc("/api/status", authMiddleware(token, srv.handleStatus))
	mux.HandleFunc("/api/products", authMiddleware(token, srv.handleProducts))
	mux.HandleFunc("/api/products/", authMiddleware(token, srv.handleProduct))

	srv.server = &http.Server{
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	return srv
}

// Start binds the configured address and serves until ctx is cancelled.
func (s *Server) Start(ctx context.Context) error {
	listener, err := net.Listen("tcp", s.cfg.Paths.APIBind)
	if err != nil {
		return fmt.Errorf("api listen: %w", err)
	}
	s.listener = listener

	go func() {
		if err := s.server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("api server error", logging.Error(err))
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = s.server.Shutdown(shutdownCtx)
	}()

	s.logger.Info("api server listening",
		logging.String("address", listener.Addr().String()),
		logging.Int("products", len(s.db.Products)))
	return nil
}

// Stop shuts the server down, waiting briefly for in-flight requests.
func (s *Server) Stop() {
	if s.server != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = s.server.Shutdown(shutdownCtx)
	}
	if s.listener != nil {
		_ = s.listener.Close()
		s.listener = nil
	}
}

// Addr returns the bound address, or empty before Start.
func (s *Server) Addr() string {
	if s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

// Handler exposes the route mux for tests.
func (s *Server) Handler() http.Handler {
	return s.server.Handler
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	s.writeJSON(w, http.StatusOK, api.StatusResponse{
		CatalogPath:   s.catalogPath,
		GeneratedAt:   s.db.Metadata.GeneratedAt,
		Version:       s.db.Metadata.Version,
		TotalProducts: s.db.Metadata.TotalProducts,
		Categories:    s.db.Metadata.Categories,
	})
}

func (s *Server) handleProducts(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	query := r.URL.Query()

	limit, err := s.parseLimit(query.Get("limit"))
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	offset, err := parseOffset(query.Get("offset"))
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	filtered := s.db.Filter(query.Get("category"), query.Get("search"))
	total := len(filtered)

	var page []catalog.Product
	if offset < total {
		end := offset + limit
		if end > total {
			end = total
		}
		page = filtered[offset:end]
	}
	if page == nil {
		page = []catalog.Product{}
	}

	s.writeJSON(w, http.StatusOK, api.ProductListResponse{
		Products: page,
		Pagination: api.Pagination{
			Total:   total,
			Limit:   limit,
			Offset:  offset,
			HasMore: offset+limit < total,
		},
		Metadata: api.ListMetadata{
			GeneratedAt:   s.db.Metadata.GeneratedAt,
			TotalProducts: s.db.Metadata.TotalProducts,
		},
	})
}

func (s *Server) handleProduct(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	rest := strings.TrimPrefix(r.URL.Path, "/api/products/")
	slug, sub, _ := strings.Cut(rest, "/")
	if slug == "" {
		s.writeError(w, http.StatusNotFound, "Product not found")
		return
	}

	product, found := s.db.ProductBySlug(slug)
	if !found {
		s.writeError(w, http.StatusNotFound, "Product not found")
		return
	}

	switch sub {
	case "":
		s.writeJSON(w, http.StatusOK, api.ProductDetailResponse{
			Product:         product,
			RelatedProducts: s.sameCategoryRelated(product),
		})
	case "related":
		s.handleRelated(w, r, product)
	default:
		s.writeError(w, http.StatusNotFound, "Product not found")
	}
}

// sameCategoryRelated mirrors the generated storefront detail route: up to
// four other products from the same category, in catalog order.
func (s *Server) sameCategoryRelated(product catalog.Product) []catalog.Product {
	related := make([]catalog.Product, 0, 4)
	for _, candidate := range s.db.Products {
		if candidate.Category != product.Category || candidate.ID == product.ID {
			continue
		}
		related = append(related, candidate)
		if len(related) == 4 {
			break
		}
	}
	return related
}

func (s *Server) handleRelated(w http.ResponseWriter, r *http.Request, product catalog.Product) {
	engine := s.engine
	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 1 {
			s.writeError(w, http.StatusBadRequest, "invalid limit parameter")
			return
		}
		engine = relation.NewEngine(limit)
	}

	anchor := ToRelation(product, s.db.Categories)
	pool := ToRelationPool(s.db.Products, s.db.Categories)
	groups := engine.Groups(anchor, pool)
	if groups == nil {
		groups = []relation.Group{}
	}

	s.writeJSON(w, http.StatusOK, api.RelatedResponse{
		Slug:   product.Slug,
		Groups: groups,
	})
}

func (s *Server) parseLimit(raw string) (int, error) {
	if raw == "" {
		return s.cfg.Server.DefaultLimit, nil
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 1 {
		return 0, errors.New("invalid limit parameter")
	}
	if limit > s.cfg.Server.MaxLimit {
		limit = s.cfg.Server.MaxLimit
	}
	return limit, nil
}

func parseOffset(raw string) (int, error) {
	if raw == "" {
		return 0, nil
	}
	offset, err := strconv.Atoi(raw)
	if err != nil || offset < 0 {
		return 0, errors.New("invalid offset parameter")
	}
	return offset, nil
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.Error("failed to encode response", logging.Error(err))
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, message string) {
	s.writeJSON(w, status, map[string]string{"error": message})
}
