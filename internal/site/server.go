package site

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os/exec"
	"runtime"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/mrxiaozhuox/karaty/internal/config"
	"github.com/mrxiaozhuox/karaty/internal/source"
)

// Server serves the rendered site from memory and exposes a small API for
// listing pages and triggering a reload of the content source. Connected
// websocket clients are notified when a reload completes.
type Server struct {
	cfg     *config.Config
	fetcher *source.Fetcher

	mu       sync.RWMutex
	rendered map[string][]byte
	names    []string

	wsMu    sync.Mutex
	clients map[*websocket.Conn]bool

	notFound []byte
}

// NewServer creates a Server. Call Reload before Start to populate pages.
func NewServer(cfg *config.Config, fetcher *source.Fetcher) *Server {
	s := &Server{
		cfg:      cfg,
		fetcher:  fetcher,
		rendered: make(map[string][]byte),
		clients:  make(map[*websocket.Conn]bool),
	}

	// Pre-render the not-found page; a suffixless name resolves to the
	// not-found outcome.
	if html, err := RenderPage(cfg, "", ""); err == nil {
		s.notFound = html
	}

	return s
}

// Reload runs a full load cycle against the content source and swaps in the
// re-rendered pages. Returns the number of pages loaded.
func (s *Server) Reload(ctx context.Context) (int, error) {
	pages := s.fetcher.LoadPages(ctx, s.cfg, nil)

	rendered := make(map[string][]byte, len(pages))
	var names []string
	for name, content := range pages {
		html, err := RenderPage(s.cfg, name, content)
		if err != nil {
			return 0, fmt.Errorf("rendering %s: %w", name, err)
		}
		rendered[RouteName(name)] = html
		names = append(names, name)
	}
	sort.Strings(names)

	if _, ok := rendered["index"]; !ok {
		routes := make([]string, 0, len(rendered))
		for route := range rendered {
			routes = append(routes, route)
		}
		index, err := renderIndex(s.cfg, routes, "")
		if err != nil {
			return 0, err
		}
		rendered["index"] = index
	}

	s.mu.Lock()
	s.rendered = rendered
	s.names = names
	s.mu.Unlock()

	return len(pages), nil
}

// Router builds the chi router for the site and its API.
func (s *Server) Router() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/api/pages", s.handlePages)
	r.Post("/api/reload", s.handleReload)
	r.Get("/ws", s.handleWebSocket)

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		s.servePage(w, "index")
	})
	r.Get("/{page}", func(w http.ResponseWriter, r *http.Request) {
		page := strings.TrimSuffix(chi.URLParam(r, "page"), ".html")
		s.servePage(w, page)
	})

	return r
}

// Start populates the site and serves it on the given port.
func (s *Server) Start(ctx context.Context, port int, open bool) error {
	count, err := s.Reload(ctx)
	if err != nil {
		return fmt.Errorf("loading site: %w", err)
	}

	url := fmt.Sprintf("http://localhost:%d", port)
	fmt.Printf("Serving %s at %s (%d pages)\n", s.cfg.Site.Name, url, count)
	fmt.Println("Press Ctrl+C to stop.")

	if open {
		go openBrowser(url)
	}

	return http.ListenAndServe(fmt.Sprintf(":%d", port), s.Router())
}

func (s *Server) servePage(w http.ResponseWriter, route string) {
	s.mu.RLock()
	html, ok := s.rendered[route]
	s.mu.RUnlock()

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write(s.notFound)
		return
	}
	_, _ = w.Write(html)
}

// pagesResponse is the JSON body of GET /api/pages.
type pagesResponse struct {
	Pages []pageInfo `json:"pages"`
}

type pageInfo struct {
	Name  string `json:"name"`
	Route string `json:"route"`
}

func (s *Server) handlePages(w http.ResponseWriter, r *http.Request) {
	s.mu.RLock()
	resp := pagesResponse{Pages: []pageInfo{}}
	for _, name := range s.names {
		resp.Pages = append(resp.Pages, pageInfo{Name: name, Route: RouteName(name)})
	}
	s.mu.RUnlock()

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resp)
}

// reloadResponse is the JSON body of POST /api/reload.
type reloadResponse struct {
	JobID string `json:"job_id"`
}

func (s *Server) handleReload(w http.ResponseWriter, r *http.Request) {
	id := uuid.NewString()

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()

		count, err := s.Reload(ctx)
		if err != nil {
			log.Printf("reload %s: %v", id, err)
			return
		}
		s.notifyReload(id, count)
	}()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusAccepted)
	_ = json.NewEncoder(w).Encode(reloadResponse{JobID: id})
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// reloadNotice is pushed to websocket clients when a reload completes.
type reloadNotice struct {
	Type  string `json:"type"`
	JobID string `json:"job_id"`
	Pages int    `json:"pages"`
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("site: websocket upgrade: %v", err)
		return
	}

	s.wsMu.Lock()
	s.clients[conn] = true
	s.wsMu.Unlock()

	defer func() {
		s.wsMu.Lock()
		delete(s.clients, conn)
		s.wsMu.Unlock()
		conn.Close()
	}()

	// Drain the connection until the client goes away.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("site: websocket read: %v", err)
			}
			return
		}
	}
}

func (s *Server) notifyReload(id string, pages int) {
	s.wsMu.Lock()
	defer s.wsMu.Unlock()

	for conn := range s.clients {
		if err := conn.WriteJSON(reloadNotice{Type: "reload", JobID: id, Pages: pages}); err != nil {
			conn.Close()
			delete(s.clients, conn)
		}
	}
}

// openBrowser opens the given URL in the default browser.
func openBrowser(url string) {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "windows":
		cmd = exec.Command("cmd", "/c", "start", url)
	case "darwin":
		cmd = exec.Command("open", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}
	_ = cmd.Start()
}
