package web

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jywlabs/promptbuilder/internal/session"
	tmpl "github.com/jywlabs/promptbuilder/internal/template"
	"go.uber.org/zap"
)

//go:embed page.html
var pageFS embed.FS

// rootTemplate is the page entry point, the equivalent of the host element
// the page mounts into.
const rootTemplate = "root"

// FallbackHTML is served when the page could not be prepared at startup.
const FallbackHTML = `<!doctype html><html><body><p>The prompt builder failed to load. Please reload the page.</p></body></html>`

// Options configures a Server.
type Options struct {
	// DownloadName is the file name offered by /download.
	DownloadName string
	// Pages overrides the embedded page templates.
	Pages fs.FS
	// SessionIdle and MaxSessions bound the in-memory sessions; zero
	// takes the session package defaults.
	SessionIdle time.Duration
	MaxSessions int
}

// Server is the local web surface: one in-memory session per browser.
type Server struct {
	sessions     *session.Registry
	log          *zap.Logger
	page         *template.Template
	downloadName string
	startedAt    time.Time
}

// NewServer prepares the page once. A page that cannot be prepared is
// logged and the server falls back to a static message; it is not retried.
func NewServer(log *zap.Logger, opts Options) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	if opts.DownloadName == "" {
		opts.DownloadName = tmpl.DownloadFile
	}
	if opts.Pages == nil {
		opts.Pages = pageFS
	}

	s := &Server{
		sessions:     session.NewRegistry(opts.SessionIdle, opts.MaxSessions),
		log:          log,
		downloadName: opts.DownloadName,
		startedAt:    time.Now().UTC(),
	}

	page, err := loadPage(opts.Pages)
	if err != nil {
		log.Error("failed to prepare page", zap.Error(err))
	} else {
		s.page = page
	}
	return s
}

func loadPage(pages fs.FS) (*template.Template, error) {
	t, err := template.ParseFS(pages, "*.html")
	if err != nil {
		return nil, fmt.Errorf("parse page: %w", err)
	}
	root := t.Lookup(rootTemplate)
	if root == nil {
		return nil, fmt.Errorf("page template %q not found", rootTemplate)
	}
	return root, nil
}

// Ready reports whether the page was prepared.
func (s *Server) Ready() bool {
	return s.page != nil
}

// Handler builds the gin engine with every route registered.
func (s *Server) Handler() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), RequestLogger(s.log))

	// Routes that show or change a session open one; read-only routes only
	// look up an existing one and never create it.
	page := r.Group("/", s.openSession())
	{
		page.GET("/", s.handleIndex)
		page.POST("/fields", s.handleFields)
		page.POST("/view/:name", s.handleView)
		page.POST("/example", s.action((*session.Session).LoadExample))
		page.POST("/clear", s.action((*session.Session).ClearAll))
		page.POST("/menu", s.handleMenu)
		page.POST("/menu/example", s.action((*session.Session).MenuLoadExample))
		page.POST("/menu/clear", s.action((*session.Session).MenuClearAll))
	}

	read := r.Group("/", s.lookupSession())
	{
		read.GET("/download", s.handleDownload)
		read.GET("/api/session", s.handleSession)
	}

	r.GET("/template", s.handleTemplate)
	r.GET("/api/status", s.handleStatus)
	return r
}
