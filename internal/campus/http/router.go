package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/aussiebroadwan/campus/internal/campus/blob"
	"github.com/aussiebroadwan/campus/internal/campus/service"
	"github.com/aussiebroadwan/campus/internal/campus/session"
	"github.com/aussiebroadwan/campus/internal/campus/store"
	"github.com/aussiebroadwan/campus/pkg/httpx"
	"github.com/aussiebroadwan/campus/pkg/slogx"

	_ "github.com/aussiebroadwan/campus/api/campus" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Pages are the browser locations the auth and profile flows redirect to.
type Pages struct {
	Home    string
	Profile string
	Login   string
}

var DefaultPages = Pages{
	Home:    "/index.html",
	Profile: "/profile.html",
	Login:   "/login.html",
}

// Config holds the HTTP surface settings.
type Config struct {
	BuildVersion   string
	Pages          Pages
	UploadPrefix   string
	MaxUploadBytes int64
	StaticDir      string // empty disables static file serving
	CORSOrigins    []string
}

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	cfg       Config
	startTime time.Time
	logger    *slog.Logger

	store    store.Store
	sessions *session.Manager
	blobs    blob.Store

	AuthService      *service.AuthService
	ProfileService   *service.ProfileService
	DirectoryService *service.DirectoryService
	MessagingService *service.MessagingService
}

func NewRouter(
	cfg Config,
	st store.Store,
	sessions *session.Manager,
	blobs blob.Store,
	logger *slog.Logger,
) *Router {
	if cfg.Pages == (Pages{}) {
		cfg.Pages = DefaultPages
	}
	if cfg.UploadPrefix == "" {
		cfg.UploadPrefix = service.DefaultUploadPrefix
	}
	if cfg.MaxUploadBytes <= 0 {
		cfg.MaxUploadBytes = DefaultMaxUploadBytes
	}

	r := &Router{
		Mux:       http.NewServeMux(),
		cfg:       cfg,
		startTime: time.Now(),
		logger:    logger,
		store:     st,
		sessions:  sessions,
		blobs:     blobs,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
		httpx.Recover,
		httpx.CORS(cfg.CORSOrigins),
		sessions.Middleware,
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerProfile()
	r.registerDirectory()
	r.registerMessages()
	r.registerUploads()
	r.registerSystem()
	r.registerStatic()

	r.Mux.Handle("GET /swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Campus Connect API
//	@version		0.1.0
//	@description	Profiles, a year-based directory and broadcast messaging for students
//	@description	holding an institutional email address.
//	@description
//	@description				Browser flows (signup, login, profile creation) answer with 303 redirects.
//
//	@contact.name				AussieBroadWAN Team
//	@contact.url				https://github.com/aussiebroadwan/campus
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	SessionCookie
//	@in							cookie
//	@name						campus_session
//	@description				Opaque session token set by /signin and /login.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerAuth() {
	h := &AuthHandler{
		AuthService: r.AuthService,
		Sessions:    r.sessions,
		HomePage:    r.cfg.Pages.Home,
		ProfilePage: r.cfg.Pages.Profile,
	}

	r.Mux.HandleFunc("POST /signin", h.HandleSignup)
	r.Mux.HandleFunc("POST /login", h.HandleLogin)

	// Logout is idempotent so it needs no session
	r.Mux.HandleFunc("POST /logout", h.HandleLogout)
}

func (r *Router) registerProfile() {
	h := &ProfileHandler{
		ProfileService:   r.ProfileService,
		DirectoryService: r.DirectoryService,
		HomePage:         r.cfg.Pages.Home,
		MaxUploadBytes:   r.cfg.MaxUploadBytes,
	}
	page := session.RequirePage(r.cfg.Pages.Login)

	r.Mux.Handle("POST /profile", httpx.Chain(http.HandlerFunc(h.HandleCreate), page))
	r.Mux.Handle("GET /viewProfile", httpx.Chain(http.HandlerFunc(h.HandleGet), page))
	r.Mux.Handle("POST /updateProfile", httpx.Chain(http.HandlerFunc(h.HandleUpdate), session.RequireAPI))
	r.Mux.Handle("GET /getProfile", httpx.Chain(http.HandlerFunc(h.HandleGet), session.RequireAPI))
}

func (r *Router) registerDirectory() {
	h := &DirectoryHandler{DirectoryService: r.DirectoryService}

	r.Mux.Handle("GET /getProfilesByYear", httpx.Chain(http.HandlerFunc(h.HandleByYear), session.RequireAPI))
	r.Mux.Handle("GET /getUserDetails", httpx.Chain(http.HandlerFunc(h.HandleUserDetails), session.RequireAPI))
}

func (r *Router) registerMessages() {
	h := &MessagesHandler{
		MessagingService: r.MessagingService,
		DirectoryService: r.DirectoryService,
		MaxUploadBytes:   r.cfg.MaxUploadBytes,
	}

	r.Mux.Handle("POST /sendMessage", httpx.Chain(http.HandlerFunc(h.HandleSend), session.RequireAPI))
	r.Mux.Handle("GET /getMessages", httpx.Chain(http.HandlerFunc(h.HandleList), session.RequireAPI))
}

func (r *Router) registerUploads() {
	// Uploaded images are public, like the pages that embed them
	r.Mux.Handle("GET "+r.cfg.UploadPrefix, http.StripPrefix(r.cfg.UploadPrefix, blob.Handler(r.blobs)))
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /livez", LivezHandler(r.startTime, r.cfg.BuildVersion))
	r.Mux.Handle("GET /readyz", ReadyzHandler(r.startTime, r.cfg.BuildVersion, r.store))
}

func (r *Router) registerStatic() {
	if r.cfg.StaticDir == "" {
		return
	}
	files := http.FileServer(http.Dir(r.cfg.StaticDir))

	r.Mux.Handle("GET "+r.cfg.Pages.Profile, httpx.Chain(files, session.RequirePage(r.cfg.Pages.Login)))
	r.Mux.Handle("GET /", files)
}
