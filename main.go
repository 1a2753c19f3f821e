// Command boggle starts the Boggle word game server.
//
// It supports several commands:
//  1. "serve" (default) – runs the HTTP server exposing REST API, WebSocket, and an /mcp HTTP endpoint
//  2. "mcp" – runs an MCP stdio server and spins up an internal HTTP API if none is available
//  3. "solve", "play" and "validate" – offline tools that need no server
//
// Every flag defaults to the matching environment variable (see config.Settings),
// and a .env file in the working directory is loaded first.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/joho/godotenv"
	"github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"
	"github.com/wricardo/mcp-training/boggle/api"
	"github.com/wricardo/mcp-training/boggle/game/config"
	"github.com/wricardo/mcp-training/boggle/game/dictionary"
	"github.com/wricardo/mcp-training/boggle/game/service"
	"github.com/wricardo/mcp-training/boggle/game/session"
	"github.com/wricardo/mcp-training/boggle/transport/mcp"
	"github.com/wricardo/mcp-training/boggle/transport/websocket"
	"golang.ngrok.com/ngrok"
	ngrokConfig "golang.ngrok.com/ngrok/config"
)

// Version information
const (
	Version = "1.0.0"
	AppName = "Boggle Server"
)

func main() {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		fmt.Fprintf(os.Stderr, "warning: error loading .env file: %v\n", err)
	}

	settings, err := config.LoadSettings()
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid settings: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newApp(settings).Run(ctx, os.Args); err != nil {
		log.Error().Err(err).Msg("exiting")
		os.Exit(1)
	}
}

// newApp builds the command tree. Flag defaults come from settings.
func newApp(settings *config.Settings) *cli.Command {
	return &cli.Command{
		Name:           "boggle",
		Usage:          "Boggle word game server and tools",
		Version:        Version,
		DefaultCommand: "serve",
		Description: heredoc.Doc(`
			Play Boggle against the computer over REST, WebSocket or MCP.

			Examples:
			  boggle                          # HTTP server on the default port
			  boggle serve --port 9090        # HTTP server on port 9090
			  boggle mcp                      # MCP stdio server
			  boggle solve --letters STARPLEAHIMNOUDE
		`),
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "host", Value: settings.Host, Usage: "HTTP server host"},
			&cli.IntFlag{Name: "port", Aliases: []string{"p"}, Value: settings.Port, Usage: "HTTP server port"},
			&cli.StringFlag{Name: "config-dir", Value: settings.ConfigDir, Usage: "Directory containing game configurations"},
			&cli.StringFlag{Name: "dictionary", Value: settings.DictionaryFile, Usage: "Word list, one word per line (default: embedded list)"},
			&cli.StringFlag{Name: "log-level", Value: settings.LogLevel, Usage: "trace, debug, info, warn or error"},
			&cli.BoolFlag{Name: "pretty", Value: settings.LogPretty, Usage: "Human readable console logs"},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			return ctx, setupLogging(cmd.String("log-level"), cmd.Bool("pretty"), cmd.Root().ErrWriter)
		},
		Commands: []*cli.Command{
			serveCommand(settings),
			mcpCommand(settings),
			solveCommand(),
			playCommand(),
			validateCommand(),
		},
	}
}

// setupLogging configures the global zerolog logger. Logs always go to
// stderr so stdout stays free for the MCP stdio protocol.
func setupLogging(level string, pretty bool, w io.Writer) error {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}
	zerolog.SetGlobalLevel(lvl)

	if pretty {
		log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}).With().Timestamp().Logger()
	} else {
		log.Logger = zerolog.New(w).With().Timestamp().Logger()
	}
	return nil
}

func serveCommand(settings *config.Settings) *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Run HTTP server with API, WebSocket, and MCP endpoint",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "store", Value: settings.SessionStore, Usage: "Session store: file, sqlite or memory"},
			&cli.BoolFlag{Name: "ngrok", Value: settings.NgrokEnabled, Usage: "Enable ngrok tunnel"},
			&cli.StringFlag{Name: "ngrok-auth", Value: settings.NgrokAuthToken, Usage: "Ngrok auth token"},
			&cli.StringFlag{Name: "ngrok-domain", Value: settings.NgrokDomain, Usage: "Custom ngrok domain (optional)"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			s := *settings
			s.Host = cmd.String("host")
			s.Port = cmd.Int("port")
			s.ConfigDir = cmd.String("config-dir")
			s.DictionaryFile = cmd.String("dictionary")
			s.SessionStore = cmd.String("store")
			s.NgrokEnabled = cmd.Bool("ngrok")
			s.NgrokAuthToken = cmd.String("ngrok-auth")
			s.NgrokDomain = cmd.String("ngrok-domain")
			if err := s.Validate(); err != nil {
				return err
			}

			svc, err := initializeServices(ctx, &s)
			if err != nil {
				return fmt.Errorf("failed to initialize services: %w", err)
			}
			defer svc.Close()

			return runHTTPServer(ctx, &s, svc.game)
		},
	}
}

func mcpCommand(settings *config.Settings) *cli.Command {
	return &cli.Command{
		Name:    "mcp",
		Aliases: []string{"stdio-mcp", "mcp-stdio"},
		Usage:   "Run MCP stdio server with internal HTTP server",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "api-url", Value: settings.APIURL, Usage: "External API to reuse when it is reachable"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			s := *settings
			s.ConfigDir = cmd.String("config-dir")
			s.DictionaryFile = cmd.String("dictionary")
			s.APIURL = cmd.String("api-url")

			return runStdioMCPWithInternalServer(ctx, &s)
		},
	}
}

// services bundles everything initializeServices wires together
type services struct {
	game        service.GameService
	sessions    *session.Manager
	persistence session.SessionPersistence
	closers     []io.Closer
}

// Close flushes sessions and releases the session store
func (s *services) Close() error {
	if s.persistence != nil {
		if err := s.sessions.SaveAllSessions(); err != nil {
			log.Warn().Err(err).Msg("failed to save sessions on shutdown")
		}
	}
	var errs []error
	for _, c := range s.closers {
		errs = append(errs, c.Close())
	}
	return errors.Join(errs...)
}

// initializeServices wires the dictionary, config and session managers and the game service.
// It also starts background routines that prune stale sessions until ctx is done.
func initializeServices(ctx context.Context, settings *config.Settings) (*services, error) {
	configManager, err := config.NewManager(settings.ConfigDir)
	if err != nil {
		return nil, fmt.Errorf("failed to create config manager: %w", err)
	}

	dict, err := dictionary.Open(settings.DictionaryFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load dictionary: %w", err)
	}
	log.Info().Int("words", dict.Len()).Str("file", settings.DictionaryFile).Msg("dictionary loaded")

	svc := &services{}

	switch settings.SessionStore {
	case config.StoreMemory:
		svc.sessions = session.NewManager(dict)

	case config.StoreSQLite:
		persistence, err := session.NewSQLitePersistence(settings.SQLitePath, configManager, dict)
		if err != nil {
			return nil, fmt.Errorf("failed to open session database: %w", err)
		}
		svc.persistence = persistence
		svc.closers = append(svc.closers, persistence)

	default:
		persistence, err := session.NewFilePersistence(settings.SessionsDir, configManager, dict)
		if err != nil {
			return nil, fmt.Errorf("failed to create session persistence: %w", err)
		}
		svc.persistence = persistence
	}

	if svc.persistence != nil {
		svc.sessions = session.NewManagerWithPersistence(dict, svc.persistence)
		if err := svc.sessions.LoadPersistedSessions(); err != nil {
			log.Warn().Err(err).Msg("failed to load persisted sessions")
		}
		go filesystemSyncRoutine(ctx, svc.sessions, svc.persistence)
	}
	log.Info().Str("store", settings.SessionStore).Int("sessions", svc.sessions.Count()).Msg("session store ready")

	svc.game = service.NewGameService(svc.sessions, configManager)

	go sessionCleanupRoutine(ctx, svc.sessions)

	return svc, nil
}

// sessionCleanupRoutine periodically removes sessions that have not been accessed
// within the retention window.
func sessionCleanupRoutine(ctx context.Context, manager *session.Manager) {
	ticker := time.NewTicker(1 * time.Hour)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if removed := manager.CleanupExpiredSessions(24 * time.Hour); removed > 0 {
				log.Info().Int("count", removed).Msg("cleaned up expired sessions")
			}
		}
	}
}

// filesystemSyncRoutine drops sessions from memory once they disappear from the store
func filesystemSyncRoutine(ctx context.Context, manager *session.Manager, persistence session.SessionPersistence) {
	ticker := time.NewTicker(5 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			pruned := 0
			for _, s := range manager.List() {
				if persistence.Exists(s.ID) {
					continue
				}
				if err := manager.DeleteFromMemory(s.ID); err == nil {
					pruned++
					log.Debug().Str("session", s.ID).Msg("pruned session removed from store")
				}
			}
			if pruned > 0 {
				log.Info().Int("count", pruned).Msg("store sync pruned orphaned sessions")
			}
		}
	}
}

// newRouter mounts the API at the root and the MCP JSON-RPC endpoint at /mcp
func newRouter(apiServer http.Handler, mcpClient *mcp.Client) *http.ServeMux {
	mainRouter := http.NewServeMux()
	mainRouter.Handle("/", apiServer)

	mainRouter.HandleFunc("/mcp", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != "POST" {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}

		body, err := io.ReadAll(r.Body)
		if err != nil {
			http.Error(w, "Failed to read request", http.StatusBadRequest)
			return
		}
		defer r.Body.Close()

		response := mcpClient.GetMCPServer().HandleMessage(r.Context(), body)

		w.Header().Set("Content-Type", "application/json")
		responseData, err := json.Marshal(response)
		if err != nil {
			http.Error(w, "Failed to marshal response", http.StatusInternalServerError)
			return
		}
		w.Write(responseData)
	})

	return mainRouter
}

// runHTTPServer serves the REST API, the WebSocket hub and /mcp until ctx is done.
// With ngrok enabled it also serves the same handler through a public tunnel.
func runHTTPServer(ctx context.Context, settings *config.Settings, gameService service.GameService) error {
	hub := websocket.NewHub()
	go hub.Run()
	defer hub.Close()

	addr := settings.Addr()
	apiServer := api.NewServer(gameService, hub)
	mainRouter := newRouter(apiServer, mcp.NewClient("http://"+addr))

	httpServer := &http.Server{
		Addr:         addr,
		Handler:      mainRouter,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	var wg sync.WaitGroup
	errCh := make(chan error, 1)

	wg.Add(1)
	go func() {
		defer wg.Done()

		log.Info().
			Str("addr", addr).
			Str("api", "http://"+addr+"/api").
			Str("websocket", "ws://"+addr+"/ws?session=<session_id>").
			Str("mcp", "http://"+addr+"/mcp").
			Msg("HTTP server listening")

		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	if settings.NgrokEnabled {
		wg.Add(1)
		go func() {
			defer wg.Done()
			runNgrokTunnel(ctx, settings, mainRouter)
		}()
	}

	var runErr error
	select {
	case <-ctx.Done():
		log.Info().Msg("shutting down")
	case runErr = <-errCh:
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Warn().Err(err).Msg("HTTP server shutdown error")
	}

	wg.Wait()
	log.Info().Msg("server stopped")
	return runErr
}

// runNgrokTunnel blocks until ctx is done or the tunnel fails
func runNgrokTunnel(ctx context.Context, settings *config.Settings, handler http.Handler) {
	authToken := settings.NgrokAuthToken
	if authToken == "" {
		// Also support the underscore spelling
		authToken = os.Getenv("NGROK_AUTH_TOKEN")
	}
	if authToken == "" {
		log.Warn().Msg("ngrok enabled but no auth token provided (use --ngrok-auth, NGROK_AUTHTOKEN or NGROK_AUTH_TOKEN)")
		return
	}

	var tunnel ngrokConfig.Tunnel
	if settings.NgrokDomain != "" {
		tunnel = ngrokConfig.HTTPEndpoint(ngrokConfig.WithDomain(settings.NgrokDomain))
	} else {
		tunnel = ngrokConfig.HTTPEndpoint()
	}

	log.Info().Str("domain", settings.NgrokDomain).Msg("starting ngrok tunnel")
	tun, err := ngrok.Listen(ctx, tunnel, ngrok.WithAuthtoken(authToken))
	if err != nil {
		log.Error().Err(err).Msg("failed to start ngrok tunnel")
		return
	}

	go func() {
		<-ctx.Done()
		if err := tun.Close(); err != nil {
			log.Warn().Err(err).Msg("failed to close ngrok tunnel")
		}
	}()

	ngrokURL := tun.URL()
	log.Info().
		Str("url", ngrokURL).
		Str("api", ngrokURL+"/api").
		Str("websocket", ngrokURL+"/ws?session=<session_id>").
		Str("mcp", ngrokURL+"/mcp").
		Msg("ngrok tunnel established")

	if err := http.Serve(tun, handler); err != nil && err != http.ErrServerClosed && ctx.Err() == nil {
		log.Error().Err(err).Msg("ngrok server error")
	}
	log.Info().Msg("ngrok tunnel closed")
}

// apiReachable reports whether a Boggle API answers health checks at baseURL
func apiReachable(baseURL string) bool {
	client := &http.Client{Timeout: 2 * time.Second}
	resp, err := client.Get(baseURL + "/health")
	if err != nil {
		return false
	}
	resp.Body.Close()
	return resp.StatusCode == http.StatusOK
}

// runStdioMCPWithInternalServer runs an MCP stdio server.
// It reuses the API at settings.APIURL when it is reachable; otherwise it starts
// an internal HTTP API with in-memory sessions on a random loopback port.
func runStdioMCPWithInternalServer(ctx context.Context, settings *config.Settings) error {
	baseURL := settings.APIURL

	if apiReachable(baseURL) {
		log.Info().Str("url", baseURL).Msg("external API server found, using it for MCP")
	} else {
		log.Info().Str("url", baseURL).Msg("no external API server found, starting internal HTTP server")

		internal := *settings
		internal.SessionStore = config.StoreMemory
		svc, err := initializeServices(ctx, &internal)
		if err != nil {
			return fmt.Errorf("failed to initialize services: %w", err)
		}
		defer svc.Close()

		listener, err := net.Listen("tcp", "127.0.0.1:0")
		if err != nil {
			return fmt.Errorf("failed to get available port: %w", err)
		}

		hub := websocket.NewHub()
		go hub.Run()
		defer hub.Close()

		httpServer := &http.Server{Handler: api.NewServer(svc.game, hub)}
		go func() {
			if err := httpServer.Serve(listener); err != nil && err != http.ErrServerClosed {
				log.Error().Err(err).Msg("internal HTTP server error")
			}
		}()
		defer httpServer.Close()

		baseURL = "http://" + listener.Addr().String()
		log.Info().Str("url", baseURL).Msg("internal HTTP server started for MCP stdio")
	}

	mcpClient := mcp.NewClient(baseURL)
	log.Info().Msg("MCP stdio server ready")

	if err := server.ServeStdio(mcpClient.GetMCPServer()); err != nil {
		return fmt.Errorf("MCP stdio server error: %w", err)
	}
	return nil
}
