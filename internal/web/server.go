package web

import (
	"context"
	"embed"
	"encoding/json"
	"errors"
	"io"
	"io/fs"
	"net/http"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/peterkuimelis/skirmish/internal/game"
	"github.com/peterkuimelis/skirmish/internal/log"
	skirmishnet "github.com/peterkuimelis/skirmish/internal/net"
	"github.com/peterkuimelis/skirmish/internal/render"
)

//go:embed static
var staticFiles embed.FS

// CardInfo is the JSON representation of a card for the /api/cards endpoint.
type CardInfo struct {
	Name      string         `json:"name"`
	ManaCost  int            `json:"manaCost"`
	Attack    int            `json:"attack,omitempty"`
	Health    int            `json:"health,omitempty"`
	Rules     []string       `json:"rules,omitempty"`
	CardType  string         `json:"cardType"`
	Abilities game.Abilities `json:"abilities"`
	Spell     string         `json:"spell,omitempty"`
	Target    string         `json:"target,omitempty"`
}

// GameConfigFunc builds the configuration for a new browser game.
type GameConfigFunc func() (game.Config, error)

// Server is the skirmish web UI server. Each websocket connection plays its
// own game against the AI.
type Server struct {
	decksFile string
	newConfig GameConfigFunc
	logger    *zap.Logger
	mux       *http.ServeMux
}

// NewServer creates a new web server. newConfig may be nil for the
// built-in decks.
func NewServer(decksFile string, newConfig GameConfigFunc, logger *zap.Logger) *Server {
	if newConfig == nil {
		newConfig = func() (game.Config, error) { return game.Config{}, nil }
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Server{
		decksFile: decksFile,
		newConfig: newConfig,
		logger:    logger,
		mux:       http.NewServeMux(),
	}
	s.setupRoutes()
	return s
}

// Handler returns the server's routes.
func (s *Server) Handler() http.Handler { return s.mux }

func (s *Server) setupRoutes() {
	// Embedded static files
	staticFS, _ := fs.Sub(staticFiles, "static")

	// Serve index.html at root
	s.mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		f, err := staticFS.Open("index.html")
		if err != nil {
			http.Error(w, "not found", http.StatusNotFound)
			return
		}
		defer f.Close()
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		io.Copy(w, f)
	})

	s.mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.FS(staticFS))))

	// API endpoints
	s.mux.HandleFunc("GET /api/cards", s.handleCards)
	s.mux.HandleFunc("GET /api/decks", s.handleDecks)

	s.mux.HandleFunc("GET /ws", s.handleWebSocket)
}

func (s *Server) handleCards(w http.ResponseWriter, r *http.Request) {
	var cards []CardInfo
	for _, name := range game.CatalogNames() {
		c := game.LookupCard(name)
		ci := CardInfo{
			Name:      c.Name,
			ManaCost:  c.ManaCost,
			Rules:     c.Rules,
			Abilities: c.Abilities,
		}
		if c.IsSpell() {
			ci.CardType = "Spell"
			ci.Spell = c.Spell.String()
			ci.Target = c.Target.String()
		} else {
			ci.CardType = "Unit"
			ci.Attack = c.Attack
			ci.Health = c.Health
		}
		cards = append(cards, ci)
	}
	writeJSON(w, cards)
}

func (s *Server) handleDecks(w http.ResponseWriter, r *http.Request) {
	decks, err := listDecks(s.decksFile)
	if err != nil {
		s.logger.Error("list decks", zap.String("file", s.decksFile), zap.Error(err))
		http.Error(w, "could not read decks file", http.StatusInternalServerError)
		return
	}
	writeJSON(w, decks)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

// wsSink writes directives to a websocket as they are emitted.
type wsSink struct {
	ctx  context.Context
	conn *websocket.Conn
	err  error
}

func (s *wsSink) Emit(d render.Directive) {
	if s.err != nil {
		return
	}
	s.err = wsjson.Write(s.ctx, s.conn, skirmishnet.ServerMessage{Directive: d})
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		InsecureSkipVerify: true, // Allow connections from any origin
	})
	if err != nil {
		s.logger.Warn("websocket accept", zap.Error(err))
		return
	}
	defer conn.CloseNow()

	ctx := r.Context()
	id := uuid.NewString()
	zl := s.logger.With(zap.String("game", id))

	cfg, err := s.newConfig()
	if err != nil {
		zl.Error("game config", zap.Error(err))
		conn.Close(websocket.StatusInternalError, "could not load decks")
		return
	}
	sink := &wsSink{ctx: ctx, conn: conn}
	cfg.Sink = sink
	cfg.Logger = log.NewZapLogger(zl)
	cfg.Zap = zl
	engine := game.NewEngine(cfg)

	zl.Info("browser game opened", zap.String("remote", r.RemoteAddr))
	defer zl.Info("browser game closed")

	for {
		var msg skirmishnet.ClientMessage
		if err := wsjson.Read(ctx, conn, &msg); err != nil {
			if websocket.CloseStatus(err) == websocket.StatusNormalClosure || errors.Is(err, context.Canceled) {
				return
			}
			zl.Debug("websocket read", zap.Error(err))
			return
		}

		var reply skirmishnet.ServerMessage
		in, err := skirmishnet.DecodeIntent(msg)
		if err == nil {
			err = engine.Handle(ctx, in)
		}
		if err != nil {
			zl.Warn("intent rejected", zap.String("messagetype", msg.Type), zap.Error(err))
			reply = skirmishnet.ErrorMessage(err)
		} else {
			reply = skirmishnet.StateMessage(engine.Snapshot())
		}

		if sink.err != nil {
			zl.Warn("websocket write", zap.Error(sink.err))
			return
		}
		if err := wsjson.Write(ctx, conn, reply); err != nil {
			zl.Warn("websocket write", zap.Error(err))
			return
		}
	}
}

// ListenAndServe serves HTTP on addr until ctx is done.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{Addr: addr, Handler: s.mux}
	stop := context.AfterFunc(ctx, func() { srv.Shutdown(context.Background()) })
	defer stop()

	s.logger.Info("web UI listening", zap.String("addr", addr))
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
