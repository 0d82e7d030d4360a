// Package pasterytest runs an in-process imitation of the pastery paste API
// for tests.
package pasterytest

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"

	"github.com/julienschmidt/httprouter"

	"github.com/tombowditch/patisserie/internal/duration"
	"github.com/tombowditch/patisserie/internal/language"
)

// Path is where the fake service accepts new pastes.
const Path = "/api/paste/"

// Paste is a paste the fake service accepted.
type Paste struct {
	ID       string
	Duration string
	Language string
	Title    string
	MaxViews string
	Body     string
	Query    map[string][]string
}

// Server holds the fake service and what it has received.
type Server struct {
	*httptest.Server

	// APIKey is the only key accepted. Empty accepts any key.
	APIKey string

	mu     sync.Mutex
	pastes []Paste
	reply  []byte
	nextID uint64
}

// NewServer starts a fake service. Call Close when done.
func NewServer() *Server {
	s := &Server{}
	s.Server = httptest.NewServer(s.handler())
	return s
}

// Endpoint returns the paste creation URL of the server.
func (s *Server) Endpoint() string {
	return s.URL + Path
}

// Reply makes every later request answer with body verbatim.
func (s *Server) Reply(body string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reply = []byte(body)
}

// Pastes returns the pastes created so far.
func (s *Server) Pastes() []Paste {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Paste(nil), s.pastes...)
}

// Last returns the most recently created paste.
func (s *Server) Last() (Paste, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.pastes) == 0 {
		return Paste{}, false
	}
	return s.pastes[len(s.pastes)-1], true
}

func (s *Server) handler() http.Handler {
	r := httprouter.New()
	r.POST(Path, s.createPaste)
	return r
}

// createPaste mimics the real service: every answer is 200 OK, and failures
// are reported as {"error_msg": ...}.
func (s *Server) createPaste(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	defer r.Body.Close()

	s.mu.Lock()
	reply := s.reply
	s.mu.Unlock()
	if reply != nil {
		w.Header().Set("Content-Type", "application/json")
		w.Write(reply)
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, "error reading body")
		return
	}

	q := r.URL.Query()
	if msg := s.validate(q); msg != "" {
		writeError(w, msg)
		return
	}

	p := Paste{
		Duration: q.Get("duration"),
		Language: q.Get("language"),
		Title:    q.Get("title"),
		MaxViews: q.Get("max_views"),
		Body:     string(body),
		Query:    q,
	}

	s.mu.Lock()
	s.nextID++
	p.ID = pasteID(s.nextID)
	s.pastes = append(s.pastes, p)
	s.mu.Unlock()

	slog.Debug("created paste", "id", p.ID, "language", p.Language)

	writeJSON(w, map[string]any{
		"id":       p.ID,
		"title":    p.Title,
		"url":      s.URL + "/" + p.ID + "/",
		"language": p.Language,
		"duration": p.Duration,
	})
}

func (s *Server) validate(q map[string][]string) string {
	get := func(k string) string {
		if v := q[k]; len(v) > 0 {
			return v[0]
		}
		return ""
	}

	if s.APIKey != "" && get("api_key") != s.APIKey {
		return "Invalid API key."
	}
	if get("api_key") == "" {
		return "An API key is required."
	}

	if d := get("duration"); d != "" {
		n, err := strconv.ParseUint(d, 10, 32)
		if err != nil || duration.Minutes(n) > duration.Maximum {
			return "Invalid duration."
		}
	}
	if l := get("language"); l != "" {
		if _, err := language.Validate(l); err != nil {
			return "Invalid language."
		}
	}
	if mv := get("max_views"); mv != "" {
		if n, err := strconv.ParseUint(mv, 10, 32); err != nil || n == 0 {
			return "Invalid max_views."
		}
	}
	return ""
}

// pasteID renders n in base 36, padded so IDs look like pastery's.
func pasteID(n uint64) string {
	id := strconv.FormatUint(n, 36)
	if len(id) < 6 {
		id = strings.Repeat("0", 6-len(id)) + id
	}
	return id
}

func writeError(w http.ResponseWriter, msg string) {
	writeJSON(w, map[string]string{"error_msg": msg})
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("encoding response failed", "error", err)
	}
}
