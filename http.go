package martindb

import (
	"encoding/json"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"sync"

	"github.com/google/uuid"
)

type QueryRequest struct {
	Query string `json:"query"`
}

type QueryResponse struct {
	Message string    `json:"message,omitempty"`
	Headers []string  `json:"headers,omitempty"`
	Rows    [][]Value `json:"rows,omitempty"`
	Error   string    `json:"error,omitempty"`
}

// Server is the HTTP front end. The core performs no locking of its
// own, so a single exclusive read/write lock around the whole database
// serializes requests here: selects share the read lock, mutations
// take the write lock and snapshot the database on success.
type Server struct {
	mu    sync.RWMutex
	db    *Database
	store *Store
	log   *slog.Logger
}

func NewServer(db *Database, store *Store, log *slog.Logger) *Server {
	if log == nil {
		log = slog.Default()
	}
	return &Server{db: db, store: store, log: log}
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleIndex)
	mux.HandleFunc("/tables", s.handleTables)
	mux.HandleFunc("/query", s.handleQuery)
	return mux
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func (s *Server) handleQuery(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	reqID := uuid.NewString()

	var req QueryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.log.Error("bad request", "request_id", reqID, "error", err)
		writeJSON(w, http.StatusBadRequest, QueryResponse{
			Error: fmt.Sprintf("Invalid request format: %v", err),
		})
		return
	}

	stmt, err := Parse(req.Query)
	if err != nil {
		s.log.Info("query rejected", "request_id", reqID, "query", req.Query, "error", err)
		writeJSON(w, http.StatusBadRequest, QueryResponse{Error: err.Error()})
		return
	}

	var res *Result
	if stmt.Kind == SelectKind {
		s.mu.RLock()
		res, err = s.db.Execute(stmt)
		s.mu.RUnlock()
	} else {
		s.mu.Lock()
		res, err = s.db.Execute(stmt)
		if err == nil && s.store != nil {
			// Mutation applied; snapshot before releasing the lock.
			if saveErr := s.store.Save(s.db); saveErr != nil {
				s.log.Error("snapshot failed", "request_id", reqID, "error", saveErr)
			}
		}
		s.mu.Unlock()
	}

	if err != nil {
		s.log.Info("query failed", "request_id", reqID, "query", req.Query, "error", err)
		writeJSON(w, http.StatusBadRequest, QueryResponse{Error: err.Error()})
		return
	}

	s.log.Info("query ok", "request_id", reqID, "query", req.Query, "rows", len(res.Rows))
	writeJSON(w, http.StatusOK, QueryResponse{
		Message: res.Message,
		Headers: res.Headers,
		Rows:    res.Rows,
	})
}

func (s *Server) handleTables(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	s.mu.RLock()
	tables := s.db.Metadata()
	s.mu.RUnlock()

	writeJSON(w, http.StatusOK, tables)
}

var indexTemplate = template.Must(template.New("index").Parse(`<!DOCTYPE html>
<html>
<head><title>martindb</title></head>
<body>
<h1>martindb</h1>
<p>POST /query with a JSON body like {"query": "SELECT * FROM t"} to run a statement.</p>
{{range .}}
<h2>{{.Name}}</h2>
<table border="1" cellpadding="4">
<tr>{{range .Headers}}<th>{{.}}</th>{{end}}</tr>
{{range .Rows}}<tr>{{range .}}<td>{{.}}</td>{{end}}</tr>{{end}}
</table>
{{end}}
</body>
</html>
`))

type tableView struct {
	Name    string
	Headers []string
	Rows    [][]string
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	s.mu.RLock()
	var views []tableView
	for _, tm := range s.db.Metadata() {
		t := s.db.Tables[tm.Name]
		view := tableView{Name: t.Name}
		for _, c := range t.Columns {
			view.Headers = append(view.Headers, c.Name)
		}
		for _, row := range t.Rows {
			cells := make([]string, len(row))
			for i, v := range row {
				cells[i] = v.String()
			}
			view.Rows = append(view.Rows, cells)
		}
		views = append(views, view)
	}
	s.mu.RUnlock()

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := indexTemplate.Execute(w, views); err != nil {
		s.log.Error("render failed", "error", err)
	}
}
