package mock

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"

	"github.com/gorilla/mux"
)

// Route is a canned HTTP response served by the mock server. Params, when
// set, must match the merged query and body parameters of the request for
// the route to be served.
type Route struct {
	Method string
	Path   string
	Params url.Values
	Status int
	Body   string
}

// Request is a request captured by the mock server
type Request struct {
	Method  string
	Path    string
	Query   url.Values
	Headers http.Header
	Body    []byte
}

// Server is a gorilla/mux backed test server returning canned responses
type Server struct {
	*httptest.Server

	mu       sync.Mutex
	routes   map[string][]Route
	requests []Request
}

// NewServer starts a new mock server serving the supplied routes
func NewServer(routes ...Route) *Server {
	s := &Server{routes: make(map[string][]Route)}
	r := mux.NewRouter()
	for i := range routes {
		key := routes[i].Method + " " + routes[i].Path
		if _, ok := s.routes[key]; !ok {
			r.HandleFunc(routes[i].Path, s.handle).Methods(routes[i].Method)
		}
		s.routes[key] = append(s.routes[key], routes[i])
	}
	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		s.record(req, nil)
		http.NotFound(w, req)
	})
	s.Server = httptest.NewServer(r)
	return s
}

func (s *Server) handle(w http.ResponseWriter, req *http.Request) {
	body, err := io.ReadAll(req.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	s.record(req, body)

	params, err := requestParams(req, body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	tmpl, err := mux.CurrentRoute(req).GetPathTemplate()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	s.mu.Lock()
	candidates := s.routes[req.Method+" "+tmpl]
	s.mu.Unlock()
	for i := range candidates {
		if candidates[i].Params != nil && !MatchURLVals(candidates[i].Params, params) {
			continue
		}
		status := candidates[i].Status
		if status == 0 {
			status = http.StatusOK
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, candidates[i].Body)
		return
	}
	http.Error(w, "no mock route matched params "+params.Encode(), http.StatusNotFound)
}

func requestParams(req *http.Request, body []byte) (url.Values, error) {
	params := req.URL.Query()
	if len(body) == 0 {
		return params, nil
	}
	var bodyVals url.Values
	var err error
	if strings.HasPrefix(strings.TrimSpace(string(body)), "{") {
		bodyVals, err = DeriveURLValsFromJSONMap(body)
	} else {
		bodyVals, err = url.ParseQuery(string(body))
	}
	if err != nil {
		return nil, err
	}
	for k, v := range bodyVals {
		if _, ok := params[k]; !ok {
			params[k] = v
		}
	}
	return params, nil
}

func (s *Server) record(req *http.Request, body []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.requests = append(s.requests, Request{
		Method:  req.Method,
		Path:    req.URL.Path,
		Query:   req.URL.Query(),
		Headers: req.Header.Clone(),
		Body:    body,
	})
}

// Requests returns a copy of the requests received so far
func (s *Server) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Request, len(s.requests))
	copy(out, s.requests)
	return out
}

// LastRequest returns the most recent request received and whether one exists
func (s *Server) LastRequest() (Request, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.requests) == 0 {
		return Request{}, false
	}
	return s.requests[len(s.requests)-1], true
}
