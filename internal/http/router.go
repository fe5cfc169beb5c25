package http

import (
	"net/http"
	"strings"
	"time"

	"skillbridge/internal/http/handlers"
	httpmw "skillbridge/internal/http/middleware"
	"skillbridge/internal/observability"
)

type RouterDependencies struct {
	AuthHandler    *handlers.AuthHandler
	ProfileHandler *handlers.ProfileHandler
	UploadHandler  *handlers.UploadHandler
	JobHandler     *handlers.JobHandler
	CatalogHandler *handlers.CatalogHandler
	Limiter        httpmw.Limiter
	Logger         observability.Logger
	MaxBodyBytes   int64
	RequestTimeout time.Duration
}

// Coarse per-IP ceiling across the whole API. The auth handlers apply
// their own tighter per-action limits on top.
const requestsPerMinute = 120

type Router struct {
	deps RouterDependencies
}

func NewRouter(deps RouterDependencies) http.Handler {
	return &Router{deps: deps}
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	handler := httpmw.Chain(r.baseHandler(),
		httpmw.RequestID,
		httpmw.Logging(r.deps.Logger),
		httpmw.RateLimit(r.deps.Limiter, httpmw.ClientIP, requestsPerMinute, time.Minute),
		httpmw.BodyLimit(r.deps.MaxBodyBytes),
		httpmw.Recover(r.deps.Logger),
		httpmw.Timeout(r.deps.RequestTimeout),
	)
	handler.ServeHTTP(w, req)
}

func (r *Router) baseHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		path := req.URL.Path

		switch {
		case req.Method == http.MethodGet && path == "/health":
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("ok"))
			return
		case req.Method == http.MethodPost && path == "/api/learners/register":
			r.deps.AuthHandler.RegisterLearner(w, req)
			return
		case req.Method == http.MethodPost && path == "/api/employers/register":
			r.deps.AuthHandler.RegisterEmployer(w, req)
			return
		case req.Method == http.MethodPost && path == "/api/learners/login":
			r.deps.AuthHandler.LoginLearner(w, req)
			return
		case req.Method == http.MethodPost && path == "/api/employers/login":
			r.deps.AuthHandler.LoginEmployer(w, req)
			return
		case req.Method == http.MethodPost && path == "/api/learners/onboard":
			r.deps.ProfileHandler.Onboard(w, req)
			return
		case req.Method == http.MethodGet && path == "/api/questions":
			r.deps.CatalogHandler.Questions(w, req)
			return
		}

		segments := strings.Split(strings.Trim(path, "/"), "/")
		if len(segments) < 2 || segments[0] != "api" {
			http.NotFound(w, req)
			return
		}

		switch segments[1] {
		case "skills":
			if req.Method == http.MethodGet && len(segments) == 3 {
				r.deps.CatalogHandler.Skills(w, req)
				return
			}
		case "learner":
			r.handleLearner(w, req, segments)
			return
		case "employers":
			r.handleEmployer(w, req, segments)
			return
		}

		http.NotFound(w, req)
	})
}

func (r *Router) handleLearner(w http.ResponseWriter, req *http.Request, segments []string) {
	switch {
	case len(segments) == 3 && req.Method == http.MethodGet:
		r.deps.ProfileHandler.Get(w, req)
	case len(segments) == 3 && req.Method == http.MethodPut:
		r.deps.ProfileHandler.Update(w, req)
	case len(segments) == 4 && req.Method == http.MethodPost && segments[3] == "addSkill":
		r.deps.ProfileHandler.AddSkill(w, req)
	case len(segments) == 4 && req.Method == http.MethodPost && segments[3] == "verifySkill":
		r.deps.ProfileHandler.VerifySkillByName(w, req)
	case len(segments) == 4 && req.Method == http.MethodPost && segments[3] == "upload-profile":
		r.deps.UploadHandler.ProfilePicture(w, req)
	case len(segments) == 4 && req.Method == http.MethodPost && segments[3] == "upload-certificate":
		r.deps.UploadHandler.Certificate(w, req)
	case len(segments) == 6 && req.Method == http.MethodPut && segments[3] == "profile" && segments[4] == "verify-skill":
		r.deps.ProfileHandler.VerifySkillAt(w, req)
	case len(segments) == 5 && req.Method == http.MethodPost && segments[3] == "profile":
		r.deps.ProfileHandler.AddToSection(w, req)
	case len(segments) == 6 && req.Method == http.MethodDelete && segments[3] == "profile":
		r.deps.ProfileHandler.RemoveFromSection(w, req)
	default:
		http.NotFound(w, req)
	}
}

func (r *Router) handleEmployer(w http.ResponseWriter, req *http.Request, segments []string) {
	switch {
	case len(segments) == 4 && req.Method == http.MethodPost && segments[3] == "jobs":
		r.deps.JobHandler.Post(w, req)
	case len(segments) == 4 && req.Method == http.MethodGet && segments[3] == "jobs":
		r.deps.JobHandler.List(w, req)
	case len(segments) == 5 && req.Method == http.MethodPut && segments[3] == "jobs":
		r.deps.JobHandler.Update(w, req)
	case len(segments) == 5 && req.Method == http.MethodDelete && segments[3] == "jobs":
		r.deps.JobHandler.Delete(w, req)
	case len(segments) == 6 && req.Method == http.MethodGet && segments[3] == "jobs" && segments[5] == "applicants":
		r.deps.JobHandler.Applicants(w, req)
	case len(segments) == 6 && req.Method == http.MethodPost && segments[3] == "jobs" && segments[5] == "apply":
		r.deps.JobHandler.Apply(w, req)
	default:
		http.NotFound(w, req)
	}
}
