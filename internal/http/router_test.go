package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io/fs"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skillbridge/internal/app"
	"skillbridge/internal/common"
	"skillbridge/internal/domain/catalog"
	"skillbridge/internal/domain/employer"
	"skillbridge/internal/domain/learner"
	"skillbridge/internal/http/handlers"
	httpmw "skillbridge/internal/http/middleware"
	"skillbridge/internal/security"
	"skillbridge/internal/storage"
)

type memLearnerRepo struct {
	mu      sync.Mutex
	byEmail map[string]learner.Learner
}

func (r *memLearnerRepo) Create(ctx context.Context, l learner.Learner) (*learner.Learner, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byEmail[l.Email]; ok {
		return nil, common.NewError(common.CodeDuplicate, "email already registered", nil)
	}
	l.Revision = 1
	l.CreatedAt = time.Now().UTC()
	l.UpdatedAt = l.CreatedAt
	r.byEmail[l.Email] = l
	return &l, nil
}

func (r *memLearnerRepo) GetByEmail(ctx context.Context, email string) (*learner.Learner, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	l, ok := r.byEmail[email]
	if !ok {
		return nil, common.NewError(common.CodeNotFound, "learner not found", nil)
	}
	return &l, nil
}

func (r *memLearnerRepo) Save(ctx context.Context, l learner.Learner) (*learner.Learner, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.byEmail[l.Email]
	if !ok {
		return nil, common.NewError(common.CodeNotFound, "learner not found", nil)
	}
	if stored.Revision != l.Revision {
		return nil, common.NewError(common.CodeConflict, "learner modified concurrently", nil)
	}
	l.Revision++
	l.UpdatedAt = time.Now().UTC()
	r.byEmail[l.Email] = l
	return &l, nil
}

func (r *memLearnerRepo) SetProfileAssets(ctx context.Context, email, profilePic, profileLink string) (*learner.Learner, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	l, ok := r.byEmail[email]
	if !ok {
		return nil, common.NewError(common.CodeNotFound, "learner not found", nil)
	}
	l.ProfilePic = profilePic
	l.ProfileLink = profileLink
	r.byEmail[email] = l
	return &l, nil
}

type memEmployerRepo struct {
	mu      sync.Mutex
	byEmail map[string]employer.Employer
}

func (r *memEmployerRepo) Create(ctx context.Context, e employer.Employer) (*employer.Employer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byEmail[e.Email]; ok {
		return nil, common.NewError(common.CodeDuplicate, "email already registered", nil)
	}
	e.Revision = 1
	e.CreatedAt = time.Now().UTC()
	e.UpdatedAt = e.CreatedAt
	r.byEmail[e.Email] = e
	return &e, nil
}

func (r *memEmployerRepo) GetByEmail(ctx context.Context, email string) (*employer.Employer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.byEmail[email]
	if !ok {
		return nil, common.NewError(common.CodeNotFound, "employer not found", nil)
	}
	return &e, nil
}

func (r *memEmployerRepo) Save(ctx context.Context, e employer.Employer) (*employer.Employer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.byEmail[e.Email]
	if !ok {
		return nil, common.NewError(common.CodeNotFound, "employer not found", nil)
	}
	if stored.Revision != e.Revision {
		return nil, common.NewError(common.CodeConflict, "employer modified concurrently", nil)
	}
	e.Revision++
	e.UpdatedAt = time.Now().UTC()
	r.byEmail[e.Email] = e
	return &e, nil
}

type memSkillSetRepo struct {
	sets map[string]catalog.SkillSet
}

func (r *memSkillSetRepo) GetByJobTitle(ctx context.Context, jobTitle string) (*catalog.SkillSet, error) {
	set, ok := r.sets[jobTitle]
	if !ok {
		return nil, common.NewError(common.CodeNotFound, "skill set not found", nil)
	}
	return &set, nil
}

type memQuestionRepo struct {
	items []catalog.Question
}

func (r *memQuestionRepo) List(ctx context.Context, domain, skill string) ([]catalog.Question, error) {
	var matched []catalog.Question
	for _, item := range r.items {
		if domain != "" && item.Domain != domain {
			continue
		}
		if skill != "" && item.Skill != skill {
			continue
		}
		matched = append(matched, item)
	}
	return matched, nil
}

type quietLogger struct{}

func (quietLogger) Info(string)  {}
func (quietLogger) Error(string) {}

func newTestRouter(t *testing.T) (http.Handler, string) {
	t.Helper()
	uploadDir := t.TempDir()

	learners := &memLearnerRepo{byEmail: make(map[string]learner.Learner)}
	employers := &memEmployerRepo{byEmail: make(map[string]employer.Employer)}
	skillSets := &memSkillSetRepo{sets: map[string]catalog.SkillSet{
		"Backend Engineer": {JobTitle: "Backend Engineer", Skills: []string{"Go", "SQL"}},
	}}
	questions := &memQuestionRepo{items: []catalog.Question{
		{Domain: "IT", Skill: "Go", Question: "What is a goroutine?", Answer: "a lightweight thread", Type: catalog.QuestionTypeFillBlank},
	}}

	logger := quietLogger{}
	authService := app.NewAuthService(learners, employers, security.NewEmailBearer(), logger, 10)
	profileService := app.NewProfileService(learners, logger, 3)
	jobService := app.NewJobService(employers, learners, logger, 3)
	catalogService := app.NewCatalogService(skillSets, questions)

	limiter := httpmw.NewRateLimiter()
	router := NewRouter(RouterDependencies{
		AuthHandler:    handlers.NewAuthHandler(authService, limiter),
		ProfileHandler: handlers.NewProfileHandler(profileService),
		UploadHandler:  handlers.NewUploadHandler(profileService, storage.NewDiskStore(uploadDir), 1<<20),
		JobHandler:     handlers.NewJobHandler(jobService),
		CatalogHandler: handlers.NewCatalogHandler(catalogService),
		Limiter:        limiter,
		Logger:         logger,
		MaxBodyBytes:   1 << 20,
		RequestTimeout: 5 * time.Second,
	})
	return router, uploadDir
}

func doJSON(t *testing.T, router http.Handler, method, path string, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var body *bytes.Buffer
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewBuffer(raw)
	} else {
		body = bytes.NewBuffer(nil)
	}
	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	router, _ := newTestRouter(t)
	rec := doJSON(t, router, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestLearnerRegistrationAndProfileFlow(t *testing.T) {
	router, _ := newTestRouter(t)

	register := map[string]string{
		"firstName": "Asha",
		"lastName":  "Verma",
		"email":     "a@x.com",
		"password":  "secret123",
		"mobile":    "9999999999",
	}
	rec := doJSON(t, router, http.MethodPost, "/api/learners/register", register)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = doJSON(t, router, http.MethodPost, "/api/learners/register", register)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/api/learners/login", map[string]string{
		"email": "a@x.com", "password": "secret123",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var credential struct {
		Email string `json:"email"`
		Name  string `json:"name"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &credential))
	assert.Equal(t, "a@x.com", credential.Email)
	assert.Equal(t, "Asha Verma", credential.Name)

	rec = doJSON(t, router, http.MethodPost, "/api/learners/login", map[string]string{
		"email": "a@x.com", "password": "wrong-pass",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/api/learners/onboard", map[string]interface{}{
		"email":   "a@x.com",
		"sector":  "IT",
		"domains": []string{"backend"},
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = doJSON(t, router, http.MethodPost, "/api/learner/a@x.com/addSkill", map[string]interface{}{
		"name": "Go", "proficiency": 80,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = doJSON(t, router, http.MethodGet, "/api/learner/a@x.com", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var profile map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &profile))
	assert.Equal(t, "IT", profile["sector"])
	assert.NotContains(t, profile, "password")
	skills, ok := profile["skills"].([]interface{})
	require.True(t, ok)
	assert.Len(t, skills, 1)
}

func TestEmployerJobLifecycle(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/employers/register", map[string]string{
		"firstName":   "Ravi",
		"lastName":    "Kumar",
		"email":       "e@x.com",
		"password":    "secret123",
		"jobPosition": "HR Manager",
		"company":     "Acme",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = doJSON(t, router, http.MethodPost, "/api/employers/e@x.com/jobs", map[string]interface{}{
		"title":       "Backend Engineer",
		"description": "Build APIs",
		"skills":      []string{"Go"},
		"salary":      "12 LPA",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var job struct {
		ID     string `json:"id"`
		Status string `json:"status"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &job))
	require.NotEmpty(t, job.ID)
	assert.Equal(t, "active", job.Status)

	rec = doJSON(t, router, http.MethodGet, "/api/employers/e@x.com/jobs", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var jobs []map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &jobs))
	require.Len(t, jobs, 1)

	rec = doJSON(t, router, http.MethodPut, "/api/employers/e@x.com/jobs/"+job.ID, map[string]string{
		"salary": "15 LPA",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = doJSON(t, router, http.MethodDelete, "/api/employers/e@x.com/jobs/"+job.ID, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = doJSON(t, router, http.MethodGet, "/api/employers/e@x.com/jobs", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	jobs = nil
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &jobs))
	assert.Empty(t, jobs)
}

func TestApplyFlowOverHTTP(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/employers/register", map[string]string{
		"firstName": "Ravi", "lastName": "Kumar", "email": "e@x.com", "password": "secret123",
		"jobPosition": "HR Manager", "company": "Acme",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	rec = doJSON(t, router, http.MethodPost, "/api/learners/register", map[string]string{
		"firstName": "Asha", "lastName": "Verma", "email": "a@x.com", "password": "secret123",
		"mobile": "9999999999",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = doJSON(t, router, http.MethodPost, "/api/employers/e@x.com/jobs", map[string]string{
		"title": "Backend Engineer", "description": "Build APIs",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	var job struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &job))

	rec = doJSON(t, router, http.MethodPost, "/api/employers/e@x.com/jobs/"+job.ID+"/apply", map[string]string{
		"email": "a@x.com",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = doJSON(t, router, http.MethodGet, "/api/employers/e@x.com/jobs/"+job.ID+"/applicants", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var listing struct {
		Applicants []map[string]interface{} `json:"applicants"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listing))
	require.Len(t, listing.Applicants, 1)
	assert.Equal(t, "pending", listing.Applicants[0]["status"])

	rec = doJSON(t, router, http.MethodPost, "/api/employers/e@x.com/jobs/"+job.ID+"/apply", map[string]string{
		"email": "a@x.com",
	})
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestCatalogEndpoints(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/api/skills/Backend%20Engineer", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var set struct {
		Skills []string `json:"skills"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &set))
	assert.Equal(t, []string{"Go", "SQL"}, set.Skills)

	rec = doJSON(t, router, http.MethodGet, "/api/questions?domain=IT", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var items []map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &items))
	require.Len(t, items, 1)
	assert.NotContains(t, items[0], "answer")
}

func TestUnknownRoute(t *testing.T) {
	router, _ := newTestRouter(t)
	rec := doJSON(t, router, http.MethodGet, "/api/nothing/here", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func doMultipart(t *testing.T, router http.Handler, path, fileField, fileName string, fields map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile(fileField, fileName)
	require.NoError(t, err)
	_, err = part.Write([]byte("file-bytes"))
	require.NoError(t, err)
	for key, value := range fields {
		require.NoError(t, writer.WriteField(key, value))
	}
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, path, &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func storedFileCount(t *testing.T, dir string) int {
	t.Helper()
	var count int
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			count++
		}
		return nil
	})
	require.NoError(t, err)
	return count
}

func TestCertificateUploadRejectsBeforeStoring(t *testing.T) {
	router, uploadDir := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/learners/register", map[string]string{
		"firstName": "Asha", "lastName": "Verma", "email": "a@x.com", "password": "secret123",
		"mobile": "9999999999",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = doMultipart(t, router, "/api/learner/a@x.com/upload-certificate", "certificate", "c.pdf", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())
	assert.Zero(t, storedFileCount(t, uploadDir))

	rec = doMultipart(t, router, "/api/learner/missing@x.com/upload-certificate", "certificate", "c.pdf", map[string]string{
		"title": "AWS SAA",
	})
	assert.Equal(t, http.StatusNotFound, rec.Code, rec.Body.String())
	assert.Zero(t, storedFileCount(t, uploadDir))

	rec = doMultipart(t, router, "/api/learner/a@x.com/upload-certificate", "certificate", "c.pdf", map[string]string{
		"title": "AWS SAA", "issuer": "Amazon", "date": "2024-01-01",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, 1, storedFileCount(t, uploadDir))

	var certs []map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &certs))
	require.Len(t, certs, 1)
	assert.Equal(t, "AWS SAA", certs[0]["title"])
}

func TestProfilePictureUploadUnknownLearnerStoresNothing(t *testing.T) {
	router, uploadDir := newTestRouter(t)

	rec := doMultipart(t, router, "/api/learner/missing@x.com/upload-profile", "profile", "p.png", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code, rec.Body.String())
	assert.Zero(t, storedFileCount(t, uploadDir))
}
