package handlers

import (
	"net/http"

	"skillbridge/internal/app"
	"skillbridge/internal/http/response"
)

type JobHandler struct {
	jobs *app.JobService
}

func NewJobHandler(jobs *app.JobService) *JobHandler {
	return &JobHandler{jobs: jobs}
}

type jobRequest struct {
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	Skills          []string `json:"skills"`
	Qualification   string   `json:"qualification"`
	Experience      string   `json:"experience"`
	Salary          string   `json:"salary"`
	ApplicationLink string   `json:"applicationLink"`
	Status          string   `json:"status"`
}

func (r jobRequest) toInput() app.JobInput {
	return app.JobInput{
		Title:           r.Title,
		Description:     r.Description,
		Skills:          r.Skills,
		Qualification:   r.Qualification,
		Experience:      r.Experience,
		Salary:          r.Salary,
		ApplicationLink: r.ApplicationLink,
		Status:          r.Status,
	}
}

func (h *JobHandler) Post(w http.ResponseWriter, r *http.Request) {
	email, err := pathParam(r, 2)
	if err != nil {
		response.Error(w, err)
		return
	}
	var req jobRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	job, err := h.jobs.PostJob(r.Context(), email, req.toInput())
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, job)
}

func (h *JobHandler) List(w http.ResponseWriter, r *http.Request) {
	email, err := pathParam(r, 2)
	if err != nil {
		response.Error(w, err)
		return
	}
	jobs, err := h.jobs.ListJobs(r.Context(), email)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, jobs)
}

func (h *JobHandler) Update(w http.ResponseWriter, r *http.Request) {
	email, err := pathParam(r, 3)
	if err != nil {
		response.Error(w, err)
		return
	}
	jobID, err := pathParam(r, 1)
	if err != nil {
		response.Error(w, err)
		return
	}
	var req jobRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	job, err := h.jobs.UpdateJob(r.Context(), email, jobID, req.toInput())
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, map[string]interface{}{"message": "Job updated successfully", "job": job})
}

func (h *JobHandler) Delete(w http.ResponseWriter, r *http.Request) {
	email, err := pathParam(r, 3)
	if err != nil {
		response.Error(w, err)
		return
	}
	jobID, err := pathParam(r, 1)
	if err != nil {
		response.Error(w, err)
		return
	}
	if err := h.jobs.DeleteJob(r.Context(), email, jobID); err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, messageResponse{Message: "Job deleted successfully"})
}

func (h *JobHandler) Applicants(w http.ResponseWriter, r *http.Request) {
	email, err := pathParam(r, 4)
	if err != nil {
		response.Error(w, err)
		return
	}
	jobID, err := pathParam(r, 2)
	if err != nil {
		response.Error(w, err)
		return
	}
	applicants, err := h.jobs.ListApplicants(r.Context(), email, jobID)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, map[string]interface{}{"applicants": applicants})
}

type applyRequest struct {
	Email string `json:"email" validate:"required,email"`
}

func (h *JobHandler) Apply(w http.ResponseWriter, r *http.Request) {
	email, err := pathParam(r, 4)
	if err != nil {
		response.Error(w, err)
		return
	}
	jobID, err := pathParam(r, 2)
	if err != nil {
		response.Error(w, err)
		return
	}
	var req applyRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	if err := validateStruct(req); err != nil {
		response.Error(w, err)
		return
	}
	applicant, err := h.jobs.Apply(r.Context(), email, jobID, req.Email)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, applicant)
}
