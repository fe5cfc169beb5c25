package handlers

import (
	"mime/multipart"
	"net/http"

	"skillbridge/internal/app"
	"skillbridge/internal/common"
	"skillbridge/internal/domain/learner"
	"skillbridge/internal/http/response"
	"skillbridge/internal/storage"
)

type UploadHandler struct {
	profiles *app.ProfileService
	store    storage.Store
	maxBytes int64
}

func NewUploadHandler(profiles *app.ProfileService, store storage.Store, maxBytes int64) *UploadHandler {
	return &UploadHandler{profiles: profiles, store: store, maxBytes: maxBytes}
}

func (h *UploadHandler) ProfilePicture(w http.ResponseWriter, r *http.Request) {
	email, err := pathParam(r, 2)
	if err != nil {
		response.Error(w, err)
		return
	}
	if _, err := h.profiles.Get(r.Context(), email); err != nil {
		response.Error(w, err)
		return
	}
	file, header, err := h.formFile(r, "profile")
	if err != nil {
		response.Error(w, err)
		return
	}
	defer file.Close()
	path, err := h.store.Save(r.Context(), storage.KindProfile, header.Filename, file)
	if err != nil {
		response.Error(w, err)
		return
	}
	profileLink := "/profile/" + email
	if _, err := h.profiles.AttachProfileAssets(r.Context(), email, path, profileLink); err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, map[string]string{"profilePic": path, "profileLink": profileLink})
}

func (h *UploadHandler) Certificate(w http.ResponseWriter, r *http.Request) {
	email, err := pathParam(r, 2)
	if err != nil {
		response.Error(w, err)
		return
	}
	file, header, err := h.formFile(r, "certificate")
	if err != nil {
		response.Error(w, err)
		return
	}
	defer file.Close()
	// Reject before writing to the store so a failed request leaves no
	// orphaned file behind.
	title := r.FormValue("title")
	if title == "" {
		response.Error(w, common.NewValidationError("invalid certification", map[string]string{"title": "title is required"}))
		return
	}
	if _, err := h.profiles.Get(r.Context(), email); err != nil {
		response.Error(w, err)
		return
	}
	path, err := h.store.Save(r.Context(), storage.KindCertificate, header.Filename, file)
	if err != nil {
		response.Error(w, err)
		return
	}
	cert := learner.Certification{
		Title:    title,
		Issuer:   r.FormValue("issuer"),
		Date:     r.FormValue("date"),
		FilePath: path,
	}
	profile, err := h.profiles.AddCertification(r.Context(), email, cert)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, profile.Certifications)
}

func (h *UploadHandler) formFile(r *http.Request, field string) (multipart.File, *multipart.FileHeader, error) {
	if err := r.ParseMultipartForm(h.maxBytes); err != nil {
		return nil, nil, common.NewError(common.CodeValidation, "invalid multipart body", err)
	}
	file, header, err := r.FormFile(field)
	if err != nil {
		return nil, nil, common.NewValidationError("missing file", map[string]string{field: field + " file is required"})
	}
	return file, header, nil
}
