package handlers

import (
	"net/http"

	"skillbridge/internal/app"
	"skillbridge/internal/common"
	"skillbridge/internal/domain/learner"
	"skillbridge/internal/http/response"
)

type ProfileHandler struct {
	profiles *app.ProfileService
}

func NewProfileHandler(profiles *app.ProfileService) *ProfileHandler {
	return &ProfileHandler{profiles: profiles}
}

type onboardRequest struct {
	Email      string              `json:"email" validate:"required,email"`
	ProfilePic string              `json:"profilePic"`
	Sector     string              `json:"sector"`
	Domains    []string            `json:"domains"`
	Experience []learner.Work      `json:"experience"`
	Academic   []learner.Education `json:"academic"`
	SoftSkills []string            `json:"softSkills"`
}

func (h *ProfileHandler) Onboard(w http.ResponseWriter, r *http.Request) {
	var req onboardRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	if err := validateStruct(req); err != nil {
		response.Error(w, err)
		return
	}
	_, err := h.profiles.Onboard(r.Context(), req.Email, app.OnboardInput{
		ProfilePic: req.ProfilePic,
		Sector:     req.Sector,
		Domains:    req.Domains,
		Experience: req.Experience,
		Academic:   req.Academic,
		SoftSkills: req.SoftSkills,
	})
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, messageResponse{Message: "Onboarding complete"})
}

func (h *ProfileHandler) Get(w http.ResponseWriter, r *http.Request) {
	email, err := pathParam(r, 1)
	if err != nil {
		response.Error(w, err)
		return
	}
	profile, err := h.profiles.Get(r.Context(), email)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, profile)
}

type profileUpdateRequest struct {
	FirstName         string              `json:"firstName"`
	LastName          string              `json:"lastName"`
	Mobile            string              `json:"mobile"`
	DOB               string              `json:"dob"`
	Gender            string              `json:"gender"`
	Sector            string              `json:"sector"`
	YearsOfExperience string              `json:"yearsOfExperience"`
	About             string              `json:"about"`
	Domains           []string            `json:"domains"`
	SoftSkills        []string            `json:"softSkills"`
	Education         []learner.Education `json:"education"`
	Languages         []learner.Language  `json:"languages"`
	Work              []learner.Work      `json:"work"`
}

func (h *ProfileHandler) Update(w http.ResponseWriter, r *http.Request) {
	email, err := pathParam(r, 1)
	if err != nil {
		response.Error(w, err)
		return
	}
	var req profileUpdateRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	profile, err := h.profiles.Update(r.Context(), email, app.ProfileUpdate{
		FirstName:         req.FirstName,
		LastName:          req.LastName,
		Mobile:            req.Mobile,
		DOB:               req.DOB,
		Gender:            req.Gender,
		Sector:            req.Sector,
		YearsOfExperience: req.YearsOfExperience,
		About:             req.About,
		Domains:           req.Domains,
		SoftSkills:        req.SoftSkills,
		Education:         req.Education,
		Languages:         req.Languages,
		Work:              req.Work,
	})
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, profile)
}

type skillRequest struct {
	Name        string `json:"name"`
	Proficiency int    `json:"proficiency"`
}

func (h *ProfileHandler) AddSkill(w http.ResponseWriter, r *http.Request) {
	email, err := pathParam(r, 2)
	if err != nil {
		response.Error(w, err)
		return
	}
	var req skillRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	profile, err := h.profiles.AddSkill(r.Context(), email, learner.Skill{Name: req.Name, Proficiency: req.Proficiency})
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, map[string]interface{}{"message": "Skill added", "skills": profile.Skills})
}

type verifySkillRequest struct {
	Name string `json:"name" validate:"required"`
}

func (h *ProfileHandler) VerifySkillByName(w http.ResponseWriter, r *http.Request) {
	email, err := pathParam(r, 2)
	if err != nil {
		response.Error(w, err)
		return
	}
	var req verifySkillRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	if err := validateStruct(req); err != nil {
		response.Error(w, err)
		return
	}
	profile, err := h.profiles.VerifySkillByName(r.Context(), email, req.Name)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, map[string]interface{}{"message": "Skill verified", "skills": profile.Skills})
}

func (h *ProfileHandler) VerifySkillAt(w http.ResponseWriter, r *http.Request) {
	email, err := pathParam(r, 4)
	if err != nil {
		response.Error(w, err)
		return
	}
	index, err := indexParam(r, 1)
	if err != nil {
		response.Error(w, err)
		return
	}
	profile, err := h.profiles.VerifySkillAt(r.Context(), email, index)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, map[string]interface{}{"message": "Skill verified", "skills": profile.Skills})
}

// AddToSection appends one item to the named sub-collection. The payload
// shape depends on the section.
func (h *ProfileHandler) AddToSection(w http.ResponseWriter, r *http.Request) {
	email, err := pathParam(r, 3)
	if err != nil {
		response.Error(w, err)
		return
	}
	section, err := pathParam(r, 1)
	if err != nil {
		response.Error(w, err)
		return
	}
	var profile *learner.Learner
	switch app.Section(section) {
	case app.SectionSkills:
		var req skillRequest
		if err := decodeJSON(r, &req); err != nil {
			response.Error(w, err)
			return
		}
		profile, err = h.profiles.AddSkill(r.Context(), email, learner.Skill{Name: req.Name, Proficiency: req.Proficiency})
	case app.SectionCertifications:
		var req learner.Certification
		if err := decodeJSON(r, &req); err != nil {
			response.Error(w, err)
			return
		}
		profile, err = h.profiles.AddCertification(r.Context(), email, req)
	case app.SectionEducation:
		var req learner.Education
		if err := decodeJSON(r, &req); err != nil {
			response.Error(w, err)
			return
		}
		profile, err = h.profiles.AddEducation(r.Context(), email, req)
	case app.SectionLanguages:
		var req learner.Language
		if err := decodeJSON(r, &req); err != nil {
			response.Error(w, err)
			return
		}
		profile, err = h.profiles.AddLanguage(r.Context(), email, req)
	case app.SectionWork:
		var req learner.Work
		if err := decodeJSON(r, &req); err != nil {
			response.Error(w, err)
			return
		}
		profile, err = h.profiles.AddWork(r.Context(), email, req)
	default:
		response.Error(w, common.NewValidationError("invalid section", map[string]string{"section": "unknown profile section"}))
		return
	}
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, profile)
}

func (h *ProfileHandler) RemoveFromSection(w http.ResponseWriter, r *http.Request) {
	email, err := pathParam(r, 4)
	if err != nil {
		response.Error(w, err)
		return
	}
	section, err := pathParam(r, 2)
	if err != nil {
		response.Error(w, err)
		return
	}
	index, err := indexParam(r, 1)
	if err != nil {
		response.Error(w, err)
		return
	}
	profile, err := h.profiles.RemoveFromSection(r.Context(), email, app.Section(section), index)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, profile)
}
