package http

import (
	"errors"
	"strings"

	"resume-api/internal/domain"
	"resume-api/internal/pdf"
	"resume-api/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	resumes  *usecase.ResumeService
	contacts *usecase.ContactService
	auth     *usecase.AuthService
	renderer *pdf.Renderer
}

func NewHandler(resumes *usecase.ResumeService, contacts *usecase.ContactService, auth *usecase.AuthService, renderer *pdf.Renderer) *Handler {
	return &Handler{resumes: resumes, contacts: contacts, auth: auth, renderer: renderer}
}

// success and fail wrap responses in the envelope the frontend expects.
func success(c *fiber.Ctx, message string, data fiber.Map) error {
	resp := fiber.Map{"success": true, "message": message}
	if data != nil {
		resp["data"] = data
	}
	return c.JSON(resp)
}

func fail(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"success": false, "message": message})
}

// respondError translates service failures to HTTP statuses. Missing ids
// and a missing resume are 404; everything else is a server error.
func respondError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrNoActiveResume):
		return fail(c, fiber.StatusNotFound, err.Error())
	default:
		log.Error().Err(err).Str("path", c.Path()).Msg("request failed")
		return fail(c, fiber.StatusInternalServerError, "internal server error")
	}
}

func (h *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"message": "resume API is running", "status": "healthy"})
}

func (h *Handler) GetResume(c *fiber.Ctx) error {
	r, err := h.resumes.Get(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(r)
}

func (h *Handler) UpdatePersonalInfo(c *fiber.Ctx) error {
	if err := validateJSON(personalInfoSchema, c.Body()); err != nil {
		return fail(c, fiber.StatusBadRequest, err.Error())
	}
	var patch domain.PersonalInfoPatch
	if err := c.BodyParser(&patch); err != nil {
		return fail(c, fiber.StatusBadRequest, "invalid payload")
	}
	if patch.Empty() {
		return fail(c, fiber.StatusBadRequest, "no valid data provided")
	}
	if err := h.resumes.MergePersonalInfo(c.UserContext(), patch); err != nil {
		return respondError(c, err)
	}
	return success(c, "personal information updated", nil)
}

func (h *Handler) UpdateHighlights(c *fiber.Ctx) error {
	if err := validateJSON(highlightsSchema, c.Body()); err != nil {
		return fail(c, fiber.StatusBadRequest, err.Error())
	}
	var req struct {
		Highlights []string `json:"highlights"`
	}
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "invalid payload")
	}
	if err := h.resumes.ReplaceHighlights(c.UserContext(), req.Highlights); err != nil {
		return respondError(c, err)
	}
	return success(c, "highlights updated", nil)
}

func (h *Handler) UpdateSkills(c *fiber.Ctx) error {
	if err := validateJSON(skillsSchema, c.Body()); err != nil {
		return fail(c, fiber.StatusBadRequest, err.Error())
	}
	var req struct {
		Skills []string `json:"skills"`
	}
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "invalid payload")
	}
	if err := h.resumes.ReplaceSkills(c.UserContext(), req.Skills); err != nil {
		return respondError(c, err)
	}
	return success(c, "skills updated", nil)
}

func (h *Handler) ListExperience(c *fiber.Ctx) error {
	r, err := h.resumes.Get(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"experiences": r.Experience})
}

func (h *Handler) AddExperience(c *fiber.Ctx) error {
	if err := validateJSON(experienceSchema, c.Body()); err != nil {
		return fail(c, fiber.StatusBadRequest, err.Error())
	}
	var in domain.ExperienceInput
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "invalid payload")
	}
	id, err := h.resumes.AddExperience(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return success(c, "experience added", fiber.Map{"id": id})
}

func (h *Handler) UpdateExperience(c *fiber.Ctx) error {
	if err := validateJSON(experiencePatchSchema, c.Body()); err != nil {
		return fail(c, fiber.StatusBadRequest, err.Error())
	}
	var patch domain.ExperiencePatch
	if err := c.BodyParser(&patch); err != nil {
		return fail(c, fiber.StatusBadRequest, "invalid payload")
	}
	if patch.Empty() {
		return fail(c, fiber.StatusBadRequest, "no valid data provided")
	}
	if err := h.resumes.UpdateExperience(c.UserContext(), c.Params("id"), patch); err != nil {
		return respondError(c, err)
	}
	return success(c, "experience updated", nil)
}

func (h *Handler) DeleteExperience(c *fiber.Ctx) error {
	if err := h.resumes.DeleteExperience(c.UserContext(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return success(c, "experience deleted", nil)
}

func (h *Handler) ListEducation(c *fiber.Ctx) error {
	r, err := h.resumes.Get(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"education": r.Education})
}

func (h *Handler) AddEducation(c *fiber.Ctx) error {
	if err := validateJSON(educationSchema, c.Body()); err != nil {
		return fail(c, fiber.StatusBadRequest, err.Error())
	}
	var in domain.EducationInput
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "invalid payload")
	}
	id, err := h.resumes.AddEducation(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return success(c, "education added", fiber.Map{"id": id})
}

func (h *Handler) UpdateEducation(c *fiber.Ctx) error {
	if err := validateJSON(educationPatchSchema, c.Body()); err != nil {
		return fail(c, fiber.StatusBadRequest, err.Error())
	}
	var patch domain.EducationPatch
	if err := c.BodyParser(&patch); err != nil {
		return fail(c, fiber.StatusBadRequest, "invalid payload")
	}
	if patch.Empty() {
		return fail(c, fiber.StatusBadRequest, "no valid data provided")
	}
	if err := h.resumes.UpdateEducation(c.UserContext(), c.Params("id"), patch); err != nil {
		return respondError(c, err)
	}
	return success(c, "education updated", nil)
}

func (h *Handler) DeleteEducation(c *fiber.Ctx) error {
	if err := h.resumes.DeleteEducation(c.UserContext(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return success(c, "education deleted", nil)
}

func (h *Handler) DownloadPDF(c *fiber.Ctx) error {
	r, err := h.resumes.Get(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.renderer.Render(r)
	if err != nil {
		log.Error().Err(err).Msg("pdf generation failed")
		return fail(c, fiber.StatusInternalServerError, "failed to generate PDF")
	}

	filename := "Resume.pdf"
	if name := r.PersonalInfo.Name; name != "" {
		filename = strings.ReplaceAll(name, " ", "_") + "_Resume.pdf"
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(out)
}

func (h *Handler) SubmitContact(c *fiber.Ctx) error {
	if err := validateJSON(contactSchema, c.Body()); err != nil {
		return fail(c, fiber.StatusBadRequest, err.Error())
	}
	var in domain.ContactInput
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "invalid payload")
	}
	m, err := h.contacts.Submit(c.UserContext(), in, c.IP())
	if err != nil {
		return respondError(c, err)
	}
	return success(c, "message sent successfully", fiber.Map{"message_id": m.ID.String()})
}

func (h *Handler) Login(c *fiber.Ctx) error {
	if err := validateJSON(loginSchema, c.Body()); err != nil {
		return fail(c, fiber.StatusBadRequest, err.Error())
	}
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "invalid payload")
	}

	token, _, err := h.auth.Login(c.UserContext(), req.Username, req.Password)
	if errors.Is(err, domain.ErrInvalidCredentials) {
		c.Set(fiber.HeaderWWWAuthenticate, "Bearer")
		return fail(c, fiber.StatusUnauthorized, "incorrect username or password")
	}
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"access_token": token, "token_type": "bearer"})
}

func (h *Handler) Verify(c *fiber.Ctx) error {
	u := currentUser(c)
	return success(c, "token is valid", fiber.Map{
		"username": u.Username,
		"role":     u.Role,
		"email":    u.Email,
	})
}

func (h *Handler) Logout(c *fiber.Ctx) error {
	// stateless tokens: the client just drops the token
	return success(c, "logged out", nil)
}

func (h *Handler) ListContactMessages(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 50)
	msgs, err := h.contacts.List(c.UserContext(), limit)
	if err != nil {
		return respondError(c, err)
	}
	if msgs == nil {
		msgs = []domain.ContactMessage{}
	}
	return c.JSON(fiber.Map{"messages": msgs})
}

func (h *Handler) MarkMessageRead(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "invalid message id")
	}
	if err := h.contacts.MarkRead(c.UserContext(), id); err != nil {
		return respondError(c, err)
	}
	return success(c, "message marked as read", nil)
}
