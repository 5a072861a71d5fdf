package http

import "github.com/gofiber/fiber/v2"

// RegisterRoutes wires the full API surface under /api.
func RegisterRoutes(app *fiber.App, h *Handler, authn, admin fiber.Handler) {
	api := app.Group("/api")

	api.Get("/", h.Health)

	api.Get("/resume", h.GetResume)
	api.Put("/resume/personal-info", authn, admin, h.UpdatePersonalInfo)
	api.Put("/resume/highlights", authn, admin, h.UpdateHighlights)
	api.Put("/resume/skills", authn, admin, h.UpdateSkills)

	api.Get("/resume/experience", h.ListExperience)
	api.Post("/resume/experience", authn, admin, h.AddExperience)
	api.Put("/resume/experience/:id", authn, admin, h.UpdateExperience)
	api.Delete("/resume/experience/:id", authn, admin, h.DeleteExperience)

	api.Get("/resume/education", h.ListEducation)
	api.Post("/resume/education", authn, admin, h.AddEducation)
	api.Put("/resume/education/:id", authn, admin, h.UpdateEducation)
	api.Delete("/resume/education/:id", authn, admin, h.DeleteEducation)

	api.Get("/resume/download-pdf", h.DownloadPDF)

	api.Post("/contact", h.SubmitContact)

	api.Post("/auth/login", h.Login)
	api.Get("/auth/verify", authn, h.Verify)
	api.Post("/auth/logout", h.Logout)

	api.Get("/admin/contact-messages", authn, admin, h.ListContactMessages)
	api.Put("/admin/contact-messages/:id/read", authn, admin, h.MarkMessageRead)
}
