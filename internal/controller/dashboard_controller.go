package controller

import (
	"ai-chat-be/internal/dto"
	"ai-chat-be/internal/pkg/flash"
	"ai-chat-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IDashboardController interface {
	RegisterRoutes(r fiber.Router, session fiber.Handler)
	Dashboard(ctx *fiber.Ctx) error
}

type dashboardController struct {
	service service.IDashboardService
	flash   *flash.Store
}

func NewDashboardController(svc service.IDashboardService, flashStore *flash.Store) IDashboardController {
	return &dashboardController{
		service: svc,
		flash:   flashStore,
	}
}

func (c *dashboardController) RegisterRoutes(r fiber.Router, session fiber.Handler) {
	r.Get("/dashboard", session, c.Dashboard)
	r.Post("/dashboard", session, c.Dashboard)
}

// Dashboard serves both the view and the form submission. The session
// middleware guarantees user_id/username locals are present here.
func (c *dashboardController) Dashboard(ctx *fiber.Ctx) error {
	userId := ctx.Locals("user_id").(uuid.UUID)
	username := ctx.Locals("username").(string)

	form := &dto.DashboardForm{}
	if ctx.Method() == fiber.MethodPost {
		if err := ctx.BodyParser(form); err != nil {
			return err
		}
	}

	view := c.service.HandleDashboard(ctx.Context(), userId, username, form)

	// Pending flashes (e.g. from the login redirect) come before this
	// request's own notices.
	notices := append(c.flash.PopAll(flash.CookieID(ctx)), view.Notices...)

	return ctx.Render("dashboard", fiber.Map{
		"Username": view.Username,
		"Settings": view.Settings,
		"History":  view.History,
		"Notices":  notices,
	})
}
