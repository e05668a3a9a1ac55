package controller

import (
	"errors"
	"time"

	"ai-chat-be/internal/dto"
	"ai-chat-be/internal/pkg/flash"
	"ai-chat-be/internal/pkg/serverutils"
	"ai-chat-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IAuthController interface {
	RegisterRoutes(r fiber.Router)
	Home(ctx *fiber.Ctx) error
	RegisterPage(ctx *fiber.Ctx) error
	Register(ctx *fiber.Ctx) error
	LoginPage(ctx *fiber.Ctx) error
	Login(ctx *fiber.Ctx) error
	Logout(ctx *fiber.Ctx) error
}

type authController struct {
	service    service.IAuthService
	flash      *flash.Store
	sessionTTL time.Duration
}

func NewAuthController(svc service.IAuthService, flashStore *flash.Store, sessionTTL time.Duration) IAuthController {
	return &authController{
		service:    svc,
		flash:      flashStore,
		sessionTTL: sessionTTL,
	}
}

func (c *authController) RegisterRoutes(r fiber.Router) {
	r.Get("/", c.Home)
	r.Get("/register", c.RegisterPage)
	r.Post("/register", c.Register)
	r.Get("/login", c.LoginPage)
	r.Post("/login", c.Login)
	r.Get("/logout", c.Logout)
}

func (c *authController) Home(ctx *fiber.Ctx) error {
	if ctx.Cookies(serverutils.SessionCookieName) != "" {
		return ctx.Redirect("/dashboard", fiber.StatusFound)
	}
	return ctx.Render("home", fiber.Map{})
}

func (c *authController) RegisterPage(ctx *fiber.Ctx) error {
	return ctx.Render("register", fiber.Map{
		"Notices": c.flash.PopAll(flash.CookieID(ctx)),
	})
}

func (c *authController) Register(ctx *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := c.service.Register(ctx.Context(), &req); err != nil {
		switch {
		case errors.Is(err, service.ErrUsernameTaken):
			c.flash.Add(flash.CookieID(ctx), "A user with that name already exists.")
		case errors.Is(err, service.ErrStorage):
			c.flash.Add(flash.CookieID(ctx), "Registration failed. Please try again later.")
		default:
			c.flash.Add(flash.CookieID(ctx), "Username must be 3-80 characters and password at least 6.")
		}
		return ctx.Redirect("/register", fiber.StatusFound)
	}

	c.flash.Add(flash.CookieID(ctx), "Registration successful! Please log in.")
	return ctx.Redirect("/login", fiber.StatusFound)
}

func (c *authController) LoginPage(ctx *fiber.Ctx) error {
	return ctx.Render("login", fiber.Map{
		"Notices": c.flash.PopAll(flash.CookieID(ctx)),
	})
}

func (c *authController) Login(ctx *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	res, err := c.service.Login(ctx.Context(), &req)
	if err != nil {
		c.flash.Add(flash.CookieID(ctx), "Invalid username or password.")
		return ctx.Redirect("/login", fiber.StatusFound)
	}

	serverutils.SetSessionCookie(ctx, res.Token, c.sessionTTL)
	return ctx.Redirect("/dashboard", fiber.StatusFound)
}

func (c *authController) Logout(ctx *fiber.Ctx) error {
	serverutils.ClearSessionCookie(ctx)
	return ctx.Redirect("/", fiber.StatusFound)
}
