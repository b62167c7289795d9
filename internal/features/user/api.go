package user

import (
	"github.com/gofiber/fiber/v2"
)

type UserApi struct {
	controller *UserController
}

func NewUserApi(controller *UserController) *UserApi {
	return &UserApi{
		controller: controller,
	}
}

// Setup registers all user-related routes. Signup/signin are public.
func (h *UserApi) Setup(app *fiber.App) {
	users := app.Group("/api/v1/user")

	users.Post("/signup", h.controller.Signup)
	users.Post("/signin", h.controller.Signin)
	users.Get("/info/:id", h.controller.UserInfo)
}
