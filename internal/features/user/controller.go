package user

import (
	"homestock/internal/common/apperror"

	"github.com/gofiber/fiber/v2"
)

type UserController struct {
	Service UserService
}

func NewUserController(service UserService) *UserController {
	return &UserController{Service: service}
}

type signupRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type signinRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Signup godoc
// @Summary      Register a new user
// @Tags         user
// @Accept       json
// @Produce      json
// @Router       /api/v1/user/signup [post]
func (c *UserController) Signup(ctx *fiber.Ctx) error {
	var req signupRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	usr, err := c.Service.Signup(ctx.UserContext(), req.Username, req.Email, req.Password)
	if err != nil {
		return apperror.Respond(ctx, err)
	}

	return ctx.Status(fiber.StatusCreated).JSON(usr)
}

// Signin godoc
// @Summary      Authenticate and obtain a bearer token
// @Tags         user
// @Accept       json
// @Produce      json
// @Router       /api/v1/user/signin [post]
func (c *UserController) Signin(ctx *fiber.Ctx) error {
	var req signinRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	resp, err := c.Service.Signin(ctx.UserContext(), req.Username, req.Password)
	if err != nil {
		return apperror.Respond(ctx, err)
	}

	return ctx.JSON(resp)
}

// UserInfo godoc
// @Summary      Public profile for a user id
// @Tags         user
// @Produce      json
// @Router       /api/v1/user/info/{id} [get]
func (c *UserController) UserInfo(ctx *fiber.Ctx) error {
	info, err := c.Service.UserInfo(ctx.UserContext(), ctx.Params("id"))
	if err != nil {
		return apperror.Respond(ctx, err)
	}

	return ctx.JSON(info)
}
