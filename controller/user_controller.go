package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jvdberg/go-api-base/apperror"
	"github.com/jvdberg/go-api-base/model"
	"github.com/jvdberg/go-api-base/store"
)

type UserController interface {
	List(c fiber.Ctx) error
	Get(c fiber.Ctx) error
	Create(c fiber.Ctx) error
	Update(c fiber.Ctx) error
	Delete(c fiber.Ctx) error
}

type userController struct {
	userStore store.UserStore
	validate  *validator.Validate
}

func NewUserController(userStore store.UserStore, validate *validator.Validate) UserController {
	return &userController{
		userStore: userStore,
		validate:  validate,
	}
}

type createUserRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=72"` // bcrypt input limit
}

type updateUserRequest struct {
	Name     *string `json:"name" validate:"omitempty,min=1"`
	Email    *string `json:"email" validate:"omitempty,email"`
	Password *string `json:"password" validate:"omitempty,min=8,max=72"`
}

func (controller *userController) List(c fiber.Ctx) error {
	users, err := controller.userStore.All(c.Context())
	if err != nil {
		return apperror.Internal("listing users failed", err)
	}

	publicUsers := make([]model.PublicUser, 0, len(users))
	for _, user := range users {
		publicUsers = append(publicUsers, user.Public())
	}

	return c.JSON(publicUsers)
}

func (controller *userController) Get(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return apperror.NotFound("user not found")
	}

	user, err := controller.userStore.GetById(c.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return apperror.NotFound("user not found")
		}
		return apperror.Internal("getting user failed", err)
	}

	return c.JSON(user.Public())
}

func (controller *userController) Create(c fiber.Ctx) error {
	var request createUserRequest
	if err := decodeBody(c, controller.validate, &request); err != nil {
		return err
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(request.Password), bcrypt.DefaultCost)
	if err != nil {
		return apperror.Internal("hashing password failed", err)
	}

	now := time.Now().UTC().Unix()
	user := model.User{
		Id:           uuid.New(),
		Name:         request.Name,
		Email:        request.Email,
		PasswordHash: passwordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := controller.userStore.Create(c.Context(), user); err != nil {
		if errors.Is(err, store.ErrUserAlreadyExists) {
			return apperror.Conflict("a user with this email already exists", err)
		}
		return apperror.Internal("creating user failed", err)
	}

	return c.Status(http.StatusCreated).JSON(user.Public())
}

func (controller *userController) Update(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return apperror.NotFound("user not found")
	}

	var request updateUserRequest
	if err := decodeBody(c, controller.validate, &request); err != nil {
		return err
	}

	user, err := controller.userStore.GetById(c.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return apperror.NotFound("user not found")
		}
		return apperror.Internal("getting user failed", err)
	}

	if request.Name != nil {
		user.Name = *request.Name
	}
	if request.Email != nil {
		user.Email = *request.Email
	}
	if request.Password != nil {
		passwordHash, err := bcrypt.GenerateFromPassword([]byte(*request.Password), bcrypt.DefaultCost)
		if err != nil {
			return apperror.Internal("hashing password failed", err)
		}
		user.PasswordHash = passwordHash
	}
	user.UpdatedAt = time.Now().UTC().Unix()

	if err := controller.userStore.Update(c.Context(), user); err != nil {
		if errors.Is(err, store.ErrUserAlreadyExists) {
			return apperror.Conflict("a user with this email already exists", err)
		}
		if errors.Is(err, store.ErrUserNotFound) {
			return apperror.NotFound("user not found")
		}
		return apperror.Internal("updating user failed", err)
	}

	return c.JSON(user.Public())
}

func (controller *userController) Delete(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return apperror.NotFound("user not found")
	}

	if err := controller.userStore.DeleteById(c.Context(), id); err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return apperror.NotFound("user not found")
		}
		return apperror.Internal("deleting user failed", err)
	}

	return c.JSON(fiber.Map{
		"deleted": true,
	})
}
