// Package userhdl chứa HTTP handler cho domain người dùng.
package userhdl

import (
	"fmt"

	basehdl "ayira_commerce/internal/api/base/handler"
	basesvc "ayira_commerce/internal/api/base/service"
	userdto "ayira_commerce/internal/api/user/dto"
	usermodels "ayira_commerce/internal/api/user/models"
	usersvc "ayira_commerce/internal/api/user/service"
	"ayira_commerce/internal/common"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MsgAlreadyRegistered là message trả về khi email đã đăng ký trước đó.
// Frontend hiện hữu so khớp nguyên văn chuỗi này, không được đổi.
const MsgAlreadyRegistered = "You are already registered. Please log in."

// UserHandler xử lý các request quản lý người dùng
type UserHandler struct {
	*basehdl.BaseHandler[usermodels.User, userdto.UserCreateInput, userdto.UserUpdateInput]
	userService *usersvc.UserService
}

// NewUserHandler tạo instance mới của UserHandler
func NewUserHandler() (*UserHandler, error) {
	userService, err := usersvc.NewUserService()
	if err != nil {
		return nil, fmt.Errorf("failed to create user service: %v", err)
	}
	baseHandler := basehdl.NewBaseHandler[usermodels.User, userdto.UserCreateInput, userdto.UserUpdateInput](userService)
	return &UserHandler{
		BaseHandler: baseHandler,
		userService: userService,
	}, nil
}

// HandleRegister đăng ký người dùng mới (POST /api/post-users).
// Email trùng trả về HTTP 200 với message cố định và insertedId null
// để giữ nguyên contract với frontend cũ.
func (h *UserHandler) HandleRegister(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input userdto.UserCreateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		user, err := h.TransformCreateInputToModel(&input)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		created, duplicated, err := h.userService.Register(c.Context(), *user)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if duplicated {
			return basehdl.JSONResponse(c, common.StatusOK, fiber.Map{
				"message":    MsgAlreadyRegistered,
				"insertedId": nil,
			})
		}

		h.HandleResponse(c, created, nil)
		return nil
	})
}

// HandleFindAll trả về toàn bộ người dùng (GET /api/find-all-users)
func (h *UserHandler) HandleFindAll(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		users, err := h.userService.Find(c.Context(), bson.M{}, nil)
		h.HandleResponse(c, users, err)
		return nil
	})
}

// HandleSetRole đổi vai trò người dùng (PATCH /api/users/:id/role)
func (h *UserHandler) HandleSetRole(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id := h.GetIDFromContext(c)
		if !primitive.IsValidObjectID(id) {
			h.HandleResponse(c, nil, common.ErrInvalidID)
			return nil
		}
		objID, _ := primitive.ObjectIDFromHex(id)

		var input userdto.UserSetRoleInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		updated, err := h.userService.UpdateById(c.Context(), objID, &basesvc.UpdateData{
			Set: map[string]interface{}{"role": input.Role},
		})
		h.HandleResponse(c, updated, err)
		return nil
	})
}
