// Package orderhdl chứa HTTP handler cho domain đơn hàng.
package orderhdl

import (
	"fmt"

	basehdl "ayira_commerce/internal/api/base/handler"
	orderdto "ayira_commerce/internal/api/order/dto"
	ordermodels "ayira_commerce/internal/api/order/models"
	ordersvc "ayira_commerce/internal/api/order/service"
	"ayira_commerce/internal/delivery/email"
	"ayira_commerce/internal/global"

	"github.com/gofiber/fiber/v3"
)

// OrderHandler xử lý các request quản lý đơn hàng
type OrderHandler struct {
	*basehdl.BaseHandler[ordermodels.Order, orderdto.OrderCreateInput, orderdto.OrderUpdateInput]
	orderService *ordersvc.OrderService
	emailSender  *email.Sender
}

// NewOrderHandler tạo instance mới của OrderHandler
func NewOrderHandler() (*OrderHandler, error) {
	orderService, err := ordersvc.NewOrderService()
	if err != nil {
		return nil, fmt.Errorf("failed to create order service: %v", err)
	}
	baseHandler := basehdl.NewBaseHandler[ordermodels.Order, orderdto.OrderCreateInput, orderdto.OrderUpdateInput](orderService)
	return &OrderHandler{
		BaseHandler:  baseHandler,
		orderService: orderService,
		emailSender:  email.NewSender(global.ServerConfig),
	}, nil
}

// HandleCreate đặt đơn hàng mới (POST /orders)
func (h *OrderHandler) HandleCreate(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input orderdto.OrderCreateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		order := ordermodels.Order{
			Email:       input.Email,
			Name:        input.Name,
			Phone:       input.Phone,
			Address:     input.Address,
			TotalAmount: input.TotalAmount,
			Currency:    input.Currency,
			Details:     input.Details,
		}
		for _, item := range input.Items {
			order.Items = append(order.Items, ordermodels.OrderItem{
				ProductID: item.ProductID,
				Title:     item.Title,
				Quantity:  item.Quantity,
				Price:     item.Price,
				Size:      item.Size,
				Color:     item.Color,
			})
		}

		created, err := h.orderService.InsertOne(c.Context(), order)
		h.HandleResponse(c, created, err)
		return nil
	})
}

// HandleFindAll liệt kê đơn hàng, hỗ trợ tìm kiếm không phân biệt hoa thường
// qua query `search` và phân trang qua `page`/`limit` (GET /orders)
func (h *OrderHandler) HandleFindAll(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		page, limit := h.ParsePagination(c)
		result, err := h.orderService.Search(c.Context(), c.Query("search"), page, limit)
		h.HandleResponse(c, result, err)
		return nil
	})
}

// HandleSendOrderEmail gửi email xác nhận đơn hàng cho khách và địa chỉ
// thông báo nội bộ (POST /send-order-emails)
func (h *OrderHandler) HandleSendOrderEmail(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input orderdto.SendOrderEmailInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		order, err := h.orderService.FindById(c.Context(), input.OrderID)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		summary := email.OrderSummary{
			OrderID:       order.ID.Hex(),
			CustomerEmail: order.Email,
			CustomerName:  order.Name,
			Total:         formatAmount(order.TotalAmount, order.Currency),
		}
		for _, item := range order.Items {
			summary.Items = append(summary.Items, email.OrderItem{
				Title:    item.Title,
				Quantity: item.Quantity,
				Price:    formatAmount(item.Price, order.Currency),
			})
		}

		err = h.emailSender.SendOrderEmail(summary, global.ServerConfig.OrderNotifyEmail)
		h.HandleResponse(c, fiber.Map{"orderId": order.ID.Hex(), "sentTo": order.Email}, err)
		return nil
	})
}

// formatAmount format số tiền kèm mã tiền tệ (nếu có)
func formatAmount(amount float64, currency string) string {
	if currency == "" {
		return fmt.Sprintf("%.2f", amount)
	}
	return fmt.Sprintf("%.2f %s", amount, currency)
}
