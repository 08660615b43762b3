// Package email - Test render nội dung email đơn hàng và validate người nhận.
package email

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderOrderBody_EscapesAndLists(t *testing.T) {
	body := renderOrderBody(OrderSummary{
		OrderID:      "66f000000000000000000001",
		CustomerName: "Nguyễn <Văn> A",
		Items: []OrderItem{
			{Title: "Áo polo", Quantity: 2, Price: "19.50"},
		},
		Total: "39.00",
	})

	assert.Contains(t, body, "66f000000000000000000001")
	assert.Contains(t, body, "Nguyễn &lt;Văn&gt; A", "tên khách phải được escape HTML")
	assert.NotContains(t, body, "<Văn>")
	assert.Contains(t, body, "Áo polo")
	assert.Contains(t, body, "39.00")
}

func TestRenderOrderBody_NoItems(t *testing.T) {
	body := renderOrderBody(OrderSummary{OrderID: "x"})
	if strings.Contains(body, "<table") {
		t.Error("không có item thì không render bảng")
	}
}

func TestSendOrderEmail_RejectsMissingEmail(t *testing.T) {
	s := &Sender{from: "shop@example.com"}
	err := s.SendOrderEmail(OrderSummary{OrderID: "x"}, "")
	assert.Error(t, err, "thiếu email khách phải bị từ chối trước khi dial SMTP")
}

func TestSendOrderEmail_RejectsInvalidEmail(t *testing.T) {
	s := &Sender{from: "shop@example.com"}
	err := s.SendOrderEmail(OrderSummary{OrderID: "x", CustomerEmail: "not-an-email"}, "")
	assert.Error(t, err, "email sai định dạng phải bị từ chối trước khi dial SMTP")
}
