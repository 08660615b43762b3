// Package email gửi email giao dịch qua SMTP (gomail).
package email

import (
	"fmt"
	"html"
	"strings"

	"gopkg.in/gomail.v2"

	"ayira_commerce/config"
	"ayira_commerce/internal/common"
	"ayira_commerce/internal/logger"
	"ayira_commerce/internal/utility"
)

// Sender gửi email qua SMTP server đã cấu hình.
type Sender struct {
	dialer *gomail.Dialer
	from   string
}

// NewSender tạo Sender từ cấu hình SMTP.
func NewSender(cfg *config.Configuration) *Sender {
	return &Sender{
		dialer: gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword),
		from:   cfg.SMTPUser,
	}
}

// OrderSummary là nội dung email xác nhận đơn hàng.
type OrderSummary struct {
	OrderID       string
	CustomerEmail string
	CustomerName  string
	Items         []OrderItem
	Total         string
}

// OrderItem là một dòng hàng trong email đơn hàng.
type OrderItem struct {
	Title    string
	Quantity int64
	Price    string
}

// SendOrderEmail gửi email tóm tắt đơn hàng tới khách và địa chỉ thông báo nội bộ.
func (s *Sender) SendOrderEmail(summary OrderSummary, notifyAddr string) error {
	if summary.CustomerEmail == "" {
		return common.NewError(
			common.ErrCodeValidationInput,
			"Email khách hàng không được để trống",
			common.StatusBadRequest,
			nil,
		)
	}
	if err := utility.ValidateEmail(summary.CustomerEmail); err != nil {
		return err
	}

	recipients := []string{summary.CustomerEmail}
	if notifyAddr != "" && notifyAddr != summary.CustomerEmail {
		recipients = append(recipients, notifyAddr)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", recipients...)
	m.SetHeader("Subject", fmt.Sprintf("Xác nhận đơn hàng %s", summary.OrderID))
	m.SetBody("text/html", renderOrderBody(summary))

	if err := s.dialer.DialAndSend(m); err != nil {
		logger.GetAppLogger().WithError(err).WithFields(map[string]interface{}{
			"orderId": summary.OrderID,
			"to":      summary.CustomerEmail,
		}).Error("Gửi email đơn hàng thất bại")
		return common.NewError(
			common.ErrCodeExternalService,
			"Không thể gửi email xác nhận đơn hàng",
			common.StatusBadGateway,
			err,
		)
	}

	logger.GetAppLogger().WithFields(map[string]interface{}{
		"orderId": summary.OrderID,
		"to":      summary.CustomerEmail,
	}).Info("Đã gửi email xác nhận đơn hàng")
	return nil
}

// renderOrderBody dựng nội dung HTML đơn giản cho email đơn hàng.
func renderOrderBody(summary OrderSummary) string {
	var b strings.Builder
	b.WriteString("<h2>Cảm ơn bạn đã đặt hàng!</h2>")
	if summary.CustomerName != "" {
		fmt.Fprintf(&b, "<p>Xin chào %s,</p>", html.EscapeString(summary.CustomerName))
	}
	fmt.Fprintf(&b, "<p>Đơn hàng <strong>%s</strong> của bạn đã được ghi nhận.</p>", html.EscapeString(summary.OrderID))

	if len(summary.Items) > 0 {
		b.WriteString("<table border=\"1\" cellpadding=\"6\" cellspacing=\"0\"><tr><th>Sản phẩm</th><th>Số lượng</th><th>Giá</th></tr>")
		for _, item := range summary.Items {
			fmt.Fprintf(&b, "<tr><td>%s</td><td>%d</td><td>%s</td></tr>",
				html.EscapeString(item.Title), item.Quantity, html.EscapeString(item.Price))
		}
		b.WriteString("</table>")
	}

	if summary.Total != "" {
		fmt.Fprintf(&b, "<p>Tổng cộng: <strong>%s</strong></p>", html.EscapeString(summary.Total))
	}
	return b.String()
}
