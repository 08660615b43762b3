package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env"
	"github.com/joho/godotenv"
)

// Configuration chứa thông tin tĩnh cần thiết để chạy ứng dụng.
// Được đọc từ file env theo GO_ENV và parse từ biến môi trường.
type Configuration struct {
	Address               string `env:"ADDRESS" envDefault:":5000"`                // Địa chỉ server
	MongoDB_ConnectionURI string `env:"MONGODB_CONNECTION_URI,required"`           // URL kết nối cơ sở dữ liệu
	MongoDB_DBName        string `env:"MONGODB_DBNAME" envDefault:"Ayira-Database"` // Tên cơ sở dữ liệu
	CORS_Origins          string `env:"CORS_ORIGINS" envDefault:"*"`               // Các origins được phép (phân cách bởi dấu phẩy, * = tất cả)
	CORS_AllowCredentials bool   `env:"CORS_ALLOW_CREDENTIALS" envDefault:"false"` // Cho phép gửi credentials

	// Upload Configuration
	UploadDir      string `env:"UPLOAD_DIR" envDefault:"uploads"`      // Thư mục gốc lưu file upload
	UploadMaxBytes int64  `env:"UPLOAD_MAX_BYTES" envDefault:"10485760"` // Dung lượng tối đa mỗi file (10MB)

	// SMTP Configuration (gửi email thông báo đơn hàng)
	SMTPHost         string `env:"SMTP_HOST" envDefault:"smtp.gmail.com"` // SMTP server host
	SMTPPort         int    `env:"SMTP_PORT" envDefault:"587"`            // SMTP server port
	SMTPUser         string `env:"SMTP_USER"`                             // Tài khoản SMTP
	SMTPPassword     string `env:"SMTP_PASSWORD"`                         // App password SMTP
	OrderNotifyEmail string `env:"ORDER_NOTIFY_EMAIL"`                    // Địa chỉ nhận thông báo đơn hàng

	// Gemini Configuration (chat completion proxy)
	GeminiAPIKey string `env:"GEMINI_API_KEY"` // API key của Gemini
	GeminiAPIURL string `env:"GEMINI_API_URL" envDefault:"https://generativelanguage.googleapis.com/v1beta/models/gemini-2.0-flash:generateContent"` // Endpoint generateContent

	// Logging Configuration
	LogDir        string `env:"LOG_DIR" envDefault:"logs"`     // Thư mục chứa log files
	LogLevel      string `env:"LOG_LEVEL" envDefault:"info"`   // Mức log (debug/info/warn/error)
	LogJSONFormat bool   `env:"LOG_JSON_FORMAT" envDefault:"false"` // Format log dạng JSON
}

// getEnvPath trả về đường dẫn đến file env dựa trên môi trường
func getEnvPath() string {
	// Mặc định sử dụng môi trường development
	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "development"
	}

	currentDir, err := os.Getwd()
	if err != nil {
		// Sử dụng fmt.Printf vì logger có thể chưa được init ở đây
		fmt.Printf("Không thể lấy được thư mục hiện tại: %v\n", err)
		return ""
	}

	// Tìm thư mục config/env, đi dần lên thư mục cha
	for {
		envDir := filepath.Join(currentDir, "config", "env")
		if _, err := os.Stat(envDir); err == nil {
			return filepath.Join(envDir, fmt.Sprintf("%s.env", env))
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			return ""
		}
		currentDir = parentDir
	}
}

// NewConfig sẽ đọc dữ liệu cấu hình từ file env theo GO_ENV
func NewConfig() *Configuration {
	envPath := getEnvPath()
	if envPath == "" {
		// Sử dụng fmt.Printf vì logger có thể chưa được init ở đây
		fmt.Printf("Không tìm thấy thư mục config/env\n")
		return nil
	}

	err := godotenv.Load(envPath)
	if err != nil {
		fmt.Printf("Không thể load file env tại %s: %v\n", envPath, err)
		return nil
	}

	cfg := Configuration{}
	err = env.Parse(&cfg)
	if err != nil {
		fmt.Printf("Lỗi khi parse config: %+v\n", err)
		return nil
	}

	return &cfg
}
