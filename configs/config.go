// configs/config.go
package configs

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config uygulamanın tüm yapılandırmasını taşır. Değerler APP_ önekli ortam
// değişkenlerinden okunur; çalışma dizinindeki .env dosyası (varsa) eksik
// değişkenleri tamamlar. Process başında bir kez oluşturulur ve ihtiyaç duyan
// katmanlara referans olarak geçirilir; paket içinde global state tutulmaz.
type Config struct {
	AppName     string   `env:"NAME" envDefault:"Kart Oyunu API"`
	Debug       bool     `env:"DEBUG" envDefault:"true"`
	ListenAddr  string   `env:"LISTEN_ADDR" envDefault:":8000"`
	DatabaseURL string   `env:"DATABASE_URL" envDefault:"sqlite://kartoyunu.db"`
	CORSOrigins []string `env:"CORS_ORIGINS" envSeparator:"," envDefault:"http://localhost:5173,http://localhost:3000,http://127.0.0.1:5173,http://127.0.0.1:3000"`
	StaticDir   string   `env:"STATIC_DIR" envDefault:"static"`
	ImagesDir   string   `env:"IMAGES_DIR" envDefault:"static/images"`
}

// Load .env dosyasını (varsa) yükler ve ortamı Config'e çözer.
// Gerçek ortam değişkenleri .env içeriğini her zaman ezer.
func Load() (*Config, error) {
	_ = godotenv.Load() // .env yoksa sorun değil, ortam yeterli

	cfg := Config{}
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: "APP_"}); err != nil {
		return nil, fmt.Errorf("yapılandırma okunamadı: %w", err)
	}
	return &cfg, nil
}
