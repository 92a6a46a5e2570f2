package configs

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v9"
)

type Config struct {
	HTTPAddr string `env:"HTTP_ADDR" envDefault:":8081"`

	APIBaseURL string        `env:"API_BASE_URL,required"`
	APITimeout time.Duration `env:"API_TIMEOUT" envDefault:"20s"`

	TokenDir string `env:"TOKEN_DIR" envDefault:"."`

	KafkaBrokers string `env:"KAFKA_BROKERS" envDefault:""`
	KafkaTopic   string `env:"KAFKA_TOPIC" envDefault:"os-saved"`

	ShopName     string `env:"SHOP_NAME" envDefault:"D-Tech Utilities & Tools"`
	ShopAddress  string `env:"SHOP_ADDRESS" envDefault:"Rua do Cruzeiro, 10 - Centro"`
	ShopCNPJ     string `env:"SHOP_CNPJ" envDefault:"37.183.737/0001-05"`
	ShopWhatsApp string `env:"SHOP_WHATSAPP" envDefault:"(15) 99644-4174"`
}

func LoadConfig() (Config, error) {
	var c Config
	if err := env.Parse(&c); err != nil {
		return Config{}, fmt.Errorf("config parse: %w", err)
	}
	return c, nil
}

// KafkaBrokersSlice splits KAFKA_BROKERS on commas. Empty means events
// are disabled.
func (c Config) KafkaBrokersSlice() []string {
	parts := strings.Split(c.KafkaBrokers, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
