package config

import (
	"flag"
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type HTTPServer struct {
	Addr string `yaml:"address" env:"HTTP_ADDR" env-default:":8080"`
}

type Store struct {
	Name           string `yaml:"STORE_NAME" env:"STORE_NAME" env-default:"Henna by Fathima"`
	WhatsAppNumber string `yaml:"WHATSAPP_NUMBER" env:"WHATSAPP_NUMBER" env-default:"919656778058"`
	CatalogPath    string `yaml:"CATALOG_PATH" env:"CATALOG_PATH" env-default:""`
}

type Checkout struct {
	// Active payment strategy, a deployment-time choice: "gateway" or "upi".
	Strategy       string        `yaml:"CHECKOUT_STRATEGY" env:"CHECKOUT_STRATEGY" env-default:"gateway"`
	AttemptTimeout time.Duration `yaml:"ATTEMPT_TIMEOUT" env:"ATTEMPT_TIMEOUT" env-default:"0"`
}

type Razorpay struct {
	KeyID      string `yaml:"RAZORPAY_KEY_ID" env:"RAZORPAY_KEY_ID" env-default:""`
	KeySecret  string `yaml:"RAZORPAY_KEY_SECRET" env:"RAZORPAY_KEY_SECRET" env-default:""`
	ThemeColor string `yaml:"RAZORPAY_THEME_COLOR" env:"RAZORPAY_THEME_COLOR" env-default:"#16a34a"`
	// When set, a gateway order is created up front and its id drives the
	// widget instead of the session-generated one.
	CreateGatewayOrder bool `yaml:"RAZORPAY_CREATE_ORDER" env:"RAZORPAY_CREATE_ORDER" env-default:"false"`
}

type UPI struct {
	PayeeAddress string `yaml:"UPI_PAYEE_ADDRESS" env:"UPI_PAYEE_ADDRESS" env-default:"adnanmuhammad4393@okicici"`
	PayeeName    string `yaml:"UPI_PAYEE_NAME" env:"UPI_PAYEE_NAME" env-default:"Henna by Fathima"`
}

type SendGrid struct {
	APIKey        string `yaml:"SENDGRID_API_KEY" env:"SENDGRID_API_KEY" env-default:""`
	FromEmail     string `yaml:"SENDGRID_FROM_EMAIL" env:"SENDGRID_FROM_EMAIL" env-default:""`
	FromName      string `yaml:"SENDGRID_FROM_NAME" env:"SENDGRID_FROM_NAME" env-default:""`
	BusinessEmail string `yaml:"BUSINESS_EMAIL" env:"BUSINESS_EMAIL" env-default:""`
}

type Config struct {
	Env        string `yaml:"env" env:"ENV" env-default:"production"`
	HTTPServer `yaml:"http_server"`
	Store      Store    `yaml:"store"`
	Checkout   Checkout `yaml:"checkout"`
	Razorpay   Razorpay `yaml:"razorpay"`
	UPI        UPI      `yaml:"upi"`
	SendGrid   SendGrid `yaml:"sendgrid"`
}

func MustLoad() *Config {

	configPath := os.Getenv("CONFIG_PATH")

	if configPath == "" {

		flags := flag.String("config", "", "gets the config flag value")

		flag.Parse()

		configPath = *flags
	}

	var cfg Config

	if configPath == "" {
		// Everything has an env fallback, so a config file is optional.
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			log.Fatalf("can not read environment config: %s", err.Error())
		}

		return &cfg
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		log.Fatalf("config file does not exist: %s", configPath)
	}

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("can not read config file: %s", err.Error())
	}

	return &cfg
}
