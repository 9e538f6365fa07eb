package config

type Config struct {
	Environment Environment
	Log         Log
	HTTP        HTTPServer
	BaseURL     string `env:"BASE_URL" envDefault:"http://localhost:8080"`
	DatabaseURL string `env:"DATABASE_URL,required"`

	// Static link to the purchased files, embedded in confirmation emails.
	DownloadLink string `env:"DOWNLOAD_LINK_URL,required"`

	Stripe     Stripe     `envPrefix:"STRIPE_"`
	MailerSend MailerSend `envPrefix:"MAILERSEND_"`
}

type Stripe struct {
	BaseApiURL string `env:"BASE_API_URL" envDefault:"https://api.stripe.com"`
	SecretKey  string `env:"SECRET_KEY,required"`
}

type MailerSend struct {
	BaseApiURL string `env:"BASE_API_URL" envDefault:"https://api.mailersend.com"`
	APIKey     string `env:"API_KEY,required"`
	FromEmail  string `env:"FROM_EMAIL,required"`
	FromName   string `env:"FROM_NAME" envDefault:"StudyForge"`
	ReplyTo    string `env:"REPLY_TO" envDefault:"support@studyforge.app"`
}

type Environment struct {
	Name string `env:"ENVIRONMENT" envDefault:"development"`
}

type Log struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

type HTTPServer struct {
	Host string `env:"HTTP_HOST" envDefault:"0.0.0.0"`
	Port string `env:"HTTP_PORT" envDefault:"8080"`
}
