package email

// Supported values of Config.Provider.
const (
	ProviderPostmark = "postmark"
	ProviderSMTP     = "smtp"
	ProviderDev      = "dev"
)

// Config holds email service configuration.
// Provider credentials are optional at parse time so that development
// environments can run with the dev provider; New rejects a provider whose
// credentials are missing.
// SenderEmail and SupportEmail are required as they establish the sender identity
// and the default reply-to address for all outbound emails.
type Config struct {
	Provider string `env:"EMAIL_PROVIDER" envDefault:"postmark"`

	PostmarkServerToken  string `env:"POSTMARK_SERVER_TOKEN"`
	PostmarkAccountToken string `env:"POSTMARK_ACCOUNT_TOKEN"`

	SMTPHost     string `env:"SMTP_HOST" envDefault:"smtp.gmail.com"`
	SMTPPort     int    `env:"SMTP_PORT" envDefault:"587"`
	SMTPUsername string `env:"SMTP_USERNAME"`
	SMTPPassword string `env:"SMTP_PASSWORD"`

	SenderEmail  string `env:"SENDER_EMAIL,required"`
	SupportEmail string `env:"SUPPORT_EMAIL,required"`

	DevDir string `env:"EMAIL_DEV_DIR" envDefault:"./tmp/emails"`
}
