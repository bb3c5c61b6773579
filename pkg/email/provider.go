package email

import "fmt"

// New builds the sender selected by cfg.Provider.
// Missing credentials are reported as ErrInvalidConfig so the process fails at
// startup instead of on the first request.
func New(cfg Config) (EmailSender, error) {
	switch cfg.Provider {
	case ProviderPostmark, "":
		return NewPostmarkClient(cfg)
	case ProviderSMTP:
		return NewSMTPSender(cfg)
	case ProviderDev:
		if err := validateIdentity(cfg); err != nil {
			return nil, err
		}
		return NewDevSender(cfg.DevDir), nil
	default:
		return nil, fmt.Errorf("%w: unknown provider %q", ErrInvalidConfig, cfg.Provider)
	}
}

// Credential reports whether a single secret is present.
type Credential struct {
	Name string `json:"name"`
	Set  bool   `json:"set"`
}

// CredentialStatus describes which credentials the configured provider needs
// and which of them are present. Secret values are never included.
type CredentialStatus struct {
	Provider    string       `json:"provider"`
	Credentials []Credential `json:"credentials"`
}

// Ready reports whether every required credential is set.
func (s CredentialStatus) Ready() bool {
	for _, c := range s.Credentials {
		if !c.Set {
			return false
		}
	}
	return true
}

// Missing lists the names of unset credentials.
func (s CredentialStatus) Missing() []string {
	var missing []string
	for _, c := range s.Credentials {
		if !c.Set {
			missing = append(missing, c.Name)
		}
	}
	return missing
}

// Configured inspects cfg without contacting the provider.
func Configured(cfg Config) CredentialStatus {
	provider := cfg.Provider
	if provider == "" {
		provider = ProviderPostmark
	}

	status := CredentialStatus{Provider: provider}
	switch provider {
	case ProviderPostmark:
		status.Credentials = []Credential{
			{Name: "POSTMARK_SERVER_TOKEN", Set: cfg.PostmarkServerToken != ""},
			{Name: "POSTMARK_ACCOUNT_TOKEN", Set: cfg.PostmarkAccountToken != ""},
		}
	case ProviderSMTP:
		status.Credentials = []Credential{
			{Name: "SMTP_USERNAME", Set: cfg.SMTPUsername != ""},
			{Name: "SMTP_PASSWORD", Set: cfg.SMTPPassword != ""},
		}
	case ProviderDev:
		status.Credentials = []Credential{}
	default:
		status.Credentials = []Credential{{Name: "EMAIL_PROVIDER", Set: false}}
	}
	return status
}
