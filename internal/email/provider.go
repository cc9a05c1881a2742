package email

// Provider sends transactional email. Delivery is best-effort everywhere this
// is used; callers log failures and move on.
type Provider interface {
	Send(to, subject, htmlBody string) error
}

// NoopProvider is used when email is disabled in configuration.
type NoopProvider struct{}

func (NoopProvider) Send(to, subject, htmlBody string) error {
	return nil
}
