package config

// SES holds addressing settings for the managed send-email transport. The
// service authenticates through the ambient execution role, so no credentials
// appear here.
type SES struct {
	From    string `env:"HELP_EMAIL_FROM,required"`
	To      string `env:"HELP_EMAIL_TO,required"`
	Subject string `env:"HELP_EMAIL_SUBJECT,required"`
}

// ResolveSES resolves managed-transport addressing from the environment.
// Every variable is required.
func ResolveSES() (SES, error) {
	var cfg SES
	if err := Load(&cfg); err != nil {
		return SES{}, err
	}
	return cfg, nil
}
