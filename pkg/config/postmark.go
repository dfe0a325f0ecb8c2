package config

// Postmark holds API credentials for the hosted transactional-email
// transport. Both tokens are required so a deployment that selects this
// transport fails at startup rather than on the first submission; addressing
// comes from the managed-transport variables shared with SES.
type Postmark struct {
	ServerToken  string `env:"POSTMARK_SERVER_TOKEN,required"`
	AccountToken string `env:"POSTMARK_ACCOUNT_TOKEN,required"`
}

// ResolvePostmark resolves hosted-transport credentials from the environment.
func ResolvePostmark() (Postmark, error) {
	var cfg Postmark
	if err := Load(&cfg); err != nil {
		return Postmark{}, err
	}
	return cfg, nil
}
