package config

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a sentinel error from
// errors.go otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" || cfg.Storage.CodeTTL <= 0 {
		return ErrInvalidStorageConfigs
	}

	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	switch cfg.Mailer.Mode {
	case MailerModeConsole:
	case MailerModeWebhook:
		if cfg.Mailer.Address == "" || cfg.Mailer.APIKey == "" {
			return ErrInvalidMailerConfigs
		}
	default:
		return ErrInvalidMailerConfigs
	}

	return nil
}
