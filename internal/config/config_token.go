package config

import "fmt"

// GetTokenConfig loads the token settings used by the token issuing tool
// from defaults, environment and the JSON file. Command-line arguments are
// left to the caller.
func GetTokenConfig() (App, error) {
	cfg, err := load(nil)
	if err != nil {
		return App{}, err
	}

	return cfg.App, validateToken(cfg.App)
}

func validateToken(app App) error {
	if app.TokenSignKey == "" || app.TokenIssuer == "" || app.TokenDuration <= 0 {
		return fmt.Errorf("%w: token settings are incomplete", ErrInvalidAppConfigs)
	}
	return nil
}
