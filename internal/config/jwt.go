package config

import "time"

// DefaultJWTSecret - документированный небезопасный секрет по умолчанию.
// Сервис с ним запускается, но для реальных учетных данных он непригоден;
// при использовании в лог пишется предупреждение.
const DefaultJWTSecret = "your-secret-key-change-in-production"

// WarnDefaultJWTSecret - предупреждение о запуске с секретом по умолчанию.
const WarnDefaultJWTSecret = "JWT_SECRET not set in environment variables, using default secret"

// defaultTokenTTL - срок действия токена по умолчанию: 7 дней.
const defaultTokenTTL = 168 * time.Hour

// JWTConfig содержит настройки выпуска токенов и хэширования паролей.
type JWTConfig struct {
	SecretKey  string `yaml:"secret_key" env:"JWT_SECRET" env-default:"your-secret-key-change-in-production"`
	TokenTTL   string `yaml:"token_ttl" env:"NOTES_JWT_TOKEN_TTL" env-default:"168h"`
	BCryptCost int    `yaml:"bcrypt_cost" env:"NOTES_JWT_BCRYPT_COST" env-default:"10"`
}

// GetTokenTTL возвращает продолжительность времени жизни токена.
func (c *JWTConfig) GetTokenTTL() time.Duration {
	duration, err := time.ParseDuration(c.TokenTTL)
	if err != nil {
		return defaultTokenTTL
	}
	return duration
}

// IsDefaultSecret сообщает, используется ли небезопасный секрет по умолчанию.
func (c *JWTConfig) IsDefaultSecret() bool {
	return c.SecretKey == DefaultJWTSecret
}
