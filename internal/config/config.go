package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type OwnershipRule struct {
	Method    string `yaml:"method"`
	Path      string `yaml:"path"`
	Source    string `yaml:"source"`
	ParamName string `yaml:"paramName"`
}

type AppConfig struct {
	Port    int    `yaml:"port"`
	GinMode string `yaml:"gin_mode"`
}

type DatabaseConfig struct {
	DSN string `yaml:"dsn"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type JWTConfig struct {
	Secret    string `yaml:"secret"`
	Issuer    string `yaml:"issuer"`
	AccessTTL string `yaml:"access_ttl"`
}

type SessionConfig struct {
	TTL string `yaml:"ttl"`
}

type VerificationConfig struct {
	TTL          string `yaml:"ttl"`
	Length       int    `yaml:"length"`
	MaxAttempts  int    `yaml:"max_attempts"`
	ResendWindow string `yaml:"resend_window"`
}

type TwilioConfig struct {
	AccountSID string `yaml:"account_sid"`
	AuthToken  string `yaml:"auth_token"`
	FromNumber string `yaml:"from_number"`
}

type CasbinConfig struct {
	ModelPath string `yaml:"model_path"`
}

type WebAuthnConfig struct {
	RPID          string   `yaml:"rp_id"`
	RPDisplayName string   `yaml:"rp_display_name"`
	RPOrigins     []string `yaml:"rp_origins"`
	CeremonyTTL   string   `yaml:"ceremony_ttl"`
}

type ConfigFile struct {
	App          AppConfig          `yaml:"app"`
	Database     DatabaseConfig     `yaml:"database"`
	Redis        RedisConfig        `yaml:"redis"`
	JWT          JWTConfig          `yaml:"jwt"`
	Session      SessionConfig      `yaml:"session"`
	Verification VerificationConfig `yaml:"verification"`
	Twilio       TwilioConfig       `yaml:"twilio"`
	Casbin       CasbinConfig       `yaml:"casbin"`
	WebAuthn     WebAuthnConfig     `yaml:"webauthn"`
}

type Config struct {
	Port                     string
	GinMode                  string
	DSN                      string
	RedisAddr                string
	RedisPassword            string
	RedisDB                  int
	JWTSecret                string
	JWTIssuer                string
	AccessTTL                time.Duration
	SessionTTL               time.Duration
	VerificationTTL          time.Duration
	VerificationLength       int
	VerificationMaxAttempts  int
	VerificationResendWindow time.Duration
	TwilioSID                string
	TwilioToken              string
	TwilioFrom               string
	CasbinModelPath          string
	WebAuthnRPID             string
	WebAuthnRPDisplayName    string
	WebAuthnRPOrigins        []string
	CeremonyTTL              time.Duration
	OwnershipRules           []OwnershipRule
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func Load() (*Config, error) {
	// Config file first, environment variables win for secrets.
	configFile, err := loadConfigFile(env("CONFIG_PATH", "config/config.yml"))
	if err != nil {
		return nil, fmt.Errorf("failed to load config file: %w", err)
	}

	accTTL, err := time.ParseDuration(configFile.JWT.AccessTTL)
	if err != nil {
		return nil, fmt.Errorf("invalid JWT access TTL: %w", err)
	}

	sessTTL, err := time.ParseDuration(configFile.Session.TTL)
	if err != nil {
		return nil, fmt.Errorf("invalid session TTL: %w", err)
	}

	verTTL, err := time.ParseDuration(configFile.Verification.TTL)
	if err != nil {
		return nil, fmt.Errorf("invalid verification TTL: %w", err)
	}

	resWnd, err := time.ParseDuration(configFile.Verification.ResendWindow)
	if err != nil {
		return nil, fmt.Errorf("invalid verification resend window: %w", err)
	}

	ceremonyTTL, err := time.ParseDuration(configFile.WebAuthn.CeremonyTTL)
	if err != nil {
		return nil, fmt.Errorf("invalid webauthn ceremony TTL: %w", err)
	}

	ownershipRules, err := loadOwnershipRules(env("OWNERSHIP_RULES_PATH", "config/ownership_rules.yml"))
	if err != nil {
		return nil, err
	}

	return &Config{
		Port:                     fmt.Sprintf("%d", configFile.App.Port),
		GinMode:                  configFile.App.GinMode,
		DSN:                      env("DATABASE_DSN", configFile.Database.DSN),
		RedisAddr:                env("REDIS_ADDR", configFile.Redis.Addr),
		RedisPassword:            env("REDIS_PASSWORD", configFile.Redis.Password),
		RedisDB:                  configFile.Redis.DB,
		JWTSecret:                env("JWT_SECRET", configFile.JWT.Secret),
		JWTIssuer:                configFile.JWT.Issuer,
		AccessTTL:                accTTL,
		SessionTTL:               sessTTL,
		VerificationTTL:          verTTL,
		VerificationLength:       configFile.Verification.Length,
		VerificationMaxAttempts:  configFile.Verification.MaxAttempts,
		VerificationResendWindow: resWnd,
		TwilioSID:                env("TWILIO_ACCOUNT_SID", configFile.Twilio.AccountSID),
		TwilioToken:              env("TWILIO_AUTH_TOKEN", configFile.Twilio.AuthToken),
		TwilioFrom:               env("TWILIO_FROM_NUMBER", configFile.Twilio.FromNumber),
		CasbinModelPath:          configFile.Casbin.ModelPath,
		WebAuthnRPID:             env("WEBAUTHN_RP_ID", configFile.WebAuthn.RPID),
		WebAuthnRPDisplayName:    configFile.WebAuthn.RPDisplayName,
		WebAuthnRPOrigins:        configFile.WebAuthn.RPOrigins,
		CeremonyTTL:              ceremonyTTL,
		OwnershipRules:           ownershipRules,
	}, nil
}

func loadConfigFile(path string) (*ConfigFile, error) {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read config file at %s: %w", path, err)
	}

	var config ConfigFile
	if err := yaml.Unmarshal(bytes, &config); err != nil {
		return nil, fmt.Errorf("could not parse config yaml: %w", err)
	}

	return &config, nil
}

func loadOwnershipRules(path string) ([]OwnershipRule, error) {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read ownership rules file: %w", err)
	}

	var rules struct {
		Rules []OwnershipRule `yaml:"ownershipRules"`
	}
	if err := yaml.Unmarshal(bytes, &rules); err != nil {
		return nil, fmt.Errorf("could not parse ownership rules yaml: %w", err)
	}
	return rules.Rules, nil
}
