package config

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/sethvargo/go-envconfig"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := load(context.Background(), envconfig.MapLookuper(map[string]string{}))
	if err != nil {
		t.Fatalf("load returned error: %v", err)
	}

	if cfg.Port != "3000" {
		t.Errorf("expected port 3000, got %s", cfg.Port)
	}
	if cfg.Auth.TokenTTL != 365*24*time.Hour {
		t.Errorf("expected a 365 day token ttl, got %v", cfg.Auth.TokenTTL)
	}
	if cfg.Mongo.URI != "mongodb://localhost:27017" || cfg.Mongo.Database != "postboard" {
		t.Errorf("unexpected mongo config: %+v", cfg.Mongo)
	}
	if cfg.Auth.JWTSecret != DefaultJWTSecret || cfg.Auth.HashSalt != DefaultHashSalt {
		t.Errorf("expected insecure fallbacks, got %+v", cfg.Auth)
	}
}

func TestLoad_FromEnvironment(t *testing.T) {
	cfg, err := load(context.Background(), envconfig.MapLookuper(map[string]string{
		"PORT":         "8080",
		"JWT_SECRET":   "s3cr3t",
		"HASH_SALT":    "pepper",
		"TOKEN_TTL":    "1h",
		"MONGODB_NAME": "blog",
		"THREAD_COUNT": "2",
	}))
	if err != nil {
		t.Fatalf("load returned error: %v", err)
	}

	if cfg.Port != "8080" || cfg.ThreadCount != 2 {
		t.Errorf("unexpected server config: %+v", cfg)
	}
	if cfg.Auth.JWTSecret != "s3cr3t" || cfg.Auth.HashSalt != "pepper" || cfg.Auth.TokenTTL != time.Hour {
		t.Errorf("unexpected auth config: %+v", cfg.Auth)
	}
	if cfg.Mongo.Database != "blog" {
		t.Errorf("expected database blog, got %s", cfg.Mongo.Database)
	}
}

func TestLoad_InvalidValue(t *testing.T) {
	_, err := load(context.Background(), envconfig.MapLookuper(map[string]string{
		"TOKEN_TTL": "forever",
	}))
	if err == nil {
		t.Fatalf("expected error for an unparsable duration")
	}
}

func TestConfig_InsecureDefaults(t *testing.T) {
	cfg := &Config{Auth: AuthConfig{JWTSecret: DefaultJWTSecret, HashSalt: DefaultHashSalt}}
	if got := cfg.InsecureDefaults(); !reflect.DeepEqual(got, []string{"JWT_SECRET", "HASH_SALT"}) {
		t.Fatalf("unexpected insecure defaults: %v", got)
	}

	cfg.Auth.JWTSecret = "real"
	if got := cfg.InsecureDefaults(); !reflect.DeepEqual(got, []string{"HASH_SALT"}) {
		t.Fatalf("unexpected insecure defaults: %v", got)
	}

	cfg.Auth.HashSalt = "real"
	if got := cfg.InsecureDefaults(); len(got) != 0 {
		t.Fatalf("expected none, got %v", got)
	}
}

func TestLoad_RejectsEmptySecrets(t *testing.T) {
	cases := map[string]map[string]string{
		"empty jwt secret": {"JWT_SECRET": "", "HASH_SALT": "pepper"},
		"empty hash salt":  {"JWT_SECRET": "s3cr3t", "HASH_SALT": ""},
		"both empty":       {"JWT_SECRET": "", "HASH_SALT": ""},
	}

	for name, env := range cases {
		t.Run(name, func(t *testing.T) {
			cfg, err := load(context.Background(), envconfig.MapLookuper(env))
			if !errors.Is(err, ErrEmptySecret) {
				t.Fatalf("expected ErrEmptySecret, got cfg=%+v err=%v", cfg, err)
			}
		})
	}
}

func TestConfig_InsecureDefaults_ReportsEmpty(t *testing.T) {
	cfg := &Config{}
	if got := cfg.InsecureDefaults(); !reflect.DeepEqual(got, []string{"JWT_SECRET", "HASH_SALT"}) {
		t.Fatalf("expected empty secrets to be reported, got %v", got)
	}
}
