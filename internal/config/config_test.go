package config

import (
	"os"
	"path/filepath"
	"testing"
)

const validYaml = `env: test
tracker_address: ":50051"
params:
  label: {min: 1, max: 120}
  link: {min: 1, max: 200}
db:
  driver: memory
kafka:
  brokers: ["localhost:9092"]
elasticsearch:
  addresses: ["http://localhost:9200"]
gateway:
  address: ":8080"
`

const noGatewayAddressYaml = `env: test
tracker_address: ":50051"
params:
  label: {min: 1, max: 120}
  link: {min: 1, max: 200}
db:
  driver: memory
kafka:
  brokers: ["localhost:9092"]
elasticsearch:
  addresses: ["http://localhost:9200"]
`

func writeConfig(t *testing.T, contents string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(contents), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("CONFIG_PATH", path)
	t.Setenv("JWT_SECRET", "test-secret")
}

func TestMustLoadConfig(t *testing.T) {
	writeConfig(t, validYaml)

	cfg := MustLoadConfig()

	if cfg.TrackerAddress != ":50051" {
		t.Errorf("TrackerAddress = %q, want :50051", cfg.TrackerAddress)
	}
	if cfg.Gateway.Address != ":8080" {
		t.Errorf("Gateway.Address = %q, want :8080", cfg.Gateway.Address)
	}
	if cfg.SuperuserName != "Jon" {
		t.Errorf("SuperuserName default = %q, want Jon", cfg.SuperuserName)
	}
	if cfg.Gateway.RateLimiter.RPS != 20 || cfg.Gateway.RateLimiter.Burst != 40 {
		t.Errorf("rate limiter defaults = %d/%d, want 20/40",
			cfg.Gateway.RateLimiter.RPS, cfg.Gateway.RateLimiter.Burst)
	}
	if cfg.JWTSecret != "test-secret" {
		t.Errorf("JWTSecret = %q, want test-secret", cfg.JWTSecret)
	}
}

// A gateway without a bind address would silently listen on ":http";
// the address is required so a bad config fails at startup instead.
func TestMustLoadConfigRequiresGatewayAddress(t *testing.T) {
	writeConfig(t, noGatewayAddressYaml)

	defer func() {
		if recover() == nil {
			t.Error("MustLoadConfig accepted a config without gateway.address")
		}
	}()
	MustLoadConfig()
}
