package config

import "testing"

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	if err != nil {
		t.Fatalf("LoadConfig error: %v", err)
	}

	if cfg.ServerPort != "8080" {
		t.Errorf("ServerPort = %s; want 8080", cfg.ServerPort)
	}
	if cfg.ClientOrigin != "*" {
		t.Errorf("ClientOrigin = %s; want *", cfg.ClientOrigin)
	}
	if cfg.MaxOrdersPerRequest != 25 {
		t.Errorf("MaxOrdersPerRequest = %d; want 25", cfg.MaxOrdersPerRequest)
	}
}

func TestLoadConfigEnvOverride(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("MAX_ORDERS_PER_REQUEST", "10")

	cfg, err := LoadConfig(t.TempDir())
	if err != nil {
		t.Fatalf("LoadConfig error: %v", err)
	}

	if cfg.ServerPort != "9090" {
		t.Errorf("ServerPort = %s; want 9090", cfg.ServerPort)
	}
	if cfg.MaxOrdersPerRequest != 10 {
		t.Errorf("MaxOrdersPerRequest = %d; want 10", cfg.MaxOrdersPerRequest)
	}
}
