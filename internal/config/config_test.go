package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "DATA_FILE", "ADMIN_USERNAME", "ADMIN_PASSWORD",
		"SESSION_SECRET", "GEMINI_API_KEY", "CORS_ALLOWED_ORIGINS", "SERIALIZE_WRITES"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	if cfg.Port != "8080" {
		t.Errorf("Port = %q, want 8080", cfg.Port)
	}
	if cfg.AdminUsername != "admin" || cfg.AdminPassword != "password" {
		t.Errorf("default credentials = %q/%q", cfg.AdminUsername, cfg.AdminPassword)
	}
	if cfg.DataFile != "" {
		t.Errorf("DataFile = %q, want empty (memory backend)", cfg.DataFile)
	}
	if len(cfg.CorsAllowedOrigins) != 1 || cfg.CorsAllowedOrigins[0] != "*" {
		t.Errorf("CorsAllowedOrigins = %v, want [*]", cfg.CorsAllowedOrigins)
	}
	if cfg.SerializeWrites {
		t.Error("SerializeWrites should default to false")
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DATA_FILE", "/var/data/posts.json")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("SERIALIZE_WRITES", "true")

	cfg := Load()

	if cfg.Port != "9090" {
		t.Errorf("Port = %q, want 9090", cfg.Port)
	}
	if cfg.DataFile != "/var/data/posts.json" {
		t.Errorf("DataFile = %q", cfg.DataFile)
	}
	if len(cfg.CorsAllowedOrigins) != 2 || cfg.CorsAllowedOrigins[1] != "https://b.example" {
		t.Errorf("CorsAllowedOrigins = %v", cfg.CorsAllowedOrigins)
	}
	if !cfg.SerializeWrites {
		t.Error("SERIALIZE_WRITES=true not honored")
	}
}

func TestGetBoolEnvGarbageFallsBack(t *testing.T) {
	t.Setenv("SERIALIZE_WRITES", "sometimes")

	cfg := Load()
	if cfg.SerializeWrites {
		t.Error("unparseable bool should fall back to default")
	}
}
