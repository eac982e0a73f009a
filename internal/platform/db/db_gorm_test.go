package db

import "testing"

func TestBuildDSN(t *testing.T) {
	cfg := Config{
		User:     "app",
		Password: "secret",
		Name:     "portal",
		Host:     "127.0.0.1",
		Port:     "3306",
	}

	got := BuildDSN(cfg)
	want := "app:secret@tcp(127.0.0.1:3306)/portal?charset=utf8mb4&parseTime=true&loc=Local"
	if got != want {
		t.Errorf("BuildDSN() = %q, want %q", got, want)
	}
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("DB_USER", "app")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_NAME", "portal")
	t.Setenv("DB_HOST", "db")
	t.Setenv("DB_PORT", "3306")

	cfg := ConfigFromEnv()
	if cfg.User != "app" || cfg.Password != "secret" || cfg.Name != "portal" || cfg.Host != "db" || cfg.Port != "3306" {
		t.Errorf("ConfigFromEnv() = %+v, want values from the environment", cfg)
	}
}
