package cfg

import (
	"os"
	"testing"
	"time"
)

func unsetEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, key := range keys {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestGetVersion(t *testing.T) {
	if GetVersion() == "" {
		t.Error("GetVersion should never return empty string")
	}
}

func TestParseDefaults(t *testing.T) {
	unsetEnv(t, "RECRUITMENT_RECIPIENT", "CONTACT_RECIPIENT", "SHEET_BACKEND", "NEWS_TIMEOUT", "NEWS_MAX_ITEMS", "PORT")

	cfg, err := Parse([]string{"--debug"})
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if cfg.Port != "8080" {
		t.Errorf("Expected port '8080', got '%s'", cfg.Port)
	}
	if cfg.ContactRecipient != "backoffice@lagestiondutierspayant.fr" {
		t.Errorf("Unexpected contact recipient '%s'", cfg.ContactRecipient)
	}
	if cfg.RecruitmentRecipient != cfg.ContactRecipient {
		t.Errorf("Expected recruitment recipient to fall back to '%s', got '%s'", cfg.ContactRecipient, cfg.RecruitmentRecipient)
	}
	if cfg.SheetBackend != SheetBackendNone {
		t.Errorf("Expected sheet backend 'none', got '%s'", cfg.SheetBackend)
	}
	if cfg.NewsTimeout != 3*time.Second {
		t.Errorf("Expected news timeout 3s, got %v", cfg.NewsTimeout)
	}
	if cfg.NewsMaxItems != 2 {
		t.Errorf("Expected 2 news items, got %d", cfg.NewsMaxItems)
	}
	if !cfg.Debug {
		t.Error("Expected debug to be enabled")
	}
}

func TestParseFromEnvironment(t *testing.T) {
	t.Setenv("CONTACT_RECIPIENT", "hello@example.com")
	t.Setenv("RECRUITMENT_RECIPIENT", "jobs@example.com")
	t.Setenv("MANDRILL_KEY", "secret")
	t.Setenv("SHEET_BACKEND", "sqlite")
	t.Setenv("SQLITE_PATH", "/tmp/leads.db")
	t.Setenv("INTEGRATION_TIMEOUT", "5")

	cfg, err := Parse(nil)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if cfg.ContactRecipient != "hello@example.com" {
		t.Errorf("Expected contact recipient from env, got '%s'", cfg.ContactRecipient)
	}
	if cfg.RecruitmentRecipient != "jobs@example.com" {
		t.Errorf("Expected recruitment recipient from env, got '%s'", cfg.RecruitmentRecipient)
	}
	if cfg.MandrillKey != "secret" {
		t.Errorf("Expected Mandrill key from env, got '%s'", cfg.MandrillKey)
	}
	if cfg.SheetBackend != SheetBackendSQLite {
		t.Errorf("Expected sqlite backend, got '%s'", cfg.SheetBackend)
	}
	if cfg.IntegrationTimeout != 5*time.Second {
		t.Errorf("Expected integration timeout 5s, got %v", cfg.IntegrationTimeout)
	}
}

func TestParseHelp(t *testing.T) {
	cfg, err := Parse([]string{"--help"})
	if err != nil {
		t.Fatalf("Expected no error on help, got: %v", err)
	}
	if cfg != nil {
		t.Error("Expected nil configuration when help is requested")
	}
}

func TestValidate(t *testing.T) {
	valid := func() *Cfg {
		return &Cfg{
			ContactRecipient: "hello@example.com",
			MandrillKey:      "secret",
			SheetBackend:     SheetBackendNone,
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *Cfg)
		wantErr bool
	}{
		{"valid", func(c *Cfg) {}, false},
		{"missing recipient", func(c *Cfg) { c.ContactRecipient = "" }, true},
		{"missing mandrill key", func(c *Cfg) { c.MandrillKey = "" }, true},
		{"missing mandrill key in debug", func(c *Cfg) { c.MandrillKey = ""; c.Debug = true }, false},
		{"google without credentials", func(c *Cfg) { c.SheetBackend = SheetBackendGoogle; c.SpreadsheetID = "doc" }, true},
		{"google without spreadsheet", func(c *Cfg) { c.SheetBackend = SheetBackendGoogle; c.GoogleCredentials = "sa.json" }, true},
		{"google complete", func(c *Cfg) {
			c.SheetBackend = SheetBackendGoogle
			c.GoogleCredentials = "sa.json"
			c.SpreadsheetID = "doc"
		}, false},
		{"sqlite without path", func(c *Cfg) { c.SheetBackend = SheetBackendSQLite }, true},
		{"unknown backend", func(c *Cfg) { c.SheetBackend = "excel" }, true},
		{"negative news items", func(c *Cfg) { c.NewsMaxItems = -1 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid()
			tt.mutate(c)
			err := c.Validate()
			if tt.wantErr && err == nil {
				t.Error("Expected validation error")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("Expected no error, got: %v", err)
			}
		})
	}
}
