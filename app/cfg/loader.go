package cfg

import (
	"cmp"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/jessevdk/go-flags"
)

// Version is set at build time via -ldflags
var Version = "dev"

func GetVersion() string {
	return cmp.Or(Version, "unknown")
}

type rawCfg struct {
	// HTTP server
	Port           string `long:"port" env:"PORT" default:"8080" description:"HTTP server port"`
	TemplatesDir   string `long:"templates-dir" env:"TEMPLATES_DIR" default:"./templates" description:"Directory containing page templates"`
	StaticDir      string `long:"static-dir" env:"STATIC_DIR" default:"./static" description:"Directory served under /static"`
	SiteConfig     string `long:"site-config" env:"SITE_CONFIG" default:"./site.yml" description:"YAML file with per-page metadata (optional)"`
	WhitepaperPath string `long:"whitepaper-path" env:"WHITEPAPER_PATH" default:"/static/livre-blanc.pdf" description:"Redirect target after a whitepaper request"`

	// Mail integration
	MandrillKey          string `long:"mandrill-key" env:"MANDRILL_KEY" description:"Mandrill API key"`
	FromEmail            string `long:"from-email" env:"FROM_EMAIL" default:"contact@kozea.fr" description:"Sender address of contact emails"`
	FromName             string `long:"from-name" env:"FROM_NAME" default:"BackOffice" description:"Sender name of contact emails"`
	ContactRecipient     string `long:"contact-recipient" env:"CONTACT_RECIPIENT" default:"backoffice@lagestiondutierspayant.fr" description:"Default recipient of contact emails"`
	RecruitmentRecipient string `long:"recruitment-recipient" env:"RECRUITMENT_RECIPIENT" description:"Recipient of recruitment contacts (defaults to contact recipient)"`

	// Lead spreadsheet
	SheetBackend      string `long:"sheet-backend" env:"SHEET_BACKEND" default:"none" choice:"google" choice:"sqlite" choice:"none" description:"Where submissions are recorded"`
	GoogleCredentials string `long:"google-credentials" env:"GOOGLE_CREDENTIALS" description:"Path to the Google service account JSON file"`
	SpreadsheetID     string `long:"spreadsheet-id" env:"SPREADSHEET_ID" description:"Google spreadsheet document identifier"`
	WorksheetID       int64  `long:"worksheet-id" env:"WORKSHEET_ID" default:"0" description:"Google worksheet (gid) identifier"`
	SQLitePath        string `long:"sqlite-path" env:"SQLITE_PATH" default:"./leads.db" description:"SQLite file used by the sqlite sheet backend"`

	// Homepage news
	NewsFeedURL  string `long:"news-feed-url" env:"NEWS_FEED_URL" description:"RSS/Atom feed shown on the homepage"`
	NewsTimeout  int    `long:"news-timeout" env:"NEWS_TIMEOUT" default:"3" description:"News feed fetch timeout in seconds"`
	NewsLocale   string `long:"news-locale" env:"NEWS_LOCALE" default:"fr" description:"Locale of news publication dates"`
	NewsMaxItems int    `long:"news-max-items" env:"NEWS_MAX_ITEMS" default:"2" description:"Number of news items on the homepage"`

	IntegrationTimeout int `long:"integration-timeout" env:"INTEGRATION_TIMEOUT" default:"10" description:"Mail and spreadsheet call timeout in seconds"`

	// Application metadata
	UserAgent string `long:"user-agent" env:"USER_AGENT" default:"BackOffice Website/1.0" description:"User agent string for HTTP requests"`
	Timezone  string `long:"timezone" env:"TZ" default:"Europe/Paris" description:"Timezone for timestamps (e.g., UTC, Europe/Paris)"`
	Debug     bool   `long:"debug" env:"DEBUG" description:"Development mode: log emails instead of sending them"`
}

// Load parses the process arguments and environment. It returns nil, nil
// when help was requested.
func Load() (*Cfg, error) {
	return Parse(os.Args[1:])
}

func Parse(args []string) (*Cfg, error) {
	var raw rawCfg

	parser := flags.NewParser(&raw, flags.Default)

	if _, err := parser.ParseArgs(args); err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}

	cfg := &Cfg{
		Port:                 raw.Port,
		TemplatesDir:         raw.TemplatesDir,
		StaticDir:            raw.StaticDir,
		SiteConfig:           raw.SiteConfig,
		WhitepaperPath:       raw.WhitepaperPath,
		MandrillKey:          raw.MandrillKey,
		FromEmail:            raw.FromEmail,
		FromName:             raw.FromName,
		ContactRecipient:     raw.ContactRecipient,
		RecruitmentRecipient: cmp.Or(raw.RecruitmentRecipient, raw.ContactRecipient),
		SheetBackend:         raw.SheetBackend,
		GoogleCredentials:    raw.GoogleCredentials,
		SpreadsheetID:        raw.SpreadsheetID,
		WorksheetID:          raw.WorksheetID,
		SQLitePath:           raw.SQLitePath,
		NewsFeedURL:          raw.NewsFeedURL,
		NewsTimeout:          seconds(raw.NewsTimeout, 3),
		NewsLocale:           raw.NewsLocale,
		NewsMaxItems:         raw.NewsMaxItems,
		IntegrationTimeout:   seconds(raw.IntegrationTimeout, 10),
		UserAgent:            raw.UserAgent,
		Timezone:             raw.Timezone,
		Debug:                raw.Debug,
		Version:              GetVersion(),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if err := applyTimezone(cfg.Timezone); err != nil {
		fmt.Printf("Warning: Invalid timezone '%s', using system default: %v\n", cfg.Timezone, err)
	}

	return cfg, nil
}

// Validate checks the settings that depend on each other.
func (c *Cfg) Validate() error {
	if c.ContactRecipient == "" {
		return fmt.Errorf("contact recipient is required")
	}
	if c.NewsMaxItems < 0 {
		return fmt.Errorf("news max items must be non-negative")
	}

	switch c.SheetBackend {
	case SheetBackendGoogle:
		if c.GoogleCredentials == "" {
			return fmt.Errorf("google sheet backend requires GOOGLE_CREDENTIALS")
		}
		if c.SpreadsheetID == "" {
			return fmt.Errorf("google sheet backend requires SPREADSHEET_ID")
		}
	case SheetBackendSQLite:
		if c.SQLitePath == "" {
			return fmt.Errorf("sqlite sheet backend requires SQLITE_PATH")
		}
	case SheetBackendNone, "":
	default:
		return fmt.Errorf("unknown sheet backend %q", c.SheetBackend)
	}

	if !c.Debug && c.MandrillKey == "" {
		return fmt.Errorf("MANDRILL_KEY is required outside debug mode")
	}

	return nil
}

func seconds(value, fallback int) time.Duration {
	if value <= 0 {
		value = fallback
	}
	return time.Duration(value) * time.Second
}

func applyTimezone(timezone string) error {
	if timezone != "" {
		if loc, err := time.LoadLocation(timezone); err != nil {
			return err
		} else {
			time.Local = loc
		}
	}
	return nil
}
