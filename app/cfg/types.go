package cfg

import "time"

type Cfg struct {
	// HTTP server
	Port           string
	TemplatesDir   string
	StaticDir      string
	SiteConfig     string
	WhitepaperPath string

	// Mail integration
	MandrillKey          string
	FromEmail            string
	FromName             string
	ContactRecipient     string
	RecruitmentRecipient string

	// Lead spreadsheet
	SheetBackend      string
	GoogleCredentials string
	SpreadsheetID     string
	WorksheetID       int64
	SQLitePath        string

	// Homepage news
	NewsFeedURL  string
	NewsTimeout  time.Duration
	NewsLocale   string
	NewsMaxItems int

	IntegrationTimeout time.Duration

	// Application metadata
	UserAgent string
	Timezone  string
	Debug     bool
	Version   string
}

const (
	SheetBackendGoogle = "google"
	SheetBackendSQLite = "sqlite"
	SheetBackendNone   = "none"
)
