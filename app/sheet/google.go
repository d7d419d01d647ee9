package sheet

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/isabella232/www-teepy/app/contact"
)

var _ contact.Recorder = (*GoogleRecorder)(nil)

// GoogleRecorder appends submissions to a worksheet of a Google spreadsheet.
type GoogleRecorder struct {
	service       *sheets.Service
	spreadsheetID string
	worksheetID   int64
}

func NewGoogleRecorder(ctx context.Context, spreadsheetID string, worksheetID int64, opts ...option.ClientOption) (*GoogleRecorder, error) {
	service, err := sheets.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets service: %w", err)
	}

	return &GoogleRecorder{
		service:       service,
		spreadsheetID: spreadsheetID,
		worksheetID:   worksheetID,
	}, nil
}

// CredentialsOptions authenticates with a service account file.
func CredentialsOptions(credentialsFile string) []option.ClientOption {
	return []option.ClientOption{
		option.WithCredentialsFile(credentialsFile),
		option.WithScopes(sheets.SpreadsheetsScope),
	}
}

func (r *GoogleRecorder) Append(ctx context.Context, row []string) error {
	title, err := r.worksheetTitle(ctx)
	if err != nil {
		return err
	}

	values := make([]interface{}, len(row))
	for i, value := range row {
		values[i] = value
	}

	_, err = r.service.Spreadsheets.Values.
		Append(r.spreadsheetID, quoteSheetTitle(title)+"!A1", &sheets.ValueRange{
			Values: [][]interface{}{values},
		}).
		ValueInputOption("RAW").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("failed to append row to spreadsheet %s: %w", r.spreadsheetID, err)
	}

	return nil
}

// worksheetTitle resolves the worksheet id (the "gid" of its URL) to the
// title A1 ranges are written against.
func (r *GoogleRecorder) worksheetTitle(ctx context.Context) (string, error) {
	spreadsheet, err := r.service.Spreadsheets.Get(r.spreadsheetID).
		Fields("sheets.properties").
		Context(ctx).
		Do()
	if err != nil {
		return "", fmt.Errorf("failed to read spreadsheet %s: %w", r.spreadsheetID, err)
	}

	for _, s := range spreadsheet.Sheets {
		if s.Properties != nil && s.Properties.SheetId == r.worksheetID {
			return s.Properties.Title, nil
		}
	}

	return "", fmt.Errorf("worksheet %d not found in spreadsheet %s", r.worksheetID, r.spreadsheetID)
}

func quoteSheetTitle(title string) string {
	return "'" + strings.ReplaceAll(title, "'", "''") + "'"
}
