package services

import (
	"context"
	"time"

	"github.com/franciscosanchezn/pizza-order-api/internal/database"
)

const (
	maxReportedCollections = 10
	maxReportedErrorLength = 50
	diagnosticsTimeout     = 5 * time.Second
)

// DiagnosticsReport describes the backend and database reachability
type DiagnosticsReport struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	DatabaseURL      string   `json:"database_url"`
	DatabaseName     string   `json:"database_name"`
	ConnectionStatus string   `json:"connection_status"`
	Collections      []string `json:"collections"`
}

// DiagnosticsService builds the environment report served on /test
type DiagnosticsService interface {
	// Report never fails: database errors are captured in the report
	Report(ctx context.Context) DiagnosticsReport
}

type diagnosticsService struct {
	store        database.Store
	databaseURL  string
	databaseName string
}

// NewDiagnosticsService creates a new instance of DiagnosticsService.
// store may be nil when no database is configured.
func NewDiagnosticsService(store database.Store, databaseURL, databaseName string) DiagnosticsService {
	return &diagnosticsService{store: store, databaseURL: databaseURL, databaseName: databaseName}
}

func (s *diagnosticsService) Report(ctx context.Context) DiagnosticsReport {
	report := DiagnosticsReport{
		Backend:          "✅ Running",
		ConnectionStatus: "Not Connected",
		Collections:      []string{},
	}

	if s.store != nil {
		report.Database = "✅ Available"
		report.ConnectionStatus = "Connected"

		ctx, cancel := context.WithTimeout(ctx, diagnosticsTimeout)
		defer cancel()

		collections, err := s.store.ListCollections(ctx)
		if err != nil {
			report.Database = "⚠️  Connected but Error: " + truncate(err.Error(), maxReportedErrorLength)
		} else {
			if len(collections) > maxReportedCollections {
				collections = collections[:maxReportedCollections]
			}
			if collections != nil {
				report.Collections = collections
			}
			report.Database = "✅ Connected & Working"
		}
	} else {
		report.Database = "⚠️  Available but not initialized"
	}

	report.DatabaseURL = setOrNot(s.databaseURL)
	report.DatabaseName = setOrNot(s.databaseName)
	return report
}

func setOrNot(value string) string {
	if value != "" {
		return "✅ Set"
	}
	return "❌ Not Set"
}

// truncate cuts s to at most n runes
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
