package querylog

import (
	"context"
	"magvar-service/internal/adapters/repositories"
	"magvar-service/internal/domain"
	"magvar-service/internal/platform/db"
	"magvar-service/internal/ports"
	"testing"
	"time"

	_ "modernc.org/sqlite"
)

func exerciseLog(t *testing.T, log ports.QueryLog) {
	t.Helper()
	ctx := context.Background()
	base := time.Date(2026, 1, 1, 8, 0, 0, 0, time.UTC)

	recs := []domain.QueryRecord{
		{RequestID: "a", Operation: "field", Coords: domain.GeoCoordinates{Lat: 1, Lon: 2, AltKm: 0.5}, DecimalYear: 2026, Declination: -3.5, BearingDefined: true, CreatedAt: base},
		{RequestID: "b", Operation: "variation", Coords: domain.GeoCoordinates{Lat: 90}, DecimalYear: 2026, CreatedAt: base.Add(time.Second)},
		{RequestID: "c", Operation: "heading", Coords: domain.GeoCoordinates{Lat: 3, Lon: 4}, DecimalYear: 2026.5, Declination: 7.25, BearingDefined: true, CreatedAt: base.Add(2 * time.Second)},
	}
	for _, r := range recs {
		if err := log.Record(ctx, r); err != nil {
			t.Fatalf("record %s: %v", r.RequestID, err)
		}
	}

	if err := log.Record(ctx, domain.QueryRecord{}); err == nil {
		t.Fatalf("expected error for empty operation")
	}

	got, err := log.Recent(ctx, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 records, got %d", len(got))
	}
	if got[0].RequestID != "c" || got[1].RequestID != "b" {
		t.Fatalf("expected newest first [c b], got [%s %s]", got[0].RequestID, got[1].RequestID)
	}
	if !got[0].CreatedAt.Equal(recs[2].CreatedAt) {
		t.Fatalf("created_at = %v, want %v", got[0].CreatedAt, recs[2].CreatedAt)
	}
	if !got[0].BearingDefined || got[1].BearingDefined {
		t.Fatalf("bearing flags not preserved: %+v", got)
	}
	if got[0].Declination != 7.25 {
		t.Fatalf("declination = %v, want 7.25", got[0].Declination)
	}

	none, err := log.Recent(ctx, 0)
	if err != nil || len(none) != 0 {
		t.Fatalf("limit 0: got %v, %v", none, err)
	}

	all, err := log.Recent(ctx, 10)
	if err != nil || len(all) != 3 {
		t.Fatalf("limit 10: got %d records, err %v", len(all), err)
	}
}

func TestMemoryQueryLog(t *testing.T) {
	exerciseLog(t, NewMemoryQueryLog())
}

func TestSqliteQueryLog(t *testing.T) {
	conn, err := db.OpenSQLite(":memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	defer conn.Close()

	if err := repositories.InitSchema(conn, db.SQLite); err != nil {
		t.Fatalf("init schema: %v", err)
	}

	exerciseLog(t, NewSqliteQueryLog(conn))
}

func TestNilDB(t *testing.T) {
	ctx := context.Background()
	if err := NewSqliteQueryLog(nil).Record(ctx, domain.QueryRecord{Operation: "field"}); err == nil {
		t.Fatalf("expected error for nil db")
	}
	if _, err := NewSQLQueryLog(nil).Recent(ctx, 5); err == nil {
		t.Fatalf("expected error for nil db")
	}
}
