package repository

import (
	"testing"

	"github.com/ibrahimt2325-tech/fitness-tracker/internal/model"
)

func intp(v int) *int       { return &v }
func boolp(v bool) *bool    { return &v }
func strp(v string) *string { return &v }

func TestDailyLogUpsertIsLastWriteWins(t *testing.T) {
	db := openTestDB(t)
	repo := NewDailyLogRepository(db)

	first := &model.DailyLog{UserID: 1, Date: "2024-05-01", Steps: intp(4000)}
	if err := repo.Upsert(first); err != nil {
		t.Fatalf("first upsert: %v", err)
	}
	second := &model.DailyLog{UserID: 1, Date: "2024-05-01", Steps: intp(8000), Stretched: boolp(true)}
	if err := repo.Upsert(second); err != nil {
		t.Fatalf("second upsert: %v", err)
	}

	var count int64
	db.Model(&model.DailyLog{}).Count(&count)
	if count != 1 {
		t.Fatalf("rows = %d, want 1 (natural key is user_id+date)", count)
	}

	logs, err := repo.FindByUserAndRange(1, "2024-05-01", "2024-05-01")
	if err != nil || len(logs) != 1 {
		t.Fatalf("FindByUserAndRange: %v, %d rows", err, len(logs))
	}
	if logs[0].Steps == nil || *logs[0].Steps != 8000 {
		t.Fatalf("steps = %v, want 8000", logs[0].Steps)
	}
	if logs[0].Stretched == nil || !*logs[0].Stretched {
		t.Fatal("stretched flag lost on upsert")
	}
}

func TestDailyLogRangeQueriesAreAscendingAndScoped(t *testing.T) {
	db := openTestDB(t)
	repo := NewDailyLogRepository(db)

	seed := []model.DailyLog{
		{UserID: 1, Date: "2024-05-03", Steps: intp(1)},
		{UserID: 1, Date: "2024-05-01", Steps: intp(2)},
		{UserID: 2, Date: "2024-05-02", Steps: intp(3)},
		{UserID: 1, Date: "2024-06-01", Steps: intp(4)},
	}
	for i := range seed {
		if err := repo.Upsert(&seed[i]); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	logs, err := repo.FindByUserAndRange(1, "2024-05-01", "2024-05-31")
	if err != nil {
		t.Fatalf("FindByUserAndRange: %v", err)
	}
	if len(logs) != 2 || logs[0].Date != "2024-05-01" || logs[1].Date != "2024-05-03" {
		t.Fatalf("got %d rows, order %v", len(logs), logs)
	}

	all, err := repo.FindByRange("2024-05-01", "2024-05-31")
	if err != nil || len(all) != 3 {
		t.Fatalf("FindByRange: %v, %d rows", err, len(all))
	}

	history, err := repo.FindAllByUser(1)
	if err != nil || len(history) != 3 {
		t.Fatalf("FindAllByUser: %v, %d rows", err, len(history))
	}
	if history[2].Date != "2024-06-01" {
		t.Fatalf("history not ascending: %v", history)
	}
}

func TestDailyLogJournalListing(t *testing.T) {
	db := openTestDB(t)
	repo := NewDailyLogRepository(db)

	seed := []model.DailyLog{
		{UserID: 1, Date: "2024-05-01", Learned: strp("consistency beats intensity")},
		{UserID: 1, Date: "2024-05-02"},
		{UserID: 1, Date: "2024-05-03", Learned: strp("rest enables better work")},
		{UserID: 2, Date: "2024-05-04", Learned: strp("someone else's note")},
	}
	for i := range seed {
		if err := repo.Upsert(&seed[i]); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	entries, err := repo.FindJournal(1)
	if err != nil {
		t.Fatalf("FindJournal: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("entries = %d, want 2 (nil learned and other users excluded)", len(entries))
	}
	if entries[0].Date != "2024-05-03" {
		t.Fatalf("journal not newest-first: %v", entries)
	}
}
