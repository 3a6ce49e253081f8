package db

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/cyra-health/cyra/internal/models"
)

func newTestRepositories(t *testing.T) *Repositories {
	t.Helper()
	database, err := OpenSQLite(filepath.Join(t.TempDir(), "cyra-test.db"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	return NewRepositories(database)
}

func testDay(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.ParseInLocation("2006-01-02", value, time.UTC)
	if err != nil {
		t.Fatalf("parse day %q: %v", value, err)
	}
	return parsed
}

func createTestUser(t *testing.T, repos *Repositories, email string) models.User {
	t.Helper()
	user := models.User{Email: email, PasswordHash: "x"}
	if err := repos.Users.Create(&user); err != nil {
		t.Fatalf("create user: %v", err)
	}
	return user
}

func TestMigrationsBootstrapSchema(t *testing.T) {
	t.Parallel()

	repos := newTestRepositories(t)

	count, err := repos.Users.CountUsers()
	if err != nil {
		t.Fatalf("expected users table to exist: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected a fresh database, got %d users", count)
	}

	user := createTestUser(t, repos, "schema@example.com")
	if user.ID == 0 {
		t.Fatalf("expected an assigned user id")
	}

	exists, err := repos.Users.ExistsByNormalizedEmail("schema@example.com")
	if err != nil || !exists {
		t.Fatalf("expected created user to be findable: exists=%v err=%v", exists, err)
	}
}

func TestCycleConfigEpochsAppendOnly(t *testing.T) {
	t.Parallel()

	repos := newTestRepositories(t)
	user := createTestUser(t, repos, "epochs@example.com")

	firstStart := testDay(t, "2026-07-01")
	first := models.CycleConfig{UserID: user.ID, CycleLength: 28, PeriodLength: 5, LastPeriodStart: &firstStart}
	if err := repos.Configs.Create(&first); err != nil {
		t.Fatalf("create first epoch: %v", err)
	}

	secondStart := testDay(t, "2026-07-29")
	second := models.CycleConfig{UserID: user.ID, CycleLength: 30, PeriodLength: 6, LastPeriodStart: &secondStart}
	if err := repos.Configs.Create(&second); err != nil {
		t.Fatalf("create second epoch: %v", err)
	}

	latest, found, err := repos.Configs.LatestByUser(user.ID)
	if err != nil || !found {
		t.Fatalf("latest lookup failed: found=%v err=%v", found, err)
	}
	if latest.CycleLength != 30 || latest.PeriodLength != 6 {
		t.Fatalf("expected the newest epoch to win, got %d/%d", latest.CycleLength, latest.PeriodLength)
	}

	epochs, err := repos.Configs.ListByUser(user.ID)
	if err != nil {
		t.Fatalf("list epochs: %v", err)
	}
	if len(epochs) != 2 {
		t.Fatalf("expected both epochs retained, got %d", len(epochs))
	}
	if epochs[0].CycleLength != 28 {
		t.Fatalf("expected oldest epoch first, got %d", epochs[0].CycleLength)
	}
}

func TestLatestByUserWithoutEpochs(t *testing.T) {
	t.Parallel()

	repos := newTestRepositories(t)
	user := createTestUser(t, repos, "empty@example.com")

	_, found, err := repos.Configs.LatestByUser(user.ID)
	if err != nil {
		t.Fatalf("latest lookup failed: %v", err)
	}
	if found {
		t.Fatalf("expected no epoch for a fresh user")
	}
}

func TestSymptomRangeQueriesAndScopedDelete(t *testing.T) {
	t.Parallel()

	repos := newTestRepositories(t)
	owner := createTestUser(t, repos, "owner@example.com")
	other := createTestUser(t, repos, "other@example.com")

	inside := models.SymptomRecord{UserID: owner.ID, Date: testDay(t, "2026-08-10"), Category: "physical", Name: "Cramps", Severity: 3}
	outside := models.SymptomRecord{UserID: owner.ID, Date: testDay(t, "2026-06-01"), Category: "physical", Name: "Cramps", Severity: 2}
	if err := repos.Symptoms.Create(&inside); err != nil {
		t.Fatalf("create symptom: %v", err)
	}
	if err := repos.Symptoms.Create(&outside); err != nil {
		t.Fatalf("create symptom: %v", err)
	}

	windowed, err := repos.Symptoms.ListByUserRange(owner.ID, testDay(t, "2026-08-01"), testDay(t, "2026-09-01"))
	if err != nil {
		t.Fatalf("range query: %v", err)
	}
	if len(windowed) != 1 || windowed[0].ID != inside.ID {
		t.Fatalf("expected only the in-range record, got %d", len(windowed))
	}

	deleted, err := repos.Symptoms.DeleteByIDForUser(inside.ID, other.ID)
	if err != nil {
		t.Fatalf("cross-user delete errored: %v", err)
	}
	if deleted {
		t.Fatalf("expected cross-user delete to match nothing")
	}

	deleted, err = repos.Symptoms.DeleteByIDForUser(inside.ID, owner.ID)
	if err != nil || !deleted {
		t.Fatalf("owner delete failed: deleted=%v err=%v", deleted, err)
	}
}

func TestDeleteAccountRemovesRelatedData(t *testing.T) {
	t.Parallel()

	repos := newTestRepositories(t)
	user := createTestUser(t, repos, "gone@example.com")

	start := testDay(t, "2026-08-01")
	config := models.CycleConfig{UserID: user.ID, CycleLength: 28, PeriodLength: 5, LastPeriodStart: &start}
	if err := repos.Configs.Create(&config); err != nil {
		t.Fatalf("create config: %v", err)
	}
	mood := models.MoodEntry{UserID: user.ID, Date: start, Mood: "calm", EnergyLevel: 5, StressLevel: 5}
	if err := repos.Moods.Create(&mood); err != nil {
		t.Fatalf("create mood: %v", err)
	}

	if err := repos.Users.DeleteAccountAndRelatedData(user.ID); err != nil {
		t.Fatalf("delete account: %v", err)
	}

	if _, err := repos.Users.FindByID(user.ID); err == nil {
		t.Fatalf("expected the user row to be gone")
	}
	_, found, err := repos.Configs.LatestByUser(user.ID)
	if err != nil {
		t.Fatalf("config lookup after delete: %v", err)
	}
	if found {
		t.Fatalf("expected config epochs removed with the account")
	}
	moods, err := repos.Moods.ListByUser(user.ID)
	if err != nil {
		t.Fatalf("mood lookup after delete: %v", err)
	}
	if len(moods) != 0 {
		t.Fatalf("expected mood entries removed with the account")
	}
}
