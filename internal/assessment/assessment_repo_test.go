package assessment

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/uxchapter/skillboard/internal/user"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestRepo(t *testing.T) (AssessmentRepository, *gorm.DB) {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "skillboard.db")
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&user.User{}, &SkillAssessment{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return NewAssessmentRepository(db), db
}

func submit(t *testing.T, repo AssessmentRepository, userID, skillID uint, level int) *SkillAssessment {
	t.Helper()

	a := &SkillAssessment{
		UserID:        userID,
		SkillID:       skillID,
		NumericLevel:  intPtr(level),
		Level:         LegacyLevel(level),
		Justification: JustificationPlaceholder,
		Status:        StatusPending,
	}
	if err := repo.Upsert(a); err != nil {
		t.Fatalf("Upsert: %v", err)
	}
	return a
}

func firstByUserSkill(t *testing.T, db *gorm.DB, userID, skillID uint) *SkillAssessment {
	t.Helper()

	var a SkillAssessment
	if err := db.Where("user_id = ? AND skill_id = ?", userID, skillID).First(&a).Error; err != nil {
		t.Fatalf("load assessment: %v", err)
	}
	return &a
}

func TestUpsertKeepsOneRowPerUserSkill(t *testing.T) {
	t.Parallel()

	repo, db := newTestRepo(t)
	submit(t, repo, 1, 10, 2)
	submit(t, repo, 1, 10, 4)

	var count int64
	if err := db.Model(&SkillAssessment{}).Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected 1 row after resubmission, got %d", count)
	}

	got := firstByUserSkill(t, db, 1, 10)
	if got.NumericLevel == nil || *got.NumericLevel != 4 {
		t.Fatalf("numeric level = %v, want 4", got.NumericLevel)
	}
	if got.Level != LevelAdvanced {
		t.Fatalf("legacy level = %q, want %q", got.Level, LevelAdvanced)
	}
}

func TestResubmissionReopensApprovedRecord(t *testing.T) {
	t.Parallel()

	repo, db := newTestRepo(t)
	a := submit(t, repo, 1, 10, 2)

	changed, err := repo.Approve(firstByUserSkill(t, db, a.UserID, a.SkillID).ID, 99, time.Now())
	if err != nil {
		t.Fatalf("Approve: %v", err)
	}
	if !changed {
		t.Fatal("expected approval to change the row")
	}

	submit(t, repo, 1, 10, 5)

	got := firstByUserSkill(t, db, 1, 10)
	if got.Status != StatusPending {
		t.Fatalf("status after resubmission = %q, want %q", got.Status, StatusPending)
	}
	if got.ApprovedAt != nil || got.ApprovedBy != nil {
		t.Fatalf("approval metadata not cleared: at=%v by=%v", got.ApprovedAt, got.ApprovedBy)
	}
}

func TestApproveOnlyTransitionsPending(t *testing.T) {
	t.Parallel()

	repo, db := newTestRepo(t)
	a := submit(t, repo, 1, 10, 3)
	id := firstByUserSkill(t, db, a.UserID, a.SkillID).ID

	changed, err := repo.Approve(id, 99, time.Now())
	if err != nil || !changed {
		t.Fatalf("first Approve = (%v, %v), want (true, nil)", changed, err)
	}

	// Second decision on the same record is a no-op, not an error.
	changed, err = repo.Reject(id, 99, "too optimistic", time.Now())
	if err != nil {
		t.Fatalf("Reject after approve errored: %v", err)
	}
	if changed {
		t.Fatal("Reject changed an already-approved record")
	}

	got := firstByUserSkill(t, db, 1, 10)
	if got.Status != StatusApproved {
		t.Fatalf("status = %q, want %q", got.Status, StatusApproved)
	}
	if got.ApprovedBy == nil || *got.ApprovedBy != 99 {
		t.Fatalf("approved_by = %v, want 99", got.ApprovedBy)
	}
}

func TestRejectStoresTrimmedReason(t *testing.T) {
	t.Parallel()

	repo, db := newTestRepo(t)
	a := submit(t, repo, 1, 10, 3)
	id := firstByUserSkill(t, db, a.UserID, a.SkillID).ID

	changed, err := repo.Reject(id, 99, "  falta evidencia  ", time.Now())
	if err != nil || !changed {
		t.Fatalf("Reject = (%v, %v), want (true, nil)", changed, err)
	}

	got := firstByUserSkill(t, db, 1, 10)
	if got.Status != StatusRejected {
		t.Fatalf("status = %q, want %q", got.Status, StatusRejected)
	}
	if got.RejectionReason != "falta evidencia" {
		t.Fatalf("rejection reason = %q, want %q", got.RejectionReason, "falta evidencia")
	}
	if got.RejectedBy == nil || *got.RejectedBy != 99 {
		t.Fatalf("rejected_by = %v, want 99", got.RejectedBy)
	}
}

func TestListPendingByUsers(t *testing.T) {
	t.Parallel()

	repo, db := newTestRepo(t)
	a := submit(t, repo, 1, 10, 2)
	submit(t, repo, 1, 11, 3)
	submit(t, repo, 2, 10, 4)

	if _, err := repo.Approve(firstByUserSkill(t, db, a.UserID, a.SkillID).ID, 99, time.Now()); err != nil {
		t.Fatalf("Approve: %v", err)
	}

	rows, err := repo.ListPendingByUsers([]uint{1, 2})
	if err != nil {
		t.Fatalf("ListPendingByUsers: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 pending rows, got %d", len(rows))
	}
	for _, row := range rows {
		if row.Status != StatusPending {
			t.Fatalf("non-pending row %d in result", row.ID)
		}
	}

	rows, err = repo.ListPendingByUsers(nil)
	if err != nil {
		t.Fatalf("ListPendingByUsers(nil): %v", err)
	}
	if len(rows) != 0 {
		t.Fatalf("expected empty result for empty cohort, got %d rows", len(rows))
	}
}

func TestGetTeamMembersScopesByLeaderAndRole(t *testing.T) {
	t.Parallel()

	repo, db := newTestRepo(t)
	leaderID := uint(50)
	otherLeaderID := uint(60)

	seedUsers := []user.User{
		{Model: gorm.Model{ID: leaderID}, FirstName: "Laura", Email: "laura@example.com", Role: user.RoleLeader},
		{Model: gorm.Model{ID: otherLeaderID}, FirstName: "Oscar", Email: "oscar@example.com", Role: user.RoleLeader},
		{Model: gorm.Model{ID: 1}, FirstName: "Carla", Email: "carla@example.com", Role: user.RoleDesigner, LeaderID: &leaderID},
		{Model: gorm.Model{ID: 2}, FirstName: "Ana", Email: "ana@example.com", Role: user.RoleDesigner, LeaderID: &leaderID},
		{Model: gorm.Model{ID: 3}, FirstName: "Beto", Email: "beto@example.com", Role: user.RoleDesigner, LeaderID: &otherLeaderID},
		{Model: gorm.Model{ID: 4}, FirstName: "Head", Email: "head@example.com", Role: user.RoleHeadChapter, LeaderID: &leaderID},
	}
	for i := range seedUsers {
		if err := db.Create(&seedUsers[i]).Error; err != nil {
			t.Fatalf("seed user: %v", err)
		}
	}

	members, err := repo.GetTeamMembers(leaderID)
	if err != nil {
		t.Fatalf("GetTeamMembers: %v", err)
	}
	if len(members) != 2 {
		t.Fatalf("expected 2 members, got %d", len(members))
	}
	// Ordered by first name.
	if members[0].FirstName != "Ana" || members[1].FirstName != "Carla" {
		t.Fatalf("order = [%s, %s], want [Ana, Carla]", members[0].FirstName, members[1].FirstName)
	}
}

func TestGetByIDNotFound(t *testing.T) {
	t.Parallel()

	repo, _ := newTestRepo(t)
	got, err := repo.GetByID(12345)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got != nil {
		t.Fatalf("expected nil for missing record, got %+v", got)
	}
}
