package repository

import (
	"errors"
	"testing"
	"time"

	"github.com/achyut02/Ai-Placement-Tracker/internal/model"
	"github.com/achyut02/Ai-Placement-Tracker/internal/testhelpers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedInterview(t *testing.T, db *gorm.DB, userID uint, topic string, score float64, createdAt time.Time) *model.Interview {
	t.Helper()
	iv := &model.Interview{
		UserID:    userID,
		Topic:     topic,
		TopicID:   "java",
		Question:  "What is polymorphism?",
		Answer:    "Polymorphism lets one interface serve many implementations.",
		Feedback:  "Reasonable answer, expand on runtime vs compile-time forms.",
		Score:     score,
		SessionID: "session-1",
		CreatedAt: createdAt,
	}
	require.NoError(t, db.Create(iv).Error)
	return iv
}

func TestGetUserStatsEmpty(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	repo := NewInterviewRepository(db)

	stats, err := repo.GetUserStats(42)
	require.NoError(t, err)
	assert.Equal(t, 0, stats.TotalInterviews)
	assert.Equal(t, 0.0, stats.AverageScore)
	assert.Equal(t, 0.0, stats.MaxScore)
	assert.Equal(t, 0.0, stats.MinScore)
	assert.NotNil(t, stats.TopicPerformance)
	assert.Empty(t, stats.TopicPerformance)
	assert.NotNil(t, stats.ProgressData)
	assert.Empty(t, stats.ProgressData)
}

func TestGetUserStatsAggregation(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	repo := NewInterviewRepository(db)

	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	seedInterview(t, db, 1, "Java Programming", 8, base)
	seedInterview(t, db, 1, "Java Programming", 7, base.Add(time.Hour))
	seedInterview(t, db, 1, "System Design", 4, base.Add(2*time.Hour))
	// Another user's records must not leak in.
	seedInterview(t, db, 2, "Java Programming", 10, base)

	stats, err := repo.GetUserStats(1)
	require.NoError(t, err)
	assert.Equal(t, 3, stats.TotalInterviews)
	assert.Equal(t, 6.3, stats.AverageScore) // (8+7+4)/3 = 6.33 -> 6.3
	assert.Equal(t, 8.0, stats.MaxScore)
	assert.Equal(t, 4.0, stats.MinScore)

	require.Len(t, stats.TopicPerformance, 2)
	byTopic := map[string]float64{}
	counts := map[string]int{}
	for _, tp := range stats.TopicPerformance {
		byTopic[tp.Name] = tp.Value
		counts[tp.Name] = tp.Count
	}
	assert.Equal(t, 7.5, byTopic["Java Programming"])
	assert.Equal(t, 2, counts["Java Programming"])
	assert.Equal(t, 4.0, byTopic["System Design"])
	assert.Equal(t, 1, counts["System Design"])

	require.Len(t, stats.ProgressData, 3)
	assert.Equal(t, 1, stats.ProgressData[0].Attempt)
	assert.Equal(t, 8.0, stats.ProgressData[0].Score) // oldest first
	assert.Equal(t, 3, stats.ProgressData[2].Attempt)
	assert.Equal(t, 4.0, stats.ProgressData[2].Score)
	assert.Equal(t, "2026-03-01", stats.ProgressData[0].Date)
}

func TestGetUserStatsProgressKeepsLastTen(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	repo := NewInterviewRepository(db)

	base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 14; i++ {
		seedInterview(t, db, 1, "Java Programming", float64(i%11), base.Add(time.Duration(i)*time.Hour))
	}

	stats, err := repo.GetUserStats(1)
	require.NoError(t, err)
	require.Len(t, stats.ProgressData, 10)
	// The series covers records 5..14 (the last ten), oldest first.
	assert.Equal(t, float64(4%11), stats.ProgressData[0].Score)
	assert.Equal(t, float64(13%11), stats.ProgressData[9].Score)
	for i, p := range stats.ProgressData {
		assert.Equal(t, i+1, p.Attempt)
	}
}

func TestFindRecentOrdering(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	repo := NewInterviewRepository(db)

	base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	old := seedInterview(t, db, 1, "Java Programming", 5, base)
	mid := seedInterview(t, db, 1, "Java Programming", 6, base.Add(time.Hour))
	newest := seedInterview(t, db, 1, "Java Programming", 7, base.Add(2*time.Hour))

	recent, err := repo.FindRecent(1, 2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, newest.ID, recent[0].ID)
	assert.Equal(t, mid.ID, recent[1].ID)
	_ = old
}

func TestFindPagePagination(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	repo := NewInterviewRepository(db)

	base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 25; i++ {
		seedInterview(t, db, 1, "Java Programming", 5, base.Add(time.Duration(i)*time.Minute))
	}

	page2, total, err := repo.FindPage(1, "", 2, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(25), total)
	assert.Len(t, page2, 10)

	page3, _, err := repo.FindPage(1, "", 3, 10)
	require.NoError(t, err)
	assert.Len(t, page3, 5)

	// Newest first: page 1 starts with the most recent record.
	page1, _, err := repo.FindPage(1, "", 1, 10)
	require.NoError(t, err)
	assert.True(t, page1[0].CreatedAt.After(page1[9].CreatedAt))
}

func TestFindPageTopicFilter(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	repo := NewInterviewRepository(db)

	base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	iv := seedInterview(t, db, 1, "Java Programming", 5, base)
	other := &model.Interview{
		UserID: 1, Topic: "System Design", TopicID: "system-design",
		Question: "Design a URL shortener.", Answer: "Hash the URL and store the mapping in a key-value store.",
		Feedback: "Mention collision handling next time.", Score: 6, SessionID: "s2",
		CreatedAt: base.Add(time.Hour),
	}
	require.NoError(t, db.Create(other).Error)

	items, total, err := repo.FindPage(1, "java", 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, items, 1)
	assert.Equal(t, iv.ID, items[0].ID)
}

func TestDeleteByIDAndUser(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	repo := NewInterviewRepository(db)

	iv := seedInterview(t, db, 1, "Java Programming", 5, time.Now())

	// Wrong owner: not found, record untouched.
	err := repo.DeleteByIDAndUser(iv.ID, 99)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))

	require.NoError(t, repo.DeleteByIDAndUser(iv.ID, 1))

	// Deleting again reports not found rather than silent success.
	err = repo.DeleteByIDAndUser(iv.ID, 1)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}

func TestCreateRoundTrip(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	repo := NewInterviewRepository(db)

	iv := &model.Interview{
		UserID:      7,
		Topic:       "Database Management",
		TopicID:     "database",
		Question:    "Explain database normalization.",
		Answer:      "Normalization organizes tables to reduce redundancy across relations.",
		Feedback:    "Good definition. Walk through the normal forms with an example.",
		Score:       7.5,
		Difficulty:  model.DifficultyMedium,
		IsCompleted: true,
		SessionID:   "round-trip-session",
	}
	require.NoError(t, repo.Create(iv))
	require.NotZero(t, iv.ID)

	got, err := repo.FindByIDAndUser(iv.ID, 7)
	require.NoError(t, err)
	assert.Equal(t, iv.Question, got.Question)
	assert.Equal(t, iv.Answer, got.Answer)
	assert.Equal(t, iv.Feedback, got.Feedback)
	assert.Equal(t, iv.Score, got.Score)
	assert.Equal(t, iv.SessionID, got.SessionID)
	assert.False(t, got.CreatedAt.IsZero())

	_, err = repo.FindByIDAndUser(iv.ID, 8)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}

func TestNilDatabaseReportsUnavailable(t *testing.T) {
	repo := NewInterviewRepository(nil)

	_, err := repo.GetUserStats(1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unavailable")

	err = repo.Create(&model.Interview{})
	require.Error(t, err)
}
