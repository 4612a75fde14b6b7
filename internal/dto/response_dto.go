package dto

import "time"

// Response is the uniform envelope every endpoint returns.
type Response struct {
	Success bool     `json:"success"`
	Message string   `json:"message,omitempty"`
	Data    any      `json:"data,omitempty"`
	Errors  []string `json:"errors,omitempty"`
}

func OK(data any) Response {
	return Response{Success: true, Data: data}
}

func OKMessage(message string) Response {
	return Response{Success: true, Message: message}
}

func Fail(message string, errors ...string) Response {
	return Response{Success: false, Message: message, Errors: errors}
}

// UserResponse is the outward view of an account. The password hash never
// leaves the model layer.
type UserResponse struct {
	ID               uint      `json:"id"`
	Name             string    `json:"name"`
	Email            string    `json:"email"`
	RegistrationDate time.Time `json:"registration_date"`
	LastLogin        time.Time `json:"last_login"`
	TotalInterviews  int       `json:"total_interviews"`
	AverageScore     float64   `json:"average_score"`
}

// AuthResponse returns the bearer token plus the account it belongs to.
type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// StartInterviewResponse carries the opening question of a fresh session.
type StartInterviewResponse struct {
	Question  string `json:"question"`
	SessionID string `json:"sessionId"`
	Topic     string `json:"topic"`
	TopicID   string `json:"topicId"`
}

// QuestionResponse carries one generated question.
type QuestionResponse struct {
	Question string `json:"question"`
}

// AnswerResponse carries the scoring result for one submitted answer.
type AnswerResponse struct {
	Feedback    string  `json:"feedback"`
	Score       float64 `json:"score"`
	InterviewID uint    `json:"interviewId"`
}

// InterviewResponse is the full stored record.
type InterviewResponse struct {
	ID          uint      `json:"id"`
	Topic       string    `json:"topic"`
	TopicID     string    `json:"topic_id"`
	Question    string    `json:"question"`
	Answer      string    `json:"answer"`
	Feedback    string    `json:"feedback"`
	Score       float64   `json:"score"`
	Difficulty  string    `json:"difficulty"`
	Duration    int       `json:"duration"`
	IsCompleted bool      `json:"is_completed"`
	SessionID   string    `json:"session_id"`
	CreatedAt   time.Time `json:"created_at"`
}

// InterviewSummary is the projection used in recent/history listings; the
// answer body is omitted.
type InterviewSummary struct {
	ID        uint      `json:"id"`
	Topic     string    `json:"topic"`
	Question  string    `json:"question"`
	Score     float64   `json:"score"`
	Feedback  string    `json:"feedback"`
	CreatedAt time.Time `json:"created_at"`
}

// TopicPerformance is the per-topic mean score and attempt count.
type TopicPerformance struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"` // mean score, one decimal
	Count int     `json:"count"`
}

// ProgressPoint is one element of the recent-progress series.
type ProgressPoint struct {
	Attempt int     `json:"attempt"`
	Score   float64 `json:"score"`
	Date    string  `json:"date"`
}

// UserStats aggregates all of a user's interview records. A user with no
// records gets the zero value with empty (non-nil) slices.
type UserStats struct {
	TotalInterviews  int                `json:"totalInterviews"`
	AverageScore     float64            `json:"averageScore"`
	MaxScore         float64            `json:"maxScore"`
	MinScore         float64            `json:"minScore"`
	TopicPerformance []TopicPerformance `json:"topicPerformance"`
	ProgressData     []ProgressPoint    `json:"progressData"`
}

// ProgressResponse is the dashboard payload: stats plus recent records.
type ProgressResponse struct {
	UserStats
	RecentInterviews []InterviewSummary `json:"recentInterviews"`
}

// Pagination describes one page of a listing.
type Pagination struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Pages int   `json:"pages"`
}

// HistoryResponse is one page of interview history.
type HistoryResponse struct {
	Interviews []InterviewSummary `json:"interviews"`
	Pagination Pagination         `json:"pagination"`
}

// HealthResponse reports liveness plus dependency status.
type HealthResponse struct {
	Message     string            `json:"message"`
	Timestamp   time.Time         `json:"timestamp"`
	Environment string            `json:"environment"`
	Services    map[string]string `json:"services"`
}
