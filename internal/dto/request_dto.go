package dto

// RegisterRequest creates a new account.
type RegisterRequest struct {
	Name     string `json:"name" binding:"required,min=2,max=50"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// LoginRequest exchanges credentials for a bearer token.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// StartInterviewRequest begins a new session for a topic.
type StartInterviewRequest struct {
	Topic   string `json:"topic" binding:"required,max=100"`
	TopicID string `json:"topicId" binding:"required"`
}

// GenerateQuestionRequest asks for one more question on a topic.
type GenerateQuestionRequest struct {
	Topic string `json:"topic" binding:"required,max=100"`
}

// SubmitAnswerRequest submits one answer for scoring and persistence.
type SubmitAnswerRequest struct {
	Question  string `json:"question" binding:"required,max=1000"`
	Answer    string `json:"answer" binding:"required,min=10,max=5000"`
	Topic     string `json:"topic" binding:"required,max=100"`
	TopicID   string `json:"topicId" binding:"required"`
	SessionID string `json:"sessionId" binding:"required"`
	Duration  int    `json:"duration" binding:"omitempty,min=0"` // seconds spent on the question
}
