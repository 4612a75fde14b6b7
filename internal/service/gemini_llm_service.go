package service

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/achyut02/Ai-Placement-Tracker/config"
	"github.com/achyut02/Ai-Placement-Tracker/internal/apperror"
	"github.com/achyut02/Ai-Placement-Tracker/internal/model"
	"github.com/google/generative-ai-go/genai"
	"github.com/rs/zerolog/log"
	"google.golang.org/api/option"
)

// InterviewAIService generates interview questions and scores free-text
// answers through the Gemini completion API.
type InterviewAIService interface {
	GenerateQuestion(ctx context.Context, topic string) (string, error)
	ScoreAnswer(ctx context.Context, question, answer, topic string) (score float64, feedback string, err error)
}

type geminiLLMService struct {
	questionModel *genai.GenerativeModel
	feedbackModel *genai.GenerativeModel
	cfg           *config.Config
}

const (
	questionSystemInstruction = "You are an experienced technical interviewer conducting placement interviews for college students. Generate clear, relevant questions that test practical knowledge and problem-solving skills. Focus on questions that allow candidates to demonstrate their understanding and thinking process."
	feedbackSystemInstruction = "You are an experienced technical interviewer providing constructive feedback to help candidates improve. Be fair, encouraging, and specific in your evaluation. Focus on both technical accuracy and communication skills. Provide actionable advice for improvement."

	// fallbackFeedback replaces parser output shorter than 10 characters.
	fallbackFeedback = "Your answer shows understanding of the topic. Consider providing more detailed explanations and examples to strengthen your response."
)

var (
	scorePattern    = regexp.MustCompile(`(?i)Score:\s*(\d+(?:\.\d+)?)`)
	feedbackPattern = regexp.MustCompile(`(?is)Feedback:\s*(.*)`)
)

func NewInterviewAIService(cfg *config.Config) (InterviewAIService, error) {
	if cfg.GeminiApiKey == "" {
		log.Warn().Msg("GEMINI_API_KEY is not set. AI features will be disabled.")
		return &geminiLLMService{cfg: cfg}, nil
	}

	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.GeminiApiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Gemini client: %w", err)
	}

	// Higher temperature for question variety, lower for consistent scoring.
	questionModel := client.GenerativeModel("gemini-1.5-flash")
	questionModel.SetTemperature(0.7)
	questionModel.SetMaxOutputTokens(200)
	questionModel.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(questionSystemInstruction)}}

	feedbackModel := client.GenerativeModel("gemini-1.5-flash")
	feedbackModel.SetTemperature(0.3)
	feedbackModel.SetMaxOutputTokens(500)
	feedbackModel.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(feedbackSystemInstruction)}}

	return &geminiLLMService{questionModel: questionModel, feedbackModel: feedbackModel, cfg: cfg}, nil
}

func (s *geminiLLMService) GenerateQuestion(ctx context.Context, topic string) (string, error) {
	if s.questionModel == nil {
		return "", apperror.Generation("AI service is not configured", nil)
	}

	prompt := fmt.Sprintf(`Generate a professional interview question for the topic: %s.

The question should be:
- Appropriate for a college placement interview
- Clear and specific
- Designed to assess practical knowledge and understanding
- Not too basic, but not extremely advanced
- Focused on real-world application

Topic areas to consider for %s:
%s

Return only the question without any additional text, formatting, or explanations.`,
		topic, topic, model.GuidelinesFor(topic))

	resp, err := s.questionModel.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		log.Error().Err(err).Str("topic", topic).Msg("Gemini question generation failed")
		return "", translateGenerationError(err)
	}

	question := strings.TrimSpace(responseText(resp))
	if question == "" {
		return "", apperror.Generation("Failed to generate question. Please try again.", nil)
	}
	return question, nil
}

// ScoreAnswer asks Gemini for a "Score: N / Feedback: ..." evaluation and
// parses it leniently: an unparsable score defaults to 5, a missing feedback
// body falls back to the whole raw response. It fails only on transport,
// quota, or auth errors from the service.
func (s *geminiLLMService) ScoreAnswer(ctx context.Context, question, answer, topic string) (float64, string, error) {
	if s.feedbackModel == nil {
		return 0, "", apperror.Generation("AI service is not configured", nil)
	}

	prompt := fmt.Sprintf(`As an expert interviewer, evaluate this interview response:

Topic: %s
Question: %s
Answer: %s

Please provide:
1. A score from 0-10 (where 10 is excellent)
2. Constructive feedback focusing on:
   - Technical accuracy and depth
   - Communication clarity and structure
   - Completeness of the answer
   - Practical understanding
   - Areas for improvement
   - Specific suggestions for enhancement

Evaluation criteria:
- 9-10: Excellent answer with deep understanding and clear communication
- 7-8: Good answer with solid understanding, minor improvements needed
- 5-6: Average answer with basic understanding, needs development
- 3-4: Below average, significant gaps in knowledge or communication
- 0-2: Poor answer with major issues

Format your response exactly as:
Score: [0-10]
Feedback: [Your detailed, constructive feedback]

Keep feedback encouraging but honest, and provide specific, actionable suggestions for improvement.`,
		topic, question, answer)

	resp, err := s.feedbackModel.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		log.Error().Err(err).Str("topic", topic).Msg("Gemini feedback generation failed")
		return 0, "", translateGenerationError(err)
	}

	raw := strings.TrimSpace(responseText(resp))
	if raw == "" {
		return 0, "", apperror.Generation("Failed to generate feedback. Please try again.", nil)
	}

	score, feedback := ParseScoreAndFeedback(raw)
	return score, feedback, nil
}

// ParseScoreAndFeedback extracts (score, feedback) from raw model output.
// Exported so the fallback policy stays directly testable without a client.
func ParseScoreAndFeedback(raw string) (float64, string) {
	score := 5.0
	if m := scorePattern.FindStringSubmatch(raw); m != nil {
		if parsed, err := strconv.ParseFloat(m[1], 64); err == nil {
			score = parsed
		}
	}
	if score < 0 {
		score = 0
	}
	if score > 10 {
		score = 10
	}

	feedback := raw
	if m := feedbackPattern.FindStringSubmatch(raw); m != nil {
		feedback = strings.TrimSpace(m[1])
	}
	if len(feedback) < 10 {
		feedback = fallbackFeedback
	}

	return score, feedback
}

func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			b.WriteString(string(txt))
		}
	}
	return b.String()
}

// translateGenerationError maps upstream failures to distinct user-facing
// messages while keeping the cause wrapped.
func translateGenerationError(err error) error {
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "quota") || strings.Contains(msg, "resource exhausted") || strings.Contains(msg, "429"):
		return apperror.Generation("AI service quota exceeded. Please try again later.", err)
	case strings.Contains(msg, "api key") || strings.Contains(msg, "unauthenticated") || strings.Contains(msg, "permission"):
		return apperror.Generation("AI service is misconfigured. Please contact support.", err)
	default:
		return apperror.Generation("Failed to reach AI service. Please try again.", err)
	}
}
