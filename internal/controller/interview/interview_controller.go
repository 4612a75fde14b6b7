package interview

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/achyut02/Ai-Placement-Tracker/config"
	"github.com/achyut02/Ai-Placement-Tracker/internal/apperror"
	"github.com/achyut02/Ai-Placement-Tracker/internal/dto"
	"github.com/achyut02/Ai-Placement-Tracker/internal/middleware"
	"github.com/achyut02/Ai-Placement-Tracker/internal/model"
	"github.com/achyut02/Ai-Placement-Tracker/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
)

type InterviewController struct {
	interviewService service.InterviewService
	statsService     service.StatsService
	cfg              *config.Config
}

func NewInterviewController(
	interviewService service.InterviewService,
	statsService service.StatsService,
	cfg *config.Config,
) *InterviewController {
	return &InterviewController{
		interviewService: interviewService,
		statsService:     statsService,
		cfg:              cfg,
	}
}

// GetTopics godoc
// @Summary List the interview topic catalog
// @Tags Interviews
// @Produce json
// @Success 200 {object} dto.Response{data=[]model.Topic}
// @Security BearerAuth
// @Router /interviews/topics [get]
func (c *InterviewController) GetTopics(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.OK(model.AllTopics()))
}

// Start godoc
// @Summary Start a new interview session
// @Description Generates the first question and a fresh session id. The five
// question cap is a client convention; the server does not track sessions.
// @Tags Interviews
// @Accept json
// @Produce json
// @Param request body dto.StartInterviewRequest true "Topic title and id"
// @Success 200 {object} dto.Response{data=dto.StartInterviewResponse}
// @Failure 400 {object} dto.Response
// @Failure 500 {object} dto.Response "Question generation failed"
// @Security BearerAuth
// @Router /interviews/start [post]
func (c *InterviewController) Start(ctx *gin.Context) {
	userID, _ := middleware.UserID(ctx)

	var req dto.StartInterviewRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.Fail("Validation failed", bindingErrors(err)...))
		return
	}

	resp, err := c.interviewService.StartInterview(ctx.Request.Context(), userID, req)
	if err != nil {
		c.respondError(ctx, err, "Failed to start interview")
		return
	}
	ctx.JSON(http.StatusOK, dto.OK(resp))
}

// GenerateQuestion godoc
// @Summary Generate one interview question
// @Tags Interviews
// @Accept json
// @Produce json
// @Param request body dto.GenerateQuestionRequest true "Topic title"
// @Success 200 {object} dto.Response{data=dto.QuestionResponse}
// @Failure 400 {object} dto.Response
// @Failure 500 {object} dto.Response "Question generation failed"
// @Security BearerAuth
// @Router /interviews/question [post]
func (c *InterviewController) GenerateQuestion(ctx *gin.Context) {
	var req dto.GenerateQuestionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.Fail("Validation failed", bindingErrors(err)...))
		return
	}

	resp, err := c.interviewService.GenerateQuestion(ctx.Request.Context(), req)
	if err != nil {
		c.respondError(ctx, err, "Failed to generate question")
		return
	}
	ctx.JSON(http.StatusOK, dto.OK(resp))
}

// SubmitAnswer godoc
// @Summary Submit an answer for scoring
// @Description Scores the answer, persists the interview record and
// recomputes the user's running summary.
// @Tags Interviews
// @Accept json
// @Produce json
// @Param request body dto.SubmitAnswerRequest true "Question, answer, topic and session id"
// @Success 200 {object} dto.Response{data=dto.AnswerResponse}
// @Failure 400 {object} dto.Response
// @Failure 500 {object} dto.Response "Scoring or persistence failed"
// @Security BearerAuth
// @Router /interviews/answer [post]
func (c *InterviewController) SubmitAnswer(ctx *gin.Context) {
	userID, _ := middleware.UserID(ctx)

	var req dto.SubmitAnswerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.Fail("Validation failed", bindingErrors(err)...))
		return
	}

	resp, err := c.interviewService.SubmitAnswer(ctx.Request.Context(), userID, req)
	if err != nil {
		c.respondError(ctx, err, "Failed to process answer")
		return
	}
	ctx.JSON(http.StatusOK, dto.OK(resp))
}

// GetProgress godoc
// @Summary Aggregate statistics plus recent interviews
// @Tags Interviews
// @Produce json
// @Success 200 {object} dto.Response{data=dto.ProgressResponse}
// @Security BearerAuth
// @Router /interviews/progress [get]
func (c *InterviewController) GetProgress(ctx *gin.Context) {
	userID, _ := middleware.UserID(ctx)

	resp, err := c.statsService.GetProgress(userID)
	if err != nil {
		c.respondError(ctx, err, "Failed to fetch progress")
		return
	}
	ctx.JSON(http.StatusOK, dto.OK(resp))
}

// GetHistory godoc
// @Summary Paginated interview history
// @Tags Interviews
// @Produce json
// @Param page query int false "Page number (1-based)"
// @Param limit query int false "Page size (default 10)"
// @Param topic query string false "Filter by topic id"
// @Success 200 {object} dto.Response{data=dto.HistoryResponse}
// @Security BearerAuth
// @Router /interviews/history [get]
func (c *InterviewController) GetHistory(ctx *gin.Context) {
	userID, _ := middleware.UserID(ctx)

	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "10"))
	topicID := ctx.Query("topic")

	resp, err := c.statsService.GetHistory(userID, topicID, page, limit)
	if err != nil {
		c.respondError(ctx, err, "Failed to fetch interview history")
		return
	}
	ctx.JSON(http.StatusOK, dto.OK(resp))
}

// GetInterview godoc
// @Summary Fetch a single interview record
// @Tags Interviews
// @Produce json
// @Param id path int true "Interview ID"
// @Success 200 {object} dto.Response{data=dto.InterviewResponse}
// @Failure 404 {object} dto.Response
// @Security BearerAuth
// @Router /interviews/{id} [get]
func (c *InterviewController) GetInterview(ctx *gin.Context) {
	userID, _ := middleware.UserID(ctx)

	interviewID, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.Fail("Invalid interview ID"))
		return
	}

	resp, err := c.interviewService.GetInterview(userID, uint(interviewID))
	if err != nil {
		c.respondError(ctx, err, "Failed to fetch interview")
		return
	}
	ctx.JSON(http.StatusOK, dto.OK(resp))
}

// DeleteInterview godoc
// @Summary Delete a single interview record
// @Description Deletes the record if owned by the caller and recomputes the
// caller's summary. Unknown ids answer 404, never a silent success.
// @Tags Interviews
// @Produce json
// @Param id path int true "Interview ID"
// @Success 200 {object} dto.Response
// @Failure 404 {object} dto.Response
// @Security BearerAuth
// @Router /interviews/{id} [delete]
func (c *InterviewController) DeleteInterview(ctx *gin.Context) {
	userID, _ := middleware.UserID(ctx)

	interviewID, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.Fail("Invalid interview ID"))
		return
	}

	if err := c.interviewService.DeleteInterview(userID, uint(interviewID)); err != nil {
		c.respondError(ctx, err, "Failed to delete interview")
		return
	}
	ctx.JSON(http.StatusOK, dto.OKMessage("Interview deleted successfully"))
}

func (c *InterviewController) respondError(ctx *gin.Context, err error, genericMessage string) {
	appErr := apperror.From(err, "Interview not found")
	if appErr.Status() >= http.StatusInternalServerError {
		log.Error().Err(err).Str("path", ctx.FullPath()).Msg(genericMessage)
	}
	message := appErr.Message
	if message == "" {
		message = genericMessage
	}
	body := dto.Fail(message, appErr.Details...)
	if !c.cfg.IsProduction() && appErr.Unwrap() != nil {
		body.Errors = append(body.Errors, appErr.Unwrap().Error())
	}
	ctx.JSON(appErr.Status(), body)
}

func bindingErrors(err error) []string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []string{err.Error()}
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fe.Field()+" failed on the '"+fe.Tag()+"' rule")
	}
	return msgs
}
