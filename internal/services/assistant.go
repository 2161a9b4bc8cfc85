package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/madenai/arqflow/internal/db/models"
	"github.com/madenai/arqflow/internal/db/repos"
	"github.com/madenai/arqflow/internal/external"
	"github.com/madenai/arqflow/internal/logger"
)

// Assistant service errors
var (
	ErrAssistantUnavailable = errors.New("assistant service not configured")
	ErrAIQuotaExceeded      = errors.New("assistant quota exceeded for current plan")
)

// UsageRecorder records assistant invocations for quota accounting. The
// repository satisfies it; tests can swap in a no-op.
type UsageRecorder interface {
	Create(ctx context.Context, metric *models.AIUsageMetric) error
}

// NoopUsageRecorder discards usage metrics.
type NoopUsageRecorder struct{}

// Create implements UsageRecorder.
func (NoopUsageRecorder) Create(_ context.Context, _ *models.AIUsageMetric) error {
	return nil
}

// ChatReply is the assistant's answer surfaced to the API.
type ChatReply struct {
	Reply            string `json:"reply"`
	Model            string `json:"model"`
	PromptTokens     int    `json:"prompt_tokens"`
	CompletionTokens int    `json:"completion_tokens"`
}

// Assistant provides the project-scoped chat. Every call is checked against
// the user's plan quota and recorded for admin reporting.
type Assistant struct {
	client   *external.AssistantClient
	projects *repos.ProjectRepository
	subs     *repos.SubscriptionRepository
	usage    *repos.AIUsageRepository
	recorder UsageRecorder
}

// NewAssistantService creates a new assistant service instance.
func NewAssistantService(
	client *external.AssistantClient,
	projects *repos.ProjectRepository,
	subs *repos.SubscriptionRepository,
	usage *repos.AIUsageRepository,
	recorder UsageRecorder,
) *Assistant {
	if recorder == nil {
		recorder = NoopUsageRecorder{}
	}
	return &Assistant{
		client:   client,
		projects: projects,
		subs:     subs,
		usage:    usage,
		recorder: recorder,
	}
}

// Chat sends a message scoped to one of the user's projects.
func (s *Assistant) Chat(ctx context.Context, ownerID uint, projectID uint, message string) (*ChatReply, error) {
	if s.client == nil {
		return nil, ErrAssistantUnavailable
	}

	project, err := s.projects.Get(ctx, ownerID, projectID)
	if err != nil {
		return nil, errors.Join(ErrProjectNotFound, err)
	}

	if err := s.checkQuota(ctx, ownerID); err != nil {
		return nil, err
	}

	resp, err := s.client.Chat(ctx, external.ChatRequest{
		ProjectID: project.ID,
		Message:   message,
		Context:   projectContext(project),
	})
	if err != nil {
		return nil, err
	}

	metric := &models.AIUsageMetric{
		UserID:           ownerID,
		ProjectID:        project.ID,
		Operation:        "assistant.chat",
		AIModel:          resp.Model,
		PromptTokens:     resp.PromptTokens,
		CompletionTokens: resp.CompletionTokens,
	}
	if err := s.recorder.Create(ctx, metric); err != nil {
		// Accounting failure must not eat a reply the user already paid for.
		logger.Errorf("failed to record assistant usage for user %d: %v", ownerID, err)
	}

	return &ChatReply{
		Reply:            resp.Reply,
		Model:            resp.Model,
		PromptTokens:     resp.PromptTokens,
		CompletionTokens: resp.CompletionTokens,
	}, nil
}

// checkQuota compares the user's recorded calls against the plan quota. A
// quota of zero means unlimited.
func (s *Assistant) checkQuota(ctx context.Context, userID uint) error {
	sub, err := s.subs.GetByUser(ctx, userID)
	if err != nil {
		return err
	}
	if sub.AIQuota <= 0 {
		return nil
	}

	count, err := s.usage.CountByUser(ctx, userID)
	if err != nil {
		return err
	}
	if count >= int64(sub.AIQuota) {
		return ErrAIQuotaExceeded
	}
	return nil
}

// projectContext builds the short summary the assistant is scoped to.
func projectContext(p *models.Project) string {
	return fmt.Sprintf("Projeto %q, tipo %s, área total %.2f m², status %s.",
		p.Name, p.ProjectType, p.TotalArea, p.Status)
}
