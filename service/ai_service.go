package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-resty/resty/v2"

	"sip-planner/domain"
)

const (
	defaultAIURL   = "https://api.openai.com/v1/chat/completions"
	defaultAIModel = "gpt-4o-mini"
)

// Explainer attaches a plain-language explanation to a result.
type Explainer interface {
	ExplainPlan(ctx context.Context, req domain.CalculationRequest, summary domain.Summary) string
	ExplainGoal(ctx context.Context, req domain.GoalRequest, result domain.GoalResult) string
}

type AIConfig struct {
	APIKey   string
	URL      string
	Model    string
	Timeout  time.Duration
	Currency string
}

type AIService struct {
	apiKey   string
	apiURL   string
	model    string
	currency string
	enabled  bool
	client   *resty.Client
}

type OpenAIRequest struct {
	Model     string    `json:"model"`
	Messages  []Message `json:"messages"`
	MaxTokens int       `json:"max_tokens,omitempty"`
}

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type OpenAIResponse struct {
	Choices []struct {
		Message Message `json:"message"`
	} `json:"choices"`
}

func NewAIService(cfg AIConfig) *AIService {
	if cfg.URL == "" {
		cfg.URL = defaultAIURL
	}
	if cfg.Model == "" {
		cfg.Model = defaultAIModel
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	if cfg.Currency == "" {
		cfg.Currency = DefaultCurrency
	}

	return &AIService{
		apiKey:   cfg.APIKey,
		apiURL:   cfg.URL,
		model:    cfg.Model,
		currency: cfg.Currency,
		enabled:  cfg.APIKey != "",
		client:   resty.New().SetTimeout(cfg.Timeout),
	}
}

func (s *AIService) Enabled() bool {
	return s.enabled
}

// ExplainPlan explains what drives the final value of a plan.
func (s *AIService) ExplainPlan(ctx context.Context, req domain.CalculationRequest, summary domain.Summary) string {
	if !s.enabled {
		return s.fallbackPlanExplanation(req, summary)
	}

	prompt := fmt.Sprintf(`Explain the outcome of this systematic investment plan (SIP) in 3-4 sentences.

PLAN:
- Expected annual return: %.2f%%
- Duration: %d years
- Initial monthly SIP: %s, increased by %.2f%% every year
- Initial lump sum: %s

RESULT:
- Final portfolio value: %s
- Total amount invested: %s
- Final monthly SIP amount: %s

Explain how much of the final value comes from growth versus contributions and how the annual increase contributes. Returns are compounded monthly.`,
		req.Rate, req.Years,
		FormatCurrency(s.currency, req.InitialSIP), req.SIPIncreaseRate,
		FormatCurrency(s.currency, req.InitialInvestment),
		FormatCurrency(s.currency, summary.FinalValue),
		FormatCurrency(s.currency, summary.TotalInvested),
		FormatCurrency(s.currency, summary.FinalContribution))

	explanation, err := s.callLLM(ctx, prompt)
	if err != nil {
		slog.Warn("ai explanation failed, using fallback", "op", "explain_plan", "error", err)
		return s.fallbackPlanExplanation(req, summary)
	}
	return explanation
}

// ExplainGoal explains the duration found for a target amount.
func (s *AIService) ExplainGoal(ctx context.Context, req domain.GoalRequest, result domain.GoalResult) string {
	if !s.enabled {
		return s.fallbackGoalExplanation(result)
	}

	prompt := fmt.Sprintf(`A saver wants to reach %s with a monthly SIP of %s increased by %.2f%% every year, a lump sum of %s and an expected annual return of %.2f%%.
The target is %s after %d years, where the portfolio is worth %s.
Explain this in 2-3 motivating but realistic sentences.`,
		FormatCurrency(s.currency, req.Target),
		FormatCurrency(s.currency, req.InitialSIP), req.SIPIncreaseRate,
		FormatCurrency(s.currency, req.InitialInvestment), req.Rate,
		reachedText(result.Reached), result.RecommendedYear,
		FormatCurrency(s.currency, result.FinalValue))

	explanation, err := s.callLLM(ctx, prompt)
	if err != nil {
		slog.Warn("ai explanation failed, using fallback", "op", "explain_goal", "error", err)
		return s.fallbackGoalExplanation(result)
	}
	return explanation
}

func (s *AIService) callLLM(ctx context.Context, prompt string) (string, error) {
	reqBody := OpenAIRequest{
		Model: s.model,
		Messages: []Message{
			{
				Role:    "system",
				Content: "You are a personal finance educator. You explain investment projections clearly, with concrete numbers, and you never promise returns.",
			},
			{
				Role:    "user",
				Content: prompt,
			},
		},
		MaxTokens: 300,
	}

	var out OpenAIResponse
	resp, err := s.client.R().
		SetContext(ctx).
		SetAuthToken(s.apiKey).
		SetHeader("Content-Type", "application/json").
		SetBody(reqBody).
		SetResult(&out).
		Post(s.apiURL)
	if err != nil {
		return "", err
	}

	if resp.IsError() {
		return "", fmt.Errorf("API error (status %d): %s", resp.StatusCode(), resp.String())
	}

	if len(out.Choices) == 0 {
		return "", errors.New("no response from AI")
	}

	return out.Choices[0].Message.Content, nil
}

func (s *AIService) fallbackPlanExplanation(req domain.CalculationRequest, summary domain.Summary) string {
	growth := summary.FinalValue - summary.TotalInvested
	return fmt.Sprintf("Over %d years you invest %s in total and the portfolio grows to %s, so %s comes from compounding at %.2f%% a year. Raising the SIP by %.2f%% every year takes the monthly amount to %s by the end of the plan.",
		req.Years,
		FormatCurrency(s.currency, summary.TotalInvested),
		FormatCurrency(s.currency, summary.FinalValue),
		FormatCurrency(s.currency, growth),
		req.Rate, req.SIPIncreaseRate,
		FormatCurrency(s.currency, summary.FinalContribution))
}

func (s *AIService) fallbackGoalExplanation(result domain.GoalResult) string {
	if !result.Reached {
		return fmt.Sprintf("The target of %s is not reached within %d years; the portfolio would be worth %s. Consider a higher SIP or a larger annual increase.",
			FormatCurrency(s.currency, result.Target), result.RecommendedYear,
			FormatCurrency(s.currency, result.FinalValue))
	}
	return fmt.Sprintf("The target of %s is reached after %d years, when the portfolio is worth %s.",
		FormatCurrency(s.currency, result.Target), result.RecommendedYear,
		FormatCurrency(s.currency, result.FinalValue))
}

func reachedText(reached bool) string {
	if reached {
		return "reached"
	}
	return "not reached"
}
