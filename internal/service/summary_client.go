package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"spine-intake/internal/domain"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// Summarizer 临床摘要服务（LLM 代理）的调用接口
type Summarizer interface {
	Summarize(ctx context.Context, prompt string) (string, error)
}

// SummaryRequest 摘要服务请求体
type SummaryRequest struct {
	Model  string `json:"model,omitempty"`
	Prompt string `json:"prompt"`
}

// SummaryResponse 摘要服务响应体
type SummaryResponse struct {
	Summary string `json:"summary"`
	Error   string `json:"error,omitempty"`
}

// SummaryClient posts prompts to the clinical summary endpoint.
type SummaryClient struct {
	httpClient *resty.Client
	model      string
	logger     *zap.Logger
}

const summaryPath = "/v1/summary"

// NewSummaryClient 创建摘要客户端
func NewSummaryClient(baseURL, apiKey, model string, logger *zap.Logger) *SummaryClient {
	client := resty.New().
		SetBaseURL(strings.TrimSuffix(baseURL, "/")).
		SetTimeout(60 * time.Second). // 模型生成可能较慢
		SetRetryCount(2).
		SetRetryWaitTime(1 * time.Second).
		SetRetryMaxWaitTime(5 * time.Second).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")
	if apiKey != "" {
		client.SetAuthToken(apiKey)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SummaryClient{httpClient: client, model: model, logger: logger}
}

func (c *SummaryClient) Summarize(ctx context.Context, prompt string) (string, error) {
	var response SummaryResponse
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetBody(SummaryRequest{Model: c.model, Prompt: prompt}).
		SetResult(&response).
		SetError(&response).
		Post(summaryPath)
	if err != nil {
		c.logger.Error("Summary API call failed", zap.Error(err))
		return "", fmt.Errorf("failed to call summary API: %w", err)
	}
	if resp.IsError() {
		c.logger.Error("Summary API returned error",
			zap.Int("status_code", resp.StatusCode()),
			zap.String("error", response.Error),
		)
		return "", fmt.Errorf("summary API error: status %d %s", resp.StatusCode(), response.Error)
	}
	if strings.TrimSpace(response.Summary) == "" {
		return "", fmt.Errorf("summary API returned an empty summary")
	}
	return response.Summary, nil
}

// BuildSummaryPrompt renders region and intensity verbatim, one line per mark in
// the order they were placed.
func BuildSummaryPrompt(areas []domain.PainArea) string {
	var b strings.Builder
	b.WriteString("Summarize the patient's self-reported pain for a spine clinician.\n")
	if len(areas) == 0 {
		b.WriteString("The patient did not mark any pain areas.\n")
		return b.String()
	}
	b.WriteString("Pain areas (intensity 0-10):\n")
	for _, a := range areas {
		fmt.Fprintf(&b, "- %s: %d/10 (%s)\n", a.Region, a.Intensity, a.Notes())
	}
	return b.String()
}
