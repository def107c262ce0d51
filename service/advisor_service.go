package service

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"finconsult/domain"
	"finconsult/report"
	"finconsult/repository"
)

// AdvisorService turns a computed analysis into a short plain-language
// explanation. With no API key configured it falls back to canned text, so
// callers can always attach an explanation. Responses are cached by a hash
// of the analysis so identical inputs never hit the API twice.
type AdvisorService struct {
	apiKey     string
	apiURL     string
	enabled    bool
	httpClient *http.Client
	cache      repository.CacheRepository
	log        *logrus.Logger
}

type openAIRequest struct {
	Model     string          `json:"model"`
	Messages  []openAIMessage `json:"messages"`
	MaxTokens int             `json:"max_tokens,omitempty"`
}

type openAIMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type openAIResponse struct {
	Choices []struct {
		Message openAIMessage `json:"message"`
	} `json:"choices"`
}

func NewAdvisorService(apiKey string, cache repository.CacheRepository, log *logrus.Logger) *AdvisorService {
	return &AdvisorService{
		apiKey:  apiKey,
		apiURL:  "https://api.openai.com/v1/chat/completions",
		enabled: apiKey != "",
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		cache: cache,
		log:   log,
	}
}

// Explain returns a short reading of the given analysis. kind names the
// analysis ("loan", "roi", "break_even", ...) and selects the fallback text.
func (s *AdvisorService) Explain(kind string, metrics []domain.Metric) string {
	if !s.enabled {
		return fallbackExplanation(kind)
	}

	key := cacheKey(kind, metrics)
	if cached, ok := s.cache.Get(key); ok {
		return cached
	}

	explanation, err := s.callLLM(buildPrompt(kind, metrics))
	if err != nil {
		s.log.WithError(err).WithField("kind", kind).Warn("advisor request failed, using fallback")
		return fallbackExplanation(kind)
	}

	if err := s.cache.Set(key, explanation, advisorCacheTTL); err != nil {
		s.log.WithError(err).Warn("failed to cache advisor explanation")
	}
	return explanation
}

func cacheKey(kind string, metrics []domain.Metric) string {
	h := sha256.New()
	h.Write([]byte(kind))
	for _, m := range metrics {
		fmt.Fprintf(h, "|%s=%g", m.Key, m.Value)
	}
	return "advisor:" + hex.EncodeToString(h.Sum(nil))
}

func buildPrompt(kind string, metrics []domain.Metric) string {
	var lines strings.Builder
	for _, m := range metrics {
		lines.WriteString(fmt.Sprintf("- %s: %s\n", report.Label(m.Key), report.FormatValue(m.Key, m.Value)))
	}

	return fmt.Sprintf(`Here are the results of a %s analysis:

%s
Explain in 2-3 plain sentences what these figures mean for the person who
requested them. Be concrete about the numbers, avoid jargon, and do not
repeat the figures as a list.`, strings.ReplaceAll(kind, "_", " "), lines.String())
}

func (s *AdvisorService) callLLM(prompt string) (string, error) {
	reqBody := openAIRequest{
		Model: "gpt-4o-mini",
		Messages: []openAIMessage{
			{
				Role:    "system",
				Content: "You are a financial consultant. You explain loan, investment and business analysis results in clear, plain language for non-specialists.",
			},
			{
				Role:    "user",
				Content: prompt,
			},
		},
		MaxTokens: 200,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequest("POST", s.apiURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", s.apiKey))

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("API error (status %d): %s", resp.StatusCode, string(body))
	}

	var aiResp openAIResponse
	if err := json.NewDecoder(resp.Body).Decode(&aiResp); err != nil {
		return "", err
	}
	if len(aiResp.Choices) == 0 {
		return "", fmt.Errorf("no response from AI")
	}
	return aiResp.Choices[0].Message.Content, nil
}

func fallbackExplanation(kind string) string {
	switch kind {
	case "loan":
		return "The monthly payment covers both interest and principal; over the full term the total interest is the difference between everything you pay and the amount you borrowed."
	case "compound_interest":
		return "The final amount reflects interest earned on both the principal and previously earned interest; the growth percentage measures the total gain relative to the initial investment."
	case "savings_goal":
		return "This is how long your monthly contributions need to run, with interest compounding along the way, before the balance first reaches the target."
	case "roi":
		return "The ROI percentage is the total gain relative to what was invested; the annualized figure, when present, is the constant yearly growth rate that would produce the same result."
	case "break_even":
		return "Each unit sold contributes its margin toward fixed costs; the break-even point is where those contributions first cover them, and every unit beyond it is profit."
	case "profit_margin":
		return "The margin measures how much of each revenue dollar remains as profit after all costs."
	case "payback":
		return "The payback period is how long cumulative cash inflows take to return the initial outlay; shorter periods mean lower exposure."
	case "ratios":
		return "These ratios measure how efficiently assets generate revenue and profit, and whether current assets comfortably cover current liabilities."
	}
	return "The figures above summarize the requested analysis."
}
