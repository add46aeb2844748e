package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/googleai"

	"github.com/qazimatch/qazimatch/internal/models"
)

// MatchService ranks headhunt candidates with Gemini. It is optional
// infrastructure: when no API key is configured the rest of the system runs
// without it.
type MatchService struct {
	Client llms.Model
}

// NewMatchService initializes the Gemini client. Returns nil (service
// disabled) when the key is empty or the client cannot be built.
func NewMatchService(apiKey string) *MatchService {
	if apiKey == "" {
		return nil
	}

	llm, err := googleai.New(context.Background(),
		googleai.WithAPIKey(apiKey),
		googleai.WithDefaultModel("gemini-2.5-flash"),
	)
	if err != nil {
		logrus.WithError(err).Warn("candidate matcher disabled: Gemini client failed")
		return nil
	}
	return &MatchService{Client: llm}
}

const rankPrompt = `
You are a technical recruiter assistant. Given a job posting and a numbered
list of candidates, order the candidate numbers from best to worst fit.

### INSTRUCTIONS:
1. Judge fit from the job requirements against each candidate's cover letter.
2. Output a JSON array of zero-based candidate indices only, best first.
3. Do not wrap the output in markdown code blocks. Output nothing else.

### JOB:
Title: %s
Requirements: %s
Description: %s

### CANDIDATES:
%s
`

// RankCandidates returns apps reordered best-fit-first. Any model failure
// falls back to the original order.
func (s *MatchService) RankCandidates(ctx context.Context, job *models.Job, apps []models.Application) []models.Application {
	if job == nil || len(apps) < 2 {
		return apps
	}

	var sb strings.Builder
	for i, app := range apps {
		name := app.ApplicantID
		if app.Applicant != nil && app.Applicant.Name != "" {
			name = app.Applicant.Name
		}
		letter := app.CoverLetter
		if len(letter) > 2000 {
			letter = letter[:2000]
		}
		fmt.Fprintf(&sb, "%d. %s - %s\n", i, name, letter)
	}

	prompt := fmt.Sprintf(rankPrompt, job.Title, job.Requirements, job.Description, sb.String())
	resp, err := llms.GenerateFromSinglePrompt(ctx, s.Client, prompt)
	if err != nil {
		logrus.WithError(err).Warn("candidate ranking failed")
		return apps
	}

	var order []int
	if err := json.Unmarshal([]byte(strings.TrimSpace(resp)), &order); err != nil {
		logrus.WithField("raw", resp).Warn("candidate ranking returned non-JSON")
		return apps
	}

	ranked := make([]models.Application, 0, len(apps))
	seen := make(map[int]bool)
	for _, idx := range order {
		if idx >= 0 && idx < len(apps) && !seen[idx] {
			ranked = append(ranked, apps[idx])
			seen[idx] = true
		}
	}
	// Keep anything the model dropped.
	for i, app := range apps {
		if !seen[i] {
			ranked = append(ranked, app)
		}
	}
	return ranked
}
