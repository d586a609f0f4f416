package enrich

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"github.com/jyotidabass/fitscore-calculator/internal/metrics"
	"github.com/jyotidabass/fitscore-calculator/internal/weights"
	"github.com/jyotidabass/fitscore-calculator/pkg/circuitbreaker"
	"github.com/jyotidabass/fitscore-calculator/pkg/logger"
)

// InsightService is the LLM-backed enricher. Every call runs under its own
// timeout behind a circuit breaker; any failure or malformed payload falls
// back to the local heuristic immediately, with no retries, and the caller
// never sees the error.
type InsightService struct {
	client      *openai.Client
	model       string
	temperature float32
	maxTokens   int
	timeout     time.Duration
	cb          *circuitbreaker.CircuitBreaker
	local       *LocalHeuristic
}

// InsightConfig carries the insight-service client settings.
type InsightConfig struct {
	APIKey      string
	Model       string
	Temperature float32
	MaxTokens   int
	Timeout     time.Duration
}

// NewInsightService builds the insight-backed enricher with the given local
// fallback.
func NewInsightService(cfg InsightConfig, local *LocalHeuristic) *InsightService {
	cb := circuitbreaker.NewCircuitBreaker("insight", circuitbreaker.Config{
		MaxRequests:      5,
		Interval:         time.Minute,
		Timeout:          30 * time.Second,
		FailureThreshold: 5,
		SuccessThreshold: 2,
		Logger:           logger.GetLogger(),
	})

	logger.Info("Insight service client initialized",
		zap.String("model", cfg.Model),
		zap.Duration("timeout", cfg.Timeout),
	)

	return &InsightService{
		client:      openai.NewClient(cfg.APIKey),
		model:       cfg.Model,
		temperature: cfg.Temperature,
		maxTokens:   cfg.MaxTokens,
		timeout:     cfg.Timeout,
		cb:          cb,
		local:       local,
	}
}

// DetectContext asks the insight service to classify the hiring context,
// backfilling any field it leaves empty from the heuristic detection.
func (s *InsightService) DetectContext(ctx context.Context, jobDescription, resumeText string) Context {
	prompt := fmt.Sprintf(`Analyze the job description and resume. Return a JSON object:
{"industry": "...", "company_type": "startup|enterprise|law_firm|accounting|healthcare|general",
"role_type": "technical|management|sales|legal|accounting|healthcare|general",
"role_level": "entry|mid|senior|executive", "key_requirements": [], "preferences": [],
"company_size": "small|medium|large", "growth_stage": "seed|series_a|series_b|established|public"}

Job Description:
%s

Resume:
%s

Return JSON only.`, jobDescription, resumeText)

	fallback := s.local.DetectContext(ctx, jobDescription, resumeText)

	var detected Context
	if err := s.completeJSON(ctx, "detect_context", prompt, &detected); err != nil {
		return fallback
	}

	// Malformed fields fall back individually; a partially useful
	// response still beats a wholesale discard.
	if detected.Industry == "" {
		detected.Industry = fallback.Industry
	}
	if detected.CompanyType == "" {
		detected.CompanyType = fallback.CompanyType
	}
	if detected.RoleType == "" {
		detected.RoleType = fallback.RoleType
	}
	if detected.RoleLevel == "" {
		detected.RoleLevel = fallback.RoleLevel
	}
	if detected.CompanySize == "" {
		detected.CompanySize = fallback.CompanySize
	}
	if detected.GrowthStage == "" {
		detected.GrowthStage = fallback.GrowthStage
	}
	if detected.KeyRequirements == nil {
		detected.KeyRequirements = []string{}
	}
	if detected.Preferences == nil {
		detected.Preferences = []string{}
	}
	return detected
}

// GenerateCriteria asks for an elite hiring bar tailored to the requisition.
func (s *InsightService) GenerateCriteria(ctx context.Context, jobDescription string, jobCtx Context) Criteria {
	ctxJSON, _ := json.Marshal(jobCtx)
	prompt := fmt.Sprintf(`Generate elite hiring criteria for top 1-2%% performers. Return JSON:
{"mission_critical_skills": [{"skill": "...", "description": "...", "importance": "critical|high|medium"}],
"elite_company_benchmarks": [], "expected_outcomes": [], "domain_mastery_requirements": [],
"leadership_indicators": [], "technical_complexity": "low|medium|high",
"scale_requirements": "small|medium|large", "industry_specific_requirements": []}

Context: %s

Job Description:
%s

Return JSON only.`, ctxJSON, jobDescription)

	var criteria Criteria
	if err := s.completeJSON(ctx, "generate_criteria", prompt, &criteria); err != nil {
		return s.local.GenerateCriteria(ctx, jobDescription, jobCtx)
	}
	if criteria.TechnicalComplexity == "" {
		criteria.TechnicalComplexity = "medium"
	}
	if criteria.ScaleRequirements == "" {
		criteria.ScaleRequirements = "medium"
	}
	return criteria
}

// AnalyzeSkills asks for an evidence-based skills match between both texts.
func (s *InsightService) AnalyzeSkills(ctx context.Context, resumeText, jobDescription string) SkillsAnalysis {
	prompt := fmt.Sprintf(`Extract and match skills between the resume and job description. Return JSON:
{"candidate_skills": [{"skill": "...", "evidence": "...", "proficiency": "basic|intermediate|advanced|expert", "years_experience": "..."}],
"required_skills": [{"skill": "...", "importance": "required|preferred|nice_to_have", "description": "..."}],
"skill_matches": [{"skill": "...", "match_quality": "exact|partial|inferred|missing", "candidate_evidence": "...", "requirement_level": "..."}],
"missing_critical_skills": [], "inferred_skills": [{"skill": "...", "reasoning": "...", "confidence": "high|medium|low"}]}

Resume:
%s

Job Description:
%s

Return JSON only.`, resumeText, jobDescription)

	var analysis SkillsAnalysis
	if err := s.completeJSON(ctx, "analyze_skills", prompt, &analysis); err != nil {
		return s.local.AnalyzeSkills(ctx, resumeText, jobDescription)
	}
	return analysis
}

// EvaluateElite scores the candidate against the smart criteria.
func (s *InsightService) EvaluateElite(ctx context.Context, resumeText string, criteria Criteria) EliteEvaluation {
	criteriaJSON, _ := json.Marshal(criteria)
	prompt := fmt.Sprintf(`Evaluate the candidate against elite hiring criteria. Scores are 0-10. Return JSON:
{"mission_critical_skills_score": {"score": 0, "matches": [], "gaps": [], "reasoning": "..."},
"elite_company_benchmark_score": {"score": 0, "matches": [], "reasoning": "..."},
"expected_outcomes_score": {"score": 0, "matches": [], "gaps": [], "reasoning": "..."},
"domain_mastery_score": {"score": 0, "matches": [], "gaps": [], "reasoning": "..."},
"leadership_score": {"score": 0, "matches": [], "reasoning": "..."},
"overall_elite_score": {"score": 0, "strengths": [], "concerns": [], "recommendation": "submit|reject|consider"}}

Resume:
%s

Criteria: %s

Return JSON only.`, resumeText, criteriaJSON)

	var eval EliteEvaluation
	if err := s.completeJSON(ctx, "evaluate_elite", prompt, &eval); err != nil {
		return s.local.EvaluateElite(ctx, resumeText, criteria)
	}
	return eval
}

// suggestedWeights is the wire shape of a weight suggestion; the reasoning
// field is explanatory and stripped before use.
type suggestedWeights struct {
	weights.Vector
	Reasoning string `json:"reasoning"`
}

// SuggestWeights asks for a context-tuned weight vector. A vector that does
// not validate is discarded so the resolver can derive weights locally.
func (s *InsightService) SuggestWeights(ctx context.Context, jobCtx Context, criteria Criteria) (weights.Vector, bool) {
	ctxJSON, _ := json.Marshal(jobCtx)
	criteriaJSON, _ := json.Marshal(criteria)
	prompt := fmt.Sprintf(`Adjust the fitscore weights for this hiring context. Defaults:
education 0.20, career_trajectory 0.20, company_relevance 0.15, tenure_stability 0.15,
most_important_skills 0.20, bonus_signals 0.05, red_flags -0.15 (penalty).
The six positive weights must sum to 1.0. Return JSON:
{"education": 0.20, "career_trajectory": 0.20, "company_relevance": 0.15, "tenure_stability": 0.15,
"most_important_skills": 0.20, "bonus_signals": 0.05, "red_flags": -0.15, "reasoning": "..."}

Context: %s
Criteria: %s

Return JSON only.`, ctxJSON, criteriaJSON)

	var suggested suggestedWeights
	if err := s.completeJSON(ctx, "suggest_weights", prompt, &suggested); err != nil {
		return weights.Vector{}, false
	}
	if err := suggested.Vector.Validate(); err != nil {
		logger.Warn("Insight weight suggestion rejected", zap.Error(err))
		metrics.InsightFallbacks.WithLabelValues("suggest_weights").Inc()
		return weights.Vector{}, false
	}
	return suggested.Vector, true
}

// Enhanced reports true: results are insight-backed when the service is
// reachable.
func (s *InsightService) Enhanced() bool { return true }

// completeJSON runs one chat completion under the per-call timeout and
// unmarshals the response into out. Any failure counts against the circuit
// breaker and increments the fallback metric for the operation.
func (s *InsightService) completeJSON(ctx context.Context, operation, prompt string, out interface{}) error {
	callCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	err := s.cb.Execute(callCtx, func() error {
		resp, err := s.client.CreateChatCompletion(callCtx, openai.ChatCompletionRequest{
			Model:       s.model,
			Temperature: s.temperature,
			MaxTokens:   s.maxTokens,
			Messages: []openai.ChatCompletionMessage{
				{Role: openai.ChatMessageRoleUser, Content: prompt},
			},
		})
		if err != nil {
			return fmt.Errorf("chat completion: %w", err)
		}
		if len(resp.Choices) == 0 {
			return fmt.Errorf("chat completion: empty response")
		}

		content := cleanJSONBlock(resp.Choices[0].Message.Content)
		if err := json.Unmarshal([]byte(content), out); err != nil {
			return fmt.Errorf("decode %s response: %w", operation, err)
		}
		return nil
	})

	if err != nil {
		logger.Warn("Insight service call failed, using heuristic fallback",
			zap.String("operation", operation),
			zap.Error(err),
		)
		metrics.InsightRequests.WithLabelValues(operation, "error").Inc()
		metrics.InsightFallbacks.WithLabelValues(operation).Inc()
		return err
	}

	metrics.InsightRequests.WithLabelValues(operation, "success").Inc()
	return nil
}

// cleanJSONBlock strips markdown code fences some models wrap around JSON.
func cleanJSONBlock(content string) string {
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")
	return strings.TrimSpace(content)
}
