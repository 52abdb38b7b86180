package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"interview_readiness_backend/internal/config"
	"interview_readiness_backend/internal/model"
	"interview_readiness_backend/internal/util"
	"interview_readiness_backend/pkg/logger"
	"interview_readiness_backend/pkg/monitoring"
	"interview_readiness_backend/pkg/tracing"
	"strconv"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"
)

const (
	defaultQuestionCount = 5
	maxQuestionCount     = 10
	fallbackExplanation  = "AI provider unavailable. Retry when provider key/config is set."
)

var errEmptyQuestions = errors.New("AI returned non-JSON/empty questions")

// Provider 文本生成服务，返回模型的原始输出
type Provider interface {
	Name() string
	Generate(ctx context.Context, prompt string) (string, error)
}

// NewProvider 根据配置选择提供商，默认 gemini
func NewProvider(cfg config.AIConfig) Provider {
	if cfg.ProviderName() == "openai" {
		return NewOpenAIProvider(cfg.OpenAI)
	}
	return NewGeminiProvider(cfg.Gemini)
}

type GenerateRequest struct {
	Skill      string
	Difficulty model.Difficulty
	Type       model.QuestionType
	Count      int
}

type GenerationResult struct {
	Provider      string                    `json:"provider"`
	UsedFallback  bool                      `json:"usedFallback"`
	ProviderError string                    `json:"providerError,omitempty"`
	Questions     []model.GeneratedQuestion `json:"questions"`
}

// QuestionGateway 调用提供商并把任何失败转换为占位题目
type QuestionGateway struct {
	provider Provider
	timeout  time.Duration
}

func NewQuestionGateway(provider Provider, timeout time.Duration) *QuestionGateway {
	if timeout <= 0 {
		timeout = 20 * time.Second
	}
	return &QuestionGateway{provider: provider, timeout: timeout}
}

func NewQuestionGatewayFromConfig(cfg config.AIConfig) *QuestionGateway {
	return NewQuestionGateway(NewProvider(cfg), cfg.Timeout())
}

func (g *QuestionGateway) ProviderName() string {
	return g.provider.Name()
}

// Normalize 校验参数并把 count 限制在 [1, 10]，0 视为默认值 5
func (req GenerateRequest) Normalize() (GenerateRequest, error) {
	req.Skill = strings.TrimSpace(req.Skill)
	if req.Skill == "" || req.Difficulty == "" || req.Type == "" {
		return req, util.NewValidationError("skill, difficulty and type are required")
	}
	if !req.Difficulty.Valid() {
		return req, util.NewValidationError("Invalid difficulty. Allowed: Beginner, Intermediate, Advanced")
	}
	if !req.Type.Valid() {
		return req, util.NewValidationError("Invalid type. Allowed: MCQ, Theory, Coding, Mixed")
	}
	if req.Count == 0 {
		req.Count = defaultQuestionCount
	}
	req.Count = util.Clamp(req.Count, 1, maxQuestionCount)
	return req, nil
}

// Generate 只在参数非法时返回错误，提供商失败一律降级为占位题目
func (g *QuestionGateway) Generate(ctx context.Context, req GenerateRequest) (*GenerationResult, error) {
	req, err := req.Normalize()
	if err != nil {
		return nil, err
	}

	result := &GenerationResult{Provider: g.provider.Name()}

	questions, err := g.call(ctx, req)
	if err != nil {
		logger.Log.Warn("Question generation fell back",
			zap.String("provider", result.Provider),
			zap.String("skill", req.Skill),
			zap.Error(err))
		result.UsedFallback = true
		result.ProviderError = err.Error()
		result.Questions = BuildFallbackQuestions(req)
	} else {
		result.Questions = questions
	}

	monitoring.RecordGeneration(result.Provider, result.UsedFallback)
	return result, nil
}

func (g *QuestionGateway) call(ctx context.Context, req GenerateRequest) ([]model.GeneratedQuestion, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	ctx, span := tracing.Tracer.Start(ctx, "ai.generate_questions")
	defer span.End()
	span.SetAttributes(
		attribute.String("ai.provider", g.provider.Name()),
		attribute.String("ai.skill", req.Skill),
		attribute.Int("ai.count", req.Count),
	)

	raw, err := g.provider.Generate(ctx, BuildPrompt(req))
	if err == nil {
		items := ExtractJSONArray(raw)
		if len(items) == 0 {
			err = errEmptyQuestions
		} else {
			return NormalizeQuestions(items, string(req.Type)), nil
		}
	}

	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	return nil, err
}

func BuildPrompt(req GenerateRequest) string {
	return fmt.Sprintf(`Generate %d interview questions for skill: %s.
Difficulty: %s
Type: %s

Rules:
1) Return ONLY valid JSON array.
2) Each item must contain:
   - id (string)
   - question (string)
   - type (MCQ/Theory/Coding)
   - options (array, only for MCQ, else empty array)
   - answer (string)
   - explanation (string)
3) Keep questions concise and practical.
4) Do not include markdown code fences.`, req.Count, req.Skill, req.Difficulty, req.Type)
}

// ExtractJSONArray 先整体解析，失败时截取第一个 '[' 到最后一个 ']'
func ExtractJSONArray(raw string) []interface{} {
	trimmed := strings.TrimSpace(raw)

	var items []interface{}
	if err := json.Unmarshal([]byte(trimmed), &items); err == nil {
		return items
	}

	first := strings.Index(trimmed, "[")
	last := strings.LastIndex(trimmed, "]")
	if first >= 0 && last > first {
		items = nil
		if err := json.Unmarshal([]byte(trimmed[first:last+1]), &items); err == nil {
			return items
		}
	}
	return nil
}

func NormalizeQuestions(items []interface{}, fallbackType string) []model.GeneratedQuestion {
	questions := make([]model.GeneratedQuestion, 0, len(items))
	for i, item := range items {
		obj, _ := item.(map[string]interface{})

		q := model.GeneratedQuestion{
			ID:          stringOr(obj["id"], fmt.Sprintf("q-%d", i+1)),
			Question:    stringOr(obj["question"], "Untitled question"),
			Type:        stringOr(obj["type"], fallbackType),
			Options:     []string{},
			Answer:      stringOr(obj["answer"], ""),
			Explanation: stringOr(obj["explanation"], ""),
		}
		if opts, ok := obj["options"].([]interface{}); ok {
			for _, opt := range opts {
				q.Options = append(q.Options, stringOr(opt, ""))
			}
		}
		questions = append(questions, q)
	}
	return questions
}

// stringOr 将 JSON 值转换为字符串，空值使用默认值
func stringOr(v interface{}, def string) string {
	switch val := v.(type) {
	case nil:
		return def
	case string:
		if val == "" {
			return def
		}
		return val
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case bool:
		if !val {
			return def
		}
		return "true"
	default:
		b, err := json.Marshal(val)
		if err != nil {
			return def
		}
		return string(b)
	}
}

func BuildFallbackQuestions(req GenerateRequest) []model.GeneratedQuestion {
	qType := string(req.Type)
	if req.Type == model.QuestionMixed {
		qType = string(model.QuestionTheory)
	}

	questions := make([]model.GeneratedQuestion, 0, req.Count)
	for i := 1; i <= req.Count; i++ {
		questions = append(questions, model.GeneratedQuestion{
			ID:          fmt.Sprintf("fallback-%d", i),
			Question:    fmt.Sprintf("[Fallback] %s %s question %d for %s", req.Difficulty, req.Type, i, req.Skill),
			Type:        qType,
			Options:     []string{},
			Answer:      "",
			Explanation: fallbackExplanation,
		})
	}
	return questions
}
