package engine

import (
	"context"
	"log/slog"
	"math"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/llmcouncil/councild/pkg/cache"
	"github.com/llmcouncil/councild/pkg/llm"
)

const titleFallback = "New Conversation"

const titleTimeout = 30 * time.Second

// Stage1Result is one council member's answer.
type Stage1Result struct {
	Model    string `json:"model"`
	Response string `json:"response"`
}

// Stage2Result is one judge's ranking, raw and parsed. Valid means the
// final text parsed, validated, and produced a non-empty ranking.
type Stage2Result struct {
	Model           string             `json:"model"`
	Ranking         string             `json:"ranking"`
	ParsedRanking   []string           `json:"parsed_ranking"`
	ParsedJSON      *Stage2JudgeOutput `json:"parsed_json"`
	ValidationError *string            `json:"validation_error"`
	Valid           bool               `json:"valid"`
}

// Stage3Result is the chairman's synthesis.
type Stage3Result struct {
	Model    string `json:"model"`
	Response string `json:"response"`
}

// AggregateRanking is one model's averaged judge position.
type AggregateRanking struct {
	Model         string  `json:"model"`
	AverageRank   float64 `json:"average_rank"`
	RankingsCount int     `json:"rankings_count"`
}

// CouncilOptions configures one council run.
type CouncilOptions struct {
	CouncilModels []string
	// JudgeModels defaults to CouncilModels when empty.
	JudgeModels []string
	Chairman    string
	// TitleModel defaults to google/gemini-2.5-flash when empty.
	TitleModel string
	Budget     *Budget
	// Timeout overrides the client's default per-call timeout when positive.
	Timeout time.Duration
}

// CouncilRunner drives the three council stages for a single run. A set
// budget forces sequential fan-out so the gate sees every attempt's usage
// before the next call starts.
type CouncilRunner struct {
	querier Querier
	ledger  Ledger
	cache   Cache
	gate    *budgetGate

	councilModels []string
	judgeModels   []string
	chairman      string
	titleModel    string
	budget        *Budget
	timeout       time.Duration
}

// NewCouncilRunner builds a runner bound to one run's ledger.
func NewCouncilRunner(querier Querier, ledger Ledger, c Cache, opts CouncilOptions) *CouncilRunner {
	judges := opts.JudgeModels
	if len(judges) == 0 {
		judges = opts.CouncilModels
	}
	titleModel := opts.TitleModel
	if titleModel == "" {
		titleModel = "google/gemini-2.5-flash"
	}
	return &CouncilRunner{
		querier:       querier,
		ledger:        ledger,
		cache:         c,
		gate:          newBudgetGate(opts.Budget, ledger),
		councilModels: opts.CouncilModels,
		judgeModels:   judges,
		chairman:      opts.Chairman,
		titleModel:    titleModel,
		budget:        opts.Budget,
		timeout:       opts.Timeout,
	}
}

func (r *CouncilRunner) query(ctx context.Context, model, prompt string, timeout time.Duration) llm.Result {
	return r.querier.Query(ctx, model, []llm.Message{{Role: "user", Content: prompt}}, llm.QueryOptions{Timeout: timeout})
}

func (r *CouncilRunner) record(ctx context.Context, model string, callID uuid.UUID, attempt int, res llm.Result) error {
	return r.ledger.RecordUsage(ctx, UsageRecord{Model: model, CallID: callID, Attempt: attempt, Result: res})
}

// GenerateTitle asks a small model for a conversation title. Any failure
// degrades to the fallback title; only budget and ledger errors propagate.
func (r *CouncilRunner) GenerateTitle(ctx context.Context, userQuery string) (string, error) {
	res := r.query(ctx, r.titleModel, buildTitlePrompt(userQuery), titleTimeout)
	if err := r.record(ctx, r.titleModel, uuid.New(), 0, res); err != nil {
		return titleFallback, err
	}

	step := StepRecord{
		StageName: "title",
		StepType:  "title",
		AgentRole: "system",
		Model:     r.titleModel,
		Output:    map[string]interface{}{"content": derefContent(res.Content), "ok": res.OK()},
		LatencyMS: intPtr(res.LatencyMS),
	}
	if res.Error != "" {
		step.ErrorText = strPtr(res.Error)
	}
	if err := r.ledger.AddStep(ctx, step); err != nil {
		return titleFallback, err
	}
	if err := r.gate.check(ctx); err != nil {
		return titleFallback, err
	}

	if !res.OK() {
		return titleFallback, nil
	}
	title := strings.Trim(strings.TrimSpace(*res.Content), "\"'")
	if title == "" {
		title = titleFallback
	}
	// Truncate on runes so a multibyte title cannot be split mid-character.
	if runes := []rune(title); len(runes) > maxTitleChars {
		title = string(runes[:maxTitleChars-3]) + "..."
	}
	return title, nil
}

// Stage1 collects one answer per council member. Models that fail or
// return no content are dropped; cached answers skip the upstream call.
func (r *CouncilRunner) Stage1(ctx context.Context, userQuery string) ([]Stage1Result, error) {
	one := func(ctx context.Context, model string) (*string, error) {
		key, err := cache.MakeKey(map[string]interface{}{
			"stage":          "stage1",
			"model":          model,
			"user_query":     userQuery,
			"council_models": r.councilModels,
		})
		if err != nil {
			return nil, err
		}

		if cached, ok := r.cacheGet(ctx, key); ok {
			if content, ok := cached["content"].(string); ok {
				step := StepRecord{
					StageName: "stage1",
					StepType:  "stage1",
					AgentRole: "council_member",
					Model:     model,
					Output:    map[string]interface{}{"content": content, "cache_hit": true},
					LatencyMS: intPtr(0),
				}
				if err := r.ledger.AddStep(ctx, step); err != nil {
					return nil, err
				}
				return &content, nil
			}
		}

		res := r.query(ctx, model, userQuery, r.timeout)
		if err := r.record(ctx, model, uuid.New(), 0, res); err != nil {
			return nil, err
		}
		step := StepRecord{
			StageName: "stage1",
			StepType:  "stage1",
			AgentRole: "council_member",
			Model:     model,
			Output:    map[string]interface{}{"content": derefContent(res.Content), "cache_hit": false},
			LatencyMS: intPtr(res.LatencyMS),
		}
		if res.Error != "" {
			step.ErrorText = strPtr(res.Error)
		}
		if err := r.ledger.AddStep(ctx, step); err != nil {
			return nil, err
		}
		if err := r.gate.check(ctx); err != nil {
			return nil, err
		}
		if res.OK() {
			r.cacheSet(ctx, key, map[string]interface{}{"content": *res.Content})
			return res.Content, nil
		}
		return nil, nil
	}

	contents, err := fanOut(ctx, !r.budget.Empty(), r.councilModels, one)
	if err != nil {
		return nil, err
	}

	var results []Stage1Result
	for i, model := range r.councilModels {
		if contents[i] != nil {
			results = append(results, Stage1Result{Model: model, Response: *contents[i]})
		}
	}
	return results, nil
}

// Stage2 has every judge rank the anonymized stage-1 answers as strict
// JSON, with one correction retry per judge. Only valid judgements are
// cached and only valid judgements count toward the aggregate ranking.
func (r *CouncilRunner) Stage2(ctx context.Context, userQuery string, stage1 []Stage1Result) ([]Stage2Result, map[string]string, []AggregateRanking, error) {
	prompt, labelToModel := buildStage2Prompt(userQuery, stage1)

	judge := func(ctx context.Context, model string) (*Stage2Result, error) {
		key, err := cache.MakeKey(map[string]interface{}{
			"stage":      "stage2",
			"model":      model,
			"user_query": userQuery,
			"prompt":     prompt,
		})
		if err != nil {
			return nil, err
		}

		if cached, ok := r.cacheGet(ctx, key); ok {
			if result := stage2ResultFromCache(model, cached); result != nil {
				stepOut := map[string]interface{}{"cache_hit": true}
				for k, v := range cached {
					stepOut[k] = v
				}
				step := StepRecord{
					StageName: "stage2",
					StepType:  "stage2",
					AgentRole: "council_member",
					Model:     model,
					Output:    stepOut,
					LatencyMS: intPtr(0),
				}
				if err := r.ledger.AddStep(ctx, step); err != nil {
					return nil, err
				}
				return result, nil
			}
		}

		callID := uuid.New()
		first := r.query(ctx, model, prompt, r.timeout)
		if err := r.record(ctx, model, callID, 0, first); err != nil {
			return nil, err
		}

		rawText := derefContent(first.Content)
		ranking, parsed, parseErr := parseStage2(rawText)
		valid := parseErr == nil && parsed != nil && len(ranking) > 0

		if err := r.addStage2Step(ctx, model, 0, rawText, parsed, parseErr, first); err != nil {
			return nil, err
		}
		if err := r.gate.check(ctx); err != nil {
			return nil, err
		}
		if !first.OK() {
			return nil, nil
		}

		if parseErr != nil {
			correction := buildCorrectionPrompt(stage2SchemaExample, rawText, *parseErr)
			retry := r.query(ctx, model, correction, r.timeout)
			if err := r.record(ctx, model, callID, 1, retry); err != nil {
				return nil, err
			}
			if retry.OK() {
				rawText = *retry.Content
				ranking, parsed, parseErr = parseStage2(rawText)
				valid = parseErr == nil && parsed != nil && len(ranking) > 0
			} else {
				valid = false
			}
			if err := r.addStage2Step(ctx, model, 1, rawText, parsed, parseErr, retry); err != nil {
				return nil, err
			}
			if err := r.gate.check(ctx); err != nil {
				return nil, err
			}
		}

		result := &Stage2Result{
			Model:           model,
			Ranking:         rawText,
			ParsedRanking:   ranking,
			ParsedJSON:      parsed,
			ValidationError: parseErr,
			Valid:           valid,
		}
		if valid {
			r.cacheSet(ctx, key, map[string]interface{}{
				"ranking":          result.Ranking,
				"parsed_ranking":   result.ParsedRanking,
				"parsed_json":      toMap(result.ParsedJSON),
				"validation_error": nil,
				"valid":            true,
			})
		}
		return result, nil
	}

	judged, err := fanOut(ctx, !r.budget.Empty(), r.judgeModels, judge)
	if err != nil {
		return nil, nil, nil, err
	}

	var results []Stage2Result
	for _, result := range judged {
		if result != nil {
			results = append(results, *result)
		}
	}
	return results, labelToModel, CalculateAggregateRankings(results, labelToModel), nil
}

func (r *CouncilRunner) addStage2Step(ctx context.Context, model string, attempt int, rawText string, parsed *Stage2JudgeOutput, parseErr *string, res llm.Result) error {
	output := map[string]interface{}{
		"raw_text":         rawText,
		"validation_error": nil,
	}
	if parsed != nil {
		output["parsed_json"] = toMap(parsed)
	} else {
		output["parsed_json"] = nil
	}
	if parseErr != nil {
		output["validation_error"] = *parseErr
	}

	step := StepRecord{
		StageName: "stage2",
		StepType:  "stage2",
		AgentRole: "council_member",
		Model:     model,
		Attempt:   attempt,
		IsRetry:   attempt > 0,
		Output:    output,
		LatencyMS: intPtr(res.LatencyMS),
	}
	switch {
	case res.Error != "":
		step.ErrorText = strPtr(res.Error)
	case parseErr != nil:
		step.ErrorText = parseErr
	}
	return r.ledger.AddStep(ctx, step)
}

// Stage3 asks the chairman to synthesize the final answer. A chairman
// failure degrades to a fixed error sentence rather than failing the run.
func (r *CouncilRunner) Stage3(ctx context.Context, userQuery string, stage1 []Stage1Result, stage2 []Stage2Result) (Stage3Result, error) {
	prompt := buildStage3Prompt(userQuery, stage1, stage2)
	res := r.query(ctx, r.chairman, prompt, r.timeout)
	if err := r.record(ctx, r.chairman, uuid.New(), 0, res); err != nil {
		return Stage3Result{}, err
	}

	step := StepRecord{
		StageName: "stage3",
		StepType:  "stage3",
		AgentRole: "leader",
		Model:     r.chairman,
		Output:    map[string]interface{}{"content": derefContent(res.Content), "ok": res.OK()},
		LatencyMS: intPtr(res.LatencyMS),
	}
	if res.Error != "" {
		step.ErrorText = strPtr(res.Error)
	}
	if err := r.ledger.AddStep(ctx, step); err != nil {
		return Stage3Result{}, err
	}
	if err := r.gate.check(ctx); err != nil {
		return Stage3Result{}, err
	}

	if !res.OK() {
		return Stage3Result{Model: r.chairman, Response: "Error: Unable to generate final synthesis."}, nil
	}
	return Stage3Result{Model: r.chairman, Response: *res.Content}, nil
}

// fanOut runs fn for each model, in parallel when no budget is set and
// sequentially otherwise. Results are positionally aligned with models.
// In sequential mode the first error (a budget abort included) stops the
// remaining calls before they are issued.
func fanOut[T any](ctx context.Context, sequential bool, models []string, fn func(context.Context, string) (T, error)) ([]T, error) {
	results := make([]T, len(models))
	if sequential {
		for i, m := range models {
			var err error
			if results[i], err = fn(ctx, m); err != nil {
				return nil, err
			}
		}
		return results, nil
	}

	errs := make([]error, len(models))
	var wg sync.WaitGroup
	for i, m := range models {
		wg.Add(1)
		go func(i int, m string) {
			defer wg.Done()
			results[i], errs[i] = fn(ctx, m)
		}(i, m)
	}
	wg.Wait()
	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return results, nil
}

// CalculateAggregateRankings averages each model's 1-indexed position over
// all valid judgements, best (lowest) first. Ties order by model name.
func CalculateAggregateRankings(stage2 []Stage2Result, labelToModel map[string]string) []AggregateRanking {
	positions := map[string][]int{}
	for _, judgement := range stage2 {
		if !judgement.Valid || len(judgement.ParsedRanking) == 0 {
			continue
		}
		for idx, label := range judgement.ParsedRanking {
			if model, ok := labelToModel[label]; ok {
				positions[model] = append(positions[model], idx+1)
			}
		}
	}

	var aggregate []AggregateRanking
	for model, pos := range positions {
		sum := 0
		for _, p := range pos {
			sum += p
		}
		avg := float64(sum) / float64(len(pos))
		aggregate = append(aggregate, AggregateRanking{
			Model:         model,
			AverageRank:   math.Round(avg*100) / 100,
			RankingsCount: len(pos),
		})
	}
	sort.Slice(aggregate, func(i, j int) bool {
		if aggregate[i].AverageRank != aggregate[j].AverageRank {
			return aggregate[i].AverageRank < aggregate[j].AverageRank
		}
		return aggregate[i].Model < aggregate[j].Model
	})
	return aggregate
}

// parseStage2 validates one judge's raw text. Returns the ranking, the
// typed output, and the validation error (nil when valid).
func parseStage2(text string) ([]string, *Stage2JudgeOutput, *string) {
	parsed, err := ParseStage2JudgeOutput(text)
	if err != nil {
		msg := err.Error()
		return nil, nil, &msg
	}
	return parsed.FinalRanking, parsed, nil
}

// stage2ResultFromCache rebuilds a judge result from a cache entry. Entries
// without an explicit valid flag are trusted only if they carry parsed JSON
// and no validation error.
func stage2ResultFromCache(model string, cached map[string]interface{}) *Stage2Result {
	ranking, ok := cached["ranking"].(string)
	if !ok {
		return nil
	}

	result := &Stage2Result{Model: model, Ranking: ranking}
	if list, ok := cached["parsed_ranking"].([]interface{}); ok {
		for _, item := range list {
			if s, ok := item.(string); ok {
				result.ParsedRanking = append(result.ParsedRanking, s)
			}
		}
	}
	if obj, ok := cached["parsed_json"].(map[string]interface{}); ok && obj != nil {
		var parsed Stage2JudgeOutput
		if err := remarshal(obj, &parsed); err == nil {
			result.ParsedJSON = &parsed
		}
	}
	if msg, ok := cached["validation_error"].(string); ok && msg != "" {
		result.ValidationError = &msg
	}
	if v, ok := cached["valid"].(bool); ok {
		result.Valid = v
	} else {
		result.Valid = result.ParsedJSON != nil && result.ValidationError == nil
	}
	return result
}

func (r *CouncilRunner) cacheGet(ctx context.Context, key string) (map[string]interface{}, bool) {
	value, ok, err := r.cache.Get(ctx, key)
	if err != nil {
		slog.Warn("Cache read failed, treating as miss", "error", err)
		return nil, false
	}
	return value, ok
}

func (r *CouncilRunner) cacheSet(ctx context.Context, key string, value map[string]interface{}) {
	if err := r.cache.Set(ctx, key, value); err != nil {
		slog.Warn("Cache write failed, continuing", "error", err)
	}
}

func derefContent(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
