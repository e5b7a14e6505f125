package engine

import (
	"github.com/llmcouncil/councild/pkg/config"
)

// PipelineModels is the resolved model per pipeline role.
type PipelineModels struct {
	Leader      string
	Reviewer    string
	Security    string
	TestWriter  string
	Implementer string
	Gate        string
}

// ResolvePipelineModels maps pipeline roles to models. Explicit role
// overrides win; otherwise the leader, implementer, and gate use the
// mode's chairman, the reviewer and security analyst use the first
// responder, and the test writer uses the last.
func ResolvePipelineModels(cfg *config.Config, mode config.Mode) PipelineModels {
	models := cfg.ModelsForMode(mode)
	chair := cfg.ChairForMode(mode)

	first, last := chair, chair
	if len(models) > 0 {
		first = models[0]
		last = models[len(models)-1]
	}

	pick := func(override, fallback string) string {
		if override != "" {
			return override
		}
		return fallback
	}
	return PipelineModels{
		Leader:      pick(cfg.Pipeline.LeaderModel, chair),
		Reviewer:    pick(cfg.Pipeline.ReviewerModel, first),
		Security:    pick(cfg.Pipeline.SecurityModel, first),
		TestWriter:  pick(cfg.Pipeline.TestWriterModel, last),
		Implementer: pick(cfg.Pipeline.ImplementerModel, chair),
		Gate:        pick(cfg.Pipeline.GateModel, chair),
	}
}
