// Code generated by ent, DO NOT EDIT.

package usageevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/llmcouncil/councild/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldLTE(FieldID, id))
}

// RunID applies equality check predicate on the "run_id" field. It's identical to RunIDEQ.
func RunID(v uuid.UUID) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldEQ(FieldRunID, v))
}

// OwnerKeyID applies equality check predicate on the "owner_key_id" field. It's identical to OwnerKeyIDEQ.
func OwnerKeyID(v uuid.UUID) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldEQ(FieldOwnerKeyID, v))
}

// Model applies equality check predicate on the "model" field. It's identical to ModelEQ.
func Model(v string) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldEQ(FieldModel, v))
}

// CallID applies equality check predicate on the "call_id" field. It's identical to CallIDEQ.
func CallID(v uuid.UUID) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldEQ(FieldCallID, v))
}

// Attempt applies equality check predicate on the "attempt" field. It's identical to AttemptEQ.
func Attempt(v int) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldEQ(FieldAttempt, v))
}

// PromptTokens applies equality check predicate on the "prompt_tokens" field. It's identical to PromptTokensEQ.
func PromptTokens(v int) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldEQ(FieldPromptTokens, v))
}

// CompletionTokens applies equality check predicate on the "completion_tokens" field. It's identical to CompletionTokensEQ.
func CompletionTokens(v int) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldEQ(FieldCompletionTokens, v))
}

// TotalTokens applies equality check predicate on the "total_tokens" field. It's identical to TotalTokensEQ.
func TotalTokens(v int) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldEQ(FieldTotalTokens, v))
}

// CostEstimated applies equality check predicate on the "cost_estimated" field. It's identical to CostEstimatedEQ.
func CostEstimated(v float64) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldEQ(FieldCostEstimated, v))
}

// LatencyMs applies equality check predicate on the "latency_ms" field. It's identical to LatencyMsEQ.
func LatencyMs(v int) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldEQ(FieldLatencyMs, v))
}

// UsageMissing applies equality check predicate on the "usage_missing" field. It's identical to UsageMissingEQ.
func UsageMissing(v bool) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldEQ(FieldUsageMissing, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldEQ(FieldCreatedAt, v))
}

// RunIDEQ applies the EQ predicate on the "run_id" field.
func RunIDEQ(v uuid.UUID) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldEQ(FieldRunID, v))
}

// RunIDNEQ applies the NEQ predicate on the "run_id" field.
func RunIDNEQ(v uuid.UUID) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldNEQ(FieldRunID, v))
}

// RunIDIn applies the In predicate on the "run_id" field.
func RunIDIn(vs ...uuid.UUID) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldIn(FieldRunID, vs...))
}

// RunIDNotIn applies the NotIn predicate on the "run_id" field.
func RunIDNotIn(vs ...uuid.UUID) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldNotIn(FieldRunID, vs...))
}

// OwnerKeyIDEQ applies the EQ predicate on the "owner_key_id" field.
func OwnerKeyIDEQ(v uuid.UUID) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldEQ(FieldOwnerKeyID, v))
}

// OwnerKeyIDNEQ applies the NEQ predicate on the "owner_key_id" field.
func OwnerKeyIDNEQ(v uuid.UUID) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldNEQ(FieldOwnerKeyID, v))
}

// OwnerKeyIDIn applies the In predicate on the "owner_key_id" field.
func OwnerKeyIDIn(vs ...uuid.UUID) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldIn(FieldOwnerKeyID, vs...))
}

// OwnerKeyIDNotIn applies the NotIn predicate on the "owner_key_id" field.
func OwnerKeyIDNotIn(vs ...uuid.UUID) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldNotIn(FieldOwnerKeyID, vs...))
}

// OwnerKeyIDGT applies the GT predicate on the "owner_key_id" field.
func OwnerKeyIDGT(v uuid.UUID) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldGT(FieldOwnerKeyID, v))
}

// OwnerKeyIDGTE applies the GTE predicate on the "owner_key_id" field.
func OwnerKeyIDGTE(v uuid.UUID) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldGTE(FieldOwnerKeyID, v))
}

// OwnerKeyIDLT applies the LT predicate on the "owner_key_id" field.
func OwnerKeyIDLT(v uuid.UUID) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldLT(FieldOwnerKeyID, v))
}

// OwnerKeyIDLTE applies the LTE predicate on the "owner_key_id" field.
func OwnerKeyIDLTE(v uuid.UUID) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldLTE(FieldOwnerKeyID, v))
}

// OwnerKeyIDIsNil applies the IsNil predicate on the "owner_key_id" field.
func OwnerKeyIDIsNil() predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldIsNull(FieldOwnerKeyID))
}

// OwnerKeyIDNotNil applies the NotNil predicate on the "owner_key_id" field.
func OwnerKeyIDNotNil() predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldNotNull(FieldOwnerKeyID))
}

// ModelEQ applies the EQ predicate on the "model" field.
func ModelEQ(v string) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldEQ(FieldModel, v))
}

// ModelNEQ applies the NEQ predicate on the "model" field.
func ModelNEQ(v string) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldNEQ(FieldModel, v))
}

// ModelIn applies the In predicate on the "model" field.
func ModelIn(vs ...string) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldIn(FieldModel, vs...))
}

// ModelNotIn applies the NotIn predicate on the "model" field.
func ModelNotIn(vs ...string) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldNotIn(FieldModel, vs...))
}

// ModelGT applies the GT predicate on the "model" field.
func ModelGT(v string) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldGT(FieldModel, v))
}

// ModelGTE applies the GTE predicate on the "model" field.
func ModelGTE(v string) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldGTE(FieldModel, v))
}

// ModelLT applies the LT predicate on the "model" field.
func ModelLT(v string) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldLT(FieldModel, v))
}

// ModelLTE applies the LTE predicate on the "model" field.
func ModelLTE(v string) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldLTE(FieldModel, v))
}

// ModelContains applies the Contains predicate on the "model" field.
func ModelContains(v string) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldContains(FieldModel, v))
}

// ModelHasPrefix applies the HasPrefix predicate on the "model" field.
func ModelHasPrefix(v string) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldHasPrefix(FieldModel, v))
}

// ModelHasSuffix applies the HasSuffix predicate on the "model" field.
func ModelHasSuffix(v string) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldHasSuffix(FieldModel, v))
}

// ModelEqualFold applies the EqualFold predicate on the "model" field.
func ModelEqualFold(v string) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldEqualFold(FieldModel, v))
}

// ModelContainsFold applies the ContainsFold predicate on the "model" field.
func ModelContainsFold(v string) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldContainsFold(FieldModel, v))
}

// CallIDEQ applies the EQ predicate on the "call_id" field.
func CallIDEQ(v uuid.UUID) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldEQ(FieldCallID, v))
}

// CallIDNEQ applies the NEQ predicate on the "call_id" field.
func CallIDNEQ(v uuid.UUID) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldNEQ(FieldCallID, v))
}

// CallIDIn applies the In predicate on the "call_id" field.
func CallIDIn(vs ...uuid.UUID) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldIn(FieldCallID, vs...))
}

// CallIDNotIn applies the NotIn predicate on the "call_id" field.
func CallIDNotIn(vs ...uuid.UUID) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldNotIn(FieldCallID, vs...))
}

// CallIDGT applies the GT predicate on the "call_id" field.
func CallIDGT(v uuid.UUID) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldGT(FieldCallID, v))
}

// CallIDGTE applies the GTE predicate on the "call_id" field.
func CallIDGTE(v uuid.UUID) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldGTE(FieldCallID, v))
}

// CallIDLT applies the LT predicate on the "call_id" field.
func CallIDLT(v uuid.UUID) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldLT(FieldCallID, v))
}

// CallIDLTE applies the LTE predicate on the "call_id" field.
func CallIDLTE(v uuid.UUID) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldLTE(FieldCallID, v))
}

// AttemptEQ applies the EQ predicate on the "attempt" field.
func AttemptEQ(v int) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldEQ(FieldAttempt, v))
}

// AttemptNEQ applies the NEQ predicate on the "attempt" field.
func AttemptNEQ(v int) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldNEQ(FieldAttempt, v))
}

// AttemptIn applies the In predicate on the "attempt" field.
func AttemptIn(vs ...int) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldIn(FieldAttempt, vs...))
}

// AttemptNotIn applies the NotIn predicate on the "attempt" field.
func AttemptNotIn(vs ...int) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldNotIn(FieldAttempt, vs...))
}

// AttemptGT applies the GT predicate on the "attempt" field.
func AttemptGT(v int) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldGT(FieldAttempt, v))
}

// AttemptGTE applies the GTE predicate on the "attempt" field.
func AttemptGTE(v int) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldGTE(FieldAttempt, v))
}

// AttemptLT applies the LT predicate on the "attempt" field.
func AttemptLT(v int) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldLT(FieldAttempt, v))
}

// AttemptLTE applies the LTE predicate on the "attempt" field.
func AttemptLTE(v int) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldLTE(FieldAttempt, v))
}

// PromptTokensEQ applies the EQ predicate on the "prompt_tokens" field.
func PromptTokensEQ(v int) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldEQ(FieldPromptTokens, v))
}

// PromptTokensNEQ applies the NEQ predicate on the "prompt_tokens" field.
func PromptTokensNEQ(v int) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldNEQ(FieldPromptTokens, v))
}

// PromptTokensIn applies the In predicate on the "prompt_tokens" field.
func PromptTokensIn(vs ...int) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldIn(FieldPromptTokens, vs...))
}

// PromptTokensNotIn applies the NotIn predicate on the "prompt_tokens" field.
func PromptTokensNotIn(vs ...int) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldNotIn(FieldPromptTokens, vs...))
}

// PromptTokensGT applies the GT predicate on the "prompt_tokens" field.
func PromptTokensGT(v int) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldGT(FieldPromptTokens, v))
}

// PromptTokensGTE applies the GTE predicate on the "prompt_tokens" field.
func PromptTokensGTE(v int) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldGTE(FieldPromptTokens, v))
}

// PromptTokensLT applies the LT predicate on the "prompt_tokens" field.
func PromptTokensLT(v int) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldLT(FieldPromptTokens, v))
}

// PromptTokensLTE applies the LTE predicate on the "prompt_tokens" field.
func PromptTokensLTE(v int) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldLTE(FieldPromptTokens, v))
}

// PromptTokensIsNil applies the IsNil predicate on the "prompt_tokens" field.
func PromptTokensIsNil() predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldIsNull(FieldPromptTokens))
}

// PromptTokensNotNil applies the NotNil predicate on the "prompt_tokens" field.
func PromptTokensNotNil() predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldNotNull(FieldPromptTokens))
}

// CompletionTokensEQ applies the EQ predicate on the "completion_tokens" field.
func CompletionTokensEQ(v int) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldEQ(FieldCompletionTokens, v))
}

// CompletionTokensNEQ applies the NEQ predicate on the "completion_tokens" field.
func CompletionTokensNEQ(v int) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldNEQ(FieldCompletionTokens, v))
}

// CompletionTokensIn applies the In predicate on the "completion_tokens" field.
func CompletionTokensIn(vs ...int) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldIn(FieldCompletionTokens, vs...))
}

// CompletionTokensNotIn applies the NotIn predicate on the "completion_tokens" field.
func CompletionTokensNotIn(vs ...int) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldNotIn(FieldCompletionTokens, vs...))
}

// CompletionTokensGT applies the GT predicate on the "completion_tokens" field.
func CompletionTokensGT(v int) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldGT(FieldCompletionTokens, v))
}

// CompletionTokensGTE applies the GTE predicate on the "completion_tokens" field.
func CompletionTokensGTE(v int) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldGTE(FieldCompletionTokens, v))
}

// CompletionTokensLT applies the LT predicate on the "completion_tokens" field.
func CompletionTokensLT(v int) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldLT(FieldCompletionTokens, v))
}

// CompletionTokensLTE applies the LTE predicate on the "completion_tokens" field.
func CompletionTokensLTE(v int) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldLTE(FieldCompletionTokens, v))
}

// CompletionTokensIsNil applies the IsNil predicate on the "completion_tokens" field.
func CompletionTokensIsNil() predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldIsNull(FieldCompletionTokens))
}

// CompletionTokensNotNil applies the NotNil predicate on the "completion_tokens" field.
func CompletionTokensNotNil() predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldNotNull(FieldCompletionTokens))
}

// TotalTokensEQ applies the EQ predicate on the "total_tokens" field.
func TotalTokensEQ(v int) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldEQ(FieldTotalTokens, v))
}

// TotalTokensNEQ applies the NEQ predicate on the "total_tokens" field.
func TotalTokensNEQ(v int) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldNEQ(FieldTotalTokens, v))
}

// TotalTokensIn applies the In predicate on the "total_tokens" field.
func TotalTokensIn(vs ...int) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldIn(FieldTotalTokens, vs...))
}

// TotalTokensNotIn applies the NotIn predicate on the "total_tokens" field.
func TotalTokensNotIn(vs ...int) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldNotIn(FieldTotalTokens, vs...))
}

// TotalTokensGT applies the GT predicate on the "total_tokens" field.
func TotalTokensGT(v int) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldGT(FieldTotalTokens, v))
}

// TotalTokensGTE applies the GTE predicate on the "total_tokens" field.
func TotalTokensGTE(v int) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldGTE(FieldTotalTokens, v))
}

// TotalTokensLT applies the LT predicate on the "total_tokens" field.
func TotalTokensLT(v int) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldLT(FieldTotalTokens, v))
}

// TotalTokensLTE applies the LTE predicate on the "total_tokens" field.
func TotalTokensLTE(v int) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldLTE(FieldTotalTokens, v))
}

// TotalTokensIsNil applies the IsNil predicate on the "total_tokens" field.
func TotalTokensIsNil() predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldIsNull(FieldTotalTokens))
}

// TotalTokensNotNil applies the NotNil predicate on the "total_tokens" field.
func TotalTokensNotNil() predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldNotNull(FieldTotalTokens))
}

// CostEstimatedEQ applies the EQ predicate on the "cost_estimated" field.
func CostEstimatedEQ(v float64) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldEQ(FieldCostEstimated, v))
}

// CostEstimatedNEQ applies the NEQ predicate on the "cost_estimated" field.
func CostEstimatedNEQ(v float64) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldNEQ(FieldCostEstimated, v))
}

// CostEstimatedIn applies the In predicate on the "cost_estimated" field.
func CostEstimatedIn(vs ...float64) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldIn(FieldCostEstimated, vs...))
}

// CostEstimatedNotIn applies the NotIn predicate on the "cost_estimated" field.
func CostEstimatedNotIn(vs ...float64) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldNotIn(FieldCostEstimated, vs...))
}

// CostEstimatedGT applies the GT predicate on the "cost_estimated" field.
func CostEstimatedGT(v float64) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldGT(FieldCostEstimated, v))
}

// CostEstimatedGTE applies the GTE predicate on the "cost_estimated" field.
func CostEstimatedGTE(v float64) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldGTE(FieldCostEstimated, v))
}

// CostEstimatedLT applies the LT predicate on the "cost_estimated" field.
func CostEstimatedLT(v float64) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldLT(FieldCostEstimated, v))
}

// CostEstimatedLTE applies the LTE predicate on the "cost_estimated" field.
func CostEstimatedLTE(v float64) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldLTE(FieldCostEstimated, v))
}

// CostEstimatedIsNil applies the IsNil predicate on the "cost_estimated" field.
func CostEstimatedIsNil() predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldIsNull(FieldCostEstimated))
}

// CostEstimatedNotNil applies the NotNil predicate on the "cost_estimated" field.
func CostEstimatedNotNil() predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldNotNull(FieldCostEstimated))
}

// LatencyMsEQ applies the EQ predicate on the "latency_ms" field.
func LatencyMsEQ(v int) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldEQ(FieldLatencyMs, v))
}

// LatencyMsNEQ applies the NEQ predicate on the "latency_ms" field.
func LatencyMsNEQ(v int) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldNEQ(FieldLatencyMs, v))
}

// LatencyMsIn applies the In predicate on the "latency_ms" field.
func LatencyMsIn(vs ...int) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldIn(FieldLatencyMs, vs...))
}

// LatencyMsNotIn applies the NotIn predicate on the "latency_ms" field.
func LatencyMsNotIn(vs ...int) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldNotIn(FieldLatencyMs, vs...))
}

// LatencyMsGT applies the GT predicate on the "latency_ms" field.
func LatencyMsGT(v int) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldGT(FieldLatencyMs, v))
}

// LatencyMsGTE applies the GTE predicate on the "latency_ms" field.
func LatencyMsGTE(v int) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldGTE(FieldLatencyMs, v))
}

// LatencyMsLT applies the LT predicate on the "latency_ms" field.
func LatencyMsLT(v int) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldLT(FieldLatencyMs, v))
}

// LatencyMsLTE applies the LTE predicate on the "latency_ms" field.
func LatencyMsLTE(v int) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldLTE(FieldLatencyMs, v))
}

// LatencyMsIsNil applies the IsNil predicate on the "latency_ms" field.
func LatencyMsIsNil() predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldIsNull(FieldLatencyMs))
}

// LatencyMsNotNil applies the NotNil predicate on the "latency_ms" field.
func LatencyMsNotNil() predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldNotNull(FieldLatencyMs))
}

// RawUsageJSONIsNil applies the IsNil predicate on the "raw_usage_json" field.
func RawUsageJSONIsNil() predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldIsNull(FieldRawUsageJSON))
}

// RawUsageJSONNotNil applies the NotNil predicate on the "raw_usage_json" field.
func RawUsageJSONNotNil() predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldNotNull(FieldRawUsageJSON))
}

// UsageMissingEQ applies the EQ predicate on the "usage_missing" field.
func UsageMissingEQ(v bool) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldEQ(FieldUsageMissing, v))
}

// UsageMissingNEQ applies the NEQ predicate on the "usage_missing" field.
func UsageMissingNEQ(v bool) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldNEQ(FieldUsageMissing, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldLTE(FieldCreatedAt, v))
}

// HasRun applies the HasEdge predicate on the "run" edge.
func HasRun() predicate.UsageEvent {
	return predicate.UsageEvent(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, RunTable, RunColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasRunWith applies the HasEdge predicate on the "run" edge with a given conditions (other predicates).
func HasRunWith(preds ...predicate.Run) predicate.UsageEvent {
	return predicate.UsageEvent(func(s *sql.Selector) {
		step := newRunStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.UsageEvent) predicate.UsageEvent {
	return predicate.UsageEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.UsageEvent) predicate.UsageEvent {
	return predicate.UsageEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.UsageEvent) predicate.UsageEvent {
	return predicate.UsageEvent(sql.NotPredicates(p))
}
