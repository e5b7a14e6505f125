// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/google/uuid"
	"github.com/llmcouncil/councild/ent/apikey"
	"github.com/llmcouncil/councild/ent/cacheentry"
	"github.com/llmcouncil/councild/ent/conversation"
	"github.com/llmcouncil/councild/ent/message"
	"github.com/llmcouncil/councild/ent/run"
	"github.com/llmcouncil/councild/ent/runstep"
	"github.com/llmcouncil/councild/ent/schema"
	"github.com/llmcouncil/councild/ent/usageevent"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	apikeyFields := schema.ApiKey{}.Fields()
	_ = apikeyFields
	// apikeyDescName is the schema descriptor for name field.
	apikeyDescName := apikeyFields[3].Descriptor()
	// apikey.DefaultName holds the default value on creation for the name field.
	apikey.DefaultName = apikeyDescName.Default.(string)
	// apikeyDescIsActive is the schema descriptor for is_active field.
	apikeyDescIsActive := apikeyFields[4].Descriptor()
	// apikey.DefaultIsActive holds the default value on creation for the is_active field.
	apikey.DefaultIsActive = apikeyDescIsActive.Default.(bool)
	// apikeyDescRateLimitPerMin is the schema descriptor for rate_limit_per_min field.
	apikeyDescRateLimitPerMin := apikeyFields[5].Descriptor()
	// apikey.DefaultRateLimitPerMin holds the default value on creation for the rate_limit_per_min field.
	apikey.DefaultRateLimitPerMin = apikeyDescRateLimitPerMin.Default.(int)
	// apikeyDescCreatedAt is the schema descriptor for created_at field.
	apikeyDescCreatedAt := apikeyFields[7].Descriptor()
	// apikey.DefaultCreatedAt holds the default value on creation for the created_at field.
	apikey.DefaultCreatedAt = apikeyDescCreatedAt.Default.(func() time.Time)
	// apikeyDescID is the schema descriptor for id field.
	apikeyDescID := apikeyFields[0].Descriptor()
	// apikey.DefaultID holds the default value on creation for the id field.
	apikey.DefaultID = apikeyDescID.Default.(func() uuid.UUID)
	cacheentryFields := schema.CacheEntry{}.Fields()
	_ = cacheentryFields
	// cacheentryDescCreatedAt is the schema descriptor for created_at field.
	cacheentryDescCreatedAt := cacheentryFields[2].Descriptor()
	// cacheentry.DefaultCreatedAt holds the default value on creation for the created_at field.
	cacheentry.DefaultCreatedAt = cacheentryDescCreatedAt.Default.(func() time.Time)
	// cacheentry.UpdateDefaultCreatedAt holds the default value on update for the created_at field.
	cacheentry.UpdateDefaultCreatedAt = cacheentryDescCreatedAt.UpdateDefault.(func() time.Time)
	conversationFields := schema.Conversation{}.Fields()
	_ = conversationFields
	// conversationDescTitle is the schema descriptor for title field.
	conversationDescTitle := conversationFields[1].Descriptor()
	// conversation.DefaultTitle holds the default value on creation for the title field.
	conversation.DefaultTitle = conversationDescTitle.Default.(string)
	// conversationDescCreatedAt is the schema descriptor for created_at field.
	conversationDescCreatedAt := conversationFields[2].Descriptor()
	// conversation.DefaultCreatedAt holds the default value on creation for the created_at field.
	conversation.DefaultCreatedAt = conversationDescCreatedAt.Default.(func() time.Time)
	// conversationDescUpdatedAt is the schema descriptor for updated_at field.
	conversationDescUpdatedAt := conversationFields[3].Descriptor()
	// conversation.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	conversation.DefaultUpdatedAt = conversationDescUpdatedAt.Default.(func() time.Time)
	// conversation.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	conversation.UpdateDefaultUpdatedAt = conversationDescUpdatedAt.UpdateDefault.(func() time.Time)
	messageFields := schema.Message{}.Fields()
	_ = messageFields
	// messageDescCreatedAt is the schema descriptor for created_at field.
	messageDescCreatedAt := messageFields[4].Descriptor()
	// message.DefaultCreatedAt holds the default value on creation for the created_at field.
	message.DefaultCreatedAt = messageDescCreatedAt.Default.(func() time.Time)
	// messageDescID is the schema descriptor for id field.
	messageDescID := messageFields[0].Descriptor()
	// message.DefaultID holds the default value on creation for the id field.
	message.DefaultID = messageDescID.Default.(func() uuid.UUID)
	runFields := schema.Run{}.Fields()
	_ = runFields
	// runDescCreatedAt is the schema descriptor for created_at field.
	runDescCreatedAt := runFields[5].Descriptor()
	// run.DefaultCreatedAt holds the default value on creation for the created_at field.
	run.DefaultCreatedAt = runDescCreatedAt.Default.(func() time.Time)
	// runDescID is the schema descriptor for id field.
	runDescID := runFields[0].Descriptor()
	// run.DefaultID holds the default value on creation for the id field.
	run.DefaultID = runDescID.Default.(func() uuid.UUID)
	runstepFields := schema.RunStep{}.Fields()
	_ = runstepFields
	// runstepDescModel is the schema descriptor for model field.
	runstepDescModel := runstepFields[5].Descriptor()
	// runstep.DefaultModel holds the default value on creation for the model field.
	runstep.DefaultModel = runstepDescModel.Default.(string)
	// runstepDescAttempt is the schema descriptor for attempt field.
	runstepDescAttempt := runstepFields[6].Descriptor()
	// runstep.DefaultAttempt holds the default value on creation for the attempt field.
	runstep.DefaultAttempt = runstepDescAttempt.Default.(int)
	// runstepDescIsRetry is the schema descriptor for is_retry field.
	runstepDescIsRetry := runstepFields[7].Descriptor()
	// runstep.DefaultIsRetry holds the default value on creation for the is_retry field.
	runstep.DefaultIsRetry = runstepDescIsRetry.Default.(bool)
	// runstepDescCreatedAt is the schema descriptor for created_at field.
	runstepDescCreatedAt := runstepFields[11].Descriptor()
	// runstep.DefaultCreatedAt holds the default value on creation for the created_at field.
	runstep.DefaultCreatedAt = runstepDescCreatedAt.Default.(func() time.Time)
	// runstepDescID is the schema descriptor for id field.
	runstepDescID := runstepFields[0].Descriptor()
	// runstep.DefaultID holds the default value on creation for the id field.
	runstep.DefaultID = runstepDescID.Default.(func() uuid.UUID)
	usageeventFields := schema.UsageEvent{}.Fields()
	_ = usageeventFields
	// usageeventDescAttempt is the schema descriptor for attempt field.
	usageeventDescAttempt := usageeventFields[5].Descriptor()
	// usageevent.DefaultAttempt holds the default value on creation for the attempt field.
	usageevent.DefaultAttempt = usageeventDescAttempt.Default.(int)
	// usageeventDescUsageMissing is the schema descriptor for usage_missing field.
	usageeventDescUsageMissing := usageeventFields[12].Descriptor()
	// usageevent.DefaultUsageMissing holds the default value on creation for the usage_missing field.
	usageevent.DefaultUsageMissing = usageeventDescUsageMissing.Default.(bool)
	// usageeventDescCreatedAt is the schema descriptor for created_at field.
	usageeventDescCreatedAt := usageeventFields[13].Descriptor()
	// usageevent.DefaultCreatedAt holds the default value on creation for the created_at field.
	usageevent.DefaultCreatedAt = usageeventDescCreatedAt.Default.(func() time.Time)
	// usageeventDescID is the schema descriptor for id field.
	usageeventDescID := usageeventFields[0].Descriptor()
	// usageevent.DefaultID holds the default value on creation for the id field.
	usageevent.DefaultID = usageeventDescID.Default.(func() uuid.UUID)
}
