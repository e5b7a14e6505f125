// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// APIKeysColumns holds the columns for the "api_keys" table.
	APIKeysColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID, Unique: true},
		{Name: "account_id", Type: field.TypeUUID, Nullable: true},
		{Name: "key_hash", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString, Default: "default"},
		{Name: "is_active", Type: field.TypeBool, Default: true},
		{Name: "rate_limit_per_min", Type: field.TypeInt, Default: 60},
		{Name: "monthly_token_cap", Type: field.TypeInt, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "deactivated_at", Type: field.TypeTime, Nullable: true},
		{Name: "last_used_at", Type: field.TypeTime, Nullable: true},
	}
	// APIKeysTable holds the schema information for the "api_keys" table.
	APIKeysTable = &schema.Table{
		Name:       "api_keys",
		Columns:    APIKeysColumns,
		PrimaryKey: []*schema.Column{APIKeysColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "apikey_account_id",
				Unique:  false,
				Columns: []*schema.Column{APIKeysColumns[1]},
			},
			{
				Name:    "apikey_key_hash",
				Unique:  false,
				Columns: []*schema.Column{APIKeysColumns[2]},
			},
		},
	}
	// CacheEntriesColumns holds the columns for the "cache_entries" table.
	CacheEntriesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "cache_key", Type: field.TypeString, Unique: true},
		{Name: "value_json", Type: field.TypeJSON},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "expires_at", Type: field.TypeTime, Nullable: true},
	}
	// CacheEntriesTable holds the schema information for the "cache_entries" table.
	CacheEntriesTable = &schema.Table{
		Name:       "cache_entries",
		Columns:    CacheEntriesColumns,
		PrimaryKey: []*schema.Column{CacheEntriesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "cacheentry_expires_at",
				Unique:  false,
				Columns: []*schema.Column{CacheEntriesColumns[4]},
			},
		},
	}
	// ConversationsColumns holds the columns for the "conversations" table.
	ConversationsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID, Unique: true},
		{Name: "title", Type: field.TypeString, Default: "New Conversation"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "owner_key_id", Type: field.TypeUUID, Nullable: true},
	}
	// ConversationsTable holds the schema information for the "conversations" table.
	ConversationsTable = &schema.Table{
		Name:       "conversations",
		Columns:    ConversationsColumns,
		PrimaryKey: []*schema.Column{ConversationsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "conversation_owner_key_id",
				Unique:  false,
				Columns: []*schema.Column{ConversationsColumns[4]},
			},
			{
				Name:    "conversation_created_at",
				Unique:  false,
				Columns: []*schema.Column{ConversationsColumns[2]},
			},
		},
	}
	// MessagesColumns holds the columns for the "messages" table.
	MessagesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID, Unique: true},
		{Name: "role", Type: field.TypeEnum, Enums: []string{"user", "assistant"}},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "conversation_id", Type: field.TypeUUID},
	}
	// MessagesTable holds the schema information for the "messages" table.
	MessagesTable = &schema.Table{
		Name:       "messages",
		Columns:    MessagesColumns,
		PrimaryKey: []*schema.Column{MessagesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "messages_conversations_messages",
				Columns:    []*schema.Column{MessagesColumns[4]},
				RefColumns: []*schema.Column{ConversationsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "message_conversation_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{MessagesColumns[4], MessagesColumns[3]},
			},
		},
	}
	// RunsColumns holds the columns for the "runs" table.
	RunsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID, Unique: true},
		{Name: "conversation_id", Type: field.TypeUUID},
		{Name: "tool_name", Type: field.TypeString},
		{Name: "input_json", Type: field.TypeJSON},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"running", "succeeded", "failed"}, Default: "running"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "ended_at", Type: field.TypeTime, Nullable: true},
		{Name: "latency_ms", Type: field.TypeInt, Nullable: true},
		{Name: "owner_key_id", Type: field.TypeUUID, Nullable: true},
	}
	// RunsTable holds the schema information for the "runs" table.
	RunsTable = &schema.Table{
		Name:       "runs",
		Columns:    RunsColumns,
		PrimaryKey: []*schema.Column{RunsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "run_conversation_id",
				Unique:  false,
				Columns: []*schema.Column{RunsColumns[1]},
			},
			{
				Name:    "run_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{RunsColumns[4], RunsColumns[5]},
			},
			{
				Name:    "run_owner_key_id",
				Unique:  false,
				Columns: []*schema.Column{RunsColumns[8]},
			},
		},
	}
	// RunStepsColumns holds the columns for the "run_steps" table.
	RunStepsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID, Unique: true},
		{Name: "stage_name", Type: field.TypeString},
		{Name: "step_type", Type: field.TypeString},
		{Name: "agent_role", Type: field.TypeString},
		{Name: "model", Type: field.TypeString, Default: ""},
		{Name: "attempt", Type: field.TypeInt, Default: 0},
		{Name: "is_retry", Type: field.TypeBool, Default: false},
		{Name: "output_json", Type: field.TypeJSON},
		{Name: "latency_ms", Type: field.TypeInt, Nullable: true},
		{Name: "error_text", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "run_id", Type: field.TypeUUID},
	}
	// RunStepsTable holds the schema information for the "run_steps" table.
	RunStepsTable = &schema.Table{
		Name:       "run_steps",
		Columns:    RunStepsColumns,
		PrimaryKey: []*schema.Column{RunStepsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "run_steps_runs_steps",
				Columns:    []*schema.Column{RunStepsColumns[11]},
				RefColumns: []*schema.Column{RunsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "runstep_run_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{RunStepsColumns[11], RunStepsColumns[10]},
			},
			{
				Name:    "runstep_agent_role",
				Unique:  false,
				Columns: []*schema.Column{RunStepsColumns[3]},
			},
		},
	}
	// UsageEventsColumns holds the columns for the "usage_events" table.
	UsageEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID, Unique: true},
		{Name: "owner_key_id", Type: field.TypeUUID, Nullable: true},
		{Name: "model", Type: field.TypeString},
		{Name: "call_id", Type: field.TypeUUID},
		{Name: "attempt", Type: field.TypeInt, Default: 0},
		{Name: "prompt_tokens", Type: field.TypeInt, Nullable: true},
		{Name: "completion_tokens", Type: field.TypeInt, Nullable: true},
		{Name: "total_tokens", Type: field.TypeInt, Nullable: true},
		{Name: "cost_estimated", Type: field.TypeFloat64, Nullable: true},
		{Name: "latency_ms", Type: field.TypeInt, Nullable: true},
		{Name: "raw_usage_json", Type: field.TypeJSON, Nullable: true},
		{Name: "usage_missing", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "run_id", Type: field.TypeUUID},
	}
	// UsageEventsTable holds the schema information for the "usage_events" table.
	UsageEventsTable = &schema.Table{
		Name:       "usage_events",
		Columns:    UsageEventsColumns,
		PrimaryKey: []*schema.Column{UsageEventsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "usage_events_runs_usage_events",
				Columns:    []*schema.Column{UsageEventsColumns[13]},
				RefColumns: []*schema.Column{RunsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "usageevent_run_id_call_id_attempt",
				Unique:  true,
				Columns: []*schema.Column{UsageEventsColumns[13], UsageEventsColumns[3], UsageEventsColumns[4]},
			},
			{
				Name:    "usageevent_owner_key_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{UsageEventsColumns[1], UsageEventsColumns[12]},
			},
			{
				Name:    "usageevent_model",
				Unique:  false,
				Columns: []*schema.Column{UsageEventsColumns[2]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		APIKeysTable,
		CacheEntriesTable,
		ConversationsTable,
		MessagesTable,
		RunsTable,
		RunStepsTable,
		UsageEventsTable,
	}
)

func init() {
	MessagesTable.ForeignKeys[0].RefTable = ConversationsTable
	RunStepsTable.ForeignKeys[0].RefTable = RunsTable
	UsageEventsTable.ForeignKeys[0].RefTable = RunsTable
}
