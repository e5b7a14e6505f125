// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// ApiKey is the predicate function for apikey builders.
type ApiKey func(*sql.Selector)

// CacheEntry is the predicate function for cacheentry builders.
type CacheEntry func(*sql.Selector)

// Conversation is the predicate function for conversation builders.
type Conversation func(*sql.Selector)

// Message is the predicate function for message builders.
type Message func(*sql.Selector)

// Run is the predicate function for run builders.
type Run func(*sql.Selector)

// RunStep is the predicate function for runstep builders.
type RunStep func(*sql.Selector)

// UsageEvent is the predicate function for usageevent builders.
type UsageEvent func(*sql.Selector)
