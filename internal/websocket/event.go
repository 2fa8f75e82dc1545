package websocket

import (
	"encoding/json"
	"fmt"
	"time"
)

// EventType represents what happened to an entity
type EventType string

const (
	EventTypeCreated   EventType = "created"
	EventTypeDeleted   EventType = "deleted"
	EventTypeGenerated EventType = "generated"
	EventTypeCleared   EventType = "cleared"
)

// EntityType represents the kind of entity the event is about
type EntityType string

const (
	EntityTypeBudget  EntityType = "budget"
	EntityTypeExpense EntityType = "expense"
	EntityTypeInsight EntityType = "insight"
	EntityTypeAccount EntityType = "account"
)

// Event is a data-change message pushed to connected clients so open
// dashboards stay in sync without polling.
// Format: { type, entity, payload, timestamp }
type Event struct {
	Type      string      `json:"type"` // Combined type e.g. "budget.created"
	Entity    EntityType  `json:"entity"`
	Payload   interface{} `json:"payload"`
	Timestamp time.Time   `json:"timestamp"`
}

// NewEvent creates a new event with the given type, entity, and payload
func NewEvent(eventType EventType, entityType EntityType, payload interface{}) Event {
	return Event{
		Type:      fmt.Sprintf("%s.%s", entityType, eventType),
		Entity:    entityType,
		Payload:   payload,
		Timestamp: time.Now().UTC(),
	}
}

// ToJSON serializes the event to JSON bytes
func (e Event) ToJSON() ([]byte, error) {
	return json.Marshal(e)
}

// BudgetCreated creates a budget.created event
func BudgetCreated(payload interface{}) Event {
	return NewEvent(EventTypeCreated, EntityTypeBudget, payload)
}

// BudgetDeleted creates a budget.deleted event
func BudgetDeleted(payload interface{}) Event {
	return NewEvent(EventTypeDeleted, EntityTypeBudget, payload)
}

// ExpenseCreated creates an expense.created event
func ExpenseCreated(payload interface{}) Event {
	return NewEvent(EventTypeCreated, EntityTypeExpense, payload)
}

// ExpenseDeleted creates an expense.deleted event
func ExpenseDeleted(payload interface{}) Event {
	return NewEvent(EventTypeDeleted, EntityTypeExpense, payload)
}

// InsightGenerated creates an insight.generated event
func InsightGenerated(payload interface{}) Event {
	return NewEvent(EventTypeGenerated, EntityTypeInsight, payload)
}

// AccountCleared creates an account.cleared event
func AccountCleared() Event {
	return NewEvent(EventTypeCleared, EntityTypeAccount, nil)
}
