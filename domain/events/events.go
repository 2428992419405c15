package events

import (
	"time"

	"learngraph/domain/core/valueobjects"
)

// DomainEvent is the base interface for all domain events
// Events represent something that has happened in the past
type DomainEvent interface {
	GetAggregateID() string
	GetEventType() string
	GetTimestamp() time.Time
}

// BaseEvent provides common event fields
type BaseEvent struct {
	AggregateID string    `json:"aggregate_id"`
	EventType   string    `json:"event_type"`
	Timestamp   time.Time `json:"timestamp"`
}

func (e BaseEvent) GetAggregateID() string  { return e.AggregateID }
func (e BaseEvent) GetEventType() string    { return e.EventType }
func (e BaseEvent) GetTimestamp() time.Time { return e.Timestamp }

// ConceptRegistered is raised when a concept is added to a curriculum
type ConceptRegistered struct {
	BaseEvent
	ConceptID valueobjects.ConceptID `json:"concept_id"`
	Replaced  bool                   `json:"replaced"`
}

// NewConceptRegistered creates a ConceptRegistered event
func NewConceptRegistered(curriculumID string, conceptID valueobjects.ConceptID, replaced bool) ConceptRegistered {
	return ConceptRegistered{
		BaseEvent: BaseEvent{
			AggregateID: curriculumID,
			EventType:   "curriculum.concept_registered",
			Timestamp:   time.Now(),
		},
		ConceptID: conceptID,
		Replaced:  replaced,
	}
}

// CurriculumPublished is raised when a curriculum is frozen and its edge
// index is built
type CurriculumPublished struct {
	BaseEvent
	ConceptCount int `json:"concept_count"`
	EdgeCount    int `json:"edge_count"`
}

// NewCurriculumPublished creates a CurriculumPublished event
func NewCurriculumPublished(curriculumID string, conceptCount, edgeCount int) CurriculumPublished {
	return CurriculumPublished{
		BaseEvent: BaseEvent{
			AggregateID: curriculumID,
			EventType:   "curriculum.published",
			Timestamp:   time.Now(),
		},
		ConceptCount: conceptCount,
		EdgeCount:    edgeCount,
	}
}
