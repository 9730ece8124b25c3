// Package agentrepo provides data transfer objects and mapping functions for
// agent persistence. Implements the repository pattern for the agent aggregate,
// handling conversion between domain entities and database rows.
package agentrepo

import (
	"time"

	"paquexpress/internal/core/domain/model/agent"
)

// AgentDTO represents the database structure for persisting agent aggregates.
// Employee code and email carry unique indexes; those constraints back the
// domain's uniqueness rules.
type AgentDTO struct {
	ID           int64   `gorm:"primaryKey;autoIncrement"`
	EmployeeCode string  `gorm:"type:varchar(20);uniqueIndex;not null"`
	Name         string  `gorm:"type:varchar(255);not null"`
	Email        string  `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash string  `gorm:"type:varchar(255);not null"`
	Phone        *string `gorm:"type:varchar(20)"`
	Vehicle      *string `gorm:"type:varchar(100)"`
	Status       int     `gorm:"index;not null"`
	CreatedAt    time.Time
}

// TableName specifies the database table name for agent entities.
func (AgentDTO) TableName() string {
	return "agents"
}

// fromDomain converts an agent aggregate to its database representation.
func fromDomain(aggregate *agent.Agent) AgentDTO {
	return AgentDTO{
		ID:           aggregate.ID(),
		EmployeeCode: aggregate.EmployeeCode(),
		Name:         aggregate.Name(),
		Email:        aggregate.Email(),
		PasswordHash: aggregate.PasswordHash(),
		Phone:        aggregate.Phone(),
		Vehicle:      aggregate.Vehicle(),
		Status:       int(aggregate.Status()),
		CreatedAt:    aggregate.CreatedAt(),
	}
}

// toDomain converts a database row to an agent aggregate using RestoreAgent,
// re-validating every invariant on the way.
func toDomain(dto AgentDTO) (*agent.Agent, error) {
	return agent.RestoreAgent(
		dto.ID,
		dto.EmployeeCode,
		dto.Name,
		dto.Email,
		dto.PasswordHash,
		dto.Phone,
		dto.Vehicle,
		agent.Status(dto.Status),
		dto.CreatedAt,
	)
}
