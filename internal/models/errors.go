package models

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// ValidationError - некорректные входные данные, отклоняются до любого изменения состояния
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("validation failed: %s", e.Message)
	}
	return fmt.Sprintf("validation failed: %s %s", e.Field, e.Message)
}

// NotFoundError - неизвестный пользователь или тревога
type NotFoundError struct {
	Entity string
	ID     string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with id %s not found", e.Entity, e.ID)
}

// StateError - недопустимый переход для тревоги в терминальном статусе
type StateError struct {
	AlertID uuid.UUID
	Status  AlertStatus
	Action  string
}

func (e *StateError) Error() string {
	return fmt.Sprintf("alert %s is %s: cannot %s", e.AlertID, e.Status, e.Action)
}

// DependencyError - внешняя зависимость (модель угроз, шлюз оповещений) недоступна
type DependencyError struct {
	Dependency string
	Err        error
}

func (e *DependencyError) Error() string {
	return fmt.Sprintf("%s unavailable: %v", e.Dependency, e.Err)
}

func (e *DependencyError) Unwrap() error { return e.Err }

// ConflictError - гонка за создание тревоги проиграна, Existing содержит победителя
type ConflictError struct {
	Existing *Alert
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("open alert %s already exists for user %s", e.Existing.ID, e.Existing.UserID)
}

func IsValidation(err error) bool {
	var e *ValidationError
	return errors.As(err, &e)
}

func IsNotFound(err error) bool {
	var e *NotFoundError
	return errors.As(err, &e)
}

func IsState(err error) bool {
	var e *StateError
	return errors.As(err, &e)
}

func IsDependency(err error) bool {
	var e *DependencyError
	return errors.As(err, &e)
}

func IsConflict(err error) bool {
	var e *ConflictError
	return errors.As(err, &e)
}
