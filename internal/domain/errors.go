package domain

import (
	"errors"
	"fmt"
	"strings"

	"github.com/samber/lo"
)

var (
	ErrInvalidRequest       = errors.New("invalid request")
	ErrReferentialIntegrity = errors.New("referential integrity violated")
	ErrPersistence          = errors.New("persistence failed")
	ErrNotFound             = errors.New("not found")
	ErrConflict             = errors.New("conflict")
	ErrRender               = errors.New("render failed")
	ErrDelivery             = errors.New("delivery failed")
)

type InvalidRequestError struct {
	Reason string
}

func NewInvalidRequest(reason string) *InvalidRequestError {
	return &InvalidRequestError{Reason: reason}
}

func (e *InvalidRequestError) Error() string {
	return e.Reason
}

func (e *InvalidRequestError) Is(target error) bool {
	return target == ErrInvalidRequest
}

// ReferentialIntegrityError lists the referenced ids that do not exist.
// MissingCustomerID is set instead of MissingIDs when the dangling reference is a customer.
type ReferentialIntegrityError struct {
	MissingIDs        []int64
	MissingCustomerID string
}

func (e *ReferentialIntegrityError) Error() string {
	if e.MissingCustomerID != "" {
		return fmt.Sprintf("customer not found: %s", e.MissingCustomerID)
	}

	ids := lo.Map(e.MissingIDs, func(id int64, _ int) string {
		return fmt.Sprint(id)
	})

	return fmt.Sprintf("products not found: [%s]", strings.Join(ids, ", "))
}

func (e *ReferentialIntegrityError) Is(target error) bool {
	return target == ErrReferentialIntegrity
}

type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

func (e *PersistenceError) Is(target error) bool {
	return target == ErrPersistence
}

type RenderError struct {
	Err error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("render invoice: %v", e.Err)
}

func (e *RenderError) Unwrap() error {
	return e.Err
}

func (e *RenderError) Is(target error) bool {
	return target == ErrRender
}

type DeliveryError struct {
	To  string
	Err error
}

func (e *DeliveryError) Error() string {
	if e.To == "" {
		return fmt.Sprintf("deliver email: %v", e.Err)
	}
	return fmt.Sprintf("deliver email to %s: %v", e.To, e.Err)
}

func (e *DeliveryError) Unwrap() error {
	return e.Err
}

func (e *DeliveryError) Is(target error) bool {
	return target == ErrDelivery
}

// NotFound wraps ErrNotFound with the entity name and id, e.g. "cart[42]: not found".
func NotFound(entity string, id any) error {
	return fmt.Errorf("%s[%v]: %w", entity, id, ErrNotFound)
}
