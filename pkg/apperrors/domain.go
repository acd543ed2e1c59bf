package apperrors

import (
	"net/http"
)

// Factories and predefined variables for domain errors shared across
// services. One-off errors are built inline with New/Wrap instead.

// ---------------- Factories ----------------

// ErrNotFound converts a repository miss (gorm.ErrRecordNotFound and
// friends) into a 404.
func ErrNotFound(err error) *AppError {
	return Wrap(err, CodeNotFound, "resource", "Resource not found", http.StatusNotFound)
}

func ErrAlreadyExists(err error) *AppError {
	return Wrap(err, CodeAlreadyExists, "resource", "Resource already exists", http.StatusConflict)
}

func ErrConflict(err error, domain, message string) *AppError {
	return Wrap(err, CodeConflict, domain, message, http.StatusConflict)
}

func ErrInvalidOperation(domain, message string) *AppError {
	return New(CodeInvalidOperation, domain, message, http.StatusBadRequest)
}

func ErrInvalidStatus(domain, message string) *AppError {
	return New(CodeInvalidStatus, domain, message, http.StatusConflict)
}

// ---------------- Predefined errors ----------------

// ErrAccessRestricted is the uniform answer for role-gated screens. The
// client renders it as the "Access Restricted" section, not a toast.
var ErrAccessRestricted = New(
	CodeForbidden,
	"auth",
	"Access restricted",
	http.StatusForbidden,
)

// ErrCannotModifySelf stops an admin from changing their own role or status.
var ErrCannotModifySelf = New(
	CodeForbidden,
	"business_logic",
	"Operation on self is not allowed",
	http.StatusForbidden,
)

// --- Nominations ---

// ErrNominationFinalized means the nomination is already approved or
// rejected; review actions refuse to overwrite terminal states.
var ErrNominationFinalized = New(
	CodeInvalidStatus,
	"nomination",
	"Nomination has already been finalized",
	http.StatusConflict,
)

// --- Profiles & builder ---

// ErrProfileNotPublished guards the public renderer.
var ErrProfileNotPublished = New(
	CodeNotFound,
	"profile",
	"Profile is not published",
	http.StatusNotFound,
)

// ErrProfileArchived blocks publishing an archived profile.
var ErrProfileArchived = New(
	CodeInvalidStatus,
	"profile",
	"Profile is archived",
	http.StatusConflict,
)

// ErrCompletionTooLow is returned when publish is attempted below the
// completion threshold. No payment record is created. Built per call so
// attached details never leak between requests.
func ErrCompletionTooLow(details interface{}) *AppError {
	return New(
		CodeInvalidOperation,
		"profile",
		"Profile is not complete enough to publish",
		http.StatusBadRequest,
	).WithDetails(details)
}

// --- Payments ---

// ErrGatewaySignature means the callback signature did not verify.
var ErrGatewaySignature = New(
	CodeExternalServiceError,
	"payment",
	"Payment gateway signature mismatch",
	http.StatusBadRequest,
)

var ErrInvalidPaymentAmount = New(
	CodeConflict,
	"payment",
	"Invalid payment amount",
	http.StatusConflict,
)

// --- Auth ---

var ErrUserSuspended = New(
	CodeForbidden,
	"auth",
	"Your account has been suspended",
	http.StatusForbidden,
)

var ErrUserBanned = New(
	CodeForbidden,
	"auth",
	"Your account has been banned",
	http.StatusForbidden,
)
