package apperrors

import (
	"net/http"
)

// Factories for wrapping repository errors and predeclared domain errors.

// ErrNotFound converts a repository miss (gorm.ErrRecordNotFound or a sentinel)
// into the 404 taxonomy member.
func ErrNotFound(err error, domain, message string) *AppError {
	return Wrap(err, CodeNotFound, domain, message, http.StatusNotFound)
}

// ErrAlreadyExists maps a uniqueness violation to 409.
func ErrAlreadyExists(err error, domain, message string) *AppError {
	return Wrap(err, CodeAlreadyExists, domain, message, http.StatusConflict)
}

// ErrConflict is the general 409 factory.
func ErrConflict(err error, domain, message string) *AppError {
	return Wrap(err, CodeConflict, domain, message, http.StatusConflict)
}

var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid email or password",
	http.StatusUnauthorized,
)

// ErrNotPartyCreator rejects mutations reserved for the member who created the party.
var ErrNotPartyCreator = New(
	CodeUnauthorized,
	"party",
	"Only the party creator may perform this action",
	http.StatusUnauthorized,
)

// ErrNotReactionOwner rejects force-deletes of another member's reaction.
var ErrNotReactionOwner = New(
	CodeForbidden,
	"reaction",
	"Only the reactor or the party creator may delete this reaction",
	http.StatusForbidden,
)

// ErrNotProfileOwner rejects profile updates for other members.
var ErrNotProfileOwner = New(
	CodeUnauthorized,
	"member",
	"Members may only update their own profile",
	http.StatusUnauthorized,
)

// ErrAlreadyChannelMember enforces (member, channel) uniqueness.
var ErrAlreadyChannelMember = New(
	CodeAlreadyExists,
	"channel",
	"Member already belongs to this channel",
	http.StatusConflict,
)
