package types

import (
	"errors"
	"fmt"
	"net/http"
)

type Kind string

const (
	MalformedInput     Kind = "malformed_input"
	InvalidSignature   Kind = "invalid_signature"
	Unauthorized       Kind = "unauthorized"
	AlreadyAuthorized  Kind = "already_authorized"
	AlreadyCreated     Kind = "already_created"
	AlreadyRegistered  Kind = "already_registered"
	NotFound           Kind = "not_found"
	InvalidClosingTime Kind = "invalid_closing_time"
	Internal           Kind = "internal"
)

// HTTPStatus maps the kind to the status code returned by the API.
func (k Kind) HTTPStatus() int {
	switch k {
	case MalformedInput, InvalidSignature:
		return http.StatusBadRequest
	case Unauthorized, AlreadyAuthorized, AlreadyCreated, AlreadyRegistered, InvalidClosingTime:
		return http.StatusForbidden
	case NotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// Messages shown to API clients.
const (
	MsgOK                   = "OK"
	MsgInvalidAddress       = "Dirección inválida"
	MsgTooManyAddresses     = "Demasiadas direcciones"
	MsgInvalidSignature     = "Firma inválida"
	MsgInvalidCallID        = "Identificador de llamado inválido"
	MsgInvalidProposal      = "Hash de propuesta inválido"
	MsgClosingTimeFormat    = "Formato de tiempo incorrecto"
	MsgInvalidClosingTime   = "Tiempo de cierre inválido"
	MsgInvalidName          = "Nombre inválido"
	MsgAlreadyAuthorized    = "La cuenta ya está autorizada"
	MsgUnauthorized         = "No autorizado"
	MsgAlreadyCreated       = "El llamado ya existe"
	MsgCallIDNotFound       = "El llamado no existe"
	MsgCallClosed           = "El llamado está cerrado"
	MsgProposalRegistered   = "La propuesta ya ha sido registrada"
	MsgProposalNotFound     = "La propuesta no existe"
	MsgNameRegistered       = "El nombre ya está registrado"
	MsgNameNotFound         = "Nombre no encontrado"
	MsgAddressNotFound      = "Dirección no encontrada"
	MsgInvalidDomain        = "Dominio inválido"
	MsgUserNameRegistered   = "Nombre de usuario registrado exitosamente"
	MsgCallNameRegistered   = "Nombre de llamado registrado exitosamente"
	MsgTransactionNotFound  = "La transacción no existe"
	MsgInternalError        = "Error interno"
	MsgENSRegistrationError = "Error al registrar el nombre"
)

// Error is a failure classified for the API. Err keeps the underlying cause for logs;
// it is never shown to clients.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func NewError(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func WrapError(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

func NewInternalError(err error) *Error {
	return &Error{Kind: Internal, Message: MsgInternalError, Err: err}
}

// KindOf returns the kind of err, Internal for unclassified errors.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return Internal
}

// IsKind reports whether err is an *Error of the given kind.
func IsKind(err error, kind Kind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}
