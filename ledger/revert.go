package ledger

import (
	"strings"
)

// Rejection reasons emitted by the deployed contracts. They are matched as substrings
// of the error returned by the node, which wraps them ("execution reverted: ...").
const (
	ReasonAlreadyRegistered     = "Ya se ha registrado"
	ReasonCallAlreadyExists     = "El llamado ya existe"
	ReasonClosingTimeInPast     = "El cierre de la convocatoria no puede estar en el pasado"
	ReasonUnauthorized          = "No autorizado"
	ReasonCallClosed            = "Convocatoria cerrada"
	ReasonProposalAlreadyExists = "La propuesta ya ha sido registrada"
)

// HasReason reports whether err carries the given contract rejection reason.
func HasReason(err error, reason string) bool {
	if err == nil {
		return false
	}
	return strings.Contains(err.Error(), reason)
}
