// Package check implementa la primitiva declarativa de validación de campos:
// dado un campo (presente o ausente), un flag de obligatoriedad y un
// predicado sobre su valor textual, aplica un accessor si el campo es
// válido, deja el destino intacto si es opcional y está ausente, y falla
// con un error de validación en los demás casos.
package check

import (
	"regexp"
	"strings"

	"github.com/jhoicas/printers-api/internal/domain"
)

// Field valida un campo. value==nil significa ausente en la petición.
// Si el campo está presente y valid lo acepta, se invoca apply (si no es nil).
func Field(field string, mandatory bool, value *string, valid func(string) bool, reason string, apply func(string)) error {
	if value == nil {
		if mandatory {
			return domain.NewMissingField(field)
		}
		return nil
	}
	if !valid(*value) {
		return domain.NewInvalidField(field, reason)
	}
	if apply != nil {
		apply(*value)
	}
	return nil
}

// Mandatory valida un campo obligatorio.
func Mandatory(field string, value *string, valid func(string) bool, reason string, apply func(string)) error {
	return Field(field, true, value, valid, reason, apply)
}

// Optional valida un campo opcional.
func Optional(field string, value *string, valid func(string) bool, reason string, apply func(string)) error {
	return Field(field, false, value, valid, reason, apply)
}

// NotEmpty predicado: la cadena no está vacía.
func NotEmpty(s string) bool { return s != "" }

// IsPDF predicado: nombre de fichero terminado en ".pdf".
func IsPDF(s string) bool { return strings.HasSuffix(s, ".pdf") }

// IsBool predicado: exactamente "true" o "false".
func IsBool(s string) bool { return s == "true" || s == "false" }

// 4x (0 a 255, sin prefijo 0, separados por punto), anclado a toda la cadena.
var ipv4Pattern = regexp.MustCompile(
	`^(?:(?:25[0-5]|2[0-4][0-9]|[01]?[0-9][0-9]?)\.){3}` +
		`(?:25[0-5]|2[0-4][0-9]|[01]?[0-9][0-9]?)$`)

// IsValidIP predicado: IPv4 bien formada y destino válido de máquina única.
// Rechaza 0.0.0.* (solo válida como origen), 255.255.255.255 (broadcast)
// y 127.0.0.* (loopback).
func IsValidIP(ip string) bool {
	if !ipv4Pattern.MatchString(ip) {
		return false
	}
	if strings.HasPrefix(ip, "0.0.0.") ||
		ip == "255.255.255.255" ||
		strings.HasPrefix(ip, "127.0.0.") {
		return false
	}
	return true
}
