package errors

import "net/http"

// Kind classifies a request failure into the fixed taxonomy shared by the
// server gate and the client gateway.
type Kind string

const (
	KindInvalidCredentials         Kind = "invalid_credentials"
	KindMissingCredential          Kind = "missing_credential"
	KindExpiredOrInvalidCredential Kind = "expired_or_invalid_credential"
	KindForbidden                  Kind = "forbidden"
	KindNotFound                   Kind = "not_found"
	KindBadRequest                 Kind = "bad_request"
	KindValidationFailed           Kind = "validation_failed"
	KindRateLimited                Kind = "rate_limited"
	KindServerFault                Kind = "server_fault"
	KindServiceUnavailable         Kind = "service_unavailable"
	KindConnectivityFailure        Kind = "connectivity_failure"
)

// Status returns the HTTP status code a server responds with for the kind.
func (k Kind) Status() int {
	switch k {
	case KindInvalidCredentials, KindMissingCredential, KindExpiredOrInvalidCredential:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	case KindBadRequest:
		return http.StatusBadRequest
	case KindValidationFailed:
		return http.StatusUnprocessableEntity
	case KindRateLimited:
		return http.StatusTooManyRequests
	case KindServiceUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// KindForStatus classifies a response status code observed by a client.
func KindForStatus(status int) Kind {
	switch status {
	case http.StatusBadRequest:
		return KindBadRequest
	case http.StatusUnauthorized:
		return KindExpiredOrInvalidCredential
	case http.StatusForbidden:
		return KindForbidden
	case http.StatusNotFound:
		return KindNotFound
	case http.StatusUnprocessableEntity:
		return KindValidationFailed
	case http.StatusTooManyRequests:
		return KindRateLimited
	case http.StatusBadGateway, http.StatusServiceUnavailable:
		return KindServiceUnavailable
	default:
		return KindServerFault
	}
}

// userMessages are the user-facing fallback messages per kind, kept in
// Portuguese as shipped by the product.
var userMessages = map[Kind]string{
	KindInvalidCredentials:         "Credenciais inválidas",
	KindMissingCredential:          "Token de autenticação não fornecido",
	KindExpiredOrInvalidCredential: "Sessão expirada. Por favor, faça login novamente.",
	KindForbidden:                  "Você não tem permissão para realizar esta ação.",
	KindNotFound:                   "Recurso não encontrado.",
	KindBadRequest:                 "Requisição inválida. Verifique os dados enviados.",
	KindValidationFailed:           "Dados inválidos. Verifique os campos do formulário.",
	KindRateLimited:                "Muitas requisições. Tente novamente mais tarde.",
	KindServerFault:                "Erro interno do servidor. Tente novamente mais tarde.",
	KindServiceUnavailable:         "Serviço temporariamente indisponível.",
	KindConnectivityFailure:        "Não foi possível conectar ao servidor. Verifique sua conexão.",
}

// UserMessage returns the user-facing message for the kind.
func (k Kind) UserMessage() string {
	if msg, ok := userMessages[k]; ok {
		return msg
	}
	return userMessages[KindServerFault]
}
