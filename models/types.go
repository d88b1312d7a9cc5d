// Package models contain needed models
package models

// JSON field names match the desktop client, which speaks Spanish.

// CipherRequest is the body of both cipher endpoints.
type CipherRequest struct {
	Text string `json:"texto" binding:"required"`
	Key  string `json:"clave" binding:"required"`
}

// EncryptResponse represents the response after encryption
type EncryptResponse struct {
	Ciphertext       string `json:"texto_cifrado"`
	OriginalLength   int    `json:"longitud_original"`
	CiphertextLength int    `json:"longitud_cifrado"`
	Discarded        int    `json:"caracteres_descartados"`
}

// DecryptResponse represents the response after decryption
type DecryptResponse struct {
	Plaintext        string `json:"texto_descifrado"`
	CiphertextLength int    `json:"longitud_cifrado"`
	PlaintextLength  int    `json:"longitud_descifrado"`
	Discarded        int    `json:"caracteres_descartados"`
}

// ErrorResponse is returned with every 4xx and 5xx status.
type ErrorResponse struct {
	Error string `json:"error"`
}

// HealthResponse is returned by the health check.
type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Version string `json:"version"`
}

// InfoResponse describes the service on the root route.
type InfoResponse struct {
	Name        string            `json:"name"`
	Version     string            `json:"version"`
	Description string            `json:"description"`
	Endpoints   map[string]string `json:"endpoints"`
}

// Error messages exposed to clients.
const (
	MsgInvalidBody      = "request body must be a JSON object with \"texto\" and \"clave\""
	MsgMissingFields    = "fields \"texto\" and \"clave\" are required"
	MsgEmptyKey         = "key cannot be empty"
	MsgKeyWithoutAlpha  = "key must contain at least one letter A-Z"
	MsgInternalError    = "internal server error"
	MsgNotFound         = "endpoint not found"
	MsgMethodNotAllowed = "method not allowed"
)
