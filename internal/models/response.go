package models

// ApiResponse est l'enveloppe uniforme de chaque appel backend.
// Les échecs attendus (introuvable, doublon, identifiants invalides) passent par
// Success=false + Message, jamais par une erreur Go.
type ApiResponse[T any] struct {
	Success bool   `json:"success"`
	Data    T      `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
}

func Ok[T any](data T) ApiResponse[T] {
	return ApiResponse[T]{Success: true, Data: data}
}

func Fail[T any](message string) ApiResponse[T] {
	return ApiResponse[T]{Success: false, Message: message}
}
