// Package services simule le backend distant : chaque opération lit/écrit le
// store de persistance après une latence artificielle fixe, et répond toujours
// par l'enveloppe ApiResponse. Les échecs attendus ne sont jamais des erreurs
// Go ; seules les fautes d'infrastructure (I/O du store, JSON corrompu)
// remontent en error.
package services

import (
	"os"
	"time"

	"shopfront_back_end/internal/database"
)

// Latence simulée par opération
const (
	DelayFetchProducts = 600 * time.Millisecond
	DelayFetchProduct  = 300 * time.Millisecond
	DelayLogin         = 800 * time.Millisecond
	DelayRegister      = 800 * time.Millisecond
	DelayCreateOrder   = 1000 * time.Millisecond
	DelayFetchOrders   = 500 * time.Millisecond
)

// Messages d'échec de l'enveloppe
const (
	MsgProductNotFound    = "Produit introuvable"
	MsgUserNotFound       = "Utilisateur introuvable"
	MsgInvalidCredentials = "Identifiants invalides"
	MsgUserAlreadyExists  = "Un compte avec cet email existe déjà"
)

type Service struct {
	store database.Store
	sleep func(time.Duration)
}

// New construit le service avec la latence simulée active,
// sauf si MOCK_LATENCY=off dans l'environnement.
func New(store database.Store) *Service {
	if os.Getenv("MOCK_LATENCY") == "off" {
		return NewInstant(store)
	}
	return &Service{store: store, sleep: time.Sleep}
}

// NewInstant construit le service sans latence (tests)
func NewInstant(store database.Store) *Service {
	return NewWithSleep(store, func(time.Duration) {})
}

// NewWithSleep permet d'injecter la fonction d'attente (tests de chargement)
func NewWithSleep(store database.Store, sleep func(time.Duration)) *Service {
	return &Service{store: store, sleep: sleep}
}
