// Package handlers est la surface HTTP consommée par le front. Chaque handler
// passe par le conteneur d'état — jamais par le backend simulé en direct.
package handlers

import "shopfront_back_end/internal/state"

var container *state.Container

// Init branche les handlers sur le conteneur d'état du profil courant
func Init(c *state.Container) {
	container = c
}
