package services

import (
	"fmt"
	"time"

	"shopfront_back_end/internal/database"
	"shopfront_back_end/internal/models"
	"shopfront_back_end/internal/utils"
)

// AuthPayload est la donnée de succès de login/register :
// la projection publique + le jeton de session
type AuthPayload struct {
	User  models.User `json:"user"`
	Token string      `json:"token"`
}

// Login cherche l'utilisateur par email.
//
// ⚠️ Asymétrie assumée du mock : seul le compte admin voit son mot de passe
// vérifié ; tout autre compte se connecte quel que soit le mot de passe fourni.
func (s *Service) Login(email, password string) (models.ApiResponse[AuthPayload], error) {
	s.sleep(DelayLogin)

	users, err := database.ReadJSON(s.store, database.KeyUsers, []models.StoredUser{})
	if err != nil {
		return models.ApiResponse[AuthPayload]{}, err
	}

	for _, u := range users {
		if u.Email != email {
			continue
		}

		if email == database.AdminEmail && !utils.CheckPassword(u.PasswordHash, password) {
			return models.Fail[AuthPayload](MsgInvalidCredentials), nil
		}

		token, err := utils.GenerateToken(u.Public())
		if err != nil {
			return models.ApiResponse[AuthPayload]{}, fmt.Errorf("génération jeton: %w", err)
		}
		return models.Ok(AuthPayload{User: u.Public(), Token: token}), nil
	}

	return models.Fail[AuthPayload](MsgUserNotFound), nil
}

// Register crée un compte avec le rôle user et un placeholder de credential
func (s *Service) Register(name, email, password string) (models.ApiResponse[AuthPayload], error) {
	s.sleep(DelayRegister)

	users, err := database.ReadJSON(s.store, database.KeyUsers, []models.StoredUser{})
	if err != nil {
		return models.ApiResponse[AuthPayload]{}, err
	}

	for _, u := range users {
		if u.Email == email {
			return models.Fail[AuthPayload](MsgUserAlreadyExists), nil
		}
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return models.ApiResponse[AuthPayload]{}, fmt.Errorf("hash mot de passe: %w", err)
	}

	newUser := models.StoredUser{
		User: models.User{
			ID:    fmt.Sprintf("user_%d", time.Now().UnixMilli()),
			Email: email,
			Name:  name,
			Role:  models.RoleUser,
		},
		PasswordHash: hash,
	}

	users = append(users, newUser)
	if err := database.WriteJSON(s.store, database.KeyUsers, users); err != nil {
		return models.ApiResponse[AuthPayload]{}, err
	}

	token, err := utils.GenerateToken(newUser.Public())
	if err != nil {
		return models.ApiResponse[AuthPayload]{}, fmt.Errorf("génération jeton: %w", err)
	}
	return models.Ok(AuthPayload{User: newUser.Public(), Token: token}), nil
}
