package utils

import "golang.org/x/crypto/bcrypt"

// HashPassword produit le placeholder de credential stocké à côté d'un compte.
// Attention : dans ce mock, seul le compte admin voit son mot de passe vérifié
// au login — ne pas généraliser ce comportement à une vraie authentification.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword compare un mot de passe au hash stocké
func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
