package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

func Register(c *gin.Context) {
	var input struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	res, err := container.Register(input.Name, input.Email, input.Password)
	if err != nil {
		log.Printf("❌ Erreur register: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur création utilisateur"})
		return
	}
	if !res.Success {
		c.JSON(http.StatusConflict, gin.H{"error": res.Message})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"token": res.Data.Token,
		"user":  res.Data.User,
	})
}

func Login(c *gin.Context) {
	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	res, err := container.Login(input.Email, input.Password)
	if err != nil {
		log.Printf("❌ Erreur login: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur interne"})
		return
	}
	if !res.Success {
		// introuvable ou mot de passe admin incorrect : même code côté HTTP
		c.JSON(http.StatusUnauthorized, gin.H{"error": res.Message})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": res.Data.Token,
		"user":  res.Data.User,
	})
}

func Logout(c *gin.Context) {
	container.Logout()
	c.JSON(http.StatusOK, gin.H{"message": "Déconnexion réussie"})
}
