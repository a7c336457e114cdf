package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"shopfront_back_end/internal/models"
)

//
// 🧾 POST /api/orders
//
func PlaceOrder(c *gin.Context) {
	var input models.ShippingAddress
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	// adresse libre, validée uniquement pour la présence des champs
	if input.FullName == "" || input.Address == "" || input.City == "" ||
		input.ZipCode == "" || input.Country == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Adresse de livraison incomplète"})
		return
	}

	ok, err := container.PlaceOrder(input)
	if err != nil {
		log.Printf("❌ Erreur création commande: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur création commande"})
		return
	}
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Panier vide ou session absente"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Commande créée",
		"orders":  container.Orders(),
	})
}

//
// 📦 GET /api/orders — un admin voit toutes les commandes
//
func GetOrders(c *gin.Context) {
	if err := container.FetchUserOrders(); err != nil {
		log.Printf("❌ Erreur récupération commandes: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur récupération commandes"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"orders": container.Orders()})
}

//
// 👑 GET /api/orders/all — toutes les commandes, réservé aux administrateurs
//
func GetAllOrders(c *gin.Context) {
	orders, err := container.FetchAllOrders()
	if err != nil {
		log.Printf("❌ Erreur récupération commandes admin: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur récupération commandes"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"orders": orders})
}
