package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"shopfront_back_end/internal/models"
)

func cartPayload(items []models.CartItem) gin.H {
	return gin.H{
		"items": items,
		"total": models.CartTotal(items),
		"count": len(items),
	}
}

func GetCart(c *gin.Context) {
	c.JSON(http.StatusOK, cartPayload(container.Cart()))
}

//
// 🟢 POST /api/cart/add
//
func AddToCart(c *gin.Context) {
	var input struct {
		ProductID string `json:"productId"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	res, err := container.FetchProduct(input.ProductID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lecture catalogue"})
		return
	}
	if !res.Success {
		c.JSON(http.StatusNotFound, gin.H{"error": res.Message})
		return
	}

	if err := container.AddToCart(res.Data); err != nil {
		log.Printf("❌ Erreur persistance panier: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur sauvegarde panier"})
		return
	}

	c.JSON(http.StatusOK, cartPayload(container.Cart()))
}

//
// 🔁 PUT /api/cart/quantity
//
func UpdateQuantity(c *gin.Context) {
	var input struct {
		ProductID string `json:"productId"`
		Quantity  int    `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	if err := container.UpdateQuantity(input.ProductID, input.Quantity); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur sauvegarde panier"})
		return
	}

	c.JSON(http.StatusOK, cartPayload(container.Cart()))
}

//
// ❌ DELETE /api/cart/:productId
//
func RemoveFromCart(c *gin.Context) {
	if err := container.RemoveFromCart(c.Param("productId")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur sauvegarde panier"})
		return
	}

	c.JSON(http.StatusOK, cartPayload(container.Cart()))
}

//
// 🧹 DELETE /api/cart
//
func ClearCart(c *gin.Context) {
	if err := container.ClearCart(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lors du vidage du panier"})
		return
	}

	c.JSON(http.StatusOK, cartPayload(container.Cart()))
}
