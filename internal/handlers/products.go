package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func GetProducts(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"products": container.Products()})
}

func GetProductByID(c *gin.Context) {
	res, err := container.FetchProduct(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lecture catalogue"})
		return
	}
	if !res.Success {
		c.JSON(http.StatusNotFound, gin.H{"error": res.Message})
		return
	}

	c.JSON(http.StatusOK, res.Data)
}
