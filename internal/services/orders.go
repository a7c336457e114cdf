package services

import (
	"fmt"
	"time"

	"shopfront_back_end/internal/database"
	"shopfront_back_end/internal/models"
)

// CreateOrder enregistre un instantané du panier comme nouvelle commande.
// Pas de décrément de stock ni de validation des prix à ce niveau : le mock
// fait confiance au total calculé côté client.
func (s *Service) CreateOrder(userID string, items []models.CartItem, total float64, addr models.ShippingAddress) (models.ApiResponse[models.Order], error) {
	s.sleep(DelayCreateOrder)

	orders, err := database.ReadJSON(s.store, database.KeyOrders, []models.Order{})
	if err != nil {
		return models.ApiResponse[models.Order]{}, err
	}

	newOrder := models.Order{
		ID:              fmt.Sprintf("ord_%d", time.Now().UnixMilli()),
		UserID:          userID,
		Items:           items,
		Total:           total,
		Status:          models.OrderStatusPending,
		CreatedAt:       time.Now(),
		ShippingAddress: addr,
	}

	orders = append(orders, newOrder)
	if err := database.WriteJSON(s.store, database.KeyOrders, orders); err != nil {
		return models.ApiResponse[models.Order]{}, err
	}

	return models.Ok(newOrder), nil
}

// FetchOrders renvoie les commandes, les plus récentes d'abord.
// Un admin voit toutes les commandes, un client uniquement les siennes.
func (s *Service) FetchOrders(userID, role string) (models.ApiResponse[[]models.Order], error) {
	s.sleep(DelayFetchOrders)

	orders, err := database.ReadJSON(s.store, database.KeyOrders, []models.Order{})
	if err != nil {
		return models.ApiResponse[[]models.Order]{}, err
	}

	// la collection est append-only : parcours inverse = ordre anté-chronologique
	result := []models.Order{}
	for i := len(orders) - 1; i >= 0; i-- {
		if role == models.RoleAdmin || orders[i].UserID == userID {
			result = append(result, orders[i])
		}
	}

	return models.Ok(result), nil
}
