package database

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"shopfront_back_end/internal/models"
)

// Compte administrateur créé au premier démarrage
const (
	AdminEmail    = "admin@shop.com"
	AdminPassword = "admin"
)

// Catalogue initial, écrit une seule fois au premier accès au store
var initialProducts = []models.Product{
	{
		ID:          "p1",
		Name:        "Minimalist Mechanical Keyboard",
		Price:       149.99,
		Description: "A compact 60% mechanical keyboard with Gateron Brown switches and PBT keycaps. Perfect for coding and typing enthusiasts.",
		Image:       "https://picsum.photos/400/400?random=1",
		Stock:       25,
		Category:    "Electronics",
	},
	{
		ID:          "p2",
		Name:        "Ergonomic Office Chair",
		Price:       299.00,
		Description: "Designed for comfort during long working hours. Features lumbar support and breathable mesh.",
		Image:       "https://picsum.photos/400/400?random=2",
		Stock:       10,
		Category:    "Furniture",
	},
	{
		ID:          "p3",
		Name:        "Noise Cancelling Headphones",
		Price:       199.50,
		Description: "Industry-leading noise cancellation. 30-hour battery life and exceptional sound quality.",
		Image:       "https://picsum.photos/400/400?random=3",
		Stock:       15,
		Category:    "Electronics",
	},
	{
		ID:          "p4",
		Name:        "Ceramic Pour-Over Set",
		Price:       45.00,
		Description: "Handcrafted ceramic dripper and carafe for the perfect morning brew. Minimalist design.",
		Image:       "https://picsum.photos/400/400?random=4",
		Stock:       50,
		Category:    "Home",
	},
	{
		ID:          "p5",
		Name:        "Leather Weekend Bag",
		Price:       120.00,
		Description: "Full-grain leather travel bag. Durable, stylish, and spacious enough for a 3-day trip.",
		Image:       "https://picsum.photos/400/400?random=5",
		Stock:       8,
		Category:    "Fashion",
	},
	{
		ID:          "p6",
		Name:        "Smart Desk Lamp",
		Price:       55.00,
		Description: "App-controlled LED desk lamp with adjustable color temperature and brightness.",
		Image:       "https://picsum.photos/400/400?random=6",
		Stock:       30,
		Category:    "Electronics",
	},
}

// Seed initialise les collections absentes : catalogue fixe, compte admin unique,
// liste de commandes vide. Idempotent — ne touche jamais une clé déjà présente.
func Seed(store Store) error {
	if _, ok, err := store.Read(KeyProducts); err != nil {
		return err
	} else if !ok {
		if err := WriteJSON(store, KeyProducts, initialProducts); err != nil {
			return err
		}
	}

	if _, ok, err := store.Read(KeyUsers); err != nil {
		return err
	} else if !ok {
		hash, err := bcrypt.GenerateFromPassword([]byte(AdminPassword), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("hash admin: %w", err)
		}

		admin := models.StoredUser{
			User: models.User{
				ID:    "admin_1",
				Email: AdminEmail,
				Name:  "Admin User",
				Role:  models.RoleAdmin,
			},
			PasswordHash: string(hash),
		}
		if err := WriteJSON(store, KeyUsers, []models.StoredUser{admin}); err != nil {
			return err
		}
	}

	if _, ok, err := store.Read(KeyOrders); err != nil {
		return err
	} else if !ok {
		if err := WriteJSON(store, KeyOrders, []models.Order{}); err != nil {
			return err
		}
	}

	return nil
}
