package services

import (
	"shopfront_back_end/internal/database"
	"shopfront_back_end/internal/models"
)

// FetchProducts renvoie le catalogue entier
func (s *Service) FetchProducts() (models.ApiResponse[[]models.Product], error) {
	s.sleep(DelayFetchProducts)

	products, err := database.ReadJSON(s.store, database.KeyProducts, []models.Product{})
	if err != nil {
		return models.ApiResponse[[]models.Product]{}, err
	}
	return models.Ok(products), nil
}

// FetchProductByID cherche un produit par id (scan linéaire du catalogue)
func (s *Service) FetchProductByID(id string) (models.ApiResponse[models.Product], error) {
	s.sleep(DelayFetchProduct)

	products, err := database.ReadJSON(s.store, database.KeyProducts, []models.Product{})
	if err != nil {
		return models.ApiResponse[models.Product]{}, err
	}

	for _, p := range products {
		if p.ID == id {
			return models.Ok(p), nil
		}
	}
	return models.Fail[models.Product](MsgProductNotFound), nil
}
