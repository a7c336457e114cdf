package database

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
)

// --- Clés logiques du store ---
const (
	KeyUsers       = "users"
	KeyProducts    = "products"
	KeyOrders      = "orders"
	KeySessionUser = "session_user"
	KeyCart        = "cart"
)

// Store est le contrat de persistance : des blobs JSON sous des clés fixes.
// Write écrase toujours la valeur entière — pas de mise à jour partielle, pas de
// transaction. L'implémentation est injectée partout (jamais de global ambiant)
// pour pouvoir substituer un MemoryStore dans les tests.
type Store interface {
	Read(key string) (value string, ok bool, err error)
	Write(key, value string) error
	Remove(key string) error
}

// Connect choisit le backend selon STORE_BACKEND (file par défaut, redis sinon)
func Connect() (Store, error) {
	backend := os.Getenv("STORE_BACKEND")

	switch backend {
	case "", "file":
		dataDir := os.Getenv("DATA_DIR")
		if dataDir == "" {
			dataDir = "./data"
		}
		store, err := NewFileStore(dataDir)
		if err != nil {
			return nil, err
		}
		log.Println("✅ Store fichier ouvert dans", dataDir)
		return store, nil

	case "redis":
		store, err := NewRedisStore(os.Getenv("REDIS_ADDR"), os.Getenv("REDIS_PASSWORD"))
		if err != nil {
			return nil, err
		}
		log.Println("✅ Store Redis connecté")
		return store, nil
	}

	return nil, fmt.Errorf("backend de store inconnu: %q", backend)
}

// ReadJSON lit et décode la valeur d'une clé. Si la clé est absente, renvoie def.
// Un JSON corrompu est une faute fatale pour l'appelant : on remonte l'erreur
// telle quelle, jamais de reset silencieux vers les données de seed.
func ReadJSON[T any](s Store, key string, def T) (T, error) {
	raw, ok, err := s.Read(key)
	if err != nil {
		return def, fmt.Errorf("lecture %s: %w", key, err)
	}
	if !ok {
		return def, nil
	}

	var v T
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		return def, fmt.Errorf("décodage %s: %w", key, err)
	}
	return v, nil
}

// WriteJSON encode et écrase la valeur entière d'une clé
func WriteJSON(s Store, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encodage %s: %w", key, err)
	}
	if err := s.Write(key, string(data)); err != nil {
		return fmt.Errorf("écriture %s: %w", key, err)
	}
	return nil
}
