// Package state porte l'état applicatif observé par la couche de présentation :
// session courante, cache du catalogue, panier et commandes. C'est la seule
// source de vérité côté client et le seul écrivain de la persistance du panier.
package state

import (
	"log"
	"sync"

	"shopfront_back_end/internal/database"
	"shopfront_back_end/internal/models"
	"shopfront_back_end/internal/services"
)

type Container struct {
	store database.Store
	api   *services.Service

	mu       sync.Mutex
	user     *models.User
	products []models.Product
	cart     []models.CartItem
	orders   []models.Order

	// compteur d'appels en vol : IsLoading = inFlight > 0. Remplace le booléen
	// partagé du design d'origine, qu'un premier appel terminé pouvait remettre
	// à faux alors qu'un second était encore en cours.
	inFlight int

	subs map[chan []models.CartItem]struct{}
}

func NewContainer(store database.Store, api *services.Service) *Container {
	return &Container{
		store: store,
		api:   api,
		subs:  make(map[chan []models.CartItem]struct{}),
	}
}

// --- Chargement ---

func (c *Container) beginLoad() {
	c.mu.Lock()
	c.inFlight++
	c.mu.Unlock()
}

func (c *Container) endLoad() {
	c.mu.Lock()
	c.inFlight--
	c.mu.Unlock()
}

func (c *Container) IsLoading() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.inFlight > 0
}

// Initialize restaure la session persistée, charge le catalogue et réhydrate
// le panier. À appeler une seule fois au démarrage.
func (c *Container) Initialize() error {
	c.beginLoad()
	defer c.endLoad()

	storedUser, err := database.ReadJSON(c.store, database.KeySessionUser, (*models.User)(nil))
	if err != nil {
		return err
	}

	prodRes, err := c.api.FetchProducts()
	if err != nil {
		return err
	}

	storedCart, err := database.ReadJSON(c.store, database.KeyCart, []models.CartItem{})
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.user = storedUser
	if prodRes.Success {
		c.products = prodRes.Data
	}
	c.cart = storedCart
	return nil
}

// FetchProduct cherche un produit, d'abord dans le cache du catalogue puis via
// le backend. La couche de présentation passe toujours par ici, jamais par le
// backend directement.
func (c *Container) FetchProduct(id string) (models.ApiResponse[models.Product], error) {
	c.mu.Lock()
	for _, p := range c.products {
		if p.ID == id {
			c.mu.Unlock()
			return models.Ok(p), nil
		}
	}
	c.mu.Unlock()

	c.beginLoad()
	defer c.endLoad()
	return c.api.FetchProductByID(id)
}

// --- Session ---

// Login délègue au backend puis installe la session en cas de succès.
// L'appelant lit le succès (et le jeton) dans l'enveloppe renvoyée.
// Si la session ne peut pas être persistée, l'erreur l'emporte : aucun
// utilisateur n'est installé et l'enveloppe renvoyée est vide.
func (c *Container) Login(email, password string) (models.ApiResponse[services.AuthPayload], error) {
	c.beginLoad()
	defer c.endLoad()

	res, err := c.api.Login(email, password)
	if err != nil || !res.Success {
		return res, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	user := res.Data.User
	if err := database.WriteJSON(c.store, database.KeySessionUser, user); err != nil {
		return models.ApiResponse[services.AuthPayload]{}, err
	}
	c.user = &user
	return res, nil
}

func (c *Container) Register(name, email, password string) (models.ApiResponse[services.AuthPayload], error) {
	c.beginLoad()
	defer c.endLoad()

	res, err := c.api.Register(name, email, password)
	if err != nil || !res.Success {
		return res, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	user := res.Data.User
	if err := database.WriteJSON(c.store, database.KeySessionUser, user); err != nil {
		return models.ApiResponse[services.AuthPayload]{}, err
	}
	c.user = &user
	return res, nil
}

// Logout vide la session, le panier et les commandes en mémoire, et retire
// leurs copies durables. Ne peut pas échouer du point de vue de l'appelant.
func (c *Container) Logout() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.user = nil
	c.cart = nil
	c.orders = nil

	if err := c.store.Remove(database.KeySessionUser); err != nil {
		log.Printf("❌ Erreur suppression session: %v", err)
	}
	if err := c.store.Remove(database.KeyCart); err != nil {
		log.Printf("❌ Erreur suppression panier: %v", err)
	}
	c.notifyLocked()
}

// --- Panier ---

// AddToCart incrémente la quantité si le produit est déjà dans le panier,
// sinon l'ajoute avec une quantité de 1
func (c *Container) AddToCart(product models.Product) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	found := false
	for i := range c.cart {
		if c.cart[i].ID == product.ID {
			c.cart[i].Quantity++
			found = true
			break
		}
	}
	if !found {
		c.cart = append(c.cart, models.CartItem{Product: product, Quantity: 1})
	}

	return c.persistCartLocked()
}

// RemoveFromCart retire l'item correspondant, sans erreur s'il est absent
func (c *Container) RemoveFromCart(productID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	newCart := c.cart[:0]
	for _, item := range c.cart {
		if item.ID != productID {
			newCart = append(newCart, item)
		}
	}
	c.cart = newCart

	return c.persistCartLocked()
}

// UpdateQuantity écrase la quantité ; une quantité <= 0 vaut suppression
func (c *Container) UpdateQuantity(productID string, quantity int) error {
	if quantity <= 0 {
		return c.RemoveFromCart(productID)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.cart {
		if c.cart[i].ID == productID {
			c.cart[i].Quantity = quantity
			break
		}
	}

	return c.persistCartLocked()
}

func (c *Container) ClearCart() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.cart = nil
	return c.persistCartLocked()
}

// persistCartLocked resérialise le panier entier vers le store et prévient les
// abonnés. Appelé sous verrou après chaque mutation.
func (c *Container) persistCartLocked() error {
	if c.cart == nil {
		c.cart = []models.CartItem{}
	}
	if err := database.WriteJSON(c.store, database.KeyCart, c.cart); err != nil {
		return err
	}
	c.notifyLocked()
	return nil
}

// --- Commandes ---

// PlaceOrder crée la commande à partir de l'instantané courant du panier.
// Renvoie false sans écriture durable si personne n'est connecté ou si le
// panier est vide. En cas de succès le panier est vidé et la liste des
// commandes rafraîchie ; en cas d'échec le panier reste intact.
func (c *Container) PlaceOrder(addr models.ShippingAddress) (bool, error) {
	c.mu.Lock()
	if c.user == nil || len(c.cart) == 0 {
		c.mu.Unlock()
		return false, nil
	}
	user := *c.user
	items := make([]models.CartItem, len(c.cart))
	copy(items, c.cart)
	total := models.CartTotal(items)
	c.mu.Unlock()

	c.beginLoad()
	defer c.endLoad()

	res, err := c.api.CreateOrder(user.ID, items, total, addr)
	if err != nil || !res.Success {
		return false, err
	}

	if err := c.ClearCart(); err != nil {
		return true, err
	}
	return true, c.FetchUserOrders()
}

// FetchUserOrders rafraîchit la liste en mémoire depuis le backend,
// selon le rôle de la session courante. Sans session : no-op.
func (c *Container) FetchUserOrders() error {
	c.mu.Lock()
	if c.user == nil {
		c.mu.Unlock()
		return nil
	}
	user := *c.user
	c.mu.Unlock()

	c.beginLoad()
	defer c.endLoad()

	res, err := c.api.FetchOrders(user.ID, user.Role)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if res.Success {
		c.orders = res.Data
	}
	return nil
}

// FetchAllOrders renvoie toutes les commandes, tous utilisateurs confondus,
// les plus récentes d'abord. Réservé à la surface admin : l'appelant doit
// avoir validé le rôle en amont.
func (c *Container) FetchAllOrders() ([]models.Order, error) {
	c.beginLoad()
	defer c.endLoad()

	res, err := c.api.FetchOrders("", models.RoleAdmin)
	if err != nil {
		return nil, err
	}
	return res.Data, nil
}

// --- Accesseurs (copies, jamais l'état interne) ---

func (c *Container) User() *models.User {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.user == nil {
		return nil
	}
	user := *c.user
	return &user
}

func (c *Container) Products() []models.Product {
	c.mu.Lock()
	defer c.mu.Unlock()

	products := make([]models.Product, len(c.products))
	copy(products, c.products)
	return products
}

func (c *Container) Cart() []models.CartItem {
	c.mu.Lock()
	defer c.mu.Unlock()

	cart := make([]models.CartItem, len(c.cart))
	copy(cart, c.cart)
	return cart
}

func (c *Container) Orders() []models.Order {
	c.mu.Lock()
	defer c.mu.Unlock()

	orders := make([]models.Order, len(c.orders))
	copy(orders, c.orders)
	return orders
}

// --- Abonnements panier (flux websocket) ---

// Subscribe renvoie un canal qui reçoit un instantané du panier à chaque
// mutation. Un abonné trop lent perd des trames, il n'est jamais bloquant.
func (c *Container) Subscribe() chan []models.CartItem {
	c.mu.Lock()
	defer c.mu.Unlock()

	ch := make(chan []models.CartItem, 8)
	c.subs[ch] = struct{}{}
	return ch
}

func (c *Container) Unsubscribe(ch chan []models.CartItem) {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.subs, ch)
	close(ch)
}

func (c *Container) notifyLocked() {
	for ch := range c.subs {
		snapshot := make([]models.CartItem, len(c.cart))
		copy(snapshot, c.cart)
		select {
		case ch <- snapshot:
		default:
		}
	}
}
