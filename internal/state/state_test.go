package state

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopfront_back_end/internal/database"
	"shopfront_back_end/internal/models"
	"shopfront_back_end/internal/services"
)

func newTestContainer(t *testing.T) (*Container, database.Store) {
	t.Helper()

	store := database.NewMemoryStore()
	require.NoError(t, database.Seed(store))

	c := NewContainer(store, services.NewInstant(store))
	require.NoError(t, c.Initialize())
	return c, store
}

func product(c *Container, t *testing.T, id string) models.Product {
	t.Helper()

	res, err := c.FetchProduct(id)
	require.NoError(t, err)
	require.True(t, res.Success)
	return res.Data
}

func TestInitialize(t *testing.T) {
	c, _ := newTestContainer(t)

	assert.Nil(t, c.User())
	assert.Len(t, c.Products(), 6)
	assert.Empty(t, c.Cart())
	assert.Empty(t, c.Orders())
	assert.False(t, c.IsLoading())
}

func TestAddToCartMergesQuantity(t *testing.T) {
	c, _ := newTestContainer(t)
	p := product(c, t, "p1")

	require.NoError(t, c.AddToCart(p))
	require.NoError(t, c.AddToCart(p))

	cart := c.Cart()
	require.Len(t, cart, 1)
	assert.Equal(t, "p1", cart[0].ID)
	assert.Equal(t, 2, cart[0].Quantity)
}

// Le panier persisté doit se réhydrater à l'identique depuis le même store
func TestCartRoundTrip(t *testing.T) {
	c, store := newTestContainer(t)

	require.NoError(t, c.AddToCart(product(c, t, "p1")))
	require.NoError(t, c.AddToCart(product(c, t, "p1")))
	require.NoError(t, c.AddToCart(product(c, t, "p5")))

	fresh := NewContainer(store, services.NewInstant(store))
	require.NoError(t, fresh.Initialize())

	assert.Equal(t, c.Cart(), fresh.Cart())
}

func TestUpdateQuantity(t *testing.T) {
	c, _ := newTestContainer(t)
	require.NoError(t, c.AddToCart(product(c, t, "p2")))

	require.NoError(t, c.UpdateQuantity("p2", 5))
	cart := c.Cart()
	require.Len(t, cart, 1)
	assert.Equal(t, 5, cart[0].Quantity)

	// quantité nulle ou négative = suppression
	require.NoError(t, c.UpdateQuantity("p2", 0))
	assert.Empty(t, c.Cart())
}

func TestRemoveFromCartAbsentIsNoop(t *testing.T) {
	c, _ := newTestContainer(t)
	require.NoError(t, c.AddToCart(product(c, t, "p3")))

	require.NoError(t, c.RemoveFromCart("p999"))
	assert.Len(t, c.Cart(), 1)

	require.NoError(t, c.RemoveFromCart("p3"))
	assert.Empty(t, c.Cart())
}

func TestLoginPersistsSession(t *testing.T) {
	c, store := newTestContainer(t)

	res, err := c.Login(database.AdminEmail, database.AdminPassword)
	require.NoError(t, err)
	require.True(t, res.Success)
	require.NotNil(t, c.User())
	assert.Equal(t, models.RoleAdmin, c.User().Role)

	// un redémarrage restaure la session depuis le store
	fresh := NewContainer(store, services.NewInstant(store))
	require.NoError(t, fresh.Initialize())
	require.NotNil(t, fresh.User())
	assert.Equal(t, "admin_1", fresh.User().ID)
}

func TestLoginFailureLeavesStateUnchanged(t *testing.T) {
	c, store := newTestContainer(t)

	res, err := c.Login(database.AdminEmail, "wrong")
	require.NoError(t, err)
	assert.False(t, res.Success)
	assert.Nil(t, c.User())

	_, ok, err := store.Read(database.KeySessionUser)
	require.NoError(t, err)
	assert.False(t, ok)
}

// failingStore refuse l'écriture d'une clé donnée
type failingStore struct {
	database.Store
	failKey string
}

func (f failingStore) Write(key, value string) error {
	if key == f.failKey {
		return errors.New("écriture refusée")
	}
	return f.Store.Write(key, value)
}

// Si la session ne peut pas être persistée, l'erreur l'emporte sur
// l'enveloppe et aucun utilisateur n'est installé
func TestLoginSessionPersistFailureInstallsNothing(t *testing.T) {
	mem := database.NewMemoryStore()
	require.NoError(t, database.Seed(mem))
	store := failingStore{Store: mem, failKey: database.KeySessionUser}

	c := NewContainer(store, services.NewInstant(store))
	require.NoError(t, c.Initialize())

	res, err := c.Login(database.AdminEmail, database.AdminPassword)
	require.Error(t, err)
	assert.False(t, res.Success)
	assert.Nil(t, c.User())

	_, ok, err := mem.Read(database.KeySessionUser)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRegisterSessionPersistFailureInstallsNothing(t *testing.T) {
	mem := database.NewMemoryStore()
	require.NoError(t, database.Seed(mem))
	store := failingStore{Store: mem, failKey: database.KeySessionUser}

	c := NewContainer(store, services.NewInstant(store))
	require.NoError(t, c.Initialize())

	res, err := c.Register("Jean", "jean@x.com", "secret")
	require.Error(t, err)
	assert.False(t, res.Success)
	assert.Nil(t, c.User())
}

func TestLogout(t *testing.T) {
	c, store := newTestContainer(t)

	res, err := c.Register("Jean", "jean@x.com", "secret")
	require.NoError(t, err)
	require.True(t, res.Success)
	require.NoError(t, c.AddToCart(product(c, t, "p1")))

	c.Logout()

	assert.Nil(t, c.User())
	assert.Empty(t, c.Cart())
	assert.Empty(t, c.Orders())

	_, ok, err := store.Read(database.KeySessionUser)
	require.NoError(t, err)
	assert.False(t, ok)
	_, ok, err = store.Read(database.KeyCart)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestPlaceOrderWithoutSession(t *testing.T) {
	c, store := newTestContainer(t)

	ok, err := c.PlaceOrder(models.ShippingAddress{FullName: "X"})
	require.NoError(t, err)
	assert.False(t, ok)

	orders, err := database.ReadJSON(store, database.KeyOrders, []models.Order{})
	require.NoError(t, err)
	assert.Empty(t, orders, "aucune écriture durable sans session")
}

func TestPlaceOrderWithEmptyCart(t *testing.T) {
	c, store := newTestContainer(t)

	res, err := c.Register("Jean", "jean@x.com", "secret")
	require.NoError(t, err)
	require.True(t, res.Success)

	ok, err := c.PlaceOrder(models.ShippingAddress{FullName: "X"})
	require.NoError(t, err)
	assert.False(t, ok)

	orders, err := database.ReadJSON(store, database.KeyOrders, []models.Order{})
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestPlaceOrderSuccess(t *testing.T) {
	c, _ := newTestContainer(t)

	res, err := c.Register("Jean", "jean@x.com", "secret")
	require.NoError(t, err)
	require.True(t, res.Success)

	require.NoError(t, c.AddToCart(product(c, t, "p1"))) // 149.99
	require.NoError(t, c.AddToCart(product(c, t, "p1")))
	require.NoError(t, c.AddToCart(product(c, t, "p4"))) // 45.00

	ok, err := c.PlaceOrder(models.ShippingAddress{
		FullName: "Jean Dupont",
		Address:  "1 rue de la Paix",
		City:     "Bruxelles",
		ZipCode:  "1000",
		Country:  "Belgique",
	})
	require.NoError(t, err)
	require.True(t, ok)

	assert.Empty(t, c.Cart(), "le panier est vidé après la commande")

	orders := c.Orders()
	require.Len(t, orders, 1)
	assert.Equal(t, models.OrderStatusPending, orders[0].Status)
	assert.InDelta(t, 344.98, orders[0].Total, 0.001)
	require.Len(t, orders[0].Items, 2)
	assert.Equal(t, 2, orders[0].Items[0].Quantity)
}

func TestAdminSeesAllOrders(t *testing.T) {
	c, _ := newTestContainer(t)

	res, err := c.Register("Jean", "jean@x.com", "secret")
	require.NoError(t, err)
	require.True(t, res.Success)
	require.NoError(t, c.AddToCart(product(c, t, "p2")))
	ok, err := c.PlaceOrder(models.ShippingAddress{FullName: "Jean"})
	require.NoError(t, err)
	require.True(t, ok)

	c.Logout()

	login, err := c.Login(database.AdminEmail, database.AdminPassword)
	require.NoError(t, err)
	require.True(t, login.Success)

	require.NoError(t, c.FetchUserOrders())
	assert.Len(t, c.Orders(), 1)
}

// FetchAllOrders ignore la session courante : toutes les commandes,
// les plus récentes d'abord
func TestFetchAllOrders(t *testing.T) {
	c, _ := newTestContainer(t)

	res, err := c.Register("Jean", "jean@x.com", "secret")
	require.NoError(t, err)
	require.True(t, res.Success)
	require.NoError(t, c.AddToCart(product(c, t, "p2"))) // 299.00
	ok, err := c.PlaceOrder(models.ShippingAddress{FullName: "Jean"})
	require.NoError(t, err)
	require.True(t, ok)

	c.Logout()

	res, err = c.Register("Marie", "marie@x.com", "secret")
	require.NoError(t, err)
	require.True(t, res.Success)
	require.NoError(t, c.AddToCart(product(c, t, "p4"))) // 45.00
	ok, err = c.PlaceOrder(models.ShippingAddress{FullName: "Marie"})
	require.NoError(t, err)
	require.True(t, ok)

	all, err := c.FetchAllOrders()
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.InDelta(t, 45.00, all[0].Total, 0.001)
	assert.InDelta(t, 299.00, all[1].Total, 0.001)
}

func TestFetchUserOrdersWithoutSessionIsNoop(t *testing.T) {
	c, _ := newTestContainer(t)

	require.NoError(t, c.FetchUserOrders())
	assert.Empty(t, c.Orders())
	assert.False(t, c.IsLoading())
}

// Deux appels qui se chevauchent : le premier terminé ne doit pas faire
// retomber IsLoading tant que le second est en vol
func TestLoadingCountsOverlappingCalls(t *testing.T) {
	store := database.NewMemoryStore()
	require.NoError(t, database.Seed(store))

	started := make(chan struct{})
	release := make(chan struct{})
	api := services.NewWithSleep(store, func(time.Duration) {
		started <- struct{}{}
		<-release
	})
	c := NewContainer(store, api)

	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = c.FetchProduct("p999")
		}()
	}

	// attendre que les deux appels soient comptés en vol
	<-started
	<-started
	require.True(t, c.IsLoading())

	release <- struct{}{}
	assert.True(t, c.IsLoading(), "un appel encore en vol garde l'état chargeant")

	release <- struct{}{}
	wg.Wait()
	assert.False(t, c.IsLoading())
}

func TestCartSubscription(t *testing.T) {
	c, _ := newTestContainer(t)

	ch := c.Subscribe()
	defer c.Unsubscribe(ch)

	require.NoError(t, c.AddToCart(product(c, t, "p6")))

	select {
	case snapshot := <-ch:
		require.Len(t, snapshot, 1)
		assert.Equal(t, "p6", snapshot[0].ID)
	case <-time.After(time.Second):
		t.Fatal("aucun instantané de panier reçu")
	}
}
