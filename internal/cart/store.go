package cart

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/adnanmuhammad4393/henna-storefront/internal/errors"
	"github.com/adnanmuhammad4393/henna-storefront/internal/metrics"
	"github.com/adnanmuhammad4393/henna-storefront/internal/models"
	"github.com/adnanmuhammad4393/henna-storefront/internal/notification"
	"github.com/google/uuid"
)

// Store is the authoritative in-memory cart state, one Cart per session.
// All mutations run under the mutex and are immediately consistent; state
// lives only for the process lifetime. Consumers never mutate a Cart
// directly: every read hands out a snapshot copy.
type Store struct {
	mu       sync.Mutex
	carts    map[uuid.UUID]*models.Cart
	notifier notification.Notifier
}

func NewStore(notifier notification.Notifier) *Store {
	return &Store{
		carts:    make(map[uuid.UUID]*models.Cart),
		notifier: notifier,
	}
}

// CreateSession starts a new empty cart and returns its snapshot.
func (s *Store) CreateSession(ctx context.Context) *models.Cart {

	s.mu.Lock()
	defer s.mu.Unlock()

	cart := &models.Cart{
		SessionID: uuid.New(),
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	s.carts[cart.SessionID] = cart

	return snapshot(cart)
}

// Get returns a snapshot of the session's cart.
func (s *Store) Get(ctx context.Context, sessionID uuid.UUID) (*models.Cart, error) {

	s.mu.Lock()
	defer s.mu.Unlock()

	cart, err := s.cart(sessionID)
	if err != nil {
		return nil, err
	}

	return snapshot(cart), nil
}

// AddToCart merges a product into the cart: an id already present has its
// quantity incremented by 1, otherwise the item is appended with quantity 1.
func (s *Store) AddToCart(ctx context.Context, sessionID uuid.UUID, product models.LineItem) (*models.Cart, error) {

	s.mu.Lock()
	defer s.mu.Unlock()

	cart, err := s.cart(sessionID)
	if err != nil {
		return nil, err
	}

	if idx := indexOf(cart.Items, product.ID); idx >= 0 {
		cart.Items[idx].Quantity++
	} else {
		product.Quantity = 1
		cart.Items = append(cart.Items, product)
	}

	s.touch(cart)
	metrics.RecordCartOp("add")

	s.notifier.Notify(ctx, models.Notification{
		Kind:        models.NotificationSuccess,
		Title:       "Added to cart",
		Description: fmt.Sprintf("%s added to cart", product.Name),
	})

	return snapshot(cart), nil
}

// RemoveFromCart deletes the line item; absent ids are a no-op, not an error.
func (s *Store) RemoveFromCart(ctx context.Context, sessionID uuid.UUID, productID string) (*models.Cart, error) {

	s.mu.Lock()
	defer s.mu.Unlock()

	cart, err := s.cart(sessionID)
	if err != nil {
		return nil, err
	}

	if idx := indexOf(cart.Items, productID); idx >= 0 {
		cart.Items = remove(cart.Items, idx)
		s.touch(cart)
		metrics.RecordCartOp("remove")
	}

	return snapshot(cart), nil
}

// UpdateQuantity sets the quantity for the matching item. Values below 1
// are clamped to 1: the cart never holds a zero or negative quantity, and
// removal stays a distinct explicit action. Absent ids are a no-op.
func (s *Store) UpdateQuantity(ctx context.Context, sessionID uuid.UUID, productID string, quantity int) (*models.Cart, error) {

	s.mu.Lock()
	defer s.mu.Unlock()

	cart, err := s.cart(sessionID)
	if err != nil {
		return nil, err
	}

	if idx := indexOf(cart.Items, productID); idx >= 0 {
		if quantity < 1 {
			quantity = 1
		}

		cart.Items[idx].Quantity = quantity
		s.touch(cart)
		metrics.RecordCartOp("update_quantity")
	}

	return snapshot(cart), nil
}

// SaveForLater moves the item out of the cart into the saved list. Calling
// it again while the item is already saved toggles it away entirely: the
// item ends up in neither list. A product not present anywhere is inserted
// into the saved list as given.
func (s *Store) SaveForLater(ctx context.Context, sessionID uuid.UUID, product models.LineItem) (*models.Cart, error) {

	s.mu.Lock()
	defer s.mu.Unlock()

	cart, err := s.cart(sessionID)
	if err != nil {
		return nil, err
	}

	if idx := indexOf(cart.SavedItems, product.ID); idx >= 0 {
		cart.SavedItems = remove(cart.SavedItems, idx)
		s.touch(cart)
		metrics.RecordCartOp("unsave")

		s.notifier.Notify(ctx, models.Notification{
			Kind:        models.NotificationSuccess,
			Title:       "Removed from favorites",
			Description: fmt.Sprintf("%s removed from favorites", product.Name),
		})

		return snapshot(cart), nil
	}

	item := product
	if item.Quantity < 1 {
		item.Quantity = 1
	}

	// Mutual exclusion: saving pulls the item out of the cart, carrying its
	// quantity along.
	if idx := indexOf(cart.Items, product.ID); idx >= 0 {
		item = cart.Items[idx]
		cart.Items = remove(cart.Items, idx)
	}

	cart.SavedItems = append(cart.SavedItems, item)
	s.touch(cart)
	metrics.RecordCartOp("save_for_later")

	s.notifier.Notify(ctx, models.Notification{
		Kind:        models.NotificationSuccess,
		Title:       "Added to favorites",
		Description: fmt.Sprintf("%s added to favorites", item.Name),
	})

	return snapshot(cart), nil
}

// MoveToCart takes the item out of the saved list and merges it back into
// the cart under the AddToCart rule, preserving the saved quantity.
func (s *Store) MoveToCart(ctx context.Context, sessionID uuid.UUID, productID string) (*models.Cart, error) {

	s.mu.Lock()
	defer s.mu.Unlock()

	cart, err := s.cart(sessionID)
	if err != nil {
		return nil, err
	}

	idx := indexOf(cart.SavedItems, productID)
	if idx < 0 {
		return snapshot(cart), nil
	}

	item := cart.SavedItems[idx]
	cart.SavedItems = remove(cart.SavedItems, idx)

	if existing := indexOf(cart.Items, item.ID); existing >= 0 {
		cart.Items[existing].Quantity += item.Quantity
	} else {
		cart.Items = append(cart.Items, item)
	}

	s.touch(cart)
	metrics.RecordCartOp("move_to_cart")

	s.notifier.Notify(ctx, models.Notification{
		Kind:        models.NotificationSuccess,
		Title:       "Moved to cart",
		Description: fmt.Sprintf("%s moved to cart", item.Name),
	})

	return snapshot(cart), nil
}

// Clear empties the cart items after a successful payment. Saved items are
// kept: only the purchased lines are cleared to prevent duplicate orders.
func (s *Store) Clear(ctx context.Context, sessionID uuid.UUID) error {

	s.mu.Lock()
	defer s.mu.Unlock()

	cart, err := s.cart(sessionID)
	if err != nil {
		return err
	}

	cart.Items = nil
	s.touch(cart)
	metrics.RecordCartOp("clear")

	return nil
}

func (s *Store) cart(sessionID uuid.UUID) (*models.Cart, error) {

	cart, ok := s.carts[sessionID]
	if !ok {
		return nil, errors.NotFoundError("Session not found")
	}

	return cart, nil
}

func (s *Store) touch(cart *models.Cart) {
	cart.UpdatedAt = time.Now()
}

func indexOf(items []models.LineItem, id string) int {
	for i, item := range items {
		if item.ID == id {
			return i
		}
	}

	return -1
}

func remove(items []models.LineItem, idx int) []models.LineItem {
	return append(items[:idx], items[idx+1:]...)
}

func snapshot(cart *models.Cart) *models.Cart {

	copied := *cart
	copied.Items = append([]models.LineItem(nil), cart.Items...)
	copied.SavedItems = append([]models.LineItem(nil), cart.SavedItems...)

	return &copied
}
