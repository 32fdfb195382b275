package usecase

import (
	"context"
	"errors"
	"heritage_gold/internal/domain/cart"
	"heritage_gold/internal/domain/entities"
	"heritage_gold/internal/domain/pricing"
	"heritage_gold/internal/logging"
	"heritage_gold/internal/usecase/interfaces"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
)

var ErrMissingSession = errors.New("missing session id")

// CartIdleTTL is how long an untouched session cart is kept.
const CartIdleTTL = 24 * time.Hour

// CartView is a read-only copy of a session cart.
type CartView struct {
	Lines []cart.Line
	Total int64
}

type ICartUseCase interface {
	Get(sessionID string) (CartView, error)
	Add(ctx context.Context, sessionID, itemID string) (CartView, error)
	Remove(sessionID, itemID string) (CartView, error)
	Clear(sessionID string) error
	Submit(ctx context.Context, sessionID string, customer CustomerDetails) (entities.OrderIntent, error)
}

type sessionCart struct {
	cart     *cart.Cart
	lastUsed time.Time
}

// CartUseCase keeps one cart per visitor session in memory.
type CartUseCase struct {
	items interfaces.IItemRepository
	rates IRateProvider
	leads ILeadUseCase
	now   func() time.Time

	mu       sync.Mutex
	sessions map[string]*sessionCart
}

var _ ICartUseCase = (*CartUseCase)(nil)

func NewCartUseCase(items interfaces.IItemRepository, rates IRateProvider, leads ILeadUseCase) *CartUseCase {
	return &CartUseCase{
		items:    items,
		rates:    rates,
		leads:    leads,
		now:      time.Now,
		sessions: make(map[string]*sessionCart),
	}
}

func (u *CartUseCase) Get(sessionID string) (CartView, error) {
	var view CartView
	err := u.withCart(sessionID, func(c *cart.Cart) error {
		view = viewOf(c)
		return nil
	})
	return view, err
}

// Add prices the item at the midpoint of its weight range and freezes that
// estimate on the cart line.
func (u *CartUseCase) Add(ctx context.Context, sessionID, itemID string) (CartView, error) {
	if strings.TrimSpace(sessionID) == "" {
		return CartView{}, ErrMissingSession
	}
	itemID = strings.TrimSpace(itemID)
	if itemID == "" {
		return CartView{}, ErrInvalidItemID
	}

	it, err := u.items.GetByID(ctx, itemID)
	if err != nil {
		logging.Error("[cart][usecase] item lookup failed", zap.String("item_id", itemID), zap.Error(err))
		return CartView{}, errors.Join(ErrCatalogueUnavailable, err)
	}
	if it.ItemID == "" {
		return CartView{}, ErrItemNotFound
	}
	estimate := pricing.EstimateRange(it, u.rates.Current(ctx, LastKnownGood)).Mid()

	var view CartView
	err = u.withCart(sessionID, func(c *cart.Cart) error {
		if err := c.Add(it, estimate); err != nil {
			return err
		}
		view = viewOf(c)
		return nil
	})
	return view, err
}

func (u *CartUseCase) Remove(sessionID, itemID string) (CartView, error) {
	var view CartView
	err := u.withCart(sessionID, func(c *cart.Cart) error {
		if err := c.Remove(strings.TrimSpace(itemID)); err != nil {
			return err
		}
		view = viewOf(c)
		return nil
	})
	return view, err
}

func (u *CartUseCase) Clear(sessionID string) error {
	return u.withCart(sessionID, func(c *cart.Cart) error {
		c.Clear()
		return nil
	})
}

// Submit turns the cart into an order intent. The cart is cleared only when
// the submission succeeds.
func (u *CartUseCase) Submit(ctx context.Context, sessionID string, customer CustomerDetails) (entities.OrderIntent, error) {
	var lines []entities.OrderIntentLine
	err := u.withCart(sessionID, func(c *cart.Cart) error {
		if c.Len() == 0 {
			return cart.ErrEmptyCart
		}
		lines = c.OrderLines()
		return nil
	})
	if err != nil {
		return entities.OrderIntent{}, err
	}

	o, err := u.leads.SubmitOrderIntent(ctx, OrderIntentInput{Customer: customer, Items: lines})
	if err != nil {
		return entities.OrderIntent{}, err
	}

	// lines added while the submission was in flight stay in the cart
	_ = u.withCart(sessionID, func(c *cart.Cart) error {
		for _, l := range lines {
			_ = c.Remove(l.ItemID)
		}
		return nil
	})
	logging.Info("[cart][usecase] cart submitted", zap.String("order_id", o.OrderID))
	return o, nil
}

// withCart runs fn on the session's cart under the store lock, creating the
// cart on first use.
func (u *CartUseCase) withCart(sessionID string, fn func(c *cart.Cart) error) error {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return ErrMissingSession
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	now := u.now()
	sc, ok := u.sessions[sessionID]
	if !ok {
		u.pruneLocked(now)
		sc = &sessionCart{cart: cart.New()}
		u.sessions[sessionID] = sc
	}
	sc.lastUsed = now
	return fn(sc.cart)
}

func (u *CartUseCase) pruneLocked(now time.Time) {
	for id, sc := range u.sessions {
		if now.Sub(sc.lastUsed) > CartIdleTTL {
			delete(u.sessions, id)
		}
	}
}

func viewOf(c *cart.Cart) CartView {
	return CartView{Lines: c.Lines(), Total: c.Total()}
}
