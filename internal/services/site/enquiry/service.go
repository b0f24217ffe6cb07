package enquiry

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/Godwin-Baiju/aissol-test/internal/services/site/catalog"
	apperrors "github.com/Godwin-Baiju/aissol-test/internal/services/site/platform/errors"
	"github.com/Godwin-Baiju/aissol-test/internal/services/site/storage"
	"go.uber.org/zap"
)

const maxItemQuantity = 100000

var errStoreUnavailable = apperrors.E(apperrors.KindUnavailable, "enquiry list is unavailable")

// ProductLookup resolves catalog products for enquiry lines.
type ProductLookup interface {
	Get(ctx context.Context, productID string) (catalog.Product, error)
	FindByTitle(ctx context.Context, title string) (catalog.Product, error)
}

// Service loads, mutates and persists visitor enquiry lists.
//
// Every mutation writes the whole list back; concurrent writers for the same
// visitor resolve last write wins.
type Service struct {
	store    storage.EnquiryStore
	products ProductLookup
	logger   *zap.Logger
	now      func() time.Time
	mu       sync.Mutex
}

// NewService builds an enquiry service.
func NewService(store storage.EnquiryStore, products ProductLookup, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		store:    store,
		products: products,
		logger:   logger.Named("enquiry"),
		now:      time.Now,
	}
}

type storedList struct {
	Items []Item `json:"items"`
}

// Load returns the visitor's list. Unknown visitors get an empty list.
func (s *Service) Load(ctx context.Context, visitorID string) (List, error) {
	if err := ctx.Err(); err != nil {
		return List{}, err
	}
	if s == nil || s.store == nil {
		return List{}, errStoreUnavailable
	}
	visitorID = strings.TrimSpace(visitorID)
	if visitorID == "" {
		return List{}, apperrors.E(apperrors.KindInvalidInput, "visitor id is required")
	}
	record, ok, err := s.store.GetEnquiryList(ctx, visitorID)
	if err != nil {
		return List{}, fmt.Errorf("load enquiry list: %w", err)
	}
	if !ok {
		return List{}, nil
	}
	var stored storedList
	if err := json.Unmarshal(record.PayloadBytes, &stored); err != nil {
		s.logger.Warn("discarding corrupt enquiry list", zap.String("visitor_id", visitorID), zap.Error(err))
		return List{}, nil
	}
	return NewList(stored.Items), nil
}

// AddItem adds a fully described line.
func (s *Service) AddItem(ctx context.Context, visitorID string, item Item) (List, error) {
	item.ID = strings.TrimSpace(item.ID)
	item.Title = strings.TrimSpace(item.Title)
	fields := map[string]string{}
	if item.ID == "" {
		fields["id"] = "is required"
	}
	if item.Title == "" {
		fields["title"] = "is required"
	}
	if item.Quantity > maxItemQuantity {
		fields["quantity"] = fmt.Sprintf("must be at most %d", maxItemQuantity)
	}
	if item.Price != nil && *item.Price < 0 {
		fields["price"] = "must not be negative"
	}
	if len(fields) > 0 {
		return List{}, apperrors.Invalid("invalid enquiry item", fields)
	}
	return s.mutate(ctx, visitorID, func(l *List) error {
		if l.Quantity(item.ID)+max(item.Quantity, 1) > maxItemQuantity {
			return apperrors.Invalid("invalid enquiry item", map[string]string{
				"quantity": fmt.Sprintf("merged quantity must be at most %d", maxItemQuantity),
			})
		}
		l.Add(item)
		return nil
	})
}

// AddProduct adds a catalog product, resolving title, image and product id.
func (s *Service) AddProduct(ctx context.Context, visitorID, productID string, quantity int) (List, error) {
	if s == nil || s.products == nil {
		return List{}, apperrors.E(apperrors.KindUnavailable, "product catalog is unavailable")
	}
	product, err := s.products.Get(ctx, productID)
	if err != nil {
		return List{}, err
	}
	return s.AddItem(ctx, visitorID, itemFromProduct(product, quantity))
}

// AddByTitle handles the add-to-enquiry deep link: the product is found by its
// exact title and an optional product id overrides the catalog one.
func (s *Service) AddByTitle(ctx context.Context, visitorID, title, productID string) (List, error) {
	if s == nil || s.products == nil {
		return List{}, apperrors.E(apperrors.KindUnavailable, "product catalog is unavailable")
	}
	title = strings.TrimSpace(title)
	if title == "" {
		return List{}, apperrors.Invalid("invalid enquiry item", map[string]string{"title": "is required"})
	}
	product, err := s.products.FindByTitle(ctx, title)
	if err != nil {
		return List{}, err
	}
	item := itemFromProduct(product, 1)
	if productID = strings.TrimSpace(productID); productID != "" {
		item.ProductID = productID
	}
	return s.AddItem(ctx, visitorID, item)
}

// UpdateQuantity sets one line's quantity; zero or less removes it.
func (s *Service) UpdateQuantity(ctx context.Context, visitorID, itemID string, quantity int) (List, error) {
	if quantity > maxItemQuantity {
		return List{}, apperrors.Invalid("invalid enquiry item", map[string]string{
			"quantity": fmt.Sprintf("must be at most %d", maxItemQuantity),
		})
	}
	return s.mutate(ctx, visitorID, func(l *List) error {
		l.UpdateQuantity(itemID, quantity)
		return nil
	})
}

// Remove drops one line.
func (s *Service) Remove(ctx context.Context, visitorID, itemID string) (List, error) {
	return s.mutate(ctx, visitorID, func(l *List) error {
		l.Remove(itemID)
		return nil
	})
}

// Clear empties the visitor's list.
func (s *Service) Clear(ctx context.Context, visitorID string) (List, error) {
	return s.mutate(ctx, visitorID, func(l *List) error {
		l.Clear()
		return nil
	})
}

func (s *Service) mutate(ctx context.Context, visitorID string, change func(*List) error) (List, error) {
	if s == nil || s.store == nil {
		return List{}, errStoreUnavailable
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	list, err := s.Load(ctx, visitorID)
	if err != nil {
		return List{}, err
	}
	if err := change(&list); err != nil {
		return List{}, err
	}
	if err := s.save(ctx, strings.TrimSpace(visitorID), list); err != nil {
		return List{}, err
	}
	return list, nil
}

func (s *Service) save(ctx context.Context, visitorID string, list List) error {
	payload, err := json.Marshal(storedList{Items: list.Items()})
	if err != nil {
		return fmt.Errorf("encode enquiry list: %w", err)
	}
	if err := s.store.PutEnquiryList(ctx, storage.EnquiryRecord{
		VisitorID:    visitorID,
		PayloadBytes: payload,
		UpdatedAt:    s.now().UTC(),
	}); err != nil {
		return fmt.Errorf("save enquiry list: %w", err)
	}
	return nil
}

func itemFromProduct(product catalog.Product, quantity int) Item {
	return Item{
		ID:        product.EntryID,
		Title:     product.Title,
		Quantity:  quantity,
		Image:     product.PrimaryImage(),
		ProductID: product.ID,
	}
}
