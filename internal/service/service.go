package service

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"

	"dtech-os/internal/models"
	"dtech-os/internal/orders"
	"dtech-os/internal/printdoc"
	"dtech-os/internal/repository"
)

// RemoteAPI is the persistence collaborator as the service consumes it.
type RemoteAPI interface {
	Login(ctx context.Context, username, password string) error
	FetchOrders(ctx context.Context) ([]orders.RawOrder, error)
	SaveOrder(ctx context.Context, payload orders.Payload) error
	DeleteOrder(ctx context.Context, id string) error
	HasToken() bool
	ClearToken() error
}

// Publisher emits saved-order events for external tooling. Optional.
type Publisher interface {
	Publish(ctx context.Context, key string, payload []byte) error
}

// Orders is the full operation surface of the gateway.
type Orders interface {
	Login(ctx context.Context, username, password string) error
	Logout() error
	Authenticated() bool

	RefreshOrders(ctx context.Context) ([]models.Order, error)
	CachedOrders(search string) []models.Order
	OrderByID(id string) (models.Order, error)
	NextOSNumber() string

	SaveForm(ctx context.Context, form models.Form) (orders.Payload, error)
	DeleteOrder(ctx context.Context, id string) error
	ChangeStatus(ctx context.Context, id, status string) error

	ExportCSV(search string) (filename, content string, err error)

	PrintOrder(id, mode string) (string, error)
	PrintForm(form models.Form, mode string) string
	PrintEstimate(e printdoc.Estimate) string
	PrintCloseOrder(c printdoc.CloseOrder) string
	PrintWarranty(w printdoc.Warranty) string
	PrintPurchase(p printdoc.Purchase, mode string) string
}

var _ Orders = (*Service)(nil)

type Service struct {
	repository.OrderCache
	api    RemoteAPI
	events Publisher
	shop   printdoc.Shop
	v      *validator.Validate
	now    func() time.Time
}

type Option func(*Service)

// WithPublisher attaches the saved-order event publisher.
func WithPublisher(p Publisher) Option { return func(s *Service) { s.events = p } }

// WithClock overrides the clock, used by tests.
func WithClock(now func() time.Time) Option { return func(s *Service) { s.now = now } }

func NewService(repo *repository.Repository, api RemoteAPI, shop printdoc.Shop, opts ...Option) *Service {
	s := &Service{
		OrderCache: repo.OrderCache,
		api:        api,
		shop:       shop,
		v:          validator.New(),
		now:        time.Now,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}
