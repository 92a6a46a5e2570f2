package service_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"dtech-os/internal/models"
	"dtech-os/internal/orders"
	"dtech-os/internal/printdoc"
	"dtech-os/internal/repository"
	"dtech-os/internal/service"
)

type apiStub struct {
	login       func(ctx context.Context, username, password string) error
	fetch       func(ctx context.Context) ([]orders.RawOrder, error)
	save        func(ctx context.Context, payload orders.Payload) error
	deleteOrder func(ctx context.Context, id string) error

	hasToken     bool
	tokenCleared bool
}

var _ service.RemoteAPI = (*apiStub)(nil)

func (a *apiStub) Login(ctx context.Context, username, password string) error {
	if a.login != nil {
		return a.login(ctx, username, password)
	}
	return nil
}

func (a *apiStub) FetchOrders(ctx context.Context) ([]orders.RawOrder, error) {
	if a.fetch != nil {
		return a.fetch(ctx)
	}
	return nil, nil
}

func (a *apiStub) SaveOrder(ctx context.Context, payload orders.Payload) error {
	if a.save != nil {
		return a.save(ctx, payload)
	}
	return nil
}

func (a *apiStub) DeleteOrder(ctx context.Context, id string) error {
	if a.deleteOrder != nil {
		return a.deleteOrder(ctx, id)
	}
	return nil
}

func (a *apiStub) HasToken() bool { return a.hasToken }

func (a *apiStub) ClearToken() error {
	a.hasToken = false
	a.tokenCleared = true
	return nil
}

type publisherStub struct {
	keys     []string
	payloads [][]byte
}

func (p *publisherStub) Publish(_ context.Context, key string, payload []byte) error {
	p.keys = append(p.keys, key)
	p.payloads = append(p.payloads, payload)
	return nil
}

var testShop = printdoc.Shop{Name: "D-Tech Utilities & Tools"}

func fixedClock() func() time.Time {
	return func() time.Time {
		return time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	}
}

func newService(api *apiStub, opts ...service.Option) *service.Service {
	opts = append(opts, service.WithClock(fixedClock()))
	return service.NewService(repository.NewRepository(), api, testShop, opts...)
}

func TestRefreshOrders_NormalizesAndCaches(t *testing.T) {
	api := &apiStub{
		fetch: func(ctx context.Context) ([]orders.RawOrder, error) {
			return []orders.RawOrder{
				{"ID": "20240315-001", "Obs": "{marca=Samsung, modelo=A10, notes=tela trincada}"},
				{"ID": "20240315-002", "Cliente": "Joao"},
			}, nil
		},
	}
	svc := newService(api)

	list, err := svc.RefreshOrders(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 2)

	order, err := svc.OrderByID("20240315-001")
	require.NoError(t, err)
	require.Equal(t, "Samsung A10", order.Aparelho)
	require.Equal(t, "tela trincada", order.Obs)
}

func TestRefreshOrders_AuthFailureClearsToken(t *testing.T) {
	api := &apiStub{
		hasToken: true,
		fetch: func(ctx context.Context) ([]orders.RawOrder, error) {
			return nil, errors.New("Token expirado")
		},
	}
	svc := newService(api)

	_, err := svc.RefreshOrders(context.Background())
	require.ErrorIs(t, err, service.ErrAuth)
	require.True(t, api.tokenCleared)
	require.False(t, svc.Authenticated())
}

func TestSaveForm_AssignsIDAndRecomputesTotal(t *testing.T) {
	var saved orders.Payload
	api := &apiStub{
		save: func(ctx context.Context, payload orders.Payload) error {
			saved = payload
			return nil
		},
	}
	svc := newService(api)

	form := orders.EmptyForm()
	form.Cliente = "Maria"
	form.ValorPeca = "100"
	form.ValorMaoDeObra = "50"

	payload, err := svc.SaveForm(context.Background(), form)
	require.NoError(t, err)
	require.Equal(t, "20240315-001", payload.ID)
	require.Equal(t, "R$ 150,00", payload.Valor)
	require.Equal(t, saved.ID, payload.ID)

	cached, err := svc.OrderByID("20240315-001")
	require.NoError(t, err)
	require.Equal(t, "Maria", cached.Cliente)
}

func TestSaveForm_SequenceAdvancesOverCachedOrders(t *testing.T) {
	api := &apiStub{}
	svc := newService(api)
	svc.Put(models.Order{ID: "20240315-007"})

	payload, err := svc.SaveForm(context.Background(), orders.EmptyForm())
	require.NoError(t, err)
	require.Equal(t, "20240315-008", payload.ID)
}

func TestSaveForm_InvalidIDRejected(t *testing.T) {
	api := &apiStub{}
	svc := newService(api)

	form := orders.EmptyForm()
	form.ID = "curto"

	_, err := svc.SaveForm(context.Background(), form)
	require.ErrorIs(t, err, service.ErrValidation)
}

func TestSaveForm_PublishesEvent(t *testing.T) {
	pub := &publisherStub{}
	svc := newService(&apiStub{}, service.WithPublisher(pub))

	payload, err := svc.SaveForm(context.Background(), orders.EmptyForm())
	require.NoError(t, err)

	require.Len(t, pub.keys, 1)
	require.Equal(t, payload.ID, pub.keys[0])

	var event map[string]any
	require.NoError(t, json.Unmarshal(pub.payloads[0], &event))
	require.Equal(t, payload.ID, event["id"])
}

func TestChangeStatus_OptimisticRollback(t *testing.T) {
	api := &apiStub{
		save: func(ctx context.Context, payload orders.Payload) error {
			return errors.New("falha de rede")
		},
	}
	svc := newService(api)
	svc.Put(models.Order{ID: "20240315-001", Status: models.StatusAberta})

	err := svc.ChangeStatus(context.Background(), "20240315-001", models.StatusFinalizada)
	require.Error(t, err)

	order, gerr := svc.OrderByID("20240315-001")
	require.NoError(t, gerr)
	require.Equal(t, models.StatusAberta, order.Status)
}

func TestChangeStatus_Applies(t *testing.T) {
	svc := newService(&apiStub{})
	svc.Put(models.Order{ID: "20240315-001", Status: models.StatusAberta})

	require.NoError(t, svc.ChangeStatus(context.Background(), "20240315-001", models.StatusAndamento))

	order, err := svc.OrderByID("20240315-001")
	require.NoError(t, err)
	require.Equal(t, models.StatusAndamento, order.Status)
}

func TestChangeStatus_UnknownOrder(t *testing.T) {
	svc := newService(&apiStub{})
	err := svc.ChangeStatus(context.Background(), "nope", models.StatusFinalizada)
	require.ErrorIs(t, err, service.ErrNotFound)
}

func TestDeleteOrder_Evicts(t *testing.T) {
	svc := newService(&apiStub{})
	svc.Put(models.Order{ID: "20240315-001"})

	require.NoError(t, svc.DeleteOrder(context.Background(), "20240315-001"))

	_, err := svc.OrderByID("20240315-001")
	require.ErrorIs(t, err, service.ErrNotFound)
}

func TestExportCSV(t *testing.T) {
	svc := newService(&apiStub{})

	_, _, err := svc.ExportCSV("")
	require.ErrorIs(t, err, service.ErrNotFound)

	svc.Put(models.Order{ID: "20240315-001", Cliente: "Maria"})
	filename, content, err := svc.ExportCSV("")
	require.NoError(t, err)
	require.Contains(t, filename, "ordens-servico-")
	require.Contains(t, content, "Maria")
}

func TestLogout_ClearsCacheAndToken(t *testing.T) {
	api := &apiStub{hasToken: true}
	svc := newService(api)
	svc.Put(models.Order{ID: "20240315-001"})

	require.NoError(t, svc.Logout())
	require.False(t, svc.Authenticated())
	require.Empty(t, svc.CachedOrders(""))
}

func TestPrintOrder(t *testing.T) {
	svc := newService(&apiStub{})
	svc.Put(models.Order{ID: "20240315-001", Cliente: "Maria"})

	html, err := svc.PrintOrder("20240315-001", printdoc.ModeA4)
	require.NoError(t, err)
	require.Contains(t, html, "Maria")
	require.Contains(t, html, testShop.Name)

	_, err = svc.PrintOrder("nada", printdoc.ModeA4)
	require.ErrorIs(t, err, service.ErrNotFound)
}

func TestPrintForm_RecomputesTotal(t *testing.T) {
	svc := newService(&apiStub{})

	form := orders.EmptyForm()
	form.ValorPeca = "100"
	form.ValorMaoDeObra = "25"

	html := svc.PrintForm(form, printdoc.ModeA4)
	require.Contains(t, html, "R$ 125,00")
}
