package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"dtech-os/internal/export"
	"dtech-os/internal/models"
	"dtech-os/internal/orders"
	"dtech-os/internal/printdoc"
	"dtech-os/internal/remote"
)

func humanizeValidationErrors(errs validator.ValidationErrors) string {
	var b strings.Builder
	for _, fe := range errs {
		if fe.Param() != "" {
			fmt.Fprintf(&b, "%s: %s=%s; ", fe.Namespace(), fe.Tag(), fe.Param())
		} else {
			fmt.Fprintf(&b, "%s: %s; ", fe.Namespace(), fe.Tag())
		}
	}
	s := b.String()
	if len(s) > 2 {
		s = s[:len(s)-2]
	}
	return s
}

// checkAuth routes remote failures: anything classified as an auth failure
// clears the stored token so the next call forces a re-login.
func (s *Service) checkAuth(err error) error {
	if err == nil {
		return nil
	}
	if remote.IsAuthError(err) {
		if cerr := s.api.ClearToken(); cerr != nil {
			logrus.WithError(cerr).Warn("clear token after auth failure")
		}
		return fmt.Errorf("%w: %s", ErrAuth, err.Error())
	}
	return err
}

func (s *Service) Login(ctx context.Context, username, password string) error {
	if err := s.api.Login(ctx, username, password); err != nil {
		if remote.IsAuthError(err) {
			return fmt.Errorf("%w: %s", ErrAuth, err.Error())
		}
		return err
	}
	return nil
}

func (s *Service) Logout() error {
	s.ReplaceAll(nil)
	return s.api.ClearToken()
}

func (s *Service) Authenticated() bool { return s.api.HasToken() }

// RefreshOrders fetches the whole remote collection, normalizes every
// record and swaps the cache wholesale.
func (s *Service) RefreshOrders(ctx context.Context) ([]models.Order, error) {
	raw, err := s.api.FetchOrders(ctx)
	if err != nil {
		return nil, s.checkAuth(err)
	}
	list := make([]models.Order, 0, len(raw))
	for _, item := range raw {
		list = append(list, orders.NormalizeOrder(item))
	}
	s.ReplaceAll(list)
	return s.All(), nil
}

func (s *Service) CachedOrders(search string) []models.Order {
	return s.Search(search)
}

func (s *Service) OrderByID(id string) (models.Order, error) {
	order, ok := s.Get(strings.TrimSpace(id))
	if !ok {
		return models.Order{}, ErrNotFound
	}
	return order, nil
}

// NextOSNumber generates the next daily OS id from the cached collection.
func (s *Service) NextOSNumber() string {
	return orders.NextOSNumber(s.All(), s.now())
}

// SaveForm serializes the edited form and upserts it remotely. The total is
// recomputed from the cost split when that split is in use, a missing id is
// assigned from today's sequence, and the cache picks up the saved order
// immediately.
func (s *Service) SaveForm(ctx context.Context, form models.Form) (orders.Payload, error) {
	if form.ValorPeca != "" || form.ValorMaoDeObra != "" {
		form = orders.RecomputeTotal(form)
	}
	if strings.TrimSpace(form.ID) == "" {
		form.ID = s.NextOSNumber()
	}

	payload := orders.BuildPayload(form)
	if err := s.v.Struct(payload); err != nil {
		if verrs, ok := err.(validator.ValidationErrors); ok {
			return orders.Payload{}, fmt.Errorf("%w: %s", ErrValidation, humanizeValidationErrors(verrs))
		}
		return orders.Payload{}, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	if err := s.api.SaveOrder(ctx, payload); err != nil {
		return orders.Payload{}, s.checkAuth(err)
	}

	s.Put(orders.BuildOrderForPrint(form))
	s.publishSaved(ctx, payload)
	return payload, nil
}

func (s *Service) publishSaved(ctx context.Context, payload orders.Payload) {
	if s.events == nil {
		return
	}
	body, err := json.Marshal(payload)
	if err != nil {
		logrus.WithError(err).Warn("encode saved-order event")
		return
	}
	if err := s.events.Publish(ctx, payload.ID, body); err != nil {
		logrus.WithError(err).WithField("id", payload.ID).Warn("publish saved-order event")
	}
}

func (s *Service) DeleteOrder(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrNotFound
	}
	if err := s.api.DeleteOrder(ctx, id); err != nil {
		return s.checkAuth(err)
	}
	s.Delete(id)
	return nil
}

// ChangeStatus applies the new status to the cached order immediately and
// rolls it back when the remote save fails.
func (s *Service) ChangeStatus(ctx context.Context, id, status string) error {
	order, ok := s.Get(strings.TrimSpace(id))
	if !ok {
		return ErrNotFound
	}
	previous := order.Status

	order.Status = status
	s.Put(order)

	form := orders.FormFromOrder(order)
	form.Status = status
	if err := s.api.SaveOrder(ctx, orders.BuildPayload(form)); err != nil {
		order.Status = previous
		s.Put(order)
		return s.checkAuth(err)
	}
	return nil
}

// ExportCSV flattens the currently visible collection.
func (s *Service) ExportCSV(search string) (string, string, error) {
	list := s.Search(search)
	if len(list) == 0 {
		return "", "", fmt.Errorf("%w: nenhum dado visivel para exportar", ErrNotFound)
	}
	return export.Filename(s.now()), export.CSV(list), nil
}

func (s *Service) PrintOrder(id, mode string) (string, error) {
	order, err := s.OrderByID(id)
	if err != nil {
		return "", err
	}
	return printdoc.BuildOSHTML(order, mode, s.shop), nil
}

// PrintForm renders an unsaved form, projecting it into order shape first
// so the document generator sees exactly what a saved order would show.
func (s *Service) PrintForm(form models.Form, mode string) string {
	if form.ValorPeca != "" || form.ValorMaoDeObra != "" {
		form = orders.RecomputeTotal(form)
	}
	return printdoc.BuildOSHTML(orders.BuildOrderForPrint(form), mode, s.shop)
}

func (s *Service) PrintEstimate(e printdoc.Estimate) string {
	return printdoc.BuildEstimateHTML(e, s.shop)
}

func (s *Service) PrintCloseOrder(c printdoc.CloseOrder) string {
	return printdoc.BuildCloseOrderHTML(c, s.shop)
}

func (s *Service) PrintWarranty(w printdoc.Warranty) string {
	return printdoc.BuildWarrantyHTML(w, s.shop)
}

func (s *Service) PrintPurchase(p printdoc.Purchase, mode string) string {
	return printdoc.BuildPurchaseHTML(p, mode, s.shop, s.now())
}
