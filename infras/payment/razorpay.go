package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"hotel/config"
	"hotel/infras/otel"
	"hotel/shared/constant"
	"hotel/shared/timezone"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"

	"github.com/rs/zerolog/log"
)

const (
	pathOrders   = "/orders"
	pathPayments = "/payments/"
)

type razorpayGateway struct {
	cfg    *config.Config
	otel   otel.Otel
	client *http.Client
}

type createOrderRequest struct {
	Amount   int64             `json:"amount"`
	Currency string            `json:"currency"`
	Receipt  string            `json:"receipt"`
	Notes    map[string]string `json:"notes,omitempty"`
}

type errorResponse struct {
	Error struct {
		Code        string `json:"code"`
		Description string `json:"description"`
	} `json:"error"`
}

func (g *razorpayGateway) CreateOrder(ctx context.Context, amount int64, notes map[string]string) (res Order, err error) {
	ctx, scope := g.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".payment.CreateOrder")
	defer scope.End()
	defer scope.TraceIfError(err)

	body, err := json.Marshal(createOrderRequest{
		Amount:   amount * MinorUnits,
		Currency: g.cfg.Payment.Currency,
		Receipt:  receipt(timezone.Now()),
		Notes:    notes,
	})
	if err != nil {
		return res, fmt.Errorf("failed to encode order request: %w", err)
	}

	err = g.do(ctx, http.MethodPost, pathOrders, bytes.NewReader(body), &res)
	if err != nil {
		log.Error().Err(err).Int64("amount", amount).Msg("failed to create payment order")

		return res, err
	}

	scope.SetAttribute("payment.order_id", res.ID)

	return res, nil
}

func (g *razorpayGateway) FetchOrder(ctx context.Context, orderID string) (res Order, err error) {
	ctx, scope := g.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".payment.FetchOrder")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = g.do(ctx, http.MethodGet, pathOrders+"/"+url.PathEscape(orderID), nil, &res)
	if err != nil {
		log.Error().Err(err).Str("order_id", orderID).Msg("failed to fetch payment order")

		return res, err
	}

	return res, nil
}

func (g *razorpayGateway) FetchPayment(ctx context.Context, paymentID string) (res Payment, err error) {
	ctx, scope := g.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".payment.FetchPayment")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = g.do(ctx, http.MethodGet, pathPayments+url.PathEscape(paymentID), nil, &res)
	if err != nil {
		log.Error().Err(err).Str("payment_id", paymentID).Msg("failed to fetch payment")

		return res, err
	}

	return res, nil
}

func (g *razorpayGateway) do(ctx context.Context, method, path string, body io.Reader, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, strings.TrimSuffix(g.cfg.Payment.BaseURL, "/")+path, body)
	if err != nil {
		return fmt.Errorf("failed to build gateway request: %w", err)
	}

	req.SetBasicAuth(g.cfg.Payment.KeyID, g.cfg.Payment.KeySecret)
	req.Header.Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)

	resp, err := g.client.Do(req)
	if err != nil {
		if isTimeout(err) {
			return fmt.Errorf("%w: %w", ErrTimeout, err)
		}

		return fmt.Errorf("%w: %w", ErrGateway, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		var gwErr errorResponse

		_ = json.NewDecoder(resp.Body).Decode(&gwErr)

		return fmt.Errorf("%w: status %d: %s", ErrGateway, resp.StatusCode, gwErr.Error.Description)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: failed to decode response: %w", ErrGateway, err)
	}

	return nil
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	var netErr net.Error

	return errors.As(err, &netErr) && netErr.Timeout()
}
