package payment

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	bookingRepo "voyago/database/repository/booking"
	seatmapRepo "voyago/database/repository/seatmap"
	"voyago/models"
	"voyago/services/booking"
	"voyago/services/tasks"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"go.uber.org/zap"
)

// Handler processes a payment request carrying the final computed total and
// the receipt breakdown. It never recomputes subtotal or tax.
type Handler interface {
	ProcessPayment(ctx context.Context, req models.PaymentRequest) (*models.Invoice, error)
}

// UnifiedPaymentHandler implements Handler for card (Stripe) and cash.
type UnifiedPaymentHandler struct {
	logger      *zap.Logger
	bookingRepo bookingRepo.BookingRepository
	seatMapRepo seatmapRepo.SeatMapRepository
	ticketQueue tasks.Enqueuer
}

// NewPaymentHandler constructs a UnifiedPaymentHandler.
func NewPaymentHandler(logger *zap.Logger, bookings bookingRepo.BookingRepository, seatMaps seatmapRepo.SeatMapRepository, queue tasks.Enqueuer) *UnifiedPaymentHandler {
	return &UnifiedPaymentHandler{
		logger:      logger,
		bookingRepo: bookings,
		seatMapRepo: seatMaps,
		ticketQueue: queue,
	}
}

// ProcessPayment validates the request against the booking record and routes
// it to the card or cash path.
func (h *UnifiedPaymentHandler) ProcessPayment(ctx context.Context, req models.PaymentRequest) (*models.Invoice, error) {
	if err := validateRequest(req); err != nil {
		return nil, fmt.Errorf("invalid payment request: %w", err)
	}

	bk, err := h.bookingRepo.GetByID(ctx, req.BookingID)
	if err != nil {
		return nil, fmt.Errorf("unknown booking: %w", err)
	}
	if bk.Status == models.BookingPaid {
		return nil, errors.New("booking is already paid")
	}
	// The collaborator receives only the final total; it must match what the
	// quote computed when the booking was created.
	if math.Abs(bk.Total-req.Amount) > 0.005 {
		return nil, fmt.Errorf("payment amount %.2f does not match booking total %.2f", req.Amount, bk.Total)
	}

	inv := &models.Invoice{
		InvoiceID: uuid.New().String(),
		BookingID: req.BookingID,
		UserID:    req.UserID,
		Amount:    req.Amount,
		Currency:  req.Currency,
		Method:    req.Method,
		Status:    "pending",
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	switch req.Method {
	case "card":
		return h.processCardPayment(ctx, req, bk, inv)
	case "cash":
		return h.processCashPayment(ctx, bk, inv)
	default:
		return nil, fmt.Errorf("unsupported payment method: %s", req.Method)
	}
}

// processCardPayment charges the card through a Stripe PaymentIntent.
// Quotes are priced in USD regardless of display currency.
func (h *UnifiedPaymentHandler) processCardPayment(ctx context.Context, req models.PaymentRequest, bk *models.Booking, inv *models.Invoice) (*models.Invoice, error) {
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(int64(math.Round(req.Amount * 100))),
		Currency: stripe.String(string(stripe.CurrencyUSD)),
		Metadata: map[string]string{
			"bookingID": req.BookingID,
			"invoiceID": inv.InvoiceID,
		},
	}
	params.Context = ctx

	pi, err := paymentintent.New(params)
	if err != nil {
		inv.Status = "failed"
		inv.UpdatedAt = time.Now()
		h.logger.Error("Card payment failed", zap.String("invoice", inv.InvoiceID), zap.Error(err))
		return inv, fmt.Errorf("card payment failed: %w", err)
	}

	inv.PaymentID = pi.ID
	inv.Status = "paid"
	inv.UpdatedAt = time.Now()

	if err := h.settleBooking(ctx, bk, inv); err != nil {
		h.logger.Error("booking settlement failed", zap.Error(err))
	}

	h.logger.Info("Card payment successful", zap.String("invoice", inv.InvoiceID))
	return inv, nil
}

// processCashPayment records a cash payment; the invoice stays pending until
// the desk confirms it, but the booking is settled so the ticket can be issued.
func (h *UnifiedPaymentHandler) processCashPayment(ctx context.Context, bk *models.Booking, inv *models.Invoice) (*models.Invoice, error) {
	inv.PaymentID = "cash_" + uuid.New().String()
	inv.UpdatedAt = time.Now()

	if err := h.settleBooking(ctx, bk, inv); err != nil {
		h.logger.Error("booking settlement failed", zap.Error(err))
	}

	h.logger.Info("Cash payment recorded", zap.String("invoice", inv.InvoiceID))
	return inv, nil
}

// settleBooking marks the booking paid, converts held seats to booked and
// enqueues the e-ticket task. These are independent follow-ups; a failure is
// logged and does not undo the payment.
func (h *UnifiedPaymentHandler) settleBooking(ctx context.Context, bk *models.Booking, inv *models.Invoice) error {
	if err := h.bookingRepo.UpdateStatus(ctx, bk.ID, models.BookingPaid, inv.PaymentID); err != nil {
		return fmt.Errorf("failed to mark booking paid: %w", err)
	}

	if len(bk.Seats) > 0 {
		sm, err := h.seatMapRepo.GetByProductRef(ctx, bk.ProductRef)
		if err == nil {
			booking.ConfirmSeats(sm, bk.Seats, bk.ID)
			if err := h.seatMapRepo.Save(ctx, sm); err != nil {
				h.logger.Warn("failed to persist booked seats", zap.String("bookingID", bk.ID), zap.Error(err))
			}
		} else {
			h.logger.Warn("seat map missing at settlement", zap.String("bookingID", bk.ID), zap.Error(err))
		}
	}

	if h.ticketQueue != nil {
		payload := models.TicketPayload{BookingID: bk.ID, InvoiceID: inv.InvoiceID, Method: inv.Method}
		if err := h.ticketQueue.EnqueueTicketIssue(payload); err != nil {
			h.logger.Warn("failed to enqueue e-ticket task", zap.String("bookingID", bk.ID), zap.Error(err))
		}
	}
	return nil
}

func validateRequest(req models.PaymentRequest) error {
	if req.Amount <= 0 {
		return errors.New("invalid payment amount")
	}
	if req.BookingID == "" {
		return errors.New("missing booking ID")
	}
	if req.Method != "card" && req.Method != "cash" {
		return errors.New("unsupported method")
	}
	return nil
}
