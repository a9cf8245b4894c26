package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"clubpay/internal/domain/entities"
	"clubpay/internal/usecase/interfaces"
	mock_interfaces "clubpay/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func convergeConfig() entities.ClubPaymentConfig {
	return entities.ClubPaymentConfig{
		ClubID:    "club-1",
		Processor: entities.ProcessorConverge,
		Credentials: entities.MerchantCredentials{
			MerchantID: "0012345",
			UserID:     "webuser",
			Secret:     "pin-secret",
		},
		VendorBaseURL:  "https://api.convergepay.com",
		AllowedOrigins: []string{"https://api.convergepay.com"},
	}
}

func TestSessionUseCase_IssueSession_Validations(t *testing.T) {
	t.Run("empty club id", func(t *testing.T) {
		uc := NewSessionUseCase(nil, nil, nil, nil, 0)
		_, err := uc.IssueSession(context.Background(), IssueSessionInput{ClubID: "  ", Amount: 49.99})
		if !errors.Is(err, ErrInvalidClubID) {
			t.Fatalf("expected ErrInvalidClubID, got %v", err)
		}
	})

	t.Run("non-positive amount", func(t *testing.T) {
		uc := NewSessionUseCase(nil, nil, nil, nil, 0)
		_, err := uc.IssueSession(context.Background(), IssueSessionInput{ClubID: "club-1", Amount: 0})
		if !errors.Is(err, ErrInvalidAmount) {
			t.Fatalf("expected ErrInvalidAmount, got %v", err)
		}
	})

	t.Run("sub-cent amount", func(t *testing.T) {
		uc := NewSessionUseCase(nil, nil, nil, nil, 0)
		_, err := uc.IssueSession(context.Background(), IssueSessionInput{ClubID: "club-1", Amount: 49.999})
		if !errors.Is(err, ErrInvalidAmount) {
			t.Fatalf("expected ErrInvalidAmount, got %v", err)
		}
	})

	t.Run("malformed currency", func(t *testing.T) {
		uc := NewSessionUseCase(nil, nil, nil, nil, 0)
		_, err := uc.IssueSession(context.Background(), IssueSessionInput{ClubID: "club-1", Amount: 49.99, Currency: "DOLLARS"})
		if !errors.Is(err, ErrInvalidCurrency) {
			t.Fatalf("expected ErrInvalidCurrency, got %v", err)
		}
	})

	t.Run("club config not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		configRepo := mock_interfaces.NewMockIClubConfigRepository(ctrl)
		configRepo.EXPECT().GetByClubID(gomock.Any(), "club-x").Return(entities.ClubPaymentConfig{}, nil)

		uc := NewSessionUseCase(configRepo, nil, nil, nil, 0)
		_, err := uc.IssueSession(context.Background(), IssueSessionInput{ClubID: "club-x", Amount: 49.99})
		if !errors.Is(err, ErrClubConfigNotFound) {
			t.Fatalf("expected ErrClubConfigNotFound, got %v", err)
		}
	})

	t.Run("incomplete credentials", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		cfg := convergeConfig()
		cfg.Credentials.Secret = ""
		configRepo := mock_interfaces.NewMockIClubConfigRepository(ctrl)
		configRepo.EXPECT().GetByClubID(gomock.Any(), "club-1").Return(cfg, nil)

		uc := NewSessionUseCase(configRepo, nil, nil, nil, 0)
		_, err := uc.IssueSession(context.Background(), IssueSessionInput{ClubID: "club-1", Amount: 49.99})
		if !errors.Is(err, ErrIncompleteCredentials) {
			t.Fatalf("expected ErrIncompleteCredentials, got %v", err)
		}
	})

	t.Run("no issuer wired for processor", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		configRepo := mock_interfaces.NewMockIClubConfigRepository(ctrl)
		configRepo.EXPECT().GetByClubID(gomock.Any(), "club-1").Return(convergeConfig(), nil)

		uc := NewSessionUseCase(configRepo, nil, map[entities.Processor]interfaces.ITokenIssuer{}, nil, 0)
		_, err := uc.IssueSession(context.Background(), IssueSessionInput{ClubID: "club-1", Amount: 49.99})
		if !errors.Is(err, ErrUnsupportedProcessor) {
			t.Fatalf("expected ErrUnsupportedProcessor, got %v", err)
		}
	})

	t.Run("issuance failure wraps sentinel", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		configRepo := mock_interfaces.NewMockIClubConfigRepository(ctrl)
		configRepo.EXPECT().GetByClubID(gomock.Any(), "club-1").Return(convergeConfig(), nil)
		issuer := mock_interfaces.NewMockITokenIssuer(ctrl)
		issuer.EXPECT().IssueToken(gomock.Any(), gomock.Any(), gomock.Any()).Return(entities.TokenGrant{}, errors.New("vendor 500"))

		uc := NewSessionUseCase(configRepo, nil, map[entities.Processor]interfaces.ITokenIssuer{entities.ProcessorConverge: issuer}, nil, 0)
		_, err := uc.IssueSession(context.Background(), IssueSessionInput{ClubID: "club-1", Amount: 49.99})
		if !errors.Is(err, ErrSessionIssuance) {
			t.Fatalf("expected ErrSessionIssuance, got %v", err)
		}
	})
}

func TestSessionUseCase_IssueSession_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	configRepo := mock_interfaces.NewMockIClubConfigRepository(ctrl)
	configRepo.EXPECT().GetByClubID(gomock.Any(), "club-1").Return(convergeConfig(), nil)

	catalogRepo := mock_interfaces.NewMockICatalogRepository(ctrl)
	catalogRepo.EXPECT().GetOffering(gomock.Any(), "club-1", "pt-10pack").Return(activeOffering(), nil)

	issuer := mock_interfaces.NewMockITokenIssuer(ctrl)
	issuer.EXPECT().
		IssueToken(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, cfg entities.ClubPaymentConfig, req entities.TokenRequest) (entities.TokenGrant, error) {
			if req.AmountMinorUnits != 4999 {
				t.Errorf("issuer received minor units %d, want 4999", req.AmountMinorUnits)
			}
			if req.Currency != "USD" {
				t.Errorf("issuer received currency %q, want USD default", req.Currency)
			}
			if req.TransactionType != "ccsale" {
				t.Errorf("issuer received transaction type %q", req.TransactionType)
			}
			return entities.TokenGrant{AuthToken: "tok-abc-1234", ExpiresAt: time.Now().UTC().Add(10 * time.Minute)}, nil
		})

	var saved *entities.PaymentSession
	store := mock_interfaces.NewMockISessionStore(ctrl)
	store.EXPECT().Put(gomock.Any()).Do(func(s *entities.PaymentSession) { saved = s })

	uc := NewSessionUseCase(configRepo, catalogRepo, map[entities.Processor]interfaces.ITokenIssuer{entities.ProcessorConverge: issuer}, store, 0)
	session, err := uc.IssueSession(context.Background(), IssueSessionInput{
		ClubID: "club-1",
		Amount: 49.99,
		SKU:    "pt-10pack",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if session.SessionID == "" {
		t.Errorf("expected a generated session id")
	}
	if session.Processor != entities.ProcessorConverge {
		t.Errorf("processor = %s", session.Processor)
	}
	if session.AmountMinorUnits != 4999 {
		t.Errorf("amount minor units = %d", session.AmountMinorUnits)
	}
	if session.AuthToken != "tok-abc-1234" {
		t.Errorf("auth token not carried on session")
	}
	if session.SKU != "pt-10pack" {
		t.Errorf("sku = %q", session.SKU)
	}
	if session.Status() != entities.SessionStatusTokenIssued {
		t.Errorf("status = %s", session.Status())
	}
	if saved != session {
		t.Errorf("session was not stored")
	}
}

func TestSessionUseCase_IssueSession_CatalogPricing(t *testing.T) {
	t.Run("catalog prices the session over the requested amount", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		configRepo := mock_interfaces.NewMockIClubConfigRepository(ctrl)
		configRepo.EXPECT().GetByClubID(gomock.Any(), "club-1").Return(convergeConfig(), nil)

		catalogRepo := mock_interfaces.NewMockICatalogRepository(ctrl)
		catalogRepo.EXPECT().GetOffering(gomock.Any(), "club-1", "pt-10pack").Return(activeOffering(), nil)

		issuer := mock_interfaces.NewMockITokenIssuer(ctrl)
		issuer.EXPECT().
			IssueToken(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ entities.ClubPaymentConfig, req entities.TokenRequest) (entities.TokenGrant, error) {
				if req.AmountMinorUnits != 4999 {
					t.Errorf("issuer received minor units %d, want the catalog price 4999", req.AmountMinorUnits)
				}
				return entities.TokenGrant{AuthToken: "tok-1"}, nil
			})

		store := mock_interfaces.NewMockISessionStore(ctrl)
		store.EXPECT().Put(gomock.Any())

		uc := NewSessionUseCase(configRepo, catalogRepo, map[entities.Processor]interfaces.ITokenIssuer{entities.ProcessorConverge: issuer}, store, 0)
		session, err := uc.IssueSession(context.Background(), IssueSessionInput{
			ClubID: "club-1",
			Amount: 0.01,
			SKU:    "pt-10pack",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if session.AmountMinorUnits != 4999 {
			t.Fatalf("session amount %d, want the catalog price 4999", session.AmountMinorUnits)
		}
	})

	t.Run("unknown sku is rejected before any token is minted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		catalogRepo := mock_interfaces.NewMockICatalogRepository(ctrl)
		catalogRepo.EXPECT().GetOffering(gomock.Any(), "club-1", "gone").Return(entities.PackageOffering{}, nil)

		uc := NewSessionUseCase(nil, catalogRepo, nil, nil, 0)
		_, err := uc.IssueSession(context.Background(), IssueSessionInput{ClubID: "club-1", Amount: 49.99, SKU: "gone"})
		if !errors.Is(err, ErrOfferingNotFound) {
			t.Fatalf("expected ErrOfferingNotFound, got %v", err)
		}
	})

	t.Run("inactive sku is rejected before any token is minted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		offering := activeOffering()
		offering.Active = false
		catalogRepo := mock_interfaces.NewMockICatalogRepository(ctrl)
		catalogRepo.EXPECT().GetOffering(gomock.Any(), "club-1", "pt-10pack").Return(offering, nil)

		uc := NewSessionUseCase(nil, catalogRepo, nil, nil, 0)
		_, err := uc.IssueSession(context.Background(), IssueSessionInput{ClubID: "club-1", Amount: 49.99, SKU: "pt-10pack"})
		if !errors.Is(err, ErrOfferingInactive) {
			t.Fatalf("expected ErrOfferingInactive, got %v", err)
		}
	})
}

func newOverlaySession(t *testing.T) *entities.PaymentSession {
	t.Helper()
	now := time.Now().UTC()
	s := entities.NewPaymentSession("sess-1", entities.ProcessorConverge, "club-1", 4999, "USD", now, now.Add(15*time.Minute))
	s.AllowedOrigins = []string{"https://api.convergepay.com"}
	return s
}

func eventStoreFor(ctrl *gomock.Controller, session *entities.PaymentSession) *mock_interfaces.MockISessionStore {
	store := mock_interfaces.NewMockISessionStore(ctrl)
	store.EXPECT().Get(session.SessionID).Return(session, true).AnyTimes()
	return store
}

func TestSessionUseCase_HandleSessionEvent_Overlay(t *testing.T) {
	const goodOrigin = "https://api.convergepay.com"

	t.Run("unknown session", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockISessionStore(ctrl)
		store.EXPECT().Get("nope").Return(nil, false)

		uc := NewSessionUseCase(nil, nil, nil, store, 0)
		_, err := uc.HandleSessionEvent(context.Background(), "nope", goodOrigin, json.RawMessage(`{}`))
		if !errors.Is(err, ErrSessionNotFound) {
			t.Fatalf("expected ErrSessionNotFound, got %v", err)
		}
	})

	t.Run("expired session", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		session := newOverlaySession(t)
		session.ExpiresAt = time.Now().UTC().Add(-time.Minute)
		uc := NewSessionUseCase(nil, nil, nil, eventStoreFor(ctrl, session), 0)

		_, err := uc.HandleSessionEvent(context.Background(), session.SessionID, goodOrigin, json.RawMessage(`{}`))
		if !errors.Is(err, ErrSessionExpired) {
			t.Fatalf("expected ErrSessionExpired, got %v", err)
		}
	})

	t.Run("foreign origin never transitions the session", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		session := newOverlaySession(t)
		uc := NewSessionUseCase(nil, nil, nil, eventStoreFor(ctrl, session), 0)

		payload := json.RawMessage(`{"source": "converge-lightbox", "response": {"ssl_result": "0", "ssl_result_message": "APPROVAL"}}`)
		outcome, err := uc.HandleSessionEvent(context.Background(), session.SessionID, "https://evil.example.com", payload)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if outcome.Accepted {
			t.Fatalf("expected event from foreign origin to be dropped")
		}
		if session.Status() != entities.SessionStatusTokenIssued {
			t.Fatalf("session transitioned on foreign-origin event: %s", session.Status())
		}
	})

	t.Run("event without overlay marker is dropped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		session := newOverlaySession(t)
		uc := NewSessionUseCase(nil, nil, nil, eventStoreFor(ctrl, session), 0)

		payload := json.RawMessage(`{"response": {"ssl_result": "0", "ssl_result_message": "APPROVAL"}}`)
		outcome, err := uc.HandleSessionEvent(context.Background(), session.SessionID, goodOrigin, payload)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if outcome.Accepted || session.Status().Terminal() {
			t.Fatalf("unmarked event transitioned the session")
		}
	})

	t.Run("ready ping is not an outcome", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		session := newOverlaySession(t)
		uc := NewSessionUseCase(nil, nil, nil, eventStoreFor(ctrl, session), 0)

		outcome, err := uc.HandleSessionEvent(context.Background(), session.SessionID, goodOrigin, json.RawMessage(`{"source": "converge-lightbox", "ready": true}`))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if outcome.Accepted {
			t.Fatalf("ready ping must not be accepted as an outcome")
		}
		if session.Status() != entities.SessionStatusTokenIssued {
			t.Fatalf("ready ping transitioned the session: %s", session.Status())
		}
	})

	t.Run("opened moves to awaiting_result", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		session := newOverlaySession(t)
		uc := NewSessionUseCase(nil, nil, nil, eventStoreFor(ctrl, session), 0)

		outcome, err := uc.HandleSessionEvent(context.Background(), session.SessionID, goodOrigin, json.RawMessage(`{"source": "converge-lightbox", "opened": true}`))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !outcome.Accepted || outcome.Status != entities.SessionStatusAwaitingResult {
			t.Fatalf("expected awaiting_result, got accepted=%t status=%s", outcome.Accepted, outcome.Status)
		}
	})

	t.Run("response event claims the terminal result once", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		session := newOverlaySession(t)
		session.MarkAwaitingResult()
		uc := NewSessionUseCase(nil, nil, nil, eventStoreFor(ctrl, session), 0)

		payload := json.RawMessage(`{"source": "converge-lightbox", "response": {"ssl_result": "0", "ssl_result_message": "APPROVAL", "ssl_txn_id": "txn-1"}}`)
		outcome, err := uc.HandleSessionEvent(context.Background(), session.SessionID, goodOrigin, payload)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !outcome.Accepted || outcome.Status != entities.SessionStatusApproved {
			t.Fatalf("expected approved, got accepted=%t status=%s", outcome.Accepted, outcome.Status)
		}

		// A second result for the same session must be a no-op.
		dup := json.RawMessage(`{"source": "converge-lightbox", "response": {"ssl_result": "1", "ssl_result_message": "DECLINED"}}`)
		outcome, err = uc.HandleSessionEvent(context.Background(), session.SessionID, goodOrigin, dup)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if outcome.Accepted {
			t.Fatalf("duplicate result was accepted")
		}
		if session.Status() != entities.SessionStatusApproved {
			t.Fatalf("duplicate result overwrote the first: %s", session.Status())
		}
	})

	t.Run("cancelled event", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		session := newOverlaySession(t)
		session.MarkAwaitingResult()
		uc := NewSessionUseCase(nil, nil, nil, eventStoreFor(ctrl, session), 0)

		outcome, err := uc.HandleSessionEvent(context.Background(), session.SessionID, goodOrigin, json.RawMessage(`{"source": "converge-lightbox", "cancelled": true}`))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !outcome.Accepted || outcome.Status != entities.SessionStatusCancelled {
			t.Fatalf("expected cancelled, got accepted=%t status=%s", outcome.Accepted, outcome.Status)
		}
	})

	t.Run("errored event carries the reason", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		session := newOverlaySession(t)
		uc := NewSessionUseCase(nil, nil, nil, eventStoreFor(ctrl, session), 0)

		outcome, err := uc.HandleSessionEvent(context.Background(), session.SessionID, goodOrigin, json.RawMessage(`{"source": "converge-lightbox", "errored": true, "error": "session token expired"}`))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if outcome.Status != entities.SessionStatusErrored {
			t.Fatalf("expected errored, got %s", outcome.Status)
		}
		if session.Result().DeclineReason != "session token expired" {
			t.Errorf("decline reason = %q", session.Result().DeclineReason)
		}
	})
}

func TestSessionUseCase_OverlayTimeout(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	session := newOverlaySession(t)
	uc := NewSessionUseCase(nil, nil, nil, eventStoreFor(ctrl, session), 20*time.Millisecond)

	_, err := uc.HandleSessionEvent(context.Background(), session.SessionID, "https://api.convergepay.com", json.RawMessage(`{"source": "converge-lightbox", "opened": true}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if session.Status() == entities.SessionStatusTimedOut {
			break
		}
		time.Sleep(5 * time.Millisecond)
	}
	if session.Status() != entities.SessionStatusTimedOut {
		t.Fatalf("expected timed_out, got %s", session.Status())
	}
	if session.Result().Status != entities.ResultStatusTimedOut {
		t.Fatalf("expected timed_out result, got %s", session.Result().Status)
	}

	// A late overlay result loses the race and must not flip the outcome.
	payload := json.RawMessage(`{"source": "converge-lightbox", "response": {"ssl_result": "0", "ssl_result_message": "APPROVAL"}}`)
	outcome, err := uc.HandleSessionEvent(context.Background(), session.SessionID, "https://api.convergepay.com", payload)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if outcome.Accepted || session.Status() != entities.SessionStatusTimedOut {
		t.Fatalf("late result overrode the timeout: accepted=%t status=%s", outcome.Accepted, session.Status())
	}
}

func TestSessionUseCase_HandleSessionEvent_Tokenizer(t *testing.T) {
	newTokenizerSession := func() *entities.PaymentSession {
		now := time.Now().UTC()
		return entities.NewPaymentSession("sess-2", entities.ProcessorPayTrace, "club-1", 4999, "USD", now, now.Add(15*time.Minute))
	}

	t.Run("validation failure keeps the session live", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		session := newTokenizerSession()
		uc := NewSessionUseCase(nil, nil, nil, eventStoreFor(ctrl, session), 0)

		outcome, err := uc.HandleSessionEvent(context.Background(), session.SessionID, "", json.RawMessage(`{"event": "validation_failed", "message": "card number invalid"}`))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !outcome.Accepted {
			t.Fatalf("expected validation failure to be acknowledged")
		}
		if session.Status().Terminal() {
			t.Fatalf("validation failure ended the session: %s", session.Status())
		}
	})

	t.Run("form error ends the attempt", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		session := newTokenizerSession()
		uc := NewSessionUseCase(nil, nil, nil, eventStoreFor(ctrl, session), 0)

		outcome, err := uc.HandleSessionEvent(context.Background(), session.SessionID, "", json.RawMessage(`{"event": "form_error", "message": "fields failed to initialize"}`))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if outcome.Status != entities.SessionStatusErrored {
			t.Fatalf("expected errored, got %s", outcome.Status)
		}
	})

	t.Run("script load failure without message uses reload hint", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		session := newTokenizerSession()
		uc := NewSessionUseCase(nil, nil, nil, eventStoreFor(ctrl, session), 0)

		_, err := uc.HandleSessionEvent(context.Background(), session.SessionID, "", json.RawMessage(`{"event": "script_load_failed"}`))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if reason := session.Result().DeclineReason; reason == "" {
			t.Fatalf("expected a decline reason for the script failure")
		}
	})

	t.Run("unknown event ignored", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		session := newTokenizerSession()
		uc := NewSessionUseCase(nil, nil, nil, eventStoreFor(ctrl, session), 0)

		outcome, err := uc.HandleSessionEvent(context.Background(), session.SessionID, "", json.RawMessage(`{"event": "mouse_moved"}`))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if outcome.Accepted || session.Status().Terminal() {
			t.Fatalf("unknown event changed the session")
		}
	})
}
