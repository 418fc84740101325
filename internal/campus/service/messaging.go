package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sort"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/aussiebroadwan/campus/internal/campus/blob"
	"github.com/aussiebroadwan/campus/internal/campus/domain"
	"github.com/aussiebroadwan/campus/internal/campus/store"
	"github.com/aussiebroadwan/campus/pkg/slogx"
)

const DefaultBroadcastConcurrency = 8

type MessagingService struct {
	Store store.Store
	Blobs blob.Store

	// Concurrency bounds the in-flight inserts of one broadcast.
	Concurrency int
}

// BroadcastResult reports who received a broadcast.
type BroadcastResult struct {
	Receivers []string
	Image     string
}

// Broadcast sends one message from sender to every other profile owner.
//
// Stages run in order: validate the sender, collect and check receivers,
// store the image, insert one row per receiver. Receiver checks finish
// before any write, and the inserts share one transaction so a failed
// insert leaves no rows behind.
func (s *MessagingService) Broadcast(ctx context.Context, sender, text string, img *blob.Upload) (BroadcastResult, error) {
	log := slogx.FromContext(ctx).With(slog.String("op", "broadcast"))

	if err := requireEmail(sender); err != nil {
		return BroadcastResult{}, err
	}
	text = strings.TrimSpace(text)
	if text == "" && img == nil {
		return BroadcastResult{}, newError(ErrValidation, "Message text or image is required")
	}

	receivers, err := s.Store.Profiles().ListEmailsExcept(ctx, sender)
	if err != nil {
		log.Error("failed to list receivers", slog.Any("error", err))
		return BroadcastResult{}, persistence("Could not load receivers", err)
	}
	if len(receivers) == 0 {
		return BroadcastResult{}, newError(ErrNotFound, "No receivers found")
	}

	if err := s.checkSender(ctx, sender); err != nil {
		return BroadcastResult{}, err
	}
	if err := s.checkReceivers(ctx, receivers); err != nil {
		log.Warn("broadcast rejected", slog.Any("invalid_receivers", AsError(err).Emails))
		return BroadcastResult{}, err
	}

	ref, err := storeImage(ctx, s.Blobs, img)
	if err != nil {
		return BroadcastResult{}, err
	}

	if err := s.insertAll(ctx, sender, receivers, text, ref); err != nil {
		discardImage(ctx, s.Blobs, ref)
		log.Error("broadcast failed", slog.Any("error", err))
		return BroadcastResult{}, err
	}

	log.Info("broadcast delivered", slog.Int("receivers", len(receivers)))
	return BroadcastResult{Receivers: receivers, Image: ref}, nil
}

func (s *MessagingService) checkSender(ctx context.Context, sender string) error {
	_, err := s.Store.Accounts().GetByEmail(ctx, sender)
	if errors.Is(err, store.ErrNotFound) {
		return &Error{Kind: ErrInvalidSender, Message: "Sender is not a registered account", Emails: []string{sender}}
	}
	if err != nil {
		return persistence("Could not verify sender", err)
	}
	return nil
}

func (s *MessagingService) checkReceivers(ctx context.Context, receivers []string) error {
	existing, err := s.Store.Accounts().ListExisting(ctx, receivers)
	if err != nil {
		return persistence("Could not verify receivers", err)
	}

	known := make(map[string]struct{}, len(existing))
	for _, e := range existing {
		known[e] = struct{}{}
	}

	var invalid []string
	for _, r := range receivers {
		if _, ok := known[r]; !ok {
			invalid = append(invalid, r)
		}
	}
	if len(invalid) > 0 {
		return &Error{Kind: ErrInvalidReceivers, Message: "Some receiver emails are invalid", Emails: invalid}
	}
	return nil
}

// insertAll fans the inserts out and joins on all of them. Once one insert
// fails the transaction is rolled back, and some drivers then fail every
// later insert in it too. Emails lists each receiver whose insert returned an
// error; Err is the first failure, which is the cause.
func (s *MessagingService) insertAll(ctx context.Context, sender string, receivers []string, text, image string) error {
	limit := s.Concurrency
	if limit <= 0 {
		limit = DefaultBroadcastConcurrency
	}

	var (
		mu     sync.Mutex
		failed []string
		first  error
	)

	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		var g errgroup.Group
		g.SetLimit(limit)

		for _, receiver := range receivers {
			g.Go(func() error {
				_, err := tx.Messages().Create(ctx, domain.Message{
					SenderEmail:   sender,
					ReceiverEmail: receiver,
					Text:          text,
					Image:         image,
					CreatedAt:     time.Now(),
				})
				if err != nil {
					mu.Lock()
					failed = append(failed, receiver)
					if first == nil {
						first = err
					}
					mu.Unlock()
				}
				return err
			})
		}
		return g.Wait()
	})
	if err == nil {
		return nil
	}

	if len(failed) == 0 {
		// begin or commit failed
		return persistence("Could not send message", err)
	}

	sort.Strings(failed)
	return &Error{
		Kind: ErrPartialWrite,
		Message: fmt.Sprintf("Message was not delivered to any of %d receivers; inserts failed for %d, no copies were kept",
			len(receivers), len(failed)),
		Emails: failed,
		Err:    first,
	}
}

// Conversation returns every message between sender and any of receivers,
// in either direction, newest first. The caller must take part: as the
// sender it sees every listed receiver, as a receiver only its own side.
func (s *MessagingService) Conversation(ctx context.Context, caller, sender string, receivers []string) ([]domain.Message, error) {
	caller = NormalizeEmail(caller)
	sender = NormalizeEmail(sender)

	var others []string
	for _, r := range receivers {
		if r = NormalizeEmail(r); r != "" {
			others = append(others, r)
		}
	}
	if sender == "" || len(others) == 0 {
		return nil, newError(ErrValidation, "senderEmail and receiverEmails are required")
	}
	if caller != sender {
		if !slices.Contains(others, caller) {
			return nil, newError(ErrForbidden, "Only participants may read a conversation")
		}
		others = []string{caller}
	}

	msgs, err := s.Store.Messages().Conversation(ctx, sender, others)
	if err != nil {
		slogx.FromContext(ctx).Error("failed to load messages", slog.Any("error", err))
		return nil, persistence("Could not load messages", err)
	}
	return msgs, nil
}
