package journal

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/daybook-backend/internal/domain"
	"github.com/heartmarshall/daybook-backend/internal/model"
)

// JournalView is a journal as seen by the caller.
type JournalView struct {
	Journal    domain.Journal
	CanWrite   bool
	Subscribed bool
	Groups     []model.GroupView
	// ReaderIDs is only filled for the owner.
	ReaderIDs []uuid.UUID
}

// ListJournals returns the journals the caller owns or was listed as a
// reader of.
func (s *Service) ListJournals(ctx context.Context) ([]domain.Journal, error) {
	userID, ok := identityUser(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	journals, err := s.journals.ListForUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list journals: %w", err)
	}
	return journals, nil
}

// GetJournal returns a journal with its active metric groups.
func (s *Service) GetJournal(ctx context.Context, journalID uuid.UUID) (*JournalView, error) {
	ac, err := s.resolver(ctx).Journal(ctx, journalID)
	if err != nil {
		return nil, err
	}
	reader, err := model.NewJournalReader(ac, s.store)
	if err != nil {
		return nil, err
	}

	j, err := reader.Journal(ctx)
	if err != nil {
		return nil, err
	}
	groups, err := reader.Groups(ctx)
	if err != nil {
		return nil, err
	}
	subscribed, err := reader.Subscribed(ctx)
	if err != nil {
		return nil, err
	}

	view := &JournalView{
		Journal:    *j,
		CanWrite:   reader.CanWrite(),
		Subscribed: subscribed,
		Groups:     groups,
	}
	if view.CanWrite {
		writer, err := model.NewJournalWriter(ac, s.store)
		if err != nil {
			return nil, err
		}
		view.ReaderIDs, err = writer.Readers(ctx)
		if err != nil {
			return nil, err
		}
	}
	return view, nil
}

// EditJournal changes journal fields and, when given, replaces the reader
// list. All changes are written in one transaction.
func (s *Service) EditJournal(ctx context.Context, input EditJournalInput) (*domain.Journal, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	ac, err := s.resolver(ctx).Journal(ctx, input.JournalID)
	if err != nil {
		return nil, err
	}
	writer, err := model.NewJournalWriter(ac, s.store)
	if err != nil {
		return nil, err
	}

	params := domain.JournalUpdate{
		Description: trimOrNil(input.Description),
		Body:        input.Body,
		IsPublic:    input.IsPublic,
	}
	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		params.Name = &name
	}
	// An explicit empty description clears it.
	if input.Description != nil && params.Description == nil {
		empty := ""
		params.Description = &empty
	}
	hasFields := params.Name != nil || params.Description != nil || params.Body != nil || params.IsPublic != nil

	var journal *domain.Journal
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if hasFields {
			var editErr error
			journal, editErr = writer.Edit(txCtx, params)
			if editErr != nil {
				return editErr
			}
		}
		if input.ReaderIDs != nil {
			if err := writer.SetReaders(txCtx, *input.ReaderIDs); err != nil {
				return err
			}
		}
		if journal == nil {
			var getErr error
			journal, getErr = writer.Journal(txCtx)
			if getErr != nil {
				return getErr
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "journal edited",
		slog.String("journal_id", input.JournalID.String()),
		slog.Bool("readers_replaced", input.ReaderIDs != nil),
	)

	return journal, nil
}

// Subscribe turns update emails for a journal on or off. Any signed-in
// caller who may read the journal can subscribe.
func (s *Service) Subscribe(ctx context.Context, input SubscribeInput) error {
	if err := input.Validate(); err != nil {
		return err
	}

	ac, err := s.resolver(ctx).Journal(ctx, input.JournalID)
	if err != nil {
		return err
	}
	reader, err := model.NewJournalReader(ac, s.store)
	if err != nil {
		return err
	}
	if err := reader.Subscribe(ctx, input.Subscribe); err != nil {
		return err
	}

	s.log.InfoContext(ctx, "subscription changed",
		slog.String("journal_id", input.JournalID.String()),
		slog.Bool("subscribed", input.Subscribe),
	)
	return nil
}

func identityUser(ctx context.Context) (uuid.UUID, bool) {
	id := identity(ctx)
	return id.UserID, !id.IsAnonymous()
}

func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
