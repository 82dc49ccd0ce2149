package application

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/nestorahq/nestora-api/internal/domain/entity"
	repo "github.com/nestorahq/nestora-api/internal/domain/repository"
	"github.com/nestorahq/nestora-api/pkg/helpers"
	"github.com/nestorahq/nestora-api/pkg/mailer"
)

// AgreementService guards and records rental agreement requests.
type AgreementService struct {
	Agreements repo.AgreementRepository
	Apartments repo.ApartmentRepository
	Pub        *helpers.RabbitPublisher
	Logger     *logrus.Logger
}

func NewAgreementService(ag repo.AgreementRepository, ap repo.ApartmentRepository, pub *helpers.RabbitPublisher, logger *logrus.Logger) *AgreementService {
	return &AgreementService{Agreements: ag, Apartments: ap, Pub: pub, Logger: logger}
}

// AgreementInput is the caller-supplied payload. Status is not accepted
// from the caller; the server always starts an agreement at pending.
type AgreementInput struct {
	UserName    string
	UserEmail   string
	ApartmentID string
}

// Create enforces the two agreement rules before writing: the
// authenticated identity must match the payload owner, and the user may
// not already hold an agreement. The rent snapshot comes from the
// apartment record, not the payload. Both checks run only after token
// verification has completed.
func (s *AgreementService) Create(ctx context.Context, identityEmail string, in AgreementInput) (*entity.Agreement, error) {
	if identityEmail != in.UserEmail {
		return nil, ErrForbidden
	}

	apt, err := s.Apartments.GetByID(ctx, in.ApartmentID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	ag := &entity.Agreement{
		UserName:    in.UserName,
		UserEmail:   in.UserEmail,
		ApartmentID: apt.ID,
		FloorNo:     apt.FloorNo,
		BlockName:   apt.BlockName,
		ApartmentNo: apt.ApartmentNo,
		Rent:        apt.Rent,
		Status:      entity.AgreementPending,
	}
	if err := s.Agreements.Create(ctx, ag); err != nil {
		if errors.Is(err, repo.ErrDuplicate) {
			return nil, ErrConflict
		}
		return nil, err
	}

	s.publishReceivedEmail(ctx, ag)
	return ag, nil
}

// GetByEmail returns the caller's agreement, or (nil, nil) when none
// exists. Reading another user's agreement is forbidden.
func (s *AgreementService) GetByEmail(ctx context.Context, identityEmail, email string) (*entity.Agreement, error) {
	if identityEmail != email {
		return nil, ErrForbidden
	}
	ag, err := s.Agreements.GetByEmail(ctx, email)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return ag, nil
}

// best effort; a lost email never fails the agreement
func (s *AgreementService) publishReceivedEmail(ctx context.Context, ag *entity.Agreement) {
	if s.Pub == nil {
		return
	}
	job := mailer.EmailJob{
		To:   ag.UserEmail,
		Kind: mailer.KindAgreementReceived,
		Data: map[string]any{
			"UserName":    ag.UserName,
			"ApartmentNo": ag.ApartmentNo,
			"BlockName":   ag.BlockName,
			"FloorNo":     ag.FloorNo,
			"Rent":        ag.Rent,
		},
	}
	if err := s.Pub.PublishJSON(ctx, job); err != nil && s.Logger != nil {
		s.Logger.WithError(err).WithField("user_email", ag.UserEmail).Warn("agreement email publish failed")
	}
}
