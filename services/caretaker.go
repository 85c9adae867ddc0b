package services

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/conectacare/conectacare-api/apperrors"
	"github.com/conectacare/conectacare-api/databases"
	"github.com/conectacare/conectacare-api/identifier"
	"github.com/conectacare/conectacare-api/models"
	"github.com/conectacare/conectacare-api/projections"
)

// CaretakerService manages caretakers
type CaretakerService struct {
	DB databases.CaretakerDatabase
	// HashCost is the bcrypt cost used for plain passwords
	HashCost int
}

// NewCaretakerService returns a CaretakerService backed by db
func NewCaretakerService(db databases.CaretakerDatabase) *CaretakerService {
	return &CaretakerService{DB: db, HashCost: bcrypt.DefaultCost}
}

// CreateCaretaker stores a new caretaker. The email is compared lower-cased,
// and an address already registered is a Conflict.
func (s *CaretakerService) CreateCaretaker(ctx context.Context, in models.CaretakerInput) (projections.CaretakerView, error) {
	if err := in.Validate(); err != nil {
		return projections.CaretakerView{}, err
	}
	email := in.NormalizedEmail()

	_, err := s.DB.FindOneByField(ctx, models.EmailField, email)
	switch {
	case err == nil:
		return projections.CaretakerView{}, apperrors.New(apperrors.Conflict, "email already registered")
	case !apperrors.Is(err, apperrors.NotFound):
		return projections.CaretakerView{}, err
	}

	hash := in.PasswordHash
	if in.Password != "" {
		b, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.HashCost)
		if err != nil {
			return projections.CaretakerView{}, apperrors.Wrap(apperrors.Validation, "password cannot be hashed", err)
		}
		hash = string(b)
	}

	caretaker := &models.Caretaker{
		Name:         in.Name,
		Email:        email,
		PasswordHash: hash,
		Role:         in.Role,
	}
	id, err := s.DB.InsertOne(ctx, caretaker)
	if err != nil {
		if apperrors.Is(err, apperrors.Conflict) {
			return projections.CaretakerView{}, apperrors.Wrap(apperrors.Conflict, "email already registered", err)
		}
		return projections.CaretakerView{}, err
	}

	stored, err := s.DB.FindByID(ctx, id)
	if err != nil {
		return projections.CaretakerView{}, err
	}
	return projections.Caretaker(stored), nil
}

// GetCaretaker returns the caretaker with the given id
func (s *CaretakerService) GetCaretaker(ctx context.Context, caretakerID string) (projections.CaretakerView, error) {
	id, err := identifier.ParseNamed("caretaker_id", caretakerID)
	if err != nil {
		return projections.CaretakerView{}, err
	}
	caretaker, err := s.DB.FindByID(ctx, id)
	if err != nil {
		return projections.CaretakerView{}, err
	}
	return projections.Caretaker(caretaker), nil
}

// ListCaretakers returns every caretaker
func (s *CaretakerService) ListCaretakers(ctx context.Context) ([]projections.CaretakerView, error) {
	caretakers, err := s.DB.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return projections.Caretakers(caretakers), nil
}
