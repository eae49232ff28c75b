package service

import (
	"go.uber.org/zap"

	"hotelier/internal/domain"
	apperrors "hotelier/internal/errors"
	"hotelier/internal/validation"
)

type CustomerRepository interface {
	Insert(customer *domain.Customer) bool
	FindByEmail(email string) *domain.Customer
	FindAll() []*domain.Customer
}

// CustomerService is the directory: registration with uniqueness by email,
// exact-match lookup and listing.
type CustomerService struct {
	repo   CustomerRepository
	logger *zap.Logger
}

func NewCustomerService(repo CustomerRepository, logger *zap.Logger) *CustomerService {
	return &CustomerService{
		repo:   repo,
		logger: logger,
	}
}

// Register validates and stores a new customer. A taken email fails with
// DuplicateCustomer before anything is written.
func (s *CustomerService) Register(email, firstName, lastName string) (*domain.Customer, error) {
	customer, err := domain.NewCustomer(email, firstName, lastName)
	if err != nil {
		s.logger.Warn("customer rejected", zap.String("email", email), zap.Error(err))
		return nil, err
	}

	if !s.repo.Insert(customer) {
		s.logger.Warn("duplicate registration", zap.String("email", email))
		return nil, apperrors.NewDuplicateCustomerError(email)
	}

	s.logger.Info("customer registered", zap.String("email", email))
	return customer, nil
}

// Lookup returns nil when no customer has that email.
func (s *CustomerService) Lookup(email string) *domain.Customer {
	return s.repo.FindByEmail(email)
}

// ListAll returns a defensive copy of the directory.
func (s *CustomerService) ListAll() []*domain.Customer {
	return s.repo.FindAll()
}

// UpdateName edits the mutable fields of an existing entry in place. The
// email is the immutable identity and cannot be changed here or anywhere.
func (s *CustomerService) UpdateName(email, firstName, lastName string) (*domain.Customer, error) {
	if err := validation.RequireNonEmpty("first name", firstName); err != nil {
		return nil, err
	}
	if err := validation.RequireNonEmpty("last name", lastName); err != nil {
		return nil, err
	}

	customer := s.repo.FindByEmail(email)
	if customer == nil {
		return nil, apperrors.NewNotFoundError("no account found for " + email)
	}

	customer.FirstName = firstName
	customer.LastName = lastName
	s.logger.Info("customer updated", zap.String("email", email))
	return customer, nil
}
