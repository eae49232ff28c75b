package repository

import (
	"sync"

	"hotelier/internal/domain"
)

// MemoryCustomerRepository keys directory entries by exact email.
type MemoryCustomerRepository struct {
	mu        sync.RWMutex
	customers map[string]*domain.Customer
}

func NewMemoryCustomerRepository() *MemoryCustomerRepository {
	return &MemoryCustomerRepository{
		customers: make(map[string]*domain.Customer),
	}
}

// Insert stores the customer and reports whether the email was free. The
// existence check and the write happen under one lock so two concurrent
// registrations cannot both win.
func (r *MemoryCustomerRepository) Insert(customer *domain.Customer) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.customers[customer.Email()]; exists {
		return false
	}
	r.customers[customer.Email()] = customer
	return true
}

// FindByEmail returns nil on a miss.
func (r *MemoryCustomerRepository) FindByEmail(email string) *domain.Customer {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.customers[email]
}

// FindAll returns a fresh slice; callers may mutate it freely.
func (r *MemoryCustomerRepository) FindAll() []*domain.Customer {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := make([]*domain.Customer, 0, len(r.customers))
	for _, customer := range r.customers {
		all = append(all, customer)
	}
	return all
}
