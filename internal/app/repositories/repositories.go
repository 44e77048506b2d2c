package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories bundles every repository behind one constructor for DI.
type Repositories struct {
	User       *UserRepository
	Class      *ClassRepository
	Booking    *BookingRepository
	Enrollment *EnrollmentRepository
	Payment    *PaymentRepository
}

// NewRepositories creates all repositories over one shared pool. The pool is
// the process-wide store handle; components receive it here instead of
// reaching for a global.
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		User:       NewUserRepository(db),
		Class:      NewClassRepository(db),
		Booking:    NewBookingRepository(db),
		Enrollment: NewEnrollmentRepository(db),
		Payment:    NewPaymentRepository(db),
	}
}
