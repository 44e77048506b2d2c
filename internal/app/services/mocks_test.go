package services

import (
	"context"

	"github.com/deniz/classbooker/internal/app/models"
	"github.com/deniz/classbooker/internal/app/repositories"
	"github.com/deniz/classbooker/internal/pkg/paygate"
)

// Function-field mocks: each test sets only the calls it expects.

type mockUserRepo struct {
	CreateFunc     func(ctx context.Context, user *models.User) (int64, error)
	GetByEmailFunc func(ctx context.Context, email string) (*models.User, error)
	ListAllFunc    func(ctx context.Context) ([]*models.User, error)
	ListByRoleFunc func(ctx context.Context, role models.RoleType) ([]*models.User, error)
	UpdateRoleFunc func(ctx context.Context, id int64, role models.RoleType) error
}

func (m *mockUserRepo) Create(ctx context.Context, user *models.User) (int64, error) {
	return m.CreateFunc(ctx, user)
}
func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return m.GetByEmailFunc(ctx, email)
}
func (m *mockUserRepo) ListAll(ctx context.Context) ([]*models.User, error) {
	return m.ListAllFunc(ctx)
}
func (m *mockUserRepo) ListByRole(ctx context.Context, role models.RoleType) ([]*models.User, error) {
	return m.ListByRoleFunc(ctx, role)
}
func (m *mockUserRepo) UpdateRole(ctx context.Context, id int64, role models.RoleType) error {
	return m.UpdateRoleFunc(ctx, id, role)
}

type mockClassRepo struct {
	CreateFunc           func(ctx context.Context, class *models.Class) (int64, error)
	GetByIDFunc          func(ctx context.Context, id int64) (*models.Class, error)
	ListAllFunc          func(ctx context.Context) ([]*models.Class, error)
	ListByStatusFunc     func(ctx context.Context, status models.ClassStatus) ([]*models.Class, error)
	ListByInstructorFunc func(ctx context.Context, email string) ([]*models.Class, error)
	UpdateStatusFunc     func(ctx context.Context, id int64, status models.ClassStatus) error
	UpdateFieldsFunc     func(ctx context.Context, id int64, update repositories.ClassUpdate) error
	UpdateFeedbackFunc   func(ctx context.Context, id int64, feedback string) error
	AdjustSeatsFunc      func(ctx context.Context, id int64, deltaAvailable, deltaEnrolled int) error
}

func (m *mockClassRepo) Create(ctx context.Context, class *models.Class) (int64, error) {
	return m.CreateFunc(ctx, class)
}
func (m *mockClassRepo) GetByID(ctx context.Context, id int64) (*models.Class, error) {
	return m.GetByIDFunc(ctx, id)
}
func (m *mockClassRepo) ListAll(ctx context.Context) ([]*models.Class, error) {
	return m.ListAllFunc(ctx)
}
func (m *mockClassRepo) ListByStatus(ctx context.Context, status models.ClassStatus) ([]*models.Class, error) {
	return m.ListByStatusFunc(ctx, status)
}
func (m *mockClassRepo) ListByInstructor(ctx context.Context, email string) ([]*models.Class, error) {
	return m.ListByInstructorFunc(ctx, email)
}
func (m *mockClassRepo) UpdateStatus(ctx context.Context, id int64, status models.ClassStatus) error {
	return m.UpdateStatusFunc(ctx, id, status)
}
func (m *mockClassRepo) UpdateFields(ctx context.Context, id int64, update repositories.ClassUpdate) error {
	return m.UpdateFieldsFunc(ctx, id, update)
}
func (m *mockClassRepo) UpdateFeedback(ctx context.Context, id int64, feedback string) error {
	return m.UpdateFeedbackFunc(ctx, id, feedback)
}
func (m *mockClassRepo) AdjustSeats(ctx context.Context, id int64, deltaAvailable, deltaEnrolled int) error {
	return m.AdjustSeatsFunc(ctx, id, deltaAvailable, deltaEnrolled)
}

type mockBookingRepo struct {
	CreateFunc            func(ctx context.Context, booking *models.Booking) (int64, error)
	GetByClassAndUserFunc func(ctx context.Context, classID int64, userEmail string) (*models.Booking, error)
	ExistsFunc            func(ctx context.Context, classID int64, userEmail string) (bool, error)
	ListByUserFunc        func(ctx context.Context, userEmail string) ([]*models.Booking, error)
	ListByInstructorFunc  func(ctx context.Context, instructorEmail string) (*models.InstructorBookings, error)
	DeleteFunc            func(ctx context.Context, classID int64, userEmail string) (int64, error)
}

func (m *mockBookingRepo) Create(ctx context.Context, booking *models.Booking) (int64, error) {
	return m.CreateFunc(ctx, booking)
}
func (m *mockBookingRepo) GetByClassAndUser(ctx context.Context, classID int64, userEmail string) (*models.Booking, error) {
	return m.GetByClassAndUserFunc(ctx, classID, userEmail)
}
func (m *mockBookingRepo) Exists(ctx context.Context, classID int64, userEmail string) (bool, error) {
	return m.ExistsFunc(ctx, classID, userEmail)
}
func (m *mockBookingRepo) ListByUser(ctx context.Context, userEmail string) ([]*models.Booking, error) {
	return m.ListByUserFunc(ctx, userEmail)
}
func (m *mockBookingRepo) ListByInstructor(ctx context.Context, instructorEmail string) (*models.InstructorBookings, error) {
	return m.ListByInstructorFunc(ctx, instructorEmail)
}
func (m *mockBookingRepo) Delete(ctx context.Context, classID int64, userEmail string) (int64, error) {
	return m.DeleteFunc(ctx, classID, userEmail)
}

type mockEnrollmentRepo struct {
	CreateFunc     func(ctx context.Context, enrollment *models.Enrollment) (int64, error)
	ListByUserFunc func(ctx context.Context, userEmail string) ([]*models.Enrollment, error)
}

func (m *mockEnrollmentRepo) Create(ctx context.Context, enrollment *models.Enrollment) (int64, error) {
	return m.CreateFunc(ctx, enrollment)
}
func (m *mockEnrollmentRepo) ListByUser(ctx context.Context, userEmail string) ([]*models.Enrollment, error) {
	return m.ListByUserFunc(ctx, userEmail)
}

type mockPaymentRepo struct {
	CreateFunc     func(ctx context.Context, payment *models.Payment) (int64, error)
	ListByUserFunc func(ctx context.Context, userEmail string) ([]*models.Payment, error)
}

func (m *mockPaymentRepo) Create(ctx context.Context, payment *models.Payment) (int64, error) {
	return m.CreateFunc(ctx, payment)
}
func (m *mockPaymentRepo) ListByUser(ctx context.Context, userEmail string) ([]*models.Payment, error) {
	return m.ListByUserFunc(ctx, userEmail)
}

type mockGateway struct {
	CreateIntentFunc func(ctx context.Context, req paygate.CreateIntentRequest) (*paygate.Intent, error)
}

func (m *mockGateway) CreateIntent(ctx context.Context, req paygate.CreateIntentRequest) (*paygate.Intent, error) {
	return m.CreateIntentFunc(ctx, req)
}
