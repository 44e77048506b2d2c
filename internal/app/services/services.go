package services

// Services defined in this package:
// - AuthService: idempotent registration and token issuance
// - UserService: user listing and admin role assignment
// - ClassService: class catalog, approval transitions, seat bookkeeping
// - BookingService: booking intents and cancellation
// - PaymentService: payment intents and the settlement sequence
// - EnrollmentService: read side of the enrollment ledger
