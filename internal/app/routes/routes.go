// Package routes wires controllers onto the HTTP route table.
package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/deniz/classbooker/internal/app/controllers"
	"github.com/deniz/classbooker/internal/app/models"
	"github.com/deniz/classbooker/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	userController *controllers.UserController,
	classController *controllers.ClassController,
	bookingController *controllers.BookingController,
	paymentController *controllers.PaymentController,
	enrollmentController *controllers.EnrollmentController,
	authMiddleware *middleware.AuthMiddleware,
) {
	router.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")

	// --- Public routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
	}

	// The approved catalog is browsable without a token
	v1.GET("/classes", classController.ListApproved)

	// --- Authenticated routes ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		classes := authenticated.Group("/classes")
		{
			classes.GET("/:id", classController.GetByID)
			classes.PATCH("/:id/feedback", classController.SetFeedback)

			instructorOnly := classes.Group("")
			instructorOnly.Use(authMiddleware.RoleRequired(string(models.RoleInstructor)))
			{
				instructorOnly.POST("", classController.Create)
				instructorOnly.PATCH("/:id", classController.Update)
			}

			adminOnly := classes.Group("")
			adminOnly.Use(authMiddleware.RoleRequired(string(models.RoleAdmin)))
			{
				adminOnly.GET("/all", classController.ListAll)
				adminOnly.PATCH("/:id/status", classController.SetStatus)
			}
		}

		users := authenticated.Group("/users")
		{
			users.GET("/:email/admin", userController.CheckAdmin)
			users.GET("/:email/instructor", userController.CheckInstructor)
			users.GET("/:email/bookings", bookingController.ListForUser)
			users.GET("/:email/enrollments", enrollmentController.ListForUser)
			users.GET("/:email/payments", paymentController.ListPayments)

			usersAdmin := users.Group("")
			usersAdmin.Use(authMiddleware.RoleRequired(string(models.RoleAdmin)))
			{
				usersAdmin.GET("", userController.ListUsers)
				usersAdmin.GET("/instructors", userController.ListInstructors)
				// Static segment: a second param name next to :email would
				// conflict in gin's route tree.
				usersAdmin.PATCH("/roles/:id", userController.SetRole)
			}
		}

		instructors := authenticated.Group("/instructors")
		{
			instructors.GET("/:email/classes", classController.ListByInstructor)
			instructors.GET("/:email/bookings", bookingController.ListForInstructor)
		}

		bookings := authenticated.Group("/bookings")
		{
			bookings.POST("", bookingController.Create)
			bookings.DELETE("/:classId", bookingController.Cancel)
		}

		payments := authenticated.Group("/payments")
		{
			payments.POST("", paymentController.Settle)
			payments.POST("/intent", paymentController.CreateIntent)
		}
	}
}
