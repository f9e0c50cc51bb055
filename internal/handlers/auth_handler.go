package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/wildwave/safaris/internal/models"
	"github.com/wildwave/safaris/internal/services"
)

func CustomerSignup(s *services.AccountService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in models.SignupInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		token, customer, err := s.SignupCustomer(c.Request.Context(), &in)
		if errors.Is(err, models.ErrEmailTaken) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Email already registered"})
			return
		}
		if err != nil {
			serverError(c, err, "Failed to create account")
			return
		}

		c.JSON(http.StatusOK, gin.H{"token": token, "customer": customer})
	}
}

// CustomerLogin answers the identical 401 for an unknown email and a wrong
// password; the difference must not be observable.
func CustomerLogin(s *services.AccountService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in models.LoginInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		token, customer, err := s.LoginCustomer(c.Request.Context(), in.Email, in.Password)
		if errors.Is(err, services.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
			return
		}
		if err != nil {
			serverError(c, err, "Login failed")
			return
		}

		c.JSON(http.StatusOK, gin.H{"token": token, "customer": customer})
	}
}

func AdminLogin(s *services.AccountService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in models.LoginInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		token, user, err := s.LoginAdmin(c.Request.Context(), in.Email, in.Password)
		if errors.Is(err, services.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
			return
		}
		if err != nil {
			serverError(c, err, "Login failed")
			return
		}

		c.JSON(http.StatusOK, gin.H{"token": token, "user": user})
	}
}
