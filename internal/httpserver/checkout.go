package httpserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"shopspark/internal/auth"
	"shopspark/internal/checkout"
	"shopspark/internal/domain"
	"shopspark/internal/session"
)

type checkoutView struct {
	State    checkout.State  `json:"state"`
	Amount   decimal.Decimal `json:"amount"`
	OrderID  string          `json:"orderId,omitempty"`
	SignedIn bool            `json:"signedIn"`
	User     *domain.User    `json:"user,omitempty"`
}

func buildCheckoutView(sess *session.Session) checkoutView {
	user := sess.User()
	return checkoutView{
		State:    sess.CheckoutState(),
		Amount:   sess.CheckoutAmount(),
		OrderID:  sess.OrderID(),
		SignedIn: user != nil,
		User:     user,
	}
}

func getCheckoutHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"checkout": buildCheckoutView(currentSession(c))})
}

func beginCheckoutHandler(c *gin.Context) {
	sess := currentSession(c)
	if _, err := sess.BeginCheckout(); err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error(), "checkout": buildCheckoutView(sess)})
		return
	}
	c.JSON(http.StatusOK, gin.H{"checkout": buildCheckoutView(sess)})
}

type submitAuthRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

func submitAuthHandler(tokens *auth.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req submitAuthRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
			return
		}
		sess := currentSession(c)
		if err := sess.SubmitAuth(req.Name, req.Email); err != nil {
			status := http.StatusConflict
			if errors.Is(err, domain.ErrValidation) {
				status = http.StatusBadRequest
			}
			c.JSON(status, gin.H{"error": err.Error()})
			return
		}

		resp := gin.H{"checkout": buildCheckoutView(sess)}
		if tokens != nil {
			if user := sess.User(); user != nil {
				if token, err := tokens.Issue(sess.ID, *user); err == nil {
					resp["token"] = token
				}
			}
		}
		c.JSON(http.StatusOK, resp)
	}
}

func dismissAuthHandler(c *gin.Context) {
	sess := currentSession(c)
	sess.DismissAuth()
	c.JSON(http.StatusOK, gin.H{"checkout": buildCheckoutView(sess)})
}

type submitPaymentRequest struct {
	Method string `json:"method" binding:"required"`
	checkout.PaymentFields
}

func submitPaymentHandler(c *gin.Context) {
	var req submitPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "method required"})
		return
	}
	sess := currentSession(c)
	if err := sess.SubmitPayment(req.Method, req.PaymentFields); err != nil {
		status := http.StatusConflict
		if errors.Is(err, domain.ErrValidation) {
			status = http.StatusBadRequest
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}
	// Settlement lands after the simulated gateway delay; the collaborator
	// polls or listens on the notification feed.
	c.JSON(http.StatusAccepted, gin.H{"checkout": buildCheckoutView(sess)})
}

func dismissPaymentHandler(c *gin.Context) {
	sess := currentSession(c)
	sess.DismissPayment()
	c.JSON(http.StatusOK, gin.H{"checkout": buildCheckoutView(sess)})
}

func signOutHandler(c *gin.Context) {
	sess := currentSession(c)
	sess.SignOut()
	c.JSON(http.StatusOK, gin.H{"checkout": buildCheckoutView(sess)})
}
