// Package router wires the storefront API routes to their handlers. The
// paths mirror the storefront frontend's expectations verbatim, including
// the historically inconsistent naming.
package router

import (
	"storefront/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RouterParams collects every handler the router registers, injected by Fx.
type RouterParams struct {
	fx.In

	AccountHandler  *handler.AccountHandler
	CatalogHandler  *handler.CatalogHandler
	ShoppingHandler *handler.ShoppingHandler
	AdminHandler    *handler.AdminHandler
	PaymentHandler  *handler.PaymentHandler
	FeedbackHandler *handler.FeedbackHandler
}

type router struct {
	account  *handler.AccountHandler
	catalog  *handler.CatalogHandler
	shopping *handler.ShoppingHandler
	admin    *handler.AdminHandler
	payment  *handler.PaymentHandler
	feedback *handler.FeedbackHandler
}

// NewRouter is the constructor for the router.
func NewRouter(params RouterParams) *router {
	return &router{
		account:  params.AccountHandler,
		catalog:  params.CatalogHandler,
		shopping: params.ShoppingHandler,
		admin:    params.AdminHandler,
		payment:  params.PaymentHandler,
		feedback: params.FeedbackHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Accounts
	e.POST("/signup", r.account.Signup)
	e.POST("/login", r.account.Login)
	e.GET("/users", r.account.ListUsers)

	// Catalog
	e.POST("/uploadProduct", r.catalog.UploadProduct)
	e.GET("/product", r.catalog.ListProducts)

	// Cart
	e.POST("/addToCart", r.shopping.AddToCart)
	e.POST("/removeFromCart", r.shopping.RemoveFromCart)
	e.POST("/increaseQuantity", r.shopping.IncreaseQuantity)
	e.POST("/decreaseQuantity", r.shopping.DecreaseQuantity)
	e.GET("/getCart", r.shopping.GetCart)

	// Wishlist
	e.POST("/wishlist", r.shopping.AddToWishlist)
	e.POST("/removeFromWishlist", r.shopping.RemoveFromWishlist)
	e.GET("/get-wishlist", r.shopping.GetWishlist)

	// Saved for later
	e.PUT("/move-to-saved", r.shopping.MoveToSaved)
	e.POST("/removeFromSaved", r.shopping.RemoveFromSaved)
	e.GET("/get-save-it-for-later", r.shopping.GetSavedForLater)

	// Orders
	e.POST("/add-to-myorders", r.shopping.Checkout)
	e.POST("/getOrders", r.shopping.GetOrders)

	// Admin dashboard
	adminGroup := e.Group("/admin")
	{
		adminGroup.GET("/orders", r.admin.ListOrders)
		adminGroup.GET("/orders/sum", r.admin.SumOrders)
	}

	// Payment
	e.POST("/payment", r.payment.CreateSession)

	// Feedback
	e.POST("/submitFeedback", r.feedback.SubmitFeedback)
}
