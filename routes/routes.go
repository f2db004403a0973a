package routes

import (
	"fmt"
	"net/http"

	"foodie-site-api/contract"
	"foodie-site-api/handlers"
	"foodie-site-api/metrics"
	"foodie-site-api/middleware"
	"foodie-site-api/schema"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

// ginPaths overrides contract paths gin cannot register verbatim. Sibling
// wildcards must share a name, so the nested items route reuses :slug and the
// handler reads its id by position.
var ginPaths = map[string]string{
	contract.API.MenuItems.ByCategory.Name: "/api/categories/:slug/items",
}

func SetupRoutes(r *gin.Engine, h *handlers.Handler, m *metrics.Metrics, limiter *middleware.RateLimiter) {
	binding.Validator = schema.GinValidator{}

	bound := map[string]gin.HandlerFunc{
		contract.API.Categories.List.Name:      h.ListCategories,
		contract.API.Categories.Get.Name:       h.GetCategory,
		contract.API.MenuItems.List.Name:       h.ListMenuItems,
		contract.API.MenuItems.ByCategory.Name: h.ListCategoryItems,
		contract.API.Contact.Submit.Name:       h.SubmitContact,
		contract.API.Reservation.Submit.Name:   h.SubmitReservation,
		contract.API.Reviews.List.Name:         h.ListReviews,
		contract.API.Reviews.Create.Name:       h.CreateReview,
		contract.API.Reviews.Summary.Name:      h.ReviewSummary,
	}

	// ── API ────────────────────────────────────────────────────────
	for _, ep := range contract.Endpoints() {
		handler, ok := bound[ep.Name]
		if !ok {
			panic(fmt.Sprintf("routes: no handler for endpoint %s", ep.Name))
		}
		path := ep.Path
		if p, ok := ginPaths[ep.Name]; ok {
			path = p
		}

		chain := []gin.HandlerFunc{handler}
		if ep.Method == http.MethodPost && limiter != nil {
			chain = append([]gin.HandlerFunc{limiter.Handler()}, chain...)
		}
		r.Handle(ep.Method, path, chain...)
	}

	// ── Service ────────────────────────────────────────────────────
	r.GET("/", h.Welcome)
	r.GET("/health", h.Health)
	if m != nil {
		r.GET("/metrics", gin.WrapH(m.Handler()))
	}
}
