// Package contract describes every HTTP endpoint once so the server routes and
// the typed client agree on methods, paths and body shapes.
package contract

import (
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"foodie-site-api/models"
	"foodie-site-api/schema"
)

// Response bodies shared by server and client.

type SuccessResponse struct {
	Success bool `json:"success"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type ValidationErrorResponse struct {
	Message string              `json:"message"`
	Errors  []schema.FieldError `json:"errors,omitempty"`
}

type ErrorResponse struct {
	Error  string              `json:"error"`
	Errors []schema.FieldError `json:"errors,omitempty"`
}

// Endpoint is one declared operation. Input is nil for endpoints without a body.
type Endpoint struct {
	Name      string
	Method    string
	Path      string
	Input     reflect.Type
	Responses map[int]reflect.Type
}

// Params lists the :name tokens of the path template in order.
func (e Endpoint) Params() []string {
	var out []string
	for _, seg := range strings.Split(e.Path, "/") {
		if strings.HasPrefix(seg, ":") {
			out = append(out, seg[1:])
		}
	}
	return out
}

// URL resolves the endpoint's path template.
func (e Endpoint) URL(params map[string]any) string {
	return BuildURL(e.Path, params)
}

func typeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

type categoryEndpoints struct {
	List Endpoint
	Get  Endpoint
}

type menuItemEndpoints struct {
	List       Endpoint
	ByCategory Endpoint
}

type submitEndpoints struct {
	Submit Endpoint
}

type reviewEndpoints struct {
	List    Endpoint
	Create  Endpoint
	Summary Endpoint
}

// API is the full endpoint table.
var API = struct {
	Categories  categoryEndpoints
	MenuItems   menuItemEndpoints
	Contact     submitEndpoints
	Reservation submitEndpoints
	Reviews     reviewEndpoints
}{
	Categories: categoryEndpoints{
		List: Endpoint{
			Name:   "categories.list",
			Method: http.MethodGet,
			Path:   "/api/categories",
			Responses: map[int]reflect.Type{
				http.StatusOK:                  typeOf[[]models.Category](),
				http.StatusInternalServerError: typeOf[MessageResponse](),
			},
		},
		Get: Endpoint{
			Name:   "categories.get",
			Method: http.MethodGet,
			Path:   "/api/categories/:slug",
			Responses: map[int]reflect.Type{
				http.StatusOK:                  typeOf[models.Category](),
				http.StatusNotFound:            typeOf[MessageResponse](),
				http.StatusInternalServerError: typeOf[MessageResponse](),
			},
		},
	},
	MenuItems: menuItemEndpoints{
		List: Endpoint{
			Name:   "menuItems.list",
			Method: http.MethodGet,
			Path:   "/api/menu-items",
			Responses: map[int]reflect.Type{
				http.StatusOK:                  typeOf[[]models.MenuItem](),
				http.StatusBadRequest:          typeOf[MessageResponse](),
				http.StatusInternalServerError: typeOf[MessageResponse](),
			},
		},
		ByCategory: Endpoint{
			Name:   "menuItems.getByCategory",
			Method: http.MethodGet,
			Path:   "/api/categories/:id/items",
			Responses: map[int]reflect.Type{
				http.StatusOK:                  typeOf[[]models.MenuItem](),
				http.StatusBadRequest:          typeOf[MessageResponse](),
				http.StatusInternalServerError: typeOf[MessageResponse](),
			},
		},
	},
	Contact: submitEndpoints{
		Submit: Endpoint{
			Name:   "contact.submit",
			Method: http.MethodPost,
			Path:   "/api/contact",
			Input:  typeOf[models.ContactMessageInput](),
			Responses: map[int]reflect.Type{
				http.StatusOK:                  typeOf[SuccessResponse](),
				http.StatusBadRequest:          typeOf[ValidationErrorResponse](),
				http.StatusInternalServerError: typeOf[MessageResponse](),
			},
		},
	},
	Reservation: submitEndpoints{
		Submit: Endpoint{
			Name:   "reservation.submit",
			Method: http.MethodPost,
			Path:   "/api/reservation",
			Input:  typeOf[models.ReservationInput](),
			Responses: map[int]reflect.Type{
				http.StatusOK:                  typeOf[SuccessResponse](),
				http.StatusBadRequest:          typeOf[ValidationErrorResponse](),
				http.StatusInternalServerError: typeOf[MessageResponse](),
			},
		},
	},
	Reviews: reviewEndpoints{
		List: Endpoint{
			Name:   "reviews.list",
			Method: http.MethodGet,
			Path:   "/api/reviews",
			Responses: map[int]reflect.Type{
				http.StatusOK:                  typeOf[[]models.Review](),
				http.StatusInternalServerError: typeOf[ErrorResponse](),
			},
		},
		Create: Endpoint{
			Name:   "reviews.create",
			Method: http.MethodPost,
			Path:   "/api/reviews",
			Input:  typeOf[models.ReviewInput](),
			Responses: map[int]reflect.Type{
				http.StatusOK:                  typeOf[models.Review](),
				http.StatusBadRequest:          typeOf[ErrorResponse](),
				http.StatusInternalServerError: typeOf[ErrorResponse](),
			},
		},
		Summary: Endpoint{
			Name:   "reviews.summary",
			Method: http.MethodGet,
			Path:   "/api/reviews/summary",
			Responses: map[int]reflect.Type{
				http.StatusOK:                  typeOf[models.ReviewSummary](),
				http.StatusInternalServerError: typeOf[ErrorResponse](),
			},
		},
	},
}

// Endpoints returns every endpoint in declaration order.
func Endpoints() []Endpoint {
	return []Endpoint{
		API.Categories.List,
		API.Categories.Get,
		API.MenuItems.List,
		API.MenuItems.ByCategory,
		API.Contact.Submit,
		API.Reservation.Submit,
		API.Reviews.List,
		API.Reviews.Create,
		API.Reviews.Summary,
	}
}

// BuildURL replaces each :name segment of path with params[name]. Segments
// without a matching param, and all other segments, are left untouched.
func BuildURL(path string, params map[string]any) string {
	if len(params) == 0 {
		return path
	}
	segs := strings.Split(path, "/")
	for i, seg := range segs {
		if !strings.HasPrefix(seg, ":") {
			continue
		}
		if v, ok := params[seg[1:]]; ok {
			segs[i] = fmt.Sprint(v)
		}
	}
	return strings.Join(segs, "/")
}
