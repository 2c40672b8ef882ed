package shopserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Route binds an HTTP method and path to a gin handler.
type Route struct {
	Name        string
	Method      string
	Pattern     string
	HandlerFunc gin.HandlerFunc
}

// Routes is the list of the server routes.
type Routes []Route

// ApiHandleFunctions groups the transport handlers for every bounded context.
type ApiHandleFunctions struct {
	ProductAPI  ProductAPI
	CategoryAPI CategoryAPI
	CartAPI     CartAPI
	OrderAPI    OrderAPI
}

// NewRouter returns a new gin router with all application routes attached.
func NewRouter(handleFunctions ApiHandleFunctions) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	for _, route := range getRoutes(handleFunctions) {
		if route.HandlerFunc == nil {
			route.HandlerFunc = defaultFunc
		}
		switch route.Method {
		case http.MethodGet:
			router.GET(route.Pattern, route.HandlerFunc)
		case http.MethodPost:
			router.POST(route.Pattern, route.HandlerFunc)
		case http.MethodPut:
			router.PUT(route.Pattern, route.HandlerFunc)
		case http.MethodDelete:
			router.DELETE(route.Pattern, route.HandlerFunc)
		}
	}
	return router
}

func defaultFunc(c *gin.Context) {}

func getRoutes(handleFunctions ApiHandleFunctions) Routes {
	return Routes{
		{
			"AddProduct",
			http.MethodPost,
			"/product",
			handleFunctions.ProductAPI.AddProduct,
		},
		{
			"ListProducts",
			http.MethodGet,
			"/product",
			handleFunctions.ProductAPI.ListProducts,
		},
		{
			"GetProductById",
			http.MethodGet,
			"/product/:productId",
			handleFunctions.ProductAPI.GetProductById,
		},
		{
			"UpdateProduct",
			http.MethodPut,
			"/product/:productId",
			handleFunctions.ProductAPI.UpdateProduct,
		},
		{
			"DeleteProduct",
			http.MethodDelete,
			"/product/:productId",
			handleFunctions.ProductAPI.DeleteProduct,
		},
		{
			"AddCategory",
			http.MethodPost,
			"/category",
			handleFunctions.CategoryAPI.AddCategory,
		},
		{
			"ListCategories",
			http.MethodGet,
			"/category",
			handleFunctions.CategoryAPI.ListCategories,
		},
		{
			"GetCategoryById",
			http.MethodGet,
			"/category/:categoryId",
			handleFunctions.CategoryAPI.GetCategoryById,
		},
		{
			"UpdateCategory",
			http.MethodPut,
			"/category/:categoryId",
			handleFunctions.CategoryAPI.UpdateCategory,
		},
		{
			"DeleteCategory",
			http.MethodDelete,
			"/category/:categoryId",
			handleFunctions.CategoryAPI.DeleteCategory,
		},
		{
			"CreateCart",
			http.MethodPost,
			"/cart",
			handleFunctions.CartAPI.CreateCart,
		},
		{
			"GetCartById",
			http.MethodGet,
			"/cart/:cartId",
			handleFunctions.CartAPI.GetCartById,
		},
		{
			"UpdateCart",
			http.MethodPut,
			"/cart/:cartId",
			handleFunctions.CartAPI.UpdateCart,
		},
		{
			"ClearCart",
			http.MethodPut,
			"/cart/clear/:cartId",
			handleFunctions.CartAPI.ClearCart,
		},
		{
			"DeleteCart",
			http.MethodDelete,
			"/cart/:cartId",
			handleFunctions.CartAPI.DeleteCart,
		},
		{
			"PlaceOrder",
			http.MethodPost,
			"/order",
			handleFunctions.OrderAPI.PlaceOrder,
		},
		{
			"ListOrders",
			http.MethodGet,
			"/order",
			handleFunctions.OrderAPI.ListOrders,
		},
		{
			"GetOrderById",
			http.MethodGet,
			"/order/:orderId",
			handleFunctions.OrderAPI.GetOrderById,
		},
		{
			"AdvanceOrder",
			http.MethodPut,
			"/order/:orderId/status",
			handleFunctions.OrderAPI.AdvanceOrder,
		},
	}
}
