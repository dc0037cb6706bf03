package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"garmentgrid/internal/store"
)

func CreateProduct(products *store.Products) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /products"
		defer handlePanic(c, route)

		var doc bson.M
		if err := c.ShouldBindJSON(&doc); err != nil {
			respondError(c, http.StatusBadRequest, route, "Invalid request body")
			return
		}

		if name, _ := doc["name"].(string); name == "" {
			respondError(c, http.StatusBadRequest, route, "Product name is required")
			return
		}

		id, err := products.Insert(c.Request.Context(), doc)
		if err != nil {
			log.Printf("[%s] insert failed: %v", route, err)
			respondError(c, http.StatusInternalServerError, route, "Failed to add product")
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success":    true,
			"message":    "Product added successfully",
			"insertedId": id.Hex(),
		})
	}
}

func GetProducts(products *store.Products) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /products"
		defer handlePanic(c, route)

		page, limit, err := parsePaginationParams(c.Query("page"), c.Query("limit"))
		if err != nil {
			respondError(c, http.StatusBadRequest, route, "Invalid pagination params")
			return
		}

		items, err := products.List(c.Request.Context(), (page-1)*limit, limit)
		if err != nil {
			log.Printf("[%s] list failed: %v", route, err)
			respondError(c, http.StatusInternalServerError, route, "Failed to fetch products")
			return
		}

		total, err := products.Count(c.Request.Context())
		if err != nil {
			log.Printf("[%s] count failed: %v", route, err)
			respondError(c, http.StatusInternalServerError, route, "Failed to fetch products")
			return
		}

		log.Printf("[%s] returning %d products", route, len(items))
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"total":   total,
			"page":    page,
			"limit":   limit,
			"data":    items,
		})
	}
}

func GetProduct(products *store.Products) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /products/:id"
		defer handlePanic(c, route)

		id, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			respondError(c, http.StatusBadRequest, route, "Invalid product ID format")
			return
		}

		product, err := products.FindByID(c.Request.Context(), id)
		if err != nil {
			log.Printf("[%s] lookup failed: %v", route, err)
			respondError(c, http.StatusInternalServerError, route, "Failed to fetch product")
			return
		}
		if product == nil {
			respondError(c, http.StatusNotFound, route, "Product not found")
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"data":    product,
		})
	}
}
