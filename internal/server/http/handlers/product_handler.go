package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/digishoplabs/digishop/internal/server/http/dto"
	"github.com/digishoplabs/digishop/internal/usecase"
)

// maxImagesPerProduct bounds the multipart form fields image1..imageN.
const maxImagesPerProduct = 3

// ProductHandler exposes the catalog endpoints.
type ProductHandler struct {
	facade ProductFacade
}

// NewProductHandler creates ProductHandler instance.
func NewProductHandler(facade ProductFacade) *ProductHandler {
	return &ProductHandler{facade: facade}
}

// Add handles POST /api/product/add. The body is a multipart form with the
// catalog fields plus optional image1..image3 file parts.
func (h *ProductHandler) Add(c *gin.Context) {
	input := usecase.AddProductInput{
		Type:                 c.PostForm("_type"),
		Name:                 c.PostForm("name"),
		Category:             c.PostForm("category"),
		Brand:                c.PostForm("brand"),
		Description:          c.PostForm("description"),
		Price:                parseFloatField(c, "price"),
		DiscountedPercentage: parseFloatField(c, "discountedPercentage"),
		Badge:                parseBoolField(c, "badge"),
		IsAvailable:          parseBoolField(c, "isAvailable"),
		Offer:                parseBoolField(c, "offer"),
		Tags:                 c.PostForm("tags"),
	}

	for i := 1; i <= maxImagesPerProduct; i++ {
		header, err := c.FormFile("image" + strconv.Itoa(i))
		if err != nil {
			continue
		}
		file, err := header.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.Fail("unable to read uploaded image"))
			return
		}
		defer file.Close()
		input.Images = append(input.Images, usecase.ImageUpload{
			Filename:    header.Filename,
			ContentType: header.Header.Get("Content-Type"),
			Body:        file,
		})
	}

	product, err := h.facade.AddProduct(c.Request.Context(), input)
	if err != nil {
		respondError(c, err)
		return
	}

	view := dto.ToProductResponse(*product)
	c.JSON(http.StatusOK, dto.Response{
		Success: true,
		Message: "product added",
		Product: &view,
	})
}

// Remove handles POST /api/product/remove.
func (h *ProductHandler) Remove(c *gin.Context) {
	var req dto.RemoveProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail("invalid request body"))
		return
	}

	if err := h.facade.RemoveProduct(c.Request.Context(), req.ID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK("product removed"))
}

// List handles GET /api/product/list.
func (h *ProductHandler) List(c *gin.Context) {
	products, err := h.facade.Products(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	total := len(products)
	message := ""
	if total == 0 {
		message = "no products found"
	}
	c.JSON(http.StatusOK, dto.Response{
		Success:  true,
		Message:  message,
		Total:    &total,
		Products: dto.ToProductResponses(products),
	})
}

// Single handles GET /api/product/single?id=.
func (h *ProductHandler) Single(c *gin.Context) {
	id := c.Query("id")
	product, err := h.facade.Product(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	view := dto.ToProductResponse(*product)
	c.JSON(http.StatusOK, dto.Response{
		Success: true,
		Product: &view,
	})
}

// Search handles GET /api/product/search?query=.
func (h *ProductHandler) Search(c *gin.Context) {
	products, err := h.facade.SearchProducts(c.Request.Context(), c.Query("query"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.Response{
		Success:  true,
		Products: dto.ToProductResponses(products),
	})
}

func parseFloatField(c *gin.Context, field string) float64 {
	value, _ := strconv.ParseFloat(c.PostForm(field), 64)
	return value
}

func parseBoolField(c *gin.Context, field string) bool {
	value, _ := strconv.ParseBool(c.PostForm(field))
	return value
}
