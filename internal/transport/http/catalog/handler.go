package catalog

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/velmir/catalog-core/internal/app/catalog/queries/get_product"
	"github.com/velmir/catalog-core/internal/app/catalog/queries/get_product_url"
	"github.com/velmir/catalog-core/internal/app/catalog/queries/list_products"
	"github.com/velmir/catalog-core/internal/app/catalog/usecases/create_product"
	"github.com/velmir/catalog-core/internal/app/catalog/usecases/create_product_abstract"
	"github.com/velmir/catalog-core/internal/app/catalog/usecases/create_product_url"
	"github.com/velmir/catalog-core/internal/app/catalog/usecases/delete_product_url"
	"github.com/velmir/catalog-core/internal/app/catalog/usecases/save_product"
	"github.com/velmir/catalog-core/internal/app/catalog/usecases/update_product_url"
)

// Commands groups write interactors.
// Keep transport layer depending on application layer only.
type Commands struct {
	CreateProduct  *create_product.Interactor
	SaveProduct    *save_product.Interactor
	CreateAbstract *create_product_abstract.Interactor
	CreateURL      *create_product_url.Interactor
	UpdateURL      *update_product_url.Interactor
	DeleteURL      *delete_product_url.Interactor
}

// Queries groups read handlers.
type Queries struct {
	GetProduct    *get_product.Handler
	ListProducts  *list_products.Handler
	GetProductURL *get_product_url.Handler
}

// Handler is a thin HTTP transport adapter. It binds JSON payloads, maps
// them to application requests and delegates to CQRS handlers.
type Handler struct {
	commands Commands
	queries  Queries
}

func NewHandler(cmd Commands, qry Queries) *Handler {
	return &Handler{commands: cmd, queries: qry}
}

// RegisterRoutes mounts the catalog API under /v1.
func (h *Handler) RegisterRoutes(r gin.IRouter) {
	v1 := r.Group("/v1")

	v1.POST("/products", h.createProduct)
	v1.GET("/products/:id", h.getProduct)
	v1.PUT("/products/:id", h.saveProduct)
	v1.GET("/products", h.getProductBySku)

	v1.POST("/abstracts", h.createAbstract)
	v1.GET("/abstracts/:id/products", h.listProducts)

	v1.POST("/abstracts/:id/urls", h.createProductURL)
	v1.PUT("/abstracts/:id/urls", h.updateProductURL)
	v1.DELETE("/abstracts/:id/urls", h.deleteProductURL)
	v1.GET("/abstracts/:id/urls", h.getProductURL)
}

func (h *Handler) createProduct(c *gin.Context) {
	var req createProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	id, err := h.commands.CreateProduct.Execute(c.Request.Context(), req.toApp())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"product_id": id})
}

func (h *Handler) saveProduct(c *gin.Context) {
	var req saveProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	id, err := h.commands.SaveProduct.Execute(c.Request.Context(), req.toApp(c.Param("id")))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"product_id": id})
}

func (h *Handler) getProduct(c *gin.Context) {
	out, err := h.queries.GetProduct.Execute(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *Handler) getProductBySku(c *gin.Context) {
	sku := c.Query("sku")
	if sku == "" {
		respondBadRequest(c, errMissingSkuParam)
		return
	}

	out, err := h.queries.GetProduct.ExecuteBySku(c.Request.Context(), sku)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *Handler) createAbstract(c *gin.Context) {
	var req createAbstractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	id, err := h.commands.CreateAbstract.Execute(c.Request.Context(), req.toApp())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"abstract_id": id})
}

func (h *Handler) listProducts(c *gin.Context) {
	out, err := h.queries.ListProducts.Execute(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": out})
}

func (h *Handler) createProductURL(c *gin.Context) {
	out, err := h.commands.CreateURL.Execute(c.Request.Context(), create_product_url.Request{AbstractID: c.Param("id")})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, out)
}

func (h *Handler) updateProductURL(c *gin.Context) {
	out, err := h.commands.UpdateURL.Execute(c.Request.Context(), update_product_url.Request{AbstractID: c.Param("id")})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *Handler) deleteProductURL(c *gin.Context) {
	if err := h.commands.DeleteURL.Execute(c.Request.Context(), delete_product_url.Request{AbstractID: c.Param("id")}); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) getProductURL(c *gin.Context) {
	out, err := h.queries.GetProductURL.Execute(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}
