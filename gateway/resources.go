package gateway

import (
	"net/http"

	"github.com/example/martadmin/pkg/api"
	"github.com/example/martadmin/pkg/listview"
	"github.com/gin-gonic/gin"
)

// ----- Categories -----

func (g *Gateway) categoryRoutes(r *gin.RouterGroup) {
	categories := r.Group("/categories")
	{
		categories.GET("", handleList(g.ctrl.Categories.Controller))
		categories.POST("", g.createCategory)
		categories.PATCH("/:id", g.updateCategory)
		categories.PATCH("/:id/status", handleStatus(func(c *gin.Context, id string, active bool) error {
			return g.ctrl.Categories.SetStatus(c.Request.Context(), id, active)
		}))
		categories.DELETE("/:id", handleDelete(func(c *gin.Context, id string) error {
			return g.ctrl.Categories.Delete(c.Request.Context(), id)
		}))
	}
}

func (g *Gateway) categoryForm(c *gin.Context) (api.CategoryForm, error) {
	image, err := fileFromForm(c, "image")
	if err != nil {
		return api.CategoryForm{}, err
	}
	return api.CategoryForm{Title: c.PostForm("title"), Image: image}, nil
}

func (g *Gateway) createCategory(c *gin.Context) {
	form, err := g.categoryForm(c)
	if err == nil {
		err = g.ctrl.Categories.Create(c.Request.Context(), form)
	}
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true})
}

func (g *Gateway) updateCategory(c *gin.Context) {
	form, err := g.categoryForm(c)
	if err == nil {
		err = g.ctrl.Categories.Update(c.Request.Context(), c.Param("id"), form)
	}
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// ----- Products -----

func (g *Gateway) productRoutes(r *gin.RouterGroup) {
	products := r.Group("/products")
	{
		products.GET("", handleList(g.ctrl.Products.Controller, "category", "unit"))
		products.POST("", g.createProduct)
		products.PATCH("/:id", g.updateProduct)
		products.PATCH("/:id/status", handleStatus(func(c *gin.Context, id string, active bool) error {
			return g.ctrl.Products.SetStatus(c.Request.Context(), id, active)
		}))
		products.DELETE("/:id", handleDelete(func(c *gin.Context, id string) error {
			return g.ctrl.Products.Delete(c.Request.Context(), id)
		}))
	}
}

func (g *Gateway) productForm(c *gin.Context) (api.ProductForm, error) {
	images, err := filesFromForm(c, "images")
	if err != nil {
		return api.ProductForm{}, err
	}
	return api.ProductForm{
		Name:          c.PostForm("name"),
		CategoryID:    c.PostForm("category"),
		Price:         floatField(c, "price"),
		OfferPrice:    floatField(c, "offerPrice"),
		StockQuantity: intField(c, "stockQuantity"),
		Unit:          c.PostForm("unit"),
		Description:   c.PostForm("description"),
		Images:        images,
	}, nil
}

func (g *Gateway) createProduct(c *gin.Context) {
	form, err := g.productForm(c)
	if err == nil {
		err = g.ctrl.Products.Create(c.Request.Context(), form)
	}
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true})
}

func (g *Gateway) updateProduct(c *gin.Context) {
	form, err := g.productForm(c)
	if err == nil {
		err = g.ctrl.Products.Update(c.Request.Context(), c.Param("id"), form)
	}
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// ----- Stores -----

func (g *Gateway) storeRoutes(r *gin.RouterGroup) {
	stores := r.Group("/stores")
	{
		stores.GET("", handleList(g.ctrl.Stores.Controller, "city", "state"))
		stores.GET("/:id/products", g.storeProducts)
		stores.POST("", g.createStore)
		stores.PATCH("/:id", g.updateStore)
		stores.PATCH("/:id/status", handleStatus(func(c *gin.Context, id string, active bool) error {
			return g.ctrl.Stores.SetStatus(c.Request.Context(), id, active)
		}))
		stores.DELETE("/:id", handleDelete(func(c *gin.Context, id string) error {
			return g.ctrl.Stores.Delete(c.Request.Context(), id)
		}))
	}
}

func (g *Gateway) storeProducts(c *gin.Context) {
	products, err := g.ctrl.Stores.Products(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": products})
}

func (g *Gateway) storeForm(c *gin.Context) (api.StoreForm, error) {
	image, err := fileFromForm(c, "storeImage")
	if err != nil {
		return api.StoreForm{}, err
	}
	return api.StoreForm{
		StoreName:    c.PostForm("storeName"),
		StoreCode:    c.PostForm("storeCode"),
		Address:      c.PostForm("address"),
		City:         c.PostForm("city"),
		State:        c.PostForm("state"),
		Pincode:      c.PostForm("pincode"),
		Country:      c.PostForm("country"),
		Latitude:     floatField(c, "latitude"),
		Longitude:    floatField(c, "longitude"),
		ManagerName:  c.PostForm("managerName"),
		ManagerPhone: c.PostForm("managerPhone"),
		ManagerEmail: c.PostForm("managerEmail"),
		OpeningHours: c.PostForm("openingHours"),
		Notes:        c.PostForm("notes"),
		Image:        image,
	}, nil
}

func (g *Gateway) createStore(c *gin.Context) {
	form, err := g.storeForm(c)
	if err == nil {
		err = g.ctrl.Stores.Create(c.Request.Context(), form)
	}
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true})
}

func (g *Gateway) updateStore(c *gin.Context) {
	form, err := g.storeForm(c)
	if err == nil {
		err = g.ctrl.Stores.Update(c.Request.Context(), c.Param("id"), form)
	}
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// ----- Delivery boys -----

func (g *Gateway) deliveryBoyRoutes(r *gin.RouterGroup) {
	boys := r.Group("/delivery-boys")
	{
		boys.GET("", handleList(g.ctrl.DeliveryBoys.Controller, "city"))
		boys.POST("", g.createDeliveryBoy)
		boys.PATCH("/:id", g.updateDeliveryBoy)
		boys.PATCH("/:id/status", handleStatus(func(c *gin.Context, id string, active bool) error {
			return g.ctrl.DeliveryBoys.SetStatus(c.Request.Context(), id, active)
		}))
		boys.DELETE("/:id", handleDelete(func(c *gin.Context, id string) error {
			return g.ctrl.DeliveryBoys.Delete(c.Request.Context(), id)
		}))
	}
}

func (g *Gateway) deliveryBoyForm(c *gin.Context) (api.DeliveryBoyForm, error) {
	profile, err := fileFromForm(c, "profileImage")
	if err != nil {
		return api.DeliveryBoyForm{}, err
	}
	document, err := fileFromForm(c, "document")
	if err != nil {
		return api.DeliveryBoyForm{}, err
	}
	return api.DeliveryBoyForm{
		Name:         c.PostForm("name"),
		Phone:        c.PostForm("phone"),
		Email:        c.PostForm("email"),
		Address:      c.PostForm("address"),
		City:         c.PostForm("city"),
		State:        c.PostForm("state"),
		Pincode:      c.PostForm("pincode"),
		ProfileImage: profile,
		Document:     document,
	}, nil
}

func (g *Gateway) createDeliveryBoy(c *gin.Context) {
	form, err := g.deliveryBoyForm(c)
	if err == nil {
		err = g.ctrl.DeliveryBoys.Create(c.Request.Context(), form)
	}
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true})
}

func (g *Gateway) updateDeliveryBoy(c *gin.Context) {
	form, err := g.deliveryBoyForm(c)
	if err == nil {
		err = g.ctrl.DeliveryBoys.Update(c.Request.Context(), c.Param("id"), form)
	}
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// ----- Orders -----

func (g *Gateway) orderRoutes(r *gin.RouterGroup) {
	orders := r.Group("/orders")
	{
		orders.GET("", g.listOrders)
		orders.PATCH("/:id/status", g.setOrderStatus)
		orders.PATCH("/:id/payment-status", g.setOrderPaymentStatus)
		orders.DELETE("/:id", handleDelete(func(c *gin.Context, id string) error {
			return g.ctrl.Orders.Delete(c.Request.Context(), id)
		}))
	}
}

func (g *Gateway) listOrders(c *gin.Context) {
	g.ctrl.Orders.SetScope(c.DefaultQuery("scope", listview.ScopeAll), c.Query("storeId"))
	handleList(g.ctrl.Orders.Controller, "status", "paymentStatus", "paymentMethod")(c)
}

func (g *Gateway) setOrderStatus(c *gin.Context) {
	var req struct {
		Status string `json:"status"`
	}
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := g.ctrl.Orders.SetStatus(c.Request.Context(), c.Param("id"), req.Status); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (g *Gateway) setOrderPaymentStatus(c *gin.Context) {
	var req struct {
		PaymentStatus string `json:"paymentStatus"`
	}
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := g.ctrl.Orders.SetPaymentStatus(c.Request.Context(), c.Param("id"), req.PaymentStatus); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// ----- Offer texts -----

func (g *Gateway) offerTextRoutes(r *gin.RouterGroup) {
	texts := r.Group("/offer-texts")
	{
		texts.GET("", handleList(g.ctrl.OfferTexts.Controller))
		texts.POST("", g.createOfferText)
		texts.PATCH("/:id", g.updateOfferText)
		texts.PATCH("/:id/status", handleStatus(func(c *gin.Context, id string, active bool) error {
			return g.ctrl.OfferTexts.SetStatus(c.Request.Context(), id, active)
		}))
		texts.DELETE("/:id", handleDelete(func(c *gin.Context, id string) error {
			return g.ctrl.OfferTexts.Delete(c.Request.Context(), id)
		}))
	}
}

func (g *Gateway) createOfferText(c *gin.Context) {
	var req struct {
		Text string `json:"text"`
	}
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := g.ctrl.OfferTexts.Create(c.Request.Context(), api.OfferTextForm{Text: req.Text}); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true})
}

func (g *Gateway) updateOfferText(c *gin.Context) {
	var req struct {
		Text string `json:"text"`
	}
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := g.ctrl.OfferTexts.Update(c.Request.Context(), c.Param("id"), api.OfferTextForm{Text: req.Text}); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// ----- Offer images -----

func (g *Gateway) offerImageRoutes(r *gin.RouterGroup) {
	images := r.Group("/offer-images")
	{
		images.GET("", handleList(g.ctrl.OfferImages.Controller))
		images.POST("", g.createOfferImage)
		images.PATCH("/:id", g.updateOfferImage)
		images.PATCH("/:id/status", handleStatus(func(c *gin.Context, id string, active bool) error {
			return g.ctrl.OfferImages.SetStatus(c.Request.Context(), id, active)
		}))
		images.DELETE("/:id", handleDelete(func(c *gin.Context, id string) error {
			return g.ctrl.OfferImages.Delete(c.Request.Context(), id)
		}))
	}
}

func (g *Gateway) createOfferImage(c *gin.Context) {
	image, err := fileFromForm(c, "image")
	if err == nil {
		err = g.ctrl.OfferImages.Create(c.Request.Context(), api.OfferImageForm{Image: image})
	}
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true})
}

func (g *Gateway) updateOfferImage(c *gin.Context) {
	image, err := fileFromForm(c, "image")
	if err == nil {
		err = g.ctrl.OfferImages.Update(c.Request.Context(), c.Param("id"), api.OfferImageForm{Image: image})
	}
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// ----- Sliders -----

func (g *Gateway) sliderRoutes(r *gin.RouterGroup) {
	sliders := r.Group("/sliders")
	{
		sliders.GET("", handleList(g.ctrl.Sliders.Controller))
		sliders.POST("", g.createSlider)
		sliders.PATCH("/:id", g.updateSlider)
		sliders.PATCH("/:id/status", handleStatus(func(c *gin.Context, id string, active bool) error {
			return g.ctrl.Sliders.SetStatus(c.Request.Context(), id, active)
		}))
		sliders.DELETE("/:id", handleDelete(func(c *gin.Context, id string) error {
			return g.ctrl.Sliders.Delete(c.Request.Context(), id)
		}))
	}
}

func (g *Gateway) sliderForm(c *gin.Context) (api.SliderForm, error) {
	image, err := fileFromForm(c, "image")
	if err != nil {
		return api.SliderForm{}, err
	}
	return api.SliderForm{
		Title:       c.PostForm("title"),
		Subtitle:    c.PostForm("subtitle"),
		RedirectURL: c.PostForm("redirectUrl"),
		SortOrder:   intField(c, "sortOrder"),
		Image:       image,
	}, nil
}

func (g *Gateway) createSlider(c *gin.Context) {
	form, err := g.sliderForm(c)
	if err == nil {
		err = g.ctrl.Sliders.Create(c.Request.Context(), form)
	}
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true})
}

func (g *Gateway) updateSlider(c *gin.Context) {
	form, err := g.sliderForm(c)
	if err == nil {
		err = g.ctrl.Sliders.Update(c.Request.Context(), c.Param("id"), form)
	}
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// ----- App versions -----

func (g *Gateway) appVersionRoutes(r *gin.RouterGroup) {
	versions := r.Group("/app-versions")
	{
		versions.GET("", handleList(g.ctrl.AppVersions.Controller, "platform"))
		versions.GET("/latest", g.latestAppVersion)
		versions.GET("/latest-save", g.latestSavedAppVersion)
		versions.POST("", g.createAppVersion)
		versions.PUT("/:id", g.updateAppVersion)
		versions.DELETE("/:id", handleDelete(func(c *gin.Context, id string) error {
			return g.ctrl.AppVersions.Delete(c.Request.Context(), id)
		}))
	}
}

func (g *Gateway) latestAppVersion(c *gin.Context) {
	version, err := g.ctrl.AppVersions.Latest(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, version)
}

func (g *Gateway) latestSavedAppVersion(c *gin.Context) {
	version, err := g.ctrl.AppVersions.LatestSaved(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, version)
}

func (g *Gateway) createAppVersion(c *gin.Context) {
	var form api.AppVersionForm
	if err := c.BindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := g.ctrl.AppVersions.Create(c.Request.Context(), form); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true})
}

func (g *Gateway) updateAppVersion(c *gin.Context) {
	var form api.AppVersionForm
	if err := c.BindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := g.ctrl.AppVersions.Update(c.Request.Context(), c.Param("id"), form); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
