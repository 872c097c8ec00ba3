package server

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/mdouchement/catalog/internal/apierror"
	"github.com/mdouchement/catalog/internal/database"
	"github.com/mdouchement/catalog/internal/model"
	"github.com/mdouchement/catalog/internal/server/serializer"
	"github.com/sirupsen/logrus"
)

// item contains all item handlers.
type item struct {
	db database.Client
}

// itemParams is the payload accepted by Create and Update.
// Update ignores the description field, it is kept for compatibility
// with existing clients.
type itemParams struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
}

// bind decodes the request body into params. Binder-level rejections
// (e.g. an empty body) are rendered as-is; decoding failures fall back to a
// generic message. Both surface through the HTTP error handler.
func bind(c echo.Context, params *itemParams) error {
	err := c.Bind(params)
	if err == nil {
		return nil
	}
	if apierr, ok := err.(*apierror.APIError); ok {
		return apierr
	}
	return apierror.NewWithCode(http.StatusBadRequest, "Could not get item params.")
}

func (p itemParams) validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return apierror.NewWithCode(http.StatusBadRequest, "Name can't be blank.")
	}
	if p.Price < 0 {
		return apierror.NewWithCode(http.StatusBadRequest, "Price can't be negative.")
	}
	return nil
}

///// List
////
//

// List renders all the items, optionally keeping only those whose name
// contains the nameToMatch query parameter (case-insensitive).
func (h *item) List(c echo.Context) error {
	items, err := h.db.FindItems()
	if err != nil {
		return err
	}

	// A blank filter means no filter. A present filter is matched verbatim,
	// surrounding spaces included.
	if match := c.QueryParam("nameToMatch"); strings.TrimSpace(match) != "" {
		match = strings.ToLower(match)
		matched := items[:0]
		for _, item := range items {
			if strings.Contains(strings.ToLower(item.Name), match) {
				matched = append(matched, item)
			}
		}
		items = matched
	}

	logrus.WithField("count", len(items)).Info("retrieved items")
	return c.JSON(http.StatusOK, serializer.Items(items))
}

///// Get
////
//

// Get renders the item for the given id.
func (h *item) Get(c echo.Context) error {
	item, err := h.db.FindItem(c.Param("id"))
	if h.db.IsNotFound(err) {
		return c.NoContent(http.StatusNotFound)
	}
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, serializer.Item(item))
}

///// Create
////
//

// Create inserts a new item. The id and creation date are assigned by the
// database client. The response carries a Location header pointing to Get.
func (h *item) Create(c echo.Context) error {
	var params itemParams
	if err := bind(c, &params); err != nil {
		return err
	}
	if err := params.validate(); err != nil {
		return err
	}

	item := &model.Item{
		Name:        params.Name,
		Description: params.Description,
		Price:       params.Price,
	}
	if err := h.db.Save(item); err != nil {
		return err
	}

	c.Response().Header().Set(echo.HeaderLocation, "/items/"+item.ID)
	return c.JSON(http.StatusCreated, serializer.Item(item))
}

///// Update
////
//

// Update overwrites the name and price of an existing item.
// The description and creation date are left untouched.
func (h *item) Update(c echo.Context) error {
	var params itemParams
	if err := bind(c, &params); err != nil {
		return err
	}
	if err := params.validate(); err != nil {
		return err
	}

	item, err := h.db.FindItem(c.Param("id"))
	if h.db.IsNotFound(err) {
		return c.NoContent(http.StatusNotFound)
	}
	if err != nil {
		return err
	}

	item.Name = params.Name
	item.Price = params.Price
	if err := h.db.Save(item); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

///// Delete
////
//

// Delete removes the item for the given id.
func (h *item) Delete(c echo.Context) error {
	id := c.Param("id")

	if _, err := h.db.FindItem(id); err != nil {
		if h.db.IsNotFound(err) {
			return c.NoContent(http.StatusNotFound)
		}
		return err
	}

	if err := h.db.DeleteItem(id); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}
