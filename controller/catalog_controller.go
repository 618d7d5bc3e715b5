package controller

import (
	"net/http"
	"strconv"
	"time"

	"vilcos/errs"
	"vilcos/model"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

type tableResponse struct {
	ID          uint   `json:"id"`
	TableNumber int    `json:"table_number"`
	Capacity    int    `json:"capacity"`
	Location    string `json:"location"`
	IsReserved  bool   `json:"is_reserved"`
}

// ListTables returns active tables. When both date and time_slot_id query
// params are present, is_reserved reflects availability for that slot;
// without a slot context there is nothing to check against.
func (ctrl *Controller) ListTables(c *gin.Context) {
	tables, err := ctrl.catalog.ListTables(true)
	if err != nil {
		respondError(c, err)
		return
	}

	var checkDate *time.Time
	var checkSlot *uint
	if raw := c.Query("date"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"detail": "date must be formatted YYYY-MM-DD"})
			return
		}
		checkDate = &parsed
	}
	if raw := c.Query("time_slot_id"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"detail": "time_slot_id must be a positive integer"})
			return
		}
		id := uint(parsed)
		checkSlot = &id
	}

	out := make([]tableResponse, 0, len(tables))
	for _, table := range tables {
		reserved := false
		if checkDate != nil && checkSlot != nil {
			available, err := ctrl.ledger.IsAvailable(table.ID, *checkSlot, *checkDate)
			if err != nil {
				respondError(c, err)
				return
			}
			reserved = !available
		}
		out = append(out, tableResponse{
			ID:          table.ID,
			TableNumber: table.TableNumber,
			Capacity:    table.Capacity,
			Location:    table.Location,
			IsReserved:  reserved,
		})
	}
	c.JSON(http.StatusOK, gin.H{"tables": out})
}

func (ctrl *Controller) ListTimeSlots(c *gin.Context) {
	slots, err := ctrl.catalog.ListTimeSlots()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"time_slots": slots})
}

func (ctrl *Controller) ListMenuItems(c *gin.Context) {
	var categoryID *uint
	if raw := c.Query("category_id"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"detail": "category_id must be a positive integer"})
			return
		}
		id := uint(parsed)
		categoryID = &id
	}

	items, err := ctrl.catalog.ListItems(true, categoryID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"menu_items": items})
}

type menuItemRequest struct {
	ItemNumber  int    `json:"item_number" binding:"required"`
	Name        string `json:"name" binding:"required"`
	LocalName   string `json:"local_name"`
	Description string `json:"description"`
	DietaryInfo string `json:"dietary_info"`
	Price       string `json:"price" binding:"required"`
	CategoryID  uint   `json:"category_id" binding:"required"`
}

func (ctrl *Controller) AddMenuItem(c *gin.Context) {
	var req menuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "item_number, name, price and category_id are required"})
		return
	}
	price, err := decimal.NewFromString(req.Price)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "price must be a decimal number"})
		return
	}

	item := model.MenuItem{
		ItemNumber:  req.ItemNumber,
		Name:        req.Name,
		LocalName:   req.LocalName,
		Description: req.Description,
		DietaryInfo: req.DietaryInfo,
		Price:       price,
		CategoryID:  req.CategoryID,
		IsActive:    true,
	}
	if err := ctrl.catalog.CreateItem(&item); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "message": "Menu item added successfully", "data": item})
}

func (ctrl *Controller) UpdateMenuItem(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid menu item ID format"})
		return
	}

	var req struct {
		Name        *string `json:"name"`
		LocalName   *string `json:"local_name"`
		Description *string `json:"description"`
		DietaryInfo *string `json:"dietary_info"`
		Price       *string `json:"price"`
		CategoryID  *uint   `json:"category_id"`
		IsActive    *bool   `json:"is_active"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Malformed update payload"})
		return
	}

	item, err := ctrl.catalog.UpdateItem(uint(id), func(item *model.MenuItem) error {
		if req.Name != nil {
			item.Name = *req.Name
		}
		if req.LocalName != nil {
			item.LocalName = *req.LocalName
		}
		if req.Description != nil {
			item.Description = *req.Description
		}
		if req.DietaryInfo != nil {
			item.DietaryInfo = *req.DietaryInfo
		}
		if req.Price != nil {
			price, err := decimal.NewFromString(*req.Price)
			if err != nil {
				return errs.Validationf("price must be a decimal number")
			}
			item.Price = price
		}
		if req.CategoryID != nil {
			item.CategoryID = *req.CategoryID
		}
		if req.IsActive != nil {
			item.IsActive = *req.IsActive
		}
		return nil
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Menu item updated successfully", "data": item})
}

// DeactivateMenuItem soft-removes an item; rows stay for old line items.
func (ctrl *Controller) DeactivateMenuItem(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid menu item ID format"})
		return
	}

	item, err := ctrl.catalog.DeactivateItem(uint(id))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Menu item deactivated", "data": item})
}

// ImportMenuItems bulk-creates items from an uploaded Excel sheet. Expected
// columns: category_id, item_number, name, price, description, dietary_info.
// The first row is a header.
func (ctrl *Controller) ImportMenuItems(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Excel file is required"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Unable to open Excel file"})
		return
	}
	defer file.Close()

	xl, err := excelize.OpenReader(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Failed to parse Excel file"})
		return
	}

	rows, err := xl.GetRows("Sheet1")
	if err != nil || len(rows) < 2 {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Excel must have at least one row of data"})
		return
	}

	var items []model.MenuItem
	var skipped int
	for _, row := range rows[1:] {
		if len(row) < 4 {
			skipped++
			continue
		}

		categoryID, err := strconv.ParseUint(row[0], 10, 32)
		if err != nil {
			skipped++
			continue
		}
		itemNumber, err := strconv.Atoi(row[1])
		if err != nil {
			skipped++
			continue
		}
		price, err := decimal.NewFromString(row[3])
		if err != nil || price.IsNegative() {
			skipped++
			continue
		}

		item := model.MenuItem{
			CategoryID: uint(categoryID),
			ItemNumber: itemNumber,
			Name:       row[2],
			Price:      price,
			IsActive:   true,
		}
		if len(row) > 4 {
			item.Description = row[4]
		}
		if len(row) > 5 {
			item.DietaryInfo = row[5]
		}
		if item.Name == "" {
			skipped++
			continue
		}
		items = append(items, item)
	}

	if len(items) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "No valid rows found"})
		return
	}

	if err := ctrl.catalog.CreateItems(items); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Bulk menu import successful",
		"count":   len(items),
		"skipped": skipped,
	})
}
