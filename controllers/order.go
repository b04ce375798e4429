package controllers

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/khanakart/khanakart-api/db"
	"github.com/khanakart/khanakart-api/models"
	"github.com/khanakart/khanakart-api/utils"
	"gorm.io/gorm"
)

type orderItemInput struct {
	ProductID uint   `json:"product_id"`
	Quantity  int    `json:"quantity"`
	Notes     string `json:"notes"`
}

type createOrderInput struct {
	KitchenID       uint             `json:"kitchen_id"`
	OrderMode       models.OrderMode `json:"order_mode"`
	DeliverySlotID  *uint            `json:"delivery_slot_id"`
	DeliveryAddress string           `json:"delivery_address"`
	Items           []orderItemInput `json:"items"`
}

// CreateOrder godoc
// @Summary Place an order
// @Description Creates the order, its items and the slot booking in one transaction
// @Tags orders
// @Accept json
// @Produce json
// @Success 201 {object} models.Order
// @Failure 400 {object} utils.ErrorResponse
// @Failure 409 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/orders [post]
func CreateOrder(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "User ID not found in context",
		})
	}

	input := new(createOrderInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	if !models.ValidMode(input.OrderMode) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "order_mode must be delivery, takeaway or dine_in",
		})
	}
	if len(input.Items) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Order must contain at least one item",
		})
	}
	if input.OrderMode == models.ModeDelivery {
		if input.DeliverySlotID == nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Delivery orders require a delivery slot",
			})
		}
		if input.DeliveryAddress == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Delivery orders require a delivery address",
			})
		}
	} else if input.DeliverySlotID != nil {
		// Slots belong to delivery orders only. Persisting one here would
		// let a cancellation release a seat this order never booked.
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Only delivery orders may book a delivery slot",
		})
	}

	var kitchen models.Kitchen
	if err := db.DB.Where("is_active = ?", true).First(&kitchen, input.KitchenID).Error; err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Kitchen not found or inactive",
		})
	}

	var order models.Order

	err := db.DB.Transaction(func(tx *gorm.DB) error {
		// Price each line from the live product row; the order keeps its
		// own snapshot from here on.
		var subtotal float64
		items := make([]models.OrderItem, 0, len(input.Items))
		for _, item := range input.Items {
			if item.Quantity < 1 {
				return fmt.Errorf("invalid quantity for product %d", item.ProductID)
			}
			var product models.Product
			if err := tx.First(&product, item.ProductID).Error; err != nil {
				return fmt.Errorf("product %d not found", item.ProductID)
			}
			if !product.InStock || product.KitchenID != kitchen.ID {
				return fmt.Errorf("product %q is not available from this kitchen", product.Name)
			}
			subtotal += product.Price * float64(item.Quantity)
			items = append(items, models.OrderItem{
				ProductID: product.ID,
				Quantity:  item.Quantity,
				Price:     product.Price,
				Notes:     item.Notes,
			})
		}

		deliveryFee, serviceFee, total := utils.ComputeTotals(subtotal, input.OrderMode)

		order = models.Order{
			OrderNumber:     utils.GenerateOrderNumber(),
			UserID:          userID,
			KitchenID:       kitchen.ID,
			OrderMode:       input.OrderMode,
			DeliverySlotID:  input.DeliverySlotID,
			DeliveryAddress: input.DeliveryAddress,
			Subtotal:        subtotal,
			DeliveryFee:     deliveryFee,
			ServiceFee:      serviceFee,
			Total:           total,
		}
		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		for i := range items {
			items[i].OrderID = order.ID
		}
		if err := tx.Create(&items).Error; err != nil {
			return err
		}
		order.Items = items

		// Seat the order in its slot last; a full slot rolls back the
		// order and its items together.
		if input.OrderMode == models.ModeDelivery {
			var slot models.DeliverySlot
			if err := tx.Where("is_active = ? AND kitchen_id = ?", true, kitchen.ID).
				First(&slot, *input.DeliverySlotID).Error; err != nil {
				return fmt.Errorf("delivery slot not found for this kitchen")
			}
			if slot.EndTime.Before(time.Now()) {
				return fmt.Errorf("delivery slot has already ended")
			}
			if err := slot.Book(tx); err != nil {
				return err
			}
		}

		return nil
	})

	if err != nil {
		if errors.Is(err, models.ErrSlotFull) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error": "Selected delivery slot is fully booked",
			})
		}
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to create order",
			Error:   err.Error(),
		})
	}

	go sendOrderConfirmation(order.ID)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"order": order})
}

// GetMyOrders lists the current user's orders, newest first
func GetMyOrders(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "User ID not found in context",
		})
	}

	var orders []models.Order
	if err := db.DB.Preload("Items.Product").Preload("Kitchen").Preload("DeliverySlot").
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&orders).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch orders",
			Error:   err.Error(),
		})
	}

	return c.JSON(orders)
}

// GetOrder returns one of the current user's orders by ID
func GetOrder(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "User ID not found in context",
		})
	}

	id := c.Params("id")
	var order models.Order
	if err := db.DB.Preload("Items.Product").Preload("Kitchen").Preload("DeliverySlot").
		Where("user_id = ?", userID).
		First(&order, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Order not found",
			Error:   err.Error(),
		})
	}

	return c.JSON(order)
}

// CancelOrder cancels a pending or confirmed order and releases its
// delivery slot in the same transaction
func CancelOrder(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "User ID not found in context",
		})
	}

	id := c.Params("id")
	var order models.Order
	if err := db.DB.Where("user_id = ?", userID).First(&order, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Order not found",
			Error:   err.Error(),
		})
	}

	if !order.IsCancellable() {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": fmt.Sprintf("Order can no longer be cancelled (status: %s)", order.OrderStatus),
		})
	}

	err := db.DB.Transaction(func(tx *gorm.DB) error {
		return order.UpdateStatus(tx, models.StatusCancelled)
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to cancel order",
			Error:   err.Error(),
		})
	}

	return c.JSON(order)
}

// sendOrderConfirmation emails a receipt when the user has an email on file.
func sendOrderConfirmation(orderID uint) {
	var order models.Order
	if err := db.DB.Preload("User").Preload("Kitchen").Preload("Items.Product").
		First(&order, orderID).Error; err != nil {
		log.Printf("Failed to load order %d for confirmation: %v", orderID, err)
		return
	}
	if order.User.Email == "" {
		return
	}

	itemLines := ""
	for _, item := range order.Items {
		itemLines += fmt.Sprintf("<li>%s x %d - Rs %.2f</li>", item.Product.Name, item.Quantity, item.Price*float64(item.Quantity))
	}

	ist, err := time.LoadLocation("Asia/Kolkata")
	if err != nil {
		ist = time.UTC
	}

	subject := fmt.Sprintf("Order Confirmed - %s", order.OrderNumber)
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Your order from <strong>%s</strong> was placed on %s.</p>
		<ul>%s</ul>
		<p>Subtotal: Rs %.2f<br>Delivery Fee: Rs %.2f<br>Service Fee: Rs %.2f<br><strong>Total: Rs %.2f</strong></p>
		<p>We'll notify you as your order progresses.</p>
	`, order.User.Name, order.Kitchen.Name, order.PlacedAtIST(ist), itemLines,
		order.Subtotal, order.DeliveryFee, order.ServiceFee, order.Total)

	if err := utils.SendEmail(order.User.Email, subject, body); err != nil {
		log.Printf("Failed to send confirmation for order %d: %v", order.ID, err)
	}
}
