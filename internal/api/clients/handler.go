package clients

import (
	"net/http"

	"quoteform-app/database"
	"quoteform-app/internal/domain/clients"
	"quoteform-app/internal/domain/forms"
	"quoteform-app/internal/domain/quotes"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type clientRequest struct {
	Name           string `json:"name"`
	Email          string `json:"email"`
	CompanyName    string `json:"company_name"`
	Phone          string `json:"phone"`
	StreetAddress1 string `json:"street_address_1"`
	StreetAddress2 string `json:"street_address_2"`
	Country        string `json:"country"`
	Zipcode        string `json:"zipcode"`
	Place          string `json:"place"`
	Website        string `json:"website"`
	InternalNotes  string `json:"internal_notes"`
}

func (r clientRequest) toModel() clients.Client {
	return clients.Client{
		Name:           r.Name,
		Email:          r.Email,
		CompanyName:    r.CompanyName,
		Phone:          r.Phone,
		StreetAddress1: r.StreetAddress1,
		StreetAddress2: r.StreetAddress2,
		Country:        r.Country,
		Zipcode:        r.Zipcode,
		Place:          r.Place,
		Website:        r.Website,
		InternalNotes:  r.InternalNotes,
	}
}

// ------------------------------
// GET /admin/clients
// ------------------------------
func ListClients(c *gin.Context) {
	var list []clients.Client
	if err := database.DB.Order("created_at DESC").Find(&list).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load clients"})
		return
	}
	c.JSON(http.StatusOK, list)
}

// ------------------------------
// GET /admin/clients/:id
// ------------------------------
// Detail view: the client, the forms it owns, and the quotes derived
// through those forms.
func GetClient(c *gin.Context) {
	id := c.Param("id")

	var client clients.Client
	if err := database.DB.First(&client, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Client not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load client"})
		return
	}

	var clientForms []forms.QuoteForm
	if err := database.DB.
		Where("client_id = ?", id).
		Order("created_at DESC").
		Find(&clientForms).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load client forms"})
		return
	}

	var clientQuotes []quotes.CustomerQuote
	if len(clientForms) > 0 {
		formIDs := make([]string, 0, len(clientForms))
		for _, f := range clientForms {
			formIDs = append(formIDs, f.ID)
		}
		if err := database.DB.
			Preload("Form").
			Where("form_id IN ?", formIDs).
			Order("created_at DESC").
			Find(&clientQuotes).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load client quotes"})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"client": client,
		"forms":  clientForms,
		"quotes": clientQuotes,
	})
}

// ------------------------------
// POST /admin/clients
// ------------------------------
func CreateClient(c *gin.Context) {
	var req clientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	client := req.toModel()
	if err := client.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := database.DB.Create(&client).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save client"})
		return
	}
	c.JSON(http.StatusCreated, client)
}

// ------------------------------
// PUT /admin/clients/:id
// ------------------------------
func UpdateClient(c *gin.Context) {
	id := c.Param("id")

	var req clientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	client := req.toModel()
	if err := client.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result := database.DB.Model(&clients.Client{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"name":             client.Name,
			"email":            client.Email,
			"company_name":     client.CompanyName,
			"phone":            client.Phone,
			"street_address_1": client.StreetAddress1,
			"street_address_2": client.StreetAddress2,
			"country":          client.Country,
			"zipcode":          client.Zipcode,
			"place":            client.Place,
			"website":          client.Website,
			"internal_notes":   client.InternalNotes,
		})
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save client"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Client not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// ------------------------------
// DELETE /admin/clients/:id
// ------------------------------
func DeleteClient(c *gin.Context) {
	id := c.Param("id")
	if err := database.DB.Delete(&clients.Client{}, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete client"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
