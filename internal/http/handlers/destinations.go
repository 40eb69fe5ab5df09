package handlers

import (
	"net/http"

	"wildventures/internal/utils"

	"github.com/gin-gonic/gin"
)

func (h Handlers) ListDestinations(c *gin.Context) {
	list, err := h.Destinations.List(c.Request.Context())
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	out := make([]gin.H, 0, len(list))
	for _, d := range list {
		out = append(out, gin.H{
			"code":            d.Code,
			"name":            d.Name,
			"base_price":      d.BasePrice,
			"formatted_price": utils.FormatUSD(d.BasePrice),
			"description":     d.Description,
		})
	}
	c.JSON(http.StatusOK, gin.H{"destinations": out})
}
