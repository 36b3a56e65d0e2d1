package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/codewithtanvir/railsheba-premium/models"
	"github.com/codewithtanvir/railsheba-premium/services"
)

// GetStations returns all stations, optionally filtered by ?q=
func (h *Handler) GetStations(c *gin.Context) {
	if q := c.Query("q"); q != "" {
		c.JSON(http.StatusOK, gin.H{"stations": h.catalog.FilterStations(q)})
		return
	}
	c.JSON(http.StatusOK, gin.H{"stations": h.catalog.Stations})
}

// GetClasses returns the seat classes
func (h *Handler) GetClasses(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"classes": h.catalog.Classes})
}

// SearchTrains searches for trains between two stations
func (h *Handler) SearchTrains(c *gin.Context) {
	var req models.SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	from, err := h.catalog.FindStation(req.From)
	if err != nil {
		h.fail(c, err)
		return
	}
	to, err := h.catalog.FindStation(req.To)
	if err != nil {
		h.fail(c, err)
		return
	}

	class := req.Class
	if class == "" {
		class = services.DefaultClass
	}

	h.logger.Debug("train search", "from", from.Name, "to", to.Name, "date", req.Date, "class", class)

	trains := h.catalog.SearchTrains(from.Name, to.Name)
	results := make([]models.SearchResult, 0, len(trains))
	for _, train := range trains {
		results = append(results, models.SearchResult{
			Train:       train,
			Class:       class,
			FarePerSeat: services.FarePerSeat(train, class),
		})
	}

	c.JSON(http.StatusOK, models.SearchResponse{
		From:    from.Name,
		To:      to.Name,
		Date:    req.Date,
		Results: results,
	})
}

// GetTrain returns train details by id
func (h *Handler) GetTrain(c *gin.Context) {
	train, err := h.catalog.Train(c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, train)
}
