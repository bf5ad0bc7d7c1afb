package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"breakout-trader/internal/api/models"
	"breakout-trader/internal/data"
	"breakout-trader/internal/model"
)

// DatasetHandler manages the in-memory dataset registry.
type DatasetHandler struct {
	store *data.Store
}

// NewDatasetHandler creates a dataset handler backed by the store.
func NewDatasetHandler(store *data.Store) *DatasetHandler {
	return &DatasetHandler{store: store}
}

// Upload handles PUT /api/v1/datasets/:name.
func (h *DatasetHandler) Upload(c *gin.Context) {
	name := c.Param("name")

	var payload models.SeriesPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{Code: "INVALID_REQUEST", Message: err.Error()},
		})
		return
	}

	md := model.MarketData{Prices: payload.Prices, Volumes: payload.Volumes}
	if err := h.store.Put(name, md); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{Code: "INVALID_DATASET", Message: err.Error()},
		})
		return
	}

	logrus.WithFields(logrus.Fields{"dataset": name, "points": md.Len()}).Info("dataset registered")
	c.JSON(http.StatusOK, models.DatasetInfo{Name: name, Points: md.Len()})
}

// List handles GET /api/v1/datasets.
func (h *DatasetHandler) List(c *gin.Context) {
	names := h.store.Names()
	datasets := make([]models.DatasetInfo, 0, len(names))
	for _, name := range names {
		md, ok := h.store.Get(name)
		if !ok {
			continue
		}
		datasets = append(datasets, models.DatasetInfo{Name: name, Points: md.Len()})
	}

	c.JSON(http.StatusOK, gin.H{"datasets": datasets, "count": len(datasets)})
}

// Delete handles DELETE /api/v1/datasets/:name.
func (h *DatasetHandler) Delete(c *gin.Context) {
	name := c.Param("name")
	h.store.Delete(name)
	c.JSON(http.StatusOK, gin.H{"deleted": name})
}
