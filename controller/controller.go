package controller

import (
	"log"
	"net/http"

	"vilcos/booking"
	"vilcos/catalog"
	"vilcos/checkout"
	"vilcos/errs"

	"github.com/gin-gonic/gin"
)

// Controller holds the injected collaborators for all HTTP handlers. There
// is no package-level state; main builds one Controller and wires it into
// the router.
type Controller struct {
	catalog  *catalog.Store
	ledger   *booking.Ledger
	checkout *checkout.Coordinator
}

func New(cat *catalog.Store, ledger *booking.Ledger, coordinator *checkout.Coordinator) *Controller {
	return &Controller{catalog: cat, ledger: ledger, checkout: coordinator}
}

// respondError maps the error taxonomy onto HTTP. Anything outside the
// taxonomy is a persistence or programming failure: logged, and returned as
// a generic 500 without leaking internals.
func respondError(c *gin.Context, err error) {
	switch {
	case errs.IsValidation(err), errs.IsConflict(err):
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
	case errs.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"detail": err.Error()})
	case errs.IsInvalidState(err):
		c.JSON(http.StatusConflict, gin.H{"detail": err.Error()})
	case errs.IsUpstream(err):
		c.JSON(http.StatusBadGateway, gin.H{"detail": err.Error()})
	case errs.IsAuth(err):
		c.JSON(http.StatusUnauthorized, gin.H{"detail": err.Error()})
	case errs.IsForbidden(err):
		c.JSON(http.StatusForbidden, gin.H{"detail": err.Error()})
	default:
		log.Printf("internal error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Internal server error"})
	}
}

func (ctrl *Controller) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
