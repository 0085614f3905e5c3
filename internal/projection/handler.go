package projection

import (
	"errors"
	"net/http"

	httperr "github.com/aevon-lab/reward-points/internal/core/errors"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all projection API routes on the given router.
func (s *Service) RegisterRoutes(r gin.IRouter) {
	r.GET("/rewards/:user_id", s.HandlePeriodTotal)
	r.GET("/rewards/range/:user_id", s.HandleRangeTotals)
}

// HandlePeriodTotal handles GET /rewards/:user_id?monthYear=<month><year>.
// The body is the bare integer total.
func (s *Service) HandlePeriodTotal(c *gin.Context) {
	var query struct {
		MonthYear string `form:"monthYear" binding:"required"`
	}
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, httperr.ErrorResponse{
			ErrorType: httperr.HttpInvalidQueryError,
			Message:   "Invalid query parameters",
			Details:   err.Error(),
		})
		return
	}

	total, err := s.TotalForPeriod(c.Request.Context(), c.Param("user_id"), query.MonthYear)
	if err != nil {
		writeQueryError(c, err)
		return
	}

	c.JSON(http.StatusOK, total)
}

// HandleRangeTotals handles GET /rewards/range/:user_id
// Query parameters: startMonth, endMonth (1-12, inclusive), year
func (s *Service) HandleRangeTotals(c *gin.Context) {
	var query struct {
		StartMonth int `form:"startMonth" binding:"required"`
		EndMonth   int `form:"endMonth" binding:"required"`
		Year       int `form:"year" binding:"required"`
	}
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, httperr.ErrorResponse{
			ErrorType: httperr.HttpInvalidQueryError,
			Message:   "Invalid query parameters",
			Details:   err.Error(),
		})
		return
	}

	totals, err := s.TotalsForRange(c.Request.Context(), c.Param("user_id"), query.StartMonth, query.EndMonth, query.Year)
	if err != nil {
		writeQueryError(c, err)
		return
	}

	c.JSON(http.StatusOK, totals)
}

func writeQueryError(c *gin.Context, err error) {
	if errors.Is(err, httperr.ErrValidation) {
		c.JSON(http.StatusBadRequest, httperr.ErrorResponse{
			ErrorType: httperr.HttpInvalidQueryError,
			Message:   err.Error(),
		})
		return
	}

	c.JSON(http.StatusInternalServerError, httperr.ErrorResponse{
		ErrorType: httperr.HttpInternalError,
		Message:   "Failed to query rewards",
		Details:   err.Error(),
	})
}
