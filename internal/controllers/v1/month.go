package v1

import (
	"net/http"

	"github.com/envelope-zero/ledger/internal/httputil"
	"github.com/envelope-zero/ledger/internal/ledger"
	"github.com/envelope-zero/ledger/internal/models"
	"github.com/envelope-zero/ledger/internal/types"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RegisterMonthRoutes registers the routes for months with
// the RouterGroup that is passed.
func RegisterMonthRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsMonth)
		r.GET("", GetMonth)
	}

	{
		r.OPTIONS("/ready-to-assign", OptionsReadyToAssign)
		r.GET("/ready-to-assign", GetReadyToAssign)
	}

	{
		r.OPTIONS("/assigned", OptionsAssigned)
		r.PATCH("/assigned", SetAssigned)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Months
// @Success		204
// @Router			/v1/months [options]
func OptionsMonth(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Months
// @Success		204
// @Router			/v1/months/ready-to-assign [options]
func OptionsReadyToAssign(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Months
// @Success		204
// @Router			/v1/months/assigned [options]
func OptionsAssigned(c *gin.Context) {
	httputil.OptionsPatch(c)
}

// parseMonthQuery binds and validates the budget and month query parameters.
func parseMonthQuery(c *gin.Context) (MonthQuery, types.Month, error) {
	var query MonthQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		return MonthQuery{}, types.Month{}, httputil.ErrInvalidUUID
	}

	if query.BudgetID.IsNil() {
		return MonthQuery{}, types.Month{}, errBudgetIDParameter
	}

	month, err := parseMonth(query.Month)
	if err != nil {
		return MonthQuery{}, types.Month{}, err
	}

	return query, month, nil
}

func parseMonth(s string) (types.Month, error) {
	month, err := types.ParseMonth(s)
	if err != nil {
		return types.Month{}, errMonthParameter
	}

	return month, nil
}

// @Summary		Get month
// @Description	Navigates to a month. Months that do not exist yet are created, the categories of existing months are completed. All months of the budget are recalculated and saved.
// @Tags			Months
// @Produce		json
// @Success		200			{object}	MonthResponse
// @Failure		400			{object}	MonthResponse
// @Failure		404			{object}	MonthResponse
// @Failure		500			{object}	MonthResponse
// @Param			budget		query		string	true	"ID of the budget"
// @Param			month		query		string	true	"The month in YYYY-MM format"
// @Param			direction	query		string	false	"Direction of the navigation, 'forward' (default) or 'backward'"
// @Router			/v1/months [get]
func GetMonth(c *gin.Context) {
	query, month, err := parseMonthQuery(c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), MonthResponse{
			Error: &s,
		})
		return
	}

	direction := ledger.Direction(c.DefaultQuery("direction", string(ledger.Forward)))
	if direction != ledger.Forward && direction != ledger.Backward {
		s := errDirectionInvalid.Error()
		c.JSON(http.StatusBadRequest, MonthResponse{
			Error: &s,
		})
		return
	}

	months, err := updateMonths(query.BudgetID.UUID, "month", func(l ledger.Ledger) (ledger.MonthMap, error) {
		return ledger.ComputeMonth(l.Months, l.Accounts, month, direction), nil
	})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), MonthResponse{
			Error: &s,
		})
		return
	}

	data := newMonth(query.BudgetID.UUID, month.String(), months[month.String()])
	c.JSON(http.StatusOK, MonthResponse{Data: &data})
}

// @Summary		Get Ready to Assign
// @Description	Returns the money that is not assigned to any category for a month. Nothing is saved.
// @Tags			Months
// @Produce		json
// @Success		200		{object}	ReadyToAssignResponse
// @Failure		400		{object}	ReadyToAssignResponse
// @Failure		404		{object}	ReadyToAssignResponse
// @Failure		500		{object}	ReadyToAssignResponse
// @Param			budget	query		string	true	"ID of the budget"
// @Param			month	query		string	true	"The month in YYYY-MM format"
// @Router			/v1/months/ready-to-assign [get]
func GetReadyToAssign(c *gin.Context) {
	query, month, err := parseMonthQuery(c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ReadyToAssignResponse{
			Error: &s,
		})
		return
	}

	l, err := models.LoadLedger(models.DB, query.BudgetID.UUID)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ReadyToAssignResponse{
			Error: &s,
		})
		return
	}

	months := ledger.Recalculate(l.Months, l.Accounts)

	c.JSON(http.StatusOK, ReadyToAssignResponse{Data: &ReadyToAssign{
		BudgetID:      query.BudgetID.UUID,
		Month:         month.String(),
		ReadyToAssign: ledger.ReadyToAssign(months, l.Accounts, month),
	}})
}

// @Summary		Assign money
// @Description	Sets the money assigned to a category in a month. All months of the budget are recalculated and saved.
// @Tags			Months
// @Accept			json
// @Produce		json
// @Success		200			{object}	MonthResponse
// @Failure		400			{object}	MonthResponse
// @Failure		404			{object}	MonthResponse
// @Failure		500			{object}	MonthResponse
// @Param			assigned	body		AssignedEditable	true	"Assignment"
// @Router			/v1/months/assigned [patch]
func SetAssigned(c *gin.Context) {
	var data AssignedEditable
	err := httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), MonthResponse{
			Error: &s,
		})
		return
	}

	month, err := validateMonthBody(data.BudgetID, data.Month)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), MonthResponse{
			Error: &s,
		})
		return
	}

	if data.Category == "" {
		s := errCategoryNotSet.Error()
		c.JSON(http.StatusBadRequest, MonthResponse{
			Error: &s,
		})
		return
	}

	months, err := updateMonths(data.BudgetID, "assigned", func(l ledger.Ledger) (ledger.MonthMap, error) {
		return ledger.SetAssigned(l.Months, l.Accounts, month, data.Category, ledger.ParseAmount(data.Assigned))
	})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), MonthResponse{
			Error: &s,
		})
		return
	}

	apiResource := newMonth(data.BudgetID, month.String(), months[month.String()])
	c.JSON(http.StatusOK, MonthResponse{Data: &apiResource})
}

// validateMonthBody validates the budget ID and month of a request body.
func validateMonthBody(budgetID uuid.UUID, month string) (types.Month, error) {
	if budgetID == uuid.Nil {
		return types.Month{}, errBudgetIDParameter
	}

	return parseMonth(month)
}
