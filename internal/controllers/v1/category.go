package v1

import (
	"net/http"

	"github.com/envelope-zero/ledger/internal/httputil"
	"github.com/envelope-zero/ledger/internal/ledger"
	"github.com/envelope-zero/ledger/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/ryanuber/go-glob"
)

// RegisterCategoryRoutes registers the routes for categories with
// the RouterGroup that is passed.
func RegisterCategoryRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsCategories)
		r.GET("", GetCategories)
		r.POST("", CreateCategory)
		r.DELETE("", DeleteCategory)
	}

	{
		r.OPTIONS("/rename", OptionsCategoryRename)
		r.PATCH("/rename", RenameCategory)
	}

	{
		r.OPTIONS("/groups", OptionsCategoryGroups)
		r.DELETE("/groups", DeleteCategoryGroup)
	}

	{
		r.OPTIONS("/target", OptionsCategoryTarget)
		r.PUT("/target", SetTarget)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Categories
// @Success		204
// @Router			/v1/categories [options]
func OptionsCategories(c *gin.Context) {
	httputil.OptionsGetPostDelete(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Categories
// @Success		204
// @Router			/v1/categories/rename [options]
func OptionsCategoryRename(c *gin.Context) {
	httputil.OptionsPatch(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Categories
// @Success		204
// @Router			/v1/categories/groups [options]
func OptionsCategoryGroups(c *gin.Context) {
	httputil.OptionsDelete(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Categories
// @Success		204
// @Router			/v1/categories/target [options]
func OptionsCategoryTarget(c *gin.Context) {
	httputil.OptionsPut(c)
}

// @Summary		Get categories
// @Description	Returns the categories of a month in the order of their groups
// @Tags			Categories
// @Produce		json
// @Success		200		{object}	CategoryListResponse
// @Failure		400		{object}	CategoryListResponse
// @Failure		404		{object}	CategoryListResponse
// @Failure		500		{object}	CategoryListResponse
// @Param			budget	query		string	true	"ID of the budget"
// @Param			month	query		string	true	"The month in YYYY-MM format"
// @Param			name	query		string	false	"Only categories with a name matching this pattern. '*' matches any text"
// @Router			/v1/categories [get]
func GetCategories(c *gin.Context) {
	query, month, err := parseMonthQuery(c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CategoryListResponse{
			Error: &s,
		})
		return
	}

	l, err := models.LoadLedger(models.DB, query.BudgetID.UUID)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CategoryListResponse{
			Error: &s,
		})
		return
	}

	m, ok := l.Months[month.String()]
	if !ok {
		s := ledger.ErrMonthNotFound.Error()
		c.JSON(http.StatusNotFound, CategoryListResponse{
			Error: &s,
		})
		return
	}

	pattern := query.Name
	if pattern == "" {
		pattern = "*"
	}

	categories := make([]Category, 0)
	for _, g := range m.CategoryGroups {
		for _, item := range g.Items {
			if glob.Glob(pattern, item.Name) {
				categories = append(categories, Category{Group: g.Name, CategoryItem: item})
			}
		}
	}

	c.JSON(http.StatusOK, CategoryListResponse{Data: categories})
}

// @Summary		Create category
// @Description	Creates a category group or a category in a month
// @Tags			Categories
// @Accept			json
// @Produce		json
// @Success		201			{object}	MonthResponse
// @Failure		400			{object}	MonthResponse
// @Failure		404			{object}	MonthResponse
// @Failure		500			{object}	MonthResponse
// @Param			category	body		CategoryCreate	true	"Category"
// @Router			/v1/categories [post]
func CreateCategory(c *gin.Context) {
	var data CategoryCreate
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

	months, err := updateMonths(data.BudgetID, "category", func(l ledger.Ledger) (ledger.MonthMap, error) {
		if data.Name == "" {
			return ledger.AddGroup(l.Months, month, data.Group)
		}

		if data.Group == "" {
			return nil, errGroupNotSet
		}

		return ledger.AddItem(l.Months, month, data.Group, data.Name)
	})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), MonthResponse{
			Error: &s,
		})
		return
	}

	apiResource := newMonth(data.BudgetID, month.String(), months[month.String()])
	c.JSON(http.StatusCreated, MonthResponse{Data: &apiResource})
}

// @Summary		Rename category
// @Description	Renames a category or a category group in every month and updates all transactions referencing it
// @Tags			Categories
// @Accept			json
// @Produce		json
// @Success		200			{object}	LedgerResponse
// @Failure		400			{object}	LedgerResponse
// @Failure		404			{object}	LedgerResponse
// @Failure		500			{object}	LedgerResponse
// @Param			category	body		CategoryRename	true	"Rename"
// @Router			/v1/categories/rename [patch]
func RenameCategory(c *gin.Context) {
	var data CategoryRename
	err := httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), LedgerResponse{
			Error: &s,
		})
		return
	}

	l, err := updateLedgerFor(data.BudgetID, func(l ledger.Ledger) (ledger.Ledger, error) {
		if data.Name == "" {
			return ledger.RenameGroup(l, data.Group, data.NewName)
		}

		return ledger.RenameItem(l, data.Name, data.NewName)
	})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), LedgerResponse{
			Error: &s,
		})
		return
	}

	c.JSON(http.StatusOK, LedgerResponse{Data: &l.Months})
}

// @Summary		Delete category
// @Description	Deletes a category from every month. Money and transactions of categories that hold money are moved to the category specified in reassignTo.
// @Tags			Categories
// @Accept			json
// @Produce		json
// @Success		200			{object}	LedgerResponse
// @Failure		400			{object}	LedgerResponse
// @Failure		404			{object}	LedgerResponse
// @Failure		409			{object}	LedgerResponse
// @Failure		500			{object}	LedgerResponse
// @Param			category	body		CategoryDelete	true	"Category"
// @Router			/v1/categories [delete]
func DeleteCategory(c *gin.Context) {
	var data CategoryDelete
	err := httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), LedgerResponse{
			Error: &s,
		})
		return
	}

	if data.Name == "" {
		s := errCategoryNotSet.Error()
		c.JSON(http.StatusBadRequest, LedgerResponse{
			Error: &s,
		})
		return
	}

	l, err := updateLedgerFor(data.BudgetID, func(l ledger.Ledger) (ledger.Ledger, error) {
		return ledger.DeleteItem(l, ledger.ItemContext{Group: data.Group, Name: data.Name}, data.ReassignTo)
	})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), LedgerResponse{
			Error: &s,
		})
		return
	}

	c.JSON(http.StatusOK, LedgerResponse{Data: &l.Months})
}

// @Summary		Delete category group
// @Description	Deletes a category group without categories from every month
// @Tags			Categories
// @Accept			json
// @Produce		json
// @Success		200		{object}	LedgerResponse
// @Failure		400		{object}	LedgerResponse
// @Failure		404		{object}	LedgerResponse
// @Failure		500		{object}	LedgerResponse
// @Param			group	body		GroupDelete	true	"Group"
// @Router			/v1/categories/groups [delete]
func DeleteCategoryGroup(c *gin.Context) {
	var data GroupDelete
	err := httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), LedgerResponse{
			Error: &s,
		})
		return
	}

	if data.BudgetID == uuid.Nil {
		s := errBudgetIDParameter.Error()
		c.JSON(http.StatusBadRequest, LedgerResponse{
			Error: &s,
		})
		return
	}

	months, err := updateMonths(data.BudgetID, "category", func(l ledger.Ledger) (ledger.MonthMap, error) {
		return ledger.DeleteGroup(l.Months, data.Group)
	})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), LedgerResponse{
			Error: &s,
		})
		return
	}

	c.JSON(http.StatusOK, LedgerResponse{Data: &months})
}

// @Summary		Set target
// @Description	Sets or removes the target of a category in a month and all later months
// @Tags			Categories
// @Accept			json
// @Produce		json
// @Success		200		{object}	MonthResponse
// @Failure		400		{object}	MonthResponse
// @Failure		404		{object}	MonthResponse
// @Failure		500		{object}	MonthResponse
// @Param			target	body		TargetEditable	true	"Target"
// @Router			/v1/categories/target [put]
func SetTarget(c *gin.Context) {
	var data TargetEditable
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

	months, err := updateMonths(data.BudgetID, "target", func(l ledger.Ledger) (ledger.MonthMap, error) {
		return ledger.SetTarget(l.Months, l.Accounts, month, data.Category, data.Target)
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

// updateLedgerFor validates the budget ID and runs a lifecycle operation on
// its ledger.
func updateLedgerFor(budgetID uuid.UUID, fn func(ledger.Ledger) (ledger.Ledger, error)) (ledger.Ledger, error) {
	if budgetID == uuid.Nil {
		return ledger.Ledger{}, errBudgetIDParameter
	}

	return updateLedger(budgetID, "category", fn)
}
