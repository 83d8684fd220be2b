package v1

import (
	"net/http"

	"github.com/envelope-zero/ledger/internal/httputil"
	"github.com/envelope-zero/ledger/internal/ledger"
	"github.com/envelope-zero/ledger/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/exp/maps"
)

// RegisterAccountRoutes registers the routes for accounts with
// the RouterGroup that is passed.
func RegisterAccountRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsAccountList)
		r.GET("", GetAccounts)
		r.POST("", CreateAccounts)
	}

	// Account with ID
	{
		r.OPTIONS("/:id", OptionsAccountDetail)
		r.GET("/:id", GetAccount)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Accounts
// @Success		204
// @Router			/v1/accounts [options]
func OptionsAccountList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Accounts
// @Success		204
// @Param			id	path	URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/accounts/{id} [options]
func OptionsAccountDetail(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Create accounts
// @Description	Creates new accounts. For credit accounts, a category in the "Credit Card Payments" group is added to every month of the budget.
// @Tags			Accounts
// @Produce		json
// @Success		201			{object}	AccountCreateResponse
// @Failure		400			{object}	AccountCreateResponse
// @Failure		404			{object}	AccountCreateResponse
// @Failure		500			{object}	AccountCreateResponse
// @Param			accounts	body		[]AccountEditable	true	"Accounts"
// @Router			/v1/accounts [post]
func CreateAccounts(c *gin.Context) {
	var editables []AccountEditable

	err := httputil.BindData(c, &editables)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), AccountCreateResponse{
			Error: &s,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := AccountCreateResponse{}

	// Budgets that got a new credit account
	credit := make(map[uuid.UUID]bool)

	for _, editable := range editables {
		account := editable.model()
		err = models.DB.Create(&account).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		if account.Kind == ledger.AccountKindCredit {
			credit[account.BudgetID] = true
		}

		data, err := newAccount(c, account)
		if err != nil {
			status = r.appendError(err, status)
			continue
		}
		r.Data = append(r.Data, AccountResponse{Data: &data})
	}

	for _, budgetID := range maps.Keys(credit) {
		err := provisionCreditCards(budgetID)
		if err != nil {
			s := err.Error()
			r.Error = &s
			status = http.StatusInternalServerError
		}
	}

	c.JSON(status, r)
}

// @Summary		Get accounts
// @Description	Returns a list of accounts
// @Tags			Accounts
// @Produce		json
// @Success		200		{object}	AccountListResponse
// @Failure		400		{object}	AccountListResponse
// @Failure		500		{object}	AccountListResponse
// @Router			/v1/accounts [get]
// @Param			budget	query	string	false	"Filter by budget ID"
// @Param			kind	query	string	false	"Filter by kind"
func GetAccounts(c *gin.Context) {
	var filter AccountQueryFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		s := httputil.ErrInvalidUUID.Error()
		c.JSON(http.StatusBadRequest, AccountListResponse{
			Error: &s,
		})
		return
	}

	var accounts []models.Account
	err := models.DB.Where(filter.model()).Order("name ASC").Find(&accounts).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), AccountListResponse{
			Error: &s,
		})
		return
	}

	data := make([]Account, 0, len(accounts))
	for _, account := range accounts {
		apiResource, err := newAccount(c, account)
		if err != nil {
			s := err.Error()
			c.JSON(status(err), AccountListResponse{
				Error: &s,
			})
			return
		}
		data = append(data, apiResource)
	}

	c.JSON(http.StatusOK, AccountListResponse{Data: data})
}

// @Summary		Get account
// @Description	Returns a specific account with its balance
// @Tags			Accounts
// @Produce		json
// @Success		200	{object}	AccountResponse
// @Failure		400	{object}	AccountResponse
// @Failure		404	{object}	AccountResponse
// @Failure		500	{object}	AccountResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/accounts/{id} [get]
func GetAccount(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := httputil.ErrInvalidUUID.Error()
		c.JSON(http.StatusBadRequest, AccountResponse{
			Error: &s,
		})
		return
	}

	var account models.Account
	err = models.DB.First(&account, "id = ?", uri.ID.UUID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), AccountResponse{
			Error: &s,
		})
		return
	}

	apiResource, err := newAccount(c, account)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), AccountResponse{
			Error: &s,
		})
		return
	}

	c.JSON(http.StatusOK, AccountResponse{Data: &apiResource})
}
