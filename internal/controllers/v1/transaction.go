package v1

import (
	"net/http"

	"github.com/envelope-zero/ledger/internal/httputil"
	"github.com/envelope-zero/ledger/internal/models"
	"github.com/envelope-zero/ledger/internal/types"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/exp/maps"
)

// RegisterTransactionRoutes registers the routes for transactions with
// the RouterGroup that is passed.
func RegisterTransactionRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsTransactionList)
		r.GET("", GetTransactions)
		r.POST("", CreateTransactions)
	}

	// Transaction with ID
	{
		r.OPTIONS("/:id", OptionsTransactionDetail)
		r.GET("/:id", GetTransaction)
		r.PATCH("/:id", UpdateTransaction)
		r.DELETE("/:id", DeleteTransaction)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Transactions
// @Success		204
// @Router			/v1/transactions [options]
func OptionsTransactionList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Transactions
// @Success		204
// @Param			id	path	URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/transactions/{id} [options]
func OptionsTransactionDetail(c *gin.Context) {
	httputil.OptionsGetPatchDelete(c)
}

// budgetOf returns the ID of the budget the account belongs to
func budgetOf(accountID uuid.UUID) (uuid.UUID, error) {
	var account models.Account
	err := models.DB.First(&account, "id = ?", accountID).Error
	if err != nil {
		return uuid.Nil, err
	}

	return account.BudgetID, nil
}

// @Summary		Create transactions
// @Description	Creates transactions and recalculates the months of all affected budgets
// @Tags			Transactions
// @Produce		json
// @Success		201				{object}	TransactionCreateResponse
// @Failure		400				{object}	TransactionCreateResponse
// @Failure		404				{object}	TransactionCreateResponse
// @Failure		500				{object}	TransactionCreateResponse
// @Param			transactions	body		[]TransactionEditable	true	"Transactions"
// @Router			/v1/transactions [post]
func CreateTransactions(c *gin.Context) {
	var editables []TransactionEditable

	err := httputil.BindData(c, &editables)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TransactionCreateResponse{
			Error: &s,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := TransactionCreateResponse{}

	budgets := make(map[uuid.UUID]bool)

	for _, editable := range editables {
		transaction := editable.model()
		err := models.DB.Create(&transaction).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		budgetID, err := budgetOf(transaction.AccountID)
		if err != nil {
			status = r.appendError(err, status)
			continue
		}
		budgets[budgetID] = true

		data := newTransaction(c, transaction)
		r.Data = append(r.Data, TransactionResponse{Data: &data})
	}

	for _, budgetID := range maps.Keys(budgets) {
		err := recalculate(budgetID, "transaction")
		if err != nil {
			s := err.Error()
			r.Error = &s
			status = http.StatusInternalServerError
		}
	}

	c.JSON(status, r)
}

// @Summary		Get transactions
// @Description	Returns a list of transactions ordered by date
// @Tags			Transactions
// @Produce		json
// @Success		200		{object}	TransactionListResponse
// @Failure		400		{object}	TransactionListResponse
// @Failure		500		{object}	TransactionListResponse
// @Router			/v1/transactions [get]
// @Param			account	query	string	false	"Filter by account ID"
// @Param			budget	query	string	false	"Filter by budget ID"
// @Param			month	query	string	false	"Filter by month, YYYY-MM"
func GetTransactions(c *gin.Context) {
	var filter TransactionQueryFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		s := httputil.ErrInvalidUUID.Error()
		c.JSON(http.StatusBadRequest, TransactionListResponse{
			Error: &s,
		})
		return
	}

	q := models.DB.Order("transactions.date ASC, transactions.created_at ASC")

	if !filter.AccountID.IsNil() {
		q = q.Where("transactions.account_id = ?", filter.AccountID.UUID)
	}

	if !filter.BudgetID.IsNil() {
		q = q.Joins("JOIN accounts ON accounts.id = transactions.account_id").Where("accounts.budget_id = ?", filter.BudgetID.UUID)
	}

	if filter.Month != "" {
		month, err := types.ParseMonth(filter.Month)
		if err != nil {
			s := errMonthParameter.Error()
			c.JSON(http.StatusBadRequest, TransactionListResponse{
				Error: &s,
			})
			return
		}
		q = q.Where("transactions.date LIKE ?", month.String()+"-%")
	}

	var transactions []models.Transaction
	err := q.Find(&transactions).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TransactionListResponse{
			Error: &s,
		})
		return
	}

	data := make([]Transaction, 0, len(transactions))
	for _, transaction := range transactions {
		data = append(data, newTransaction(c, transaction))
	}

	c.JSON(http.StatusOK, TransactionListResponse{Data: data})
}

// getTransaction binds the ID from the URI and returns the transaction.
func getTransaction(c *gin.Context) (models.Transaction, error) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		return models.Transaction{}, httputil.ErrInvalidUUID
	}

	var transaction models.Transaction
	err = models.DB.First(&transaction, "id = ?", uri.ID.UUID).Error
	if err != nil {
		return models.Transaction{}, err
	}

	return transaction, nil
}

// @Summary		Get transaction
// @Description	Returns a specific transaction
// @Tags			Transactions
// @Produce		json
// @Success		200	{object}	TransactionResponse
// @Failure		400	{object}	TransactionResponse
// @Failure		404	{object}	TransactionResponse
// @Failure		500	{object}	TransactionResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/transactions/{id} [get]
func GetTransaction(c *gin.Context) {
	transaction, err := getTransaction(c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TransactionResponse{
			Error: &s,
		})
		return
	}

	apiResource := newTransaction(c, transaction)
	c.JSON(http.StatusOK, TransactionResponse{Data: &apiResource})
}

// @Summary		Update transaction
// @Description	Updates an existing transaction. Only values to be updated need to be specified. The months of the budget are recalculated.
// @Tags			Transactions
// @Accept			json
// @Produce		json
// @Success		200			{object}	TransactionResponse
// @Failure		400			{object}	TransactionResponse
// @Failure		404			{object}	TransactionResponse
// @Failure		500			{object}	TransactionResponse
// @Param			id			path		URIID				true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			transaction	body		TransactionEditable	true	"Transaction"
// @Router			/v1/transactions/{id} [patch]
func UpdateTransaction(c *gin.Context) {
	transaction, err := getTransaction(c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TransactionResponse{
			Error: &s,
		})
		return
	}

	previousBudget, err := budgetOf(transaction.AccountID)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TransactionResponse{
			Error: &s,
		})
		return
	}

	// Fields not in the request body keep their current value
	data := newTransaction(c, transaction).TransactionEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TransactionResponse{
			Error: &s,
		})
		return
	}

	update := data.model()
	update.DefaultModel = transaction.DefaultModel

	err = models.DB.Save(&update).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TransactionResponse{
			Error: &s,
		})
		return
	}

	budgets := []uuid.UUID{previousBudget}
	if update.AccountID != transaction.AccountID {
		budgetID, err := budgetOf(update.AccountID)
		if err != nil {
			s := err.Error()
			c.JSON(status(err), TransactionResponse{
				Error: &s,
			})
			return
		}

		if budgetID != previousBudget {
			budgets = append(budgets, budgetID)
		}
	}

	for _, budgetID := range budgets {
		err = recalculate(budgetID, "transaction")
		if err != nil {
			s := err.Error()
			c.JSON(status(err), TransactionResponse{
				Error: &s,
			})
			return
		}
	}

	apiResource := newTransaction(c, update)
	c.JSON(http.StatusOK, TransactionResponse{Data: &apiResource})
}

// @Summary		Delete transaction
// @Description	Deletes a transaction and recalculates the months of its budget
// @Tags			Transactions
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/transactions/{id} [delete]
func DeleteTransaction(c *gin.Context) {
	transaction, err := getTransaction(c)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	budgetID, err := budgetOf(transaction.AccountID)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.Delete(&transaction).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = recalculate(budgetID, "transaction")
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.Status(http.StatusNoContent)
}
