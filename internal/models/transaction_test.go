package models_test

import (
	"github.com/envelope-zero/ledger/internal/models"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestTransactionDate() {
	budget := suite.createTestBudget(models.Budget{})
	account := suite.createTestAccount(models.Account{BudgetID: budget.ID})

	tests := []struct {
		date string
		err  error
	}{
		{"2024-01-15", nil},
		{"2024-02-30", models.ErrTransactionDateInvalid},
		{"2024-01", models.ErrTransactionDateInvalid},
		{"", models.ErrTransactionDateInvalid},
	}

	for _, tt := range tests {
		suite.Run(tt.date, func() {
			err := models.DB.Create(&models.Transaction{
				AccountID: account.ID,
				Date:      tt.date,
				Amount:    decimal.NewFromInt(-10),
			}).Error

			if tt.err == nil {
				suite.Assert().Nil(err)
				return
			}
			suite.Assert().ErrorIs(err, tt.err)
		})
	}
}

func (suite *TestSuiteStandard) TestTransactionTrimWhitespace() {
	budget := suite.createTestBudget(models.Budget{})
	account := suite.createTestAccount(models.Account{BudgetID: budget.ID})

	transaction := suite.createTestTransaction(models.Transaction{
		AccountID:     account.ID,
		Date:          "2024-01-15",
		Payee:         " Supermarket ",
		Category:      "Groceries\t",
		CategoryGroup: "  Everyday",
		Amount:        decimal.RequireFromString("-14.99"),
	})

	suite.Assert().Equal("Supermarket", transaction.Payee)
	suite.Assert().Equal("Groceries", transaction.Category)
	suite.Assert().Equal("Everyday", transaction.CategoryGroup)
}
