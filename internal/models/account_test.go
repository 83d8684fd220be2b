package models_test

import (
	"github.com/envelope-zero/ledger/internal/ledger"
	"github.com/envelope-zero/ledger/internal/models"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestAccountDefaultKind() {
	budget := suite.createTestBudget(models.Budget{})
	account := suite.createTestAccount(models.Account{BudgetID: budget.ID, Name: " Checking "})

	suite.Assert().Equal(ledger.AccountKindCash, account.Kind)
	suite.Assert().Equal("Checking", account.Name)
}

func (suite *TestSuiteStandard) TestAccountKindInvalid() {
	budget := suite.createTestBudget(models.Budget{})

	err := models.DB.Create(&models.Account{BudgetID: budget.ID, Name: "Savings", Kind: "savings"}).Error
	suite.Assert().ErrorIs(err, models.ErrAccountKindInvalid)
}

func (suite *TestSuiteStandard) TestAccountBudgetRequired() {
	err := models.DB.Create(&models.Account{Name: "Checking"}).Error
	suite.Assert().ErrorIs(err, models.ErrBudgetIDRequired)
}

func (suite *TestSuiteStandard) TestAccountNameNotUnique() {
	budget := suite.createTestBudget(models.Budget{})
	_ = suite.createTestAccount(models.Account{BudgetID: budget.ID, Name: "Visa", Kind: ledger.AccountKindCredit})

	err := models.DB.Create(&models.Account{BudgetID: budget.ID, Name: "Visa"}).Error
	suite.Assert().ErrorIs(err, models.ErrAccountNameNotUnique)

	// The same name in another budget is fine
	other := suite.createTestBudget(models.Budget{})
	err = models.DB.Create(&models.Account{BudgetID: other.ID, Name: "Visa"}).Error
	suite.Assert().Nil(err)
}

func (suite *TestSuiteStandard) TestAccountBudgetMissing() {
	budget := suite.createTestBudget(models.Budget{})
	account := models.Account{BudgetID: budget.ID, Name: "Cash"}
	account.BudgetID[0] ^= 0xff

	err := models.DB.Create(&account).Error
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestAccountBalance() {
	budget := suite.createTestBudget(models.Budget{})
	account := suite.createTestAccount(models.Account{BudgetID: budget.ID})
	other := suite.createTestAccount(models.Account{BudgetID: budget.ID})

	_ = suite.createTestTransaction(models.Transaction{AccountID: account.ID, Date: "2024-01-01", Category: ledger.ReadyToAssignCategory, Amount: decimal.RequireFromString("1000")})
	_ = suite.createTestTransaction(models.Transaction{AccountID: account.ID, Date: "2024-01-03", Category: "Groceries", Amount: decimal.RequireFromString("-12.34")})
	_ = suite.createTestTransaction(models.Transaction{AccountID: other.ID, Date: "2024-01-03", Category: "Groceries", Amount: decimal.RequireFromString("-50")})

	balance, err := account.Balance(models.DB)
	suite.Require().Nil(err)
	suite.Assert().True(decimal.RequireFromString("987.66").Equal(balance), balance.String())
}

func (suite *TestSuiteStandard) TestAccountBalanceDatabaseClosed() {
	budget := suite.createTestBudget(models.Budget{})
	account := suite.createTestAccount(models.Account{BudgetID: budget.ID})

	suite.CloseDB()

	_, err := account.Balance(models.DB)
	suite.Assert().ErrorIs(err, models.ErrGeneral)
}
