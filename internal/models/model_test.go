package models_test

import (
	"time"

	"github.com/envelope-zero/ledger/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

func (suite *TestSuiteStandard) TestModelTimeUTC() {
	tz, _ := time.LoadLocation("Europe/Berlin")

	model := models.DefaultModel{
		Timestamps: models.Timestamps{
			CreatedAt: time.Date(2000, 1, 2, 3, 4, 5, 6, tz),
			UpdatedAt: time.Date(2001, 2, 3, 4, 5, 6, 7, tz),
			DeletedAt: &gorm.DeletedAt{Time: time.Now().In(tz)},
		},
	}

	err := model.AfterFind(models.DB)
	suite.Require().Nil(err, "model.AfterFind failed")

	suite.Assert().Equal(time.UTC, model.CreatedAt.Location(), "Timezone for model is not UTC")
	suite.Assert().Equal(time.UTC, model.UpdatedAt.Location(), "Timezone for model is not UTC")
	suite.Assert().Equal(time.UTC, model.DeletedAt.Time.Location(), "Timezone for model is not UTC")
}

func (suite *TestSuiteStandard) TestModelKeepsPresetID() {
	id := uuid.New()
	budget := suite.createTestBudget(models.Budget{DefaultModel: models.DefaultModel{ID: id}})
	suite.Assert().Equal(id, budget.ID)

	generated := suite.createTestBudget(models.Budget{})
	suite.Assert().NotEqual(uuid.Nil, generated.ID)
}
