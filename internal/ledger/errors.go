package ledger

import "errors"

var (
	ErrCategoryNotFound      = errors.New("there is no category with this name")
	ErrGroupNotFound         = errors.New("there is no category group with this name")
	ErrGroupNotEmpty         = errors.New("only category groups without categories can be deleted")
	ErrCategoryNameNotUnique = errors.New("the category name must be unique")
	ErrGroupNameNotUnique    = errors.New("the category group name must be unique")
	ErrNameEmpty             = errors.New("the name must not be empty")
	ErrReassignmentRequired  = errors.New("the category still holds money, a category to reassign it to is required")
	ErrReassignToSelf        = errors.New("a category cannot be reassigned to itself")
	ErrSystemManaged         = errors.New("credit card payment categories are managed automatically and cannot be changed")
	ErrMonthNotFound         = errors.New("there is no data for this month")
	ErrTargetTypeInvalid     = errors.New("the target type must be one of Monthly, Weekly, Custom or FullPayoff")
)
